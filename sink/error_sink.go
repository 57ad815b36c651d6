//go:generate go run go.uber.org/mock/mockgen -source=error_sink.go -destination=../mocks/mock_notifier.go -package=mocks
package sink

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"reline-bot/line"
)

const deliveryTimeout = 5 * time.Second

// INotifier receives per-event processing failures. Delivery is
// asynchronous and best-effort: a notification that cannot be delivered
// must never affect the webhook batch outcome.
type INotifier interface {
	Notify(conversationID, message string)
}

type notification struct {
	conversationID string
	message        string
}

// ErrorSink queues failure notices and pushes them to an operator chat
// through the platform adapter. When the queue is full the notice is
// dropped and counted.
type ErrorSink struct {
	log     *slog.Logger
	adapter line.Adapter
	// targetID is the operator chat receiving the notices. Empty means
	// log-only delivery.
	targetID string
	queue    chan notification
	dropped  atomic.Uint64
}

func NewErrorSink(log *slog.Logger, adapter line.Adapter, targetID string, bufferSize int) *ErrorSink {
	return &ErrorSink{
		log:      log,
		adapter:  adapter,
		targetID: targetID,
		queue:    make(chan notification, bufferSize),
	}
}

// Notify enqueues without blocking the caller.
func (s *ErrorSink) Notify(conversationID, message string) {
	select {
	case s.queue <- notification{conversationID: conversationID, message: message}:
	default:
		s.dropped.Add(1)
		s.log.Warn("Error notification dropped, queue full", "conversation_id", conversationID)
	}
}

// Run drains the queue until the context is canceled. It satisfies the
// supervised Worker contract so a panic in delivery gets restarted.
func (s *ErrorSink) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case n := <-s.queue:
			s.deliver(ctx, n)
		}
	}
}

func (s *ErrorSink) deliver(ctx context.Context, n notification) {
	s.log.Error("Event processing failure", "conversation_id", n.conversationID, "message", n.message)
	if s.targetID == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, deliveryTimeout)
	defer cancel()
	text := "[ReLINE] conversation " + n.conversationID + "\n" + n.message
	if err := s.adapter.PushMessage(ctx, s.targetID, text); err != nil {
		s.log.Warn("Failed to deliver error notification", "error", err)
	}
}

// Dropped reports how many notices were discarded because the queue was full.
func (s *ErrorSink) Dropped() uint64 {
	return s.dropped.Load()
}
