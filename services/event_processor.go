//go:generate go run go.uber.org/mock/mockgen -source=event_processor.go -destination=../mocks/mock_event_processor.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"reline-bot/domain/webhook"
	apperrors "reline-bot/errors"
	"reline-bot/observability"
	"reline-bot/repositories"
	"reline-bot/sink"
)

const (
	// The platform retries the whole delivery on a non-2xx answer, so the
	// batch must finish well inside the platform's own webhook timeout.
	DefaultBatchTimeout = 8 * time.Second

	// DefaultDedupeCapacity bounds the in-memory redelivery filter.
	DefaultDedupeCapacity = 10_000
)

type IEventProcessor interface {
	Process(ctx context.Context, events []webhook.Event) error
}

// EventProcessor turns one webhook delivery into conversation mutations and
// outbound messages. Events are handled strictly in delivery order; each one
// runs in its own store transaction and its failure never aborts the batch.
// Only the batch deadline does.
type EventProcessor struct {
	log       *slog.Logger
	counter   IMemberCounter
	lifecycle IConversationService
	commands  ICommandService
	direct    IDirectMessageService
	store     repositories.ITransactor
	metrics   *observability.Metrics
	notifier  sink.INotifier
	timeout   time.Duration

	// Redelivery filter. Process-local and best-effort: it resets on
	// restart and is not shared across instances.
	mu       sync.Mutex
	seen     map[string]struct{}
	order    []string
	capacity int
}

func NewEventProcessor(
	log *slog.Logger,
	counter IMemberCounter,
	lifecycle IConversationService,
	commands ICommandService,
	direct IDirectMessageService,
	store repositories.ITransactor,
	metrics *observability.Metrics,
	notifier sink.INotifier,
	timeout time.Duration,
	dedupeCapacity int,
) *EventProcessor {
	return &EventProcessor{
		log:       log,
		counter:   counter,
		lifecycle: lifecycle,
		commands:  commands,
		direct:    direct,
		store:     store,
		metrics:   metrics,
		notifier:  notifier,
		timeout:   timeout,
		seen:      make(map[string]struct{}, dedupeCapacity),
		capacity:  dedupeCapacity,
	}
}

// Process handles a batch of inbound events under a single wall-clock
// deadline. Redelivered events are skipped outright. When the deadline
// expires the remaining events are dropped and the error is returned;
// since dropped events were never marked as seen, the platform's
// redelivery will reach them again.
func (p *EventProcessor) Process(ctx context.Context, events []webhook.Event) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	for _, event := range events {
		if p.alreadyProcessed(event.DedupeKey()) {
			p.metrics.DedupeSkipped()
			continue
		}
		if ctx.Err() != nil {
			p.metrics.BatchTimedOut()
			p.log.Error("Webhook batch deadline exceeded", "timeout", p.timeout, "kind", event.Kind())
			return fmt.Errorf("%w after %s", apperrors.ErrBatchDeadlineExceeded, p.timeout)
		}
		p.markProcessed(event.DedupeKey())
		p.processOne(ctx, event)
	}
	p.metrics.BatchCompleted(time.Since(start))
	return nil
}

func (p *EventProcessor) processOne(ctx context.Context, event webhook.Event) {
	start := time.Now()
	conversationID := event.Source().ConversationID()
	memberCount := p.counter.Count(ctx, event)

	err := p.store.InTransaction(ctx, func(ctx context.Context) error {
		return p.dispatch(ctx, event, conversationID, memberCount)
	})
	if err != nil {
		p.reportFailure(event, conversationID, err)
		return
	}
	p.metrics.EventSucceeded(event.Kind(), time.Since(start))
}

func (p *EventProcessor) dispatch(ctx context.Context, event webhook.Event, conversationID string, memberCount int) error {
	switch event := event.(type) {
	case webhook.MessageEvent:
		if event.From.IsOneOnOne() {
			return p.direct.Handle(ctx, event)
		}
		if err := p.commands.HandleRemoval(ctx, event, conversationID); err != nil {
			return err
		}
		if err := p.commands.HandleCadence(ctx, event, conversationID); err != nil {
			return err
		}
		return p.lifecycle.UpdateOnMessage(ctx, conversationID, memberCount)
	case webhook.JoinEvent:
		return p.join(ctx, conversationID, memberCount, webhook.KindJoin)
	case webhook.MemberJoinedEvent:
		return p.join(ctx, conversationID, memberCount, webhook.KindMemberJoined)
	case webhook.LeaveEvent, webhook.MemberLeftEvent:
		return p.lifecycle.DeleteIfEmpty(ctx, conversationID, memberCount)
	default:
		return fmt.Errorf("unhandled event kind %q", event.Kind())
	}
}

func (p *EventProcessor) join(ctx context.Context, conversationID string, memberCount int, kind webhook.Kind) error {
	if _, err := p.lifecycle.FindOrCreate(ctx, conversationID, memberCount); err != nil {
		return err
	}
	return p.lifecycle.SendWelcome(ctx, conversationID, kind)
}

// reportFailure isolates one event's error: log it sanitized, notify the
// error sink, record the failure, move on.
func (p *EventProcessor) reportFailure(event webhook.Event, conversationID string, err error) {
	message := apperrors.FormatError(err, "Event Processing")
	p.log.Error(message, "conversation_id", conversationID, "kind", event.Kind())
	p.notifier.Notify(conversationID, message)
	p.metrics.EventFailed(event.Kind())
}

func (p *EventProcessor) alreadyProcessed(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.seen[key]
	return ok
}

// markProcessed records the key, evicting the oldest one once the set is
// full. Keys are recorded before dispatch: a failed event is reported, not
// replayed. Events dropped by the deadline are never recorded, so the
// platform's redelivery reaches them again.
func (p *EventProcessor) markProcessed(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.seen[key] = struct{}{}
	p.order = append(p.order, key)
	if len(p.order) > p.capacity {
		oldest := p.order[0]
		p.order = p.order[1:]
		delete(p.seen, oldest)
	}
}
