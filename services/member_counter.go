//go:generate go run go.uber.org/mock/mockgen -source=member_counter.go -destination=../mocks/mock_member_counter.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"reline-bot/domain/webhook"
	"reline-bot/line"
	"reline-bot/observability"
)

// FallbackMemberCount is assumed for one-to-one chats and whenever the
// platform cannot be queried. Two members keeps the chat viable for the
// direct-reply logic without any group bookkeeping.
const FallbackMemberCount = 2

const memberCountCache = "member_count"

type IMemberCounter interface {
	Count(ctx context.Context, event webhook.Event) int
}

type countEntry struct {
	count     int
	expiresAt time.Time
}

// MemberCounter resolves the current member count of a conversation,
// caching results per conversation id to keep the event hot path cheap.
// It never fails: transport errors degrade to FallbackMemberCount.
type MemberCounter struct {
	adapter line.Adapter
	log     *slog.Logger
	metrics *observability.Metrics
	ttl     time.Duration

	mu    sync.Mutex
	cache map[string]countEntry
	now   func() time.Time
}

func NewMemberCounter(adapter line.Adapter, log *slog.Logger, metrics *observability.Metrics, ttl time.Duration) *MemberCounter {
	return &MemberCounter{
		adapter: adapter,
		log:     log,
		metrics: metrics,
		ttl:     ttl,
		cache:   make(map[string]countEntry),
		now:     time.Now,
	}
}

func (c *MemberCounter) Count(ctx context.Context, event webhook.Event) int {
	source := event.Source()
	if source.IsOneOnOne() {
		return FallbackMemberCount
	}

	conversationID := source.ConversationID()
	if count, ok := c.cached(conversationID); ok {
		c.metrics.CacheHit(memberCountCache)
		return count
	}
	c.metrics.CacheMiss(memberCountCache)

	count, err := c.query(ctx, source)
	if err != nil {
		c.log.Warn("Failed to get member count", "conversation_id", conversationID, "error", err)
		return FallbackMemberCount
	}

	c.store(conversationID, count)
	return count
}

func (c *MemberCounter) query(ctx context.Context, source webhook.Source) (int, error) {
	if source.GroupID != "" {
		return c.adapter.GetGroupMemberCount(ctx, source.GroupID)
	}
	return c.adapter.GetRoomMemberCount(ctx, source.RoomID)
}

func (c *MemberCounter) cached(conversationID string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.cache[conversationID]
	if !ok || c.now().After(entry.expiresAt) {
		return 0, false
	}
	return entry.count, true
}

func (c *MemberCounter) store(conversationID string, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[conversationID] = countEntry{count: count, expiresAt: c.now().Add(c.ttl)}
}
