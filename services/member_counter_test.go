package services

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reline-bot/domain/webhook"
	"reline-bot/mocks"
	"reline-bot/observability"
)

func TestMemberCounter_OneOnOneFallsBackWithoutQuery(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	counter := NewMemberCounter(adapter, slog.Default(), observability.NewMetrics(), 5*time.Minute)

	event := webhook.MessageEvent{At: 1, MessageID: "m1"}
	req.Equal(FallbackMemberCount, counter.Count(context.Background(), event))
}

func TestMemberCounter_GroupCountIsCached(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	adapter.EXPECT().GetGroupMemberCount(gomock.Any(), "G1").Return(5, nil).Times(1)

	metrics := observability.NewMetrics()
	counter := NewMemberCounter(adapter, logs.GetLoggerFromLevel(slog.LevelDebug), metrics, 5*time.Minute)
	event := webhook.JoinEvent{At: 1, From: webhook.Source{GroupID: "G1"}}

	req.Equal(5, counter.Count(context.Background(), event))
	req.Equal(5, counter.Count(context.Background(), event))

	cache := metrics.Snapshot().Caches["member_count"]
	req.Equal(uint64(1), cache.Misses)
	req.Equal(uint64(1), cache.Hits)
}

func TestMemberCounter_RoomCount(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	adapter.EXPECT().GetRoomMemberCount(gomock.Any(), "R1").Return(3, nil).Times(1)

	counter := NewMemberCounter(adapter, slog.Default(), observability.NewMetrics(), 5*time.Minute)
	event := webhook.JoinEvent{At: 1, From: webhook.Source{RoomID: "R1"}}

	req.Equal(3, counter.Count(context.Background(), event))
}

func TestMemberCounter_AdapterFailureFallsBack(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	adapter.EXPECT().GetGroupMemberCount(gomock.Any(), "G1").
		Return(0, fmt.Errorf("transport down")).Times(2)

	counter := NewMemberCounter(adapter, slog.Default(), observability.NewMetrics(), 5*time.Minute)
	event := webhook.JoinEvent{At: 1, From: webhook.Source{GroupID: "G1"}}

	// Failures are not cached: the next call queries again.
	req.Equal(FallbackMemberCount, counter.Count(context.Background(), event))
	req.Equal(FallbackMemberCount, counter.Count(context.Background(), event))
}

func TestMemberCounter_CacheExpires(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	first := adapter.EXPECT().GetGroupMemberCount(gomock.Any(), "G1").Return(5, nil)
	adapter.EXPECT().GetGroupMemberCount(gomock.Any(), "G1").Return(4, nil).After(first)

	counter := NewMemberCounter(adapter, slog.Default(), observability.NewMetrics(), 5*time.Minute)
	current := time.Now()
	counter.now = func() time.Time { return current }
	event := webhook.JoinEvent{At: 1, From: webhook.Source{GroupID: "G1"}}

	req.Equal(5, counter.Count(context.Background(), event))

	current = current.Add(6 * time.Minute)
	req.Equal(4, counter.Count(context.Background(), event))
}
