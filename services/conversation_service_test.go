package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reline-bot/domain"
	"reline-bot/domain/webhook"
	apperrors "reline-bot/errors"
	"reline-bot/mocks"
	"reline-bot/repositories"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newLifecycle(t *testing.T, adapter *mocks.MockAdapter) (*ConversationService, *repositories.ConversationRepository) {
	t.Helper()
	repository := repositories.NewConversationRepository(openTestDB(t), slog.Default())
	return NewConversationService(repository, adapter, slog.Default()), repository
}

func TestConversationService_FindOrCreate(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	lifecycle, _ := newLifecycle(t, mocks.NewMockAdapter(ctrl))
	ctx := context.Background()

	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)
	lifecycle.now = func() time.Time { return now }

	conversation, err := lifecycle.FindOrCreate(ctx, "G2", 3)
	req.NoError(err)
	req.NotNil(conversation)
	req.Equal("G2", conversation.ConversationID)
	req.Equal(domain.CadenceRandom, conversation.Cadence)
	req.Equal(domain.StatusWait, conversation.Status)
	req.Equal(time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), conversation.NextRemindAt)
	req.Equal(3, conversation.MemberCount)
}

func TestConversationService_FindOrCreate_IsIdempotent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	lifecycle, repository := newLifecycle(t, mocks.NewMockAdapter(ctrl))
	ctx := context.Background()

	first, err := lifecycle.FindOrCreate(ctx, "G2", 5)
	req.NoError(err)
	second, err := lifecycle.FindOrCreate(ctx, "G2", 5)
	req.NoError(err)

	req.Equal(first.ConversationID, second.ConversationID)
	req.Equal(first.CreatedAt, second.CreatedAt)

	all, err := repository.ListAll(ctx)
	req.NoError(err)
	req.Len(all, 1)
}

func TestConversationService_FindOrCreate_NotTrackable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	lifecycle, repository := newLifecycle(t, mocks.NewMockAdapter(ctrl))
	ctx := context.Background()

	tests := []struct {
		description    string
		conversationID string
		memberCount    int
	}{
		{"empty id", "", 5},
		{"single member", "G2", 1},
		{"zero members", "G2", 0},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			conversation, err := lifecycle.FindOrCreate(ctx, tt.conversationID, tt.memberCount)
			req.NoError(err)
			req.Nil(conversation)
		})
	}

	all, err := repository.ListAll(ctx)
	req.NoError(err)
	req.Empty(all)
}

func TestConversationService_UpdateOnMessage(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	lifecycle, repository := newLifecycle(t, mocks.NewMockAdapter(ctrl))
	ctx := context.Background()

	_, err := lifecycle.FindOrCreate(ctx, "G2", 3)
	req.NoError(err)

	req.NoError(lifecycle.UpdateOnMessage(ctx, "G2", 4))
	req.NoError(lifecycle.UpdateOnMessage(ctx, "G2", 4))

	found, err := repository.Find(ctx, "G2")
	req.NoError(err)
	req.Equal(2, found.PostCount)
	req.Equal(4, found.MemberCount)
}

func TestConversationService_UpdateOnMessage_NoOps(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	lifecycle, repository := newLifecycle(t, mocks.NewMockAdapter(ctrl))
	ctx := context.Background()

	// Unknown conversation: silent no-op.
	req.NoError(lifecycle.UpdateOnMessage(ctx, "unknown", 4))

	// Count below threshold: no mutation even for a tracked conversation.
	_, err := lifecycle.FindOrCreate(ctx, "G2", 3)
	req.NoError(err)
	req.NoError(lifecycle.UpdateOnMessage(ctx, "G2", 1))

	found, err := repository.Find(ctx, "G2")
	req.NoError(err)
	req.Equal(0, found.PostCount)
	req.Equal(3, found.MemberCount)
}

func TestConversationService_DeleteIfEmpty(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	lifecycle, repository := newLifecycle(t, mocks.NewMockAdapter(ctrl))
	ctx := context.Background()

	_, err := lifecycle.FindOrCreate(ctx, "G2", 3)
	req.NoError(err)

	// Two members left: keep the record.
	req.NoError(lifecycle.DeleteIfEmpty(ctx, "G2", 2))
	_, err = repository.Find(ctx, "G2")
	req.NoError(err)

	// Bot alone: drop it.
	req.NoError(lifecycle.DeleteIfEmpty(ctx, "G2", 1))
	_, err = repository.Find(ctx, "G2")
	req.ErrorIs(err, apperrors.ErrConversationNotFound)

	// Unknown id never raises.
	req.NoError(lifecycle.DeleteIfEmpty(ctx, "unknown", 0))
}

func TestConversationService_SendWelcome(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	adapter := mocks.NewMockAdapter(ctrl)
	lifecycle, _ := newLifecycle(t, adapter)
	ctx := context.Background()

	adapter.EXPECT().PushMessage(gomock.Any(), "G2", welcomeJoinText).Return(nil).Times(1)
	req.NoError(lifecycle.SendWelcome(ctx, "G2", webhook.KindJoin))

	adapter.EXPECT().PushMessage(gomock.Any(), "G2", welcomeMemberJoinedText).Return(nil).Times(1)
	req.NoError(lifecycle.SendWelcome(ctx, "G2", webhook.KindMemberJoined))

	req.Error(lifecycle.SendWelcome(ctx, "G2", webhook.KindLeave))
}

func TestConversationService_SetCadence(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	lifecycle, repository := newLifecycle(t, mocks.NewMockAdapter(ctrl))
	ctx := context.Background()

	_, err := lifecycle.FindOrCreate(ctx, "G2", 3)
	req.NoError(err)

	transitions := []domain.Cadence{
		domain.CadenceFaster,
		domain.CadenceLatter,
		domain.CadenceRandom,
		domain.CadenceLatter,
	}
	for _, cadence := range transitions {
		req.NoError(lifecycle.SetCadence(ctx, "G2", cadence))
		found, err := repository.Find(ctx, "G2")
		req.NoError(err)
		req.Equal(cadence, found.Cadence)
	}

	req.ErrorIs(lifecycle.SetCadence(ctx, "unknown", domain.CadenceFaster), apperrors.ErrConversationNotFound)
}
