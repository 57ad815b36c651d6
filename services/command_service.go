//go:generate go run go.uber.org/mock/mockgen -source=command_service.go -destination=../mocks/mock_command_service.go -package=mocks
package services

import (
	"context"
	"errors"
	"log/slog"

	"reline-bot/domain"
	"reline-bot/domain/webhook"
	apperrors "reline-bot/errors"
	"reline-bot/line"
)

// In-band command phrases. Matching is exact, never fuzzy.
const (
	RemovalCommand     = "Cat sleeping on our Memory."
	CadenceFasterText  = "Would you set to faster."
	CadenceLatterText  = "Would you set to latter."
	CadenceDefaultText = "Would you set to default."

	cadenceConfirmationText = "了解ニャ！次の投稿から設定を適応するニャ🐾！！"
)

type ICommandService interface {
	HandleRemoval(ctx context.Context, event webhook.MessageEvent, conversationID string) error
	HandleCadence(ctx context.Context, event webhook.MessageEvent, conversationID string) error
}

// CommandService recognizes the fixed text commands users can send in a
// group chat: one to kick the bot out, three to change the reminder cadence.
type CommandService struct {
	adapter   line.Adapter
	lifecycle IConversationService
	log       *slog.Logger
}

func NewCommandService(adapter line.Adapter, lifecycle IConversationService, log *slog.Logger) *CommandService {
	return &CommandService{adapter: adapter, lifecycle: lifecycle, log: log}
}

// HandleRemoval leaves the group or room when the removal phrase is sent.
// Any other text is ignored.
func (s *CommandService) HandleRemoval(ctx context.Context, event webhook.MessageEvent, conversationID string) error {
	if event.Text != RemovalCommand {
		return nil
	}

	s.log.Info("Removal command received", "conversation_id", conversationID)
	if event.From.GroupID != "" {
		return s.adapter.LeaveGroup(ctx, conversationID)
	}
	if event.From.RoomID != "" {
		return s.adapter.LeaveRoom(ctx, conversationID)
	}
	return nil
}

// HandleCadence applies a cadence phrase and pushes a confirmation.
// Non-command text and untracked conversations are silent no-ops.
func (s *CommandService) HandleCadence(ctx context.Context, event webhook.MessageEvent, conversationID string) error {
	cadence, ok := cadenceFor(event.Text)
	if !ok {
		return nil
	}

	if err := s.lifecycle.SetCadence(ctx, conversationID, cadence); err != nil {
		if errors.Is(err, apperrors.ErrConversationNotFound) {
			// Bot was added but the chat never got tracked.
			return nil
		}
		return err
	}

	return s.adapter.PushMessage(ctx, conversationID, cadenceConfirmationText)
}

func cadenceFor(text string) (domain.Cadence, bool) {
	switch text {
	case CadenceFasterText:
		return domain.CadenceFaster, true
	case CadenceLatterText:
		return domain.CadenceLatter, true
	case CadenceDefaultText:
		return domain.CadenceRandom, true
	default:
		return domain.CadenceRandom, false
	}
}
