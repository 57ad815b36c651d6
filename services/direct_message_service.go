//go:generate go run go.uber.org/mock/mockgen -source=direct_message_service.go -destination=../mocks/mock_direct_message_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"

	"reline-bot/domain"
	"reline-bot/domain/webhook"
	"reline-bot/line"
)

const (
	usageText          = "【ReLINE】の使い方はこちらで確認してほしいにゃ！🐱🐾https://www.cat-reline.com/"
	stickerThanksText  = "スタンプありがとうニャ！✨\nお礼にこちらをお送りするニャ🐾🐾\n%s"
	dontUnderstandText = "ごめんニャ😿分からないニャ。。。"
)

type IDirectMessageService interface {
	Handle(ctx context.Context, event webhook.MessageEvent) error
}

// DirectMessageService answers one-to-one messages. There is no Conversation
// record for these chats; every inbound message gets exactly one reply.
type DirectMessageService struct {
	adapter line.Adapter
	sampler IContentSampler
	log     *slog.Logger
}

func NewDirectMessageService(adapter line.Adapter, sampler IContentSampler, log *slog.Logger) *DirectMessageService {
	return &DirectMessageService{adapter: adapter, sampler: sampler, log: log}
}

func (s *DirectMessageService) Handle(ctx context.Context, event webhook.MessageEvent) error {
	text, err := s.buildReply(ctx, event)
	if err != nil {
		return err
	}
	return s.adapter.ReplyMessage(ctx, event.ReplyToken, text)
}

func (s *DirectMessageService) buildReply(ctx context.Context, event webhook.MessageEvent) (string, error) {
	switch event.MessageKind {
	case webhook.MessageText:
		return usageText, nil
	case webhook.MessageSticker:
		content, err := s.sampler.Sample(ctx, domain.CategoryFree)
		if err != nil {
			return "", fmt.Errorf("sample sticker reply: %w", err)
		}
		if content == nil {
			// No rows seeded yet, thank without a gift.
			return fmt.Sprintf(stickerThanksText, ""), nil
		}
		return fmt.Sprintf(stickerThanksText, content.Body), nil
	default:
		return dontUnderstandText, nil
	}
}
