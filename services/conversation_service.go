//go:generate go run go.uber.org/mock/mockgen -source=conversation_service.go -destination=../mocks/mock_conversation_service.go -package=mocks
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"reline-bot/domain"
	"reline-bot/domain/webhook"
	apperrors "reline-bot/errors"
	"reline-bot/line"
	"reline-bot/repositories"
)

const (
	welcomeJoinText         = "加えてくれてありがとうニャ🌟！！最後のLINEから3週間〜2ヶ月後にwake upのLINEするニャ！！（反応が無いとすぐかも知れニャンよ⏰）末永くよろしくニャ🐱🐾"
	welcomeMemberJoinedText = "初めまして🌟ReLINE(https://www.cat-reline.com/)の\"猫さん\"っていうニャ🐱よろしくニャ🐾！！"
)

type IConversationService interface {
	FindOrCreate(ctx context.Context, conversationID string, memberCount int) (*domain.Conversation, error)
	UpdateOnMessage(ctx context.Context, conversationID string, memberCount int) error
	DeleteIfEmpty(ctx context.Context, conversationID string, memberCount int) error
	SendWelcome(ctx context.Context, conversationID string, kind webhook.Kind) error
	SetCadence(ctx context.Context, conversationID string, cadence domain.Cadence) error
}

// ConversationService owns every mutation of Conversation records:
// creation on join, refresh on message, deletion once the chat is empty
// and cadence transitions.
type ConversationService struct {
	repository repositories.IConversationRepository
	adapter    line.Adapter
	log        *slog.Logger
	now        func() time.Time
}

func NewConversationService(repository repositories.IConversationRepository, adapter line.Adapter, log *slog.Logger) *ConversationService {
	return &ConversationService{
		repository: repository,
		adapter:    adapter,
		log:        log,
		now:        time.Now,
	}
}

// FindOrCreate returns the tracked record for a conversation, creating it on
// first sight. Conversations only get tracked with at least two members;
// anything else returns nil without touching the store.
func (s *ConversationService) FindOrCreate(ctx context.Context, conversationID string, memberCount int) (*domain.Conversation, error) {
	if conversationID == "" || memberCount < 2 {
		return nil, nil
	}

	conversation, err := s.repository.Create(ctx, domain.NewConversation(conversationID, memberCount, s.now()))
	if err != nil {
		return nil, fmt.Errorf("find or create conversation %s: %w", conversationID, err)
	}
	return &conversation, nil
}

// UpdateOnMessage refreshes the member count and bumps the post counter.
// Silently ignores untracked conversations.
func (s *ConversationService) UpdateOnMessage(ctx context.Context, conversationID string, memberCount int) error {
	if memberCount < 2 {
		return nil
	}

	conversation, err := s.repository.Find(ctx, conversationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrConversationNotFound) {
			return nil
		}
		return err
	}

	conversation.Touch(memberCount, s.now())
	return s.repository.Update(ctx, conversation)
}

// DeleteIfEmpty destroys the record once the bot is alone in the chat.
func (s *ConversationService) DeleteIfEmpty(ctx context.Context, conversationID string, memberCount int) error {
	if memberCount > 1 {
		return nil
	}
	if _, err := s.repository.Find(ctx, conversationID); err != nil {
		if errors.Is(err, apperrors.ErrConversationNotFound) {
			return nil
		}
		return err
	}
	s.log.Info("Deleting empty conversation", "conversation_id", conversationID)
	return s.repository.Delete(ctx, conversationID)
}

// SendWelcome pushes the greeting for a join-type event. No state mutation.
func (s *ConversationService) SendWelcome(ctx context.Context, conversationID string, kind webhook.Kind) error {
	var text string
	switch kind {
	case webhook.KindJoin:
		text = welcomeJoinText
	case webhook.KindMemberJoined:
		text = welcomeMemberJoinedText
	default:
		return fmt.Errorf("no welcome message for event kind %q", kind)
	}
	return s.adapter.PushMessage(ctx, conversationID, text)
}

// SetCadence transitions the reminder cadence. Any cadence may follow any
// other. Returns ErrConversationNotFound for untracked conversations so the
// caller can decide whether that is worth a confirmation.
func (s *ConversationService) SetCadence(ctx context.Context, conversationID string, cadence domain.Cadence) error {
	conversation, err := s.repository.Find(ctx, conversationID)
	if err != nil {
		return err
	}

	conversation.Cadence = cadence
	conversation.UpdatedAt = s.now()
	return s.repository.Update(ctx, conversation)
}
