//go:generate go run go.uber.org/mock/mockgen -source=conversation.go -destination=../mocks/mock_conversation_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"

	"reline-bot/domain"
	apperrors "reline-bot/errors"
)

type IConversationRepository interface {
	Find(ctx context.Context, conversationID string) (domain.Conversation, error)
	// Create is idempotent on the conversation id: a second create attempt
	// returns the record already stored, never a duplicate.
	Create(ctx context.Context, conversation domain.Conversation) (domain.Conversation, error)
	Update(ctx context.Context, conversation domain.Conversation) error
	Delete(ctx context.Context, conversationID string) error
	ListAll(ctx context.Context) ([]domain.Conversation, error)
}

// ITransactor scopes a group of store operations to one atomic transaction.
// The callback receives a context carrying the transaction; repository calls
// made with it share the same commit/rollback fate.
type ITransactor interface {
	InTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

const conversationPrefix = "conversation:"

type ConversationRepository struct {
	db       *badger.DB
	log      *slog.Logger
	validate *validator.Validate
}

func NewConversationRepository(db *badger.DB, log *slog.Logger) *ConversationRepository {
	return &ConversationRepository{db: db, log: log, validate: validator.New()}
}

type txnKey struct{}

func withTxn(ctx context.Context, txn *badger.Txn) context.Context {
	return context.WithValue(ctx, txnKey{}, txn)
}

func txnFrom(ctx context.Context) *badger.Txn {
	txn, _ := ctx.Value(txnKey{}).(*badger.Txn)
	return txn
}

// InTransaction runs fn inside a single read-write transaction. Any error
// from fn discards every write made through the carried context.
func (r *ConversationRepository) InTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if txnFrom(ctx) != nil {
		// Already inside a transaction, join it.
		return fn(ctx)
	}
	txn := r.db.NewTransaction(true)
	defer txn.Discard()

	if err := fn(withTxn(ctx, txn)); err != nil {
		return err
	}
	return txn.Commit()
}

func (r *ConversationRepository) view(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if txn := txnFrom(ctx); txn != nil {
		return fn(txn)
	}
	return r.db.View(fn)
}

func (r *ConversationRepository) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if txn := txnFrom(ctx); txn != nil {
		return fn(txn)
	}
	return r.db.Update(fn)
}

func conversationKey(conversationID string) []byte {
	return []byte(conversationPrefix + conversationID)
}

func (r *ConversationRepository) Find(ctx context.Context, conversationID string) (domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.view(ctx, func(txn *badger.Txn) error {
		item, err := txn.Get(conversationKey(conversationID))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return apperrors.ErrConversationNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &conversation)
		})
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	return conversation, nil
}

func (r *ConversationRepository) Create(ctx context.Context, conversation domain.Conversation) (domain.Conversation, error) {
	if err := r.validate.Struct(conversation); err != nil {
		return domain.Conversation{}, fmt.Errorf("invalid conversation: %w", err)
	}

	stored := conversation
	err := r.update(ctx, func(txn *badger.Txn) error {
		key := conversationKey(conversation.ConversationID)
		item, err := txn.Get(key)
		if err == nil {
			// Uniqueness on the conversation id: hand back the existing record.
			return item.Value(func(val []byte) error {
				return json.Unmarshal(val, &stored)
			})
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		data, err := json.Marshal(conversation)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return domain.Conversation{}, err
	}
	return stored, nil
}

func (r *ConversationRepository) Update(ctx context.Context, conversation domain.Conversation) error {
	if err := r.validate.Struct(conversation); err != nil {
		return fmt.Errorf("invalid conversation: %w", err)
	}
	data, err := json.Marshal(conversation)
	if err != nil {
		return err
	}
	return r.update(ctx, func(txn *badger.Txn) error {
		return txn.Set(conversationKey(conversation.ConversationID), data)
	})
}

func (r *ConversationRepository) Delete(ctx context.Context, conversationID string) error {
	return r.update(ctx, func(txn *badger.Txn) error {
		return txn.Delete(conversationKey(conversationID))
	})
}

// ListAll scans every conversation record. Used by the scheduler side and
// the seeding/inspection tooling, not by the hot path.
func (r *ConversationRepository) ListAll(ctx context.Context) ([]domain.Conversation, error) {
	var conversations []domain.Conversation
	err := r.view(ctx, func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(conversationPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var conversation domain.Conversation
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &conversation)
			})
			if err != nil {
				return err
			}
			conversations = append(conversations, conversation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conversations, nil
}
