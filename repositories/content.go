//go:generate go run go.uber.org/mock/mockgen -source=content.go -destination=../mocks/mock_content_repository.go -package=mocks
package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"

	"reline-bot/domain"
)

type IContentRepository interface {
	ListByCategory(ctx context.Context, category domain.ContentCategory) ([]domain.Content, error)
	Put(ctx context.Context, content domain.Content) error
}

type ContentRepository struct {
	db       *badger.DB
	log      *slog.Logger
	validate *validator.Validate
}

func NewContentRepository(db *badger.DB, log *slog.Logger) *ContentRepository {
	return &ContentRepository{db: db, log: log, validate: validator.New()}
}

// Keys are "content:{category}:{id}" so one category is one prefix scan.
func contentKey(category domain.ContentCategory, id string) []byte {
	return []byte(fmt.Sprintf("content:%s:%s", category, id))
}

func (r *ContentRepository) ListByCategory(ctx context.Context, category domain.ContentCategory) ([]domain.Content, error) {
	var contents []domain.Content
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(fmt.Sprintf("content:%s:", category))
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var content domain.Content
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &content)
			})
			if err != nil {
				return err
			}
			contents = append(contents, content)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *ContentRepository) Put(ctx context.Context, content domain.Content) error {
	if err := r.validate.Struct(content); err != nil {
		return fmt.Errorf("invalid content: %w", err)
	}
	data, err := json.Marshal(content)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(contentKey(content.Category, content.ID), data)
	})
}
