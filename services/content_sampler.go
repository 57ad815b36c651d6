//go:generate go run go.uber.org/mock/mockgen -source=content_sampler.go -destination=../mocks/mock_content_sampler.go -package=mocks
package services

import (
	"context"
	"sync"
	"time"

	"github.com/samber/lo"

	"reline-bot/domain"
	"reline-bot/observability"
	"reline-bot/repositories"
)

const contentCache = "content"

type IContentSampler interface {
	Sample(ctx context.Context, category domain.ContentCategory) (*domain.Content, error)
	PreloadAll(ctx context.Context) error
	Available(ctx context.Context, category domain.ContentCategory) (bool, error)
}

type sampleEntry struct {
	contents  []domain.Content
	expiresAt time.Time
}

// ContentSampler serves uniformly random content rows from a per-category
// cache, so a burst of samples costs one store query per category instead
// of one per sample.
type ContentSampler struct {
	repository repositories.IContentRepository
	metrics    *observability.Metrics
	ttl        time.Duration

	mu    sync.Mutex
	cache map[domain.ContentCategory]sampleEntry
	now   func() time.Time
}

func NewContentSampler(repository repositories.IContentRepository, metrics *observability.Metrics, ttl time.Duration) *ContentSampler {
	return &ContentSampler{
		repository: repository,
		metrics:    metrics,
		ttl:        ttl,
		cache:      make(map[domain.ContentCategory]sampleEntry),
		now:        time.Now,
	}
}

// Sample returns a random row for the category, or nil when none exist.
// An expired or missing cache entry is refreshed with a single query.
func (s *ContentSampler) Sample(ctx context.Context, category domain.ContentCategory) (*domain.Content, error) {
	contents, err := s.contents(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(contents) == 0 {
		return nil, nil
	}
	return lo.ToPtr(lo.Sample(contents)), nil
}

// PreloadAll refreshes every known category once. Call it before a burst of
// rapid Sample calls to avoid one round-trip per sample.
func (s *ContentSampler) PreloadAll(ctx context.Context) error {
	for _, category := range domain.Categories() {
		if _, err := s.refresh(ctx, category); err != nil {
			return err
		}
	}
	return nil
}

// Available reports whether the category has at least one row.
func (s *ContentSampler) Available(ctx context.Context, category domain.ContentCategory) (bool, error) {
	contents, err := s.contents(ctx, category)
	if err != nil {
		return false, err
	}
	return len(contents) > 0, nil
}

func (s *ContentSampler) contents(ctx context.Context, category domain.ContentCategory) ([]domain.Content, error) {
	s.mu.Lock()
	entry, ok := s.cache[category]
	s.mu.Unlock()

	if ok && s.now().Before(entry.expiresAt) {
		s.metrics.CacheHit(contentCache)
		return entry.contents, nil
	}
	s.metrics.CacheMiss(contentCache)
	return s.refresh(ctx, category)
}

func (s *ContentSampler) refresh(ctx context.Context, category domain.ContentCategory) ([]domain.Content, error) {
	contents, err := s.repository.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.cache[category] = sampleEntry{contents: contents, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return contents, nil
}
