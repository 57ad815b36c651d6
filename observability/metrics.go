// Package observability aggregates processing counters for the bot.
package observability

import (
	"sync"
	"sync/atomic"
	"time"

	"reline-bot/domain/webhook"
)

// KindStats are the per-event-kind counters. Durations are cumulative so
// callers can derive an average; no per-conversation breakdown is kept to
// avoid high-cardinality labels.
type KindStats struct {
	Succeeded      uint64        `json:"succeeded"`
	Failed         uint64        `json:"failed"`
	TotalProcessed time.Duration `json:"total_processed"`
}

// CacheStats counts lookups in one of the in-memory caches, keyed by the
// cache's name in Stats.
type CacheStats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

type Stats struct {
	Kinds         map[webhook.Kind]KindStats `json:"kinds"`
	Caches        map[string]CacheStats      `json:"caches"`
	Batches       uint64                     `json:"batches"`
	BatchDuration time.Duration              `json:"batch_duration"`
	BatchTimeouts uint64                     `json:"batch_timeouts"`
	DedupeSkipped uint64                     `json:"dedupe_skipped"`
}

// Metrics is the process-local metrics sink for webhook processing.
// Safe for concurrent use.
type Metrics struct {
	mu     sync.Mutex
	kinds  map[webhook.Kind]KindStats
	caches map[string]CacheStats

	batches       atomic.Uint64
	batchTimeouts atomic.Uint64
	batchDuration atomic.Int64
	dedupeSkipped atomic.Uint64
}

func NewMetrics() *Metrics {
	return &Metrics{
		kinds:  make(map[webhook.Kind]KindStats),
		caches: make(map[string]CacheStats),
	}
}

func (m *Metrics) EventSucceeded(kind webhook.Kind, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.kinds[kind]
	stats.Succeeded++
	stats.TotalProcessed += duration
	m.kinds[kind] = stats
}

func (m *Metrics) EventFailed(kind webhook.Kind) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.kinds[kind]
	stats.Failed++
	m.kinds[kind] = stats
}

func (m *Metrics) BatchCompleted(duration time.Duration) {
	m.batches.Add(1)
	m.batchDuration.Add(int64(duration))
}

func (m *Metrics) BatchTimedOut() {
	m.batchTimeouts.Add(1)
}

// DedupeSkipped records a redelivered event dropped by the filter.
func (m *Metrics) DedupeSkipped() {
	m.dedupeSkipped.Add(1)
}

func (m *Metrics) CacheHit(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.caches[name]
	stats.Hits++
	m.caches[name] = stats
}

func (m *Metrics) CacheMiss(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := m.caches[name]
	stats.Misses++
	m.caches[name] = stats
}

// Snapshot copies the current counters.
func (m *Metrics) Snapshot() Stats {
	m.mu.Lock()
	kinds := make(map[webhook.Kind]KindStats, len(m.kinds))
	for kind, stats := range m.kinds {
		kinds[kind] = stats
	}
	caches := make(map[string]CacheStats, len(m.caches))
	for name, stats := range m.caches {
		caches[name] = stats
	}
	m.mu.Unlock()

	return Stats{
		Kinds:         kinds,
		Caches:        caches,
		Batches:       m.batches.Load(),
		BatchDuration: time.Duration(m.batchDuration.Load()),
		BatchTimeouts: m.batchTimeouts.Load(),
		DedupeSkipped: m.dedupeSkipped.Load(),
	}
}
