package cache

import (
	"context"
	"sort"
	"sync"

	"haikubot/internal/models"
)

// Memory keeps entries in process. Used for development and tests.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]models.CacheEntry
}

// NewMemory creates an empty in-process store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]models.CacheEntry)}
}

func (m *Memory) Get(_ context.Context, word string) (*models.CacheEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[word]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *Memory) Put(_ context.Context, entry models.CacheEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.Word] = entry
	return nil
}

func (m *Memory) ListNeedingReview(_ context.Context, limit int) ([]models.CacheEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var entries []models.CacheEntry
	for _, e := range m.entries {
		if e.NeedsReview {
			entries = append(entries, e)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Word < entries[j].Word })
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (m *Memory) CountNeedingReview(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, e := range m.entries {
		if e.NeedsReview {
			n++
		}
	}
	return n, nil
}

func (m *Memory) Close() error { return nil }
