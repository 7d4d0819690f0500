package source

import (
	"context"
	"slices"
	"sync"
	"time"

	"newsdesk/internal/domain"
)

// Memory serves pages from a fixed slice. Search results are browsed
// through it.
type Memory struct {
	mu    sync.RWMutex
	items []domain.Item
	now   func() time.Time
}

func NewMemory(items []domain.Item) *Memory {
	return &Memory{items: slices.Clone(items), now: time.Now}
}

// SetClock sets the time facets and trending scores are computed against.
func (m *Memory) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// Set swaps the backing items.
func (m *Memory) Set(items []domain.Item) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = slices.Clone(items)
}

func (m *Memory) Items() []domain.Item {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.items)
}

func (m *Memory) FetchPage(ctx context.Context, facet domain.Facet, key domain.SortKey, page, pageSize int) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fetchError("memory fetch", err)
	}
	m.mu.RLock()
	items, now := m.items, m.now
	m.mu.RUnlock()
	return paginate(items, facet, key, page, pageSize, now())
}
