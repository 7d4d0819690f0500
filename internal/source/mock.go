package source

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"newsdesk/internal/domain"
)

var ErrSimulated = errors.New("simulated network failure")

var (
	mockCategories = []string{"politics", "tech", "business", "sports", "world", "culture", "science"}
	mockTags       = []string{"breaking", "analysis", "election", "ai", "climate", "markets", "opinion", "live"}
	mockSubjects   = []string{"Council", "Startup", "Markets", "Team", "Summit", "Museum", "Lab", "Court", "Festival", "Parliament"}
	mockVerbs      = []string{"unveils", "rejects", "backs", "delays", "celebrates", "questions", "expands", "reviews"}
	mockObjects    = []string{"new plan", "budget deal", "record season", "climate pact", "chip design", "exhibit", "trade rules", "merger"}
)

type MockConfig struct {
	Count   int
	Seed    uint64
	Latency time.Duration
	Now     time.Time
}

// Generate builds n deterministic items: the same seed and now always give
// the same items, ids included.
func Generate(n int, seed uint64, now time.Time) []domain.Item {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	kinds := domain.Kinds()

	items := make([]domain.Item, 0, n)
	for i := range n {
		id := uuid.NewSHA1(uuid.NameSpaceURL, fmt.Appendf(nil, "newsdesk:mock:%d:%d", seed, i))
		category := mockCategories[rng.IntN(len(mockCategories))]
		title := fmt.Sprintf("%s %s %s",
			mockSubjects[rng.IntN(len(mockSubjects))],
			mockVerbs[rng.IntN(len(mockVerbs))],
			mockObjects[rng.IntN(len(mockObjects))],
		)

		item := domain.Item{
			ID:          id.String(),
			Kind:        kinds[rng.IntN(len(kinds))],
			Category:    category,
			Tags:        []string{mockTags[rng.IntN(len(mockTags))]},
			Title:       title,
			Excerpt:     fmt.Sprintf("Coverage of the %s story, part %d.", category, i+1),
			URL:         fmt.Sprintf("https://news.example.com/%s/%s", category, id),
			Author:      "Newsdesk Staff",
			PublishedAt: now.Add(-time.Duration(rng.IntN(14*24*60)) * time.Minute),
			Popularity:  int64(rng.IntN(50_000)),
			Featured:    i == 0,
		}
		if item.Kind == domain.KindVideo {
			item.Duration = fmt.Sprintf("%d:%02d", 1+rng.IntN(9), rng.IntN(60))
		}
		if item.Kind == domain.KindPhoto || item.Kind == domain.KindVideo {
			item.ImageURL = fmt.Sprintf("https://img.example.com/%s.jpg", id)
		}
		items = append(items, item)
	}
	return items
}

// Mock is a generated source with simulated latency and injectable
// failures, for demos and tests.
type Mock struct {
	memory  *Memory
	latency time.Duration

	mu       sync.Mutex
	calls    int
	failNext int
	failWith error
}

func NewMock(cfg MockConfig) *Mock {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	memory := NewMemory(Generate(cfg.Count, cfg.Seed, cfg.Now))
	memory.now = func() time.Time { return cfg.Now }
	return &Mock{memory: memory, latency: cfg.Latency}
}

// NewMockFrom serves the given items instead of generated ones.
func NewMockFrom(items []domain.Item, latency time.Duration, now time.Time) *Mock {
	memory := NewMemory(items)
	memory.now = func() time.Time { return now }
	return &Mock{memory: memory, latency: latency}
}

// FailNext makes the next n fetches fail with err, or ErrSimulated if err
// is nil.
func (m *Mock) FailNext(n int, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		err = ErrSimulated
	}
	m.failNext = n
	m.failWith = err
}

func (m *Mock) SetLatency(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latency = d
}

// Calls is the number of FetchPage calls so far.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *Mock) Items() []domain.Item {
	return m.memory.Items()
}

func (m *Mock) FetchPage(ctx context.Context, facet domain.Facet, key domain.SortKey, page, pageSize int) ([]domain.Item, error) {
	m.mu.Lock()
	m.calls++
	latency := m.latency
	var fail error
	if m.failNext > 0 {
		m.failNext--
		fail = m.failWith
	}
	m.mu.Unlock()

	if latency > 0 {
		timer := time.NewTimer(latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fetchError("mock fetch", ctx.Err())
		case <-timer.C:
		}
	}

	if fail != nil {
		return nil, fetchError("mock fetch", fail)
	}
	return m.memory.FetchPage(ctx, facet, key, page, pageSize)
}
