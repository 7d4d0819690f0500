// Package search runs a search line against the item store: structured
// constraints narrow the candidates, free text ranks them.
package search

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"newsdesk/internal/domain"
	"newsdesk/internal/fuzzy"
	"newsdesk/internal/logging"
	"newsdesk/internal/query"
	"newsdesk/internal/repository"
	"newsdesk/internal/source"
)

// Recorder keeps the recent search history.
type Recorder interface {
	RecordSearch(ctx context.Context, query string) error
}

type Service struct {
	items     repository.ItemRepository
	recorder  Recorder
	logger    *log.Logger
	threshold int
	now       func() time.Time
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

func WithLogger(logger *log.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func WithThreshold(threshold int) Option {
	return func(s *Service) { s.threshold = threshold }
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(items repository.ItemRepository, opts ...Option) *Service {
	s := &Service{
		items:     items,
		threshold: fuzzy.DefaultThreshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	return s
}

type Hit struct {
	Item  domain.Item
	Score int
}

type Result struct {
	Input  string
	Search query.Search
	// Hits are ranked by relevance when the search has text, otherwise
	// they keep store order.
	Hits []Hit
}

func (r Result) Items() []domain.Item {
	items := make([]domain.Item, len(r.Hits))
	for i, h := range r.Hits {
		items[i] = h.Item
	}
	return items
}

// Source serves the hits as a list the controller can page through.
func (r Result) Source(now func() time.Time) *source.Memory {
	m := source.NewMemory(r.Items())
	if now != nil {
		m.SetClock(now)
	}
	return m
}

// Find parses input, loads the candidates and ranks them. Non-empty
// inputs are recorded in the search history.
func (s *Service) Find(ctx context.Context, input string) (Result, error) {
	now := s.now()

	categories, err := s.items.Categories(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load categories: %w", err)
	}

	parsed, err := query.Parse(input, query.ConverterContext{Categories: categories, Now: now})
	if err != nil {
		return Result{}, err
	}

	result := Result{Input: input, Search: parsed, Hits: []Hit{}}

	filter, ok := repository.FacetFilter(parsed.Facet(), now)
	if !ok {
		return result, nil
	}
	filter.Since, filter.Until = parsed.Since, parsed.Until

	candidates, err := s.items.List(ctx, filter)
	if err != nil {
		return Result{}, fmt.Errorf("failed to list items: %w", err)
	}

	matched := make([]domain.Item, 0, len(candidates))
	for _, item := range candidates {
		if parsed.Matches(item) {
			matched = append(matched, item)
		}
	}

	if parsed.Text == "" {
		for _, item := range matched {
			result.Hits = append(result.Hits, Hit{Item: item})
		}
	} else {
		for _, m := range fuzzy.SearchItems(parsed.Text, matched, s.threshold) {
			result.Hits = append(result.Hits, Hit{Item: m.Item, Score: m.Score})
		}
	}

	s.logger.Info("search", "query", input, "candidates", len(candidates), "hits", len(result.Hits))

	if s.recorder != nil && !parsed.IsEmpty() {
		if err := s.recorder.RecordSearch(ctx, input); err != nil {
			s.logger.Warn("failed to record search", "query", input, "err", err)
		}
	}

	return result, nil
}
