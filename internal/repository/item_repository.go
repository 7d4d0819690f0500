package repository

import (
	"context"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/query"
)

type ItemRepository interface {
	Upsert(ctx context.Context, item *domain.Item) error
	UpsertMany(ctx context.Context, items []domain.Item) (int, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	List(ctx context.Context, filter ItemFilter) ([]domain.Item, error)
	Count(ctx context.Context, filter ItemFilter) (int64, error)
	Categories(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
}

// filtering options for item lists
type ItemFilter struct {
	// facet pushdown
	Topic    string // category or tag
	Category string
	Tag      string
	Kind     domain.Kind
	Since    *time.Time
	Until    *time.Time

	// search
	SearchQuery string // LIKE match on title and excerpt

	IDs []string

	// pagination, in insertion order
	Limit  int
	Offset int
}

// FacetFilter translates a facet into the filter the store can push down.
// ok is false when the facet cannot match anything, so callers can skip
// the query.
func FacetFilter(facet domain.Facet, now time.Time) (filter ItemFilter, ok bool) {
	kind, value := facet.Parts()

	switch kind {
	case domain.FacetKindAll:
		return ItemFilter{}, true
	case domain.FacetKindTopic:
		return ItemFilter{Topic: value}, true
	case domain.FacetKindCategory:
		return ItemFilter{Category: value}, true
	case domain.FacetKindTag:
		return ItemFilter{Tag: value}, true
	case domain.FacetKindType:
		k := domain.Kind(value)
		if !domain.IsValidKind(k) {
			return ItemFilter{}, false
		}
		return ItemFilter{Kind: k}, true
	case domain.FacetKindWindow:
		since, err := query.ParseWindow(value, now)
		if err != nil {
			return ItemFilter{}, false
		}
		return ItemFilter{Since: &since, Until: &now}, true
	default:
		return ItemFilter{}, false
	}
}
