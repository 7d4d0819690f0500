package source

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"newsdesk/internal/domain"
	"newsdesk/internal/repository"
)

// Repository serves pages from the item store. The facet is pushed down
// to the store as a prefilter; the exact filter, sort and paging run in
// the listing package so store pages and list pages agree.
type Repository struct {
	items  repository.ItemRepository
	logger *log.Logger
	now    func() time.Time
}

func NewRepository(items repository.ItemRepository, logger *log.Logger) *Repository {
	return &Repository{items: items, logger: logger, now: time.Now}
}

func (r *Repository) FetchPage(ctx context.Context, facet domain.Facet, key domain.SortKey, page, pageSize int) ([]domain.Item, error) {
	now := r.now()

	filter, ok := repository.FacetFilter(facet, now)
	if !ok {
		r.debug("facet matches nothing", "facet", facet)
		return []domain.Item{}, nil
	}

	candidates, err := r.items.List(ctx, filter)
	if err != nil {
		return nil, fetchError("list items", err)
	}

	out, err := paginate(candidates, facet, key, page, pageSize, now)
	if err != nil {
		return nil, err
	}

	r.debug("fetched page", "facet", facet, "sort", key, "page", page, "size", pageSize, "returned", len(out), "candidates", len(candidates))
	return out, nil
}

func (r *Repository) debug(msg string, keyvals ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, keyvals...)
	}
}
