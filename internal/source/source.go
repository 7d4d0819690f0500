// Package source provides the asynchronous item sources a list controller
// pages through.
package source

import (
	"context"
	"errors"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/listing"
)

// ItemSource returns one page of items for a facet and sort key. Pages are
// 1-based. A page shorter than pageSize means the source is exhausted.
type ItemSource interface {
	FetchPage(ctx context.Context, facet domain.Facet, key domain.SortKey, page, pageSize int) ([]domain.Item, error)
}

// Func adapts a plain function to ItemSource.
type Func func(ctx context.Context, facet domain.Facet, key domain.SortKey, page, pageSize int) ([]domain.Item, error)

func (f Func) FetchPage(ctx context.Context, facet domain.Facet, key domain.SortKey, page, pageSize int) ([]domain.Item, error) {
	return f(ctx, facet, key, page, pageSize)
}

// paginate runs the listing pipeline over a candidate set and cuts out one
// page, so every source orders pages the way the list will show them.
func paginate(items []domain.Item, facet domain.Facet, key domain.SortKey, page, pageSize int, now time.Time) ([]domain.Item, error) {
	sorted, err := listing.Sort(listing.Filter(items, facet, now), key, now)
	if err != nil {
		return nil, err
	}
	return listing.Slice(sorted, pageSize, page)
}

// fetchError wraps err as a fetch failure unless it already is one or it
// is a caller mistake (bad sort key or page state).
func fetchError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrFetchFailure) ||
		errors.Is(err, domain.ErrInvalidSortKey) ||
		errors.Is(err, domain.ErrInvalidPageState) {
		return err
	}
	return &domain.FetchError{Op: op, Err: err}
}
