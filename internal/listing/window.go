package listing

import (
	"fmt"

	"newsdesk/internal/domain"
)

// Page is the visible prefix of a sorted, filtered list.
type Page struct {
	Visible []domain.Item
	HasMore bool
	Total   int
}

// Window returns the first pageSize*page items. Both arguments must be
// positive, otherwise it fails with domain.ErrInvalidPageState.
func Window(items []domain.Item, pageSize, page int) (Page, error) {
	if pageSize <= 0 || page <= 0 {
		return Page{}, fmt.Errorf("%w: page size %d, page %d", domain.ErrInvalidPageState, pageSize, page)
	}

	end := min(len(items), pageSize*page)
	visible := make([]domain.Item, end)
	copy(visible, items[:end])

	return Page{
		Visible: visible,
		HasMore: end < len(items),
		Total:   len(items),
	}, nil
}

// Slice returns only the items of one page, for sources that serve a page
// at a time. Pages past the end are empty.
func Slice(items []domain.Item, pageSize, page int) ([]domain.Item, error) {
	if pageSize <= 0 || page <= 0 {
		return nil, fmt.Errorf("%w: page size %d, page %d", domain.ErrInvalidPageState, pageSize, page)
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []domain.Item{}, nil
	}
	end := min(len(items), start+pageSize)

	out := make([]domain.Item, end-start)
	copy(out, items[start:end])
	return out, nil
}

// ClampPage returns the last valid page for a list of length total. An
// empty list still has page 1. A non-positive pageSize is treated as the
// default page size.
func ClampPage(total, pageSize, page int) int {
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}
	last := max(1, (total+pageSize-1)/pageSize)
	return max(1, min(page, last))
}
