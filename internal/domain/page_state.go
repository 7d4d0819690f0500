package domain

import "fmt"

const DefaultPageSize = 10

// PageState tracks how much of a list is visible. CurrentPage starts at 1
// and only moves back to 1 on a reset.
type PageState struct {
	PageSize    int  `json:"page_size"`
	CurrentPage int  `json:"current_page"`
	TotalKnown  *int `json:"total_known,omitempty"`
}

func NewPageState(pageSize int) PageState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return PageState{PageSize: pageSize, CurrentPage: 1}
}

func (p PageState) Validate() error {
	if p.PageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidPageState, p.PageSize)
	}
	if p.CurrentPage <= 0 {
		return fmt.Errorf("%w: page must be positive, got %d", ErrInvalidPageState, p.CurrentPage)
	}
	return nil
}

// Next returns the state one page further on.
func (p PageState) Next() PageState {
	p.CurrentPage++
	return p
}

// Reset returns the state back on page 1 with the total forgotten.
func (p PageState) Reset() PageState {
	return PageState{PageSize: p.PageSize, CurrentPage: 1}
}

// Limit is the number of items the state makes visible.
func (p PageState) Limit() int {
	return p.PageSize * p.CurrentPage
}
