package controller

import (
	"errors"
	"time"

	"newsdesk/internal/display"
	"newsdesk/internal/domain"
	"newsdesk/internal/listing"
)

// View is the rendered result of a list: the visible display models and
// everything the controls need. It is recomputed on every call.
type View struct {
	Models   []display.DisplayModel
	Items    []domain.Item
	HasMore  bool
	Total    int
	State    State
	Busy     bool
	Facet    domain.Facet
	Sort     domain.SortKey
	Page     int
	PageSize int
	Banner   string
}

// Controls is the state of the list's interactive controls.
type Controls struct {
	LoadMoreEnabled bool
	LoadMoreLabel   string
	Busy            bool
}

// View filters, sorts and windows the store for the committed facet, sort
// key and page, then projects the visible items.
func (c *Controller) View(now time.Time) View {
	c.mu.Lock()
	defer c.mu.Unlock()

	page, sorted := c.windowLocked(now)
	return View{
		Models:   display.ProjectAll(page.Visible, now),
		Items:    page.Visible,
		HasMore:  page.HasMore || (c.loaded && !c.exhausted),
		Total:    len(sorted),
		State:    c.state,
		Busy:     c.busy,
		Facet:    c.facet,
		Sort:     c.sortKey,
		Page:     c.page.CurrentPage,
		PageSize: c.page.PageSize,
		Banner:   c.banner,
	}
}

// windowLocked runs filter, sort and window. A bad sort key falls back to
// the default and a bad page state is clamped, both with a warning.
func (c *Controller) windowLocked(now time.Time) (listing.Page, []domain.Item) {
	filtered := listing.Filter(c.store.Items(), c.facet, now)

	sorted, err := listing.SortIn(filtered, c.sortKey, now, c.cfg.Language)
	if err != nil {
		c.logger.Warn("invalid sort key, using default", "sort", c.sortKey, "err", err)
		c.sortKey = domain.DefaultSortKey
		sorted, _ = listing.SortIn(filtered, c.sortKey, now, c.cfg.Language)
	}

	page, err := listing.Window(sorted, c.page.PageSize, c.page.CurrentPage)
	if errors.Is(err, domain.ErrInvalidPageState) {
		c.logger.Warn("invalid page state, clamping", "page_size", c.page.PageSize, "page", c.page.CurrentPage)
		if c.page.PageSize <= 0 {
			c.page.PageSize = c.cfg.PageSize
		}
		c.page.CurrentPage = listing.ClampPage(len(sorted), c.page.PageSize, c.page.CurrentPage)
		page, _ = listing.Window(sorted, c.page.PageSize, c.page.CurrentPage)
	}
	return page, sorted
}

func (c *Controller) hasMoreLocked(now time.Time) bool {
	page, _ := c.windowLocked(now)
	return page.HasMore || (c.loaded && !c.exhausted)
}

// Controls reports whether load-more can be used right now.
func (c *Controller) Controls() Controls {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.busy:
		return Controls{LoadMoreLabel: "Loading…", Busy: true}
	case !c.loaded || !c.hasMoreLocked(c.cfg.Now()):
		return Controls{LoadMoreLabel: "No more items"}
	default:
		return Controls{LoadMoreEnabled: true, LoadMoreLabel: "Load more"}
	}
}

// NearBottom reports whether a cursor at index within visible rows is
// close enough to the end to load the next page.
func (c *Controller) NearBottom(index, visible int) bool {
	if visible == 0 {
		return false
	}
	return index >= visible-1-c.cfg.NearBottomThreshold
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) Facet() domain.Facet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.facet
}

func (c *Controller) Sort() domain.SortKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortKey
}

func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Banner is the error message on display, or "".
func (c *Controller) Banner() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.banner
}

// Err is the error behind the current banner.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Controller) DismissBanner() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.banner = ""
}

// Close cancels an in-flight load. Its result, if it still arrives, is
// dropped.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	if c.busy {
		c.busy = false
		c.generation++
		if c.state == StateLoading {
			c.transition(StateRendered)
		}
	}
}
