// Package controller drives one news list: it owns the active facet, sort
// key and page, runs loads through an item source and decides which
// results are applied. Every list on screen gets its own Controller.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"newsdesk/internal/announce"
	"newsdesk/internal/domain"
	"newsdesk/internal/listing"
	"newsdesk/internal/logging"
	"newsdesk/internal/source"
)

// ErrNothingMore rejects a load-more before the first successful load and
// once the list is fully loaded.
var ErrNothingMore = errors.New("no more items to load")

type State int

const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

type Config struct {
	PageSize            int
	FetchTimeout        time.Duration
	NearBottomThreshold int
	Language            language.Tag
	Now                 func() time.Time
}

func DefaultConfig() Config {
	return Config{
		PageSize:            domain.DefaultPageSize,
		FetchTimeout:        5 * time.Second,
		NearBottomThreshold: 2,
		Language:            language.English,
		Now:                 time.Now,
	}
}

type Option func(*Controller)

func WithAnnouncer(a announce.Announcer) Option {
	return func(c *Controller) { c.announcer = a }
}

func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithStart sets the facet and sort key used before the first load, e.g.
// the ones saved from the last session. An invalid key is ignored.
func WithStart(facet domain.Facet, key domain.SortKey) Option {
	return func(c *Controller) {
		c.facet = domain.NormalizeFacet(string(facet))
		if key.IsValid() {
			c.sortKey = key
		}
	}
}

// WithTransitionHook is called on every state change while the
// controller lock is held. It must not call back into the controller.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(c *Controller) { c.onTransition = fn }
}

type Controller struct {
	source       source.ItemSource
	announcer    announce.Announcer
	logger       *log.Logger
	cfg          Config
	onTransition func(from, to State)

	mu         sync.Mutex
	state      State
	store      listing.Store
	facet      domain.Facet
	sortKey    domain.SortKey
	page       domain.PageState
	exhausted  bool
	loaded     bool
	busy       bool
	generation uint64
	cancel     context.CancelFunc
	banner     string
	lastErr    error
}

func New(src source.ItemSource, cfg Config, opts ...Option) *Controller {
	def := DefaultConfig()
	if cfg.PageSize <= 0 {
		cfg.PageSize = def.PageSize
	}
	if cfg.NearBottomThreshold < 0 {
		cfg.NearBottomThreshold = def.NearBottomThreshold
	}
	if cfg.Language == language.Und {
		cfg.Language = def.Language
	}
	if cfg.Now == nil {
		cfg.Now = def.Now
	}

	c := &Controller{
		source:  src,
		cfg:     cfg,
		state:   StateIdle,
		store:   listing.NewStore(),
		facet:   domain.FacetAll,
		sortKey: domain.DefaultSortKey,
		page:    domain.NewPageState(cfg.PageSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	if c.announcer == nil {
		c.announcer = announce.Func(func(string) {})
	}
	return c
}

// Begin starts a load and moves the list to Loading. Load-more and
// near-bottom triggers are rejected with domain.ErrBusy while another load
// is in flight, and with ErrNothingMore until a load has succeeded or once
// the list is fully loaded.
// Facet, sort and refresh triggers cancel any in-flight load and take its
// place. The returned ticket carries what to fetch.
func (c *Controller) Begin(ctx context.Context, trigger Trigger) (Ticket, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kind := trigger.Kind
	if !kind.supersedes() {
		if c.busy {
			c.logger.Debug("load rejected", "trigger", kind, "reason", "busy")
			return Ticket{}, domain.ErrBusy
		}
		if !c.loaded || !c.hasMoreLocked(c.cfg.Now()) {
			return Ticket{}, ErrNothingMore
		}
	}

	if c.busy && c.cancel != nil {
		c.cancel()
		c.logger.Debug("load superseded", "generation", c.generation, "by", kind)
	}

	facet, key, page := c.facet, c.sortKey, 1
	switch kind {
	case TriggerFacet:
		facet = domain.NormalizeFacet(string(trigger.Facet))
	case TriggerSort:
		key = trigger.Sort
		if !key.IsValid() {
			c.logger.Warn("invalid sort key, using default", "sort", trigger.Sort, "default", domain.DefaultSortKey)
			key = domain.DefaultSortKey
		}
	case TriggerLoadMore, TriggerNearBottom:
		page = c.page.CurrentPage + 1
	}

	if ctx == nil {
		ctx = context.Background()
	}
	loadCtx, cancel := context.WithCancel(ctx)

	c.generation++
	c.cancel = cancel
	c.busy = true
	c.transition(StateLoading)

	ticket := Ticket{
		Generation: c.generation,
		Trigger:    trigger,
		Facet:      facet,
		Sort:       key,
		Page:       page,
		PageSize:   c.page.PageSize,
		ctx:        loadCtx,
	}

	c.logger.Info("list."+kind.String(), "facet", facet, "sort", key, "page", page, "generation", ticket.Generation)
	return ticket, nil
}

// Fetch asks the source for the ticket's page, bounded by the fetch
// timeout. A source that ignores cancellation is abandoned when the
// deadline passes. Failures are wrapped as domain.ErrFetchFailure.
func (c *Controller) Fetch(ticket Ticket) ([]domain.Item, error) {
	ctx := ticket.Context()
	if c.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.FetchTimeout)
		defer cancel()
	}

	type result struct {
		items []domain.Item
		err   error
	}
	done := make(chan result, 1)
	go func() {
		items, err := c.source.FetchPage(ctx, ticket.Facet, ticket.Sort, ticket.Page, ticket.PageSize)
		done <- result{items, err}
	}()

	select {
	case r := <-done:
		if r.err != nil && !errors.Is(r.err, domain.ErrFetchFailure) {
			return nil, &domain.FetchError{Op: "fetch page", Err: r.err}
		}
		return r.items, r.err
	case <-ctx.Done():
		return nil, &domain.FetchError{Op: "fetch page", Err: ctx.Err()}
	}
}

// Complete applies the result of a load. Results of superseded loads are
// dropped untouched. On success the items are merged (load-more) or
// replace the list, the ticket's facet, sort and page become current and
// the change is announced. On failure the previous items and state are
// kept and a dismissible banner is raised.
func (c *Controller) Complete(ticket Ticket, items []domain.Item, err error) Outcome {
	c.mu.Lock()
	out := c.completeLocked(ticket, items, err)
	c.mu.Unlock()

	if out.Announcement != "" {
		c.announcer.Announce(out.Announcement)
	}
	return out
}

func (c *Controller) completeLocked(ticket Ticket, items []domain.Item, err error) Outcome {
	out := Outcome{Ticket: ticket}

	if !c.busy || ticket.Generation != c.generation {
		c.logger.Debug("discarding stale result", "generation", ticket.Generation, "current", c.generation)
		out.Stale = true
		return out
	}

	c.busy = false
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}

	if err != nil {
		c.lastErr = err
		c.banner = bannerFor(ticket.Trigger.Kind)
		c.transition(StateError)
		c.logger.Error("load failed", "trigger", ticket.Trigger.Kind, "facet", ticket.Facet, "page", ticket.Page, "err", err)
		c.transition(StateRendered)

		out.Err = err
		out.Announcement = c.banner
		return out
	}

	// a short page from the source ends the list, even if some of a full
	// page is dropped as invalid below
	fetched := len(items)
	items = c.validItems(items)
	if ticket.Trigger.Kind.Appends() {
		out.Added = c.store.Added(items)
		c.store = c.store.Upsert(items)
	} else {
		c.store = listing.NewStore(items...)
		out.Added = c.store.Len()
	}

	c.facet = ticket.Facet
	c.sortKey = ticket.Sort
	c.page = domain.PageState{PageSize: ticket.PageSize, CurrentPage: ticket.Page}
	c.exhausted = fetched < ticket.PageSize
	c.loaded = true
	if c.exhausted {
		total := c.store.Len()
		c.page.TotalKnown = &total
	}
	c.banner = ""
	c.lastErr = nil
	c.transition(StateRendered)

	out.Announcement = announcement(ticket, out.Added)
	c.logger.Info("list.rendered", "trigger", ticket.Trigger.Kind, "facet", c.facet, "sort", c.sortKey, "page", c.page.CurrentPage, "added", out.Added, "items", c.store.Len())
	return out
}

// Load runs Begin, Fetch and Complete in the calling goroutine.
func (c *Controller) Load(ctx context.Context, trigger Trigger) (Outcome, error) {
	ticket, err := c.Begin(ctx, trigger)
	if err != nil {
		return Outcome{}, err
	}
	items, err := c.Fetch(ticket)
	out := c.Complete(ticket, items, err)
	return out, out.Err
}

// drop items that fail validation rather than failing the whole page
func (c *Controller) validItems(items []domain.Item) []domain.Item {
	valid := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			c.logger.Warn("dropping invalid item", "id", item.ID, "err", err)
			continue
		}
		valid = append(valid, item)
	}
	return valid
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	if c.onTransition != nil && from != to {
		c.onTransition(from, to)
	}
}

func announcement(ticket Ticket, added int) string {
	switch ticket.Trigger.Kind {
	case TriggerLoadMore, TriggerNearBottom:
		if added == 0 {
			return "No more items"
		}
		if added == 1 {
			return "Loaded 1 more item"
		}
		return fmt.Sprintf("Loaded %d more items", added)
	case TriggerFacet:
		if ticket.Facet.IsAll() {
			return "Showing all items"
		}
		return "Filtered by " + ticket.Facet.Label()
	case TriggerSort:
		return "Sorted by " + string(ticket.Sort)
	case TriggerRefresh:
		return "Refreshed"
	default:
		if added == 1 {
			return "Loaded 1 item"
		}
		return fmt.Sprintf("Loaded %d items", added)
	}
}

func bannerFor(kind TriggerKind) string {
	if kind == TriggerLoadMore || kind == TriggerNearBottom {
		return "Couldn't load more items. Try again."
	}
	return "Couldn't load items. Try again."
}
