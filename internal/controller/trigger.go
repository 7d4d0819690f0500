package controller

import (
	"context"

	"newsdesk/internal/domain"
)

// what started a load
type TriggerKind int

const (
	TriggerInitial TriggerKind = iota
	TriggerFacet
	TriggerSort
	TriggerLoadMore
	TriggerNearBottom
	TriggerRefresh
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerInitial:
		return "initial"
	case TriggerFacet:
		return "filter"
	case TriggerSort:
		return "sort"
	case TriggerLoadMore:
		return "load_more"
	case TriggerNearBottom:
		return "near_bottom"
	case TriggerRefresh:
		return "refresh"
	default:
		return "unknown"
	}
}

// supersedes reports whether the trigger replaces an in-flight load
// rather than being rejected by it.
func (k TriggerKind) supersedes() bool {
	switch k {
	case TriggerLoadMore, TriggerNearBottom:
		return false
	default:
		return true
	}
}

// Appends reports whether the loaded page is merged into the store
// instead of replacing it.
func (k TriggerKind) Appends() bool {
	return !k.supersedes()
}

type Trigger struct {
	Kind  TriggerKind
	Facet domain.Facet
	Sort  domain.SortKey
}

func Initial() Trigger { return Trigger{Kind: TriggerInitial} }

func ChangeFacet(facet domain.Facet) Trigger {
	return Trigger{Kind: TriggerFacet, Facet: facet}
}

func ChangeSort(key domain.SortKey) Trigger {
	return Trigger{Kind: TriggerSort, Sort: key}
}

func LoadMore() Trigger   { return Trigger{Kind: TriggerLoadMore} }
func NearBottom() Trigger { return Trigger{Kind: TriggerNearBottom} }
func Refresh() Trigger    { return Trigger{Kind: TriggerRefresh} }

// Ticket identifies one load. Its result is only applied while its
// generation is still the controller's current one.
type Ticket struct {
	Generation uint64
	Trigger    Trigger
	Facet      domain.Facet
	Sort       domain.SortKey
	Page       int
	PageSize   int

	ctx context.Context
}

// Context is cancelled when the load is superseded.
func (t Ticket) Context() context.Context {
	if t.ctx == nil {
		return context.Background()
	}
	return t.ctx
}

// Outcome reports what Complete did with a result.
type Outcome struct {
	Ticket Ticket
	// Stale results belong to a superseded load and were dropped.
	Stale bool
	// Added is the number of new item ids merged into the store.
	Added        int
	Announcement string
	Err          error
}
