// Package listing holds the pure pieces of a news list: the item store,
// the facet filter, the comparator sort and the page window. Nothing in
// here touches I/O and every function returns fresh slices, so callers can
// recompute a view as often as they like without drift.
package listing

import (
	"strings"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/query"
)

// Predicate reports whether an item belongs to a facet.
type Predicate func(item domain.Item) bool

// PredicateFor maps a facet to its predicate. Unknown qualifiers, kinds and
// windows yield a predicate that matches nothing. Window facets are
// evaluated against now.
func PredicateFor(facet domain.Facet, now time.Time) Predicate {
	kind, value := facet.Parts()

	switch kind {
	case domain.FacetKindAll:
		return func(domain.Item) bool { return true }

	case domain.FacetKindTopic:
		return func(item domain.Item) bool {
			return strings.EqualFold(item.Category, value) || item.HasTag(value)
		}

	case domain.FacetKindCategory:
		return func(item domain.Item) bool {
			return strings.EqualFold(item.Category, value)
		}

	case domain.FacetKindTag:
		return func(item domain.Item) bool {
			return item.HasTag(value)
		}

	case domain.FacetKindType:
		k := domain.Kind(value)
		if !domain.IsValidKind(k) {
			return matchNothing
		}
		return func(item domain.Item) bool {
			return item.Kind == k
		}

	case domain.FacetKindWindow:
		since, err := query.ParseWindow(value, now)
		if err != nil {
			return matchNothing
		}
		return func(item domain.Item) bool {
			return !item.PublishedAt.Before(since) && !item.PublishedAt.After(now)
		}

	default:
		return matchNothing
	}
}

func matchNothing(domain.Item) bool { return false }

// Filter returns the items matching facet in their original order. The
// "all" facet returns a copy of items.
func Filter(items []domain.Item, facet domain.Facet, now time.Time) []domain.Item {
	return FilterFunc(items, PredicateFor(facet, now))
}

// FilterFunc keeps the items for which keep returns true.
func FilterFunc(items []domain.Item, keep Predicate) []domain.Item {
	filtered := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if keep(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Facets lists "all" plus the distinct categories of items in first-seen
// order. Used to build filter buttons.
func Facets(items []domain.Item) []domain.Facet {
	seen := make(map[string]bool)
	facets := []domain.Facet{domain.FacetAll}
	for _, item := range items {
		category := strings.ToLower(item.Category)
		if category == "" || seen[category] {
			continue
		}
		seen[category] = true
		facets = append(facets, domain.Facet(category))
	}
	return facets
}
