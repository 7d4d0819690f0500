package listing

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"newsdesk/internal/domain"
)

// Sort returns a stably sorted copy of items. Items with equal keys keep
// their relative order, which is what lets featured items placed first by
// the source stay first. Unknown keys fail with domain.ErrInvalidSortKey.
func Sort(items []domain.Item, key domain.SortKey, now time.Time) ([]domain.Item, error) {
	return SortIn(items, key, now, language.English)
}

// SortIn is Sort with the collation language used by the alphabetical key.
func SortIn(items []domain.Item, key domain.SortKey, now time.Time, lang language.Tag) ([]domain.Item, error) {
	compare, err := comparator(key, now, lang)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(items)
	if sorted == nil {
		sorted = []domain.Item{}
	}
	slices.SortStableFunc(sorted, compare)
	return sorted, nil
}

func comparator(key domain.SortKey, now time.Time, lang language.Tag) (func(a, b domain.Item) int, error) {
	switch key {
	case domain.SortNewest:
		return func(a, b domain.Item) int {
			return b.PublishedAt.Compare(a.PublishedAt)
		}, nil

	case domain.SortOldest:
		return func(a, b domain.Item) int {
			return a.PublishedAt.Compare(b.PublishedAt)
		}, nil

	case domain.SortPopular:
		return func(a, b domain.Item) int {
			return cmp.Compare(b.Popularity, a.Popularity)
		}, nil

	case domain.SortTrending:
		return func(a, b domain.Item) int {
			return cmp.Compare(Velocity(b, now), Velocity(a, now))
		}, nil

	case domain.SortAlphabetical:
		// collators are not safe for concurrent use, one per sort
		collator := collate.New(lang, collate.IgnoreCase)
		return func(a, b domain.Item) int {
			return collator.CompareString(a.Title, b.Title)
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSortKey, key)
	}
}

// Velocity is popularity per hour since publication. Elapsed time is
// floored at one hour so fresh items do not divide by zero.
func Velocity(item domain.Item, now time.Time) float64 {
	hours := now.Sub(item.PublishedAt).Hours()
	if hours < 1 {
		hours = 1
	}
	return float64(item.Popularity) / hours
}
