package domain

import (
	"fmt"
	"strings"
)

// SortKey selects the comparator used to order a list.
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortOldest       SortKey = "oldest"
	SortPopular      SortKey = "popular"
	SortTrending     SortKey = "trending"
	SortAlphabetical SortKey = "alphabetical"
)

const DefaultSortKey = SortNewest

func SortKeys() []SortKey {
	return []SortKey{SortNewest, SortOldest, SortPopular, SortTrending, SortAlphabetical}
}

func (k SortKey) IsValid() bool {
	switch k {
	case SortNewest, SortOldest, SortPopular, SortTrending, SortAlphabetical:
		return true
	default:
		return false
	}
}

// ParseSortKey accepts a sort key and a few aliases the site used
// ("latest", "most-viewed", "a-z").
func ParseSortKey(s string) (SortKey, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	switch s {
	case "latest", "recent", "date":
		return SortNewest, nil
	case "most-viewed", "views", "popularity":
		return SortPopular, nil
	case "hot":
		return SortTrending, nil
	case "a-z", "title", "alpha":
		return SortAlphabetical, nil
	}

	key := SortKey(s)
	if !key.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
	}
	return key, nil
}

// Next returns the key after k in SortKeys order, wrapping around.
func (k SortKey) Next() SortKey {
	keys := SortKeys()
	for i, key := range keys {
		if key == k {
			return keys[(i+1)%len(keys)]
		}
	}
	return DefaultSortKey
}
