package domain

import (
	"strings"
	"time"
)

// well known preference keys
const (
	PrefBookmarks      = "bookmarks"
	PrefRecentSearches = "recent_searches"
	PrefRating         = "rating"
	PrefLastFacet      = "last_facet"
	PrefLastSort       = "last_sort"
)

const (
	MaxRecentSearches = 10
	MinRating         = 1
	MaxRating         = 5
)

// Preference is one entry of the persisted key/value store. Values are
// opaque strings; structured values are JSON encoded by their owner.
type Preference struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

func (p *Preference) Validate() error {
	if strings.TrimSpace(p.Key) == "" {
		return &ValidationError{Field: "key", Message: "preference key cannot be empty"}
	}

	if len(p.Key) > 100 {
		return &ValidationError{Field: "key", Message: "preference key cannot exceed 100 characters"}
	}

	if len(p.Value) > 64*1024 {
		return &ValidationError{Field: "value", Message: "preference value cannot exceed 64KiB"}
	}

	return nil
}

func ValidateRating(r int) error {
	if r < MinRating || r > MaxRating {
		return &ValidationError{Field: "rating", Message: "rating must be between 1 and 5"}
	}
	return nil
}

// PushRecentSearch puts query at the front of history, drops an earlier
// copy of it (ignoring case) and caps the list at MaxRecentSearches.
func PushRecentSearch(history []string, query string) []string {
	query = strings.TrimSpace(query)
	if query == "" {
		return history
	}

	out := make([]string, 0, len(history)+1)
	out = append(out, query)
	for _, q := range history {
		if strings.EqualFold(q, query) {
			continue
		}
		out = append(out, q)
		if len(out) == MaxRecentSearches {
			break
		}
	}
	return out
}
