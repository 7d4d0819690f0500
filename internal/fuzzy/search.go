package fuzzy

import (
	"cmp"
	"slices"
	"strings"

	"newsdesk/internal/domain"
)

// DefaultThreshold drops weak matches from item search.
const DefaultThreshold = 40

type ItemMatch struct {
	Item  domain.Item
	Score int
}

// SearchItems ranks items against query. Every word of the query has to
// match the title, excerpt, category or a tag; the item score is the mean
// of the best per-word scores, with the title weighted highest. Items
// below threshold are dropped. Ties keep the input order.
func SearchItems(query string, items []domain.Item, threshold int) []ItemMatch {
	words := strings.Fields(query)
	if len(words) == 0 {
		return []ItemMatch{}
	}

	matches := make([]ItemMatch, 0)
	for _, item := range items {
		total := 0
		for _, w := range words {
			best := bestFieldScore(w, item)
			if best == 0 {
				total = -1
				break
			}
			total += best
		}
		if total < 0 {
			continue
		}
		if s := total / len(words); s >= threshold {
			matches = append(matches, ItemMatch{Item: item, Score: s})
		}
	}

	slices.SortStableFunc(matches, func(a, b ItemMatch) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return matches
}

func bestFieldScore(word string, item domain.Item) int {
	best := 0
	for _, field := range strings.Fields(item.Title) {
		best = max(best, Match(word, field))
	}
	if best > 0 {
		best = min(100, best+10)
	}

	for _, field := range strings.Fields(item.Excerpt) {
		best = max(best, Match(word, field)*3/4)
	}
	best = max(best, Match(word, item.Category)*3/4)
	for _, tag := range item.Tags {
		best = max(best, Match(word, tag)*3/4)
	}
	return best
}
