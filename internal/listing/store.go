package listing

import (
	"slices"

	"newsdesk/internal/domain"
)

// Store is the ordered, id-unique collection of items a list has loaded.
// Every mutation returns a new Store; the receiver is left as it was.
type Store struct {
	items []domain.Item
	index map[string]int
}

func NewStore(items ...domain.Item) Store {
	return Store{}.Upsert(items)
}

// Items returns a copy of the items in store order.
func (s Store) Items() []domain.Item {
	out := make([]domain.Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s Store) Len() int {
	return len(s.items)
}

func (s Store) Get(id string) (domain.Item, bool) {
	i, ok := s.index[id]
	if !ok {
		return domain.Item{}, false
	}
	return s.items[i], true
}

func (s Store) Contains(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Upsert merges items: an id already present is replaced in place, a new
// id is appended. Duplicates within items resolve to the last one.
func (s Store) Upsert(items []domain.Item) Store {
	next := Store{
		items: slices.Clone(s.items),
		index: make(map[string]int, len(s.items)+len(items)),
	}
	for id, i := range s.index {
		next.index[id] = i
	}

	for _, item := range items {
		if i, ok := next.index[item.ID]; ok {
			next.items[i] = item
			continue
		}
		next.index[item.ID] = len(next.items)
		next.items = append(next.items, item)
	}
	return next
}

// Added reports how many of items are not yet in the store.
func (s Store) Added(items []domain.Item) int {
	seen := make(map[string]bool, len(items))
	n := 0
	for _, item := range items {
		if s.Contains(item.ID) || seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		n++
	}
	return n
}

// Replace returns a store holding only items.
func (s Store) Replace(items []domain.Item) Store {
	return NewStore(items...)
}
