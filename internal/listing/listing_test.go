package listing

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestItem(id, category string, popularity int64, age time.Duration) domain.Item {
	item := domain.NewItem(id, "Story "+id, category)
	item.Popularity = popularity
	item.PublishedAt = testNow.Add(-age)
	return item
}

func ids(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

// 12 items: 5 politics, 7 tech
func mixedItems() []domain.Item {
	var items []domain.Item
	for i := range 12 {
		category := "tech"
		if i%2 == 0 && i < 10 {
			category = "politics"
		}
		items = append(items, newTestItem(fmt.Sprintf("item-%02d", i), category, int64(i*10), time.Duration(i)*time.Hour))
	}
	return items
}

func TestFilter(t *testing.T) {
	items := mixedItems()
	items[1].Tags = []string{"Election"}
	items[3].Kind = domain.KindVideo
	items[11].PublishedAt = testNow.AddDate(0, 0, -30)

	tests := []struct {
		name  string
		facet domain.Facet
		want  int
	}{
		{"all", domain.FacetAll, 12},
		{"empty token is all", "", 12},
		{"bare category", "politics", 5},
		{"bare category any case", "Politics", 5},
		{"bare tag", "election", 1},
		{"qualified category", "category:tech", 7},
		{"qualified tag", "tag:election", 1},
		{"type", "type:video", 1},
		{"window", "window:week", 11},
		{"unknown kind", "type:podcast", 0},
		{"unknown window", "window:fortnight", 0},
		{"unknown qualifier", "author:bob", 0},
		{"unknown topic", "sports", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(items, tt.facet, testNow)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestFilter_AllPreservesOrderAndInput(t *testing.T) {
	items := mixedItems()
	before := ids(items)

	got := Filter(items, domain.FacetAll, testNow)
	assert.Equal(t, before, ids(got))

	got[0].Title = "changed"
	assert.Equal(t, "Story item-00", items[0].Title)
}

func TestFilter_SubsetAndIdempotent(t *testing.T) {
	items := mixedItems()
	for _, facet := range []domain.Facet{"politics", "tech", "type:article", "window:today"} {
		t.Run(string(facet), func(t *testing.T) {
			once := Filter(items, facet, testNow)
			twice := Filter(once, facet, testNow)
			assert.Equal(t, ids(once), ids(twice))
			assert.Subset(t, ids(items), ids(once))
		})
	}
}

func TestSort(t *testing.T) {
	scores := []int64{10, 50, 30, 20, 5, 60, 15}
	var items []domain.Item
	for i, s := range scores {
		items = append(items, newTestItem(fmt.Sprintf("t%d", i), "tech", s, time.Duration(i+1)*time.Hour))
	}

	t.Run("popular puts highest first", func(t *testing.T) {
		got, err := Sort(items, domain.SortPopular, testNow)
		require.NoError(t, err)
		assert.Equal(t, int64(60), got[0].Popularity)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].Popularity, got[i].Popularity)
		}
	})

	t.Run("newest and oldest", func(t *testing.T) {
		newest, err := Sort(items, domain.SortNewest, testNow)
		require.NoError(t, err)
		assert.Equal(t, "t0", newest[0].ID)

		oldest, err := Sort(items, domain.SortOldest, testNow)
		require.NoError(t, err)
		assert.Equal(t, "t6", oldest[0].ID)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := ids(items)
		_, err := Sort(items, domain.SortPopular, testNow)
		require.NoError(t, err)
		assert.Equal(t, before, ids(items))
	})

	t.Run("invalid key", func(t *testing.T) {
		_, err := Sort(items, domain.SortKey("random"), testNow)
		assert.ErrorIs(t, err, domain.ErrInvalidSortKey)
	})
}

func TestSort_Stable(t *testing.T) {
	items := []domain.Item{
		newTestItem("featured", "tech", 100, time.Hour),
		newTestItem("a", "tech", 100, time.Hour),
		newTestItem("b", "tech", 100, time.Hour),
		newTestItem("c", "tech", 200, time.Hour),
	}

	got, err := Sort(items, domain.SortPopular, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "featured", "a", "b"}, ids(got))

	again, err := Sort(got, domain.SortPopular, testNow)
	require.NoError(t, err)
	assert.Equal(t, ids(got), ids(again))
}

func TestSort_Trending(t *testing.T) {
	fresh := newTestItem("fresh", "tech", 50, 10*time.Minute) // floored at 1h: 50/h
	steady := newTestItem("steady", "tech", 400, 10*time.Hour) // 40/h
	viral := newTestItem("viral", "tech", 300, 2*time.Hour)    // 150/h

	got, err := Sort([]domain.Item{steady, fresh, viral}, domain.SortTrending, testNow)
	require.NoError(t, err)
	assert.Equal(t, []string{"viral", "fresh", "steady"}, ids(got))

	assert.InDelta(t, 50.0, Velocity(fresh, testNow), 0.001)
}

func TestSort_Alphabetical(t *testing.T) {
	titles := []string{"zebra crossing", "Apple harvest", "Éclair shortage", "banana prices"}
	var items []domain.Item
	for i, title := range titles {
		item := newTestItem(fmt.Sprintf("a%d", i), "food", 0, time.Hour)
		item.Title = title
		items = append(items, item)
	}

	got, err := Sort(items, domain.SortAlphabetical, testNow)
	require.NoError(t, err)

	var order []string
	for _, item := range got {
		order = append(order, item.Title)
	}
	assert.Equal(t, []string{"Apple harvest", "banana prices", "Éclair shortage", "zebra crossing"}, order)
}

func TestWindow(t *testing.T) {
	items := mixedItems()

	t.Run("first page of filtered list", func(t *testing.T) {
		politics := Filter(items, "politics", testNow)
		page, err := Window(politics, 3, 1)
		require.NoError(t, err)
		assert.Len(t, page.Visible, 3)
		assert.True(t, page.HasMore)
		assert.Equal(t, 5, page.Total)
	})

	t.Run("second page exhausts list", func(t *testing.T) {
		page, err := Window(items[:7], 5, 2)
		require.NoError(t, err)
		assert.Len(t, page.Visible, 7)
		assert.False(t, page.HasMore)
	})

	t.Run("empty list", func(t *testing.T) {
		page, err := Window(nil, 5, 1)
		require.NoError(t, err)
		assert.Empty(t, page.Visible)
		assert.False(t, page.HasMore)
	})

	t.Run("visible is a prefix", func(t *testing.T) {
		for p := 1; p <= 4; p++ {
			page, err := Window(items, 4, p)
			require.NoError(t, err)
			assert.Equal(t, ids(items[:len(page.Visible)]), ids(page.Visible))
			assert.Equal(t, len(page.Visible) < len(items), page.HasMore)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		input := slices.Clone(items)

		first, err := Window(items, 4, 2)
		require.NoError(t, err)
		second, err := Window(items, 4, 2)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, ids(input), ids(items))
	})

	t.Run("invalid state", func(t *testing.T) {
		_, err := Window(items, 0, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidPageState)

		_, err = Window(items, 5, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidPageState)

		_, err = Window(items, -1, 1)
		assert.ErrorIs(t, err, domain.ErrInvalidPageState)
	})
}

func TestSlice(t *testing.T) {
	items := mixedItems()

	got, err := Slice(items, 5, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"item-10", "item-11"}, ids(got))

	got, err = Slice(items, 5, 4)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Slice(items, 0, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidPageState)
}

func TestClampPage(t *testing.T) {
	tests := []struct {
		total, size, page, want int
	}{
		{12, 5, 1, 1},
		{12, 5, 3, 3},
		{12, 5, 9, 3},
		{0, 5, 4, 1},
		{10, 5, 0, 1},
		{25, 0, 7, 3},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d/%d", tt.total, tt.size, tt.page), func(t *testing.T) {
			assert.Equal(t, tt.want, ClampPage(tt.total, tt.size, tt.page))
		})
	}
}

func TestStore(t *testing.T) {
	a := newTestItem("a", "tech", 1, time.Hour)
	b := newTestItem("b", "tech", 2, time.Hour)
	c := newTestItem("c", "tech", 3, time.Hour)

	s := NewStore(a, b)
	assert.Equal(t, 2, s.Len())

	updated := b
	updated.Popularity = 99
	next := s.Upsert([]domain.Item{updated, c})

	assert.Equal(t, []string{"a", "b", "c"}, ids(next.Items()))
	got, ok := next.Get("b")
	require.True(t, ok)
	assert.Equal(t, int64(99), got.Popularity)

	// original left alone
	assert.Equal(t, 2, s.Len())
	got, _ = s.Get("b")
	assert.Equal(t, int64(2), got.Popularity)

	assert.Equal(t, 1, s.Added([]domain.Item{updated, c, c}))

	_, ok = next.Get("missing")
	assert.False(t, ok)

	replaced := next.Replace([]domain.Item{c})
	assert.Equal(t, []string{"c"}, ids(replaced.Items()))
}

func TestStore_UniqueIDs(t *testing.T) {
	a := newTestItem("a", "tech", 1, time.Hour)
	s := NewStore(a, a, a)
	assert.Equal(t, 1, s.Len())

	s = s.Upsert([]domain.Item{a})
	assert.Equal(t, 1, s.Len())
}

func TestFacets(t *testing.T) {
	got := Facets(mixedItems())
	assert.Equal(t, []domain.Facet{domain.FacetAll, "politics", "tech"}, got)
}
