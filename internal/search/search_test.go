package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
	"newsdesk/internal/preferences"
	"newsdesk/internal/repository/sqlite"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *preferences.Service) {
	t.Helper()
	db, err := sqlite.NewDB(sqlite.Config{Path: t.TempDir() + "/search.db"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	items := sqlite.NewItemRepository(db)
	_, err = items.UpsertMany(context.Background(), []domain.Item{
		{ID: "p1", Kind: domain.KindArticle, Category: "politics", Tags: []string{"budget"}, Title: "State budget passes", PublishedAt: now.Add(-time.Hour), Popularity: 10},
		{ID: "p2", Kind: domain.KindVideo, Category: "politics", Tags: []string{"opinion"}, Title: "Budget debate highlights", PublishedAt: now.Add(-3 * time.Hour), Popularity: 50},
		{ID: "t1", Kind: domain.KindArticle, Category: "tech", Title: "New chip unveiled", PublishedAt: now.Add(-72 * time.Hour), Popularity: 70},
	})
	require.NoError(t, err)

	prefs := preferences.NewService(sqlite.NewPreferenceRepository(db))
	return NewService(items, WithRecorder(prefs), WithClock(func() time.Time { return now })), prefs
}

func ids(r Result) []string {
	out := make([]string, 0, len(r.Hits))
	for _, h := range r.Hits {
		out = append(out, h.Item.ID)
	}
	return out
}

func TestFind(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	tests := []struct {
		input string
		want  []string
	}{
		{"budget", []string{"p1", "p2"}},
		{"budget -#opinion", []string{"p1"}},
		{"@politics kind:video", []string{"p2"}},
		{"@~tec", []string{"t1"}},
		{"since:24h", []string{"p1", "p2"}},
		{"kind:photo", []string{}},
		{"zebra", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := svc.Find(ctx, tt.input)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, ids(result))
		})
	}
}

func TestFindRanksTextHits(t *testing.T) {
	svc, _ := setup(t)

	result, err := svc.Find(context.Background(), "budget")
	require.NoError(t, err)
	require.Len(t, result.Hits, 2)
	assert.Greater(t, result.Hits[0].Score, 0)
	assert.GreaterOrEqual(t, result.Hits[0].Score, result.Hits[1].Score)
}

func TestFindInvalidQuery(t *testing.T) {
	svc, prefs := setup(t)

	_, err := svc.Find(context.Background(), "kind:podcast")
	assert.Error(t, err)

	recent, err := prefs.RecentSearches(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestFindRecordsSearches(t *testing.T) {
	svc, prefs := setup(t)
	ctx := context.Background()

	_, err := svc.Find(ctx, "budget")
	require.NoError(t, err)
	_, err = svc.Find(ctx, "@tech")
	require.NoError(t, err)
	_, err = svc.Find(ctx, "  ")
	require.NoError(t, err)

	recent, err := prefs.RecentSearches(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"@tech", "budget"}, recent)
}

func TestResultSource(t *testing.T) {
	svc, _ := setup(t)

	result, err := svc.Find(context.Background(), "@politics")
	require.NoError(t, err)

	src := result.Source(func() time.Time { return now })
	page, err := src.FetchPage(context.Background(), domain.FacetAll, domain.SortPopular, 1, 10)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "p2", page[0].ID)
}
