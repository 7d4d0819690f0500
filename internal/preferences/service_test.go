package preferences

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
	"newsdesk/internal/repository/sqlite"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := sqlite.NewDB(sqlite.Config{Path: t.TempDir() + "/prefs.db"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(sqlite.NewPreferenceRepository(db))
}

func TestBookmarks(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	list, err := s.Bookmarks(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	on, err := s.ToggleBookmark(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, on)

	_, err = s.ToggleBookmark(ctx, "b2")
	require.NoError(t, err)

	ok, err := s.IsBookmarked(ctx, "a1")
	require.NoError(t, err)
	assert.True(t, ok)

	on, err = s.ToggleBookmark(ctx, "a1")
	require.NoError(t, err)
	assert.False(t, on)

	list, err = s.Bookmarks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b2"}, list)

	_, err = s.ToggleBookmark(ctx, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRecentSearches(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	for i := range 12 {
		require.NoError(t, s.RecordSearch(ctx, fmt.Sprintf("query %d", i)))
	}
	require.NoError(t, s.RecordSearch(ctx, "QUERY 5"))

	list, err := s.RecentSearches(ctx)
	require.NoError(t, err)
	assert.Len(t, list, domain.MaxRecentSearches)
	assert.Equal(t, "QUERY 5", list[0])
	assert.Equal(t, "query 11", list[1])
	assert.NotContains(t, list, "query 5")

	require.NoError(t, s.ClearSearches(ctx))
	list, err = s.RecentSearches(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRating(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	r, err := s.Rating(ctx)
	require.NoError(t, err)
	assert.Zero(t, r)

	require.NoError(t, s.SetRating(ctx, 4))
	r, err = s.Rating(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, r)

	assert.ErrorIs(t, s.SetRating(ctx, 0), domain.ErrValidation)
	assert.ErrorIs(t, s.SetRating(ctx, 6), domain.ErrValidation)
}

func TestLastView(t *testing.T) {
	s := setupService(t)
	ctx := context.Background()

	facet, key, err := s.LastView(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.FacetAll, facet)
	assert.Equal(t, domain.DefaultSortKey, key)

	require.NoError(t, s.SaveView(ctx, "tech", domain.SortTrending))
	facet, key, err = s.LastView(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Facet("tech"), facet)
	assert.Equal(t, domain.SortTrending, key)
}

