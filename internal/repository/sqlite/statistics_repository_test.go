package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
)

func TestStatisticsRepository_Empty(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewStatisticsRepository(db)
	stats, err := repo.GetStatistics(context.Background(), testNow)
	require.NoError(t, err)

	assert.False(t, stats.HasItems())
	assert.Equal(t, 0, stats.ByKind[domain.KindVideo])
	assert.Nil(t, stats.Oldest)
	assert.Equal(t, 0.0, stats.AveragePopularity())
	assert.Equal(t, testNow, stats.CalculatedAt)
}

func TestStatisticsRepository_GetStatistics(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	seedItems(t, NewItemRepository(db))
	repo := NewStatisticsRepository(db)

	stats, err := repo.GetStatistics(context.Background(), testNow)
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalItems)
	assert.Equal(t, 1, stats.Featured)
	assert.Equal(t, int64(6060), stats.TotalPopularity)
	assert.Equal(t, 1, stats.ByKind[domain.KindArticle])
	assert.Equal(t, 1, stats.ByKind[domain.KindVideo])
	assert.Equal(t, 1, stats.ByKind[domain.KindPhoto])
	assert.Equal(t, 1, stats.ByKind[domain.KindTrending])
	assert.InDelta(t, 25.0, stats.KindShare(domain.KindVideo), 0.001)
	assert.InDelta(t, 1515.0, stats.AveragePopularity(), 0.001)

	// p1 and w1 are under a day old, t1 is 30 hours, t2 ten days
	assert.Equal(t, 2, stats.PublishedLastDay)
	assert.Equal(t, 3, stats.PublishedLastWeek)

	require.NotNil(t, stats.Oldest)
	require.NotNil(t, stats.Newest)
	assert.True(t, stats.Oldest.Equal(testNow.AddDate(0, 0, -10)))
	assert.True(t, stats.Newest.Equal(testNow.Add(-time.Hour)))
}

func TestStatisticsRepository_GetTopCategories(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	seedItems(t, NewItemRepository(db))
	repo := NewStatisticsRepository(db)
	ctx := context.Background()

	top, err := repo.GetTopCategories(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)

	// "tech" and "Tech" fold together
	assert.Equal(t, "tech", top[0].Category)
	assert.Equal(t, 2, top[0].Count)
	assert.Equal(t, int64(940), top[0].Popularity)
	assert.Equal(t, "world", top[1].Category)

	none, err := repo.GetTopCategories(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
