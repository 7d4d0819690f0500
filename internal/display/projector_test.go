package display

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"newsdesk/internal/domain"
)

var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func TestProject(t *testing.T) {
	item := domain.NewItem("a1", "Council approves budget", "Politics")
	item.Popularity = 1234
	item.PublishedAt = now.Add(-3 * time.Hour)
	item.Featured = true

	got := Project(item, 0, now)

	assert.Equal(t, "a1", got.ID)
	assert.Equal(t, 1, got.Position)
	assert.Equal(t, "ARTICLE", got.KindBadge)
	assert.Equal(t, "POLITICS", got.CategoryBadge)
	assert.Equal(t, "1,234 views", got.Count)
	assert.Equal(t, "3 hours ago", got.Age)
	assert.True(t, got.Featured)
	assert.Empty(t, got.Rank)
}

func TestProject_Pure(t *testing.T) {
	item := domain.NewItem("a1", "Same", "tech")
	item.PublishedAt = now.Add(-time.Hour)
	assert.Equal(t, Project(item, 2, now), Project(item, 2, now))
}

func TestProject_TrendingRank(t *testing.T) {
	item := domain.NewItem("t1", "Hot story", "world")
	item.Kind = domain.KindTrending
	item.Popularity = 42

	got := Project(item, 4, now)
	assert.Equal(t, "#5", got.Rank)
	assert.Equal(t, "42 reads", got.Count)
	assert.Equal(t, "-", got.Age)
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 views"},
		{1, "1 view"},
		{999, "999 views"},
		{9_999, "9,999 views"},
		{12_345, "12.3K views"},
		{1_000_000, "1M views"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCount(tt.n, "views"))
		})
	}
}

func TestFormatAge(t *testing.T) {
	assert.Equal(t, "just now", FormatAge(now.Add(-10*time.Second), now))
	assert.Equal(t, "-", FormatAge(time.Time{}, now))
	assert.Contains(t, FormatAge(now.Add(-72*time.Hour), now), "days ago")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "a b", Truncate("  a \n b ", 10))

	long := strings.Repeat("é", 20)
	got := Truncate(long, 10)
	assert.Equal(t, 10, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestProjectAll(t *testing.T) {
	items := []domain.Item{
		domain.NewItem("a", "A", "x"),
		domain.NewItem("b", "B", "x"),
	}
	got := ProjectAll(items, now)
	assert.Len(t, got, 2)
	assert.Equal(t, 2, got[1].Position)
	assert.Equal(t, "b", got[1].ID)
}
