package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 15, 30, 0, 0, time.UTC)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"RFC3339", "2025-03-01T08:00:00Z", time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"ISO date", "2025-01-15", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"slash date", "2025/01/15", time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"long date", "March 2, 2025", time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"just now", "Just now", fixedNow},
		{"today", "today", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"yesterday", "yesterday", time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC)},
		{"hours ago", "2 hours ago", fixedNow.Add(-2 * time.Hour)},
		{"an hour ago", "an hour ago", fixedNow.Add(-time.Hour)},
		{"minutes ago", "45 min ago", fixedNow.Add(-45 * time.Minute)},
		{"days ago", "3 days ago", fixedNow.AddDate(0, 0, -3)},
		{"a week ago", "a week ago", fixedNow.AddDate(0, 0, -7)},
		{"months ago", "2 months ago", fixedNow.AddDate(0, -2, 0)},
		{"years ago", "1 year ago", fixedNow.AddDate(-1, 0, 0)},
		{"negative offset hours", "-3h", fixedNow.Add(-3 * time.Hour)},
		{"negative offset days", "-2d", fixedNow.AddDate(0, 0, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.input, fixedNow)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, input := range []string{"", "soon", "2 fortnights ago", "13/45/2025"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseTimestamp(input, fixedNow)
			assert.Error(t, err)
		})
	}
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"today", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"hour", fixedNow.Add(-time.Hour)},
		{"week", fixedNow.AddDate(0, 0, -7)},
		{"month", fixedNow.AddDate(0, -1, 0)},
		{"24h", fixedNow.Add(-24 * time.Hour)},
		{"7d", fixedNow.Add(-7 * 24 * time.Hour)},
		{"2w", fixedNow.Add(-14 * 24 * time.Hour)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWindow(tt.input, fixedNow)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseWindow("fortnight", fixedNow)
		assert.Error(t, err)

		_, err = ParseWindow("0h", fixedNow)
		assert.Error(t, err)
	})
}

func TestParseDuration(t *testing.T) {
	d, err := ParseDuration("90m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	d, err = ParseDuration("3d")
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, d)

	_, err = ParseDuration("xd")
	assert.Error(t, err)
}
