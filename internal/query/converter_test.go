package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
)

var convNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func converterContext() ConverterContext {
	return ConverterContext{
		Categories: []string{"politics", "tech", "sport"},
		Now:        convNow,
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		verify func(t *testing.T, s Search)
	}{
		{
			name:  "text only",
			input: "budget vote",
			verify: func(t *testing.T, s Search) {
				assert.Equal(t, "budget vote", s.Text)
				assert.Equal(t, domain.FacetAll, s.Facet())
			},
		},
		{
			name:  "category mention",
			input: "@Politics",
			verify: func(t *testing.T, s Search) {
				assert.Equal(t, "politics", s.Category)
				assert.Equal(t, domain.Facet("category:politics"), s.Facet())
			},
		},
		{
			name:  "fuzzy category resolves",
			input: "@~tec",
			verify: func(t *testing.T, s Search) {
				assert.Equal(t, "tech", s.Category)
			},
		},
		{
			name:  "tags and kind",
			input: "#election kind:video -#opinion",
			verify: func(t *testing.T, s Search) {
				assert.Equal(t, []string{"election"}, s.Tags)
				assert.Equal(t, domain.KindVideo, s.Kind)
				assert.Equal(t, []string{"opinion"}, s.ExcludeTags)
				assert.Equal(t, domain.Facet("tag:election"), s.Facet())
			},
		},
		{
			name:  "since window",
			input: "since:24h",
			verify: func(t *testing.T, s Search) {
				require.NotNil(t, s.Since)
				assert.Equal(t, convNow.Add(-24*time.Hour), *s.Since)
			},
		},
		{
			name:  "since and until timestamps",
			input: "since:2026-02-01 until:yesterday",
			verify: func(t *testing.T, s Search) {
				require.NotNil(t, s.Since)
				require.NotNil(t, s.Until)
				assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), *s.Since)
				assert.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), *s.Until)
			},
		},
		{
			name:  "sort alias",
			input: "sort:most-viewed",
			verify: func(t *testing.T, s Search) {
				assert.Equal(t, domain.SortPopular, s.Sort)
			},
		},
		{
			name:  "negated featured",
			input: "-featured:yes",
			verify: func(t *testing.T, s Search) {
				require.NotNil(t, s.Featured)
				assert.False(t, *s.Featured)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.input, converterContext())
			require.NoError(t, err)
			tt.verify(t, s)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown kind", "kind:podcast"},
		{"two categories", "@politics @tech"},
		{"unresolved fuzzy category", "@~zzzz"},
		{"bad sort", "sort:random"},
		{"bad since", "since:someday"},
		{"negated since", "-since:24h"},
		{"bad featured", "featured:maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input, converterContext())
			assert.Error(t, err)
		})
	}
}

func TestSearchMatches(t *testing.T) {
	items := []domain.Item{
		{ID: "1", Kind: domain.KindArticle, Category: "politics", Tags: []string{"election"}, Title: "Vote", PublishedAt: convNow.Add(-time.Hour)},
		{ID: "2", Kind: domain.KindVideo, Category: "politics", Tags: []string{"election", "opinion"}, Title: "Debate", PublishedAt: convNow.Add(-2 * time.Hour)},
		{ID: "3", Kind: domain.KindArticle, Category: "tech", Title: "Chips", PublishedAt: convNow.Add(-48 * time.Hour), Featured: true},
	}

	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"1", "2", "3"}},
		{"@politics", []string{"1", "2"}},
		{"#election -#opinion", []string{"1"}},
		{"-@politics", []string{"3"}},
		{"-kind:article", []string{"2"}},
		{"since:24h", []string{"1", "2"}},
		{"featured:yes", []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s, err := Parse(tt.input, converterContext())
			require.NoError(t, err)

			got := make([]string, 0)
			for _, item := range items {
				if s.Matches(item) {
					got = append(got, item.ID)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchIsEmpty(t *testing.T) {
	s, err := Parse("", converterContext())
	require.NoError(t, err)
	assert.True(t, s.IsEmpty())

	s, err = Parse("sort:popular", converterContext())
	require.NoError(t, err)
	assert.False(t, s.IsEmpty())
}
