package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	item := NewItem("a1", "Budget vote delayed", "Politics")

	assert.Equal(t, "a1", item.ID)
	assert.Equal(t, "Budget vote delayed", item.Title)
	assert.Equal(t, "politics", item.Category)
	assert.Equal(t, KindArticle, item.Kind)
	assert.NotNil(t, item.Tags)
	assert.False(t, item.PublishedAt.IsZero())
}

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid item",
			item:    Item{ID: "1", Title: "Headline", Kind: KindVideo},
			wantErr: false,
		},
		{
			name:    "empty id",
			item:    Item{ID: " ", Title: "Headline"},
			wantErr: true,
			errMsg:  "item id cannot be empty",
		},
		{
			name:    "empty title",
			item:    Item{ID: "1"},
			wantErr: true,
			errMsg:  "item title cannot be empty",
		},
		{
			name:    "title too long",
			item:    Item{ID: "1", Title: strings.Repeat("a", 301)},
			wantErr: true,
			errMsg:  "item title cannot exceed 300 characters",
		},
		{
			name:    "negative popularity",
			item:    Item{ID: "1", Title: "Headline", Popularity: -1},
			wantErr: true,
			errMsg:  "popularity cannot be negative",
		},
		{
			name:    "unknown kind",
			item:    Item{ID: "1", Title: "Headline", Kind: "podcast"},
			wantErr: true,
			errMsg:  "invalid kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.True(t, errors.Is(err, ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestItemHasTag(t *testing.T) {
	item := Item{Tags: []string{"Election", "budget"}}

	assert.True(t, item.HasTag("election"))
	assert.True(t, item.HasTag("BUDGET"))
	assert.False(t, item.HasTag("sport"))
}

func TestFacetParts(t *testing.T) {
	tests := []struct {
		facet     Facet
		wantKind  FacetKind
		wantValue string
	}{
		{"all", FacetKindAll, ""},
		{"", FacetKindAll, ""},
		{" ALL ", FacetKindAll, ""},
		{"Politics", FacetKindTopic, "politics"},
		{"category:tech", FacetKindCategory, "tech"},
		{"tag:election", FacetKindTag, "election"},
		{"type:video", FacetKindType, "video"},
		{"window:week", FacetKindWindow, "week"},
		{"color:red", FacetKindUnknown, "red"},
		{"category:", FacetKindUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(string(tt.facet), func(t *testing.T) {
			kind, value := tt.facet.Parts()
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestFacetLabel(t *testing.T) {
	assert.Equal(t, "all", FacetAll.Label())
	assert.Equal(t, "politics", Facet("politics").Label())
	assert.Equal(t, "videos", Facet("type:video").Label())
	assert.Equal(t, "window today", Facet("window:today").Label())
	assert.Equal(t, Facet("category:sport"), CategoryFacet("Sport"))
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		input   string
		want    SortKey
		wantErr bool
	}{
		{"newest", SortNewest, false},
		{"OLDEST", SortOldest, false},
		{"popular", SortPopular, false},
		{"trending", SortTrending, false},
		{"alphabetical", SortAlphabetical, false},
		{"latest", SortNewest, false},
		{"most-viewed", SortPopular, false},
		{"a-z", SortAlphabetical, false},
		{"random", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSortKey(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSortKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortKeyNext(t *testing.T) {
	assert.Equal(t, SortOldest, SortNewest.Next())
	assert.Equal(t, SortNewest, SortAlphabetical.Next())
	assert.Equal(t, DefaultSortKey, SortKey("bogus").Next())
}

func TestPageState(t *testing.T) {
	p := NewPageState(0)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 1, p.CurrentPage)
	require.NoError(t, p.Validate())

	p = NewPageState(5).Next().Next()
	assert.Equal(t, 3, p.CurrentPage)
	assert.Equal(t, 15, p.Limit())

	total := 40
	p.TotalKnown = &total
	reset := p.Reset()
	assert.Equal(t, 1, reset.CurrentPage)
	assert.Equal(t, 5, reset.PageSize)
	assert.Nil(t, reset.TotalKnown)

	err := PageState{PageSize: 0, CurrentPage: 1}.Validate()
	assert.ErrorIs(t, err, ErrInvalidPageState)
	err = PageState{PageSize: 3, CurrentPage: 0}.Validate()
	assert.ErrorIs(t, err, ErrInvalidPageState)
}

func TestPushRecentSearch(t *testing.T) {
	history := []string{"election", "budget"}

	history = PushRecentSearch(history, "Budget")
	assert.Equal(t, []string{"Budget", "election"}, history)

	history = PushRecentSearch(history, "  ")
	assert.Equal(t, []string{"Budget", "election"}, history)

	for i := 0; i < 20; i++ {
		history = PushRecentSearch(history, strings.Repeat("q", i+1))
	}
	assert.Len(t, history, MaxRecentSearches)
	assert.Equal(t, strings.Repeat("q", 20), history[0])
}

func TestValidateRating(t *testing.T) {
	assert.NoError(t, ValidateRating(1))
	assert.NoError(t, ValidateRating(5))
	assert.ErrorIs(t, ValidateRating(0), ErrValidation)
	assert.ErrorIs(t, ValidateRating(6), ErrValidation)
}

func TestFetchErrorMatchesSentinel(t *testing.T) {
	cause := errors.New("connection reset")
	err := &FetchError{Op: "fetch page 2", Err: cause}

	assert.ErrorIs(t, err, ErrFetchFailure)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "fetch page 2: connection reset", err.Error())
}
