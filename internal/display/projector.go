// Package display turns items into what a list shows on screen. It has no
// state and no I/O; the same item, position and clock always project to
// the same DisplayModel.
package display

import (
	"fmt"
	"strings"
	"time"

	"newsdesk/internal/domain"
)

const (
	MaxTitleLength   = 80
	MaxExcerptLength = 140
)

// DisplayModel is the render-ready view of one item.
type DisplayModel struct {
	ID            string `json:"id" yaml:"id"`
	Position      int    `json:"position" yaml:"position"`
	Rank          string `json:"rank,omitempty" yaml:"rank,omitempty"`
	Icon          string `json:"icon" yaml:"icon"`
	KindBadge     string `json:"kind" yaml:"kind"`
	CategoryBadge string `json:"category" yaml:"category"`
	Title         string `json:"title" yaml:"title"`
	Excerpt       string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Count         string `json:"count" yaml:"count"`
	Age           string `json:"age" yaml:"age"`
	Published     string `json:"published" yaml:"published"`
	Author        string `json:"author,omitempty" yaml:"author,omitempty"`
	Duration      string `json:"duration,omitempty" yaml:"duration,omitempty"`
	ImageURL      string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	URL           string `json:"url,omitempty" yaml:"url,omitempty"`
	Featured      bool   `json:"featured" yaml:"featured"`
}

// Project builds the display model of item shown at index (0-based) of
// the visible list.
func Project(item domain.Item, index int, now time.Time) DisplayModel {
	model := DisplayModel{
		ID:            item.ID,
		Position:      index + 1,
		Icon:          GetKindIcon(item.Kind),
		KindBadge:     GetKindBadge(item.Kind),
		CategoryBadge: categoryBadge(item.Category),
		Title:         Truncate(item.Title, MaxTitleLength),
		Excerpt:       Truncate(item.Excerpt, MaxExcerptLength),
		Count:         FormatCount(item.Popularity, countNoun(item.Kind)),
		Age:           FormatAge(item.PublishedAt, now),
		Author:        item.Author,
		Duration:      item.Duration,
		ImageURL:      item.ImageURL,
		URL:           item.URL,
		Featured:      item.Featured,
	}

	if !item.PublishedAt.IsZero() {
		model.Published = item.PublishedAt.Format(time.RFC3339)
	}

	if item.Kind == domain.KindTrending {
		model.Rank = fmt.Sprintf("#%d", index+1)
	}

	return model
}

// ProjectAll projects a visible slice in order.
func ProjectAll(items []domain.Item, now time.Time) []DisplayModel {
	models := make([]DisplayModel, len(items))
	for i, item := range items {
		models[i] = Project(item, i, now)
	}
	return models
}

func categoryBadge(category string) string {
	if category == "" {
		return "GENERAL"
	}
	return strings.ToUpper(category)
}

func countNoun(kind domain.Kind) string {
	if kind == domain.KindTrending {
		return "reads"
	}
	return "views"
}
