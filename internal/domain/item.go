package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// item kind
type Kind string

const (
	KindArticle  Kind = "article"
	KindPhoto    Kind = "photo"
	KindVideo    Kind = "video"
	KindTrending Kind = "trending"
)

// Item is one display record of a news list: an article card, a gallery
// photo, a video tile or a trending story. Items are values. A refreshed
// item replaces the old one, it is never edited in place.
type Item struct {
	ID          string    `db:"id" json:"id" yaml:"id"`
	Kind        Kind      `db:"kind" json:"kind" yaml:"kind"`
	Category    string    `db:"category" json:"category" yaml:"category"`
	Tags        []string  `db:"tags" json:"tags,omitempty" yaml:"tags,omitempty"`
	Title       string    `db:"title" json:"title" yaml:"title"`
	Excerpt     string    `db:"excerpt" json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	ImageURL    string    `db:"image_url" json:"image_url,omitempty" yaml:"image_url,omitempty"`
	URL         string    `db:"url" json:"url,omitempty" yaml:"url,omitempty"`
	Author      string    `db:"author" json:"author,omitempty" yaml:"author,omitempty"`
	Duration    string    `db:"duration" json:"duration,omitempty" yaml:"duration,omitempty"`
	PublishedAt time.Time `db:"published_at" json:"published_at" yaml:"published_at"`
	Popularity  int64     `db:"popularity" json:"popularity" yaml:"popularity"`
	Featured    bool      `db:"featured" json:"featured" yaml:"featured"`
}

func (i *Item) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return &ValidationError{Field: "id", Message: "item id cannot be empty"}
	}

	if strings.TrimSpace(i.Title) == "" {
		return &ValidationError{Field: "title", Message: "item title cannot be empty"}
	}

	if len(i.Title) > 300 {
		return &ValidationError{Field: "title", Message: "item title cannot exceed 300 characters"}
	}

	if i.Popularity < 0 {
		return &ValidationError{Field: "popularity", Message: "popularity cannot be negative"}
	}

	if i.Kind != "" && !IsValidKind(i.Kind) {
		return &ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("invalid kind %q: must be article, photo, video, or trending", i.Kind),
		}
	}

	return nil
}

// HasTag reports whether the item carries tag, ignoring case.
func (i *Item) HasTag(tag string) bool {
	return slices.ContainsFunc(i.Tags, func(t string) bool {
		return strings.EqualFold(t, tag)
	})
}

// create a new article item
func NewItem(id, title, category string) Item {
	return Item{
		ID:          id,
		Kind:        KindArticle,
		Category:    strings.ToLower(category),
		Tags:        make([]string, 0),
		Title:       title,
		PublishedAt: time.Now(),
	}
}

func IsValidKind(k Kind) bool {
	switch k {
	case KindArticle, KindPhoto, KindVideo, KindTrending:
		return true
	default:
		return false
	}
}

func Kinds() []Kind {
	return []Kind{KindArticle, KindPhoto, KindVideo, KindTrending}
}
