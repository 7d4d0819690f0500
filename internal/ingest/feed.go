// Package ingest turns outside content into items: RSS and Atom feeds,
// and the article card markup news pages embed.
package ingest

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"newsdesk/internal/domain"
)

// ParseFeed parses an RSS or Atom document.
func ParseFeed(r io.Reader) (*gofeed.Feed, error) {
	feed, err := gofeed.NewParser().Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return feed, nil
}

// FeedItemToItem maps a feed entry to an item. The id is derived from the
// entry's guid or link so importing a feed twice updates the same items.
// The first entry category becomes the item category, the rest become tags;
// entries without one get fallbackCategory.
func FeedItemToItem(entry *gofeed.Item, fallbackCategory string, now time.Time) domain.Item {
	key := entry.GUID
	if key == "" {
		key = entry.Link
	}
	if key == "" {
		key = entry.Title
	}

	title := strings.TrimSpace(entry.Title)
	if title == "" {
		title = "(No title)"
	}

	item := domain.Item{
		ID:       uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String(),
		Kind:     domain.KindArticle,
		Category: strings.ToLower(fallbackCategory),
		Tags:     make([]string, 0),
		Title:    title,
		Excerpt:  stripHTML(entry.Description),
		URL:      entry.Link,
	}

	for i, c := range entry.Categories {
		c = strings.ToLower(strings.TrimSpace(c))
		if c == "" {
			continue
		}
		if i == 0 {
			item.Category = c
			continue
		}
		item.Tags = append(item.Tags, c)
	}

	if entry.Author != nil && entry.Author.Name != "" {
		item.Author = entry.Author.Name
	} else if entry.DublinCoreExt != nil && len(entry.DublinCoreExt.Creator) > 0 {
		item.Author = entry.DublinCoreExt.Creator[0]
	}

	switch {
	case entry.PublishedParsed != nil:
		item.PublishedAt = *entry.PublishedParsed
	case entry.UpdatedParsed != nil:
		item.PublishedAt = *entry.UpdatedParsed
	default:
		item.PublishedAt = now
	}

	if entry.Image != nil {
		item.ImageURL = entry.Image.URL
	}
	for _, enc := range entry.Enclosures {
		switch {
		case strings.HasPrefix(enc.Type, "video/"):
			item.Kind = domain.KindVideo
		case strings.HasPrefix(enc.Type, "image/") && item.ImageURL == "":
			item.ImageURL = enc.URL
		}
	}

	if len(item.Title) > 300 {
		item.Title = item.Title[:297] + "..."
	}
	return item
}

// FeedToItems converts every entry of feed.
func FeedToItems(feed *gofeed.Feed, fallbackCategory string, now time.Time) []domain.Item {
	items := make([]domain.Item, 0, len(feed.Items))
	for _, entry := range feed.Items {
		items = append(items, FeedItemToItem(entry, fallbackCategory, now))
	}
	return items
}

// stripHTML returns the text of an HTML fragment.
func stripHTML(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.TrimSpace(s)
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
