package ingest

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"newsdesk/internal/domain"
	"newsdesk/internal/query"
)

// CardSelector matches the article cards of a news page.
const CardSelector = "article[data-id], [data-item-id]"

// ParseMarkup extracts items from the cards of an HTML page. A card
// carries its metadata in data attributes:
//
//	<article data-id="a1" data-category="politics" data-tags="election,live"
//	         data-views="1204" data-featured="true" data-type="video">
//	  <h2><a href="/a1">Title</a></h2>
//	  <p class="excerpt">...</p>
//	  <img src="/a1.jpg">
//	  <time datetime="2025-03-14T09:00:00Z">2 hours ago</time>
//	  <span class="duration">3:12</span>
//	</article>
//
// The publish time comes from the datetime attribute or, failing that, the
// relative label resolved against now. Cards without a title are skipped.
func ParseMarkup(r io.Reader, now time.Time) ([]domain.Item, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse markup: %w", err)
	}

	items := make([]domain.Item, 0)
	doc.Find(CardSelector).Each(func(i int, card *goquery.Selection) {
		item, ok := cardToItem(card, now)
		if ok {
			items = append(items, item)
		}
	})
	return items, nil
}

func cardToItem(card *goquery.Selection, now time.Time) (domain.Item, bool) {
	title := text(card.Find("h1, h2, h3, .title").First())
	if title == "" {
		return domain.Item{}, false
	}

	id := attr(card, "data-id")
	if id == "" {
		id = attr(card, "data-item-id")
	}
	link, _ := card.Find("a[href]").First().Attr("href")
	if id == "" {
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(link+"|"+title)).String()
	}

	item := domain.Item{
		ID:       id,
		Kind:     domain.KindArticle,
		Category: strings.ToLower(attr(card, "data-category")),
		Tags:     splitTags(attr(card, "data-tags")),
		Title:    title,
		Excerpt:  text(card.Find(".excerpt, p").First()),
		URL:      link,
		Author:   text(card.Find(".author").First()),
		Duration: text(card.Find(".duration").First()),
		Featured: attr(card, "data-featured") == "true" || card.HasClass("featured"),
	}

	if kind := domain.Kind(strings.ToLower(attr(card, "data-type"))); domain.IsValidKind(kind) {
		item.Kind = kind
	}

	if views := strings.ReplaceAll(attr(card, "data-views"), ",", ""); views != "" {
		if n, err := strconv.ParseInt(views, 10, 64); err == nil && n >= 0 {
			item.Popularity = n
		}
	}

	if src, ok := card.Find("img[src]").First().Attr("src"); ok {
		item.ImageURL = src
	}

	item.PublishedAt = now
	if t := card.Find("time").First(); t.Length() > 0 {
		stamp, ok := t.Attr("datetime")
		if !ok || stamp == "" {
			stamp = text(t)
		}
		if published, err := query.ParseTimestamp(stamp, now); err == nil {
			item.PublishedAt = published
		}
	}

	return item, true
}

func attr(s *goquery.Selection, name string) string {
	v, _ := s.Attr(name)
	return strings.TrimSpace(v)
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

func splitTags(s string) []string {
	tags := make([]string, 0)
	for _, t := range strings.Split(s, ",") {
		if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
