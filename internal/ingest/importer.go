package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"newsdesk/internal/domain"
)

// Feed is one configured feed. Category is used for entries that carry
// none of their own.
type Feed struct {
	URL      string `mapstructure:"url" yaml:"url" json:"url"`
	Category string `mapstructure:"category" yaml:"category" json:"category"`
}

// Sink stores imported items.
type Sink interface {
	UpsertMany(ctx context.Context, items []domain.Item) (int, error)
}

type Result struct {
	Feed  Feed
	Items []domain.Item
	Err   error
}

type Summary struct {
	Feeds  int
	Failed int
	Items  int
}

type Options struct {
	Concurrency int
	// minimum gap between two feed requests
	Interval time.Duration
	Timeout  time.Duration
	Client   *http.Client
	Logger   *log.Logger
}

type Importer struct {
	concurrency int
	limiter     *rate.Limiter
	timeout     time.Duration
	client      *http.Client
	logger      *log.Logger
	now         func() time.Time
}

func NewImporter(opts Options) *Importer {
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.Interval > 0 {
		limit = rate.Every(opts.Interval)
	}

	return &Importer{
		concurrency: opts.Concurrency,
		limiter:     rate.NewLimiter(limit, 1),
		timeout:     opts.Timeout,
		client:      opts.Client,
		logger:      opts.Logger,
		now:         time.Now,
	}
}

// Fetch downloads and parses feeds concurrently. A failing feed does not
// stop the others; its error is in its Result. Results keep feed order.
func (im *Importer) Fetch(ctx context.Context, feeds []Feed) []Result {
	results := make([]Result, len(feeds))

	var g errgroup.Group
	g.SetLimit(im.concurrency)

	for i, feed := range feeds {
		g.Go(func() error {
			results[i] = im.fetchOne(ctx, feed)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (im *Importer) fetchOne(ctx context.Context, feed Feed) Result {
	res := Result{Feed: feed}

	if err := im.limiter.Wait(ctx); err != nil {
		res.Err = &domain.FetchError{Op: "wait for rate limit", Err: err}
		return res
	}

	ctx, cancel := context.WithTimeout(ctx, im.timeout)
	defer cancel()

	parser := gofeed.NewParser()
	parser.Client = im.client
	parser.UserAgent = "newsdesk/1.0"

	start := time.Now()
	parsed, err := parser.ParseURLWithContext(feed.URL, ctx)
	if err != nil {
		res.Err = &domain.FetchError{Op: "fetch " + feed.URL, Err: err}
		im.warn("feed fetch failed", "url", feed.URL, "err", err)
		return res
	}

	res.Items = FeedToItems(parsed, feed.Category, im.now())
	im.debug("feed fetched", "url", feed.URL, "items", len(res.Items), "took", time.Since(start))
	return res
}

// Import fetches feeds and stores their items. It only returns an error
// when storing fails or every feed failed.
func (im *Importer) Import(ctx context.Context, feeds []Feed, sink Sink) (Summary, error) {
	summary := Summary{Feeds: len(feeds)}
	var errs []error

	for _, res := range im.Fetch(ctx, feeds) {
		if res.Err != nil {
			summary.Failed++
			errs = append(errs, res.Err)
			continue
		}
		n, err := sink.UpsertMany(ctx, res.Items)
		if err != nil {
			return summary, fmt.Errorf("failed to store items from %s: %w", res.Feed.URL, err)
		}
		summary.Items += n
	}

	if len(feeds) > 0 && summary.Failed == len(feeds) {
		return summary, errors.Join(errs...)
	}
	return summary, nil
}

// ParseFile reads a local feed (.xml, .rss, .atom) or page (.html, .htm).
func ParseFile(path, category string, now time.Time) ([]domain.Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		items, err := ParseMarkup(f, now)
		if err != nil {
			return nil, err
		}
		if category != "" {
			for i := range items {
				if items[i].Category == "" {
					items[i].Category = strings.ToLower(category)
				}
			}
		}
		return items, nil
	default:
		feed, err := ParseFeed(f)
		if err != nil {
			return nil, err
		}
		return FeedToItems(feed, category, now), nil
	}
}

func (im *Importer) debug(msg string, keyvals ...any) {
	if im.logger != nil {
		im.logger.Debug(msg, keyvals...)
	}
}

func (im *Importer) warn(msg string, keyvals ...any) {
	if im.logger != nil {
		im.logger.Warn(msg, keyvals...)
	}
}
