package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/repository"
)

type ItemRepository struct {
	db *DB
}

func NewItemRepository(db *DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `id, kind, category, tags, title, excerpt, image_url, url, author, duration, published_at, popularity, featured`

type dbItem struct {
	ID          string         `db:"id"`
	Kind        string         `db:"kind"`
	Category    string         `db:"category"`
	Tags        sql.NullString `db:"tags"`
	Title       string         `db:"title"`
	Excerpt     sql.NullString `db:"excerpt"`
	ImageURL    sql.NullString `db:"image_url"`
	URL         sql.NullString `db:"url"`
	Author      sql.NullString `db:"author"`
	Duration    sql.NullString `db:"duration"`
	PublishedAt time.Time      `db:"published_at"`
	Popularity  int64          `db:"popularity"`
	Featured    bool           `db:"featured"`
}

// converts dbItem to a domain.Item
func (di *dbItem) toItem() (domain.Item, error) {
	item := domain.Item{
		ID:          di.ID,
		Kind:        domain.Kind(di.Kind),
		Category:    di.Category,
		Title:       di.Title,
		Excerpt:     di.Excerpt.String,
		ImageURL:    di.ImageURL.String,
		URL:         di.URL.String,
		Author:      di.Author.String,
		Duration:    di.Duration.String,
		PublishedAt: di.PublishedAt,
		Popularity:  di.Popularity,
		Featured:    di.Featured,
	}

	// parse tags JSON
	if di.Tags.Valid && di.Tags.String != "" {
		if err := json.Unmarshal([]byte(di.Tags.String), &item.Tags); err != nil {
			return domain.Item{}, fmt.Errorf("failed to parse tags: %w", err)
		}
	} else {
		item.Tags = make([]string, 0)
	}

	return item, nil
}

// insert an item, or replace the stored one with the same id. The stored
// position of an existing item is kept.
func (r *ItemRepository) Upsert(ctx context.Context, item *domain.Item) error {
	return r.upsert(ctx, r.db, item)
}

// upsert a batch in one transaction, returns how many were written
func (r *ItemRepository) UpsertMany(ctx context.Context, items []domain.Item) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := range items {
		if err := r.upsert(ctx, tx, &items[i]); err != nil {
			return 0, fmt.Errorf("item %q: %w", items[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit items: %w", err)
	}
	return len(items), nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *ItemRepository) upsert(ctx context.Context, exec execer, item *domain.Item) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if item.Kind == "" {
		item.Kind = domain.KindArticle
	}
	if item.Tags == nil {
		item.Tags = make([]string, 0)
	}
	// stored folded: NOCASE only folds ASCII
	item.Category = strings.ToLower(item.Category)
	tags := make([]string, len(item.Tags))
	for i, tag := range item.Tags {
		tags[i] = strings.ToLower(tag)
	}
	item.Tags = tags

	// serialize tags to JSON
	tagsJSON, err := json.Marshal(item.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	query := `
		INSERT INTO items (` + itemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			category = excluded.category,
			tags = excluded.tags,
			title = excluded.title,
			excerpt = excluded.excerpt,
			image_url = excluded.image_url,
			url = excluded.url,
			author = excluded.author,
			duration = excluded.duration,
			published_at = excluded.published_at,
			popularity = excluded.popularity,
			featured = excluded.featured
	`

	_, err = exec.ExecContext(ctx, query,
		item.ID,
		item.Kind,
		item.Category,
		string(tagsJSON),
		item.Title,
		nullString(item.Excerpt),
		nullString(item.ImageURL),
		nullString(item.URL),
		nullString(item.Author),
		nullString(item.Duration),
		utc(item.PublishedAt),
		item.Popularity,
		item.Featured,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert item: %w", err)
	}

	return nil
}

// get an item by its id
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`

	var row dbItem
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	item, err := row.toItem()
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// count items matching filter
func (r *ItemRepository) Count(ctx context.Context, filter repository.ItemFilter) (int64, error) {
	query, args := r.buildWhereClause(filter, true)

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}

	return count, nil
}

// list items matching filter in insertion order
func (r *ItemRepository) List(ctx context.Context, filter repository.ItemFilter) ([]domain.Item, error) {
	query, args := r.buildWhereClause(filter, false)
	query += " ORDER BY seq ASC"

	// add pagination
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)

		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	var rows []dbItem
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		item, err := row.toItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// constructs the WHERE clause with all filters
func (r *ItemRepository) buildWhereClause(filter repository.ItemFilter, isCount bool) (string, []any) {
	var query string
	if isCount {
		query = "SELECT COUNT(*) FROM items WHERE 1=1"
	} else {
		query = "SELECT " + itemColumns + " FROM items WHERE 1=1"
	}

	args := make([]any, 0)

	if filter.Topic != "" {
		query += " AND (category = ? COLLATE NOCASE OR EXISTS (SELECT 1 FROM json_each(items.tags) WHERE value = ? COLLATE NOCASE))"
		topic := strings.ToLower(filter.Topic)
		args = append(args, topic, topic)
	}
	if filter.Category != "" {
		query += " AND category = ? COLLATE NOCASE"
		args = append(args, strings.ToLower(filter.Category))
	}
	if filter.Tag != "" {
		query += " AND EXISTS (SELECT 1 FROM json_each(items.tags) WHERE value = ? COLLATE NOCASE)"
		args = append(args, strings.ToLower(filter.Tag))
	}
	if filter.Kind != "" {
		query += " AND kind = ?"
		args = append(args, filter.Kind)
	}

	// publish window
	if filter.Since != nil {
		query += " AND published_at >= ?"
		args = append(args, utc(*filter.Since))
	}
	if filter.Until != nil {
		query += " AND published_at <= ?"
		args = append(args, utc(*filter.Until))
	}

	if filter.SearchQuery != "" {
		searchPattern := "%" + filter.SearchQuery + "%"
		query += ` AND (
			title LIKE ? COLLATE NOCASE OR
			COALESCE(excerpt, '') LIKE ? COLLATE NOCASE
		)`
		args = append(args, searchPattern, searchPattern)
	}

	if len(filter.IDs) > 0 {
		query += " AND id IN (" + placeholders(len(filter.IDs)) + ")"
		for _, id := range filter.IDs {
			args = append(args, id)
		}
	}

	return query, args
}

// distinct categories in first-seen order
func (r *ItemRepository) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT category FROM items
		WHERE category != ''
		GROUP BY category
		ORDER BY MIN(seq)
	`

	var categories []string
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// remove an item
func (r *ItemRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return fmt.Errorf("item %q: %w", id, domain.ErrNotFound)
	}

	return nil
}

var _ repository.ItemRepository = (*ItemRepository)(nil)
