package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/repository"
)

type StatisticsRepository struct {
	db *DB
}

func NewStatisticsRepository(db *DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

func (r *StatisticsRepository) GetStatistics(ctx context.Context, now time.Time) (*domain.StoreStats, error) {
	stats := domain.NewStoreStats(now)

	var featured sql.NullInt64
	var popularity sql.NullInt64
	err := r.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*) as total,
			SUM(CASE WHEN featured = 1 THEN 1 ELSE 0 END) as featured,
			SUM(popularity) as popularity
		FROM items
	`).Scan(&stats.TotalItems, &featured, &popularity)
	if err != nil {
		return nil, fmt.Errorf("failed to get item counts: %w", err)
	}
	stats.Featured = int(featured.Int64)
	stats.TotalPopularity = popularity.Int64

	if !stats.HasItems() {
		return stats, nil
	}

	kindCounts, err := r.getItemCountsByKind(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get kind counts: %w", err)
	}
	for kind, count := range kindCounts {
		stats.ByKind[domain.Kind(kind)] = count
	}

	stats.PublishedLastDay, err = r.getPublishedSinceCount(ctx, now.Add(-24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to get last day count: %w", err)
	}

	stats.PublishedLastWeek, err = r.getPublishedSinceCount(ctx, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, fmt.Errorf("failed to get last week count: %w", err)
	}

	stats.Oldest, stats.Newest, err = r.getPublishedRange(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get publish range: %w", err)
	}

	return stats, nil
}

// categories with the most items, case-folded, ties broken by popularity
func (r *StatisticsRepository) GetTopCategories(ctx context.Context, limit int) ([]domain.CategoryCount, error) {
	if limit <= 0 {
		return []domain.CategoryCount{}, nil
	}

	var counts []domain.CategoryCount
	err := r.db.SelectContext(ctx, &counts, `
		SELECT LOWER(category) as category, COUNT(*) as count, COALESCE(SUM(popularity), 0) as popularity
		FROM items
		WHERE category != ''
		GROUP BY LOWER(category)
		ORDER BY count DESC, popularity DESC, category ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top categories: %w", err)
	}

	if counts == nil {
		counts = []domain.CategoryCount{}
	}
	return counts, nil
}

func (r *StatisticsRepository) getItemCountsByKind(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT kind, COUNT(*) as count
		FROM items
		GROUP BY kind
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, err
		}
		counts[kind] = count
	}

	return counts, rows.Err()
}

func (r *StatisticsRepository) getPublishedSinceCount(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM items
		WHERE published_at >= ?
	`, utc(since)).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *StatisticsRepository) getPublishedRange(ctx context.Context) (*time.Time, *time.Time, error) {
	var oldest, newest time.Time
	err := r.db.QueryRowContext(ctx, `
		SELECT published_at FROM items ORDER BY published_at ASC LIMIT 1
	`).Scan(&oldest)
	if err != nil {
		return nil, nil, err
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT published_at FROM items ORDER BY published_at DESC LIMIT 1
	`).Scan(&newest)
	if err != nil {
		return nil, nil, err
	}

	return &oldest, &newest, nil
}

var _ repository.StatisticsRepository = (*StatisticsRepository)(nil)
