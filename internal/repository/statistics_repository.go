package repository

import (
	"context"
	"time"

	"newsdesk/internal/domain"
)

type StatisticsRepository interface {
	// GetStatistics computes store totals. Recency counts are relative to now.
	GetStatistics(ctx context.Context, now time.Time) (*domain.StoreStats, error)

	GetTopCategories(ctx context.Context, limit int) ([]domain.CategoryCount, error)
}
