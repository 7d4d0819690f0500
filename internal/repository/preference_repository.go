package repository

import (
	"context"

	"newsdesk/internal/domain"
)

// PreferenceRepository is an opaque key/value string store.
type PreferenceRepository interface {
	Get(ctx context.Context, key string) (*domain.Preference, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]domain.Preference, error)
}
