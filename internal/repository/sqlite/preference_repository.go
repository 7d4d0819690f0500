package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/repository"
)

type preferenceRepository struct {
	db *DB
}

func NewPreferenceRepository(db *DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Get(ctx context.Context, key string) (*domain.Preference, error) {
	query := `SELECT key, value, updated_at FROM preferences WHERE key = ?`

	var pref domain.Preference
	if err := r.db.GetContext(ctx, &pref, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("preference %q: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}
	return &pref, nil
}

func (r *preferenceRepository) Set(ctx context.Context, key, value string) error {
	pref := domain.Preference{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	if err := pref.Validate(); err != nil {
		return fmt.Errorf("invalid preference: %w", err)
	}

	query := `INSERT OR REPLACE INTO preferences (key, value, updated_at) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, pref.Key, pref.Value, pref.UpdatedAt); err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}

func (r *preferenceRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete preference: %w", err)
	}
	return nil
}

func (r *preferenceRepository) List(ctx context.Context) ([]domain.Preference, error) {
	var prefs []domain.Preference
	if err := r.db.SelectContext(ctx, &prefs, `SELECT key, value, updated_at FROM preferences ORDER BY key`); err != nil {
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	return prefs, nil
}
