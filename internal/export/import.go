package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"newsdesk/internal/domain"
	"newsdesk/internal/repository"
)

type Importer struct {
	itemRepo repository.ItemRepository
	prefRepo repository.PreferenceRepository
}

func NewImporter(itemRepo repository.ItemRepository, prefRepo repository.PreferenceRepository) *Importer {
	return &Importer{
		itemRepo: itemRepo,
		prefRepo: prefRepo,
	}
}

type RestoreResult struct {
	Items       int
	Skipped     int
	Preferences int
}

// RestoreBackup loads a backup written by BackupExporter. With the skip
// strategy items whose id already exists are left alone.
func (i *Importer) RestoreBackup(ctx context.Context, r io.Reader, strategy ConflictStrategy) (RestoreResult, error) {
	var result RestoreResult

	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return result, fmt.Errorf("failed to decode backup: %w", err)
	}

	items := make([]domain.Item, 0, len(backup.Items))
	for _, item := range backup.Items {
		if strategy == ConflictStrategySkip {
			_, err := i.itemRepo.GetByID(ctx, item.ID)
			if err == nil {
				result.Skipped++
				continue
			}
			if !errors.Is(err, domain.ErrNotFound) {
				return result, fmt.Errorf("failed to check item %q: %w", item.ID, err)
			}
		}
		items = append(items, item)
	}

	n, err := i.itemRepo.UpsertMany(ctx, items)
	if err != nil {
		return result, fmt.Errorf("failed to restore items: %w", err)
	}
	result.Items = n

	if i.prefRepo != nil {
		for _, pref := range backup.Preferences {
			if err := i.prefRepo.Set(ctx, pref.Key, pref.Value); err != nil {
				return result, fmt.Errorf("failed to restore preference %q: %w", pref.Key, err)
			}
			result.Preferences++
		}
	}

	return result, nil
}
