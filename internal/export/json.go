package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"newsdesk/internal/repository"
)

func WriteJSON(w io.Writer, view ViewExport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(view)
}

type BackupExporter struct {
	itemRepo repository.ItemRepository
	prefRepo repository.PreferenceRepository
}

func NewBackupExporter(itemRepo repository.ItemRepository, prefRepo repository.PreferenceRepository) *BackupExporter {
	return &BackupExporter{
		itemRepo: itemRepo,
		prefRepo: prefRepo,
	}
}

func (e *BackupExporter) Backup(ctx context.Context) (*BackupData, error) {
	items, err := e.itemRepo.List(ctx, repository.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	backup := &BackupData{
		Version:   Version,
		Timestamp: time.Now().UTC(),
		Items:     items,
	}

	if e.prefRepo != nil {
		prefs, err := e.prefRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list preferences: %w", err)
		}
		backup.Preferences = prefs
	}

	return backup, nil
}

func (e *BackupExporter) BackupToWriter(ctx context.Context, w io.Writer) error {
	backup, err := e.Backup(ctx)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(backup)
}
