package export

import (
	"fmt"
	"strings"
	"time"

	"newsdesk/internal/display"
	"newsdesk/internal/domain"
)

const Version = "1.0"

// ViewExport is a rendered list page as written by list --format.
type ViewExport struct {
	Version     string                 `json:"version" yaml:"version"`
	GeneratedAt time.Time              `json:"generated_at" yaml:"generated_at"`
	Facet       string                 `json:"facet" yaml:"facet"`
	Sort        string                 `json:"sort" yaml:"sort"`
	Page        int                    `json:"page" yaml:"page"`
	PageSize    int                    `json:"page_size" yaml:"page_size"`
	HasMore     bool                   `json:"has_more" yaml:"has_more"`
	Items       []display.DisplayModel `json:"items" yaml:"items"`
}

// BackupData is a full dump of the store.
type BackupData struct {
	Version     string              `json:"version" yaml:"version"`
	Timestamp   time.Time           `json:"timestamp" yaml:"timestamp"`
	Items       []domain.Item       `json:"items" yaml:"items"`
	Preferences []domain.Preference `json:"preferences,omitempty" yaml:"preferences,omitempty"`
}

type ConflictStrategy string

const (
	ConflictStrategySkip      ConflictStrategy = "skip"
	ConflictStrategyOverwrite ConflictStrategy = "overwrite"
)

type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML, FormatCSV, FormatMarkdown}
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case "yml":
		return FormatYAML, nil
	case "md":
		return FormatMarkdown, nil
	case FormatJSON, FormatYAML, FormatCSV, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (use table, json, yaml, csv or markdown)", s)
	}
}
