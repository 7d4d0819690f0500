// Package export writes list pages and store backups in the formats the
// CLI offers.
package export

import (
	"fmt"
	"io"
	"time"

	"newsdesk/internal/controller"
)

// FromView captures a controller view for export.
func FromView(v controller.View, now time.Time) ViewExport {
	return ViewExport{
		Version:     Version,
		GeneratedAt: now.UTC(),
		Facet:       string(v.Facet),
		Sort:        string(v.Sort),
		Page:        v.Page,
		PageSize:    v.PageSize,
		HasMore:     v.HasMore,
		Items:       v.Models,
	}
}

// Write renders view in format. The table format is drawn by the CLI
// and is rejected here.
func Write(w io.Writer, format Format, view ViewExport) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, view)
	case FormatYAML:
		return WriteYAML(w, view)
	case FormatCSV:
		return WriteCSV(w, view)
	case FormatMarkdown:
		return WriteMarkdown(w, view)
	default:
		return fmt.Errorf("format %q is not a file format", format)
	}
}
