package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

func WriteCSV(w io.Writer, view ViewExport) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"Position", "ID", "Kind", "Category", "Title", "Count", "Age", "Published", "Featured", "URL"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, m := range view.Items {
		row := []string{
			strconv.Itoa(m.Position),
			m.ID,
			m.KindBadge,
			m.CategoryBadge,
			m.Title,
			m.Count,
			m.Age,
			m.Published,
			strconv.FormatBool(m.Featured),
			m.URL,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
