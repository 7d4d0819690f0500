package export

import (
	"fmt"
	"io"
	"strings"

	"newsdesk/internal/display"
)

func WriteMarkdown(w io.Writer, view ViewExport) error {
	fmt.Fprintf(w, "# News: %s\n\n", view.Facet)
	fmt.Fprintf(w, "**Sort**: %s | **Page**: %d | **Items**: %d\n\n", view.Sort, view.Page, len(view.Items))

	if len(view.Items) == 0 {
		fmt.Fprintln(w, "_No items._")
		return nil
	}

	for _, m := range view.Items {
		writeItem(w, m)
	}

	if view.HasMore {
		fmt.Fprintln(w, "\n_More items available._")
	}
	return nil
}

func writeItem(w io.Writer, m display.DisplayModel) {
	title := escapeMarkdown(m.Title)
	if m.URL != "" {
		title = fmt.Sprintf("[%s](%s)", title, m.URL)
	}

	prefix := fmt.Sprintf("%d.", m.Position)
	if m.Rank != "" {
		prefix += " " + m.Rank
	}
	if m.Featured {
		prefix += " ⭐"
	}

	fmt.Fprintf(w, "%s %s %s\n", prefix, m.Icon, title)
	fmt.Fprintf(w, "   `%s` · %s · %s", m.CategoryBadge, m.Count, m.Age)
	if m.Duration != "" {
		fmt.Fprintf(w, " · %s", m.Duration)
	}
	fmt.Fprintln(w)

	if m.Excerpt != "" {
		fmt.Fprintf(w, "   > %s\n", escapeMarkdown(m.Excerpt))
	}
}

func escapeMarkdown(s string) string {
	r := strings.NewReplacer("[", `\[`, "]", `\]`, "*", `\*`, "_", `\_`, "`", "\\`")
	return r.Replace(s)
}
