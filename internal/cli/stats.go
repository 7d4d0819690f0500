package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"newsdesk/internal/display"
	"newsdesk/internal/domain"
	"newsdesk/internal/repository/sqlite"
	"newsdesk/internal/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show item store statistics",
	Long: `Display an overview of the stored items.

Provides:
  - Item counts by kind
  - Featured items and total views
  - Items published in the last day and week
  - Top categories by item count

Examples:
  newsdesk stats                  # Show all statistics
  newsdesk stats --top 10         # Show top 10 categories
  newsdesk stats --format json    # Machine-readable output`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsTopLimit int
	statsFormat   string
)

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsTopLimit, "top", 5, "Number of top categories to show")
	statsCmd.Flags().StringVar(&statsFormat, "format", "text", "Output format (text, json)")
}

func runStats(cmd *cobra.Command, args []string) error {
	if statsFormat != "text" && statsFormat != "json" {
		return fmt.Errorf("invalid format %q (use text or json)", statsFormat)
	}

	a, err := openApp("stats")
	if err != nil {
		return err
	}
	defer a.Close()

	statsRepo := sqlite.NewStatisticsRepository(a.db)
	ctx := cmd.Context()

	stats, err := statsRepo.GetStatistics(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to get statistics: %w", err)
	}

	if statsTopLimit > 0 {
		top, err := statsRepo.GetTopCategories(ctx, statsTopLimit)
		if err != nil {
			a.logger.Warn("top categories unavailable", "err", err)
		} else {
			stats.TopCategories = top
		}
	}

	out := cmd.OutOrStdout()
	if statsFormat == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	}

	displayStatistics(out, stats, a.styles)
	return nil
}

func displayStatistics(out io.Writer, stats *domain.StoreStats, styles *theme.Styles) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Title.Render("📊 Store Statistics"))
	fmt.Fprintln(out)

	if !stats.HasItems() {
		fmt.Fprintln(out, styles.Info.Render("No items stored yet. Run 'newsdesk import' or 'newsdesk seed'."))
		fmt.Fprintln(out)
		return
	}

	fmt.Fprintln(out, styles.Subtitle.Render("Items"))
	fmt.Fprintf(out, "  Total:     %s\n", styles.Info.Render(humanize.Comma(int64(stats.TotalItems))))
	fmt.Fprintf(out, "  Featured:  %s ★\n", styles.Info.Render(fmt.Sprintf("%d", stats.Featured)))
	fmt.Fprintf(out, "  Views:     %s (%.1f per item)\n",
		styles.Info.Render(display.FormatCount(stats.TotalPopularity, "views")), stats.AveragePopularity())
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.Subtitle.Render("Kind Distribution"))
	for _, kind := range domain.Kinds() {
		pct := stats.KindShare(kind)
		label := padRight(display.GetKindBadge(kind)+":", 10)
		fmt.Fprintf(out, "  %s %s %s\n",
			styles.KindStyle(kind).Render(label),
			renderBar(int(pct/5), 20, "█"),
			fmt.Sprintf("%d (%.1f%%)", stats.ByKind[kind], pct))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.Subtitle.Render("Recency"))
	fmt.Fprintf(out, "  Last day:   %s\n", styles.Info.Render(fmt.Sprintf("%d", stats.PublishedLastDay)))
	fmt.Fprintf(out, "  Last week:  %s\n", styles.Info.Render(fmt.Sprintf("%d", stats.PublishedLastWeek)))
	if stats.Newest != nil && stats.Oldest != nil {
		fmt.Fprintf(out, "  Newest:     %s\n", display.FormatAge(*stats.Newest, stats.CalculatedAt))
		fmt.Fprintf(out, "  Oldest:     %s\n", display.FormatAge(*stats.Oldest, stats.CalculatedAt))
	}
	fmt.Fprintln(out)

	if len(stats.TopCategories) > 0 {
		fmt.Fprintln(out, styles.Subtitle.Render(fmt.Sprintf("Top %d Categories by Item Count", len(stats.TopCategories))))
		for i, c := range stats.TopCategories {
			pct := float64(c.Count) / float64(stats.TotalItems) * 100
			fmt.Fprintf(out, "  %d. %s %s %s\n", i+1,
				styles.Category.Render(padRight(strings.ToUpper(c.Category), 12)),
				renderBar(int(pct/5), 20, "█"),
				styles.Cell.Render(fmt.Sprintf("(%d items)", c.Count)))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Calculated at: %s\n", stats.CalculatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(out)
}

func renderBar(value, maxWidth int, char string) string {
	if value > maxWidth {
		value = maxWidth
	}
	if value < 0 {
		value = 0
	}
	return strings.Repeat(char, value)
}
