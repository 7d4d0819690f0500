package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"newsdesk/internal/controller"
	"newsdesk/internal/display"
	"newsdesk/internal/domain"
	"newsdesk/internal/export"
	"newsdesk/internal/source"
	"newsdesk/internal/theme"
)

var (
	// list command flags
	listFacet    string
	listSort     string
	listPage     int
	listPageSize int
	listFormat   string
	listOutput   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List news items",
	Long: `List news items from the store, filtered by a facet and sorted by a key.

Facets:
  all                  every item (default)
  <category>           e.g. politics, same as category:politics
  tag:<tag>            items carrying a tag
  type:<kind>          article, photo, video or trending
  window:<window>      today, 24h, 7d, week, month

Sort keys: newest (default), oldest, popular, trending, alphabetical

Without --facet and --sort the last view used in the browser is listed.

Examples:
  newsdesk list
  newsdesk list --facet politics --sort popular
  newsdesk list --facet type:video --page 2
  newsdesk list --format json --output news.json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFacet, "facet", "f", "", "Filter facet (all, <category>, tag:x, type:x, window:x)")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "Sort key (newest, oldest, popular, trending, alphabetical)")
	listCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Number of pages to load")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Items per page (default from config)")
	listCmd.Flags().StringVar(&listFormat, "format", "table", "Output format (table, json, yaml, csv, markdown)")
	listCmd.Flags().StringVarP(&listOutput, "output", "o", "", "Output file (default: stdout)")
}

func runList(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(listFormat)
	if err != nil {
		return err
	}
	if listPage < 1 {
		return fmt.Errorf("page must be at least 1, got %d", listPage)
	}

	a, err := openApp("list")
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()

	facet, key := domain.FacetAll, domain.DefaultSortKey
	savedFacet, savedKey, err := a.prefs.LastView(ctx)
	if err != nil {
		a.logger.Warn("failed to read last view", "err", err)
	} else {
		facet, key = savedFacet, savedKey
	}

	if cmd.Flags().Changed("facet") {
		facet = domain.NormalizeFacet(listFacet)
	}
	if cmd.Flags().Changed("sort") {
		key, err = domain.ParseSortKey(listSort)
		if err != nil {
			return err
		}
	}

	ccfg := a.controllerConfig()
	if listPageSize > 0 {
		ccfg.PageSize = listPageSize
	}

	list := controller.New(source.NewRepository(a.items, a.logger), ccfg,
		controller.WithLogger(a.logger),
		controller.WithStart(facet, key),
	)
	defer list.Close()

	if _, err := list.Load(ctx, controller.Initial()); err != nil {
		return fmt.Errorf("failed to load items: %w", err)
	}
	for p := 1; p < listPage; p++ {
		if _, err := list.Load(ctx, controller.LoadMore()); err != nil {
			if errors.Is(err, controller.ErrNothingMore) {
				break
			}
			return fmt.Errorf("failed to load page %d: %w", p+1, err)
		}
	}

	now := time.Now()
	view := list.View(now)

	w := cmd.OutOrStdout()
	if listOutput != "" {
		f, err := os.Create(listOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == export.FormatTable {
		displayItemsTable(w, view, a.styles)
		return nil
	}

	if err := export.Write(w, format, export.FromView(view, now)); err != nil {
		return err
	}
	if listOutput != "" {
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(fmt.Sprintf("✓ Wrote %d item(s) to %s", len(view.Models), listOutput)))
	}
	return nil
}

func displayItemsTable(w io.Writer, view controller.View, styles *theme.Styles) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Info.Render(fmt.Sprintf("%s · sorted by %s", view.Facet.Label(), view.Sort)))
	fmt.Fprintln(w)

	if len(view.Models) == 0 {
		fmt.Fprintln(w, styles.Muted.Render("No items match this filter."))
		fmt.Fprintln(w)
		return
	}

	headers := []string{
		styles.Header.Render(fmt.Sprintf("%-4s", "#")),
		styles.Header.Render(fmt.Sprintf("%-11s", "Kind")),
		styles.Header.Render(fmt.Sprintf("%-50s", "Title")),
		styles.Header.Render(fmt.Sprintf("%-12s", "Category")),
		styles.Header.Render(fmt.Sprintf("%-14s", "Count")),
		styles.Header.Render(fmt.Sprintf("%-14s", "Age")),
	}
	fmt.Fprintln(w, strings.Join(headers, " "))
	fmt.Fprintln(w, styles.Separator.Render(strings.Repeat("─", 116)))

	for i, dm := range view.Models {
		printItemRow(w, dm, view.Items[i].Kind, styles)
	}

	fmt.Fprintln(w)
	total := fmt.Sprintf("Showing %d of %d item(s)", len(view.Models), view.Total)
	if view.HasMore {
		total += " · more available (--page " + strconv.Itoa(view.Page+1) + ")"
	}
	fmt.Fprintln(w, total)
	fmt.Fprintln(w)
}

func printItemRow(w io.Writer, dm display.DisplayModel, kind domain.Kind, styles *theme.Styles) {
	position := dm.Rank
	if position == "" {
		position = strconv.Itoa(dm.Position)
	}

	title := dm.Title
	if dm.Featured {
		title = "⭐ " + title
	}

	cells := []string{
		styles.Cell.Render(fmt.Sprintf("%-4s", position)),
		styles.KindStyle(kind).Render(fmt.Sprintf("%-11s", dm.Icon+" "+dm.KindBadge)),
		styles.Cell.Render(padRight(display.Truncate(title, 50), 50)),
		styles.Category.Render(fmt.Sprintf("%-12s", dm.CategoryBadge)),
		styles.Cell.Render(fmt.Sprintf("%-14s", dm.Count)),
		styles.Muted.Render(fmt.Sprintf("%-14s", dm.Age)),
	}
	fmt.Fprintln(w, strings.Join(cells, " "))
}

// pad by display width so wide runes line up
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
