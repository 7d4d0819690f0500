package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"newsdesk/internal/controller"
	"newsdesk/internal/display"
	"newsdesk/internal/domain"
	"newsdesk/internal/export"
	"newsdesk/internal/search"
	"newsdesk/internal/theme"
)

var (
	// search command flags
	searchFormat string
	searchLimit  int
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search news items",
	Long: `Search the store with free text and filters.

Free words are matched fuzzily against titles and excerpts. Filters:
  @category        category, @~cat for a fuzzy category match
  #tag             tag
  kind:video       article, photo, video or trending
  since:24h        relative window or date (2026-01-31)
  until:2026-02-01 date
  sort:popular     sort key for --format output
  featured:true    featured items only
  -@cat -#tag      exclude a category or tag

Examples:
  newsdesk search budget
  newsdesk search "budget @politics since:7d"
  newsdesk search "#election -@opinion" --format json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVar(&searchFormat, "format", "table", "Output format (table, json, yaml, csv, markdown)")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "Maximum number of results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(searchFormat)
	if err != nil {
		return err
	}
	if searchLimit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", searchLimit)
	}

	a, err := openApp("search")
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	input := strings.Join(args, " ")

	result, err := a.searchService().Find(ctx, input)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Error.Render(fmt.Sprintf("✗ %v", err)))
		return nil
	}

	w := cmd.OutOrStdout()
	if format == export.FormatTable {
		displaySearchResults(w, result, searchLimit, a.styles)
		return nil
	}

	// other formats go through a list so they match list --format
	key := result.Search.Sort
	if key == "" {
		key = domain.DefaultSortKey
	}
	cfg := a.controllerConfig()
	cfg.PageSize = searchLimit

	list := controller.New(result.Source(time.Now), cfg,
		controller.WithLogger(a.logger),
		controller.WithStart(domain.FacetAll, key),
	)
	defer list.Close()

	if _, err := list.Load(ctx, controller.Initial()); err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	now := time.Now()
	return export.Write(w, format, export.FromView(list.View(now), now))
}

func displaySearchResults(w io.Writer, result search.Result, limit int, styles *theme.Styles) {
	fmt.Fprintln(w)

	if len(result.Hits) == 0 {
		fmt.Fprintln(w, styles.Info.Render(fmt.Sprintf("No items match %q.", result.Input)))
		fmt.Fprintln(w)
		return
	}

	hits := result.Hits
	if len(hits) > limit {
		hits = hits[:limit]
	}

	now := time.Now()
	for i, hit := range hits {
		dm := display.Project(hit.Item, i, now)

		score := ""
		if hit.Score > 0 {
			score = styles.Muted.Render(fmt.Sprintf("[%3d]", hit.Score))
		}
		fmt.Fprintf(w, "%s %s %s %s\n",
			score,
			styles.KindStyle(hit.Item.Kind).Render(dm.KindBadge),
			dm.Title,
			styles.Category.Render(dm.CategoryBadge),
		)
		fmt.Fprintf(w, "      %s · %s · %s\n", dm.Count, dm.Age, styles.Muted.Render(dm.ID))
	}

	fmt.Fprintln(w)
	summary := fmt.Sprintf("%d result(s)", len(result.Hits))
	if len(result.Hits) > limit {
		summary = fmt.Sprintf("Showing %d of %d result(s)", limit, len(result.Hits))
	}
	fmt.Fprintln(w, summary)
	fmt.Fprintln(w)
}
