package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show and change reader preferences",
	Long: `Show the preferences kept between sessions: the last filter and sort,
bookmarks, recent searches and your rating.

Examples:
  newsdesk prefs
  newsdesk prefs rating 5
  newsdesk prefs recent
  newsdesk prefs clear-searches`,
	Args: cobra.NoArgs,
	RunE: runPrefsShow,
}

var prefsRatingCmd = &cobra.Command{
	Use:   "rating [1-5]",
	Short: "Rate newsdesk",
	Args:  cobra.ExactArgs(1),
	RunE:  runPrefsRating,
}

var prefsRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recent searches",
	Args:  cobra.NoArgs,
	RunE:  runPrefsRecent,
}

var prefsClearSearchesCmd = &cobra.Command{
	Use:   "clear-searches",
	Short: "Forget recent searches",
	Args:  cobra.NoArgs,
	RunE:  runPrefsClearSearches,
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsRatingCmd, prefsRecentCmd, prefsClearSearchesCmd)
}

func runPrefsShow(cmd *cobra.Command, args []string) error {
	a, err := openApp("prefs")
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	facet, key, err := a.prefs.LastView(ctx)
	if err != nil {
		return fmt.Errorf("failed to load last view: %w", err)
	}
	bookmarks, err := a.prefs.Bookmarks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load bookmarks: %w", err)
	}
	recent, err := a.prefs.RecentSearches(ctx)
	if err != nil {
		return fmt.Errorf("failed to load recent searches: %w", err)
	}
	rating, err := a.prefs.Rating(ctx)
	if err != nil {
		return fmt.Errorf("failed to load rating: %w", err)
	}

	stars := "not rated"
	if rating > 0 {
		stars = strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, a.styles.Header.Render(" Preferences "))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-16s %s\n", "Last filter:", facet.Label())
	fmt.Fprintf(out, "  %-16s %s\n", "Last sort:", key)
	fmt.Fprintf(out, "  %-16s %d\n", "Bookmarks:", len(bookmarks))
	fmt.Fprintf(out, "  %-16s %d\n", "Recent searches:", len(recent))
	fmt.Fprintf(out, "  %-16s %s\n", "Rating:", stars)
	fmt.Fprintln(out)
	return nil
}

func runPrefsRating(cmd *cobra.Command, args []string) error {
	rating, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("rating must be a number from 1 to 5, got %q", args[0])
	}

	a, err := openApp("prefs")
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.prefs.SetRating(cmd.Context(), rating); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(fmt.Sprintf("✓ Thanks! Rated %d/5", rating)))
	return nil
}

func runPrefsRecent(cmd *cobra.Command, args []string) error {
	a, err := openApp("prefs")
	if err != nil {
		return err
	}
	defer a.Close()

	recent, err := a.prefs.RecentSearches(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load recent searches: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(recent) == 0 {
		fmt.Fprintln(out, a.styles.Info.Render("No recent searches."))
		return nil
	}
	for i, q := range recent {
		fmt.Fprintf(out, "%2d. %s\n", i+1, q)
	}
	return nil
}

func runPrefsClearSearches(cmd *cobra.Command, args []string) error {
	a, err := openApp("prefs")
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.prefs.ClearSearches(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear searches: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render("✓ Recent searches cleared"))
	return nil
}
