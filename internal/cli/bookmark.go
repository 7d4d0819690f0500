package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"newsdesk/internal/display"
	"newsdesk/internal/domain"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark",
	Short: "Manage bookmarked items",
	Long: `Bookmark items to find them again later.

Examples:
  newsdesk bookmark toggle 6f1c2a9e-...
  newsdesk bookmark list`,
}

var bookmarkToggleCmd = &cobra.Command{
	Use:   "toggle [item-id]",
	Short: "Bookmark an item, or remove its bookmark",
	Args:  cobra.ExactArgs(1),
	RunE:  runBookmarkToggle,
}

var bookmarkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bookmarked items",
	Args:  cobra.NoArgs,
	RunE:  runBookmarkList,
}

func init() {
	rootCmd.AddCommand(bookmarkCmd)
	bookmarkCmd.AddCommand(bookmarkToggleCmd, bookmarkListCmd)
}

func runBookmarkToggle(cmd *cobra.Command, args []string) error {
	a, err := openApp("bookmark")
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	id := args[0]

	item, err := a.items.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("item %s not found", id)
	}
	if err != nil {
		return fmt.Errorf("failed to get item: %w", err)
	}

	on, err := a.prefs.ToggleBookmark(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to toggle bookmark: %w", err)
	}

	if on {
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(fmt.Sprintf("★ Bookmarked %q", item.Title)))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), a.styles.Info.Render(fmt.Sprintf("☆ Removed bookmark for %q", item.Title)))
	}
	return nil
}

func runBookmarkList(cmd *cobra.Command, args []string) error {
	a, err := openApp("bookmark")
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	ids, err := a.prefs.Bookmarks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load bookmarks: %w", err)
	}

	if len(ids) == 0 {
		fmt.Fprintln(out, a.styles.Info.Render("No bookmarks yet."))
		return nil
	}

	now := time.Now()
	fmt.Fprintln(out)
	for i, id := range ids {
		item, err := a.items.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			fmt.Fprintf(out, "★ %s %s\n", a.styles.Muted.Render(id), a.styles.Muted.Render("(no longer stored)"))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to get item: %w", err)
		}

		dm := display.Project(*item, i, now)
		fmt.Fprintf(out, "★ %s %s %s · %s\n",
			a.styles.KindStyle(item.Kind).Render(dm.KindBadge),
			dm.Title,
			a.styles.Category.Render(dm.CategoryBadge),
			dm.Age,
		)
		fmt.Fprintf(out, "  %s\n", a.styles.Muted.Render(id))
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Total: %d bookmark(s)\n", len(ids))
	return nil
}
