package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"newsdesk/internal/config"
	"newsdesk/internal/theme"
	"newsdesk/internal/tui"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage the color theme",
	Long: `Manage the color theme.

Run without arguments to pick a theme interactively with a live preview.

Examples:
  newsdesk theme            # interactive picker
  newsdesk theme set nord
  newsdesk theme list
  newsdesk theme show`,
	Args: cobra.NoArgs,
	RunE: runThemeTUI,
}

var themeSetCmd = &cobra.Command{
	Use:   "set [theme-name]",
	Short: "Set the theme",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemeSet,
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available themes",
	Args:  cobra.NoArgs,
	RunE:  runThemeList,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current theme's palette",
	Args:  cobra.NoArgs,
	RunE:  runThemeShow,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeSetCmd, themeListCmd, themeShowCmd)
}

func runThemeTUI(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(tui.NewSetupModel(), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("failed to run theme picker: %w", err)
	}

	m, ok := final.(tui.SetupModel)
	if !ok {
		return nil
	}
	if err := m.Err(); err != nil {
		return err
	}
	if m.Confirmed() {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s'\n", m.Selected())
	}
	return nil
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !theme.ThemeExists(name) {
		return fmt.Errorf("theme '%s' not found. Run 'newsdesk theme list' to see available themes", name)
	}

	if err := config.UpdateTheme(name); err != nil {
		return fmt.Errorf("failed to update theme: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Theme set to '%s'\n", name)
	return nil
}

func runThemeList(cmd *cobra.Command, args []string) error {
	current := appConfig.ThemeName
	if current == "" {
		current = "default"
	}
	styles := loadStyles(appConfig)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(" Available Themes "))
	fmt.Fprintln(out)

	for _, name := range theme.ListThemes() {
		prefix := "  "
		if name == current {
			prefix = "▶ "
			name = styles.Success.Render(name + " (current)")
		}
		fmt.Fprintf(out, "%s%s\n", prefix, name)
	}

	fmt.Fprintln(out)
	return nil
}

func runThemeShow(cmd *cobra.Command, args []string) error {
	t := loadTheme(appConfig)
	styles := theme.NewStyles(t)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Header.Render(fmt.Sprintf(" Current Theme: %s ", t.Name)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, styles.Info.Render("Color Palette:"))
	fmt.Fprintln(out)

	colors := []struct{ name, color string }{
		{"Primary", t.Primary},
		{"Success", t.Success},
		{"Error", t.Error},
		{"Warning", t.Warning},
		{"Secondary", t.Secondary},
		{"Text", t.TextPrimary},
		{"Border", t.BorderColor},
		{"Article", t.KindArticle},
		{"Photo", t.KindPhoto},
		{"Video", t.KindVideo},
		{"Trending", t.KindTrending},
		{"Banner", t.BannerBg},
	}

	for _, c := range colors {
		sample := lipgloss.NewStyle().
			Background(lipgloss.Color(c.color)).
			Foreground(lipgloss.Color(c.color)).
			Render("  ████  ")
		fmt.Fprintf(out, "  %-12s %s %s\n", c.name+":", sample, c.color)
	}

	fmt.Fprintln(out)
	return nil
}
