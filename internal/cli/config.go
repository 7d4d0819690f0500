package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"newsdesk/internal/config"
	"newsdesk/internal/ingest"
)

var feedCategory string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and change settings",
	Long: `Show and change settings in the config file.

Every setting can also be overridden with a NEWSDESK_ environment
variable, e.g. NEWSDESK_PAGE_SIZE=20.

Examples:
  newsdesk config show
  newsdesk config set page_size 20
  newsdesk config set fetch_timeout 10s
  newsdesk config feeds add https://example.com/world.rss --category world`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change a setting",
	Long:  "Change a setting. Keys: " + strings.Join(config.Keys(), ", "),
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), config.GetConfigFile())
	},
}

var configFeedsCmd = &cobra.Command{
	Use:   "feeds",
	Short: "List configured feeds",
	Args:  cobra.NoArgs,
	RunE:  runConfigFeeds,
}

var configFeedsAddCmd = &cobra.Command{
	Use:   "add [url]",
	Short: "Add a feed for 'newsdesk import'",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigFeedsAdd,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd, configPathCmd, configFeedsCmd)
	configFeedsCmd.AddCommand(configFeedsAddCmd)

	configFeedsAddCmd.Flags().StringVarP(&feedCategory, "category", "c", "", "Category for entries without one")
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	defer enc.Close()

	// durations print as 5s rather than nanoseconds
	shown := map[string]any{
		"db_path":               appConfig.DBPath,
		"theme_name":            appConfig.ThemeName,
		"page_size":             appConfig.PageSize,
		"fetch_timeout":         appConfig.FetchTimeout.String(),
		"announce_clear":        appConfig.AnnounceClear.String(),
		"near_bottom_threshold": appConfig.NearBottomThreshold,
		"log_level":             appConfig.LogLevel,
		"log_dir":               appConfig.LogDir,
		"feeds":                 appConfig.Feeds,
	}
	if err := enc.Encode(shown); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := config.Set(args[0], args[1]); err != nil {
		return err
	}

	styles := loadStyles(appConfig)
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("✓ %s set to %s", args[0], args[1])))
	return nil
}

func runConfigFeeds(cmd *cobra.Command, args []string) error {
	styles := loadStyles(appConfig)
	out := cmd.OutOrStdout()

	if len(appConfig.Feeds) == 0 {
		fmt.Fprintln(out, styles.Info.Render("No feeds configured."))
		return nil
	}
	for _, f := range appConfig.Feeds {
		category := f.Category
		if category == "" {
			category = "-"
		}
		fmt.Fprintf(out, "  %s %s\n", styles.Category.Render(fmt.Sprintf("%-12s", category)), f.URL)
	}
	return nil
}

func runConfigFeedsAdd(cmd *cobra.Command, args []string) error {
	url := strings.TrimSpace(args[0])
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("feed url must start with http:// or https://, got %q", url)
	}

	added, err := config.AddFeed(ingest.Feed{URL: url, Category: strings.ToLower(feedCategory)})
	if err != nil {
		return err
	}

	styles := loadStyles(appConfig)
	if !added {
		fmt.Fprintln(cmd.OutOrStdout(), styles.Info.Render("Feed already configured."))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.Success.Render(fmt.Sprintf("✓ Feed added: %s", url)))
	return nil
}
