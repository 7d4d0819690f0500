package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"newsdesk/internal/config"
	"newsdesk/internal/logging"
)

var (
	// global flags
	dbPath    string
	logLevel  string
	logStderr bool

	// loaded by the root pre-run
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "newsdesk",
	Short: "newsdesk - browse, filter and sort news from the terminal",
	Long: `newsdesk keeps a local store of news items (articles, photos, videos and
trending stories) and lets you page through them by category, tag, kind or
time window, sorted the way you like.

Items come from RSS/Atom feeds, saved HTML pages or generated demo data.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Close()
	},
	Run: func(cmd *cobra.Command, args []string) {
		displayWelcome(cmd.OutOrStdout())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the item database (overrides db_path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log_level)")
	rootCmd.PersistentFlags().BoolVar(&logStderr, "log-stderr", false, "Write logs to stderr instead of the log file")
}

// setup loads config, applies flag overrides and starts logging.
func setup(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}

	if logStderr {
		logging.SetOutput(cmd.ErrOrStderr(), logging.ParseLevel(level))
	} else if err := logging.Init(cfg.LogDir, level); err != nil {
		return err
	}

	appConfig = cfg
	logging.Debug("command", "name", cmd.CommandPath(), "db", cfg.DBPath)
	return nil
}

func displayWelcome(w io.Writer) {
	styles := loadStyles(appConfig)

	title := styles.Title.Render(`
		------------------------------------------------------

		                N E W S D E S K

		------------------------------------------------------
	`)
	subtitle := styles.Subtitle.Render("All the news that fits your terminal")

	fmt.Fprintln(w)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, subtitle)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'newsdesk seed' for demo data or 'newsdesk import <feed-url>' to get started.")
	fmt.Fprintln(w, "Run 'newsdesk --help' to see available commands.")
	fmt.Fprintln(w)
}
