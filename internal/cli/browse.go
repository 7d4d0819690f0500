package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"newsdesk/internal/domain"
	"newsdesk/internal/source"
	"newsdesk/internal/tui"
)

var (
	// browse command flags
	browseFacet   string
	browseSort    string
	browseMock    bool
	browseCount   int
	browseLatency time.Duration
	browseFail    int
)

var browseCmd = &cobra.Command{
	Use:     "browse",
	Aliases: []string{"tui"},
	Short:   "Browse news interactively",
	Long: `Launch the interactive news browser.

The browser opens on the last filter and sort you used. Loading more items
happens with m/space or automatically when the cursor nears the bottom.

Keyboard shortcuts:
  ↑/k ↓/j   Move
  enter     Item details
  f / F     Next / previous filter
  a         Show all items
  s         Next sort key
  m, space  Load more
  r         Refresh
  x         Dismiss error banner
  /         Search (e.g. "budget @politics since:24h")
  b         Toggle bookmark
  esc       Back
  ?         Help
  q         Quit

Use --mock to browse generated items with simulated network latency.

Examples:
  newsdesk browse
  newsdesk browse --facet type:video --sort popular
  newsdesk browse --mock --latency 800ms --fail 1`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringVarP(&browseFacet, "facet", "f", "", "Start on this facet instead of the last one")
	browseCmd.Flags().StringVarP(&browseSort, "sort", "s", "", "Start with this sort key instead of the last one")
	browseCmd.Flags().BoolVar(&browseMock, "mock", false, "Browse generated items instead of the store")
	browseCmd.Flags().IntVar(&browseCount, "count", 200, "Number of generated items with --mock")
	browseCmd.Flags().DurationVar(&browseLatency, "latency", 600*time.Millisecond, "Simulated fetch latency with --mock")
	browseCmd.Flags().IntVar(&browseFail, "fail", 0, "Fail the first N fetches with --mock (r retries)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, err := openApp("tui")
	if err != nil {
		return err
	}
	defer a.Close()

	deps, err := browseDeps(cmd, a)
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(deps), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// browseDeps wires the browser to the store, or to a mock source.
func browseDeps(cmd *cobra.Command, a *app) (tui.Deps, error) {
	ctx := cmd.Context()

	facet, key, err := a.prefs.LastView(ctx)
	if err != nil {
		a.logger.Warn("failed to read last view", "err", err)
	}
	if cmd.Flags().Changed("facet") {
		facet = domain.NormalizeFacet(browseFacet)
	}
	if cmd.Flags().Changed("sort") {
		key, err = domain.ParseSortKey(browseSort)
		if err != nil {
			return tui.Deps{}, err
		}
	}

	deps := tui.Deps{
		Controller:    a.controllerConfig(),
		AnnounceClear: a.cfg.AnnounceClear,
		Theme:         a.theme,
		Logger:        a.logger,
		Prefs:         a.prefs,
		StartFacet:    facet,
		StartSort:     key,
	}

	if browseMock {
		mock := source.NewMock(source.MockConfig{
			Count:   browseCount,
			Seed:    uint64(time.Now().UnixNano()),
			Latency: browseLatency,
		})
		if browseFail > 0 {
			mock.FailNext(browseFail, nil)
		}
		deps.Source = mock
		return deps, nil
	}

	deps.Source = source.NewRepository(a.items, a.logger)
	deps.Items = a.items
	deps.Search = a.searchService()
	return deps, nil
}
