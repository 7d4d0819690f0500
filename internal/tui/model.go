package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"newsdesk/internal/announce"
	"newsdesk/internal/controller"
	"newsdesk/internal/display"
	"newsdesk/internal/domain"
	"newsdesk/internal/logging"
	"newsdesk/internal/preferences"
	"newsdesk/internal/repository"
	"newsdesk/internal/search"
	"newsdesk/internal/source"
	"newsdesk/internal/theme"
)

type viewMode int

const (
	listView viewMode = iota
	detailView
	searchView
)

// Deps wires the browser to its data. Items, Prefs and Search are
// optional; the matching features are hidden without them.
type Deps struct {
	Source        source.ItemSource
	Items         repository.ItemRepository
	Prefs         *preferences.Service
	Search        *search.Service
	Controller    controller.Config
	AnnounceClear time.Duration
	Theme         *theme.Theme
	Logger        *log.Logger
	StartFacet    domain.Facet
	StartSort     domain.SortKey
}

type Model struct {
	deps Deps

	// main is the browsed list; results is the search result list while
	// one is open. Each has its own controller.
	main    *controller.Controller
	results *controller.Controller
	query   string
	region  *announce.Region

	facets    []domain.Facet
	bookmarks map[string]bool
	visible   []display.DisplayModel
	items     []domain.Item

	table   table.Model
	spinner spinner.Model
	help    help.Model
	input   textinput.Model
	keys    keyMap

	viewMode viewMode
	showHelp bool
	message  string
	width    int
	height   int

	theme  *theme.Theme
	styles *theme.Styles
	logger *log.Logger
	now    func() time.Time
	ctx    context.Context
}

func NewModel(deps Deps) Model {
	if deps.Theme == nil {
		deps.Theme = theme.GetDefaultTheme()
	}
	if deps.Logger == nil {
		deps.Logger = logging.WithPrefix("tui")
	}
	now := deps.Controller.Now
	if now == nil {
		now = time.Now
	}
	styles := theme.NewStyles(deps.Theme)

	region := announce.NewRegion(deps.AnnounceClear, announce.WithLogger(deps.Logger))

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Kind", Width: 9},
		{Title: "Title", Width: 50},
		{Title: "Category", Width: 12},
		{Title: "Count", Width: 14},
		{Title: "Age", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(deps.Theme.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(deps.Theme.SelectedFg)).
		Background(lipgloss.Color(deps.Theme.SelectedBg)).
		Bold(true)
	t.SetStyles(s)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	si := textinput.New()
	si.Placeholder = "budget @politics #election since:24h sort:popular"
	si.CharLimit = 200
	si.Width = 60

	m := Model{
		deps:      deps,
		region:    region,
		facets:    []domain.Facet{domain.FacetAll},
		bookmarks: make(map[string]bool),
		table:     t,
		spinner:   sp,
		help:      help.New(),
		input:     si,
		keys:      defaultKeyMap(),
		viewMode:  listView,
		theme:     deps.Theme,
		styles:    styles,
		logger:    deps.Logger,
		now:       now,
		ctx:       context.Background(),
	}
	m.main = m.newList(deps.Source, deps.StartFacet, deps.StartSort)
	return m
}

func (m Model) newList(src source.ItemSource, facet domain.Facet, key domain.SortKey) *controller.Controller {
	return controller.New(src, m.deps.Controller,
		controller.WithAnnouncer(m.region),
		controller.WithLogger(m.logger),
		controller.WithStart(facet, key),
	)
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.begin(m.main, controller.Initial())}
	cmds = append(cmds, fetchFacetsCmd(m.ctx, m.deps.Items))
	if m.deps.Prefs != nil {
		cmds = append(cmds, fetchBookmarksCmd(m.ctx, m.deps.Prefs))
	}
	return tea.Batch(cmds...)
}

// active is the list keys and rendering apply to.
func (m Model) active() *controller.Controller {
	if m.results != nil {
		return m.results
	}
	return m.main
}

// begin starts a load on list. Rejected triggers (busy or nothing more to
// load) are dropped quietly; the controls already show why.
func (m Model) begin(list *controller.Controller, trigger controller.Trigger) tea.Cmd {
	ticket, err := list.Begin(m.ctx, trigger)
	if err != nil {
		m.logger.Debug("trigger dropped", "trigger", trigger.Kind, "err", err)
		return nil
	}
	return tea.Batch(fetchCmd(list, ticket), m.spinner.Tick)
}

// refreshRows rebuilds the table from the active list's current view.
func (m *Model) refreshRows() {
	v := m.active().View(m.now())
	m.visible = v.Models
	m.items = v.Items

	rows := make([]table.Row, 0, len(v.Models))
	for _, dm := range v.Models {
		title := dm.Title
		if m.bookmarks[dm.ID] {
			title = "★ " + title
		}
		if dm.Featured {
			title = "⭐ " + title
		}
		position := dm.Rank
		if position == "" {
			position = strconv.Itoa(dm.Position)
		}
		rows = append(rows, table.Row{
			position,
			dm.Icon + " " + dm.KindBadge,
			title,
			dm.CategoryBadge,
			dm.Count,
			dm.Age,
		})
	}
	m.table.SetRows(rows)

	if c := m.table.Cursor(); c >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}
}

func (m Model) selected() (display.DisplayModel, bool) {
	c := m.table.Cursor()
	if c < 0 || c >= len(m.visible) {
		return display.DisplayModel{}, false
	}
	return m.visible[c], true
}

// facetIndex is the position of the active facet among the choices, or
// -1 when it is not one of them.
func (m Model) facetIndex() int {
	current := m.active().Facet()
	for i, f := range m.facets {
		if f == current {
			return i
		}
	}
	return -1
}

func (m Model) close() {
	m.main.Close()
	if m.results != nil {
		m.results.Close()
	}
	m.region.Clear()
}
