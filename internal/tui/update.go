package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"newsdesk/internal/controller"
	"newsdesk/internal/domain"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if h := msg.Height - 9; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case spinner.TickMsg:
		// keep spinning only while a load is in flight
		if !m.active().Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadedMsg:
		return m.handleLoaded(msg)

	case facetsLoadedMsg:
		m.facets = msg.facets
		return m, nil

	case bookmarksLoadedMsg:
		m.bookmarks = make(map[string]bool, len(msg.ids))
		for _, id := range msg.ids {
			m.bookmarks[id] = true
		}
		m.refreshRows()
		return m, nil

	case bookmarkToggledMsg:
		if msg.on {
			m.bookmarks[msg.id] = true
			m.region.Announce("Bookmarked")
		} else {
			delete(m.bookmarks, msg.id)
			m.region.Announce("Bookmark removed")
		}
		m.refreshRows()
		return m, announceTickCmd(m.deps.AnnounceClear)

	case searchDoneMsg:
		if m.results != nil {
			m.results.Close()
		}
		key := msg.result.Search.Sort
		if key == "" {
			key = domain.DefaultSortKey
		}
		m.results = m.newList(msg.result.Source(m.now), domain.FacetAll, key)
		m.query = msg.result.Input
		m.viewMode = listView
		m.table.SetCursor(0)
		return m, m.begin(m.results, controller.Initial())

	case viewSavedMsg, announceTickMsg:
		return m, nil

	case errMsg:
		m.message = msg.Error()
		m.logger.Error("operation failed", "err", msg.err)
		return m, nil

	case tea.KeyMsg:
		switch m.viewMode {
		case searchView:
			return m.handleSearchKeys(msg)
		case detailView:
			return m.handleDetailKeys(msg)
		default:
			return m.handleListKeys(msg)
		}
	}

	return m, nil
}

// handleLoaded hands a fetch result to the list that asked for it. Stale
// results change nothing.
func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	out := msg.list.Complete(msg.ticket, msg.items, msg.err)
	if out.Stale {
		return m, nil
	}

	if msg.list != m.active() {
		return m, nil
	}

	if !msg.ticket.Trigger.Kind.Appends() && out.Err == nil {
		m.table.SetCursor(0)
	}
	m.refreshRows()

	cmds := []tea.Cmd{announceTickCmd(m.deps.AnnounceClear)}

	kind := msg.ticket.Trigger.Kind
	if msg.list == m.main && out.Err == nil && m.deps.Prefs != nil && (kind == controller.TriggerFacet || kind == controller.TriggerSort) {
		cmds = append(cmds, saveViewCmd(m.ctx, m.deps.Prefs, msg.ticket.Facet, msg.ticket.Sort))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.active()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.results != nil {
			m.results.Close()
			m.results = nil
			m.query = ""
			m.table.SetCursor(0)
			m.refreshRows()
		}
		m.message = ""
		return m, nil

	case key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, tea.Batch(cmd, m.maybeNearBottom())

	case key.Matches(msg, m.keys.Up):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.Top):
		m.table.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		if _, ok := m.selected(); ok {
			m.viewMode = detailView
		}
		return m, nil

	case key.Matches(msg, m.keys.NextFacet):
		return m, m.begin(list, controller.ChangeFacet(m.stepFacet(1)))

	case key.Matches(msg, m.keys.PrevFacet):
		return m, m.begin(list, controller.ChangeFacet(m.stepFacet(-1)))

	case key.Matches(msg, m.keys.AllFacet):
		return m, m.begin(list, controller.ChangeFacet(domain.FacetAll))

	case key.Matches(msg, m.keys.Sort):
		return m, m.begin(list, controller.ChangeSort(list.Sort().Next()))

	case key.Matches(msg, m.keys.LoadMore):
		return m, m.begin(list, controller.LoadMore())

	case key.Matches(msg, m.keys.Refresh):
		return m, tea.Batch(m.begin(list, controller.Refresh()), fetchFacetsCmd(m.ctx, m.deps.Items))

	case key.Matches(msg, m.keys.Dismiss):
		list.DismissBanner()
		m.message = ""
		return m, nil

	case key.Matches(msg, m.keys.Search):
		if m.deps.Search == nil {
			return m, nil
		}
		m.viewMode = searchView
		m.input.SetValue(m.query)
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Bookmark):
		dm, ok := m.selected()
		if !ok || m.deps.Prefs == nil {
			return m, nil
		}
		return m, toggleBookmarkCmd(m.ctx, m.deps.Prefs, dm.ID)
	}

	return m, nil
}

// maybeNearBottom loads the next page when the cursor gets close to the
// end of the visible rows.
func (m Model) maybeNearBottom() tea.Cmd {
	list := m.active()
	if !list.NearBottom(m.table.Cursor(), len(m.visible)) {
		return nil
	}
	if !list.Controls().LoadMoreEnabled {
		return nil
	}
	return m.begin(list, controller.NearBottom())
}

// stepFacet returns the facet delta steps away from the active one.
func (m Model) stepFacet(delta int) domain.Facet {
	n := len(m.facets)
	if n == 0 {
		return domain.FacetAll
	}
	i := m.facetIndex()
	if i < 0 {
		i = 0
		if delta > 0 {
			delta--
		}
	}
	return m.facets[((i+delta)%n+n)%n]
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.viewMode = listView
		return m, nil

	case tea.KeyEnter:
		input := strings.TrimSpace(m.input.Value())
		m.input.Blur()
		m.viewMode = listView
		if input == "" {
			return m, nil
		}
		return m, searchCmd(m.ctx, m.deps.Search, input)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Enter):
		m.viewMode = listView
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.table.Cursor() < len(m.visible)-1 {
			m.table.MoveDown(1)
		}
		return m, m.maybeNearBottom()

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Bookmark):
		dm, ok := m.selected()
		if !ok || m.deps.Prefs == nil {
			return m, nil
		}
		return m, toggleBookmarkCmd(m.ctx, m.deps.Prefs, dm.ID)
	}

	return m, nil
}
