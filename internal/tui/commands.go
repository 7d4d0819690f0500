package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"newsdesk/internal/controller"
	"newsdesk/internal/domain"
	"newsdesk/internal/preferences"
	"newsdesk/internal/repository"
	"newsdesk/internal/search"
)

// loadedMsg carries a finished fetch back to the list that started it.
type loadedMsg struct {
	list   *controller.Controller
	ticket controller.Ticket
	items  []domain.Item
	err    error
}

type facetsLoadedMsg struct {
	facets []domain.Facet
}

type bookmarksLoadedMsg struct {
	ids []string
}

type bookmarkToggledMsg struct {
	id string
	on bool
}

type searchDoneMsg struct {
	result search.Result
}

type viewSavedMsg struct{}

// announceTickMsg re-renders once the announcement may have cleared.
type announceTickMsg struct{}

type errMsg struct {
	err error
}

func (e errMsg) Error() string {
	return e.err.Error()
}

// fetchCmd runs the ticket's fetch off the update loop.
func fetchCmd(list *controller.Controller, ticket controller.Ticket) tea.Cmd {
	return func() tea.Msg {
		items, err := list.Fetch(ticket)
		return loadedMsg{list: list, ticket: ticket, items: items, err: err}
	}
}

// fetchFacetsCmd builds the filter choices from the store's categories.
func fetchFacetsCmd(ctx context.Context, items repository.ItemRepository) tea.Cmd {
	return func() tea.Msg {
		facets := []domain.Facet{domain.FacetAll}
		if items == nil {
			return facetsLoadedMsg{facets: facets}
		}

		categories, err := items.Categories(ctx)
		if err != nil {
			return errMsg{err}
		}
		for _, c := range categories {
			facets = append(facets, domain.CategoryFacet(c))
		}
		for _, k := range []domain.Kind{domain.KindVideo, domain.KindPhoto} {
			facets = append(facets, domain.Facet("type:"+string(k)))
		}
		facets = append(facets, domain.Facet("window:today"))
		return facetsLoadedMsg{facets: facets}
	}
}

func fetchBookmarksCmd(ctx context.Context, prefs *preferences.Service) tea.Cmd {
	return func() tea.Msg {
		ids, err := prefs.Bookmarks(ctx)
		if err != nil {
			return errMsg{err}
		}
		return bookmarksLoadedMsg{ids: ids}
	}
}

func toggleBookmarkCmd(ctx context.Context, prefs *preferences.Service, id string) tea.Cmd {
	return func() tea.Msg {
		on, err := prefs.ToggleBookmark(ctx, id)
		if err != nil {
			return errMsg{err}
		}
		return bookmarkToggledMsg{id: id, on: on}
	}
}

func saveViewCmd(ctx context.Context, prefs *preferences.Service, facet domain.Facet, key domain.SortKey) tea.Cmd {
	return func() tea.Msg {
		if err := prefs.SaveView(ctx, facet, key); err != nil {
			return errMsg{err}
		}
		return viewSavedMsg{}
	}
}

func searchCmd(ctx context.Context, svc *search.Service, input string) tea.Cmd {
	return func() tea.Msg {
		result, err := svc.Find(ctx, input)
		if err != nil {
			return errMsg{err}
		}
		return searchDoneMsg{result: result}
	}
}

func announceTickCmd(after time.Duration) tea.Cmd {
	if after <= 0 {
		return nil
	}
	return tea.Tick(after+50*time.Millisecond, func(time.Time) tea.Msg {
		return announceTickMsg{}
	})
}
