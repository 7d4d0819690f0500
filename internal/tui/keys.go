package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Top   key.Binding
	Enter key.Binding
	Back  key.Binding

	NextFacet key.Binding
	PrevFacet key.Binding
	AllFacet  key.Binding
	Sort      key.Binding

	LoadMore key.Binding
	Refresh  key.Binding
	Dismiss  key.Binding

	Search   key.Binding
	Bookmark key.Binding

	Quit key.Binding
	Help key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),

		NextFacet: key.NewBinding(
			key.WithKeys("f", "tab"),
			key.WithHelp("f/tab", "next filter"),
		),
		PrevFacet: key.NewBinding(
			key.WithKeys("F", "shift+tab"),
			key.WithHelp("F", "previous filter"),
		),
		AllFacet: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "show all"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle sort"),
		),

		LoadMore: key.NewBinding(
			key.WithKeys("m", " "),
			key.WithHelp("m/space", "load more"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "dismiss error"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmark"),
		),

		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextFacet, k.Sort, k.LoadMore, k.Search, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Enter, k.Back},
		{k.NextFacet, k.PrevFacet, k.AllFacet, k.Sort},
		{k.LoadMore, k.Refresh, k.Dismiss},
		{k.Search, k.Bookmark, k.Quit, k.Help},
	}
}
