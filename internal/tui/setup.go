package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"newsdesk/internal/config"
	"newsdesk/internal/display"
	"newsdesk/internal/domain"
	"newsdesk/internal/theme"
)

// SetupModel picks a theme, previewing it on a few sample news items.
type SetupModel struct {
	themes        []string
	selectedIndex int
	currentTheme  *theme.Theme
	save          func(name string) error
	err           error
	width         int
	height        int
	quitting      bool
	confirmed     bool
}

func NewSetupModel() SetupModel {
	return newSetupModel(config.UpdateTheme)
}

func newSetupModel(save func(string) error) SetupModel {
	themes := theme.ListThemes()
	currentTheme, _ := theme.GetTheme(themes[0])

	return SetupModel{
		themes:       themes,
		currentTheme: currentTheme,
		save:         save,
		width:        100,
		height:       30,
	}
}

// Selected is the highlighted theme name.
func (m SetupModel) Selected() string {
	return m.themes[m.selectedIndex]
}

// Confirmed reports whether the user saved a choice.
func (m SetupModel) Confirmed() bool {
	return m.confirmed
}

// Err is the error from saving the choice, if any.
func (m SetupModel) Err() error {
	return m.err
}

func (m SetupModel) Init() tea.Cmd {
	return nil
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"))):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.selectedIndex > 0 {
				m.selectedIndex--
				m.currentTheme, _ = theme.GetTheme(m.themes[m.selectedIndex])
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.selectedIndex < len(m.themes)-1 {
				m.selectedIndex++
				m.currentTheme, _ = theme.GetTheme(m.themes[m.selectedIndex])
			}
			return m, nil

		case key.Matches(msg, key.NewBinding(key.WithKeys("enter"))):
			if m.save != nil {
				if err := m.save(m.Selected()); err != nil {
					m.err = fmt.Errorf("failed to save theme: %w", err)
				}
			}
			m.confirmed = m.err == nil
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m SetupModel) View() string {
	if m.quitting {
		if m.err != nil {
			return m.err.Error() + "\n"
		}
		if m.confirmed {
			return ""
		}
		return "Setup cancelled.\n"
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	styles := theme.NewStyles(m.currentTheme)

	leftWidth := max(m.width/3, 30)
	rightWidth := max(m.width-leftWidth-4, 30)

	box := lipgloss.NewStyle().
		Height(m.height - 4).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.currentTheme.BorderColor)).
		Padding(1)

	left := box.Width(leftWidth).Render(m.renderThemeList(leftWidth))
	right := box.Width(rightWidth).Render(m.renderPreview(styles, rightWidth))
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := styles.TUITitle.Render("newsdesk theme")
	subtitle := styles.TUISubtitle.Render("Select a theme for the news browser")
	help := styles.TUIHelp.Render("↑/k: up • ↓/j: down • enter: confirm • q: quit")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, main, help)
}

func (m SetupModel) renderThemeList(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Available Themes"))
	b.WriteString("\n\n")

	for i, name := range m.themes {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.currentTheme.TextSecondary)).
			Width(width - 4)
		prefix := "  "
		if i == m.selectedIndex {
			prefix = "▶ "
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.SelectedFg)).
				Background(lipgloss.Color(m.currentTheme.SelectedBg)).
				Bold(true).
				Width(width - 4)
		}
		b.WriteString(style.Render(prefix + name))
		b.WriteString("\n")
	}

	return b.String()
}

func (m SetupModel) renderPreview(styles *theme.Styles, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.currentTheme.Primary)).
		Render("Preview"))
	b.WriteString("\n\n")

	now := time.Now()
	samples := sampleItems(now)
	sep := strings.Repeat("─", max(width-4, 1))

	for i, dm := range display.ProjectAll(samples, now) {
		if i > 0 {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.currentTheme.Separator)).
				Render(sep))
			b.WriteString("\n")
		}

		title := dm.Icon + " " + dm.Title
		if dm.Featured {
			title = styles.Featured.Render("⭐") + " " + title
		}
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.currentTheme.TextPrimary)).
			Bold(true).
			Render(title))
		b.WriteString("\n")

		b.WriteString(fmt.Sprintf("  %s %s · %s · %s\n",
			styles.KindStyle(samples[i].Kind).Render(dm.KindBadge),
			styles.Category.Render(dm.CategoryBadge),
			dm.Count,
			dm.Age,
		))
		if dm.Excerpt != "" {
			b.WriteString("  " + styles.Excerpt.Render(dm.Excerpt) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Banner.Render("Couldn't load more items. Try again."))
	b.WriteString("\n")
	b.WriteString(styles.Announcement.Render("Loaded 3 items"))

	return b.String()
}

func sampleItems(now time.Time) []domain.Item {
	return []domain.Item{
		{
			ID:          "preview-1",
			Kind:        domain.KindArticle,
			Category:    "politics",
			Title:       "Budget vote set for Thursday",
			Excerpt:     "Lawmakers return from recess with two days to agree on spending.",
			PublishedAt: now.Add(-2 * time.Hour),
			Popularity:  12_480,
			Featured:    true,
		},
		{
			ID:          "preview-2",
			Kind:        domain.KindVideo,
			Category:    "sports",
			Title:       "Extra-time winner sends city through",
			Duration:    "2:41",
			PublishedAt: now.Add(-35 * time.Minute),
			Popularity:  3_204,
		},
		{
			ID:          "preview-3",
			Kind:        domain.KindTrending,
			Category:    "tech",
			Title:       "Chip shortage eases as new plant opens",
			PublishedAt: now.Add(-26 * time.Hour),
			Popularity:  58_900,
		},
	}
}
