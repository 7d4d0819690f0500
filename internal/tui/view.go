package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"newsdesk/internal/display"
	"newsdesk/internal/domain"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	if banner := m.active().Banner(); banner != "" {
		b.WriteString(m.styles.Banner.Render(banner + "  (x to dismiss, r to retry)"))
		b.WriteString("\n")
	}
	if m.message != "" {
		b.WriteString(m.styles.Error.Render("✗ " + m.message))
		b.WriteString("\n")
	}

	switch m.viewMode {
	case detailView:
		b.WriteString(m.renderDetail())
	default:
		if len(m.visible) == 0 && !m.active().Busy() {
			b.WriteString(m.styles.Muted.Render("\n  No items match this filter.\n"))
		} else {
			b.WriteString(m.table.View())
		}
	}
	b.WriteString("\n")

	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	list := m.active()
	v := list.View(m.now())

	title := m.styles.TUITitle.Render("newsdesk")
	if m.results != nil {
		title = m.styles.TUITitle.Render("search: " + m.query)
	}

	status := fmt.Sprintf("filter: %s · sort: %s · showing %d of %d",
		list.Facet().Label(), list.Sort(), len(v.Models), v.Total)
	if v.HasMore {
		status += "+"
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", m.styles.TUISubtitle.Render(status))
}

func (m Model) renderFooter() string {
	var b strings.Builder

	controls := m.active().Controls()
	switch {
	case controls.Busy:
		b.WriteString(m.spinner.View() + " " + controls.LoadMoreLabel)
	case controls.LoadMoreEnabled:
		b.WriteString(m.styles.Info.Render("[m] " + controls.LoadMoreLabel))
	default:
		b.WriteString(m.styles.Muted.Render(controls.LoadMoreLabel))
	}

	if msg := m.region.Current(); msg != "" {
		b.WriteString("  ")
		b.WriteString(m.styles.Announcement.Render(msg))
	}
	b.WriteString("\n")

	if m.viewMode == searchView {
		b.WriteString("/ " + m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.TUIHelp.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) renderDetail() string {
	dm, ok := m.selected()
	if !ok {
		return ""
	}

	var b strings.Builder

	headline := dm.Icon + " " + dm.Title
	if m.bookmarks[dm.ID] {
		headline = "★ " + headline
	}
	b.WriteString(m.styles.Title.Render(headline))
	b.WriteString("\n")

	kind := m.styles.KindStyle(m.kindOf(dm)).Render(dm.KindBadge)
	meta := []string{kind, m.styles.Category.Render(dm.CategoryBadge), dm.Count, dm.Age}
	if dm.Rank != "" {
		meta = append([]string{dm.Rank}, meta...)
	}
	if dm.Duration != "" {
		meta = append(meta, dm.Duration)
	}
	if dm.Featured {
		meta = append(meta, m.styles.Featured.Render("featured"))
	}
	b.WriteString(strings.Join(meta, " · "))
	b.WriteString("\n\n")

	if dm.Excerpt != "" {
		b.WriteString(m.styles.Excerpt.Render(dm.Excerpt))
		b.WriteString("\n\n")
	}

	rows := [][2]string{
		{"Published", dm.Published},
		{"Author", dm.Author},
		{"Link", dm.URL},
		{"Image", dm.ImageURL},
		{"ID", dm.ID},
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n", m.styles.Info.Render(fmt.Sprintf("%-10s", r[0]+":")), r[1]))
	}

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.BorderColor)).
		Padding(1, 2).
		Width(width).
		Render(b.String())
}

// kindOf maps a projected badge back to the item kind for styling.
func (m Model) kindOf(dm display.DisplayModel) domain.Kind {
	for _, item := range m.items {
		if item.ID == dm.ID {
			return item.Kind
		}
	}
	return ""
}
