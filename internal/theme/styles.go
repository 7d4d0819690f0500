package theme

import (
	"github.com/charmbracelet/lipgloss"

	"newsdesk/internal/domain"
)

type Styles struct {
	// cli
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	Separator lipgloss.Style

	// kind badges
	ArticleBadge  lipgloss.Style
	PhotoBadge    lipgloss.Style
	VideoBadge    lipgloss.Style
	TrendingBadge lipgloss.Style
	Featured      lipgloss.Style

	// tui
	TUITitle     lipgloss.Style
	TUISubtitle  lipgloss.Style
	TUIHelp      lipgloss.Style
	Selected     lipgloss.Style
	Muted        lipgloss.Style
	Excerpt      lipgloss.Style
	Category     lipgloss.Style
	Banner       lipgloss.Style
	Announcement lipgloss.Style
	Spinner      lipgloss.Style
	Footer       lipgloss.Style
}

func NewStyles(t *Theme) *Styles {
	return &Styles{
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Error)).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Secondary)).
			PaddingBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SubtitleText)).
			Italic(true),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Padding(0, 1),

		Separator: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Separator)),

		ArticleBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.KindArticle)),

		PhotoBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.KindPhoto)).
			Bold(true),

		VideoBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.KindVideo)).
			Bold(true),

		TrendingBadge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.KindTrending)).
			Bold(true),

		Featured: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Featured)),

		TUITitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.HeaderFg)).
			Background(lipgloss.Color(t.HeaderBg)).
			Padding(0, 1),

		TUISubtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)),

		TUIHelp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.HelpText)),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.SelectedFg)).
			Background(lipgloss.Color(t.SelectedBg)).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextMuted)),

		Excerpt: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)).
			PaddingLeft(4),

		Category: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.BannerFg)).
			Background(lipgloss.Color(t.BannerBg)).
			Bold(true).
			Padding(0, 1),

		Announcement: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Announcement)).
			Italic(true),

		Spinner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)),

		Footer: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color(t.BorderColor)),
	}
}

func (s *Styles) KindStyle(kind domain.Kind) lipgloss.Style {
	switch kind {
	case domain.KindPhoto:
		return s.PhotoBadge
	case domain.KindVideo:
		return s.VideoBadge
	case domain.KindTrending:
		return s.TrendingBadge
	default:
		return s.ArticleBadge
	}
}
