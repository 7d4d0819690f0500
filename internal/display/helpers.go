package display

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"newsdesk/internal/domain"
)

func GetKindIcon(kind domain.Kind) string {
	switch kind {
	case domain.KindArticle:
		return "📰"
	case domain.KindPhoto:
		return "📷"
	case domain.KindVideo:
		return "▶"
	case domain.KindTrending:
		return "🔥"
	default:
		return "•"
	}
}

func GetKindBadge(kind domain.Kind) string {
	switch kind {
	case domain.KindPhoto:
		return "PHOTO"
	case domain.KindVideo:
		return "VIDEO"
	case domain.KindTrending:
		return "TRENDING"
	default:
		return "ARTICLE"
	}
}

// FormatCount renders a view count: "1,234 views" below ten thousand and
// "12.3K views" above.
func FormatCount(n int64, noun string) string {
	if n == 1 {
		return "1 " + strings.TrimSuffix(noun, "s")
	}
	if n < 10_000 {
		return fmt.Sprintf("%s %s", humanize.Comma(n), noun)
	}
	value, prefix := humanize.ComputeSI(float64(n))
	return fmt.Sprintf("%s%s %s", humanize.FtoaWithDigits(value, 1), strings.ToUpper(prefix), noun)
}

// FormatAge renders the time since publication relative to now.
func FormatAge(published, now time.Time) string {
	if published.IsZero() {
		return "-"
	}
	if d := now.Sub(published); d >= 0 && d < time.Minute {
		return "just now"
	}
	return humanize.RelTime(published, now, "ago", "from now")
}

// Truncate shortens s to at most limit runes, ending in an ellipsis.
func Truncate(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:limit-1]), " ") + "…"
}
