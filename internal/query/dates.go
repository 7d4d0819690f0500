package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	relativeLabelRegex = regexp.MustCompile(`^(\d+|an?|one)\s*(s|sec|secs|second|seconds|m|min|mins|minute|minutes|h|hr|hrs|hour|hours|d|day|days|w|wk|week|weeks|mo|month|months|y|yr|year|years)\s+ago$`)
	offsetRegex        = regexp.MustCompile(`^([+-]?)(\d+)([smhdwMy])$`)
)

// ParseTimestamp resolves the publish time of an item. It accepts absolute
// dates, keywords ("today", "yesterday", "just now"), the relative labels
// used on cards ("2 hours ago", "a day ago") and offsets ("-3h", "-2d").
// Relative forms are resolved against now.
func ParseTimestamp(value string, now time.Time) (time.Time, error) {
	value = strings.TrimSpace(value)
	lower := strings.ToLower(value)

	if lower == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, ok := parseRelativeKeyword(lower, now); ok {
		return t, nil
	}

	if t, err := parseRelativeLabel(lower, now); err == nil {
		return t, nil
	}

	if t, err := parseRelativeOffset(value, now); err == nil {
		return t, nil
	}

	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		time.RFC1123Z,
		time.RFC1123,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02",
		"2006/01/02",
		"January 2, 2006",
		"Jan 2, 2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse timestamp: %s (expected date, relative label, or offset)", value)
}

func parseRelativeKeyword(value string, now time.Time) (time.Time, bool) {
	switch value {
	case "now", "just now":
		return now, true
	case "today":
		return startOfDay(now), true
	case "yesterday":
		return startOfDay(now.AddDate(0, 0, -1)), true
	default:
		return time.Time{}, false
	}
}

func parseRelativeLabel(value string, now time.Time) (time.Time, error) {
	matches := relativeLabelRegex.FindStringSubmatch(value)
	if matches == nil {
		return time.Time{}, fmt.Errorf("invalid relative label")
	}

	num := 1
	if n, err := strconv.Atoi(matches[1]); err == nil {
		num = n
	}

	switch unit := matches[2]; {
	case unit == "s" || strings.HasPrefix(unit, "sec"):
		return now.Add(-time.Duration(num) * time.Second), nil
	case unit == "m" || strings.HasPrefix(unit, "min"):
		return now.Add(-time.Duration(num) * time.Minute), nil
	case unit == "h" || strings.HasPrefix(unit, "h"):
		return now.Add(-time.Duration(num) * time.Hour), nil
	case unit == "d" || strings.HasPrefix(unit, "day"):
		return now.AddDate(0, 0, -num), nil
	case unit == "w" || strings.HasPrefix(unit, "w"):
		return now.AddDate(0, 0, -7*num), nil
	case strings.HasPrefix(unit, "mo"):
		return now.AddDate(0, -num, 0), nil
	default:
		return now.AddDate(-num, 0, 0), nil
	}
}

func parseRelativeOffset(value string, now time.Time) (time.Time, error) {
	matches := offsetRegex.FindStringSubmatch(value)
	if matches == nil {
		return time.Time{}, fmt.Errorf("invalid offset format")
	}

	num, err := strconv.Atoi(matches[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number in offset: %s", matches[2])
	}

	if matches[1] == "-" {
		num = -num
	}

	switch matches[3] {
	case "s":
		return now.Add(time.Duration(num) * time.Second), nil
	case "m":
		return now.Add(time.Duration(num) * time.Minute), nil
	case "h":
		return now.Add(time.Duration(num) * time.Hour), nil
	case "d":
		return now.AddDate(0, 0, num), nil
	case "w":
		return now.AddDate(0, 0, num*7), nil
	case "M":
		return now.AddDate(0, num, 0), nil
	case "y":
		return now.AddDate(num, 0, 0), nil
	default:
		return time.Time{}, fmt.Errorf("unknown unit: %s", matches[3])
	}
}

// ParseWindow returns the start of a time-window facet value ending at
// now: "today", "hour", "week", "month", "year", or a span like "24h",
// "7d" or "2w".
func ParseWindow(value string, now time.Time) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "today":
		return startOfDay(now), nil
	case "hour":
		return now.Add(-time.Hour), nil
	case "day":
		return now.AddDate(0, 0, -1), nil
	case "week":
		return now.AddDate(0, 0, -7), nil
	case "month":
		return now.AddDate(0, -1, 0), nil
	case "year":
		return now.AddDate(-1, 0, 0), nil
	}

	span, err := ParseDuration(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid window %q: %w", value, err)
	}
	if span <= 0 {
		return time.Time{}, fmt.Errorf("invalid window %q: span must be positive", value)
	}
	return now.Add(-span), nil
}

// ParseDuration extends time.ParseDuration with days (d) and weeks (w).
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	for suffix, unit := range map[string]time.Duration{"d": 24 * time.Hour, "w": 7 * 24 * time.Hour} {
		if !strings.HasSuffix(s, suffix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(s, suffix))
		if err != nil {
			return 0, fmt.Errorf("invalid duration: %s", s)
		}
		return time.Duration(n) * unit, nil
	}

	return 0, fmt.Errorf("invalid duration: %s", s)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
