// Package fuzzy scores how well a typed query matches headline text. It
// powers client side search over loaded items.
package fuzzy

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

type MatchResult struct {
	Text  string
	Score int
	Index int
}

// Match scores pattern against text from 0 (no match) to 100 (equal,
// ignoring case). Every pattern rune must appear in text in order.
func Match(pattern, text string) int {
	if pattern == "" || text == "" {
		return 0
	}

	p := []rune(strings.ToLower(pattern))
	t := []rune(strings.ToLower(text))

	if string(p) == string(t) {
		return 100
	}
	if len(p) > len(t) {
		return 0
	}

	// substring hits beat scattered ones
	if i := strings.Index(string(t), string(p)); i >= 0 {
		start := len([]rune(string(t)[:i]))
		positions := make([]int, len(p))
		for k := range p {
			positions[k] = start + k
		}
		return clamp(score(p, t, positions))
	}

	positions := matchPositions(p, t)
	if positions == nil {
		return 0
	}
	return clamp(score(p, t, positions))
}

// MatchMany scores every text and keeps those at or above threshold, best
// first. Equal scores keep input order.
func MatchMany(pattern string, texts []string, threshold int) []MatchResult {
	results := make([]MatchResult, 0, len(texts))

	for i, text := range texts {
		if s := Match(pattern, text); s > 0 && s >= threshold {
			results = append(results, MatchResult{Text: text, Score: s, Index: i})
		}
	}

	slices.SortStableFunc(results, func(a, b MatchResult) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return results
}

func matchPositions(p, t []rune) []int {
	positions := make([]int, 0, len(p))
	pi := 0
	for ti := 0; pi < len(p) && ti < len(t); ti++ {
		if p[pi] == t[ti] {
			positions = append(positions, ti)
			pi++
		}
	}
	if pi < len(p) {
		return nil
	}
	return positions
}

func score(p, t []rune, positions []int) int {
	patternLen := len(p)
	textLen := len(t)

	s := 50.0
	s += float64(patternLen) / float64(textLen) * 25.0

	if positions[0] == 0 {
		s += 12.0
	}

	run := longestRun(positions)
	bonus := float64(run) / float64(patternLen) * 20.0
	switch {
	case patternLen < 3:
		bonus *= 0.6
	case patternLen < 5:
		bonus *= 0.8
	}
	s += bonus

	if scattered := patternLen - run; scattered > 0 {
		s -= float64(scattered) * 4.0
		if run == 1 {
			s -= 10.0
		}
	}

	// earlier is better
	var sum int
	for _, pos := range positions {
		sum += pos
	}
	avg := float64(sum) / float64(len(positions))
	s += (1.0 - avg/float64(textLen)) * 10.0

	if wordStarts(t, positions) {
		s += 8.0
	}

	// long headlines dilute short queries less than short labels do
	extra := textLen - patternLen
	rate := 0.25
	if patternLen < 3 {
		rate = 0.5
	}
	s -= float64(extra) * rate

	return int(s)
}

func longestRun(positions []int) int {
	best, run := 1, 1
	for i := 1; i < len(positions); i++ {
		if positions[i] == positions[i-1]+1 {
			run++
			best = max(best, run)
		} else {
			run = 1
		}
	}
	return best
}

// wordStarts reports whether the first matched rune opens a word.
func wordStarts(t []rune, positions []int) bool {
	first := positions[0]
	return first == 0 || !(unicode.IsLetter(t[first-1]) || unicode.IsDigit(t[first-1]))
}

func clamp(s int) int {
	return max(0, min(100, s))
}
