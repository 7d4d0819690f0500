package query

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"newsdesk/internal/domain"
	"newsdesk/internal/fuzzy"
)

// minimum score for an @~ category mention to resolve
const categoryMatchThreshold = 50

type ConverterContext struct {
	// Categories known to the store, used to resolve @~ mentions.
	Categories []string
	Now        time.Time
}

// Search is a parsed search line: free text plus structured constraints.
type Search struct {
	Text     string
	Category string
	Tags     []string
	Kind     domain.Kind
	Since    *time.Time
	Until    *time.Time
	Sort     domain.SortKey
	Featured *bool

	ExcludeCategories []string
	ExcludeTags       []string
	ExcludeKinds      []domain.Kind
}

// Parse parses input and converts it in one step.
func Parse(input string, cc ConverterContext) (Search, error) {
	parsed, err := ParseQuery(input)
	if err != nil {
		return Search{}, err
	}
	return Convert(parsed, cc)
}

func Convert(parsed *ParsedQuery, cc ConverterContext) (Search, error) {
	if cc.Now.IsZero() {
		cc.Now = time.Now()
	}

	search := Search{Text: parsed.Text()}
	var errs []error

	for _, qf := range parsed.Filters {
		if err := applyFilter(&search, qf, cc); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return search, fmt.Errorf("invalid query: %w", errors.Join(errs...))
	}
	return search, nil
}

func applyFilter(s *Search, qf QueryFilter, cc ConverterContext) error {
	switch qf.Field {
	case FieldText:
		return nil
	case "category":
		return applyCategoryFilter(s, qf, cc)
	case "tag":
		return applyTagFilter(s, qf)
	case "kind":
		return applyKindFilter(s, qf)
	case "since", "until":
		return applyTimeFilter(s, qf, cc.Now)
	case "sort":
		return applySortFilter(s, qf)
	case "featured":
		return applyFeaturedFilter(s, qf)
	default:
		return fmt.Errorf("unknown filter field: %s", qf.Field)
	}
}

func applyCategoryFilter(s *Search, qf QueryFilter, cc ConverterContext) error {
	category := strings.ToLower(strings.TrimSpace(qf.Value))
	if category == "" {
		return fmt.Errorf("category cannot be empty")
	}

	if qf.IsFuzzy {
		matches := fuzzy.MatchMany(category, cc.Categories, categoryMatchThreshold)
		if len(matches) == 0 {
			return fmt.Errorf("no category matches %q", qf.Value)
		}
		category = strings.ToLower(matches[0].Text)
	}

	if qf.IsNot {
		s.ExcludeCategories = append(s.ExcludeCategories, category)
		return nil
	}
	if s.Category != "" && s.Category != category {
		return fmt.Errorf("only one category can be selected, got %q and %q", s.Category, category)
	}
	s.Category = category
	return nil
}

func applyTagFilter(s *Search, qf QueryFilter) error {
	tag := strings.ToLower(strings.TrimSpace(qf.Value))
	if tag == "" {
		return fmt.Errorf("tag value cannot be empty")
	}

	if qf.IsNot {
		s.ExcludeTags = append(s.ExcludeTags, tag)
	} else {
		s.Tags = append(s.Tags, tag)
	}
	return nil
}

func applyKindFilter(s *Search, qf QueryFilter) error {
	kind := domain.Kind(strings.ToLower(strings.TrimSpace(qf.Value)))
	if !domain.IsValidKind(kind) {
		return fmt.Errorf("invalid kind %q", qf.Value)
	}

	if qf.IsNot {
		s.ExcludeKinds = append(s.ExcludeKinds, kind)
		return nil
	}
	s.Kind = kind
	return nil
}

// since accepts a window ("24h", "week") or a timestamp; until only a
// timestamp
func applyTimeFilter(s *Search, qf QueryFilter, now time.Time) error {
	if qf.IsNot {
		return fmt.Errorf("negated %s filters are not supported", qf.Field)
	}

	if qf.Field == "since" {
		if t, err := ParseWindow(qf.Value, now); err == nil {
			s.Since = &t
			return nil
		}
	}

	t, err := ParseTimestamp(qf.Value, now)
	if err != nil {
		return fmt.Errorf("invalid %s value '%s': %w", qf.Field, qf.Value, err)
	}
	if qf.Field == "since" {
		s.Since = &t
	} else {
		s.Until = &t
	}
	return nil
}

func applySortFilter(s *Search, qf QueryFilter) error {
	if qf.IsNot {
		return fmt.Errorf("sort cannot be negated")
	}
	key, err := domain.ParseSortKey(qf.Value)
	if err != nil {
		return err
	}
	s.Sort = key
	return nil
}

func applyFeaturedFilter(s *Search, qf QueryFilter) error {
	var featured bool
	switch strings.ToLower(qf.Value) {
	case "yes", "true", "1", "only":
		featured = true
	case "no", "false", "0":
		featured = false
	default:
		return fmt.Errorf("invalid featured value %q (use yes or no)", qf.Value)
	}
	if qf.IsNot {
		featured = !featured
	}
	s.Featured = &featured
	return nil
}

// Facet is the list facet covering the search's main constraint, so the
// store can narrow the candidates before Matches runs.
func (s Search) Facet() domain.Facet {
	switch {
	case s.Category != "":
		return domain.CategoryFacet(s.Category)
	case len(s.Tags) > 0:
		return domain.Facet("tag:" + s.Tags[0])
	case s.Kind != "":
		return domain.Facet("type:" + string(s.Kind))
	default:
		return domain.FacetAll
	}
}

// Matches checks every structured constraint. Free text is left to the
// fuzzy matcher.
func (s Search) Matches(item domain.Item) bool {
	if s.Category != "" && !strings.EqualFold(item.Category, s.Category) {
		return false
	}
	for _, tag := range s.Tags {
		if !item.HasTag(tag) {
			return false
		}
	}
	if s.Kind != "" && item.Kind != s.Kind {
		return false
	}
	if s.Since != nil && item.PublishedAt.Before(*s.Since) {
		return false
	}
	if s.Until != nil && item.PublishedAt.After(*s.Until) {
		return false
	}
	if s.Featured != nil && item.Featured != *s.Featured {
		return false
	}

	if slices.ContainsFunc(s.ExcludeCategories, func(c string) bool { return strings.EqualFold(item.Category, c) }) {
		return false
	}
	if slices.ContainsFunc(s.ExcludeTags, item.HasTag) {
		return false
	}
	return !slices.Contains(s.ExcludeKinds, item.Kind)
}

// IsEmpty reports whether the search has neither text nor constraints.
func (s Search) IsEmpty() bool {
	return s.Text == "" && s.Category == "" && len(s.Tags) == 0 && s.Kind == "" &&
		s.Since == nil && s.Until == nil && s.Featured == nil && s.Sort == "" &&
		len(s.ExcludeCategories) == 0 && len(s.ExcludeTags) == 0 && len(s.ExcludeKinds) == 0
}
