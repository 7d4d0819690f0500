package domain

import (
	"fmt"
	"strings"
)

// Facet is the active filter token of a list. It is "all", a bare
// category or tag ("politics"), or a qualified token such as
// "category:tech", "tag:election", "type:video" or "window:week".
type Facet string

const FacetAll Facet = "all"

// what a facet token selects on
type FacetKind int

const (
	FacetKindAll FacetKind = iota
	FacetKindTopic
	FacetKindCategory
	FacetKindTag
	FacetKindType
	FacetKindWindow
	FacetKindUnknown
)

// Parts splits the token into its kind and lower-cased value. An empty
// token is treated as "all".
func (f Facet) Parts() (FacetKind, string) {
	token := strings.ToLower(strings.TrimSpace(string(f)))
	if token == "" || token == string(FacetAll) {
		return FacetKindAll, ""
	}

	qualifier, value, ok := strings.Cut(token, ":")
	if !ok {
		return FacetKindTopic, token
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return FacetKindUnknown, ""
	}

	switch qualifier {
	case "category", "cat":
		return FacetKindCategory, value
	case "tag":
		return FacetKindTag, value
	case "type", "kind":
		return FacetKindType, value
	case "window", "time", "since":
		return FacetKindWindow, value
	default:
		return FacetKindUnknown, value
	}
}

func (f Facet) IsAll() bool {
	kind, _ := f.Parts()
	return kind == FacetKindAll
}

// Label is the human readable form used in announcements.
func (f Facet) Label() string {
	kind, value := f.Parts()
	switch kind {
	case FacetKindAll:
		return "all"
	case FacetKindType:
		return value + "s"
	case FacetKindWindow:
		return "window " + value
	default:
		return value
	}
}

// NormalizeFacet lower-cases and trims a user supplied token.
func NormalizeFacet(token string) Facet {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return FacetAll
	}
	return Facet(token)
}

// CategoryFacet builds the facet for one category.
func CategoryFacet(category string) Facet {
	return Facet(fmt.Sprintf("category:%s", strings.ToLower(category)))
}
