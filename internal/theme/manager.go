package theme

import (
	"errors"
	"fmt"
	"strings"
)

var ErrThemeNotFound = errors.New("theme not found")

// Registry maps theme names to palettes. Names are matched case-insensitively.
type Registry struct {
	themes map[string]*Theme
	names  []string
	def    string
}

func NewRegistry() *Registry {
	return &Registry{
		themes: GetPredefinedThemes(),
		names:  GetThemeNames(),
		def:    "default",
	}
}

func (r *Registry) GetTheme(name string) (*Theme, error) {
	t, ok := r.themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return t, nil
}

// Resolve returns the named theme, or the default one when name is empty or
// unknown. fellBack is true only for a non-empty unknown name.
func (r *Registry) Resolve(name string) (t *Theme, fellBack bool) {
	if strings.TrimSpace(name) == "" {
		return r.themes[r.def], false
	}
	t, err := r.GetTheme(name)
	if err != nil {
		return r.themes[r.def], true
	}
	return t, false
}

// in display order
func (r *Registry) ListThemes() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Registry) ThemeExists(name string) bool {
	_, err := r.GetTheme(name)
	return err == nil
}

var registry = NewRegistry()

func GetTheme(name string) (*Theme, error) {
	return registry.GetTheme(name)
}

func Resolve(name string) (*Theme, bool) {
	return registry.Resolve(name)
}

func ListThemes() []string {
	return registry.ListThemes()
}

func ThemeExists(name string) bool {
	return registry.ThemeExists(name)
}

func GetDefaultTheme() *Theme {
	t, _ := registry.Resolve("")
	return t
}
