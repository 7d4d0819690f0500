package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
)

func TestPredefinedThemesAreComplete(t *testing.T) {
	themes := GetPredefinedThemes()
	require.Len(t, themes, len(GetThemeNames()))

	for _, name := range GetThemeNames() {
		t.Run(name, func(t *testing.T) {
			th, err := GetTheme(name)
			require.NoError(t, err)
			assert.Equal(t, name, th.Name)
			assert.NotEmpty(t, th.Primary)
			assert.NotEmpty(t, th.BannerBg)
			assert.NotEmpty(t, th.KindTrending)
		})
	}
}

func TestGetThemeUnknown(t *testing.T) {
	_, err := GetTheme("solarized")
	assert.ErrorIs(t, err, ErrThemeNotFound)
	assert.False(t, ThemeExists("solarized"))
	assert.True(t, ThemeExists("nord"))
}

func TestKindStyle(t *testing.T) {
	s := NewStyles(DefaultTheme())
	assert.Equal(t, s.VideoBadge.GetForeground(), s.KindStyle(domain.KindVideo).GetForeground())
	assert.Equal(t, s.ArticleBadge.GetForeground(), s.KindStyle(domain.Kind("unknown")).GetForeground())
}

func TestResolve(t *testing.T) {
	th, fellBack := Resolve("")
	assert.False(t, fellBack)
	assert.Equal(t, "default", th.Name)

	th, fellBack = Resolve(" Nord ")
	assert.False(t, fellBack)
	assert.Equal(t, "nord", th.Name)

	th, fellBack = Resolve("solarized")
	assert.True(t, fellBack)
	assert.Equal(t, "default", th.Name)

	names := ListThemes()
	names[0] = "changed"
	assert.NotEqual(t, "changed", ListThemes()[0])
}
