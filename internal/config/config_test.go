package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsdesk/internal/domain"
	"newsdesk/internal/ingest"
)

func setupTestConfig(t *testing.T) func() {
	// save original values
	origConfigDir := configDir
	origConfigFile := configFile

	tmpDir, err := os.MkdirTemp("", "newsdesk_config_test_*")
	require.NoError(t, err)

	configDir = tmpDir
	configFile = filepath.Join(tmpDir, "config.yaml")

	return func() {
		os.RemoveAll(tmpDir)
		configDir = origConfigDir
		configFile = origConfigFile
	}
}

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()

	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "default", cfg.ThemeName)
	assert.Equal(t, domain.DefaultPageSize, cfg.PageSize)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 3*time.Second, cfg.AnnounceClear)
	assert.Equal(t, 2, cfg.NearBottomThreshold)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Feeds)
}

func TestLoadConfig_Default(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(configDir, "news.db"), cfg.DBPath)
	assert.Equal(t, domain.DefaultPageSize, cfg.PageSize)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
}

func TestSaveAndLoadConfig(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	cfg := GetDefaultConfig()
	cfg.DBPath = filepath.Join(configDir, "test.db")
	cfg.ThemeName = "nord"
	cfg.PageSize = 25
	cfg.FetchTimeout = 1500 * time.Millisecond
	cfg.Feeds = []ingest.Feed{{URL: "https://example.com/rss", Category: "world"}}

	require.NoError(t, SaveConfig(cfg))

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, cfg.DBPath, loaded.DBPath)
	assert.Equal(t, "nord", loaded.ThemeName)
	assert.Equal(t, 25, loaded.PageSize)
	assert.Equal(t, 1500*time.Millisecond, loaded.FetchTimeout)
	assert.Equal(t, cfg.Feeds, loaded.Feeds)
}

func TestSaveConfig_CreatesDirectory(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	os.RemoveAll(configDir)

	require.NoError(t, SaveConfig(GetDefaultConfig()))

	info, err := os.Stat(configDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, SaveConfig(GetDefaultConfig()))
	t.Setenv("NEWSDESK_PAGE_SIZE", "42")
	t.Setenv("NEWSDESK_FETCH_TIMEOUT", "250ms")

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.PageSize)
	assert.Equal(t, 250*time.Millisecond, loaded.FetchTimeout)
}

func TestSet(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		verify  func(t *testing.T, cfg *Config)
	}{
		{
			name:  "theme",
			key:   "theme_name",
			value: "dark",
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "dark", cfg.ThemeName)
			},
		},
		{
			name:  "page size",
			key:   "page_size",
			value: "15",
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 15, cfg.PageSize)
			},
		},
		{
			name:  "announce clear",
			key:   "announce_clear",
			value: "10s",
			verify: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 10*time.Second, cfg.AnnounceClear)
			},
		},
		{name: "zero page size", key: "page_size", value: "0", wantErr: true},
		{name: "unknown key", key: "colour", value: "red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Set(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			loaded, err := LoadConfig()
			require.NoError(t, err)
			tt.verify(t, loaded)
		})
	}
}

func TestUpdateTheme(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	require.NoError(t, UpdateTheme("light"))

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.ThemeName)
}

func TestAddFeed(t *testing.T) {
	cleanup := setupTestConfig(t)
	defer cleanup()

	added, err := AddFeed(ingest.Feed{URL: "https://example.com/rss", Category: "world"})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = AddFeed(ingest.Feed{URL: "https://example.com/rss"})
	require.NoError(t, err)
	assert.False(t, added)

	_, err = AddFeed(ingest.Feed{URL: " "})
	assert.Error(t, err)

	loaded, err := LoadConfig()
	require.NoError(t, err)
	assert.Len(t, loaded.Feeds, 1)
}

func TestValidate(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.FetchTimeout = 0
	assert.ErrorIs(t, cfg.Validate(), domain.ErrValidation)

	cfg = GetDefaultConfig()
	cfg.NearBottomThreshold = -1
	assert.Error(t, cfg.Validate())
}
