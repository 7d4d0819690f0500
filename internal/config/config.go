package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"newsdesk/internal/domain"
	"newsdesk/internal/ingest"
)

const EnvPrefix = "NEWSDESK"

type Config struct {
	DBPath              string        `mapstructure:"db_path" yaml:"db_path"`
	ThemeName           string        `mapstructure:"theme_name" yaml:"theme_name"`
	PageSize            int           `mapstructure:"page_size" yaml:"page_size"`
	FetchTimeout        time.Duration `mapstructure:"fetch_timeout" yaml:"fetch_timeout"`
	AnnounceClear       time.Duration `mapstructure:"announce_clear" yaml:"announce_clear"`
	NearBottomThreshold int           `mapstructure:"near_bottom_threshold" yaml:"near_bottom_threshold"`
	LogLevel            string        `mapstructure:"log_level" yaml:"log_level"`
	LogDir              string        `mapstructure:"log_dir" yaml:"log_dir"`
	Feeds               []ingest.Feed `mapstructure:"feeds" yaml:"feeds"`
}

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".newsdesk")
	configFile = filepath.Join(configDir, "config.yaml")
}

// SetConfigDir moves the config directory, e.g. to a temp dir in tests.
func SetConfigDir(dir string) {
	configDir = dir
	configFile = filepath.Join(dir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

// newViper builds a viper instance with defaults and NEWSDESK_ env
// overrides, e.g. NEWSDESK_PAGE_SIZE=20.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := GetDefaultConfig()
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("theme_name", def.ThemeName)
	v.SetDefault("page_size", def.PageSize)
	v.SetDefault("fetch_timeout", def.FetchTimeout)
	v.SetDefault("announce_clear", def.AnnounceClear)
	v.SetDefault("near_bottom_threshold", def.NearBottomThreshold)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_dir", def.LogDir)
	v.SetDefault("feeds", []map[string]string{})
	return v
}

// loads config from file and environment
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()
	if ConfigExists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		c.DBPath = filepath.Join(configDir, "news.db")
	}
	if c.PageSize <= 0 {
		return &domain.ValidationError{Field: "page_size", Message: "page size must be positive"}
	}
	if c.FetchTimeout <= 0 {
		return &domain.ValidationError{Field: "fetch_timeout", Message: "fetch timeout must be positive"}
	}
	if c.AnnounceClear < 0 {
		return &domain.ValidationError{Field: "announce_clear", Message: "announce clear delay cannot be negative"}
	}
	if c.NearBottomThreshold < 0 {
		return &domain.ValidationError{Field: "near_bottom_threshold", Message: "near bottom threshold cannot be negative"}
	}
	for i, f := range c.Feeds {
		if strings.TrimSpace(f.URL) == "" {
			return &domain.ValidationError{Field: fmt.Sprintf("feeds[%d].url", i), Message: "feed url cannot be empty"}
		}
	}
	return nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("db_path", cfg.DBPath)
	v.Set("theme_name", cfg.ThemeName)
	v.Set("page_size", cfg.PageSize)
	v.Set("fetch_timeout", cfg.FetchTimeout.String())
	v.Set("announce_clear", cfg.AnnounceClear.String())
	v.Set("near_bottom_threshold", cfg.NearBottomThreshold)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_dir", cfg.LogDir)

	feeds := make([]map[string]string, 0, len(cfg.Feeds))
	for _, f := range cfg.Feeds {
		feeds = append(feeds, map[string]string{"url": f.URL, "category": f.Category})
	}
	v.Set("feeds", feeds)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		DBPath:              filepath.Join(configDir, "news.db"),
		ThemeName:           "default",
		PageSize:            domain.DefaultPageSize,
		FetchTimeout:        5 * time.Second,
		AnnounceClear:       3 * time.Second,
		NearBottomThreshold: 2,
		LogLevel:            "info",
		LogDir:              filepath.Join(configDir, "logs"),
		Feeds:               []ingest.Feed{},
	}
}

// Keys lists the settings `config set` accepts.
func Keys() []string {
	return []string{"db_path", "theme_name", "page_size", "fetch_timeout", "announce_clear", "near_bottom_threshold", "log_level", "log_dir"}
}

// Set updates one setting by key, validates and saves.
func Set(key, value string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	v := viper.New()
	v.Set(key, value)

	switch key {
	case "db_path":
		cfg.DBPath = v.GetString(key)
	case "theme_name":
		cfg.ThemeName = v.GetString(key)
	case "page_size":
		cfg.PageSize = v.GetInt(key)
	case "fetch_timeout":
		cfg.FetchTimeout = v.GetDuration(key)
	case "announce_clear":
		cfg.AnnounceClear = v.GetDuration(key)
	case "near_bottom_threshold":
		cfg.NearBottomThreshold = v.GetInt(key)
	case "log_level":
		cfg.LogLevel = v.GetString(key)
	case "log_dir":
		cfg.LogDir = v.GetString(key)
	default:
		return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(Keys(), ", "))
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	return SaveConfig(cfg)
}

// updates theme in config file
func UpdateTheme(themeName string) error {
	return Set("theme_name", themeName)
}

// AddFeed appends a feed subscription unless its URL is already present.
func AddFeed(feed ingest.Feed) (bool, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return false, fmt.Errorf("failed to load config: %w", err)
	}

	for _, f := range cfg.Feeds {
		if f.URL == feed.URL {
			return false, nil
		}
	}
	cfg.Feeds = append(cfg.Feeds, feed)

	if err := cfg.Validate(); err != nil {
		return false, err
	}
	return true, SaveConfig(cfg)
}
