package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"newsdesk/internal/config"
	"newsdesk/internal/controller"
	"newsdesk/internal/logging"
	"newsdesk/internal/preferences"
	"newsdesk/internal/repository"
	"newsdesk/internal/repository/sqlite"
	"newsdesk/internal/search"
	"newsdesk/internal/theme"
)

// app is what most commands need: the open store, preferences and styles.
type app struct {
	cfg      *config.Config
	db       *sqlite.DB
	items    *sqlite.ItemRepository
	prefRepo repository.PreferenceRepository
	prefs    *preferences.Service
	theme    *theme.Theme
	styles   *theme.Styles
	logger   *log.Logger
}

func openApp(component string) (*app, error) {
	cfg := appConfig
	if cfg == nil {
		cfg = config.GetDefaultConfig()
	}

	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	prefRepo := sqlite.NewPreferenceRepository(db)
	t := loadTheme(cfg)

	return &app{
		cfg:      cfg,
		db:       db,
		items:    sqlite.NewItemRepository(db),
		prefRepo: prefRepo,
		prefs:    preferences.NewService(prefRepo),
		theme:    t,
		styles:   theme.NewStyles(t),
		logger:   logging.WithPrefix(component),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

func (a *app) controllerConfig() controller.Config {
	cfg := controller.DefaultConfig()
	cfg.PageSize = a.cfg.PageSize
	cfg.FetchTimeout = a.cfg.FetchTimeout
	cfg.NearBottomThreshold = a.cfg.NearBottomThreshold
	return cfg
}

func (a *app) searchService() *search.Service {
	return search.NewService(a.items,
		search.WithRecorder(a.prefs),
		search.WithLogger(a.logger),
		search.WithClock(time.Now),
	)
}

// loadTheme resolves the configured theme, falling back to the default.
func loadTheme(cfg *config.Config) *theme.Theme {
	if cfg == nil {
		return theme.GetDefaultTheme()
	}
	t, fellBack := theme.Resolve(cfg.ThemeName)
	if fellBack {
		logging.Warn("unknown theme, using default", "theme", cfg.ThemeName)
	}
	return t
}

func loadStyles(cfg *config.Config) *theme.Styles {
	return theme.NewStyles(loadTheme(cfg))
}
