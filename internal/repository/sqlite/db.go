package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sqlx.DB
}

type Config struct {
	Path string
}

// opens the item store & runs migrations
func NewDB(cfg Config) (*DB, error) {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// open SQLite connection
	db, err := sqlx.Open("sqlite3", cfg.Path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the TUI read while an import writes
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// run migrations
	if err := runMigrations(db.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &DB{DB: db}, nil
}

// executes db schema
func runMigrations(db *sql.DB) error {
	schema := `
	-- Create items table
	CREATE TABLE IF NOT EXISTS items (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL DEFAULT 'article',
		category TEXT NOT NULL DEFAULT '',
		tags TEXT,
		title TEXT NOT NULL,
		excerpt TEXT,
		image_url TEXT,
		url TEXT,
		author TEXT,
		duration TEXT,
		published_at DATETIME NOT NULL,
		popularity INTEGER NOT NULL DEFAULT 0,
		featured INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

		CHECK(id != ''),
		CHECK(title != ''),
		CHECK(length(title) <= 300),
		CHECK(popularity >= 0),
		CHECK(kind IN ('article', 'photo', 'video', 'trending'))
	);

	CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);
	CREATE INDEX IF NOT EXISTS idx_items_kind ON items(kind);
	CREATE INDEX IF NOT EXISTS idx_items_published_at ON items(published_at);

	CREATE TRIGGER IF NOT EXISTS update_items_updated_at
		AFTER UPDATE ON items
		FOR EACH ROW
	BEGIN
		UPDATE items SET updated_at = CURRENT_TIMESTAMP WHERE seq = OLD.seq;
	END;

	-- Create preferences table
	CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,

		CHECK(key != '')
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}
