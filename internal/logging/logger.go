// Package logging sets up the process wide charmbracelet logger. Log lines
// go to a dated file under the newsdesk home so they never interleave with
// the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// Logger is the global logger. It discards until Init or SetOutput
	// is called.
	Logger = newLogger(io.Discard, log.InfoLevel)

	logFile *os.File
	mu      sync.Mutex
)

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
	})
}

// Init opens dir/newsdesk-<date>.log and points the global logger at it.
func Init(dir, level string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	name := fmt.Sprintf("newsdesk-%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	mu.Lock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	mu.Unlock()

	SetOutput(f, ParseLevel(level))
	return nil
}

// SetOutput points the global logger at w, e.g. stderr.
func SetOutput(w io.Writer, level log.Level) {
	mu.Lock()
	defer mu.Unlock()
	Logger = newLogger(w, level)
}

// ParseLevel maps a config value to a level, defaulting to info.
func ParseLevel(s string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Close closes the log file opened by Init.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	Logger = newLogger(io.Discard, log.InfoLevel)
}

// WithPrefix returns a component logger.
func WithPrefix(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	return Logger.WithPrefix(prefix)
}

// Discard returns a logger that writes nowhere, for tests and defaults.
func Discard() *log.Logger {
	return newLogger(io.Discard, log.InfoLevel)
}

func Info(msg string, keyvals ...any) {
	WithPrefix("").Info(msg, keyvals...)
}

func Debug(msg string, keyvals ...any) {
	WithPrefix("").Debug(msg, keyvals...)
}

func Warn(msg string, keyvals ...any) {
	WithPrefix("").Warn(msg, keyvals...)
}

func Error(msg string, keyvals ...any) {
	WithPrefix("").Error(msg, keyvals...)
}
