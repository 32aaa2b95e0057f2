// Package logging builds the application logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultLevel is used when no level is configured or the level is invalid.
const DefaultLevel = log.InfoLevel

// New returns a logger writing to w at the given level name.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          "spellace",
	})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel maps a level name to a log level, falling back to DefaultLevel.
func ParseLevel(level string) log.Level {
	level = strings.TrimSpace(level)
	if level == "" {
		return DefaultLevel
	}
	parsed, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return DefaultLevel
	}
	return parsed
}

// OpenFile opens path for appending log lines, creating parent directories.
func OpenFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}
