// Package logging configures the file-backed event log. The TUI owns the
// terminal, so log lines go to a JSON file instead of stdout.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DefaultPath returns the log file location: $DESKPLAN_LOG if set, else
// ~/.deskplan/deskplan.log. An empty result disables logging.
func DefaultPath() string {
	if path := os.Getenv("DESKPLAN_LOG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".deskplan", "deskplan.log")
}

// Open creates the logger writing to path, making parent directories as
// needed. An empty path yields a no-op logger. The returned func closes the
// underlying file.
func Open(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}
