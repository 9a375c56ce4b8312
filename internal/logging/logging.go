// Package logging builds the application logger. The TUI owns the terminal,
// so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// New returns a logger writing to path at the given level. An empty path
// yields a logger that discards everything. The returned closer is never nil.
func New(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	if path == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "tada",
	})
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
