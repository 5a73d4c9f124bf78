// Package logging builds the structured logger shared by the dodge binaries.
// Interactive front ends own the terminal, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Open returns a logger writing to path, or a discarding logger when path is
// empty. The returned close function is never nil.
func Open(path, prefix string, debug bool) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open log file: %w", err)
	}

	return New(f, prefix, debug), f.Close, nil
}

// New creates a timestamped logger on w.
func New(w io.Writer, prefix string, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
