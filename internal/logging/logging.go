// Package logging builds the charmbracelet loggers used by every host.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Options selects where and how much to log.
type Options struct {
	Level    string    // debug, info, warn, error; empty means info
	File     string    // Log file path; empty means Fallback
	Prefix   string    // Shown before every line
	Fallback io.Writer // Destination when File is empty; nil discards
}

// New creates a logger and returns a closer for the underlying file, if any.
func New(opts Options) (*log.Logger, func() error, error) {
	level := log.InfoLevel
	if opts.Level != "" {
		parsed, err := log.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	out := opts.Fallback
	closer := func() error { return nil }
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: cannot create directory for %s: %w", opts.File, err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: cannot open %s: %w", opts.File, err)
		}
		out = f
		closer = f.Close
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          opts.Prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// Discard returns a logger that drops everything. Used by tests and
// components constructed without a logger.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
