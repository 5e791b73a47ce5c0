// pattern: Imperative Shell
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tabsview/internal/logging"
)

// LogFilter selects the entries "tabsview logs" prints.
type LogFilter struct {
	Scope string // dotted scope prefix; empty matches all
	Level string // minimum level; empty means debug
}

// Match reports whether e passes the filter.
func (f LogFilter) Match(e logging.LogEntry) bool {
	if !e.MatchesScope(f.Scope) {
		return false
	}
	return f.Level == "" || e.AtLeast(f.Level)
}

// TailConfig configures TailLogs.
type TailConfig struct {
	Path   string
	Filter LogFilter
	Follow bool
	Writer io.Writer
}

// TailLogs prints the entries already in the log file and, with Follow,
// keeps printing new ones until ctx is cancelled.
func TailLogs(ctx context.Context, cfg TailConfig) error {
	t, err := logging.NewTailer(cfg.Path, func(e logging.LogEntry) {
		if cfg.Filter.Match(e) {
			_, _ = fmt.Fprintln(cfg.Writer, e.String())
		}
	})
	if err != nil {
		return err
	}
	defer func() { _ = t.Close() }()

	if err := t.ReadExisting(); err != nil {
		return fmt.Errorf("reading %s: %w", cfg.Path, err)
	}
	if !cfg.Follow {
		return nil
	}

	if err := t.Follow(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
