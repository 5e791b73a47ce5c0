// pattern: Imperative Shell

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the burst of events editors produce on save.
const debounce = 150 * time.Millisecond

// Watcher reloads the config file whenever it changes on disk.
type Watcher struct {
	path     string
	onChange func(Config, error)
	watcher  *fsnotify.Watcher
}

// NewWatcher creates a watcher for path. onChange receives every reload,
// including failed ones.
func NewWatcher(path string, onChange func(Config, error)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	return &Watcher{path: path, onChange: onChange, watcher: w}, nil
}

// Run watches until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.Close() }()

	// Watch the directory: editors often replace the file instead of
	// writing it in place.
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			cfg, err := LoadFrom(w.path)
			if err == nil {
				err = cfg.Validate()
			}
			w.onChange(cfg, err)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.onChange(Config{}, fmt.Errorf("config watcher: %w", err))
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
