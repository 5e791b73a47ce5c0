// pattern: Imperative Shell

package logging

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval re-reads the file in case a write event was missed.
const pollInterval = 2 * time.Second

// Tailer follows a JSON log file written by Manager and hands every parsed
// entry to emit. Rotation is handled by reopening the file when it is
// renamed away and recreated.
type Tailer struct {
	path    string
	emit    func(LogEntry)
	watcher *fsnotify.Watcher

	mu     sync.Mutex
	file   *os.File
	offset int64
	closed bool
}

// NewTailer creates a tailer for path.
func NewTailer(path string, emit func(LogEntry)) (*Tailer, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}
	return &Tailer{path: path, emit: emit, watcher: watcher}, nil
}

// ReadExisting emits every entry already in the file and leaves the read
// position at its end. A missing file is not an error.
func (t *Tailer) ReadExisting() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.openFile(); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	t.readNewLines()
	return nil
}

// Follow emits entries appended to the file until ctx is cancelled.
func (t *Tailer) Follow(ctx context.Context) error {
	// Watch the directory: the file may not exist yet, and rotation
	// replaces it.
	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}
	if err := t.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = t.Close()
			return ctx.Err()

		case event, ok := <-t.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(t.path) {
				continue
			}

			t.mu.Lock()
			switch {
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				t.closeFile()
			case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
				_ = t.openFile()
				t.readNewLines()
			}
			t.mu.Unlock()

		case <-ticker.C:
			t.mu.Lock()
			if t.file == nil {
				_ = t.openFile()
			}
			t.readNewLines()
			t.mu.Unlock()

		case _, ok := <-t.watcher.Errors:
			if !ok {
				return nil
			}
		}
	}
}

// openFile opens the file from the start if it is not already open.
func (t *Tailer) openFile() error {
	if t.file != nil {
		return nil
	}
	file, err := os.Open(t.path)
	if err != nil {
		return err
	}
	t.file = file
	t.offset = 0
	return nil
}

func (t *Tailer) closeFile() {
	if t.file != nil {
		_ = t.file.Close()
		t.file = nil
		t.offset = 0
	}
}

// readNewLines emits complete lines appended since the last read.
func (t *Tailer) readNewLines() {
	if t.file == nil {
		return
	}
	if _, err := t.file.Seek(t.offset, io.SeekStart); err != nil {
		return
	}

	reader := bufio.NewReader(t.file)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			// Partial trailing line: leave it for the next read.
			return
		}
		t.offset += int64(len(line))
		if len(line) <= 1 {
			continue
		}
		entry, perr := ParseEntry(line)
		if perr != nil {
			continue
		}
		t.emit(entry)
	}
}

// Close stops the tailer and releases resources.
func (t *Tailer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	t.closeFile()
	return t.watcher.Close()
}
