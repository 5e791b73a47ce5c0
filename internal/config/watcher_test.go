// pattern: Imperative Shell

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

type reload struct {
	cfg Config
	err error
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "tabsview", "config.yaml")

	reloads := make(chan reload, 16)
	w, err := NewWatcher(configPath, func(cfg Config, err error) {
		reloads <- reload{cfg, err}
	})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	// Wait for the watcher to create and watch the directory.
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(filepath.Dir(configPath)); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("config directory was not created")
		}
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(configPath, []byte("position: top\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	select {
	case r := <-reloads:
		if r.err != nil {
			t.Fatalf("reload error = %v", r.err)
		}
		if r.cfg.Position != "top" {
			t.Errorf("reloaded Position = %q, want top", r.cfg.Position)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for reload")
	}

	if err := os.WriteFile(configPath, []byte("position: left\n"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// A late duplicate of the first reload may still be queued.
	timeout := time.After(3 * time.Second)
	for reported := false; !reported; {
		select {
		case r := <-reloads:
			reported = r.err != nil
		case <-timeout:
			t.Fatal("invalid config was not reported")
		}
	}

	cancel()
	<-done
}

func TestWatcher_ClosesWhenDirectoryUnusable(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w, err := NewWatcher(filepath.Join(blocker, "tabsview", "config.yaml"), func(Config, error) {})
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	if err := w.Run(context.Background()); err == nil {
		t.Fatal("Run() error = nil, want directory error")
	}
	if err := w.watcher.Add(t.TempDir()); err == nil {
		t.Error("watcher still accepts paths after Run failed; it was not closed")
	}
}
