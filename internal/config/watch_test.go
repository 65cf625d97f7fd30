package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsChangedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "penguins.yaml", "drift:\n  step: 2\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	if _, ok, err := w.Poll(); ok || err != nil {
		t.Fatalf("Poll() before any change = ok:%v err:%v", ok, err)
	}

	// Unrelated files in the same directory are ignored
	writeFile(t, dir, "other.yaml", "drift:\n  step: 9\n")

	if err := os.WriteFile(path, []byte("drift:\n  step: 4\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		cfg, ok, err := w.Poll()
		if err != nil {
			t.Fatalf("Poll() error: %v", err)
		}
		if ok {
			if cfg.Drift.Step != 4 {
				t.Errorf("reloaded drift step = %v, expected 4", cfg.Drift.Step)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no reload observed")
}

func TestWatcherWaitsForSaveToFinish(t *testing.T) {
	path := writeFile(t, t.TempDir(), "penguins.yaml", "drift:\n  step: 2\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	// Truncate, then finish the write a moment later.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("drift:\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(debounce / 5)
	if _, err := f.WriteString("  step: 7\n"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		cfg, ok, err := w.Poll()
		if err != nil {
			t.Fatalf("Poll() error: %v", err)
		}
		if ok {
			if cfg.Drift.Step != 7 {
				t.Errorf("first reload saw drift step %v, expected the finished file's 7", cfg.Drift.Step)
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no reload observed")
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := writeFile(t, t.TempDir(), "penguins.yaml", "")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	// Closed channels read as "no change"
	if _, ok, err := w.Poll(); ok || err != nil {
		t.Errorf("Poll() after Close = ok:%v err:%v", ok, err)
	}
}

func TestNewWatcherMissingDirectory(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "nope", "penguins.yaml"))
	if err == nil {
		t.Fatal("watching a missing directory should fail")
	}
}
