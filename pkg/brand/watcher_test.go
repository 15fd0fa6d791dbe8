package brand

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcherReloadsChangedFiles(t *testing.T) {
	dir := t.TempDir()
	registry := NewRegistry()

	w, err := NewWatcher(dir, registry, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	var reloads atomic.Int32
	w.OnReload = func(err error) {
		if err == nil {
			reloads.Add(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()

	doc := []byte("name: acme\ntone:\n  primary: confident\n")
	path := filepath.Join(dir, "acme.yaml")

	// Rewrite the file until the debounced reload lands; the watcher
	// may not have registered the directory before the first write.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(250 * time.Millisecond)
	defer tick.Stop()
	for {
		if _, ok := registry.Get("acme"); ok {
			break
		}
		select {
		case <-deadline:
			t.Fatal("brand was not reloaded before the deadline")
		case <-tick.C:
			if err := os.WriteFile(path, doc, 0o644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
		}
	}

	if reloads.Load() == 0 {
		t.Error("reload callback was not invoked")
	}

	if err := w.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
}

func TestWatcherKeepsPreviousOnBrokenFile(t *testing.T) {
	dir := t.TempDir()
	registry := NewRegistry()
	if err := registry.Register(&Brand{Name: "acme"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	w, err := NewWatcher(dir, registry, nil)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	var failures atomic.Int32
	w.OnReload = func(err error) {
		if err != nil {
			failures.Add(1)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Watch(ctx) }()
	defer w.Stop()

	broken := []byte("name: [unclosed\n")
	path := filepath.Join(dir, "broken.yaml")

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(250 * time.Millisecond)
	defer tick.Stop()
	for failures.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("broken file did not surface a reload failure")
		case <-tick.C:
			if err := os.WriteFile(path, broken, 0o644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
		}
	}

	if _, ok := registry.Get("acme"); !ok {
		t.Error("previously registered brand was dropped on a failed reload")
	}
}
