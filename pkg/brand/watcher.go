package brand

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a directory of brand documents and reloads changed
// files into a registry. Rapid change bursts are debounced so an editor
// save (often several events) triggers one reload.
type Watcher struct {
	dir      string
	registry *Registry
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	// OnReload, when set, is called after each reload attempt with nil
	// on success or the load error. Set before Watch.
	OnReload func(err error)

	mu      sync.Mutex
	timer   *time.Timer
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher for the given brand directory.
func NewWatcher(dir string, registry *Registry, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default().With("component", "brand.watcher")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		dir:      dir,
		registry: registry,
		watcher:  fsw,
		logger:   logger,
		debounce: 100 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Watch blocks processing file events until the context is cancelled or
// Stop is called. A reload failure is logged and watching continues with
// the previously registered brands.
func (w *Watcher) Watch(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		close(w.doneCh)
	}()

	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch brand directory %q: %w", w.dir, err)
	}

	w.logger.Info("brand watcher started", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-w.stopCh:
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !isBrandFileEvent(event) {
				continue
			}

			w.logger.Debug("brand file event", "path", event.Name, "op", event.Op.String())
			w.scheduleReload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error("brand watcher error", "error", err)
		}
	}
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	return w.watcher.Close()
}

// scheduleReload resets the debounce timer; the reload runs after a
// quiet period.
func (w *Watcher) scheduleReload() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

// reload re-reads the brand directory and registers every valid brand.
// Brands are registered individually so one broken file does not block
// updates to the others.
func (w *Watcher) reload() {
	brands, err := LoadDir(w.dir)
	if err != nil {
		w.logger.Error("brand reload failed, keeping previous brands",
			"dir", w.dir,
			"error", err,
		)
		w.notifyReload(err)
		return
	}

	for _, b := range brands {
		if err := w.registry.Register(b); err != nil {
			w.logger.Error("brand registration failed", "brand", b.Name, "error", err)
			continue
		}
	}

	w.logger.Info("brands reloaded", "dir", w.dir, "count", len(brands))
	w.notifyReload(nil)
}

func (w *Watcher) notifyReload(err error) {
	if w.OnReload != nil {
		w.OnReload(err)
	}
}

// isBrandFileEvent filters events to writes/creates/removes of YAML
// files.
func isBrandFileEvent(event fsnotify.Event) bool {
	if event.Op&fsnotify.Chmod == fsnotify.Chmod {
		return false
	}

	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}

	ext := strings.ToLower(filepath.Ext(event.Name))
	return ext == ".yaml" || ext == ".yml"
}
