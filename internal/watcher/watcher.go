// Package watcher re-runs a check whenever the watched workbook changes.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	spferror "github.com/msto63/spiffy/pkg/core/error"
)

// DefaultDebounce batches the burst of events a single save produces.
const DefaultDebounce = 500 * time.Millisecond

// Handler is called once per settled change. Returned errors are logged and
// do not stop the watcher.
type Handler func(ctx context.Context) error

// Stats tracks watcher activity.
type Stats struct {
	Events        int
	Runs          int
	Failures      int
	LastEventTime time.Time
	LastEventType string
	LastError     error
}

// Watcher watches one file. The parent directory is watched so that editors
// replacing the file through a rename are still seen.
type Watcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	name     string
	debounce time.Duration
	handler  Handler
	logger   *zap.Logger

	pending   bool
	lastEvent time.Time
	stats     Stats
}

// Config holds watcher configuration
type Config struct {
	Path     string
	Debounce time.Duration
	Handler  Handler
	Logger   *zap.Logger
}

// New starts watching cfg.Path. Events are queued from the moment New returns.
func New(cfg Config) (*Watcher, error) {
	if cfg.Handler == nil {
		return nil, spferror.New("watcher needs a handler").WithCode(spferror.CodeInternal)
	}

	abs, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, spferror.Wrap(err, "failed to resolve watched path").WithDetail("path", cfg.Path)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, spferror.Wrap(err, "failed to create file watcher")
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, spferror.Wrap(err, "failed to watch directory").WithDetail("dir", filepath.Dir(abs))
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Watcher{
		watcher:  fw,
		path:     abs,
		name:     filepath.Base(abs),
		debounce: debounce,
		handler:  cfg.Handler,
		logger:   logger.With(zap.String("watch", abs)),
	}, nil
}

// Run blocks until ctx is done or the underlying watcher fails, calling the
// handler after each settled change. Handler calls never overlap.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	tick := w.debounce / 5
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	w.logger.Info("Watching for changes")

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("Watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", zap.Error(err))
			w.mu.Lock()
			w.stats.LastError = err
			w.mu.Unlock()

		case <-ticker.C:
			if w.due() {
				w.fire(ctx)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != w.name {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		// chmod and remove do not leave a new workbook behind
		return
	}

	w.logger.Debug("File event", zap.String("op", eventType))

	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = true
	w.lastEvent = time.Now()
	w.stats.Events++
	w.stats.LastEventTime = w.lastEvent
	w.stats.LastEventType = eventType
}

func (w *Watcher) due() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.pending || time.Since(w.lastEvent) < w.debounce {
		return false
	}
	w.pending = false
	return true
}

func (w *Watcher) fire(ctx context.Context) {
	w.logger.Info("Change detected, re-checking")
	err := w.handler(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.stats.Runs++
	if err != nil {
		w.stats.Failures++
		w.stats.LastError = err
		w.logger.Warn("Check failed", zap.Error(err))
	}
}

// Stats returns a snapshot of the watcher activity.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}
