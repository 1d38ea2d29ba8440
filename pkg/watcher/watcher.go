// Package watcher reloads the settings file whenever it changes on disk
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/philipparndt/elevatorfit/pkg/settings"
)

// Callback receives freshly loaded settings, or the error that prevented loading them
type Callback func(settings.Settings, error)

// SettingsWatcher watches a settings file and reloads it with debouncing.
// The parent directory is watched so editors that save by renaming a
// temporary file are picked up too.
type SettingsWatcher struct {
	store    *settings.Store
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer

	// held while a callback runs so reloads never overlap
	callbackMu sync.Mutex
}

// New creates a watcher for the store's file
func New(store *settings.Store, debounce time.Duration, logger *slog.Logger) (*SettingsWatcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir, err := filepath.Abs(filepath.Dir(store.Path))
	if err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to resolve path %s: %w", store.Path, err)
	}

	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &SettingsWatcher{
		store:    store,
		watcher:  w,
		logger:   logger,
		debounce: debounce,
	}, nil
}

// Run delivers reloaded settings to callback until ctx is done or the
// watcher is closed. Callbacks run on a timer goroutine, never more than one
// at a time.
func (sw *SettingsWatcher) Run(ctx context.Context, callback Callback) error {
	target, err := filepath.Abs(sw.store.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", sw.store.Path, err)
	}

	for {
		select {
		case <-ctx.Done():
			sw.stopTimer()
			return ctx.Err()

		case event, ok := <-sw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}

			// Only trigger on write, create or rename-into-place events
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				sw.logger.Debug("settings file changed", "path", event.Name, "op", event.Op.String())
				sw.schedule(callback)
			}

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return nil
			}
			sw.logger.Warn("watcher error", "error", err)
		}
	}
}

// schedule restarts the debounce timer; the reload happens once writes settle
func (sw *SettingsWatcher) schedule(callback Callback) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.timer != nil {
		sw.timer.Stop()
	}

	sw.timer = time.AfterFunc(sw.debounce, func() {
		sw.callbackMu.Lock()
		defer sw.callbackMu.Unlock()

		callback(sw.store.Load())
	})
}

func (sw *SettingsWatcher) stopTimer() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.timer != nil {
		sw.timer.Stop()
	}
}

// Close stops the watcher
func (sw *SettingsWatcher) Close() error {
	sw.stopTimer()
	return sw.watcher.Close()
}
