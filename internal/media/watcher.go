// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Slot names the post field a dropped file is meant for.
type Slot string

const (
	SlotProfile Slot = "profile"
	SlotMedia   Slot = "media"
)

// DropHandler receives every file ingested from the drop folder.
type DropHandler func(slot Slot, res Result)

// WatcherConfig configures a drop-folder Watcher.
type WatcherConfig struct {
	// Dir is the drop folder; files go into Dir/profile or Dir/media.
	Dir string
	// Debounce is how long a file must stay unchanged before it is ingested.
	Debounce time.Duration
	// RatePerSec bounds how many files are ingested per second.
	RatePerSec float64
	// MaxBytes is passed through to Ingest.
	MaxBytes int64
}

// Watcher is the terminal stand-in for drag-and-drop: files written into the
// drop folder are ingested into the matching slot.
type Watcher struct {
	cfg     WatcherConfig
	handler DropHandler
	logger  *zap.SugaredLogger
	watcher *fsnotify.Watcher
	limiter *rate.Limiter

	mu      sync.Mutex
	pending map[string]time.Time

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates the slot directories under cfg.Dir and prepares an
// fsnotify watcher for them. Call Start to begin delivering files.
func NewWatcher(cfg WatcherConfig, handler DropHandler, logger *zap.SugaredLogger) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("drop folder not configured")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 300 * time.Millisecond
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 2
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	for _, slot := range []Slot{SlotProfile, SlotMedia} {
		if err := os.MkdirAll(filepath.Join(cfg.Dir, string(slot)), 0755); err != nil {
			return nil, fmt.Errorf("create drop folder: %w", err)
		}
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		watcher: fw,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
		pending: make(map[string]time.Time),
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Start registers the slot directories and starts the event loops.
func (w *Watcher) Start() error {
	for _, slot := range []Slot{SlotProfile, SlotMedia} {
		if err := w.watcher.Add(filepath.Join(w.cfg.Dir, string(slot))); err != nil {
			return fmt.Errorf("watch %s: %w", slot, err)
		}
	}

	w.wg.Add(2)
	go w.processEvents()
	go w.processPending()

	w.logger.Infow("drop folder watching", "dir", w.cfg.Dir)
	return nil
}

// Close stops watching and waits for in-flight ingestion to finish.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// SlotFor reports which slot a path in the drop folder belongs to.
func (w *Watcher) SlotFor(path string) (Slot, bool) {
	rel, err := filepath.Rel(w.cfg.Dir, path)
	if err != nil {
		return "", false
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 2 || strings.HasPrefix(parts[1], ".") {
		return "", false
	}
	switch Slot(parts[0]) {
	case SlotProfile:
		return SlotProfile, true
	case SlotMedia:
		return SlotMedia, true
	}
	return "", false
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if _, ok := w.SlotFor(event.Name); !ok {
				continue
			}
			w.mu.Lock()
			w.pending[event.Name] = time.Now()
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("drop folder watcher error", "error", err)
		}
	}
}

// processPending ingests files whose last write is older than the debounce.
func (w *Watcher) processPending() {
	defer w.wg.Done()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			for _, path := range w.due(time.Now()) {
				if err := w.limiter.Wait(w.ctx); err != nil {
					return
				}
				w.ingest(path)
			}
		}
	}
}

func (w *Watcher) due(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for path, changed := range w.pending {
		if now.Sub(changed) >= w.cfg.Debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	return ready
}

func (w *Watcher) ingest(path string) {
	slot, ok := w.SlotFor(path)
	if !ok || w.handler == nil {
		return
	}

	var (
		res Result
		err error
	)
	if slot == SlotProfile {
		res, err = IngestProfile(w.ctx, path, w.cfg.MaxBytes)
	} else {
		res, err = Ingest(w.ctx, path, w.cfg.MaxBytes)
	}
	if err != nil {
		w.logger.Warnw("drop folder ingest failed", "slot", slot, "path", path, "error", err)
		res = Result{Err: err}
	} else {
		w.logger.Infow("drop folder ingested", "slot", slot, "path", path, "kind", res.Kind, "bytes", res.Ref.Size)
	}
	w.handler(slot, res)
}
