// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/jeranaias/tweetgen/internal/storage"
)

// StorageKey is the key the preference is persisted under.
const StorageKey = "theme"

const (
	nameDark  = "dark"
	nameLight = "light"
)

// Applier receives the effective dark flag whenever the preference is
// applied to the surface.
type Applier func(isDark bool)

// Controller owns the global dark/light preference.
type Controller struct {
	mu       sync.RWMutex
	isDark   bool
	store    storage.KV
	logger   *zap.SugaredLogger
	appliers []Applier
}

// New reads the persisted preference once. A missing, unreadable or
// unrecognised value means dark. store may be nil, in which case the
// preference lives for the process only.
func New(store storage.KV, logger *zap.SugaredLogger, appliers ...Applier) *Controller {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	c := &Controller{
		isDark:   true,
		store:    store,
		logger:   logger,
		appliers: appliers,
	}

	if store != nil {
		v, ok, err := store.Get(StorageKey)
		switch {
		case err != nil:
			logger.Warnw("theme preference unreadable, using dark", "error", err)
		case ok && v == nameLight:
			c.isDark = false
		case ok && v != nameDark:
			logger.Warnw("unrecognised theme preference, using dark", "value", v)
		}
	}

	c.apply(c.isDark)
	return c
}

// IsDark reports the current preference.
func (c *Controller) IsDark() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.isDark
}

// Name returns "dark" or "light".
func (c *Controller) Name() string {
	return nameOf(c.IsDark())
}

// Toggle flips the preference, persists it and applies it. The in-memory
// flip and the apply happen even when persisting fails; the error is
// returned so the caller can surface it.
func (c *Controller) Toggle() error {
	c.mu.Lock()
	c.isDark = !c.isDark
	isDark := c.isDark
	c.mu.Unlock()

	var err error
	if c.store != nil {
		if err = c.store.Set(StorageKey, nameOf(isDark)); err != nil {
			c.logger.Errorw("failed to persist theme preference", "error", err)
			err = fmt.Errorf("failed to persist theme: %w", err)
		}
	}
	c.logger.Infow("theme toggled", "theme", nameOf(isDark))
	c.apply(isDark)
	return err
}

// OnApply registers fn and immediately calls it with the current value.
func (c *Controller) OnApply(fn Applier) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.appliers = append(c.appliers, fn)
	isDark := c.isDark
	c.mu.Unlock()
	fn(isDark)
}

func (c *Controller) apply(isDark bool) {
	c.mu.RLock()
	appliers := make([]Applier, len(c.appliers))
	copy(appliers, c.appliers)
	c.mu.RUnlock()

	for _, fn := range appliers {
		fn(isDark)
	}
}

func nameOf(isDark bool) string {
	if isDark {
		return nameDark
	}
	return nameLight
}

// =============================================================================
// PREVIEW OVERRIDE
// =============================================================================

// Override forces the exported card's theme regardless of the preference.
type Override string

const (
	OverrideSystem Override = "system"
	OverrideLight  Override = "light"
	OverrideDark   Override = "dark"
)

// ParseOverride accepts system, light or dark; empty means system.
func ParseOverride(s string) (Override, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "system":
		return OverrideSystem, nil
	case "light":
		return OverrideLight, nil
	case "dark":
		return OverrideDark, nil
	}
	return OverrideSystem, fmt.Errorf("unknown theme %q (want system, light or dark)", s)
}

// Next cycles system -> light -> dark -> system.
func (o Override) Next() Override {
	switch o {
	case OverrideSystem:
		return OverrideLight
	case OverrideLight:
		return OverrideDark
	default:
		return OverrideSystem
	}
}

// Effective resolves the card theme: system defers to the preference.
func Effective(o Override, isDark bool) bool {
	switch o {
	case OverrideLight:
		return false
	case OverrideDark:
		return true
	default:
		return isDark
	}
}
