// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tweetgen/internal/media"
	"github.com/jeranaias/tweetgen/internal/post"
	"github.com/jeranaias/tweetgen/internal/ui/components"
	"github.com/jeranaias/tweetgen/internal/ui/editor"
	"github.com/jeranaias/tweetgen/internal/ui/generator"
)

// runTUI opens the editor. postFile, when set, seeds the post.
func runTUI(ctx context.Context, a *app, postFile string) error {
	if !IsTTY() || !IsStdoutTTY() {
		return &TTYRequiredError{Operation: "open the editor (try 'tweetgen export')"}
	}
	cfg := a.cfg

	initial := post.Default()
	if postFile != "" {
		p, err := post.LoadFile(ctx, postFile, cfg.Media.MaxBytes)
		if err != nil {
			return NewCommandError("tweetgen", "load", postFile, err)
		}
		initial = p
	}

	ctrl, closeStore := openTheme(a, os.Stderr)
	defer closeStore()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	alerts := components.NewAlertSink(16)
	session := post.NewSession(post.NewStore(initial))

	m := generator.New(generator.Deps{
		Session:  session,
		Theme:    ctrl,
		Pipeline: newPipeline(cfg, alerts, a.logger),
		Alerts:   alerts,
		Logger:   a.logger,
		Context:  ctx,
	}, generator.Options{
		DevicePixelRatio: cfg.Export.DevicePixelRatio,
		WideBreakpoint:   cfg.UI.WideBreakpoint,
		CompactMode:      cfg.UI.CompactMode,
		MaxMediaBytes:    cfg.Media.MaxBytes,
		DropDir:          cfg.Media.DropDir,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Media.Watch {
		w, err := startDropWatcher(a, p)
		if err != nil {
			a.logger.Warnw("drop folder disabled", "dir", cfg.Media.DropDir, "error", err)
		} else {
			defer w.Close()
		}
	}

	a.logger.Infow("editor started", "theme", ctrl.Name(), "post_file", postFile)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("editor: %w", err)
	}
	return nil
}

// startDropWatcher forwards files written into the drop folder to the
// editor as if they had been attached by path.
func startDropWatcher(a *app, p *tea.Program) (*media.Watcher, error) {
	cfg := a.cfg.Media
	w, err := media.NewWatcher(media.WatcherConfig{
		Dir:        cfg.DropDir,
		Debounce:   cfg.Debounce(),
		RatePerSec: cfg.RatePerSec,
		MaxBytes:   cfg.MaxBytes,
	}, func(slot media.Slot, res media.Result) {
		p.Send(editor.IngestedMsg{Slot: slot, Path: res.Ref.Name, Result: res})
	}, a.logger)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}
