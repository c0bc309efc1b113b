// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides reusable UI pieces for the tweetgen TUI.
//
// # Key Types
//
//   - ToastManager: Non-blocking notifications that auto-dismiss
//   - AlertSink: Bridges export alerts from worker goroutines into toasts
//   - HelpOverlay: Keyboard reference rendered from markdown with glamour
//   - StatusBar: Bottom bar with theme, override, layout and shortcuts
//
// # Usage
//
//	toasts := components.NewToastManager()
//	sink := components.NewAlertSink(8)
//	pipeline := export.NewPipeline(r, s, sink, logger, opts)
//
//	// In Init/Update, keep listening for alerts:
//	return sink.Listen()
package components
