// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package generator is the root screen of the tweet generator.
//
// It lays out the live preview next to (or above, on narrow terminals) the
// editor form, and owns the export controls, the card theme override and
// the app theme toggle.
//
// # Key Types
//
//   - Model: The Bubble Tea model for the whole screen
//   - Deps: Session, theme controller, export pipeline and alert sink
//   - KeyMap: Screen level bindings
//
// # Usage
//
//	m := generator.New(generator.Deps{
//	    Session:  post.NewSession(post.NewStore(post.Default())),
//	    Theme:    controller,
//	    Pipeline: pipeline,
//	    Alerts:   sink,
//	}, generator.Options{DevicePixelRatio: 2})
//	p := tea.NewProgram(m, tea.WithAltScreen())
//
// # Exports
//
// An export captures the preview as it is laid out at the moment of the
// key press. Before the first window size message there is no layout, and
// the pipeline reports that the preview is not ready.
package generator
