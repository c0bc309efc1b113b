// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package editor implements the form that edits the post.
//
// Every keystroke that changes a field is written straight into the
// post.Store, so the preview re-renders from the store and never from the
// form. Choice rows (badge, time format) cycle with the arrow keys. Path rows
// read a file off the update loop and attach it as a data URI.
//
// # Usage
//
//	ed := editor.New(store, theme, editor.Options{Context: ctx, MaxBytes: cfg.Media.MaxBytes})
//	ed, cmd = ed.Update(msg)
//
// When something other than the form changes the store (like toggles, the
// drop folder), call Sync so the inputs show the new values.
package editor
