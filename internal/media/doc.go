// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package media turns local image and video files into self-contained
// references that can be embedded in a post card.
//
// A Reference carries the whole file as a data URI, so a card that uses it
// renders (and exports) without touching the filesystem or the network again.
//
// # Key Types
//
//   - Reference: Embedded file (data URI, mime type, size, image dimensions)
//   - Kind: Classification of a reference (image or video)
//   - Result: Outcome delivered to IngestAsync continuations
//   - Watcher: Drop-folder intake backed by fsnotify
//
// # Usage
//
// Ingest a file synchronously:
//
//	res, err := media.Ingest(ctx, "/tmp/cat.png", media.DefaultMaxBytes)
//
// Or hand the result to a continuation:
//
//	media.IngestAsync(ctx, path, media.DefaultMaxBytes, func(r media.Result) {
//	    if r.Err != nil { ... }
//	})
package media
