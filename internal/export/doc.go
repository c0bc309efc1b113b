// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export captures the post card as a JPEG image and saves it.
//
// The pipeline renders the card for the requested theme as an HTML
// document, lets a Rasterizer lay it out and screenshot it at the clamped
// device pixel ratio, and hands the bytes to a Saver.
//
// # Key Types
//
//   - Pipeline: Export orchestration and user-facing alerts
//   - Rasterizer: Document to JPEG conversion (ChromeRasterizer via chromedp)
//   - Saver: Delivery of the finished file (FileSaver)
//   - Notifier: Sink for blocking alerts
//
// # Usage
//
//	p := export.NewPipeline(
//	    export.NewChromeRasterizer(export.ChromeConfig{}, logger),
//	    export.NewFileSaver(outDir, false, logger),
//	    notifier, logger, export.Options{},
//	)
//	path, err := p.Export(ctx, export.Request{Target: &target, IsDark: true, DevicePixelRatio: 1})
//
// # Files
//
// Exports are named tweet-<handle>-<epochMillis>.jpg.
package export
