// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the tweetgen command tree.
//
// Running tweetgen with no subcommand opens the editor. The other commands
// work without a terminal and accept --json for scripting.
//
// # Commands
//
//   - tweetgen [--post FILE]: Open the editor and live preview
//   - export: Render a post file and save it as a JPEG
//   - theme [show|toggle]: Inspect or flip the saved app theme
//   - config [show|get|set|path]: Inspect and change settings
//   - version: Print build information
//
// # Usage
//
//	os.Exit(cli.Execute(ctx, os.Args[1:]))
//
// Errors map onto exit codes through GetExitCode.
package cli
