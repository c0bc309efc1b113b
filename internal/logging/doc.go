// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging builds the structured logger shared by tweetgen.
//
// Log lines are JSON, written to a size-rotated file so they never
// interleave with the terminal UI.
//
// # Usage
//
//	logger, closeLog, err := logging.New(cfg.Log)
//	if err != nil {
//	    return err
//	}
//	defer closeLog()
package logging
