// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render turns a post into a Card and draws it, either as a
// standalone HTML document for rasterization or with Lip Gloss for the
// terminal preview.
package render
