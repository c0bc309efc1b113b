// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package theme holds the persisted dark/light preference and the
// session-only override used for exported cards.
package theme
