// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package post holds the mock post being edited and the viewer's
// like/retweet state.
//
// # Key Types
//
//   - Post: The editable fields of the mock post
//   - Metric: Engagement counter kept as typed, with a parsed numeric view
//   - Store: Mutex-guarded single post with change subscriptions
//   - Session: Store plus Interactions, with the like/retweet toggles
package post
