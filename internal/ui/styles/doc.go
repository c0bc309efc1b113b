// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the tweetgen TUI.

# Color System (colors.go)

All colors are Lip Gloss AdaptiveColor values. Which variant renders is
decided by the app theme, not by the terminal background:

	Sky      - Brand accent and focus ring
	Rose     - Liked state and errors
	Emerald  - Retweeted state and success
	Gold     - Gold badge and warnings

# Theme System (theme.go)

	theme := styles.NewTheme(controller.IsDark())
	controller.OnApply(theme.Apply)

	if theme.GetLayoutMode() == styles.LayoutWide {
		// editor and preview side by side
	}

# Animation System (animations.go)

Spinner frame sets converted to bubbles spinners, plus toast timings.
*/
package styles
