// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// All chrome colors are adaptive. The Light/Dark variant is selected by the
// renderer's dark-background flag, which Theme.Apply keeps in step with the
// app theme rather than the terminal.

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Sky - Brand accent, focused fields, entities in the preview
var Sky = lipgloss.AdaptiveColor{Light: "#0C7ABF", Dark: "#1D9BF0"}

// SkyDeep - Background for the active button
var SkyDeep = lipgloss.AdaptiveColor{Light: "#0A5C8F", Dark: "#0F4C75"}

// Rose - Liked state, errors
var Rose = lipgloss.AdaptiveColor{Light: "#E0245E", Dark: "#F91880"}

// Emerald - Retweeted state, success toasts
var Emerald = lipgloss.AdaptiveColor{Light: "#00875A", Dark: "#00BA7C"}

// Gold - Gold badge, warnings
var Gold = lipgloss.AdaptiveColor{Light: "#B7950B", Dark: "#E2B719"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#000000"}

// SurfaceDim - Header and status bar background
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F7F9F9", Dark: "#16181C"}

// Overlay - Borders and separators
var Overlay = lipgloss.AdaptiveColor{Light: "#CFD9DE", Dark: "#2F3336"}

// =============================================================================
// TEXT COLORS
// =============================================================================

var TextPrimary = lipgloss.AdaptiveColor{Light: "#0F1419", Dark: "#E7E9EA"}
var TextSecondary = lipgloss.AdaptiveColor{Light: "#536471", Dark: "#8B98A5"}
var TextMuted = lipgloss.AdaptiveColor{Light: "#8B98A5", Dark: "#71767B"}
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0F1419"}

// FocusRing marks the field that has keyboard focus.
var FocusRing = Sky

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet contains text indicators for status states so that
// toasts stay readable without color.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
}

// StatusIndicators provides ASCII indicators for each toast level.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
}

// RenderSuccess renders a success message with its indicator.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().Foreground(Emerald).Bold(true).
		Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its indicator.
func RenderError(message string) string {
	return lipgloss.NewStyle().Foreground(Rose).Bold(true).
		Render(StatusIndicators.Error + " " + message)
}

// RenderWarning renders a warning message with its indicator.
func RenderWarning(message string) string {
	return lipgloss.NewStyle().Foreground(Gold).Bold(true).
		Render(StatusIndicators.Warning + " " + message)
}

// RenderInfo renders an informational message with its indicator.
func RenderInfo(message string) string {
	return lipgloss.NewStyle().Foreground(Sky).Bold(true).
		Render(StatusIndicators.Info + " " + message)
}
