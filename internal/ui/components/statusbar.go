// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tweetgen/internal/ui/styles"
	"github.com/jeranaias/tweetgen/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// StatusBar is the bottom line of the generator screen.
type StatusBar struct {
	Theme     string // app theme name
	Override  string // preview override name
	Layout    string // wide or narrow
	Busy      string // spinner frame plus label while work runs
	Shortcuts []key.Binding
	Width     int

	theme *styles.Theme
}

// NewStatusBar creates a status bar using the given chrome theme.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{theme: theme, Width: 80}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders the bar, dropping shortcuts from the right until it fits.
func (s *StatusBar) View() string {
	t := s.theme
	sep := t.ShortcutDesc.Render(" | ")

	left := []string{
		t.ShortcutDesc.Render("theme ") + t.FieldValue.Render(s.Theme),
		t.ShortcutDesc.Render("card ") + t.FieldValue.Render(s.Override),
		t.ShortcutDesc.Render(s.Layout),
	}
	if s.Busy != "" {
		left = append(left, t.Spinner.Render(s.Busy))
	}
	leftStr := strings.Join(left, sep)

	avail := s.Width - lipgloss.Width(leftStr) - 4
	var parts []string
	used := 0
	for _, b := range s.Shortcuts {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		part := t.ShortcutKey.Render(h.Key) + " " + t.ShortcutDesc.Render(h.Desc)
		w := util.StringWidth(h.Key) + 1 + util.StringWidth(h.Desc) + 2
		if used+w > avail {
			break
		}
		parts = append(parts, part)
		used += w
	}
	rightStr := strings.Join(parts, "  ")

	gap := s.Width - lipgloss.Width(leftStr) - lipgloss.Width(rightStr) - 2
	if gap < 1 {
		gap = 1
	}
	line := leftStr + strings.Repeat(" ", gap) + rightStr
	return t.StatusBar.Width(s.Width).MaxWidth(s.Width).Render(line)
}
