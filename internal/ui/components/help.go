// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tweetgen/internal/ui/styles"
)

// HelpSection groups related bindings under a heading.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpOverlay renders the full keyboard reference as markdown.
type HelpOverlay struct {
	Sections []HelpSection
	Width    int
	Dark     bool

	cache    string
	cacheKey string
}

// NewHelpOverlay creates a help overlay for the given sections.
func NewHelpOverlay(sections ...HelpSection) *HelpOverlay {
	return &HelpOverlay{Sections: sections, Width: 80, Dark: true}
}

// Markdown returns the overlay source.
func (h *HelpOverlay) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Keyboard shortcuts\n\n")
	for _, sec := range h.Sections {
		fmt.Fprintf(&sb, "## %s\n\n", sec.Title)
		sb.WriteString("| Key | Action |\n|---|---|\n")
		for _, b := range sec.Bindings {
			if !b.Enabled() {
				continue
			}
			help := b.Help()
			fmt.Fprintf(&sb, "| `%s` | %s |\n", help.Key, help.Desc)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("Drop files into the drop folder's `profile` or `media` directory to attach them.\n")
	return sb.String()
}

// View renders the overlay. Rendering falls back to the raw markdown when
// glamour cannot build a renderer.
func (h *HelpOverlay) View() string {
	width := h.Width
	if width < 40 {
		width = 40
	}
	src := h.Markdown()
	cacheKey := fmt.Sprintf("%d:%t:%d", width, h.Dark, len(src))
	if h.cache != "" && h.cacheKey == cacheKey {
		return h.cache
	}

	style := "light"
	if h.Dark {
		style = "dark"
	}

	out := src
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width-4),
	)
	if err == nil {
		if rendered, rerr := r.Render(src); rerr == nil {
			out = rendered
		}
	}

	h.cache = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.FocusRing).
		Padding(0, 1).
		Render(strings.TrimRight(out, "\n"))
	h.cacheKey = cacheKey
	return h.cache
}
