// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tweetgen/internal/render"
	"github.com/jeranaias/tweetgen/internal/ui/components"
	"github.com/jeranaias/tweetgen/internal/ui/styles"
)

// previewColumns is the width given to the preview in the wide layout.
func previewColumns(width int) int {
	cols := width / 2
	if cols > 72 {
		cols = 72
	}
	if cols < render.MinTerminalWidth+4 {
		cols = render.MinTerminalWidth + 4
	}
	return cols
}

// View renders the screen.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	t := m.styles
	header := m.headerView()
	status := m.statusView()

	var body string
	if m.showHelp {
		body = lipgloss.Place(m.width, m.bodyHeight(header, status), lipgloss.Center, lipgloss.Center, m.help.View())
	} else {
		body = m.bodyView()
	}

	sections := []string{header, body}
	if stack := components.RenderToastStack(m.toasts.Toasts(), m.width); stack != "" {
		sections = append(sections, stack)
	}
	sections = append(sections, status)
	return t.App.Render(strings.Join(sections, "\n"))
}

func (m Model) headerView() string {
	t := m.styles
	title := t.HeaderTitle.Render("Mock Tweet Generator")
	if m.opts.CompactMode {
		return t.Header.Width(m.width).Render(title)
	}
	sub := t.HeaderSubtitle.Render("Create stunning fake tweets in seconds")
	return t.Header.Width(m.width).Render(title + "  " + sub)
}

func (m Model) bodyView() string {
	t := m.styles

	if t.GetLayoutMode() == styles.LayoutWide {
		cols := previewColumns(m.width)
		preview := t.Panel.Width(cols).Render(m.previewView(cols - 4))
		form := t.PanelFocused.Width(m.width - cols - 2).Render(m.editor.View())
		return lipgloss.JoinHorizontal(lipgloss.Top, preview, form)
	}

	preview := t.Panel.Width(m.width - 2).Render(m.previewView(m.width - 6))
	form := t.PanelFocused.Width(m.width - 2).Render(m.editor.View())
	return lipgloss.JoinVertical(lipgloss.Left, preview, form)
}

func (m Model) previewView(width int) string {
	t := m.styles
	card := render.Build(m.deps.Session.Store().Get(), m.deps.Session.Interactions(), m.previewDark())
	title := t.PanelTitle.Render("Live preview (" + card.ThemeName() + ")")
	return title + "\n" + render.Terminal(card, width)
}

func (m Model) statusView() string {
	m.statusBar.Theme = m.deps.Theme.Name()
	m.statusBar.Override = string(m.override)
	m.statusBar.Layout = m.styles.GetLayoutMode().String()
	m.statusBar.Busy = ""
	if m.exporting > 0 {
		m.statusBar.Busy = m.spinner.View() + " exporting"
	}
	m.statusBar.Shortcuts = append(m.keys.ShortHelp(), m.editor.Keys().ShortHelp()...)
	return m.statusBar.View()
}

func (m Model) bodyHeight(parts ...string) int {
	h := m.height
	for _, p := range parts {
		h -= lipgloss.Height(p)
	}
	if h < 5 {
		h = 5
	}
	return h
}
