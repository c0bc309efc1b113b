// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tweetgen/internal/export"
	"github.com/jeranaias/tweetgen/internal/theme"
	"github.com/jeranaias/tweetgen/internal/ui/components"
	"github.com/jeranaias/tweetgen/internal/ui/editor"
	"github.com/jeranaias/tweetgen/internal/ui/styles"
)

// Update routes messages: screen keys first, then the editor.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ExportDoneMsg:
		return m.handleExportDone(msg)

	case components.AlertMsg:
		m.toasts.AddError(msg.Message)
		return m, m.deps.Alerts.Listen()

	case components.ToastTickMsg:
		m.toasts.Tick()
		return m, components.ToastTickCmd()

	case editor.NoticeMsg:
		if msg.Err != nil {
			m.toasts.AddError(msg.Err.Error())
		} else {
			m.toasts.AddSuccess(msg.Text)
		}
		return m, nil

	case spinner.TickMsg:
		if m.exporting == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Dismiss) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Dismiss):
		m.toasts.DismissAll()
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m.startExport(m.override)

	case key.Matches(msg, m.keys.ExportLight):
		return m.startExport(theme.OverrideLight)

	case key.Matches(msg, m.keys.ExportDark):
		return m.startExport(theme.OverrideDark)

	case key.Matches(msg, m.keys.CycleOverride):
		m.override = m.override.Next()
		return m, nil

	case key.Matches(msg, m.keys.ToggleTheme):
		if err := m.deps.Theme.Toggle(); err != nil {
			m.toasts.AddWarning(fmt.Sprintf("Theme switched to %s but could not be saved.", m.deps.Theme.Name()))
		}
		m.spinner.Style = m.styles.Spinner
		m.help.Dark = m.deps.Theme.IsDark()
		return m, nil

	case key.Matches(msg, m.keys.Like):
		m.deps.Session.ToggleLike()
		m.editor.Sync()
		return m, nil

	case key.Matches(msg, m.keys.Retweet):
		m.deps.Session.ToggleRetweet()
		m.editor.Sync()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// startExport sets the preview override to o and captures the preview.
// The request is snapshotted here; a nil target is passed through so the
// pipeline raises its not-ready alert.
func (m Model) startExport(o theme.Override) (tea.Model, tea.Cmd) {
	m.override = o
	req := export.Request{
		Target:           m.CaptureTarget(),
		Override:         o,
		IsDark:           m.deps.Theme.IsDark(),
		DevicePixelRatio: m.opts.DevicePixelRatio,
	}

	m.exporting++
	cmds := []tea.Cmd{exportCmd(m.deps.Context, m.deps.Pipeline, req)}
	if m.exporting == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleExportDone(msg ExportDoneMsg) (tea.Model, tea.Cmd) {
	if m.exporting > 0 {
		m.exporting--
	}

	switch {
	case msg.Err == nil:
		m.toasts.AddSuccess("Saved " + msg.Path)
	case errors.Is(msg.Err, export.ErrCaptureTargetMissing):
		// alert already raised by the pipeline
	default:
		m.deps.Logger.Warnw("export failed", "error", msg.Err)
	}
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.ready = true
	m.width, m.height = width, height
	m.styles.SetSize(width, height)
	m.statusBar.SetWidth(width)
	m.help.Width = width - 4

	if m.styles.GetLayoutMode() == styles.LayoutWide {
		m.editor.SetWidth(width - previewColumns(width) - 4)
	} else {
		m.editor.SetWidth(width - 4)
	}
}
