// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tweetgen/internal/export"
)

// ExportDoneMsg reports the end of one export.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// exportCmd runs one export off the update loop. The request is built by
// the caller so the capture reflects the screen at the moment of the key
// press.
func exportCmd(ctx context.Context, p *export.Pipeline, req export.Request) tea.Cmd {
	return func() tea.Msg {
		path, err := p.Export(ctx, req)
		return ExportDoneMsg{Path: path, Err: err}
	}
}
