// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/tweetgen/internal/media"
)

// =============================================================================
// MESSAGES
// =============================================================================

// IngestedMsg delivers a finished file read for a slot. The drop-folder
// watcher produces the same message.
type IngestedMsg struct {
	Slot   media.Slot
	Path   string
	Result media.Result
}

// NoticeMsg asks the parent to surface a toast.
type NoticeMsg struct {
	Text string
	Err  error
}

// =============================================================================
// COMMANDS
// =============================================================================

// ingestCmd reads path for slot off the update loop. An empty path yields
// no command, mirroring media.IngestAsync.
func ingestCmd(ctx context.Context, slot media.Slot, path string, maxBytes int64) tea.Cmd {
	path = expandPath(path)
	if path == "" {
		return nil
	}

	return func() tea.Msg {
		if slot == media.SlotProfile {
			res, err := media.IngestProfile(ctx, path, maxBytes)
			if err != nil {
				res = media.Result{Err: err}
			}
			return IngestedMsg{Slot: slot, Path: path, Result: res}
		}

		done := make(chan media.Result, 1)
		media.IngestAsync(ctx, path, maxBytes, func(res media.Result) {
			done <- res
		})
		select {
		case res := <-done:
			return IngestedMsg{Slot: slot, Path: path, Result: res}
		case <-ctx.Done():
			return IngestedMsg{Slot: slot, Path: path, Result: media.Result{Err: ctx.Err()}}
		}
	}
}

func noticeCmd(n NoticeMsg) tea.Cmd {
	return func() tea.Msg { return n }
}

// expandPath trims the input, strips shell quotes and expands a leading ~.
func expandPath(p string) string {
	p = strings.TrimSpace(p)
	p = strings.Trim(p, `"'`)
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
