// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines the keyboard bindings handled by the editor form.
type KeyMap struct {
	NextField       key.Binding
	PrevField       key.Binding
	CycleChoice     key.Binding
	CycleBack       key.Binding
	Attach          key.Binding
	CycleBadge      key.Binding
	ToggleTimestamp key.Binding
	ClearProfile    key.Binding
	ClearMedia      key.Binding
}

// DefaultKeyMap returns the default editor bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "previous field"),
		),
		CycleChoice: key.NewBinding(
			key.WithKeys("right", " ", "enter"),
			key.WithHelp("→/space", "next option"),
		),
		CycleBack: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		Attach: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "attach file"),
		),
		CycleBadge: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("C-b", "cycle badge"),
		),
		ToggleTimestamp: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("C-f", "relative/exact time"),
		),
		ClearProfile: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "remove photo"),
		),
		ClearMedia: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("C-x", "remove media"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.CycleBadge, k.ToggleTimestamp}
}

// FullHelp returns the bindings grouped for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.CycleChoice, k.CycleBack},
		{k.Attach, k.ClearProfile, k.ClearMedia},
		{k.CycleBadge, k.ToggleTimestamp},
	}
}
