// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package generator

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the screen-level bindings. Everything else goes to the
// editor form.
type KeyMap struct {
	Export        key.Binding
	ExportLight   key.Binding
	ExportDark    key.Binding
	CycleOverride key.Binding
	ToggleTheme   key.Binding
	Like          key.Binding
	Retweet       key.Binding
	Help          key.Binding
	Dismiss       key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default screen bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Export: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("C-s", "download"),
		),
		ExportLight: key.NewBinding(
			key.WithKeys("alt+l"),
			key.WithHelp("M-l", "download light"),
		),
		ExportDark: key.NewBinding(
			key.WithKeys("alt+d"),
			key.WithHelp("M-d", "download dark"),
		),
		CycleOverride: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("C-o", "card theme"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "app theme"),
		),
		Like: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "like"),
		),
		Retweet: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "retweet"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Export, k.CycleOverride, k.ToggleTheme, k.Like, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Export, k.ExportLight, k.ExportDark, k.CycleOverride},
		{k.ToggleTheme, k.Like, k.Retweet},
		{k.Help, k.Dismiss, k.Quit},
	}
}
