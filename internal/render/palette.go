// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

// Palette holds the card colors for one theme.
type Palette struct {
	Background string
	Border     string
	Text       string
	Muted      string // 70% foreground
	MutedTerm  string // Muted flattened onto Background
	Entity     string
	Liked      string
	AvatarFrom string
	AvatarTo   string
}

var (
	darkPalette = Palette{
		Background: "#000000",
		Border:     "#1f2937",
		Text:       "#ffffff",
		Muted:      "rgba(255, 255, 255, 0.7)",
		MutedTerm:  "#b3b3b3",
		Entity:     "#d1d5db",
		Liked:      "#ef4444",
		AvatarFrom: "#9ca3af",
		AvatarTo:   "#374151",
	}
	lightPalette = Palette{
		Background: "#ffffff",
		Border:     "#e5e7eb",
		Text:       "#000000",
		Muted:      "rgba(0, 0, 0, 0.7)",
		MutedTerm:  "#4d4d4d",
		Entity:     "#4b5563",
		Liked:      "#ef4444",
		AvatarFrom: "#9ca3af",
		AvatarTo:   "#374151",
	}
)

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

// Badge fill colors.
const (
	BadgeBlueColor = "#1d9bf0"
	BadgeGoldColor = "#e2b719"
)
