// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/tweetgen/internal/media"
	"github.com/jeranaias/tweetgen/internal/post"
	"github.com/jeranaias/tweetgen/internal/util"
)

// =============================================================================
// TERMINAL PREVIEW
// =============================================================================

// MinTerminalWidth is the narrowest card Terminal will draw.
const MinTerminalWidth = 24

// Terminal draws the card with Lip Gloss for the live preview. width is the
// total width including the border.
func Terminal(c Card, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	p := PaletteFor(c.Dark)
	inner := width - 4 // border + horizontal padding

	text := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(p.MutedTerm))
	entity := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Entity))

	lines := []string{
		header(c, p, inner),
		"",
		body(c, text, entity, inner),
	}
	if c.Media != nil {
		lines = append(lines, "", muted.Render(util.TruncateWidth(mediaLabel(c.Media, c.MediaType), inner)))
	}
	lines = append(lines, "", metricsRow(c, p, muted, entity, inner))

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.Border)).
		Background(lipgloss.Color(p.Background)).
		Padding(0, 1).
		Width(width - 2)

	return frame.Render(strings.Join(lines, "\n"))
}

func header(c Card, p Palette, inner int) string {
	avatar := avatarGlyph(c.Avatar)
	avatarStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(p.AvatarTo)).
		Bold(true)

	badge := ""
	switch c.Badge {
	case post.BadgeBlue:
		badge = " " + lipgloss.NewStyle().Foreground(lipgloss.Color(BadgeBlueColor)).Render("✔")
	case post.BadgeGold:
		badge = " " + lipgloss.NewStyle().Foreground(lipgloss.Color(BadgeGoldColor)).Render("✔")
	}

	meta := fmt.Sprintf(" @%s · %s", c.Handle, c.Timestamp)
	nameRoom := inner - util.StringWidth(avatar) - 1 - lipgloss.Width(badge) - util.StringWidth(meta)
	if nameRoom < 4 {
		// Give the name priority and cut the meta instead.
		nameRoom = inner / 2
		meta = util.TruncateWidth(meta, inner-util.StringWidth(avatar)-1-lipgloss.Width(badge)-nameRoom)
	}
	name := util.TruncateWidth(c.DisplayName, nameRoom)

	return avatarStyle.Render(avatar) + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text)).Bold(true).Render(name) +
		badge +
		lipgloss.NewStyle().Foreground(lipgloss.Color(p.MutedTerm)).Render(meta)
}

func avatarGlyph(a Avatar) string {
	if a.HasImage() {
		return "(◉)"
	}
	initials := util.TruncateRunes(a.Initials, 3)
	if initials == "" {
		initials = "?"
	}
	return "(" + initials + ")"
}

func body(c Card, text, entity lipgloss.Style, inner int) string {
	words := make([]string, len(c.Tokens))
	for i, t := range c.Tokens {
		if t.IsEntity() {
			words[i] = entity.Render(t.Text)
		} else {
			words[i] = text.Render(t.Text)
		}
	}
	return lipgloss.NewStyle().Width(inner).Render(strings.Join(words, " "))
}

func mediaLabel(ref *media.Reference, kind media.Kind) string {
	label := fmt.Sprintf("[%s %s", kind, ref.Name)
	if ref.Width > 0 && ref.Height > 0 {
		label += fmt.Sprintf(" %d×%d", ref.Width, ref.Height)
	}
	return label + "]"
}

func metricsRow(c Card, p Palette, muted, entity lipgloss.Style, inner int) string {
	retweet := muted
	if c.Retweeted {
		retweet = entity
	}
	like := muted
	heart := "♡"
	if c.Liked {
		like = lipgloss.NewStyle().Foreground(lipgloss.Color(p.Liked))
		heart = "♥"
	}

	cells := []string{
		muted.Render("◯ " + c.Metrics.Comments),
		retweet.Render("⇄ " + c.Metrics.Retweets),
		like.Render(heart + " " + c.Metrics.Likes),
		muted.Render("▮ " + c.Metrics.Views),
	}

	used := 0
	for _, cell := range cells {
		used += lipgloss.Width(cell)
	}
	gap := 2
	if len(cells) > 1 && inner > used {
		gap = (inner - used) / (len(cells) - 1)
		if gap < 2 {
			gap = 2
		}
	}
	return strings.Join(cells, strings.Repeat(" ", gap))
}
