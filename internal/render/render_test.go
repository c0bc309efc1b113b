// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/tweetgen/internal/media"
	"github.com/jeranaias/tweetgen/internal/post"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Tweet Generator", "TG"},
		{"ada", "a"},
		{"  Grace   Brewster Hopper ", "GBH"},
		{"", ""},
		{"Émile Zola", "ÉZ"},
		{"Émile", "É"},
		{"Ada\u00a0Lovelace", "A"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Initials(tt.name), tt.name)
	}
}

func TestTokenize_Entities(t *testing.T) {
	tokens := Tokenize("hello @ada see #Go now")
	require.Len(t, tokens, 5)
	assert.Equal(t, TokenText, tokens[0].Kind)
	assert.Equal(t, TokenMention, tokens[1].Kind)
	assert.Equal(t, TokenHashtag, tokens[3].Kind)
	assert.True(t, tokens[3].IsEntity())
	assert.False(t, tokens[4].IsEntity())
}

func TestTokenize_JoinCollapsesWhitespace(t *testing.T) {
	inputs := []string{
		"plain text",
		"two  spaces",
		"line one\nline two",
		"\ttabs\tand #tags\t",
		"",
		"#only",
	}
	for _, in := range inputs {
		want := strings.Join(strings.Fields(in), " ")
		assert.Equal(t, want, JoinTokens(Tokenize(in)), "%q", in)
	}
}

func TestTokenize_KeepsNonBreakingSpaceInWord(t *testing.T) {
	tokens := Tokenize("see #Go\u00a0lang and @ada\u0085x now")
	require.Len(t, tokens, 5)
	assert.Equal(t, Token{Text: "#Go\u00a0lang", Kind: TokenHashtag}, tokens[1])
	assert.Equal(t, Token{Text: "@ada\u0085x", Kind: TokenMention}, tokens[3])
	assert.Equal(t, "see #Go\u00a0lang and @ada\u0085x now", JoinTokens(tokens))
}

func TestBuild(t *testing.T) {
	p := post.Default()
	p.VerificationBadge = post.BadgeGold
	p.TimestampFormat = post.TimestampExact

	c := Build(p, post.Interactions{Liked: true}, true)

	assert.Equal(t, "TG", c.Avatar.Initials)
	assert.False(t, c.Avatar.HasImage())
	assert.Equal(t, "12:34 PM", c.Timestamp)
	assert.True(t, c.HasBadge())
	assert.True(t, c.Liked)
	assert.Equal(t, "dark", c.ThemeName())
	assert.Equal(t, Metrics{Comments: "23", Retweets: "45", Likes: "128", Views: "2,849"}, c.Metrics)
	assert.Nil(t, c.Media)
}

func TestBuild_ProfileImageReplacesInitials(t *testing.T) {
	p := post.Default().SetProfileImage(media.Reference{DataURI: "data:image/png;base64,AA=="})
	c := Build(p, post.Interactions{}, false)

	assert.True(t, c.Avatar.HasImage())
	assert.Empty(t, c.Avatar.Initials)
	assert.Equal(t, "light", c.ThemeName())
}

func TestHTML(t *testing.T) {
	p := post.Default()
	p.VerificationBadge = post.BadgeBlue
	p.Content = "hi <b>there</b> #Go"
	p = p.SetMedia(media.Reference{DataURI: "data:image/png;base64,iVBORw0KGgo=", Name: "x.png"}, media.KindImage)

	doc, err := HTML(Build(p, post.Interactions{}, false), HTMLOptions{Width: NarrowWidth})
	require.NoError(t, err)
	out := string(doc)

	assert.Contains(t, out, `id="tweet-card" data-theme="light"`)
	assert.Contains(t, out, `src="data:image/png;base64,iVBORw0KGgo="`)
	assert.Contains(t, out, BadgeBlueColor)
	assert.Contains(t, out, "width: 375px")
	assert.Contains(t, out, `<span class="entity">#Go</span>`)
	assert.Contains(t, out, "&lt;b&gt;there&lt;/b&gt;")
	assert.NotContains(t, out, "ZgotmplZ")
	assert.Contains(t, out, `setAttribute("data-ready", theme)`)
}

func TestHTML_NoBadgeNoMedia(t *testing.T) {
	doc, err := HTML(Build(post.Default(), post.Interactions{}, true), HTMLOptions{})
	require.NoError(t, err)
	out := string(doc)

	assert.NotContains(t, out, `class="badge"`)
	assert.NotContains(t, out, `class="media"`)
	assert.Contains(t, out, "width: 680px")
	assert.Contains(t, out, ">TG<")
}

func TestReadySelector(t *testing.T) {
	assert.Equal(t, `body[data-ready="dark"]`, ReadySelector("dark"))
	assert.Equal(t, "#tweet-card", CardSelector())
}

func TestTerminal(t *testing.T) {
	p := post.Default()
	p.VerificationBadge = post.BadgeBlue
	p = p.SetMedia(media.Reference{Name: "clip.mp4"}, media.KindVideo)

	out := Terminal(Build(p, post.Interactions{Liked: true}, true), 60)

	assert.Contains(t, out, "(TG)")
	assert.Contains(t, out, "@tweetgen")
	assert.Contains(t, out, "[video clip.mp4]")
	assert.Contains(t, out, "♥ 128")
	assert.Contains(t, out, "2,849")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestTerminal_NarrowWidthIsClamped(t *testing.T) {
	out := Terminal(Build(post.Default(), post.Interactions{}, false), 5)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), MinTerminalWidth)
	}
}
