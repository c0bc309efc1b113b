// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/jeranaias/tweetgen/internal/media"
	"github.com/jeranaias/tweetgen/internal/post"
)

// =============================================================================
// TOKENS
// =============================================================================

// TokenKind classifies a word of post content.
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenHashtag
	TokenMention
)

// Token is one whitespace-delimited word of post content.
type Token struct {
	Text string
	Kind TokenKind
}

// IsEntity reports whether the token gets entity styling.
func (t Token) IsEntity() bool {
	return t.Kind == TokenHashtag || t.Kind == TokenMention
}

// Tokenize splits content into words. Runs of ASCII whitespace, newlines
// included, act as a single separator and are not preserved. Other
// Unicode spaces such as U+00A0 stay inside the word.
func Tokenize(content string) []Token {
	words := splitWords(content)
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		kind := TokenText
		switch w[0] {
		case '#':
			kind = TokenHashtag
		case '@':
			kind = TokenMention
		}
		tokens = append(tokens, Token{Text: w, Kind: kind})
	}
	return tokens
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, isASCIISpace)
}

// JoinTokens re-joins tokens with single spaces.
func JoinTokens(tokens []Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.Text
	}
	return strings.Join(words, " ")
}

// Initials returns the first character of each whitespace-separated word of
// the NFC-normalised name.
func Initials(name string) string {
	var sb strings.Builder
	for _, w := range splitWords(norm.NFC.String(name)) {
		r, _ := utf8.DecodeRuneInString(w)
		sb.WriteRune(r)
	}
	return sb.String()
}

// =============================================================================
// CARD
// =============================================================================

// Avatar is either an embedded image or synthesized initials.
type Avatar struct {
	ImageURI string
	Initials string
}

// HasImage reports whether a profile image is shown.
func (a Avatar) HasImage() bool {
	return a.ImageURI != ""
}

// Metrics are the four engagement counters exactly as stored.
type Metrics struct {
	Comments string
	Retweets string
	Likes    string
	Views    string
}

// Card is the fully resolved view of a post for one theme. It is the single
// input of both the HTML and the terminal renderers.
type Card struct {
	DisplayName string
	Handle      string
	Badge       post.Badge
	Timestamp   string
	Tokens      []Token
	Avatar      Avatar

	Media     *media.Reference
	MediaType media.Kind

	Metrics   Metrics
	Liked     bool
	Retweeted bool

	Dark bool
}

// Build maps a post, the viewer's interactions and the theme onto a Card.
func Build(p post.Post, in post.Interactions, dark bool) Card {
	c := Card{
		DisplayName: p.DisplayName,
		Handle:      p.Handle,
		Badge:       p.VerificationBadge,
		Timestamp:   p.DisplayTimestamp(),
		Tokens:      Tokenize(p.Content),
		Metrics: Metrics{
			Comments: p.Comments.String(),
			Retweets: p.Retweets.String(),
			Likes:    p.Likes.String(),
			Views:    p.Views.String(),
		},
		Liked:     in.Liked,
		Retweeted: in.Retweeted,
		Dark:      dark,
	}

	if p.ProfileImage != nil {
		c.Avatar.ImageURI = p.ProfileImage.DataURI
	} else {
		c.Avatar.Initials = Initials(p.DisplayName)
	}

	if p.Media != nil && p.MediaType != media.KindNone {
		ref := *p.Media
		c.Media = &ref
		c.MediaType = p.MediaType
	}
	return c
}

// ThemeName returns "dark" or "light".
func (c Card) ThemeName() string {
	if c.Dark {
		return "dark"
	}
	return "light"
}

// HasBadge reports whether a verification icon is drawn.
func (c Card) HasBadge() bool {
	return c.Badge == post.BadgeBlue || c.Badge == post.BadgeGold
}
