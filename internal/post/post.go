// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package post

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jeranaias/tweetgen/internal/media"
)

// =============================================================================
// ENUMERATIONS
// =============================================================================

// Badge is the verification badge shown next to the display name.
type Badge string

const (
	BadgeNone Badge = "none"
	BadgeBlue Badge = "blue"
	BadgeGold Badge = "gold"
)

// ParseBadge accepts "none", "blue" or "gold" (case-insensitive); an empty
// string is treated as none.
func ParseBadge(s string) (Badge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return BadgeNone, nil
	case "blue":
		return BadgeBlue, nil
	case "gold":
		return BadgeGold, nil
	}
	return BadgeNone, fmt.Errorf("unknown verification badge %q", s)
}

// Next cycles none -> blue -> gold -> none.
func (b Badge) Next() Badge {
	switch b {
	case BadgeBlue:
		return BadgeGold
	case BadgeGold:
		return BadgeNone
	default:
		return BadgeBlue
	}
}

// TimestampFormat selects which timestamp field is displayed.
type TimestampFormat string

const (
	TimestampRelative TimestampFormat = "relative"
	TimestampExact    TimestampFormat = "exact"
)

// ParseTimestampFormat accepts "relative" or "exact"; empty means relative.
func ParseTimestampFormat(s string) (TimestampFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "relative":
		return TimestampRelative, nil
	case "exact":
		return TimestampExact, nil
	}
	return TimestampRelative, fmt.Errorf("unknown timestamp format %q", s)
}

// =============================================================================
// POST
// =============================================================================

// Post is the mock message being edited and previewed.
type Post struct {
	DisplayName string `toml:"display_name"`
	Handle      string `toml:"handle"`
	Content     string `toml:"content"`

	Likes    Metric `toml:"likes"`
	Retweets Metric `toml:"retweets"`
	Comments Metric `toml:"comments"`
	Views    Metric `toml:"views"`

	ProfileImage *media.Reference `toml:"-"`
	Media        *media.Reference `toml:"-"`
	MediaType    media.Kind       `toml:"-"`

	VerificationBadge Badge `toml:"verification_badge"`

	TimestampFormat    TimestampFormat `toml:"timestamp_format"`
	CustomRelativeTime string          `toml:"relative_time"`
	CustomExactTime    string          `toml:"exact_time"`
}

// Default returns the post the editor starts with.
func Default() Post {
	return Post{
		DisplayName:        "Tweet Generator",
		Handle:             "tweetgen",
		Content:            "Hi everyone! 👋 Welcome to Tweet Generator - Create and customize beautiful tweet mockups in seconds! ✨ #TweetGen #Design #SocialMedia",
		Likes:              NewMetric("128"),
		Retweets:           NewMetric("45"),
		Comments:           NewMetric("23"),
		Views:              NewMetric("2,849"),
		VerificationBadge:  BadgeNone,
		TimestampFormat:    TimestampRelative,
		CustomRelativeTime: "1h",
		CustomExactTime:    "12:34 PM",
	}
}

// DisplayTimestamp returns the timestamp selected by TimestampFormat.
func (p Post) DisplayTimestamp() string {
	if p.TimestampFormat == TimestampExact {
		return p.CustomExactTime
	}
	return p.CustomRelativeTime
}

// WithTimestampFormat switches the displayed timestamp. Both custom fields
// are left untouched.
func (p Post) WithTimestampFormat(f TimestampFormat) Post {
	p.TimestampFormat = f
	return p
}

// SetMedia attaches media together with its kind.
func (p Post) SetMedia(ref media.Reference, kind media.Kind) Post {
	p.Media = &ref
	p.MediaType = kind
	return p
}

// ClearMedia removes media and its kind together.
func (p Post) ClearMedia() Post {
	p.Media = nil
	p.MediaType = media.KindNone
	return p
}

// SetProfileImage replaces the profile photo.
func (p Post) SetProfileImage(ref media.Reference) Post {
	p.ProfileImage = &ref
	return p
}

// ClearProfileImage removes the profile photo so initials are shown instead.
func (p Post) ClearProfileImage() Post {
	p.ProfileImage = nil
	return p
}

// ErrInconsistentMedia is returned by Validate when media and media type disagree.
var ErrInconsistentMedia = errors.New("media and media type must be set together")

// Validate checks structural invariants. Field contents are never validated.
func (p Post) Validate() error {
	hasMedia := p.Media != nil
	hasKind := p.MediaType != media.KindNone
	if hasMedia != hasKind {
		return ErrInconsistentMedia
	}
	if hasKind && p.MediaType != media.KindImage && p.MediaType != media.KindVideo {
		return fmt.Errorf("unknown media type %q", p.MediaType)
	}
	return nil
}
