// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editor

import (
	"github.com/jeranaias/tweetgen/internal/media"
	"github.com/jeranaias/tweetgen/internal/post"
)

// FieldID identifies one row of the form, in focus order.
type FieldID int

const (
	FieldDisplayName FieldID = iota
	FieldHandle
	FieldContent
	FieldTimestampFormat
	FieldTimestamp
	FieldBadge
	FieldLikes
	FieldRetweets
	FieldComments
	FieldViews
	FieldProfilePath
	FieldMediaPath
	fieldCount
)

type fieldKind int

const (
	kindText fieldKind = iota
	kindArea
	kindChoice
	kindPath
)

type fieldSpec struct {
	label       string
	placeholder string
	kind        fieldKind
}

var fieldSpecs = [fieldCount]fieldSpec{
	FieldDisplayName:     {"Display name", "Your Name", kindText},
	FieldHandle:          {"Handle", "@username", kindText},
	FieldContent:         {"Content", "What's happening?", kindArea},
	FieldTimestampFormat: {"Time format", "", kindChoice},
	FieldTimestamp:       {"Time", "e.g., 2h, 1d, 3w", kindText},
	FieldBadge:           {"Badge", "", kindChoice},
	FieldLikes:           {"Likes", "42 or 4.2k", kindText},
	FieldRetweets:        {"Retweets", "12 or 1.2k", kindText},
	FieldComments:        {"Comments", "8 or 800", kindText},
	FieldViews:           {"Views", "1.2k or 1.2M", kindText},
	FieldProfilePath:     {"Profile photo", "path to an image, enter to attach", kindPath},
	FieldMediaPath:       {"Media", "path to an image or video, enter to attach", kindPath},
}

// Label returns the row label.
func (f FieldID) Label() string {
	if f < 0 || f >= fieldCount {
		return ""
	}
	return fieldSpecs[f].label
}

func (f FieldID) kind() fieldKind {
	return fieldSpecs[f].kind
}

// slot maps a path field onto its drop-folder slot.
func (f FieldID) slot() media.Slot {
	if f == FieldProfilePath {
		return media.SlotProfile
	}
	return media.SlotMedia
}

// textOf reads the post value bound to a text field.
func textOf(f FieldID, p post.Post) string {
	switch f {
	case FieldDisplayName:
		return p.DisplayName
	case FieldHandle:
		return p.Handle
	case FieldContent:
		return p.Content
	case FieldTimestamp:
		return p.DisplayTimestamp()
	case FieldLikes:
		return p.Likes.String()
	case FieldRetweets:
		return p.Retweets.String()
	case FieldComments:
		return p.Comments.String()
	case FieldViews:
		return p.Views.String()
	}
	return ""
}

// withText writes v into the post field bound to f. The timestamp row edits
// whichever custom time is currently displayed.
func withText(f FieldID, p post.Post, v string) post.Post {
	switch f {
	case FieldDisplayName:
		p.DisplayName = v
	case FieldHandle:
		p.Handle = v
	case FieldContent:
		p.Content = v
	case FieldTimestamp:
		if p.TimestampFormat == post.TimestampExact {
			p.CustomExactTime = v
		} else {
			p.CustomRelativeTime = v
		}
	case FieldLikes:
		p.Likes = post.NewMetric(v)
	case FieldRetweets:
		p.Retweets = post.NewMetric(v)
	case FieldComments:
		p.Comments = post.NewMetric(v)
	case FieldViews:
		p.Views = post.NewMetric(v)
	}
	return p
}

var badgeOptions = []post.Badge{post.BadgeNone, post.BadgeBlue, post.BadgeGold}

var badgeLabels = map[post.Badge]string{
	post.BadgeNone: "None",
	post.BadgeBlue: "Blue checkmark",
	post.BadgeGold: "Gold badge",
}

var timestampOptions = []post.TimestampFormat{post.TimestampRelative, post.TimestampExact}

var timestampLabels = map[post.TimestampFormat]string{
	post.TimestampRelative: `Relative ("2h")`,
	post.TimestampExact:    `Exact ("12:34 PM")`,
}

// prevBadge cycles backwards through the badge options.
func prevBadge(b post.Badge) post.Badge {
	for i, o := range badgeOptions {
		if o == b {
			return badgeOptions[(i+len(badgeOptions)-1)%len(badgeOptions)]
		}
	}
	return post.BadgeNone
}

// flipTimestamp switches between relative and exact.
func flipTimestamp(f post.TimestampFormat) post.TimestampFormat {
	if f == post.TimestampExact {
		return post.TimestampRelative
	}
	return post.TimestampExact
}
