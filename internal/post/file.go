// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package post

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/tweetgen/internal/media"
)

// fileDoc is the on-disk TOML layout of a post. Missing keys keep their
// Default() values.
type fileDoc struct {
	Post
	ProfileImage string `toml:"profile_image"`
	Media        string `toml:"media"`
}

// LoadFile reads a post from a TOML file. Relative profile_image and media
// paths are resolved against the file's directory and ingested.
func LoadFile(ctx context.Context, path string, maxBytes int64) (Post, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Post{}, fmt.Errorf("failed to read post file: %w", err)
	}
	return Decode(ctx, data, filepath.Dir(path), maxBytes)
}

// Decode parses TOML post data. baseDir anchors relative media paths.
func Decode(ctx context.Context, data []byte, baseDir string, maxBytes int64) (Post, error) {
	doc := fileDoc{Post: Default()}
	_, err := toml.Decode(string(data), &doc)
	if err != nil {
		return Post{}, fmt.Errorf("failed to parse post file: %w", err)
	}

	p := doc.Post
	if p.VerificationBadge, err = ParseBadge(string(p.VerificationBadge)); err != nil {
		return Post{}, err
	}
	if p.TimestampFormat, err = ParseTimestampFormat(string(p.TimestampFormat)); err != nil {
		return Post{}, err
	}

	if doc.ProfileImage != "" {
		res, err := media.IngestProfile(ctx, resolve(baseDir, doc.ProfileImage), maxBytes)
		if err != nil {
			return Post{}, fmt.Errorf("profile_image: %w", err)
		}
		p = p.SetProfileImage(res.Ref)
	}
	if doc.Media != "" {
		res, err := media.Ingest(ctx, resolve(baseDir, doc.Media), maxBytes)
		if err != nil {
			return Post{}, fmt.Errorf("media: %w", err)
		}
		p = p.SetMedia(res.Ref, res.Kind)
	}
	return p, nil
}

func resolve(baseDir, path string) string {
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
