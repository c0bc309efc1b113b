// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// DefaultMaxBytes caps how much of a file is pulled into memory (64MB).
const DefaultMaxBytes int64 = 64 << 20

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrNoFile is returned when no file path was supplied.
	ErrNoFile = errors.New("no file supplied")
	// ErrUnsupported is returned for files that are neither images nor videos,
	// or for non-images offered as a profile photo.
	ErrUnsupported = errors.New("unsupported media type")
	// ErrTooLarge is returned when a file exceeds the configured size cap.
	ErrTooLarge = errors.New("file too large")
)

// ReadError reports a platform failure while reading a media file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// =============================================================================
// TYPES
// =============================================================================

// Kind classifies an embedded file.
type Kind string

const (
	KindNone  Kind = ""
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Reference is a self-contained embedding of a local file.
type Reference struct {
	// DataURI is "data:<mime>;base64,<payload>".
	DataURI  string
	MimeType string
	Name     string
	Size     int64
	// Width and Height are set for images whose header could be decoded.
	Width  int
	Height int
}

// Result is handed to IngestAsync continuations.
type Result struct {
	Ref  Reference
	Kind Kind
	Err  error
}

// =============================================================================
// INGESTION
// =============================================================================

// Classify maps a mime type onto a Kind: anything starting with "image/" is
// an image, everything else is treated as video.
func Classify(mimeType string) Kind {
	if strings.HasPrefix(mimeType, "image/") {
		return KindImage
	}
	return KindVideo
}

// Ingest reads path fully and encodes it as a data URI reference.
func Ingest(ctx context.Context, path string, maxBytes int64) (Result, error) {
	if path == "" {
		return Result{}, ErrNoFile
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return Result{}, &ReadError{Path: path, Err: err}
	}
	if info.IsDir() {
		return Result{}, &ReadError{Path: path, Err: errors.New("is a directory")}
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return Result{}, fmt.Errorf("%w: %s is %d bytes (limit %d)", ErrTooLarge, filepath.Base(path), info.Size(), maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, &ReadError{Path: path, Err: err}
	}

	mimeType := MimeType(path, data)
	if !strings.HasPrefix(mimeType, "image/") && !strings.HasPrefix(mimeType, "video/") {
		return Result{}, fmt.Errorf("%w: %s (%s)", ErrUnsupported, filepath.Base(path), mimeType)
	}

	ref := Reference{
		DataURI:  DataURI(mimeType, data),
		MimeType: mimeType,
		Name:     filepath.Base(path),
		Size:     int64(len(data)),
	}
	kind := Classify(mimeType)
	if kind == KindImage {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
			ref.Width, ref.Height = cfg.Width, cfg.Height
		}
	}

	return Result{Ref: ref, Kind: kind}, nil
}

// IngestProfile is Ingest restricted to images.
func IngestProfile(ctx context.Context, path string, maxBytes int64) (Result, error) {
	res, err := Ingest(ctx, path, maxBytes)
	if err != nil {
		return res, err
	}
	if res.Kind != KindImage {
		return Result{}, fmt.Errorf("%w: profile photo must be an image, got %s", ErrUnsupported, res.Ref.MimeType)
	}
	return res, nil
}

// IngestAsync runs Ingest on its own goroutine and passes the outcome to
// done. An empty path is a no-op and done is never called.
func IngestAsync(ctx context.Context, path string, maxBytes int64, done func(Result)) {
	if path == "" || done == nil {
		return
	}
	go func() {
		res, err := Ingest(ctx, path, maxBytes)
		if err != nil {
			res = Result{Err: err}
		}
		done(res)
	}()
}

// DataURI builds a base64 data URI for data.
func DataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// MimeType resolves the mime type of a file, trusting a known extension
// first and falling back to content sniffing.
func MimeType(path string, data []byte) string {
	if m := mimeByExtension(path); m != "" {
		return m
	}
	sniffed := http.DetectContentType(data)
	if i := strings.IndexByte(sniffed, ';'); i >= 0 {
		sniffed = sniffed[:i]
	}
	return sniffed
}

func mimeByExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	case ".svg":
		return "image/svg+xml"
	case ".mp4", ".m4v":
		return "video/mp4"
	case ".webm":
		return "video/webm"
	case ".mov":
		return "video/quicktime"
	case ".ogv":
		return "video/ogg"
	}
	return ""
}
