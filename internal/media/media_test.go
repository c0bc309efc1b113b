// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package media

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		mime string
		want Kind
	}{
		{"image/png", KindImage},
		{"image/jpeg", KindImage},
		{"video/mp4", KindVideo},
		{"video/webm", KindVideo},
		{"application/octet-stream", KindVideo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.mime), tt.mime)
	}
}

func TestIngest_Image(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avatar.png")
	writePNG(t, path, 4, 3)

	res, err := Ingest(context.Background(), path, DefaultMaxBytes)
	require.NoError(t, err)

	assert.Equal(t, KindImage, res.Kind)
	assert.Equal(t, "image/png", res.Ref.MimeType)
	assert.True(t, strings.HasPrefix(res.Ref.DataURI, "data:image/png;base64,"))
	assert.Equal(t, "avatar.png", res.Ref.Name)
	assert.Equal(t, 4, res.Ref.Width)
	assert.Equal(t, 3, res.Ref.Height)
}

func TestIngest_VideoByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.mp4")
	require.NoError(t, os.WriteFile(path, []byte("\x00\x00\x00\x18ftypmp42"), 0644))

	res, err := Ingest(context.Background(), path, DefaultMaxBytes)
	require.NoError(t, err)
	assert.Equal(t, KindVideo, res.Kind)
	assert.Equal(t, "video/mp4", res.Ref.MimeType)
}

func TestIngest_SniffsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.bin")
	writePNG(t, path, 1, 1)

	res, err := Ingest(context.Background(), path, DefaultMaxBytes)
	require.NoError(t, err)
	assert.Equal(t, "image/png", res.Ref.MimeType)
	assert.Equal(t, KindImage, res.Kind)
}

func TestIngest_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Ingest(context.Background(), "", DefaultMaxBytes)
	assert.ErrorIs(t, err, ErrNoFile)

	_, err = Ingest(context.Background(), filepath.Join(dir, "missing.png"), DefaultMaxBytes)
	var readErr *ReadError
	require.True(t, errors.As(err, &readErr), "want *ReadError, got %v", err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("just some text"), 0644))
	_, err = Ingest(context.Background(), text, DefaultMaxBytes)
	assert.ErrorIs(t, err, ErrUnsupported)

	big := filepath.Join(dir, "big.png")
	writePNG(t, big, 32, 32)
	_, err = Ingest(context.Background(), big, 10)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestIngestProfile_RejectsVideo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.webm")
	require.NoError(t, os.WriteFile(path, []byte{0x1A, 0x45, 0xDF, 0xA3}, 0644))

	_, err := IngestProfile(context.Background(), path, DefaultMaxBytes)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestIngestAsync_EmptyPathIsNoop(t *testing.T) {
	called := make(chan struct{}, 1)
	IngestAsync(context.Background(), "", DefaultMaxBytes, func(Result) { called <- struct{}{} })

	select {
	case <-called:
		t.Fatal("continuation must not run for an empty path")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestIngestAsync_SurfacesReadFailure(t *testing.T) {
	got := make(chan Result, 1)
	IngestAsync(context.Background(), filepath.Join(t.TempDir(), "gone.png"), DefaultMaxBytes, func(r Result) { got <- r })

	select {
	case r := <-got:
		var readErr *ReadError
		assert.True(t, errors.As(r.Err, &readErr))
		assert.Empty(t, r.Ref.DataURI)
	case <-time.After(2 * time.Second):
		t.Fatal("continuation was never invoked")
	}
}

func TestWatcher_IngestsDroppedProfile(t *testing.T) {
	dir := t.TempDir()
	got := make(chan Slot, 1)

	w, err := NewWatcher(WatcherConfig{Dir: dir, Debounce: 20 * time.Millisecond, RatePerSec: 50},
		func(slot Slot, res Result) {
			if res.Err == nil {
				got <- slot
			}
		}, zap.NewNop().Sugar())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Close()

	writePNG(t, filepath.Join(dir, "profile", "me.png"), 2, 2)

	select {
	case slot := <-got:
		assert.Equal(t, SlotProfile, slot)
	case <-time.After(5 * time.Second):
		t.Fatal("dropped file was not ingested")
	}
}

func TestWatcher_SlotFor(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(WatcherConfig{Dir: dir}, nil, nil)
	require.NoError(t, err)
	defer w.Close()

	slot, ok := w.SlotFor(filepath.Join(dir, "media", "clip.mp4"))
	assert.True(t, ok)
	assert.Equal(t, SlotMedia, slot)

	_, ok = w.SlotFor(filepath.Join(dir, "media", ".tmp-123"))
	assert.False(t, ok)

	_, ok = w.SlotFor(filepath.Join(dir, "other", "x.png"))
	assert.False(t, ok)
}
