// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jeranaias/tweetgen/internal/post"
	"github.com/jeranaias/tweetgen/internal/render"
	"github.com/jeranaias/tweetgen/internal/theme"
	"github.com/jeranaias/tweetgen/internal/util"
)

// =============================================================================
// ERRORS AND ALERTS
// =============================================================================

// User-facing alert texts.
const (
	AlertNotReady      = "Tweet not ready for download. Please try again."
	AlertEmptyImage    = "Failed to generate image. Please try again."
	AlertDownloadError = "An error occurred while downloading the image. Please try again."
)

// ErrCaptureTargetMissing is returned when no preview is laid out yet.
var ErrCaptureTargetMissing = errors.New("capture target not available")

// RasterizationError reports a failed or empty rasterization.
type RasterizationError struct {
	// Empty is set when the rasterizer succeeded but produced no bytes.
	Empty bool
	Err   error
}

func (e *RasterizationError) Error() string {
	if e.Empty {
		return "rasterization produced no image data"
	}
	return fmt.Sprintf("rasterization failed: %v", e.Err)
}

func (e *RasterizationError) Unwrap() error {
	return e.Err
}

// Notifier surfaces a blocking user-visible alert.
type Notifier interface {
	Alert(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Alert implements Notifier.
func (f NotifierFunc) Alert(message string) { f(message) }

// =============================================================================
// REQUEST
// =============================================================================

// Target is the visible preview at the moment of export: a snapshot of the
// post and the width of the layout it is drawn in.
type Target struct {
	Post         post.Post
	Interactions post.Interactions
	Width        int
}

// Request describes one export.
type Request struct {
	// Target is nil when no preview layout is visible.
	Target *Target
	// Override selects the card theme; system defers to IsDark.
	Override theme.Override
	IsDark   bool
	// DevicePixelRatio of the display; clamped into [2, 3].
	DevicePixelRatio float64
}

// =============================================================================
// PIPELINE
// =============================================================================

// DefaultQuality is the JPEG quality used when Options.Quality is unset.
const DefaultQuality = 0.95

// Options tunes the pipeline.
type Options struct {
	// Quality is the JPEG quality in (0, 1].
	Quality float64
	// SettleDelay is an extra wait after the override is applied and
	// before capture. Zero relies on the render acknowledgment alone.
	SettleDelay time.Duration
	// Timeout bounds a single export. Zero disables it.
	Timeout time.Duration
}

// Pipeline renders, rasterizes and saves cards. It holds no per-export
// state, so concurrent exports proceed independently.
type Pipeline struct {
	rasterizer Rasterizer
	saver      Saver
	notifier   Notifier
	logger     *zap.SugaredLogger
	opts       Options

	now func() time.Time
}

// NewPipeline wires a pipeline. notifier and logger may be nil.
func NewPipeline(r Rasterizer, s Saver, n Notifier, logger *zap.SugaredLogger, opts Options) *Pipeline {
	if n == nil {
		n = NotifierFunc(func(string) {})
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if opts.Quality <= 0 || opts.Quality > 1 {
		opts.Quality = DefaultQuality
	}
	return &Pipeline{
		rasterizer: r,
		saver:      s,
		notifier:   n,
		logger:     logger,
		opts:       opts,
		now:        time.Now,
	}
}

// Export captures req.Target as a JPEG and saves it, returning the saved
// path. Every failure is also reported through the Notifier.
func (p *Pipeline) Export(ctx context.Context, req Request) (string, error) {
	jobID := uuid.NewString()
	log := p.logger.With("job", jobID)

	if req.Target == nil {
		log.Warnw("export requested without a capture target")
		p.notifier.Alert(AlertNotReady)
		return "", ErrCaptureTargetMissing
	}

	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	dark := theme.Effective(req.Override, req.IsDark)
	card := render.Build(req.Target.Post, req.Target.Interactions, dark)
	doc, err := render.HTML(card, render.HTMLOptions{Width: req.Target.Width})
	if err != nil {
		log.Errorw("card document failed", "error", err)
		p.notifier.Alert(AlertDownloadError)
		return "", &RasterizationError{Err: err}
	}

	if p.opts.SettleDelay > 0 {
		select {
		case <-time.After(p.opts.SettleDelay):
		case <-ctx.Done():
			p.notifier.Alert(AlertDownloadError)
			return "", &RasterizationError{Err: ctx.Err()}
		}
	}

	scale := ClampScale(req.DevicePixelRatio)
	start := p.now()
	data, err := p.rasterizer.Rasterize(ctx, doc, RasterOptions{
		Scale:     scale,
		Quality:   p.opts.Quality,
		CacheBust: true,
		Theme:     card.ThemeName(),
		Width:     req.Target.Width,
	})
	if err != nil {
		log.Errorw("rasterization failed", "error", err, "scale", scale)
		p.notifier.Alert(AlertDownloadError)
		return "", &RasterizationError{Err: err}
	}
	if len(data) == 0 {
		log.Errorw("rasterization produced no data", "scale", scale)
		p.notifier.Alert(AlertEmptyImage)
		return "", &RasterizationError{Empty: true}
	}

	name := Filename(req.Target.Post.Handle, p.now())
	path, err := p.saver.Save(name, data)
	if err != nil {
		log.Errorw("saving export failed", "file", name, "error", err)
		p.notifier.Alert(AlertDownloadError)
		return "", fmt.Errorf("save export: %w", err)
	}

	log.Infow("export complete",
		"path", path,
		"theme", card.ThemeName(),
		"scale", scale,
		"bytes", len(data),
		"elapsed", p.now().Sub(start),
	)
	return path, nil
}

// =============================================================================
// HELPERS
// =============================================================================

// ClampScale maps a device pixel ratio onto the capture scale: at least 2,
// at most 3. Non-positive or NaN ratios are treated as 1.
func ClampScale(dpr float64) float64 {
	if !(dpr > 0) {
		dpr = 1
	}
	if dpr < 2 {
		return 2
	}
	if dpr > 3 {
		return 3
	}
	return dpr
}

// Filename returns "tweet-<handle>-<epochMillis>.jpg". Characters that are
// unsafe in file names are replaced.
func Filename(handle string, now time.Time) string {
	return fmt.Sprintf("tweet-%s-%d.jpg", util.SanitizeFilename(handle, "post"), now.UnixMilli())
}
