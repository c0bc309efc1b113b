// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/jeranaias/tweetgen/internal/render"
)

// RasterOptions are passed to a Rasterizer for one capture.
type RasterOptions struct {
	Scale     float64
	Quality   float64
	CacheBust bool
	// Theme is the card theme; it names the render acknowledgment to wait for.
	Theme string
	// Width is the card width in CSS pixels.
	Width int
}

// Rasterizer converts a card document into JPEG bytes.
type Rasterizer interface {
	Rasterize(ctx context.Context, doc []byte, opts RasterOptions) ([]byte, error)
}

// ErrChromeNotFound is returned when no Chrome or Chromium binary is available.
var ErrChromeNotFound = errors.New("chrome/chromium not found")

// =============================================================================
// CHROME RASTERIZER
// =============================================================================

// ChromeConfig configures the headless browser.
type ChromeConfig struct {
	// ExecPath overrides browser discovery.
	ExecPath string
	// ViewportWidth is the window width in CSS pixels.
	ViewportWidth int
}

// ChromeRasterizer lays the document out in headless Chrome, screenshots
// the card node and re-encodes it as JPEG. Each call starts its own browser.
type ChromeRasterizer struct {
	cfg    ChromeConfig
	logger *zap.SugaredLogger
}

// NewChromeRasterizer creates a rasterizer. logger may be nil.
func NewChromeRasterizer(cfg ChromeConfig, logger *zap.SugaredLogger) *ChromeRasterizer {
	if cfg.ViewportWidth <= 0 {
		cfg.ViewportWidth = 800
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ChromeRasterizer{cfg: cfg, logger: logger}
}

// Rasterize implements Rasterizer.
func (r *ChromeRasterizer) Rasterize(ctx context.Context, doc []byte, opts RasterOptions) ([]byte, error) {
	execPath := r.cfg.ExecPath
	if execPath == "" {
		found, err := FindChrome()
		if err != nil {
			return nil, err
		}
		execPath = found
	}

	viewport := r.cfg.ViewportWidth
	if opts.Width+64 > viewport {
		viewport = opts.Width + 64
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(execPath),
		chromedp.WindowSize(viewport, 1200),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.Flag("mute-audio", true),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx, chromedp.WithLogf(r.logger.Debugf))
	defer cancelBrowser()

	var shot []byte
	err := chromedp.Run(browserCtx,
		network.Enable(),
		network.SetCacheDisabled(opts.CacheBust),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, string(doc)).Do(ctx)
		}),
		chromedp.WaitVisible(render.ReadySelector(opts.Theme), chromedp.ByQuery),
		chromedp.ScreenshotScale(render.CardSelector(), opts.Scale, &shot, chromedp.ByQuery),
	)
	if err != nil {
		return nil, fmt.Errorf("chrome capture: %w", err)
	}
	if len(shot) == 0 {
		return nil, nil
	}

	return EncodeJPEG(shot, render.PaletteFor(opts.Theme == "dark").Background, opts.Quality)
}

// EncodeJPEG decodes a screenshot, flattens it onto background (a #rrggbb
// color) and encodes it as JPEG at quality in (0, 1].
func EncodeJPEG(src []byte, background string, quality float64) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("decode screenshot: %w", err)
	}

	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), parseHex(background))
	flat := imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, flat, imaging.JPEG, imaging.JPEGQuality(jpegQuality(quality))); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func jpegQuality(q float64) int {
	if q <= 0 || q > 1 {
		q = DefaultQuality
	}
	return int(math.Round(q * 100))
}

func parseHex(s string) color.NRGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return color.NRGBA{A: 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// FindChrome returns the path of an installed Chrome or Chromium.
func FindChrome() (string, error) {
	if runtime.GOOS == "darwin" {
		for _, p := range []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
		} {
			if _, err := os.Stat(p); err == nil {
				return p, nil
			}
		}
	}
	for _, c := range []string{
		"google-chrome",
		"google-chrome-stable",
		"chromium",
		"chromium-browser",
		"headless-shell",
		"chrome",
	} {
		if path, err := exec.LookPath(c); err == nil {
			return path, nil
		}
	}
	return "", ErrChromeNotFound
}
