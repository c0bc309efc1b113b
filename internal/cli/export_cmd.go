// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/tweetgen/internal/config"
	"github.com/jeranaias/tweetgen/internal/export"
	"github.com/jeranaias/tweetgen/internal/post"
	"github.com/jeranaias/tweetgen/internal/render"
	"github.com/jeranaias/tweetgen/internal/theme"
)

// newRasterizer builds the rasterizer used by export and the editor.
// Tests replace it.
var newRasterizer = func(cfg *config.Config, logger *zap.SugaredLogger) export.Rasterizer {
	return export.NewChromeRasterizer(export.ChromeConfig{
		ExecPath:      cfg.Export.ChromePath,
		ViewportWidth: cfg.Export.ViewportWidth,
	}, logger)
}

// newPipeline wires the export pipeline from configuration.
func newPipeline(cfg *config.Config, n export.Notifier, logger *zap.SugaredLogger) *export.Pipeline {
	return export.NewPipeline(
		newRasterizer(cfg, logger),
		export.NewFileSaver(cfg.Export.OutputDir, cfg.Export.OpenAfterExport, logger),
		n,
		logger,
		export.Options{
			Quality:     cfg.Export.Quality,
			SettleDelay: cfg.Export.SettleDelay(),
			Timeout:     cfg.Export.Timeout(),
		},
	)
}

type exportResult struct {
	Path   string   `json:"path"`
	Theme  string   `json:"theme"`
	Width  int      `json:"width"`
	Alerts []string `json:"alerts,omitempty"`
}

func newExportCmd(a *app) *cobra.Command {
	var (
		postFile string
		themeArg string
		outDir   string
		dpr      float64
		narrow   bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a post and save it as a JPEG",
		Long: `Render a post as a card and save it as tweet-<handle>-<millis>.jpg.

Without --post the default post is exported. The card theme follows the
saved app theme unless --theme is light or dark.`,
		Example: `  tweetgen export --post launch.toml --theme light --out ./shots
  tweetgen export --narrow --dpr 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			override, err := theme.ParseOverride(themeArg)
			if err != nil {
				return ErrInvalidValue("--theme", themeArg, "unknown theme", "system, light or dark")
			}

			cfg := a.cfg
			if outDir != "" {
				cfg.Export.OutputDir = outDir
			}
			if cmd.Flags().Changed("dpr") {
				cfg.Export.DevicePixelRatio = dpr
			}

			p := post.Default()
			if postFile != "" {
				p, err = post.LoadFile(cmd.Context(), postFile, cfg.Media.MaxBytes)
				if err != nil {
					return NewCommandError("export", "load", postFile, err)
				}
			}

			ctrl, closeStore := openTheme(a, cmd.ErrOrStderr())
			defer closeStore()

			width := render.WideWidth
			if narrow {
				width = render.NarrowWidth
			}

			var alerts []string
			notifier := export.NotifierFunc(func(msg string) {
				alerts = append(alerts, msg)
				if !a.jsonMode {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %s\n", RenderStatus("alert"), msg)
				}
			})

			path, err := newPipeline(cfg, notifier, a.logger).Export(cmd.Context(), export.Request{
				Target:           &export.Target{Post: p, Width: width},
				Override:         override,
				IsDark:           ctrl.IsDark(),
				DevicePixelRatio: cfg.Export.DevicePixelRatio,
			})
			if err != nil {
				return err
			}

			res := exportResult{
				Path:   path,
				Theme:  render.Build(p, post.Interactions{}, theme.Effective(override, ctrl.IsDark())).ThemeName(),
				Width:  width,
				Alerts: alerts,
			}
			return output(cmd.OutOrStdout(), a.jsonMode, "export", res, func(w io.Writer) {
				fmt.Fprintf(w, "%s Saved %s\n", RenderStatus("saved"), res.Path)
			})
		},
	}

	cmd.Flags().StringVarP(&postFile, "post", "p", "", "TOML file describing the post")
	cmd.Flags().StringVarP(&themeArg, "theme", "t", string(theme.OverrideSystem), "card theme: system, light or dark")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default export.output_dir)")
	cmd.Flags().Float64Var(&dpr, "dpr", 1, "device pixel ratio; the capture scale is clamped to 2-3")
	cmd.Flags().BoolVar(&narrow, "narrow", false, "capture the narrow (mobile) card width")
	return cmd
}
