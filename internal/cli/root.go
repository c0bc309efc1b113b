// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/tweetgen/internal/config"
	"github.com/jeranaias/tweetgen/internal/logging"
)

// Version information, set by main from build flags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// =============================================================================
// SHARED COMMAND STATE
// =============================================================================

// app is what every command sees once the persistent pre-run has loaded
// configuration and opened the log.
type app struct {
	configPath string // --config; empty means the default location
	jsonMode   bool

	cfg    *config.Config
	logger *zap.SugaredLogger
	close  func()
}

func (a *app) load(stderr io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFromPath(a.configPath)
		if err != nil {
			return err
		}
		cfg.ApplyEnvOverrides()
	} else {
		cfg, err = config.Load()
		if err != nil {
			// Load still returns usable defaults.
			fmt.Fprintf(stderr, "%s %v\n", WarningStyle.Render("[WARN]"), err)
		}
	}

	logger, closeFn, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "%s logging disabled: %v\n", WarningStyle.Render("[WARN]"), err)
		logger, closeFn = logging.Nop(), func() {}
	}

	a.cfg = cfg
	a.logger = logger
	a.close = closeFn
	return nil
}

// save writes the configuration back to where it was read from.
func (a *app) save() error {
	if a.configPath != "" {
		return config.SaveTOML(a.cfg, a.configPath)
	}
	return config.Save(a.cfg)
}

func (a *app) shutdown() {
	if a.close != nil {
		a.close()
	}
}

// =============================================================================
// ROOT COMMAND
// =============================================================================

// NewRootCmd builds the tweetgen command tree. Running it without a
// subcommand opens the editor.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{})
}

func newRootCmd(a *app) *cobra.Command {
	var postFile string

	root := &cobra.Command{
		Use:           "tweetgen",
		Short:         "Create fake tweet mockups and export them as images",
		Long:          "tweetgen edits a tweet mockup with a live preview and exports it as a JPEG.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), a, postFile)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.tweetgen/config.toml)")
	root.PersistentFlags().BoolVar(&a.jsonMode, "json", false, "print machine-readable JSON")
	root.Flags().StringVarP(&postFile, "post", "p", "", "TOML file to start editing from")

	root.AddCommand(
		newExportCmd(a),
		newThemeCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	a := &app{}
	defer a.shutdown()

	root := newRootCmd(a)
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		DisplayError(os.Stderr, err, a.jsonMode)
		return GetExitCode(err)
	}
	return ExitSuccess
}
