// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jeranaias/tweetgen/internal/storage"
	"github.com/jeranaias/tweetgen/internal/theme"
)

// openTheme loads the theme preference from local storage. When the
// database cannot be opened the preference lives for this process only.
func openTheme(a *app, stderr io.Writer) (*theme.Controller, func()) {
	store, err := storage.Open(a.cfg.Storage.Path)
	if err != nil {
		a.logger.Warnw("local storage unavailable", "path", a.cfg.Storage.Path, "error", err)
		fmt.Fprintf(stderr, "%s local storage unavailable: %v\n", RenderStatus("warn"), err)
		return theme.New(nil, a.logger), func() {}
	}
	return theme.New(store, a.logger), func() { store.Close() }
}

type themeResult struct {
	Theme string `json:"theme"`
}

func newThemeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the saved app theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showTheme(cmd, a)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the saved theme",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return showTheme(cmd, a)
			},
		},
		&cobra.Command{
			Use:   "toggle",
			Short: "Switch between dark and light",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				ctrl, closeStore := openTheme(a, cmd.ErrOrStderr())
				defer closeStore()

				if err := ctrl.Toggle(); err != nil {
					return NewCommandError("theme", "toggle", "could not save preference", err)
				}
				res := themeResult{Theme: ctrl.Name()}
				return output(cmd.OutOrStdout(), a.jsonMode, "theme toggle", res, func(w io.Writer) {
					fmt.Fprintf(w, "%s Theme is now %s\n", RenderStatus("ok"), res.Theme)
				})
			},
		},
	)
	return cmd
}

func showTheme(cmd *cobra.Command, a *app) error {
	ctrl, closeStore := openTheme(a, cmd.ErrOrStderr())
	defer closeStore()

	res := themeResult{Theme: ctrl.Name()}
	return output(cmd.OutOrStdout(), a.jsonMode, "theme show", res, func(w io.Writer) {
		fmt.Fprintln(w, res.Theme)
	})
}
