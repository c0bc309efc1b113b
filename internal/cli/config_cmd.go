// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/tweetgen/internal/config"
)

type configValue struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and change settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return showConfig(cmd, a)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return showConfig(cmd, a)
			},
		},
		&cobra.Command{
			Use:       "get KEY",
			Short:     "Print one setting",
			Example:   "  tweetgen config get export.output_dir",
			Args:      cobra.ExactArgs(1),
			ValidArgs: config.GetAllKeys(),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := a.cfg.Get(args[0])
				if err != nil {
					return unknownKey(args[0], err)
				}
				res := configValue{Key: args[0], Value: v}
				return output(cmd.OutOrStdout(), a.jsonMode, "config get", res, func(w io.Writer) {
					fmt.Fprintln(w, v)
				})
			},
		},
		&cobra.Command{
			Use:     "set KEY VALUE",
			Short:   "Change one setting and save the config file",
			Example: "  tweetgen config set export.quality 0.9",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, value := args[0], args[1]
				updated := a.cfg.Clone()
				if _, err := updated.Get(key); err != nil {
					return unknownKey(key, err)
				}
				if err := updated.Set(key, value); err != nil {
					return ErrInvalidValue(key, value, err.Error(), "")
				}
				if err := updated.Validate(); err != nil {
					return err
				}
				a.cfg = updated
				if err := a.save(); err != nil {
					return NewCommandError("config", "set", "could not save config", err)
				}
				a.logger.Infow("config updated", "key", key)

				v, _ := updated.Get(key)
				res := configValue{Key: key, Value: v}
				return output(cmd.OutOrStdout(), a.jsonMode, "config set", res, func(w io.Writer) {
					fmt.Fprintf(w, "%s %s = %v\n", RenderStatus("ok"), key, v)
				})
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				path := a.configPath
				if path == "" {
					var err error
					if path, err = config.ConfigPathTOML(); err != nil {
						return err
					}
				}
				return output(cmd.OutOrStdout(), a.jsonMode, "config path", map[string]string{"path": path}, func(w io.Writer) {
					fmt.Fprintln(w, path)
				})
			},
		},
	)
	return cmd
}

func showConfig(cmd *cobra.Command, a *app) error {
	return output(cmd.OutOrStdout(), a.jsonMode, "config show", a.cfg, func(w io.Writer) {
		fmt.Fprint(w, a.cfg.String())
	})
}

func unknownKey(key string, err error) error {
	return ErrInvalidValue("key", key, err.Error(), "one of: "+strings.Join(config.GetAllKeys(), ", "))
}
