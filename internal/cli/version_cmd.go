// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{
				Version:   Version,
				GitCommit: GitCommit,
				BuildDate: BuildDate,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			return output(cmd.OutOrStdout(), a.jsonMode, "version", info, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s\n", TitleStyle.Render("tweetgen"), info.Version)
				fmt.Fprintln(w, RenderKeyValue("Commit:", info.GitCommit))
				fmt.Fprintln(w, RenderKeyValue("Built:", info.BuildDate))
				fmt.Fprintln(w, RenderKeyValue("Go:", info.GoVersion+" "+info.Platform))
			})
		},
	}
}
