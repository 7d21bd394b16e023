// SPDX-License-Identifier: MIT
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"voicedsp/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		info := build.GetInfo()
		fmt.Printf("voicedsp %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
