// ABOUTME: CLI command printing the build version.
// ABOUTME: Version is overridden at build time with -ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the balance version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "balance %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
