// ABOUTME: Version command.
// ABOUTME: Version string is overridable at build time via ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the coach version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("coach %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
