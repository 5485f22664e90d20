// ABOUTME: CLI command printing the healthbridge version.
// ABOUTME: Version is overridable at build time via -ldflags.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the healthbridge version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("healthbridge %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
