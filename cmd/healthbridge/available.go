// ABOUTME: CLI command for checking native store availability.
// ABOUTME: Prints platform name and availability, with a reason when unavailable.
package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var availableCmd = &cobra.Command{
	Use:   "available",
	Short: "Check whether a native health store is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		res := svc.IsAvailable(context.Background())

		fmt.Printf("platform: %s\n", res.Platform)
		if res.Available {
			color.Green("✓ health store available")
			return nil
		}

		color.Red("✗ health store unavailable")
		if res.Reason != "" {
			fmt.Printf("  %s\n", res.Reason)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(availableCmd)
}
