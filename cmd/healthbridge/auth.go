// ABOUTME: CLI commands for permission requests and checks.
// ABOUTME: Prints per-type grant state split by read/write direction.
package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/openhealth/healthbridge/internal/bridge"
	"github.com/openhealth/healthbridge/internal/models"
	"github.com/spf13/cobra"
)

var (
	authReadTypes  []string
	authWriteTypes []string
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage health data permissions",
	Long: `Request or check permissions for health data types.

EXAMPLES:

  healthbridge auth request --read steps,heartRate --write steps
  healthbridge auth check --read steps
  healthbridge auth check --read steps,distance --write weight`,
}

var authRequestCmd = &cobra.Command{
	Use:   "request",
	Short: "Request permissions, prompting if needed",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := svc.RequestAuthorization(context.Background(), bridge.AuthorizationRequest{
			Read:  authReadTypes,
			Write: authWriteTypes,
		})
		if err != nil {
			return fmt.Errorf("failed to request authorization: %w", err)
		}
		printStatus(status)
		return nil
	},
}

var authCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check current permissions without prompting",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := svc.CheckAuthorization(context.Background(), bridge.AuthorizationRequest{
			Read:  authReadTypes,
			Write: authWriteTypes,
		})
		if err != nil {
			return fmt.Errorf("failed to check authorization: %w", err)
		}
		printStatus(status)
		return nil
	},
}

func printStatus(status *models.AuthorizationStatus) {
	for _, dt := range status.ReadAuthorized {
		color.Green("✓ read  %s", dt)
	}
	for _, dt := range status.ReadDenied {
		color.Red("✗ read  %s", dt)
	}
	for _, dt := range status.WriteAuthorized {
		color.Green("✓ write %s", dt)
	}
	for _, dt := range status.WriteDenied {
		color.Red("✗ write %s", dt)
	}
}

func init() {
	for _, c := range []*cobra.Command{authRequestCmd, authCheckCmd} {
		c.Flags().StringSliceVar(&authReadTypes, "read", nil, "data types to cover for reading")
		c.Flags().StringSliceVar(&authWriteTypes, "write", nil, "data types to cover for writing")
	}

	authCmd.AddCommand(authRequestCmd)
	authCmd.AddCommand(authCheckCmd)
	rootCmd.AddCommand(authCmd)
}
