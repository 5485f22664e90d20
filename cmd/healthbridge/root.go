// ABOUTME: Root Cobra command for healthbridge CLI.
// ABOUTME: Handles config load and native store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/openhealth/healthbridge/internal/bridge"
	"github.com/openhealth/healthbridge/internal/config"
	"github.com/openhealth/healthbridge/internal/native"
	"github.com/spf13/cobra"
)

var (
	store native.Store
	svc   *bridge.Service

	dataDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "healthbridge",
	Short: "Unified interface over native health data stores",
	Long: `Healthbridge exposes a unified, typed surface over native health data
stores (Health Connect, HealthKit) through pluggable backends.

DATA TYPES:

  steps, distance, calories, heartRate, weight, sleepAnalysis, hrv

QUICK START:

  $ healthbridge available                      # Check store availability
  $ healthbridge auth request --read steps      # Request read permission
  $ healthbridge write steps 4200               # Write a sample
  $ healthbridge read steps --limit 10          # Read samples back
  $ healthbridge types                          # List supported types

BACKENDS:

  The native store backend is selected in ~/.config/healthbridge/config.json:

  {
    "backend": "dev",                  // "dev" (default) or "none"
    "data_dir": "~/.local/share/healthbridge"
  }

  The dev backend persists records locally and auto-grants permission
  prompts, standing in for a device health store during development.

MCP INTEGRATION:

  Run 'healthbridge mcp' to start the Model Context Protocol server for
  use with MCP-compatible application shells.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "help" || cmd.Name() == "types" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open native store: %w", err)
		}
		svc = bridge.NewService(store)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default from config)")
}
