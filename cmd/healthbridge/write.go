// ABOUTME: CLI command for writing a health sample.
// ABOUTME: Validates unit override and forwards string metadata.
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/openhealth/healthbridge/internal/bridge"
	"github.com/openhealth/healthbridge/internal/models"
	"github.com/spf13/cobra"
)

var (
	writeUnit  string
	writeStart string
	writeEnd   string
	writeMeta  []string
)

var writeCmd = &cobra.Command{
	Use:     "write <type> <value>",
	Aliases: []string{"w"},
	Short:   "Write a health sample",
	Long: `Write one sample to the native store.

The sample time defaults to now, with end defaulting to start. A --unit
override must equal the type's canonical unit; units are never converted.

EXAMPLES:

  healthbridge write steps 4200
  healthbridge write weight 82.5 --unit kilogram
  healthbridge write heartRate 62 --start 2026-08-24T07:00:00Z
  healthbridge write steps 900 --meta session=morning-walk`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid value: %s", args[1])
		}

		var metadata map[string]any
		for _, kv := range writeMeta {
			k, v, ok := strings.Cut(kv, "=")
			if !ok {
				return fmt.Errorf("invalid metadata %q: expected key=value", kv)
			}
			if metadata == nil {
				metadata = make(map[string]any)
			}
			metadata[k] = v
		}

		err = svc.SaveSample(context.Background(), bridge.SaveRequest{
			DataType:  args[0],
			Value:     value,
			Unit:      writeUnit,
			StartDate: writeStart,
			EndDate:   writeEnd,
			Metadata:  metadata,
		})
		if err != nil {
			return fmt.Errorf("failed to save sample: %w", err)
		}

		dt, _ := models.Resolve(args[0])
		color.Green("✓ Saved %s", args[0])
		fmt.Printf("  %.2f %s\n", value, dt.Unit())
		return nil
	},
}

func init() {
	writeCmd.Flags().StringVar(&writeUnit, "unit", "", "unit override, must equal the canonical unit")
	writeCmd.Flags().StringVar(&writeStart, "start", "", "sample start (ISO 8601), default now")
	writeCmd.Flags().StringVar(&writeEnd, "end", "", "sample end (ISO 8601), default start")
	writeCmd.Flags().StringArrayVar(&writeMeta, "meta", nil, "metadata entry as key=value (repeatable)")
	rootCmd.AddCommand(writeCmd)
}
