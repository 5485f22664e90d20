// ABOUTME: CLI command for reading health samples.
// ABOUTME: Supports time range, limit, ordering, and table output.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/openhealth/healthbridge/internal/bridge"
	"github.com/spf13/cobra"
)

var (
	readStart     string
	readEnd       string
	readLimit     int
	readAscending bool
)

var readCmd = &cobra.Command{
	Use:     "read <type>",
	Aliases: []string{"r"},
	Short:   "Read health samples",
	Long: `Read samples of one data type within a time range.

The range defaults to the last 24 hours. Results are sorted by sample
start time, newest first unless --ascending is given.

EXAMPLES:

  healthbridge read steps
  healthbridge read heartRate --limit 50 --ascending
  healthbridge read weight --start 2026-08-01T00:00:00Z --end 2026-08-20T00:00:00Z
  healthbridge read steps --limit 0        # unbounded`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := svc.ReadSamples(context.Background(), bridge.ReadRequest{
			DataType:  args[0],
			StartDate: readStart,
			EndDate:   readEnd,
			Limit:     &readLimit,
			Ascending: readAscending,
		})
		if err != nil {
			return fmt.Errorf("failed to read samples: %w", err)
		}

		if len(result.Samples) == 0 {
			fmt.Println("No samples found.")
			return nil
		}

		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"START", "END", "VALUE", "UNIT", "SOURCE"})
		for _, s := range result.Samples {
			tw.AppendRow(table.Row{s.StartDate, s.EndDate, fmt.Sprintf("%.2f", s.Value), s.Unit, s.SourceName})
		}
		tw.SetStyle(table.StyleLight)
		tw.Render()

		return nil
	},
}

func init() {
	readCmd.Flags().StringVar(&readStart, "start", "", "range start (ISO 8601), default 24h ago")
	readCmd.Flags().StringVar(&readEnd, "end", "", "range end (ISO 8601), default now")
	readCmd.Flags().IntVarP(&readLimit, "limit", "n", 100, "max samples, 0 for unbounded")
	readCmd.Flags().BoolVar(&readAscending, "ascending", false, "sort oldest first")
	rootCmd.AddCommand(readCmd)
}
