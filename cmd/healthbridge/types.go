// ABOUTME: CLI command listing supported data types.
// ABOUTME: Shows canonical units, permission tokens, and native record identifiers.
package main

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/openhealth/healthbridge/internal/models"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List supported health data types",
	Run: func(cmd *cobra.Command, args []string) {
		tw := table.NewWriter()
		tw.SetOutputMirror(os.Stdout)
		tw.AppendHeader(table.Row{"TYPE", "UNIT", "NATIVE RECORD", "READ PERMISSION"})
		for _, dt := range models.AllDataTypes {
			info := dt.Info()
			tw.AppendRow(table.Row{string(dt), info.Unit, info.RecordType, info.ReadPermission})
		}
		tw.SetStyle(table.StyleLight)
		tw.Render()
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
