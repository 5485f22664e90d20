// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server exposing the bridge operations.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/openhealth/healthbridge/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server.

The server exposes the bridge operations over stdin/stdout so an
MCP-compatible application shell can call them.

AVAILABLE TOOLS:

  health_available              Check native store availability
  health_request_authorization  Request permissions, prompting if needed
  health_check_authorization    Check permissions without prompting
  health_read_samples           Read samples of one data type
  health_save_sample            Write one sample

AVAILABLE RESOURCES:

  health://types                Supported data types and units`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(svc)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
