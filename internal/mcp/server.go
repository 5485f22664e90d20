// ABOUTME: MCP server setup for the health store bridge.
// ABOUTME: Wraps MCP server with a bridge Service connection.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/openhealth/healthbridge/internal/bridge"
)

// Server wraps the MCP server with bridge access.
type Server struct {
	mcpServer *mcp.Server
	svc       *bridge.Service
}

// NewServer creates a new MCP server over the given bridge service.
func NewServer(svc *bridge.Service) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "healthbridge",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		svc:       svc,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
