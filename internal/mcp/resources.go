// ABOUTME: MCP resource implementations for the health store bridge.
// ABOUTME: Provides the health://types catalog resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/openhealth/healthbridge/internal/models"
)

func (s *Server) registerResources() {
	// health://types - supported data types and their canonical units
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "health://types",
		Name:        "Supported Health Data Types",
		Description: "Data types the bridge supports, with canonical units and permission tokens",
		MIMEType:    "application/json",
	}, s.handleTypesResource)
}

// Resource handlers

func (s *Server) handleTypesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	type typeEntry struct {
		DataType        string `json:"dataType"`
		Unit            string `json:"unit"`
		ReadPermission  string `json:"readPermission"`
		WritePermission string `json:"writePermission"`
	}

	entries := make([]typeEntry, 0, len(models.AllDataTypes))
	for _, dt := range models.AllDataTypes {
		info := dt.Info()
		entries = append(entries, typeEntry{
			DataType:        string(dt),
			Unit:            info.Unit,
			ReadPermission:  info.ReadPermission,
			WritePermission: info.WritePermission,
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal types: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
