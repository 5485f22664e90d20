// ABOUTME: MCP tool implementations for the health store bridge.
// ABOUTME: Exposes availability, authorization, read, and write operations.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/openhealth/healthbridge/internal/bridge"
	"github.com/openhealth/healthbridge/internal/models"
)

func (s *Server) registerTools() {
	// health_available
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "health_available",
		Description: "Check whether a native health store is available on this platform",
	}, s.handleAvailable)

	// health_request_authorization
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "health_request_authorization",
		Description: "Request read/write permissions for health data types, prompting if needed",
	}, s.handleRequestAuthorization)

	// health_check_authorization
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "health_check_authorization",
		Description: "Check current read/write permissions for health data types without prompting",
	}, s.handleCheckAuthorization)

	// health_read_samples
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "health_read_samples",
		Description: "Read health samples of one data type within a time range",
	}, s.handleReadSamples)

	// health_save_sample
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "health_save_sample",
		Description: "Write one health sample to the native store",
	}, s.handleSaveSample)
}

// Tool input/output types

type emptyInput struct{}

type authorizationInput struct {
	Read  []string `json:"read,omitempty" jsonschema:"Data types to request read access for (steps, distance, calories, heartRate, weight, sleepAnalysis, hrv)"`
	Write []string `json:"write,omitempty" jsonschema:"Data types to request write access for"`
}

type readSamplesInput struct {
	DataType  string `json:"data_type" jsonschema:"Data type to read (steps, distance, calories, heartRate, weight, sleepAnalysis, hrv)"`
	StartDate string `json:"start_date,omitempty" jsonschema:"Range start (ISO 8601), defaults to 24h ago"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"Range end (ISO 8601), defaults to now"`
	Limit     *int   `json:"limit,omitempty" jsonschema:"Max samples (default 100, 0 for unbounded)"`
	Ascending bool   `json:"ascending,omitempty" jsonschema:"Sort oldest first (default newest first)"`
}

type saveSampleInput struct {
	DataType  string         `json:"data_type" jsonschema:"Data type to write"`
	Value     float64        `json:"value" jsonschema:"The sample value"`
	Unit      string         `json:"unit,omitempty" jsonschema:"Unit override; must equal the type's canonical unit"`
	StartDate string         `json:"start_date,omitempty" jsonschema:"Sample start (ISO 8601), defaults to now"`
	EndDate   string         `json:"end_date,omitempty" jsonschema:"Sample end (ISO 8601), defaults to start"`
	Metadata  map[string]any `json:"metadata,omitempty" jsonschema:"String-valued metadata to attach"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleAvailable(ctx context.Context, req *mcp.CallToolRequest, input emptyInput) (*mcp.CallToolResult, bridge.AvailabilityResult, error) {
	return nil, s.svc.IsAvailable(ctx), nil
}

func (s *Server) handleRequestAuthorization(ctx context.Context, req *mcp.CallToolRequest, input authorizationInput) (*mcp.CallToolResult, any, error) {
	status, err := s.svc.RequestAuthorization(ctx, bridge.AuthorizationRequest{
		Read:  input.Read,
		Write: input.Write,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("request authorization: %w", err)
	}
	return nil, status, nil
}

func (s *Server) handleCheckAuthorization(ctx context.Context, req *mcp.CallToolRequest, input authorizationInput) (*mcp.CallToolResult, any, error) {
	status, err := s.svc.CheckAuthorization(ctx, bridge.AuthorizationRequest{
		Read:  input.Read,
		Write: input.Write,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("check authorization: %w", err)
	}
	return nil, status, nil
}

func (s *Server) handleReadSamples(ctx context.Context, req *mcp.CallToolRequest, input readSamplesInput) (*mcp.CallToolResult, any, error) {
	result, err := s.svc.ReadSamples(ctx, bridge.ReadRequest{
		DataType:  input.DataType,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Limit:     input.Limit,
		Ascending: input.Ascending,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("read samples: %w", err)
	}
	return nil, result, nil
}

func (s *Server) handleSaveSample(ctx context.Context, req *mcp.CallToolRequest, input saveSampleInput) (*mcp.CallToolResult, simpleOutput, error) {
	err := s.svc.SaveSample(ctx, bridge.SaveRequest{
		DataType:  input.DataType,
		Value:     input.Value,
		Unit:      input.Unit,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Metadata:  input.Metadata,
	})
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("save sample: %w", err)
	}

	dt, _ := models.Resolve(input.DataType)
	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved %s: %.2f %s", input.DataType, input.Value, dt.Unit()),
	}, nil
}
