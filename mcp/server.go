// Package mcp exposes the tool registry over the Model Context Protocol and
// imports tools from external MCP servers.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codeboltai/codebolt-go/tools"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// Server serves every tool of a registry to MCP clients.
type Server struct {
	mcp      *server.MCPServer
	registry *tools.Registry
	logger   zerolog.Logger
}

// NewServer builds an MCP server exposing the registry's tools with their
// JSON schemas.
func NewServer(registry *tools.Registry, name, version string, logger zerolog.Logger) (*Server, error) {
	logger = logger.With().Str("component", "mcp_server").Logger()
	s := &Server{
		mcp:      server.NewMCPServer(name, version, server.WithToolCapabilities(false), server.WithRecovery()),
		registry: registry,
		logger:   logger,
	}

	for _, name := range registry.Names() {
		t, _ := registry.Get(name)
		schema, err := json.Marshal(t.Schema())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal schema for %s: %w", name, err)
		}
		s.mcp.AddTool(mcp.NewToolWithRawSchema(t.Name(), t.Description(), schema), s.handler(t.Name()))
	}
	logger.Info().Int("tools", len(registry.Names())).Str("name", name).Msg("MCP server created")
	return s, nil
}

func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		res := s.registry.Handle(ctx, name, args)
		if res.Error != nil {
			return mcp.NewToolResultError(res.LLMContent), nil
		}
		return mcp.NewToolResultText(res.LLMContent), nil
	}
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// ServeStdio serves on stdin/stdout until the input is closed.
func (s *Server) ServeStdio() error {
	s.logger.Info().Msg("Serving MCP over stdio")
	return server.ServeStdio(s.mcp)
}
