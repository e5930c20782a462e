package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// ClientName and ClientVersion identify this module to MCP servers.
const (
	ClientName    = "codebolt-go"
	ClientVersion = "1.0.0"
)

// ToolDefinition represents an MCP tool definition.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// CallResult is the text outcome of a remote tool call.
type CallResult struct {
	Text    string
	IsError bool
}

// Client talks to one external MCP server.
type Client struct {
	client *client.Client
	target string
	logger zerolog.Logger
}

// NewStdioClient launches command and speaks MCP over its stdio.
func NewStdioClient(logger zerolog.Logger, command string, args, env []string) (*Client, error) {
	if command == "" {
		return nil, fmt.Errorf("command is required for STDIO MCP client")
	}

	// Split command into command and args if it contains spaces
	parts := strings.Fields(command)
	cmd := parts[0]
	cmdArgs := append(parts[1:len(parts):len(parts)], args...)

	c, err := client.NewStdioMCPClient(cmd, env, cmdArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to create stdio MCP client: %w", err)
	}
	return newClient(c, cmd, logger), nil
}

// NewHTTPClient connects to a streamable-HTTP MCP server.
func NewHTTPClient(logger zerolog.Logger, baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("url is required for HTTP MCP client")
	}
	c, err := client.NewStreamableHttpClient(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP MCP client: %w", err)
	}
	return newClient(c, baseURL, logger), nil
}

// NewInProcessClient connects to a server in the same process.
func NewInProcessClient(logger zerolog.Logger, s *Server) (*Client, error) {
	c, err := client.NewInProcessClient(s.MCPServer())
	if err != nil {
		return nil, fmt.Errorf("failed to create in-process MCP client: %w", err)
	}
	return newClient(c, "in-process", logger), nil
}

func newClient(c *client.Client, target string, logger zerolog.Logger) *Client {
	return &Client{
		client: c,
		target: target,
		logger: logger.With().Str("component", "mcp_client").Str("target", target).Logger(),
	}
}

// Start starts the transport and performs the initialize handshake.
func (c *Client) Start(ctx context.Context) error {
	c.logger.Debug().Msg("Starting MCP client")
	if err := c.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start MCP client for %s: %w", c.target, err)
	}

	initReq := mcp.InitializeRequest{
		Params: mcp.InitializeParams{
			ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcp.ClientCapabilities{},
			ClientInfo: mcp.Implementation{
				Name:    ClientName,
				Version: ClientVersion,
			},
		},
	}
	res, err := c.client.Initialize(ctx, initReq)
	if err != nil {
		return fmt.Errorf("failed to initialize MCP client for %s: %w", c.target, err)
	}
	c.logger.Info().
		Str("server", res.ServerInfo.Name).
		Str("protocolVersion", res.ProtocolVersion).
		Msg("MCP client initialized")
	return nil
}

// ListTools returns all tools available from the MCP server.
func (c *Client) ListTools(ctx context.Context) ([]ToolDefinition, error) {
	result, err := c.client.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("failed to list tools: %w", err)
	}
	c.logger.Debug().Int("tool_count", len(result.Tools)).Msg("Received tools")

	return lo.Map(result.Tools, func(tool mcp.Tool, _ int) ToolDefinition {
		inputSchema := map[string]any{"type": tool.InputSchema.Type}
		if tool.InputSchema.Properties != nil {
			inputSchema["properties"] = tool.InputSchema.Properties
		}
		if len(tool.InputSchema.Required) > 0 {
			inputSchema["required"] = tool.InputSchema.Required
		}
		return ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: inputSchema,
		}
	}), nil
}

// CallTool invokes a tool and joins its text content.
func (c *Client) CallTool(ctx context.Context, name string, input map[string]any) (*CallResult, error) {
	result, err := c.client.CallTool(ctx, mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: input,
		},
	})
	if err != nil {
		c.logger.Error().Str("tool_name", name).Err(err).Msg("Failed to invoke tool on MCP server")
		return nil, fmt.Errorf("failed to invoke tool %s: %w", name, err)
	}

	texts := lo.FilterMap(result.Content, func(content mcp.Content, _ int) (string, bool) {
		if text, ok := mcp.AsTextContent(content); ok {
			return text.Text, true
		}
		s := mcp.GetTextFromContent(content)
		return s, s != ""
	})
	return &CallResult{Text: strings.Join(texts, "\n"), IsError: result.IsError}, nil
}

// Close closes the connection to the MCP server.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
