package notifications

// MCPServer names an MCP server.
type MCPServer struct {
	ServerName string `json:"serverName"`
}

// MCPToolCall runs a tool on an MCP server.
type MCPToolCall struct {
	ServerName string         `json:"serverName"`
	ToolName   string         `json:"toolName"`
	Params     map[string]any `json:"params,omitempty"`
}

// MCPNotifier sends mcpnotify envelopes.
type MCPNotifier struct{ category }

func (n *MCPNotifier) GetEnabledServersRequest(toolUseID string) error {
	return n.request("getEnabledMCPServersRequest", toolUseID, struct{}{})
}

func (n *MCPNotifier) GetEnabledServersResult(content any, isError bool, toolUseID string) error {
	return n.result("getEnabledMCPServersResult", content, isError, toolUseID)
}

func (n *MCPNotifier) ListToolsRequest(req MCPServer, toolUseID string) error {
	return n.request("listToolsFromMCPServersRequest", toolUseID, req, str("serverName", req.ServerName))
}

func (n *MCPNotifier) ListToolsResult(content any, isError bool, toolUseID string) error {
	return n.result("listToolsFromMCPServersResult", content, isError, toolUseID)
}

func (n *MCPNotifier) ExecuteToolRequest(req MCPToolCall, toolUseID string) error {
	return n.request("executeToolRequest", toolUseID, req,
		str("serverName", req.ServerName),
		str("toolName", req.ToolName))
}

func (n *MCPNotifier) ExecuteToolResult(content any, isError bool, toolUseID string) error {
	return n.result("executeToolResult", content, isError, toolUseID)
}
