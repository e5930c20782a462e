package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codeboltai/codebolt-go/tools"
	"github.com/samber/lo"
)

// RemoteTools lists the server's tools and wraps each as a tools.Tool whose
// name is prefix + the safe form of the remote name.
func RemoteTools(ctx context.Context, c *Client, prefix string, names *NameAdapter) ([]tools.Tool, error) {
	defs, err := c.ListTools(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(defs, func(def ToolDefinition, _ int) tools.Tool {
		safe := names.GetSafeName(prefix + def.Name)
		return &remoteTool{client: c, def: def, name: safe}
	}), nil
}

type remoteTool struct {
	client *Client
	def    ToolDefinition
	name   string
}

func (t *remoteTool) Name() string           { return t.name }
func (t *remoteTool) Description() string    { return t.def.Description }
func (t *remoteTool) Schema() map[string]any { return t.def.InputSchema }

func (t *remoteTool) Validate(args json.RawMessage) error {
	_, err := t.decode(args)
	return err
}

func (t *remoteTool) Execute(ctx context.Context, args json.RawMessage) tools.Result {
	input, err := t.decode(args)
	if err != nil {
		return tools.ErrorResult(tools.ErrorTypeInvalidParams, err.Error())
	}
	res, err := t.client.CallTool(ctx, t.def.Name, input)
	if err != nil {
		return tools.ErrorResult(tools.ErrorTypeExecutionFailed, err.Error())
	}
	if res.IsError {
		return tools.ErrorResult(tools.ErrorTypeExecutionFailed, res.Text)
	}
	return tools.Result{
		LLMContent:    res.Text,
		ReturnDisplay: fmt.Sprintf("Called %s", t.def.Name),
	}
}

// decode checks that args is a JSON object carrying every required property.
func (t *remoteTool) decode(args json.RawMessage) (map[string]any, error) {
	input := map[string]any{}
	if raw := strings.TrimSpace(string(args)); raw != "" && raw != "null" {
		if err := json.Unmarshal([]byte(raw), &input); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	required, _ := t.def.InputSchema["required"].([]string)
	for _, field := range required {
		if _, ok := input[field]; !ok {
			return nil, fmt.Errorf("%s is required", field)
		}
	}
	return input, nil
}
