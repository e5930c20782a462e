package ollama

import (
	"github.com/codeboltai/codebolt-go/llm"
	"github.com/ollama/ollama/api"
	"github.com/samber/lo"
)

// ToChatRequest converts the common request to an Ollama chat request.
// Sampling parameters travel in Options.
func ToChatRequest(req *llm.ChatCompletionRequest, defaultModel string) *api.ChatRequest {
	model := req.Model
	if model == "" {
		model = defaultModel
	}

	stream := req.Stream
	chatReq := &api.ChatRequest{
		Model:    model,
		Messages: ToOllamaMessages(req.Messages),
		Stream:   &stream,
		Options:  make(map[string]any),
	}
	if len(req.Tools) > 0 {
		chatReq.Tools = ToOllamaTools(req.Tools)
	}
	if req.MaxTokens > 0 {
		chatReq.Options["num_predict"] = req.MaxTokens
	}
	if req.Temperature != nil {
		chatReq.Options["temperature"] = *req.Temperature
	}
	if req.TopP != nil {
		chatReq.Options["top_p"] = *req.TopP
	}
	if len(req.Stop) > 0 {
		chatReq.Options["stop"] = req.Stop
	}
	return chatReq
}

// ToOllamaMessages converts llm.Messages to Ollama chat message format.
func ToOllamaMessages(msgs []llm.Message) []api.Message {
	return lo.Map(msgs, func(msg llm.Message, _ int) api.Message {
		role := string(msg.Role)
		if msg.Role == llm.RoleFunction {
			role = string(llm.RoleTool)
		}
		out := api.Message{
			Role:    role,
			Content: msg.Content,
		}
		for _, tc := range msg.ToolCalls {
			args := make(api.ToolCallFunctionArguments)
			for k, v := range tc.Function.ParseArguments() {
				args[k] = v
			}
			out.ToolCalls = append(out.ToolCalls, api.ToolCall{
				Function: api.ToolCallFunction{
					Name:      tc.Function.Name,
					Arguments: args,
				},
			})
		}
		return out
	})
}

// ToOllamaTools converts tool definitions to Ollama function format.
func ToOllamaTools(tools []llm.Tool) []api.Tool {
	return lo.Map(tools, func(t llm.Tool, _ int) api.Tool {
		properties := make(map[string]api.ToolProperty)
		if props, ok := t.Function.Parameters["properties"].(map[string]any); ok {
			for name, v := range props {
				prop := api.ToolProperty{Type: []string{"string"}}
				if propMap, ok := v.(map[string]any); ok {
					if propType, ok := propMap["type"].(string); ok {
						prop.Type = []string{propType}
					}
					if desc, ok := propMap["description"].(string); ok {
						prop.Description = desc
					}
					if enum, ok := propMap["enum"].([]any); ok {
						prop.Enum = enum
					}
				}
				properties[name] = prop
			}
		}

		return api.Tool{
			Type: "function",
			Function: api.ToolFunction{
				Name:        t.Function.Name,
				Description: t.Function.Description,
				Parameters: api.ToolFunctionParameters{
					Type:       "object",
					Properties: properties,
					Required:   requiredFields(t.Function.Parameters["required"]),
				},
			},
		}
	})
}

func requiredFields(v any) []string {
	switch r := v.(type) {
	case []string:
		return r
	case []any:
		return lo.FilterMap(r, func(item any, _ int) (string, bool) {
			s, ok := item.(string)
			return s, ok
		})
	default:
		return nil
	}
}
