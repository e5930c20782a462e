package bedrock

import (
	"encoding/json"
	"time"

	"github.com/codeboltai/codebolt-go/llm"
	"github.com/samber/lo"
)

type textBlock struct {
	Text string `json:"text"`
}

type toolUse struct {
	ToolUseID string         `json:"toolUseId"`
	Name      string         `json:"name"`
	Input     map[string]any `json:"input"`
}

type toolResult struct {
	ToolUseID string      `json:"toolUseId"`
	Content   []textBlock `json:"content"`
	Status    string      `json:"status,omitempty"`
}

type contentBlock struct {
	Text       *string     `json:"text,omitempty"`
	ToolUse    *toolUse    `json:"toolUse,omitempty"`
	ToolResult *toolResult `json:"toolResult,omitempty"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type inferenceConfig struct {
	MaxTokens     int      `json:"maxTokens,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	TopP          *float64 `json:"topP,omitempty"`
	StopSequences []string `json:"stopSequences,omitempty"`
}

type toolSpec struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	InputSchema struct {
		JSON map[string]any `json:"json"`
	} `json:"inputSchema"`
}

type toolDef struct {
	ToolSpec toolSpec `json:"toolSpec"`
}

type toolConfig struct {
	Tools      []toolDef      `json:"tools"`
	ToolChoice map[string]any `json:"toolChoice,omitempty"`
}

type converseRequest struct {
	Messages        []message        `json:"messages"`
	System          []textBlock      `json:"system,omitempty"`
	InferenceConfig *inferenceConfig `json:"inferenceConfig,omitempty"`
	ToolConfig      *toolConfig      `json:"toolConfig,omitempty"`
}

type converseResponse struct {
	Output struct {
		Message message `json:"message"`
	} `json:"output"`
	StopReason string `json:"stopReason"`
	Usage      struct {
		InputTokens  int `json:"inputTokens"`
		OutputTokens int `json:"outputTokens"`
		TotalTokens  int `json:"totalTokens"`
	} `json:"usage"`
}

// toConverseRequest maps the common request onto the Converse shape. System
// messages move to system, sampling parameters to inferenceConfig, and
// consecutive turns of the same role are merged since Converse requires
// alternating roles.
func toConverseRequest(req *llm.ChatCompletionRequest) converseRequest {
	system, rest := llm.SplitSystem(req.Messages)

	out := converseRequest{}
	for _, m := range rest {
		msg := toMessage(m)
		if n := len(out.Messages); n > 0 && out.Messages[n-1].Role == msg.Role {
			out.Messages[n-1].Content = append(out.Messages[n-1].Content, msg.Content...)
			continue
		}
		out.Messages = append(out.Messages, msg)
	}
	if system != "" {
		out.System = []textBlock{{Text: system}}
	}
	if req.MaxTokens > 0 || req.Temperature != nil || req.TopP != nil || len(req.Stop) > 0 {
		out.InferenceConfig = &inferenceConfig{
			MaxTokens:     req.MaxTokens,
			Temperature:   req.Temperature,
			TopP:          req.TopP,
			StopSequences: req.Stop,
		}
	}
	if len(req.Tools) > 0 && req.ToolChoice != "none" {
		cfg := &toolConfig{
			Tools: lo.Map(req.Tools, func(t llm.Tool, _ int) toolDef {
				spec := toolSpec{Name: t.Function.Name, Description: t.Function.Description}
				spec.InputSchema.JSON = t.Function.Parameters
				if spec.InputSchema.JSON == nil {
					spec.InputSchema.JSON = map[string]any{"type": "object", "properties": map[string]any{}}
				}
				return toolDef{ToolSpec: spec}
			}),
		}
		switch req.ToolChoice {
		case "", "auto":
		case "required":
			cfg.ToolChoice = map[string]any{"any": map[string]any{}}
		default:
			cfg.ToolChoice = map[string]any{"tool": map[string]any{"name": req.ToolChoice}}
		}
		out.ToolConfig = cfg
	}
	return out
}

func toMessage(m llm.Message) message {
	switch m.Role {
	case llm.RoleAssistant:
		blocks := make([]contentBlock, 0, len(m.ToolCalls)+1)
		if m.Content != "" {
			blocks = append(blocks, contentBlock{Text: lo.ToPtr(m.Content)})
		}
		for _, tc := range m.ToolCalls {
			blocks = append(blocks, contentBlock{ToolUse: &toolUse{
				ToolUseID: tc.ID,
				Name:      tc.Function.Name,
				Input:     tc.Function.ParseArguments(),
			}})
		}
		return message{Role: "assistant", Content: blocks}

	case llm.RoleTool, llm.RoleFunction:
		return message{Role: "user", Content: []contentBlock{{ToolResult: &toolResult{
			ToolUseID: m.ToolCallID,
			Content:   []textBlock{{Text: m.Content}},
			Status:    "success",
		}}}}

	default:
		return message{Role: "user", Content: []contentBlock{{Text: lo.ToPtr(m.Content)}}}
	}
}

func transformResponse(body *converseResponse, model string, now time.Time) *llm.ChatCompletionResponse {
	msg := llm.Message{Role: llm.RoleAssistant}
	for _, block := range body.Output.Message.Content {
		switch {
		case block.ToolUse != nil:
			args, err := json.Marshal(block.ToolUse.Input)
			if err != nil || block.ToolUse.Input == nil {
				args = []byte("{}")
			}
			msg.ToolCalls = append(msg.ToolCalls, llm.ToolCall{
				ID:   block.ToolUse.ToolUseID,
				Type: "function",
				Function: llm.FunctionCall{
					Name:      block.ToolUse.Name,
					Arguments: string(args),
				},
			})
		case block.Text != nil:
			msg.Content += *block.Text
		}
	}

	total := body.Usage.TotalTokens
	if total == 0 {
		total = body.Usage.InputTokens + body.Usage.OutputTokens
	}

	return &llm.ChatCompletionResponse{
		Object:  "chat.completion",
		Created: now.Unix(),
		Model:   model,
		Choices: []llm.Choice{{
			Index:        0,
			Message:      msg,
			FinishReason: finishReason(body.StopReason),
		}},
		Usage: llm.Usage{
			PromptTokens:     body.Usage.InputTokens,
			CompletionTokens: body.Usage.OutputTokens,
			TotalTokens:      total,
		},
	}
}

// finishReason maps Converse stop reasons to OpenAI finish reasons.
func finishReason(stopReason string) string {
	switch stopReason {
	case "end_turn", "stop_sequence":
		return "stop"
	case "max_tokens":
		return "length"
	case "tool_use":
		return "tool_calls"
	case "guardrail_intervened", "content_filtered":
		return "content_filter"
	default:
		return stopReason
	}
}
