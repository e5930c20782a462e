package anthropic

import (
	"encoding/json"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/codeboltai/codebolt-go/llm"
	"github.com/samber/lo"
)

// ToMessageNewParams converts the common request to Messages API params.
// System messages are lifted into the top-level system prompt and tool
// results become user turns carrying tool_result blocks.
func ToMessageNewParams(req *llm.ChatCompletionRequest, defaultModel string) anthropic.MessageNewParams {
	system, rest := llm.SplitSystem(req.Messages)

	model := req.Model
	if model == "" {
		model = defaultModel
	}
	maxTokens := int64(req.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:         anthropic.Model(model),
		MaxTokens:     maxTokens,
		Messages:      ToMessageParams(rest),
		StopSequences: req.Stop,
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}
	if req.TopP != nil {
		params.TopP = anthropic.Float(*req.TopP)
	}
	if len(req.Tools) > 0 {
		params.Tools = ToToolUnionParams(req.Tools)
		if choice, ok := toToolChoice(req.ToolChoice); ok {
			params.ToolChoice = choice
		}
	}
	return params
}

// ToMessageParams converts llm.Messages (without system messages) to Anthropic MessageParams.
func ToMessageParams(msgs []llm.Message) []anthropic.MessageParam {
	return lo.Map(msgs, func(msg llm.Message, _ int) anthropic.MessageParam {
		return ToMessageParam(msg)
	})
}

// ToMessageParam converts a single llm.Message to an Anthropic MessageParam.
func ToMessageParam(msg llm.Message) anthropic.MessageParam {
	switch msg.Role {
	case llm.RoleTool:
		return anthropic.NewUserMessage(anthropic.NewToolResultBlock(msg.ToolCallID, msg.Content, false))
	case llm.RoleAssistant:
		blocks := make([]anthropic.ContentBlockParamUnion, 0, len(msg.ToolCalls)+1)
		if msg.Content != "" {
			blocks = append(blocks, anthropic.NewTextBlock(msg.Content))
		}
		for _, tc := range msg.ToolCalls {
			blocks = append(blocks, anthropic.NewToolUseBlock(tc.ID, tc.Function.ParseArguments(), tc.Function.Name))
		}
		return anthropic.NewAssistantMessage(blocks...)
	default:
		return anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content))
	}
}

// ToToolUnionParams converts tool definitions to Anthropic tools.
func ToToolUnionParams(tools []llm.Tool) []anthropic.ToolUnionParam {
	return lo.Map(tools, func(t llm.Tool, _ int) anthropic.ToolUnionParam {
		schema := anthropic.ToolInputSchemaParam{
			Properties: t.Function.Parameters["properties"],
			Required:   requiredFields(t.Function.Parameters["required"]),
		}
		if schema.Properties == nil {
			schema.Properties = map[string]any{}
		}
		toolParam := anthropic.ToolParam{
			Name:        t.Function.Name,
			Description: anthropic.String(t.Function.Description),
			InputSchema: schema,
		}
		return anthropic.ToolUnionParam{OfTool: &toolParam}
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

func toToolChoice(choice string) (anthropic.ToolChoiceUnionParam, bool) {
	switch choice {
	case "", "auto":
		return anthropic.ToolChoiceUnionParam{}, false
	case "none":
		return anthropic.ToolChoiceUnionParam{OfNone: &anthropic.ToolChoiceNoneParam{}}, true
	case "required":
		return anthropic.ToolChoiceUnionParam{OfAny: &anthropic.ToolChoiceAnyParam{}}, true
	default:
		return anthropic.ToolChoiceUnionParam{OfTool: &anthropic.ToolChoiceToolParam{Name: choice}}, true
	}
}

// FromMessage converts an Anthropic response message to the common shape.
func FromMessage(message *anthropic.Message) *llm.ChatCompletionResponse {
	out := llm.Message{Role: llm.RoleAssistant}
	for _, blockUnion := range message.Content {
		switch block := blockUnion.AsAny().(type) {
		case anthropic.TextBlock:
			out.Content += block.Text
		case anthropic.ToolUseBlock:
			args, err := json.Marshal(block.Input)
			if err != nil {
				args = []byte("{}")
			}
			out.ToolCalls = append(out.ToolCalls, llm.ToolCall{
				ID:   block.ID,
				Type: "function",
				Function: llm.FunctionCall{
					Name:      block.Name,
					Arguments: string(args),
				},
			})
		}
	}

	prompt := int(message.Usage.InputTokens)
	completion := int(message.Usage.OutputTokens)
	return &llm.ChatCompletionResponse{
		ID:      message.ID,
		Object:  "chat.completion",
		Created: nowUnix(),
		Model:   string(message.Model),
		Choices: []llm.Choice{{
			Index:        0,
			Message:      out,
			FinishReason: finishReason(string(message.StopReason)),
		}},
		Usage: llm.Usage{
			PromptTokens:     prompt,
			CompletionTokens: completion,
			TotalTokens:      prompt + completion,
		},
	}
}

// finishReason maps Anthropic stop reasons to OpenAI finish reasons.
func finishReason(stopReason string) string {
	switch stopReason {
	case "end_turn", "stop_sequence":
		return "stop"
	case "max_tokens":
		return "length"
	case "tool_use":
		return "tool_calls"
	default:
		return stopReason
	}
}
