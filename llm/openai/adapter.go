package openai

import (
	"github.com/codeboltai/codebolt-go/llm"
	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"
)

// ToChatRequest converts the common request to the go-openai request.
func ToChatRequest(req *llm.ChatCompletionRequest) openai.ChatCompletionRequest {
	chatReq := openai.ChatCompletionRequest{
		Model:     req.Model,
		Messages:  ToOpenAIMessages(req.Messages),
		MaxTokens: req.MaxTokens,
		Stop:      req.Stop,
		Stream:    req.Stream,
	}
	if req.Temperature != nil {
		chatReq.Temperature = float32(*req.Temperature)
	}
	if req.TopP != nil {
		chatReq.TopP = float32(*req.TopP)
	}
	if len(req.Tools) > 0 {
		chatReq.Tools = ToOpenAITools(req.Tools)
		chatReq.ToolChoice = toToolChoice(req.ToolChoice)
	}
	if req.Stream {
		chatReq.StreamOptions = &openai.StreamOptions{IncludeUsage: true}
	}
	return chatReq
}

// ToOpenAIMessages converts llm.Messages to OpenAI chat message format.
func ToOpenAIMessages(msgs []llm.Message) []openai.ChatCompletionMessage {
	return lo.Map(msgs, func(msg llm.Message, _ int) openai.ChatCompletionMessage {
		return openai.ChatCompletionMessage{
			Role:       string(msg.Role),
			Content:    msg.Content,
			Name:       msg.Name,
			ToolCallID: msg.ToolCallID,
			ToolCalls: lo.Map(msg.ToolCalls, func(tc llm.ToolCall, _ int) openai.ToolCall {
				return openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Function.Name,
						Arguments: tc.Function.Arguments,
					},
				}
			}),
		}
	})
}

// ToOpenAITools converts tool definitions to OpenAI function tools.
func ToOpenAITools(tools []llm.Tool) []openai.Tool {
	return lo.Map(tools, func(t llm.Tool, _ int) openai.Tool {
		params := t.Function.Parameters
		if params == nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		return openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Function.Name,
				Description: t.Function.Description,
				Parameters:  params,
			},
		}
	})
}

// toToolChoice maps "auto"/"none"/"required" through and treats anything
// else as the name of a function the model must call.
func toToolChoice(choice string) any {
	switch choice {
	case "":
		return "auto"
	case "auto", "none", "required":
		return choice
	default:
		return openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: choice},
		}
	}
}

// FromChatResponse converts the go-openai response to the common shape.
func FromChatResponse(resp openai.ChatCompletionResponse) *llm.ChatCompletionResponse {
	return &llm.ChatCompletionResponse{
		ID:      resp.ID,
		Object:  resp.Object,
		Created: resp.Created,
		Model:   resp.Model,
		Choices: lo.Map(resp.Choices, func(c openai.ChatCompletionChoice, _ int) llm.Choice {
			return llm.Choice{
				Index:        c.Index,
				Message:      fromOpenAIMessage(c.Message),
				FinishReason: string(c.FinishReason),
			}
		}),
		Usage: llm.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
}

func fromOpenAIMessage(msg openai.ChatCompletionMessage) llm.Message {
	role := llm.MessageRole(msg.Role)
	if role == "" {
		role = llm.RoleAssistant
	}
	out := llm.Message{
		Role:       role,
		Content:    msg.Content,
		Name:       msg.Name,
		ToolCallID: msg.ToolCallID,
	}
	for _, tc := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, llm.ToolCall{
			ID:   tc.ID,
			Type: "function",
			Function: llm.FunctionCall{
				Name:      tc.Function.Name,
				Arguments: tc.Function.Arguments,
			},
		})
	}
	return out
}
