package gemini

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/codeboltai/codebolt-go/llm"
	"github.com/samber/lo"
)

type part struct {
	Text             string            `json:"text,omitempty"`
	FunctionCall     *functionCall     `json:"functionCall,omitempty"`
	FunctionResponse *functionResponse `json:"functionResponse,omitempty"`
}

type functionCall struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

type functionResponse struct {
	Name     string         `json:"name"`
	Response map[string]any `json:"response"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type functionDeclaration struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

type tool struct {
	FunctionDeclarations []functionDeclaration `json:"functionDeclarations"`
}

type generationConfig struct {
	Temperature     *float64 `json:"temperature,omitempty"`
	TopP            *float64 `json:"topP,omitempty"`
	MaxOutputTokens int      `json:"maxOutputTokens,omitempty"`
	StopSequences   []string `json:"stopSequences,omitempty"`
}

type generateContentRequest struct {
	Contents          []content         `json:"contents"`
	SystemInstruction *content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
	Tools             []tool            `json:"tools,omitempty"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
	Index        int     `json:"index"`
}

type usageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

func (u *usageMetadata) usage() llm.Usage {
	return llm.Usage{
		PromptTokens:     u.PromptTokenCount,
		CompletionTokens: u.CandidatesTokenCount,
		TotalTokens:      u.TotalTokenCount,
	}
}

type generateContentResponse struct {
	Candidates    []candidate    `json:"candidates"`
	UsageMetadata *usageMetadata `json:"usageMetadata,omitempty"`
	ModelVersion  string         `json:"modelVersion,omitempty"`
	ResponseID    string         `json:"responseId,omitempty"`
}

// toGenerateContentRequest maps the common request onto Gemini's shape:
// system messages become systemInstruction, assistant turns use role "model"
// and every message is wrapped in parts.
func toGenerateContentRequest(req *llm.ChatCompletionRequest) generateContentRequest {
	system, rest := llm.SplitSystem(req.Messages)

	// Gemini answers a function call by name, not id.
	callNames := make(map[string]string)
	for _, m := range rest {
		for _, tc := range m.ToolCalls {
			callNames[tc.ID] = tc.Function.Name
		}
	}

	out := generateContentRequest{
		Contents: lo.Map(rest, func(m llm.Message, _ int) content {
			return toContent(m, callNames)
		}),
	}
	if system != "" {
		out.SystemInstruction = &content{Parts: []part{{Text: system}}}
	}
	if req.Temperature != nil || req.TopP != nil || req.MaxTokens > 0 || len(req.Stop) > 0 {
		out.GenerationConfig = &generationConfig{
			Temperature:     req.Temperature,
			TopP:            req.TopP,
			MaxOutputTokens: req.MaxTokens,
			StopSequences:   req.Stop,
		}
	}
	if len(req.Tools) > 0 {
		out.Tools = []tool{{
			FunctionDeclarations: lo.Map(req.Tools, func(t llm.Tool, _ int) functionDeclaration {
				return functionDeclaration{
					Name:        t.Function.Name,
					Description: t.Function.Description,
					Parameters:  t.Function.Parameters,
				}
			}),
		}}
	}
	return out
}

func toContent(m llm.Message, callNames map[string]string) content {
	switch m.Role {
	case llm.RoleAssistant:
		parts := make([]part, 0, len(m.ToolCalls)+1)
		if m.Content != "" {
			parts = append(parts, part{Text: m.Content})
		}
		for _, tc := range m.ToolCalls {
			parts = append(parts, part{FunctionCall: &functionCall{
				Name: tc.Function.Name,
				Args: tc.Function.ParseArguments(),
			}})
		}
		if len(parts) == 0 {
			parts = append(parts, part{Text: ""})
		}
		return content{Role: "model", Parts: parts}

	case llm.RoleTool, llm.RoleFunction:
		name := m.Name
		if name == "" {
			name = callNames[m.ToolCallID]
		}
		return content{Role: "user", Parts: []part{{FunctionResponse: &functionResponse{
			Name:     name,
			Response: toolResponse(m.Content),
		}}}}

	default:
		return content{Role: "user", Parts: []part{{Text: m.Content}}}
	}
}

// toolResponse wraps tool output in an object; JSON objects are passed through.
func toolResponse(s string) map[string]any {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err == nil {
		return obj
	}
	return map[string]any{"content": s}
}

func transformResponse(body *generateContentResponse) *llm.ChatCompletionResponse {
	resp := &llm.ChatCompletionResponse{
		ID:      body.ResponseID,
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   body.ModelVersion,
	}
	if body.UsageMetadata != nil {
		resp.Usage = body.UsageMetadata.usage()
	}

	for i, cand := range body.Candidates {
		msg := llm.Message{Role: llm.RoleAssistant}
		for _, p := range cand.Content.Parts {
			if p.FunctionCall != nil {
				n := len(msg.ToolCalls)
				msg.ToolCalls = append(msg.ToolCalls, llm.ToolCall{
					ID:   toolCallID(n),
					Type: "function",
					Function: llm.FunctionCall{
						Name:      p.FunctionCall.Name,
						Arguments: argumentsJSON(p.FunctionCall.Args),
					},
				})
				continue
			}
			msg.Content += p.Text
		}
		resp.Choices = append(resp.Choices, llm.Choice{
			Index:        i,
			Message:      msg,
			FinishReason: finishReason(cand.FinishReason, len(msg.ToolCalls) > 0),
		})
	}
	return resp
}

func toolCallID(n int) string {
	return fmt.Sprintf("call_%d", n)
}

func argumentsJSON(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	b, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// finishReason maps Gemini finish reasons to OpenAI finish reasons.
func finishReason(reason string, hasToolCalls bool) string {
	if hasToolCalls {
		return "tool_calls"
	}
	switch reason {
	case "STOP":
		return "stop"
	case "MAX_TOKENS":
		return "length"
	case "SAFETY", "RECITATION", "BLOCKLIST", "PROHIBITED_CONTENT", "SPII":
		return "content_filter"
	case "":
		return ""
	default:
		return "stop"
	}
}
