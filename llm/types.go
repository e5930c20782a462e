package llm

import (
	"encoding/json"
	"fmt"
)

// MessageRole represents the role of a message in a conversation.
type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleFunction  MessageRole = "function"
	RoleTool      MessageRole = "tool"
)

// Valid reports whether r is one of the roles accepted by the common request shape.
func (r MessageRole) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant, RoleFunction, RoleTool:
		return true
	default:
		return false
	}
}

// Message represents a single message in a conversation.
// This is provider-neutral and mirrors the OpenAI chat message shape.
type Message struct {
	Role       MessageRole `json:"role"`
	Content    string      `json:"content"`
	Name       string      `json:"name,omitempty"`
	ToolCalls  []ToolCall  `json:"tool_calls,omitempty"`
	ToolCallID string      `json:"tool_call_id,omitempty"`
}

// ToolCall represents a tool invocation requested by the assistant.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall holds the function name and its JSON-encoded arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Tool represents a tool definition that can be provided to an LLM.
type Tool struct {
	Type     string             `json:"type"`
	Function FunctionDefinition `json:"function"`
}

// FunctionDefinition is the callable part of a Tool.
type FunctionDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}

// ChatCompletionRequest is the common request shape accepted by every provider.
type ChatCompletionRequest struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	TopP        *float64  `json:"top_p,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Stream      bool      `json:"stream,omitempty"`
	Tools       []Tool    `json:"tools,omitempty"`
	Stop        []string  `json:"stop,omitempty"`
	// ToolChoice is "auto", "none", "required" or a function name.
	ToolChoice string `json:"tool_choice,omitempty"`
}

// ChatCompletionResponse is the common response shape returned by every provider.
type ChatCompletionResponse struct {
	ID              string   `json:"id"`
	Object          string   `json:"object"`
	Created         int64    `json:"created"`
	Model           string   `json:"model"`
	Choices         []Choice `json:"choices"`
	Usage           Usage    `json:"usage"`
	TokenLimit      *int     `json:"tokenLimit,omitempty"`
	MaxOutputTokens *int     `json:"maxOutputTokens,omitempty"`
}

// Choice is a single completion alternative.
type Choice struct {
	Index        int      `json:"index"`
	Message      Message  `json:"message"`
	Delta        *Message `json:"delta,omitempty"`
	FinishReason string   `json:"finish_reason"`
}

// Usage represents token usage information from an LLM response.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// EmbeddingResponse is the common embedding response.
type EmbeddingResponse struct {
	Object string      `json:"object"`
	Model  string      `json:"model"`
	Data   []Embedding `json:"data"`
	Usage  Usage       `json:"usage"`
}

// Embedding is one embedding vector.
type Embedding struct {
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}

// ModelType classifies what a model is used for.
type ModelType string

const (
	ModelTypeChat      ModelType = "chat"
	ModelTypeEmbedding ModelType = "embedding"
	ModelTypeImage     ModelType = "image"
	ModelTypeAudio     ModelType = "audio"
)

// Model describes one entry returned by Provider.GetModels.
type Model struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Provider          string    `json:"provider"`
	Type              ModelType `json:"type"`
	TokenLimit        *int      `json:"tokenLimit,omitempty"`
	MaxOutput         *int      `json:"maxOutput,omitempty"`
	SupportsTools     bool      `json:"supportsTools,omitempty"`
	SupportsVision    bool      `json:"supportsVision,omitempty"`
	SupportsReasoning bool      `json:"supportsReasoning,omitempty"`
}

// NewTextMessage creates a message with plain text content.
func NewTextMessage(role MessageRole, text string) Message {
	return Message{Role: role, Content: text}
}

// NewToolResultMessage creates a tool-role message answering the given call.
func NewToolResultMessage(toolCallID, content string) Message {
	return Message{Role: RoleTool, Content: content, ToolCallID: toolCallID}
}

// NewFunctionTool builds a function tool definition.
func NewFunctionTool(name, description string, parameters map[string]any) Tool {
	return Tool{
		Type: "function",
		Function: FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

// ValidateMessages checks that messages is non-empty and every role is known.
func ValidateMessages(msgs []Message) error {
	if len(msgs) == 0 {
		return ErrEmptyMessages
	}
	for i, m := range msgs {
		if !m.Role.Valid() {
			return NewInvalidRequestError(fmt.Sprintf("message %d has unsupported role %q", i, m.Role), nil)
		}
	}
	return nil
}

// SplitSystem separates system messages from the rest of the conversation.
// Multiple system messages are joined with a blank line.
func SplitSystem(msgs []Message) (string, []Message) {
	var system string
	rest := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role == RoleSystem {
			if system != "" {
				system += "\n\n"
			}
			system += m.Content
			continue
		}
		rest = append(rest, m)
	}
	return system, rest
}

// ParseArguments decodes a tool call's JSON arguments into a map.
// Malformed arguments yield an empty map.
func (f FunctionCall) ParseArguments() map[string]any {
	input := make(map[string]any)
	if f.Arguments == "" {
		return input
	}
	if err := json.Unmarshal([]byte(f.Arguments), &input); err != nil {
		return make(map[string]any)
	}
	return input
}

// FirstContent returns the text of the first choice, or "" when there is none.
func (r *ChatCompletionResponse) FirstContent() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// ToJSON marshals a message to JSON for debugging/logging purposes.
func (m Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}
