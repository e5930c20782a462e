package notifications

import "github.com/codeboltai/codebolt-go/llm"

// Inference describes an LLM call made on the agent's behalf.
type Inference struct {
	Messages   []llm.Message `json:"messages"`
	Tools      []llm.Tool    `json:"tools,omitempty"`
	ToolChoice string        `json:"tool_choice,omitempty"`
	LLMRole    string        `json:"llmrole,omitempty"`
}

// TokenCount asks for the token count of Text.
type TokenCount struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}

// LLMNotifier sends llmnotify envelopes.
type LLMNotifier struct{ category }

func (n *LLMNotifier) InferenceRequest(req Inference, toolUseID string) error {
	return n.request("inferenceRequest", toolUseID, req, list("messages", req.Messages))
}

func (n *LLMNotifier) InferenceResult(content any, isError bool, toolUseID string) error {
	return n.result("inferenceResult", content, isError, toolUseID)
}

func (n *LLMNotifier) GetTokenCountRequest(req TokenCount, toolUseID string) error {
	return n.request("getTokenCountRequest", toolUseID, req, str("text", req.Text))
}

func (n *LLMNotifier) GetTokenCountResult(content any, isError bool, toolUseID string) error {
	return n.result("getTokenCountResult", content, isError, toolUseID)
}
