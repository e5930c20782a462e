package notifications

// UserMessage relays a user message to the host.
type UserMessage struct {
	Message string `json:"message"`
	Payload any    `json:"payload,omitempty"`
}

// ChatHistory selects a chat session.
type ChatHistory struct {
	SessionID string `json:"sessionId,omitempty"`
}

// ChatNotifier sends chatnotify envelopes.
type ChatNotifier struct{ category }

func (n *ChatNotifier) UserMessageRequest(msg UserMessage, toolUseID string) error {
	return n.request("sendMessageRequest", toolUseID, msg, str("message", msg.Message))
}

// AgentTextResponse shows agent text in the chat. It answers toolUseID.
func (n *ChatNotifier) AgentTextResponse(content any, isError bool, toolUseID string) error {
	return n.result("agentTextResponse", content, isError, toolUseID)
}

func (n *ChatNotifier) GetChatHistoryRequest(req ChatHistory, toolUseID string) error {
	return n.request("getChatHistoryRequest", toolUseID, req)
}

func (n *ChatNotifier) GetChatHistoryResult(content any, isError bool, toolUseID string) error {
	return n.result("getChatHistoryResult", content, isError, toolUseID)
}
