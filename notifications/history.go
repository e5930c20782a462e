package notifications

// Summarize asks the host to summarize part of the conversation.
type Summarize struct {
	Messages []map[string]any `json:"messages"`
	Depth    int              `json:"depth,omitempty"`
}

// HistoryNotifier sends historynotify envelopes.
type HistoryNotifier struct{ category }

func (n *HistoryNotifier) SummarizeRequest(req Summarize, toolUseID string) error {
	return n.request("summarizeRequest", toolUseID, req, list("messages", req.Messages))
}

func (n *HistoryNotifier) SummarizeResult(content any, isError bool, toolUseID string) error {
	return n.result("summarizeResult", content, isError, toolUseID)
}
