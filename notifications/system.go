package notifications

// AgentInit announces that the agent has started.
type AgentInit struct {
	OnStopClicked bool `json:"onStopClicked,omitempty"`
}

// AgentCompletion announces that the agent has finished.
type AgentCompletion struct {
	ResultString string `json:"resultString"`
	SessionID    string `json:"sessionId,omitempty"`
	Duration     string `json:"duration,omitempty"`
}

// SystemNotifier sends systemnotify envelopes.
type SystemNotifier struct{ category }

func (n *SystemNotifier) AgentInit(req AgentInit, toolUseID string) error {
	return n.request("processStartedRequest", toolUseID, req)
}

func (n *SystemNotifier) AgentCompletion(req AgentCompletion, toolUseID string) error {
	return n.request("processStoppedRequest", toolUseID, req, str("resultString", req.ResultString))
}
