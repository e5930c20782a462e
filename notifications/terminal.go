package notifications

// CommandExecution describes a shell command.
type CommandExecution struct {
	Command                    string `json:"command"`
	ReturnEmptyStringOnSuccess bool   `json:"returnEmptyStringOnSuccess,omitempty"`
	ExecuteInMain              bool   `json:"executeInMain,omitempty"`
}

// TerminalNotifier sends terminalnotify envelopes.
type TerminalNotifier struct{ category }

func (n *TerminalNotifier) CommandExecutionRequest(req CommandExecution, toolUseID string) error {
	return n.request("executeCommandRequest", toolUseID, req, str("command", req.Command))
}

func (n *TerminalNotifier) CommandExecutionResult(content any, isError bool, toolUseID string) error {
	return n.result("executeCommandResult", content, isError, toolUseID)
}
