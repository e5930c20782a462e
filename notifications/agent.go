package notifications

// SubagentTask asks the host to start a subagent.
type SubagentTask struct {
	ParentAgentID string   `json:"parentAgentId"`
	SubagentID    string   `json:"subagentId"`
	Task          string   `json:"task"`
	Priority      string   `json:"priority,omitempty"`
	Dependencies  []string `json:"dependencies,omitempty"`
}

// SubagentResult reports a finished subagent task.
type SubagentResult struct {
	ParentAgentID string `json:"parentAgentId"`
	SubagentID    string `json:"subagentId"`
	TaskID        string `json:"taskId"`
	Result        any    `json:"result,omitempty"`
	Status        string `json:"status,omitempty"`
}

// AgentNotifier sends agentnotify envelopes.
type AgentNotifier struct{ category }

func (n *AgentNotifier) StartSubagentTaskRequest(task SubagentTask, toolUseID string) error {
	return n.request("startSubagentTaskRequest", toolUseID, task,
		str("parentAgentId", task.ParentAgentID),
		str("subagentId", task.SubagentID),
		str("task", task.Task))
}

func (n *AgentNotifier) StartSubagentTaskResponse(content any, isError bool, toolUseID string) error {
	return n.result("startSubagentTaskResponse", content, isError, toolUseID)
}

func (n *AgentNotifier) SubagentTaskCompleted(result SubagentResult, toolUseID string) error {
	return n.request("subagentTaskCompleted", toolUseID, result,
		str("parentAgentId", result.ParentAgentID),
		str("subagentId", result.SubagentID),
		str("taskId", result.TaskID))
}
