package notifications

// AddTodo creates a todo item.
type AddTodo struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Phase       string   `json:"phase,omitempty"`
	Category    string   `json:"category,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// GetTodo filters todo items.
type GetTodo struct {
	Filters map[string]any `json:"filters,omitempty"`
}

// EditTodo changes a todo item; empty fields are left unchanged.
type EditTodo struct {
	TaskID      string   `json:"taskId"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    string   `json:"priority,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// TodoNotifier sends todonotify envelopes.
type TodoNotifier struct{ category }

func (n *TodoNotifier) AddTodoRequest(req AddTodo, toolUseID string) error {
	return n.request("addTodoRequest", toolUseID, req, str("title", req.Title))
}

func (n *TodoNotifier) AddTodoResult(content any, isError bool, toolUseID string) error {
	return n.result("addTodoResult", content, isError, toolUseID)
}

func (n *TodoNotifier) GetTodoRequest(req GetTodo, toolUseID string) error {
	return n.request("getTodoRequest", toolUseID, req)
}

func (n *TodoNotifier) GetTodoResult(content any, isError bool, toolUseID string) error {
	return n.result("getTodoResult", content, isError, toolUseID)
}

func (n *TodoNotifier) EditTodoRequest(req EditTodo, toolUseID string) error {
	return n.request("editTodoRequest", toolUseID, req, str("taskId", req.TaskID))
}

func (n *TodoNotifier) EditTodoResult(content any, isError bool, toolUseID string) error {
	return n.result("editTodoResult", content, isError, toolUseID)
}
