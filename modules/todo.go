package modules

import "context"

// Todo statuses and priorities accepted by the host.
const (
	TodoPending    = "pending"
	TodoInProgress = "processing"
	TodoCompleted  = "completed"
	TodoCancelled  = "cancelled"
)

var (
	// TodoStatuses lists the valid todo statuses.
	TodoStatuses = []string{TodoPending, TodoInProgress, TodoCompleted, TodoCancelled}
	// TodoPriorities lists the valid todo priorities.
	TodoPriorities = []string{"low", "medium", "high"}
)

// TodoItem is one entry of the agent's todo list.
type TodoItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Status    string   `json:"status"`
	Priority  string   `json:"priority,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	CreatedAt string   `json:"createdAt,omitempty"`
}

// AddTodo are the parameters of Todo.Add.
type AddTodo struct {
	Title    string   `json:"title"`
	Priority string   `json:"priority,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// UpdateTodo are the parameters of Todo.Update; empty fields are unchanged.
type UpdateTodo struct {
	ID       string   `json:"id"`
	Title    string   `json:"title,omitempty"`
	Status   string   `json:"status,omitempty"`
	Priority string   `json:"priority,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Todo manages the host's todo list.
type Todo struct{ module }

type todoPayload struct {
	Todo  TodoItem   `json:"todo"`
	Todos []TodoItem `json:"todos"`
}

func (t *Todo) Add(ctx context.Context, params AddTodo) (*TodoItem, error) {
	var resp todoPayload
	if err := t.call(ctx, "addTodo", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Todo, nil
}

func (t *Todo) Update(ctx context.Context, params UpdateTodo) (*TodoItem, error) {
	var resp todoPayload
	if err := t.call(ctx, "updateTodo", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Todo, nil
}

// List returns todos, optionally filtered by status.
func (t *Todo) List(ctx context.Context, status string) ([]TodoItem, error) {
	var resp todoPayload
	if err := t.call(ctx, "getTodoList", map[string]any{"status": status}, &resp); err != nil {
		return nil, err
	}
	return resp.Todos, nil
}
