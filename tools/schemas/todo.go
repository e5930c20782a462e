package schemas

type AddTodoParams struct {
	Title    string   `json:"title" jsonschema_description:"What needs to be done"`
	Priority string   `json:"priority,omitempty" jsonschema:"enum=low,enum=medium,enum=high"`
	Tags     []string `json:"tags,omitempty"`
}

type UpdateTodoParams struct {
	ID       string   `json:"id" jsonschema_description:"Todo ID"`
	Title    string   `json:"title,omitempty"`
	Status   string   `json:"status,omitempty" jsonschema:"enum=pending,enum=processing,enum=completed,enum=cancelled"`
	Priority string   `json:"priority,omitempty" jsonschema:"enum=low,enum=medium,enum=high"`
	Tags     []string `json:"tags,omitempty"`
}

type ListTodosParams struct {
	Status string `json:"status,omitempty" jsonschema:"enum=pending,enum=processing,enum=completed,enum=cancelled"`
}
