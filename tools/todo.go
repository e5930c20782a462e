package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeboltai/codebolt-go/modules"
	"github.com/codeboltai/codebolt-go/tools/schemas"
)

// TodoTools builds the todo list tools.
func TodoTools(t Todos) []Tool {
	return []Tool{
		newTool("todo_add",
			"Add an item to the todo list.",
			func(p *schemas.AddTodoParams) error {
				return firstErr(
					required("title", p.Title),
					optionalOneOf("priority", p.Priority, modules.TodoPriorities),
				)
			},
			func(ctx context.Context, p *schemas.AddTodoParams) (Result, error) {
				item, err := t.Add(ctx, modules.AddTodo{Title: p.Title, Priority: p.Priority, Tags: p.Tags})
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Added todo %s: %s", item.ID, item.Title),
					ReturnDisplay: "Added todo: " + item.Title,
				}, nil
			}),

		newTool("todo_update",
			"Update a todo's title, status, priority or tags.",
			func(p *schemas.UpdateTodoParams) error {
				return firstErr(
					required("id", p.ID),
					optionalOneOf("status", p.Status, modules.TodoStatuses),
					optionalOneOf("priority", p.Priority, modules.TodoPriorities),
				)
			},
			func(ctx context.Context, p *schemas.UpdateTodoParams) (Result, error) {
				item, err := t.Update(ctx, modules.UpdateTodo{
					ID:       p.ID,
					Title:    p.Title,
					Status:   p.Status,
					Priority: p.Priority,
					Tags:     p.Tags,
				})
				if err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Updated todo %s: %s [%s]", item.ID, item.Title, item.Status),
					ReturnDisplay: "Updated todo: " + item.Title,
				}, nil
			}),

		newTool("todo_list",
			"List todos, optionally filtered by status.",
			func(p *schemas.ListTodosParams) error {
				return optionalOneOf("status", p.Status, modules.TodoStatuses)
			},
			func(ctx context.Context, p *schemas.ListTodosParams) (Result, error) {
				items, err := t.List(ctx, p.Status)
				if err != nil {
					return Result{}, err
				}
				if len(items) == 0 {
					return Result{LLMContent: "The todo list is empty", ReturnDisplay: "No todos"}, nil
				}
				var b strings.Builder
				for _, it := range items {
					fmt.Fprintf(&b, "- [%s] %s (%s)\n", it.Status, it.Title, it.ID)
				}
				return Result{
					LLMContent:    b.String(),
					ReturnDisplay: fmt.Sprintf("%d todos", len(items)),
				}, nil
			}),
	}
}
