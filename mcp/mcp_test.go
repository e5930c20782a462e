package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/codeboltai/codebolt-go/modules"
	"github.com/codeboltai/codebolt-go/tools"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTodos struct{}

func (stubTodos) Add(ctx context.Context, p modules.AddTodo) (*modules.TodoItem, error) {
	return &modules.TodoItem{ID: "1", Title: p.Title, Status: modules.TodoPending}, nil
}

func (stubTodos) Update(ctx context.Context, p modules.UpdateTodo) (*modules.TodoItem, error) {
	return &modules.TodoItem{ID: p.ID, Title: "x", Status: p.Status}, nil
}

func (stubTodos) List(ctx context.Context, status string) ([]modules.TodoItem, error) {
	return nil, nil
}

func startInProcess(t *testing.T) *Client {
	t.Helper()
	registry := tools.NewRegistry(zerolog.Nop())
	registry.Register(tools.TodoTools(stubTodos{})...)

	srv, err := NewServer(registry, "codebolt", "test", zerolog.Nop())
	require.NoError(t, err)

	c, err := NewInProcessClient(zerolog.Nop(), srv)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.Start(context.Background()))
	return c
}

func TestServer_ListTools(t *testing.T) {
	c := startInProcess(t)

	defs, err := c.ListTools(context.Background())
	require.NoError(t, err)

	names := make([]string, 0, len(defs))
	for _, d := range defs {
		names = append(names, d.Name)
	}
	assert.ElementsMatch(t, []string{"todo_add", "todo_list", "todo_update"}, names)

	for _, d := range defs {
		if d.Name == "todo_add" {
			assert.Equal(t, "object", d.InputSchema["type"])
			assert.Equal(t, []string{"title"}, d.InputSchema["required"])
		}
	}
}

func TestServer_CallTool(t *testing.T) {
	c := startInProcess(t)

	res, err := c.CallTool(context.Background(), "todo_add", map[string]any{"title": "ship it"})
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Equal(t, "Added todo 1: ship it", res.Text)

	res, err = c.CallTool(context.Background(), "todo_add", map[string]any{"priority": "urgent"})
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, res.Text, "title is required")
}

func TestRemoteTools(t *testing.T) {
	c := startInProcess(t)

	remote, err := RemoteTools(context.Background(), c, "todos.", NewNameAdapter())
	require.NoError(t, err)
	require.Len(t, remote, 3)

	var add tools.Tool
	for _, rt := range remote {
		if rt.Name() == "todos_todo_add" {
			add = rt
		}
	}
	require.NotNil(t, add)

	assert.Error(t, add.Validate(json.RawMessage(`{}`)))

	res := add.Execute(context.Background(), json.RawMessage(`{"title":"remote"}`))
	require.Nil(t, res.Error)
	assert.Equal(t, "Added todo 1: remote", res.LLMContent)

	res = add.Execute(context.Background(), json.RawMessage(`{"title":""}`))
	require.NotNil(t, res.Error)
	assert.Equal(t, tools.ErrorTypeExecutionFailed, res.Error.Type)
}

func TestNameAdapter(t *testing.T) {
	a := NewNameAdapter()
	assert.Equal(t, "gmail_messages_list", a.GetSafeName("gmail.messages.list"))
	assert.Equal(t, "gmail_messages_list", a.GetSafeName("gmail.messages.list"))
	assert.Equal(t, "gmail_messages_list_2", a.GetSafeName("gmail/messages/list"))

	orig, ok := a.ToOriginalName("gmail_messages_list_2")
	require.True(t, ok)
	assert.Equal(t, "gmail/messages/list", orig)

	_, ok = a.ToOriginalName("unknown")
	assert.False(t, ok)
}

func TestNameAdapter_Truncates(t *testing.T) {
	a := NewNameAdapter()
	long := strings.Repeat("a.", 50)

	first := a.GetSafeName(long)
	assert.Len(t, first, 64)

	second := a.GetSafeName(strings.Repeat("a/", 50))
	assert.Len(t, second, 64)
	assert.True(t, strings.HasSuffix(second, "_2"))
}

func TestNewStdioClient_RequiresCommand(t *testing.T) {
	_, err := NewStdioClient(zerolog.Nop(), "", nil, nil)
	assert.Error(t, err)
	_, err = NewHTTPClient(zerolog.Nop(), "")
	assert.Error(t, err)
}
