package agent

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	ctxpkg "github.com/codeboltai/codebolt-go/context"
	"github.com/codeboltai/codebolt-go/llm"
	"github.com/codeboltai/codebolt-go/messaging"
	"github.com/codeboltai/codebolt-go/notifications"
	"github.com/codeboltai/codebolt-go/tools"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedProvider struct {
	replies  []llm.Message
	err      error
	requests []*llm.ChatCompletionRequest
}

func (p *scriptedProvider) Name() string  { return "stub" }
func (p *scriptedProvider) Model() string { return "stub-model" }

func (p *scriptedProvider) CreateCompletion(_ context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	i := len(p.requests) - 1
	if i >= len(p.replies) {
		i = len(p.replies) - 1
	}
	return &llm.ChatCompletionResponse{Model: "stub-model", Choices: []llm.Choice{{Message: p.replies[i]}}}, nil
}

func (p *scriptedProvider) GetModels(context.Context) ([]llm.Model, error) { return nil, nil }

type call struct {
	name    string
	args    string
	agentID string
}

type stubTools struct {
	calls []call
	fail  bool
}

func (s *stubTools) Handle(ctx context.Context, name string, args json.RawMessage) tools.Result {
	s.calls = append(s.calls, call{name: name, args: string(args), agentID: ctxpkg.AgentID(ctx)})
	if s.fail {
		return tools.ErrorResult(tools.ErrorTypeExecutionFailed, "boom")
	}
	return tools.Result{LLMContent: "ok:" + name}
}

func (s *stubTools) Specs() []llm.Tool {
	return []llm.Tool{
		llm.NewFunctionTool("read_file", "read", nil),
		llm.NewFunctionTool("write_file", "write", nil),
	}
}

type spySender struct{ sent []messaging.Envelope }

func (s *spySender) Send(env messaging.Envelope) error {
	s.sent = append(s.sent, env)
	return nil
}

func toolCallMsg(id, name, args string) llm.Message {
	return llm.Message{
		Role: llm.RoleAssistant,
		ToolCalls: []llm.ToolCall{{
			ID:       id,
			Type:     "function",
			Function: llm.FunctionCall{Name: name, Arguments: args},
		}},
	}
}

func TestNewRunnerRequiresProviderAndAgent(t *testing.T) {
	_, err := NewRunner(zerolog.Nop(), nil, NewAgent("a", "A"), nil, nil)
	assert.Error(t, err)
	_, err = NewRunner(zerolog.Nop(), &scriptedProvider{}, nil, &stubTools{}, nil)
	assert.Error(t, err)
}

func TestNewRunnerRequiresToolExecutor(t *testing.T) {
	provider := &scriptedProvider{replies: []llm.Message{toolCallMsg("c1", "read_file", `{}`)}}
	r, err := NewRunner(zerolog.Nop(), provider, NewAgent("a", "A"), nil, nil)
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Empty(t, provider.requests)
}

func TestRunAgentExecutesToolsUntilAnswer(t *testing.T) {
	provider := &scriptedProvider{replies: []llm.Message{
		toolCallMsg("c1", "read_file", `{"path":"a.go"}`),
		{Role: llm.RoleAssistant, Content: "  done  "},
	}}
	toolExec := &stubTools{}
	ag := NewAgent("agent-1", "Coder")
	ag.SystemPrompt = "be brief"

	r, err := NewRunner(zerolog.Nop(), provider, ag, toolExec, nil)
	require.NoError(t, err)

	out, err := r.RunAgent(context.Background(), "read it", nil)
	require.NoError(t, err)
	assert.Equal(t, "done", out)

	require.Len(t, toolExec.calls, 1)
	assert.Equal(t, "read_file", toolExec.calls[0].name)
	assert.JSONEq(t, `{"path":"a.go"}`, toolExec.calls[0].args)
	assert.Equal(t, "agent-1", toolExec.calls[0].agentID)

	require.Len(t, provider.requests, 2)
	first := provider.requests[0]
	assert.Equal(t, llm.RoleSystem, first.Messages[0].Role)
	assert.Equal(t, "read it", first.Messages[1].Content)
	assert.Len(t, first.Tools, 2)

	second := provider.requests[1].Messages
	last := second[len(second)-1]
	assert.Equal(t, llm.RoleTool, last.Role)
	assert.Equal(t, "c1", last.ToolCallID)
	assert.Equal(t, "ok:read_file", last.Content)
}

func TestRunAgentFiltersToolsByAllowlist(t *testing.T) {
	provider := &scriptedProvider{replies: []llm.Message{{Content: "hi"}}}
	ag := NewAgent("a", "A")
	ag.Tools = []string{"write_file"}

	r, err := NewRunner(zerolog.Nop(), provider, ag, &stubTools{}, nil)
	require.NoError(t, err)
	_, err = r.RunAgent(context.Background(), "x", nil)
	require.NoError(t, err)

	require.Len(t, provider.requests[0].Tools, 1)
	assert.Equal(t, "write_file", provider.requests[0].Tools[0].Function.Name)
}

func TestRunAgentStopsOnRepeatedFailures(t *testing.T) {
	provider := &scriptedProvider{replies: []llm.Message{toolCallMsg("c", "read_file", `{"path":"x"}`)}}
	toolExec := &stubTools{fail: true}

	r, err := NewRunner(zerolog.Nop(), provider, NewAgent("a", "A"), toolExec, nil)
	require.NoError(t, err)

	_, err = r.RunAgent(context.Background(), "x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repeatedly failed")
	assert.Len(t, toolExec.calls, maxRepeatedFailures)
}

func TestRunAgentStopsAfterMaxIterations(t *testing.T) {
	provider := &scriptedProvider{replies: []llm.Message{toolCallMsg("c", "read_file", `{}`)}}

	r, err := NewRunner(zerolog.Nop(), provider, NewAgent("a", "A"), &stubTools{}, nil)
	require.NoError(t, err)

	_, err = r.RunAgent(context.Background(), "x", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum iterations")
	assert.Len(t, provider.requests, maxIterations)
}

func TestRunAgentSendsNotifications(t *testing.T) {
	provider := &scriptedProvider{replies: []llm.Message{{Content: "answer"}}}
	spy := &spySender{}

	r, err := NewRunner(zerolog.Nop(), provider, NewAgent("a", "A"), &stubTools{}, notifications.New(spy))
	require.NoError(t, err)
	_, err = r.RunAgent(context.Background(), "q", nil)
	require.NoError(t, err)

	require.Len(t, spy.sent, 3)
	assert.Equal(t, notifications.TypeLLM, spy.sent[0].Type)
	assert.Equal(t, "inferenceRequest", spy.sent[0].Action)
	assert.Equal(t, "inferenceResult", spy.sent[1].Action)
	assert.Equal(t, spy.sent[0].ToolUseID, spy.sent[1].ToolUseID)
	assert.False(t, spy.sent[1].IsError)
	assert.Equal(t, notifications.TypeChat, spy.sent[2].Type)
	assert.Equal(t, "answer", spy.sent[2].Content)
}

func TestRunAgentPropagatesProviderError(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("down")}
	spy := &spySender{}

	r, err := NewRunner(zerolog.Nop(), provider, NewAgent("a", "A"), &stubTools{}, notifications.New(spy))
	require.NoError(t, err)
	_, err = r.RunAgent(context.Background(), "q", nil)
	require.EqualError(t, err, "down")

	require.Len(t, spy.sent, 2)
	assert.True(t, spy.sent[1].IsError)
	assert.Equal(t, "down", spy.sent[1].Content)
}
