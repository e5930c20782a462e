package telemetry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/codeboltai/codebolt-go/llm"
	"github.com/codeboltai/codebolt-go/tools"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	if m.LLMRequestsTotal == nil || m.LLMRequestDurationMs == nil || m.LLMTokensTotal == nil {
		t.Fatal("llm metrics should not be nil")
	}
	if m.WSPendingRequests == nil || m.WSMessagesTotal == nil {
		t.Fatal("websocket metrics should not be nil")
	}
	if m.ToolExecutionsTotal == nil || m.ToolDurationMs == nil {
		t.Fatal("tool metrics should not be nil")
	}
}

func TestRecordRequest(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordRequest(RequestLabels{
		Provider:         "openai",
		Model:            "gpt-4o",
		Status:           "success",
		DurationMs:       120,
		PromptTokens:     100,
		CompletionTokens: 50,
	})

	if v := testutil.ToFloat64(m.LLMRequestsTotal.WithLabelValues("openai", "gpt-4o", "success")); v != 1 {
		t.Errorf("requests_total = %v, want 1", v)
	}
	if v := testutil.ToFloat64(m.LLMTokensTotal.WithLabelValues("openai", "gpt-4o", "prompt")); v != 100 {
		t.Errorf("prompt tokens = %v, want 100", v)
	}
	if v := testutil.ToFloat64(m.LLMTokensTotal.WithLabelValues("openai", "gpt-4o", "completion")); v != 50 {
		t.Errorf("completion tokens = %v, want 50", v)
	}
}

func TestRecordRequest_ZeroTokensSkipped(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.RecordRequest(RequestLabels{Provider: "groq", Model: "m", Status: "rate_limit"})

	if n := testutil.CollectAndCount(m.LLMTokensTotal); n != 0 {
		t.Errorf("expected no token series, got %d", n)
	}
}

func TestObservers(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.MessageSent("fsEvent")
	m.MessageSent("fsEvent")
	m.MessageReceived("readFileResponse")
	m.PendingChanged(3)
	m.ToolHandled("read_file", "", 5*time.Millisecond)
	m.ToolHandled("read_file", tools.ErrorTypeInvalidParams, time.Millisecond)

	if v := testutil.ToFloat64(m.WSMessagesTotal.WithLabelValues("sent", "fsEvent")); v != 2 {
		t.Errorf("sent = %v, want 2", v)
	}
	if v := testutil.ToFloat64(m.WSMessagesTotal.WithLabelValues("received", "readFileResponse")); v != 1 {
		t.Errorf("received = %v, want 1", v)
	}
	if v := testutil.ToFloat64(m.WSPendingRequests); v != 3 {
		t.Errorf("pending = %v, want 3", v)
	}

	expected := `
# HELP codebolt_tool_executions_total Tool calls by outcome.
# TYPE codebolt_tool_executions_total counter
codebolt_tool_executions_total{status="INVALID_TOOL_PARAMS",tool="read_file"} 1
codebolt_tool_executions_total{status="success",tool="read_file"} 1
`
	if err := testutil.CollectAndCompare(m.ToolExecutionsTotal, strings.NewReader(expected)); err != nil {
		t.Error(err)
	}
}

type stubProvider struct {
	resp *llm.ChatCompletionResponse
	err  error
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-model" }
func (s *stubProvider) CreateCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	return s.resp, s.err
}
func (s *stubProvider) GetModels(ctx context.Context) ([]llm.Model, error) { return nil, nil }

func TestMiddleware(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	req := &llm.ChatCompletionRequest{Model: "m1", Messages: []llm.Message{llm.NewTextMessage(llm.RoleUser, "hi")}}

	ok := llm.WrapWithMiddleware(&stubProvider{resp: &llm.ChatCompletionResponse{
		Model: "m1",
		Usage: llm.Usage{PromptTokens: 3, CompletionTokens: 4},
	}}, Middleware("stub", m))
	if _, err := ok.CreateCompletion(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	failing := llm.WrapWithMiddleware(&stubProvider{err: llm.NewRateLimitError("slow down", nil, errors.New("429"))}, Middleware("stub", m))
	if _, err := failing.CreateCompletion(context.Background(), req); !llm.IsRateLimitError(err) {
		t.Fatalf("expected rate limit error, got %v", err)
	}

	if v := testutil.ToFloat64(m.LLMRequestsTotal.WithLabelValues("stub", "m1", "success")); v != 1 {
		t.Errorf("success = %v, want 1", v)
	}
	if v := testutil.ToFloat64(m.LLMRequestsTotal.WithLabelValues("stub", "m1", "rate_limit")); v != 1 {
		t.Errorf("rate_limit = %v, want 1", v)
	}
	if v := testutil.ToFloat64(m.LLMTokensTotal.WithLabelValues("stub", "m1", "completion")); v != 4 {
		t.Errorf("completion tokens = %v, want 4", v)
	}
	if n := testutil.CollectAndCount(m.LLMRequestDurationMs); n != 1 {
		t.Errorf("duration series = %d, want 1", n)
	}
}
