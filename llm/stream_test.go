package llm

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func sseResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"text/event-stream"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestReadEventStream(t *testing.T) {
	body := ": keep-alive\n\n" +
		"event: message_start\ndata: {\"a\":1}\n\n" +
		"data: {\"a\":2}\n\n" +
		"data: [DONE]\n\n" +
		"data: {\"a\":3}\n\n"

	var types []string
	var payloads []string
	err := ReadEventStream(sseResponse(body), func(eventType string, data []byte) error {
		types = append(types, eventType)
		payloads = append(payloads, string(data))
		return nil
	})
	if err != nil {
		t.Fatalf("ReadEventStream failed: %v", err)
	}
	if len(payloads) != 2 {
		t.Fatalf("Expected 2 events before [DONE], got %d: %v", len(payloads), payloads)
	}
	if types[0] != "message_start" {
		t.Errorf("Expected event type message_start, got %q", types[0])
	}
	if payloads[1] != `{"a":2}` {
		t.Errorf("Unexpected payload %q", payloads[1])
	}
}

func TestDecodeEventSkipsMalformed(t *testing.T) {
	var v struct{ A int }
	if DecodeEvent(zerolog.Nop(), []byte(`{"A":`), &v) {
		t.Error("Expected truncated JSON to be rejected")
	}
	if !DecodeEvent(zerolog.Nop(), []byte(`{"A":4}`), &v) || v.A != 4 {
		t.Errorf("Expected decoded value 4, got %d", v.A)
	}
}

func TestStreamAccumulator(t *testing.T) {
	acc := NewStreamAccumulator()
	acc.SetMeta("chatcmpl-1", "gpt-4o", 1700000000)
	acc.SetMeta("ignored", "ignored", 1)
	acc.AddText("Hel")
	acc.AddText("lo")
	acc.AddToolCallDelta(1, "call_b", "second", `{"x"`)
	acc.AddToolCallDelta(0, "call_a", "first", `{}`)
	acc.AddToolCallDelta(1, "", "", `:1}`)
	acc.SetFinishReason("tool_calls")
	acc.SetFinishReason("")
	acc.SetUsage(Usage{PromptTokens: 3, CompletionTokens: 4})
	acc.SetUsage(Usage{})

	resp := acc.Response()
	if resp.ID != "chatcmpl-1" || resp.Model != "gpt-4o" || resp.Created != 1700000000 {
		t.Errorf("Unexpected metadata: %+v", resp)
	}
	msg := resp.Choices[0].Message
	if msg.Content != "Hello" {
		t.Errorf("Expected content Hello, got %q", msg.Content)
	}
	if len(msg.ToolCalls) != 2 {
		t.Fatalf("Expected 2 tool calls, got %d", len(msg.ToolCalls))
	}
	if msg.ToolCalls[0].ID != "call_a" || msg.ToolCalls[1].Function.Arguments != `{"x":1}` {
		t.Errorf("Unexpected tool calls: %+v", msg.ToolCalls)
	}
	if resp.Choices[0].FinishReason != "tool_calls" {
		t.Errorf("Expected finish reason tool_calls, got %q", resp.Choices[0].FinishReason)
	}
	if resp.Usage.TotalTokens != 7 {
		t.Errorf("Expected total tokens 7, got %d", resp.Usage.TotalTokens)
	}
}
