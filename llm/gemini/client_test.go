package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeboltai/codebolt-go/llm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c, err := New(Options{APIKey: "g-key", BaseURL: server.URL}, zerolog.Nop())
	require.NoError(t, err)
	return c
}

func TestCreateCompletion_RoundTrip(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-1.5-pro:generateContent", r.URL.Path)
		assert.Equal(t, "g-key", r.Header.Get("x-goog-api-key"))

		var body generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotNil(t, body.SystemInstruction)
		assert.Equal(t, "be brief", body.SystemInstruction.Parts[0].Text)
		require.Len(t, body.Contents, 2)
		assert.Equal(t, "user", body.Contents[0].Role)
		assert.Equal(t, "hello", body.Contents[0].Parts[0].Text)
		assert.Equal(t, "model", body.Contents[1].Role)
		require.NotNil(t, body.GenerationConfig)
		assert.Equal(t, 100, body.GenerationConfig.MaxOutputTokens)
		require.Len(t, body.Tools, 1)
		assert.Equal(t, "read_file", body.Tools[0].FunctionDeclarations[0].Name)

		fmt.Fprint(w, `{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Hi "}, {"text": "there"}]}, "finishReason": "STOP", "index": 0}],
			"usageMetadata": {"promptTokenCount": 6, "candidatesTokenCount": 2, "totalTokenCount": 8},
			"modelVersion": "gemini-1.5-pro-002"
		}`)
	})

	resp, err := c.CreateCompletion(context.Background(), &llm.ChatCompletionRequest{
		Model: "gemini-1.5-pro",
		Messages: []llm.Message{
			llm.NewTextMessage(llm.RoleSystem, "be brief"),
			llm.NewTextMessage(llm.RoleUser, "hello"),
			llm.NewTextMessage(llm.RoleAssistant, "hi"),
		},
		MaxTokens: 100,
		Tools:     []llm.Tool{llm.NewFunctionTool("read_file", "Read a file", map[string]any{"type": "object"})},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hi there", resp.FirstContent())
	assert.Equal(t, "stop", resp.Choices[0].FinishReason)
	assert.Equal(t, 8, resp.Usage.TotalTokens)
	assert.Equal(t, "gemini-1.5-pro", resp.Model)
	require.NotNil(t, resp.TokenLimit)
	assert.Equal(t, 2097152, *resp.TokenLimit)
}

func TestCreateCompletion_FunctionCall(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		last := body.Contents[len(body.Contents)-1]
		require.NotNil(t, last.Parts[0].FunctionResponse)
		assert.Equal(t, "git_status", last.Parts[0].FunctionResponse.Name)
		assert.Equal(t, "clean", last.Parts[0].FunctionResponse.Response["content"])

		fmt.Fprint(w, `{"candidates": [{"content": {"role": "model", "parts": [{"functionCall": {"name": "git_log", "args": {"limit": 3}}}]}, "finishReason": "STOP"}]}`)
	})

	resp, err := c.CreateCompletion(context.Background(), &llm.ChatCompletionRequest{
		Messages: []llm.Message{
			llm.NewTextMessage(llm.RoleUser, "status"),
			{Role: llm.RoleAssistant, ToolCalls: []llm.ToolCall{{ID: "c1", Type: "function", Function: llm.FunctionCall{Name: "git_status", Arguments: "{}"}}}},
			llm.NewToolResultMessage("c1", "clean"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "tool_calls", resp.Choices[0].FinishReason)
	require.Len(t, resp.Choices[0].Message.ToolCalls, 1)
	assert.Equal(t, "git_log", resp.Choices[0].Message.ToolCalls[0].Function.Name)
	assert.EqualValues(t, 3, resp.Choices[0].Message.ToolCalls[0].Function.ParseArguments()["limit"])
}

func TestCreateCompletion_StreamSkipsMalformedEvents(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/gemini-2.0-flash:streamGenerateContent", r.URL.Path)
		assert.Equal(t, "sse", r.URL.Query().Get("alt"))
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"role\":\"model\",\"parts\":[{\"text\":\"Hel\"}]}}]}\n\n")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\n\n")
		fmt.Fprint(w, "data: {\"candidates\":[{\"content\":{\"role\":\"model\",\"parts\":[{\"text\":\"lo\"}]},\"finishReason\":\"MAX_TOKENS\"}],\"usageMetadata\":{\"promptTokenCount\":1,\"candidatesTokenCount\":2,\"totalTokenCount\":3}}\n\n")
	})

	resp, err := c.CreateCompletion(context.Background(), &llm.ChatCompletionRequest{
		Messages: []llm.Message{llm.NewTextMessage(llm.RoleUser, "hi")},
		Stream:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello", resp.FirstContent())
	assert.Equal(t, "length", resp.Choices[0].FinishReason)
	assert.Equal(t, 3, resp.Usage.TotalTokens)
}

func TestCreateCompletion_EmptyMessagesNoRequest(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.CreateCompletion(context.Background(), &llm.ChatCompletionRequest{Messages: []llm.Message{}})
	assert.ErrorIs(t, err, llm.ErrEmptyMessages)
	assert.False(t, called)
}

func TestCreateCompletion_VendorError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	})

	_, err := c.CreateCompletion(context.Background(), &llm.ChatCompletionRequest{
		Messages: []llm.Message{llm.NewTextMessage(llm.RoleUser, "hi")},
	})
	var llmErr *llm.Error
	require.True(t, errors.As(err, &llmErr))
	assert.Equal(t, "API key not valid", llmErr.Message)
	assert.Equal(t, http.StatusBadRequest, llmErr.StatusCode)
}

func TestGetModels_Idempotent(t *testing.T) {
	c, err := New(Options{APIKey: "k"}, zerolog.Nop())
	require.NoError(t, err)
	first, _ := c.GetModels(context.Background())
	second, _ := c.GetModels(context.Background())
	assert.Equal(t, first, second)
	assert.Equal(t, "gemini-1.5-flash", first[0].ID)
}
