package openrouter

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/codeboltai/codebolt-go/llm"
	"github.com/codeboltai/codebolt-go/llm/openai"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCompletion_SendsAttributionHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "https://test.com", r.Header.Get("HTTP-Referer"))
		assert.Equal(t, "TestApp", r.Header.Get("X-Title"))
		fmt.Fprint(w, `{"id":"gen-1","object":"chat.completion","created":1,"model":"anthropic/claude-3.5-sonnet","choices":[{"index":0,"message":{"role":"assistant","content":"hello"},"finish_reason":"stop"}],"usage":{"prompt_tokens":1,"completion_tokens":1,"total_tokens":2}}`)
	}))
	defer server.Close()

	c, err := New(Options{
		Options: openai.Options{APIKey: "test-api-key", BaseURL: server.URL},
		Referer: "https://test.com",
		AppName: "TestApp",
	}, zerolog.Nop())
	require.NoError(t, err)

	resp, err := c.CreateCompletion(context.Background(), &llm.ChatCompletionRequest{
		Model:    "anthropic/claude-3.5-sonnet",
		Messages: []llm.Message{llm.NewTextMessage(llm.RoleUser, "hi")},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", resp.FirstContent())
	require.NotNil(t, resp.MaxOutputTokens)
	assert.Equal(t, 8192, *resp.MaxOutputTokens)
}

func TestNew_DefaultAppNameAndNoReferer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("HTTP-Referer"))
		assert.Equal(t, DefaultAppName, r.Header.Get("X-Title"))
		fmt.Fprint(w, `{"id":"gen-2","object":"chat.completion","model":"x","choices":[{"index":0,"message":{"role":"assistant","content":"ok"},"finish_reason":"stop"}]}`)
	}))
	defer server.Close()

	c, err := New(Options{Options: openai.Options{APIKey: "k", BaseURL: server.URL}}, zerolog.Nop())
	require.NoError(t, err)
	_, err = c.CreateCompletion(context.Background(), &llm.ChatCompletionRequest{
		Messages: []llm.Message{llm.NewTextMessage(llm.RoleUser, "hi")},
	})
	require.NoError(t, err)
}

func TestHeaderTransport_DoesNotMutateCaller(t *testing.T) {
	rt := &headerTransport{
		base: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			assert.Equal(t, "v", r.Header.Get("X-Test"))
			return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody, Request: r}, nil
		}),
		headers: map[string]string{"X-Test": "v"},
	}
	req, err := http.NewRequest(http.MethodGet, "http://example.invalid", nil)
	require.NoError(t, err)

	_, err = rt.RoundTrip(req)
	require.NoError(t, err)
	assert.Empty(t, req.Header.Get("X-Test"))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
