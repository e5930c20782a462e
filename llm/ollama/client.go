package ollama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/codeboltai/codebolt-go/llm"
	"github.com/ollama/ollama/api"
	"github.com/rs/zerolog"
)

const (
	// ProviderName identifies this adapter.
	ProviderName = "ollama"

	// DefaultModel is used when neither the request nor the options name a model.
	DefaultModel = "llama3.1"
)

// Options configures the Ollama client.
type Options struct {
	// Host is the Ollama server; empty means OLLAMA_HOST or http://localhost:11434.
	Host       string
	Model      string
	HTTPClient *http.Client
}

// Client implements llm.Provider for Ollama's chat API.
type Client struct {
	client *api.Client
	model  string
	logger zerolog.Logger
}

// New creates a new Client.
func New(opts Options, logger zerolog.Logger) (*Client, error) {
	var client *api.Client

	if opts.Host != "" {
		baseURL, err := parseHost(opts.Host)
		if err != nil {
			return nil, fmt.Errorf("invalid host: %w", err)
		}
		httpClient := opts.HTTPClient
		if httpClient == nil {
			httpClient = &http.Client{}
		}
		client = api.NewClient(baseURL, httpClient)
	} else {
		var err error
		client, err = api.ClientFromEnvironment()
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client: client,
		model:  model,
		logger: logger.With().Str("component", "llm").Str("provider", ProviderName).Logger(),
	}, nil
}

// parseHost parses a host string into a URL.
func parseHost(host string) (*url.URL, error) {
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return url.Parse(host)
}

// Name implements llm.Provider.
func (c *Client) Name() string { return ProviderName }

// Model implements llm.Provider.
func (c *Client) Model() string { return c.model }

// CreateCompletion implements llm.Provider. Ollama always answers with
// newline-delimited chunks; with stream disabled there is exactly one.
func (c *Client) CreateCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	if req == nil {
		return nil, llm.NewInvalidRequestError("request is required", nil).WithProvider(ProviderName)
	}
	if err := llm.ValidateMessages(req.Messages); err != nil {
		return nil, llm.HandleError(ProviderName, err)
	}

	chatReq := ToChatRequest(req, c.model)

	acc := llm.NewStreamAccumulator()
	calls := 0
	err := c.client.Chat(ctx, chatReq, func(resp api.ChatResponse) error {
		acc.SetMeta("", resp.Model, resp.CreatedAt.Unix())
		acc.AddText(resp.Message.Content)
		for _, tc := range resp.Message.ToolCalls {
			acc.AddToolCallDelta(calls, fmt.Sprintf("call_%d", calls), tc.Function.Name, argumentsJSON(tc.Function.Arguments))
			calls++
		}
		if resp.Done {
			reason := resp.DoneReason
			if calls > 0 {
				reason = "tool_calls"
			}
			acc.SetFinishReason(reason)
			acc.SetUsage(llm.Usage{
				PromptTokens:     resp.PromptEvalCount,
				CompletionTokens: resp.EvalCount,
			})
		}
		return nil
	})
	if err != nil {
		return nil, convertError(err)
	}

	resp := acc.Response()
	resp.ID = fmt.Sprintf("ollama-%d", resp.Created)
	if resp.Model == "" {
		resp.Model = chatReq.Model
	}
	Models.AttachFor(resp, chatReq.Model)
	return resp, nil
}

// GetModels implements llm.Provider.
func (c *Client) GetModels(ctx context.Context) ([]llm.Model, error) {
	return Models.Models(ProviderName), nil
}

func argumentsJSON(args api.ToolCallFunctionArguments) string {
	if len(args) == 0 {
		return "{}"
	}
	b, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func convertError(err error) error {
	var statusErr api.StatusError
	if errors.As(err, &statusErr) {
		message := statusErr.ErrorMessage
		if message == "" {
			message = statusErr.Status
		}
		return llm.FromStatus(ProviderName, statusErr.StatusCode, message, nil, err)
	}
	return llm.HandleError(ProviderName, err)
}

var _ llm.Provider = (*Client)(nil)
