package anthropic

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/codeboltai/codebolt-go/llm"
	"github.com/rs/zerolog"
)

const (
	// ProviderName identifies this adapter.
	ProviderName = "anthropic"

	// DefaultModel is used when neither the request nor the options name a model.
	DefaultModel = "claude-sonnet-4-20250514"

	// defaultMaxTokens is sent when the request leaves max_tokens unset; the API requires it.
	defaultMaxTokens = 4096
)

// Options configures the Anthropic client.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Client implements llm.Provider for Anthropic's Messages API.
type Client struct {
	client *anthropic.Client
	model  string
	logger zerolog.Logger
}

// New creates a new Client with the given options.
func New(opts Options, logger zerolog.Logger) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	client := anthropic.NewClient(reqOpts...)
	return &Client{
		client: &client,
		model:  model,
		logger: logger.With().Str("component", "llm").Str("provider", ProviderName).Logger(),
	}, nil
}

// Name implements llm.Provider.
func (c *Client) Name() string { return ProviderName }

// Model implements llm.Provider.
func (c *Client) Model() string { return c.model }

// CreateCompletion implements llm.Provider.
func (c *Client) CreateCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	if req == nil {
		return nil, llm.NewInvalidRequestError("request is required", nil).WithProvider(ProviderName)
	}
	if err := llm.ValidateMessages(req.Messages); err != nil {
		return nil, llm.HandleError(ProviderName, err)
	}

	params := ToMessageNewParams(req, c.model)

	var resp *llm.ChatCompletionResponse
	if req.Stream {
		stream := c.client.Messages.NewStreaming(ctx, params)
		var err error
		resp, err = aggregateStream(stream)
		if err != nil {
			return nil, convertError(err)
		}
	} else {
		message, err := c.client.Messages.New(ctx, params)
		if err != nil {
			return nil, convertError(err)
		}
		resp = FromMessage(message)
	}

	if resp.Model == "" {
		resp.Model = string(params.Model)
	}
	Models.AttachFor(resp, string(params.Model))
	return resp, nil
}

// GetModels implements llm.Provider.
func (c *Client) GetModels(ctx context.Context) ([]llm.Model, error) {
	return Models.Models(ProviderName), nil
}

// convertError converts Anthropic SDK errors to llm.Error types.
func convertError(err error) error {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return llm.HandleError(ProviderName, err)
	}

	message := llm.VendorMessage([]byte(apiErr.RawJSON()))
	if message == "" {
		message = http.StatusText(apiErr.StatusCode)
	}

	var retryAfter *time.Duration
	if apiErr.Response != nil {
		retryAfter = llm.RetryAfterFromHeader(apiErr.Response.Header)
	}
	return llm.FromStatus(ProviderName, apiErr.StatusCode, message, retryAfter, err)
}

var _ llm.Provider = (*Client)(nil)
