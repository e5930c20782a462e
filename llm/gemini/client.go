package gemini

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codeboltai/codebolt-go/llm"
	"github.com/rs/zerolog"
)

const (
	// ProviderName identifies this adapter.
	ProviderName = "gemini"

	// DefaultBaseURL is the Generative Language API root.
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is used when neither the request nor the options name a model.
	DefaultModel = "gemini-2.0-flash"
)

// Options configures the Gemini client.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Client implements llm.Provider over the Gemini generateContent REST API.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
	logger  zerolog.Logger
}

// New creates a new Client.
func New(opts Options, logger zerolog.Logger) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	return &Client{
		apiKey:  opts.APIKey,
		baseURL: baseURL,
		model:   model,
		client:  httpClient,
		logger:  logger.With().Str("component", "llm").Str("provider", ProviderName).Logger(),
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

	model := req.Model
	if model == "" {
		model = c.model
	}

	httpReq, err := c.transformRequest(ctx, model, req)
	if err != nil {
		return nil, llm.HandleError(ProviderName, err)
	}

	httpResp, err := llm.Send(c.client, httpReq)
	if err != nil {
		return nil, llm.HandleError(ProviderName, err)
	}

	var resp *llm.ChatCompletionResponse
	if req.Stream {
		resp, err = c.aggregateStream(httpResp)
	} else {
		var body generateContentResponse
		if err = llm.DecodeResponse(httpResp, &body); err == nil {
			resp = transformResponse(&body)
		}
	}
	if err != nil {
		return nil, llm.HandleError(ProviderName, err)
	}

	// modelVersion may carry a revision suffix.
	resp.Model = model
	Models.AttachFor(resp, model)
	return resp, nil
}

// GetModels implements llm.Provider.
func (c *Client) GetModels(ctx context.Context) ([]llm.Model, error) {
	return Models.Models(ProviderName), nil
}

func (c *Client) transformRequest(ctx context.Context, model string, req *llm.ChatCompletionRequest) (*http.Request, error) {
	method := "generateContent"
	query := url.Values{}
	if req.Stream {
		method = "streamGenerateContent"
		query.Set("alt", "sse")
	}

	endpoint := fmt.Sprintf("%s/models/%s:%s", c.baseURL, url.PathEscape(model), method)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	httpReq, _, err := llm.NewJSONRequest(ctx, http.MethodPost, endpoint, toGenerateContentRequest(req))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	return httpReq, nil
}

func (c *Client) aggregateStream(httpResp *http.Response) (*llm.ChatCompletionResponse, error) {
	acc := llm.NewStreamAccumulator()
	calls := 0
	sawCall := false

	err := llm.ReadEventStream(httpResp, func(_ string, data []byte) error {
		var chunk generateContentResponse
		if !llm.DecodeEvent(c.logger, data, &chunk) {
			return nil
		}
		acc.SetMeta(chunk.ResponseID, chunk.ModelVersion, 0)
		if chunk.UsageMetadata != nil {
			acc.SetUsage(chunk.UsageMetadata.usage())
		}
		if len(chunk.Candidates) == 0 {
			return nil
		}
		cand := chunk.Candidates[0]
		for _, part := range cand.Content.Parts {
			if part.FunctionCall != nil {
				acc.AddToolCallDelta(calls, toolCallID(calls), part.FunctionCall.Name, argumentsJSON(part.FunctionCall.Args))
				calls++
				sawCall = true
				continue
			}
			acc.AddText(part.Text)
		}
		if cand.FinishReason != "" {
			acc.SetFinishReason(finishReason(cand.FinishReason, sawCall))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return acc.Response(), nil
}

var _ llm.Provider = (*Client)(nil)
