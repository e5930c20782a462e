package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/codeboltai/codebolt-go/llm"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// ProviderName identifies this adapter.
	ProviderName = "openai"

	// DefaultModel is used when neither the request nor the options name a model.
	DefaultModel = "gpt-4o-mini"

	// DefaultEmbeddingModel is used by CreateEmbedding when no model is given.
	DefaultEmbeddingModel = "text-embedding-3-small"
)

// Options configures an OpenAI or OpenAI-compatible client.
type Options struct {
	APIKey       string
	BaseURL      string
	Model        string
	Organization string
	// HTTPClient overrides the transport, e.g. to inject headers.
	HTTPClient *http.Client
}

// Client implements llm.Provider and llm.Embedder over the OpenAI chat API.
// Vendors that speak the same wire protocol reuse it through NewCompatible.
type Client struct {
	client       *openai.Client
	name         string
	model        string
	table        llm.ModelTable
	remoteModels bool
	logger       zerolog.Logger
}

// New creates a client for api.openai.com (or opts.BaseURL).
// If opts.APIKey is empty, it will return an error.
func New(opts Options, logger zerolog.Logger) (*Client, error) {
	c, err := newClient(ProviderName, opts, Models, logger)
	if err != nil {
		return nil, err
	}
	c.remoteModels = true
	if c.model == "" {
		c.model = DefaultModel
	}
	return c, nil
}

// NewCompatible creates a client for a vendor exposing the OpenAI wire protocol.
// GetModels lists table instead of calling the vendor.
func NewCompatible(name string, opts Options, table llm.ModelTable, logger zerolog.Logger) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("%s: base url is required", name)
	}
	return newClient(name, opts, table, logger)
}

func newClient(name string, opts Options, table llm.ModelTable, logger zerolog.Logger) (*Client, error) {
	if opts.APIKey == "" {
		return nil, fmt.Errorf("%s: api key is required", name)
	}

	config := openai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		config.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	}
	if opts.Organization != "" {
		config.OrgID = opts.Organization
	}
	if opts.HTTPClient != nil {
		config.HTTPClient = opts.HTTPClient
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		name:   name,
		model:  opts.Model,
		table:  table,
		logger: logger.With().Str("component", "llm").Str("provider", name).Logger(),
	}, nil
}

// Name implements llm.Provider.
func (c *Client) Name() string { return c.name }

// Model implements llm.Provider.
func (c *Client) Model() string { return c.model }

// CreateCompletion implements llm.Provider.
func (c *Client) CreateCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	if req == nil {
		return nil, llm.NewInvalidRequestError("request is required", nil).WithProvider(c.name)
	}
	if err := llm.ValidateMessages(req.Messages); err != nil {
		return nil, llm.HandleError(c.name, err)
	}

	chatReq := ToChatRequest(req)
	if chatReq.Model == "" {
		chatReq.Model = c.model
	}
	if chatReq.Model == "" {
		return nil, llm.NewInvalidRequestError("model is required", nil).WithProvider(c.name)
	}

	var resp *llm.ChatCompletionResponse
	if req.Stream {
		stream, err := c.client.CreateChatCompletionStream(ctx, chatReq)
		if err != nil {
			return nil, c.convertError(err)
		}
		resp, err = aggregateStream(stream)
		if err != nil {
			return nil, c.convertError(err)
		}
	} else {
		chatResp, err := c.client.CreateChatCompletion(ctx, chatReq)
		if err != nil {
			return nil, c.convertError(err)
		}
		resp = FromChatResponse(chatResp)
	}

	if resp.Model == "" {
		resp.Model = chatReq.Model
	}
	c.table.AttachFor(resp, chatReq.Model)
	return resp, nil
}

// GetModels implements llm.Provider. The OpenAI adapter asks the API and
// classifies each id; compatible vendors return their static table.
func (c *Client) GetModels(ctx context.Context) ([]llm.Model, error) {
	if !c.remoteModels {
		return c.table.Models(c.name), nil
	}

	list, err := c.client.ListModels(ctx)
	if err != nil {
		return nil, c.convertError(err)
	}

	models := lo.Map(list.Models, func(m openai.Model, _ int) llm.Model {
		return c.table.Enrich(llm.Model{
			ID:       m.ID,
			Name:     m.ID,
			Provider: c.name,
			Type:     ClassifyModel(m.ID),
		})
	})
	return models, nil
}

// CreateEmbedding implements llm.Embedder.
func (c *Client) CreateEmbedding(ctx context.Context, input []string, model string) (*llm.EmbeddingResponse, error) {
	if len(input) == 0 {
		return nil, llm.NewInvalidRequestError("input must not be empty", nil).WithProvider(c.name)
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: input,
		Model: openai.EmbeddingModel(model),
	})
	if err != nil {
		return nil, c.convertError(err)
	}

	return &llm.EmbeddingResponse{
		Object: resp.Object,
		Model:  string(resp.Model),
		Data: lo.Map(resp.Data, func(e openai.Embedding, _ int) llm.Embedding {
			return llm.Embedding{Index: e.Index, Embedding: e.Embedding}
		}),
		Usage: llm.Usage{
			PromptTokens: resp.Usage.PromptTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// ClassifyModel derives a model's type from substrings of its id.
func ClassifyModel(id string) llm.ModelType {
	lower := strings.ToLower(id)
	switch {
	case strings.Contains(lower, "embedding"):
		return llm.ModelTypeEmbedding
	case strings.Contains(lower, "dall-e"), strings.Contains(lower, "image"):
		return llm.ModelTypeImage
	case strings.Contains(lower, "whisper"), strings.Contains(lower, "tts"), strings.Contains(lower, "audio"):
		return llm.ModelTypeAudio
	default:
		return llm.ModelTypeChat
	}
}

// convertError converts go-openai errors to llm.Error types.
func (c *Client) convertError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return llm.FromStatus(c.name, apiErr.HTTPStatusCode, apiErr.Message, nil, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		message := http.StatusText(reqErr.HTTPStatusCode)
		if reqErr.Err != nil {
			message = reqErr.Err.Error()
		}
		return llm.FromStatus(c.name, reqErr.HTTPStatusCode, message, nil, err)
	}

	return llm.HandleError(c.name, err)
}

var (
	_ llm.Provider = (*Client)(nil)
	_ llm.Embedder = (*Client)(nil)
)
