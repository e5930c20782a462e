package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Provider is the capability set every vendor adapter implements.
// Implementations should handle provider-specific details internally.
type Provider interface {
	// Name returns the provider identifier, e.g. "openai".
	Name() string

	// Model returns the default model used when a request does not name one.
	Model() string

	// CreateCompletion sends a chat completion request and returns the
	// normalized response. Streaming requests are aggregated into one response.
	CreateCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)

	// GetModels lists the models known for this provider.
	GetModels(ctx context.Context) ([]Model, error)
}

// Embedder is implemented by providers that expose an embeddings endpoint.
type Embedder interface {
	CreateEmbedding(ctx context.Context, input []string, model string) (*EmbeddingResponse, error)
}

// Middleware provides hooks for decorating Provider calls.
// This allows adding cross-cutting concerns like logging and metrics.
type Middleware interface {
	// BeforeRequest is called before making an API request.
	// It can modify the request or return an error to abort the request.
	BeforeRequest(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionRequest, error)

	// AfterResponse is called after receiving a response.
	// It can modify the response or return an error.
	AfterResponse(ctx context.Context, req *ChatCompletionRequest, resp *ChatCompletionResponse) (*ChatCompletionResponse, error)

	// OnError is called when an error occurs.
	// It can return a modified error or nil to use the original error.
	OnError(ctx context.Context, req *ChatCompletionRequest, err error) error
}

// MiddlewareFunc is a function type that implements Middleware.
type MiddlewareFunc struct {
	BeforeRequestFunc func(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionRequest, error)
	AfterResponseFunc func(ctx context.Context, req *ChatCompletionRequest, resp *ChatCompletionResponse) (*ChatCompletionResponse, error)
	OnErrorFunc       func(ctx context.Context, req *ChatCompletionRequest, err error) error
}

// BeforeRequest calls the BeforeRequestFunc if set.
func (f MiddlewareFunc) BeforeRequest(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionRequest, error) {
	if f.BeforeRequestFunc != nil {
		return f.BeforeRequestFunc(ctx, req)
	}
	return req, nil
}

// AfterResponse calls the AfterResponseFunc if set.
func (f MiddlewareFunc) AfterResponse(ctx context.Context, req *ChatCompletionRequest, resp *ChatCompletionResponse) (*ChatCompletionResponse, error) {
	if f.AfterResponseFunc != nil {
		return f.AfterResponseFunc(ctx, req, resp)
	}
	return resp, nil
}

// OnError calls the OnErrorFunc if set.
func (f MiddlewareFunc) OnError(ctx context.Context, req *ChatCompletionRequest, err error) error {
	if f.OnErrorFunc != nil {
		return f.OnErrorFunc(ctx, req, err)
	}
	return err
}

// WrapWithMiddleware wraps a Provider with middleware and returns a new Provider.
// GetModels and the Embedder capability pass straight through.
func WrapWithMiddleware(provider Provider, middleware ...Middleware) Provider {
	if len(middleware) == 0 {
		return provider
	}
	wrapped := &providerWithMiddleware{
		Provider:   provider,
		middleware: middleware,
	}
	if emb, ok := provider.(Embedder); ok {
		return &embedderWithMiddleware{providerWithMiddleware: wrapped, embedder: emb}
	}
	return wrapped
}

// providerWithMiddleware wraps a Provider with middleware.
type providerWithMiddleware struct {
	Provider
	middleware []Middleware
}

// CreateCompletion implements Provider.CreateCompletion with middleware support.
func (p *providerWithMiddleware) CreateCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	for _, mw := range p.middleware {
		var err error
		req, err = mw.BeforeRequest(ctx, req)
		if err != nil {
			return nil, err
		}
	}

	resp, err := p.Provider.CreateCompletion(ctx, req)
	if err != nil {
		original := err
		for _, mw := range p.middleware {
			err = mw.OnError(ctx, req, err)
			if err == nil {
				err = original
				break
			}
		}
		return nil, err
	}

	for i := len(p.middleware) - 1; i >= 0; i-- {
		resp, err = p.middleware[i].AfterResponse(ctx, req, resp)
		if err != nil {
			return nil, err
		}
	}

	return resp, nil
}

type embedderWithMiddleware struct {
	*providerWithMiddleware
	embedder Embedder
}

func (e *embedderWithMiddleware) CreateEmbedding(ctx context.Context, input []string, model string) (*EmbeddingResponse, error) {
	return e.embedder.CreateEmbedding(ctx, input, model)
}

type requestStartKey struct{}

// LoggingMiddleware logs every completion call at debug level and failures at warn.
func LoggingMiddleware(provider string, logger zerolog.Logger) Middleware {
	logger = logger.With().Str("component", "llm").Str("provider", provider).Logger()
	return MiddlewareFunc{
		BeforeRequestFunc: func(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionRequest, error) {
			logger.Debug().
				Str("model", req.Model).
				Int("messages", len(req.Messages)).
				Int("tools", len(req.Tools)).
				Bool("stream", req.Stream).
				Msg("Sending completion request")
			return req, nil
		},
		AfterResponseFunc: func(ctx context.Context, req *ChatCompletionRequest, resp *ChatCompletionResponse) (*ChatCompletionResponse, error) {
			logger.Debug().
				Str("model", resp.Model).
				Int("prompt_tokens", resp.Usage.PromptTokens).
				Int("completion_tokens", resp.Usage.CompletionTokens).
				Msg("Completion received")
			return resp, nil
		},
		OnErrorFunc: func(ctx context.Context, req *ChatCompletionRequest, err error) error {
			logger.Warn().Err(err).Str("model", req.Model).Msg("Completion failed")
			return err
		},
	}
}

// WithRequestStart stores the request start time in ctx; metrics middleware reads it back.
func WithRequestStart(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestStartKey{}, t)
}

// RequestStart returns the time stored by WithRequestStart.
func RequestStart(ctx context.Context) (time.Time, bool) {
	t, ok := ctx.Value(requestStartKey{}).(time.Time)
	return t, ok
}

// Ensure providerWithMiddleware implements Provider
var _ Provider = (*providerWithMiddleware)(nil)
