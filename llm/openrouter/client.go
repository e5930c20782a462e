package openrouter

import (
	"net/http"

	"github.com/codeboltai/codebolt-go/llm/openai"
	"github.com/rs/zerolog"
)

const (
	// ProviderName identifies this adapter.
	ProviderName = "openrouter"

	// DefaultBaseURL is the OpenRouter API root.
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultModel is used when neither the request nor the options name a model.
	DefaultModel = "openai/gpt-4o-mini"

	// DefaultAppName is sent as X-Title when none is configured.
	DefaultAppName = "Codebolt"
)

// Options configures the OpenRouter client.
type Options struct {
	openai.Options
	// Referer is sent as HTTP-Referer for OpenRouter app attribution.
	Referer string
	// AppName is sent as X-Title.
	AppName string
}

// New creates an OpenRouter client. Attribution headers are injected by a
// RoundTripper wrapped around opts.HTTPClient.
func New(opts Options, logger zerolog.Logger) (*openai.Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.AppName == "" {
		opts.AppName = DefaultAppName
	}

	base := http.DefaultClient
	if opts.HTTPClient != nil {
		base = opts.HTTPClient
	}
	client := *base
	client.Transport = &headerTransport{
		base: base.Transport,
		headers: map[string]string{
			"HTTP-Referer": opts.Referer,
			"X-Title":      opts.AppName,
		},
	}
	opts.HTTPClient = &client

	return openai.NewCompatible(ProviderName, opts.Options, Models, logger)
}

// headerTransport sets fixed headers on every outgoing request.
type headerTransport struct {
	base    http.RoundTripper
	headers map[string]string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, v := range t.headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(req)
}
