package deepseek

import (
	"github.com/codeboltai/codebolt-go/llm/openai"
	"github.com/rs/zerolog"
)

const (
	// ProviderName identifies this adapter.
	ProviderName = "deepseek"

	// DefaultBaseURL is the DeepSeek OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is used when neither the request nor the options name a model.
	DefaultModel = "deepseek-chat"
)

// New creates a DeepSeek client backed by the OpenAI adapter.
func New(opts openai.Options, logger zerolog.Logger) (*openai.Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	return openai.NewCompatible(ProviderName, opts, Models, logger)
}
