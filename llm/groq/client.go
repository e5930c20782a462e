package groq

import (
	"github.com/codeboltai/codebolt-go/llm/openai"
	"github.com/rs/zerolog"
)

const (
	// ProviderName identifies this adapter.
	ProviderName = "groq"

	// DefaultBaseURL is the Groq OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is used when neither the request nor the options name a model.
	DefaultModel = "llama-3.3-70b-versatile"
)

// New creates a Groq client.
func New(opts openai.Options, logger zerolog.Logger) (*openai.Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	return openai.NewCompatible(ProviderName, opts, Models, logger)
}
