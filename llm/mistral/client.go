package mistral

import (
	"github.com/codeboltai/codebolt-go/llm/openai"
	"github.com/rs/zerolog"
)

const (
	// ProviderName identifies this adapter.
	ProviderName = "mistral"

	// DefaultBaseURL is the Mistral OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.mistral.ai/v1"

	// DefaultModel is used when neither the request nor the options name a model.
	DefaultModel = "mistral-large-latest"
)

// New creates a Mistral client. The wire protocol is OpenAI's, so the OpenAI
// adapter does the work with this package's base URL and model table.
func New(opts openai.Options, logger zerolog.Logger) (*openai.Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	return openai.NewCompatible(ProviderName, opts, Models, logger)
}
