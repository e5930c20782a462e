package perplexity

import (
	"github.com/codeboltai/codebolt-go/llm/openai"
	"github.com/rs/zerolog"
)

const (
	// ProviderName identifies this adapter.
	ProviderName = "perplexity"

	// DefaultBaseURL is the Perplexity OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.perplexity.ai"

	// DefaultModel is used when neither the request nor the options name a model.
	DefaultModel = "sonar"
)

// New creates a Perplexity client. Sonar models search the web server side;
// citations are not part of the common response and are dropped.
func New(opts openai.Options, logger zerolog.Logger) (*openai.Client, error) {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	return openai.NewCompatible(ProviderName, opts, Models, logger)
}
