// Package multillm builds any of the supported chat-completion providers by name.
package multillm

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/codeboltai/codebolt-go/llm"
	"github.com/codeboltai/codebolt-go/llm/anthropic"
	"github.com/codeboltai/codebolt-go/llm/bedrock"
	"github.com/codeboltai/codebolt-go/llm/deepseek"
	"github.com/codeboltai/codebolt-go/llm/gemini"
	"github.com/codeboltai/codebolt-go/llm/groq"
	"github.com/codeboltai/codebolt-go/llm/mistral"
	"github.com/codeboltai/codebolt-go/llm/ollama"
	"github.com/codeboltai/codebolt-go/llm/openai"
	"github.com/codeboltai/codebolt-go/llm/openrouter"
	"github.com/codeboltai/codebolt-go/llm/perplexity"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Options is the union of every adapter's settings. Fields a provider does
// not understand are ignored.
type Options struct {
	APIKey       string
	BaseURL      string
	Model        string
	Organization string // openai

	Host string // ollama

	// bedrock
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
	Gateway         bedrock.Gateway

	// openrouter
	Referer string
	AppName string

	HTTPClient *http.Client

	// Middleware is applied after the logging middleware.
	Middleware []llm.Middleware
}

type constructor func(opts Options, logger zerolog.Logger) (llm.Provider, error)

var constructors = map[string]constructor{
	openai.ProviderName: func(o Options, l zerolog.Logger) (llm.Provider, error) {
		return openai.New(o.openAI(), l)
	},
	anthropic.ProviderName: func(o Options, l zerolog.Logger) (llm.Provider, error) {
		return anthropic.New(anthropic.Options{APIKey: o.APIKey, BaseURL: o.BaseURL, Model: o.Model, HTTPClient: o.HTTPClient}, l)
	},
	ollama.ProviderName: func(o Options, l zerolog.Logger) (llm.Provider, error) {
		host := o.Host
		if host == "" {
			host = o.BaseURL
		}
		return ollama.New(ollama.Options{Host: host, Model: o.Model, HTTPClient: o.HTTPClient}, l)
	},
	gemini.ProviderName: func(o Options, l zerolog.Logger) (llm.Provider, error) {
		return gemini.New(gemini.Options{APIKey: o.APIKey, BaseURL: o.BaseURL, Model: o.Model, HTTPClient: o.HTTPClient}, l)
	},
	bedrock.ProviderName: func(o Options, l zerolog.Logger) (llm.Provider, error) {
		return bedrock.New(bedrock.Options{
			Region:          o.Region,
			AccessKeyID:     o.AccessKeyID,
			SecretAccessKey: o.SecretAccessKey,
			SessionToken:    o.SessionToken,
			Model:           o.Model,
			BaseURL:         o.BaseURL,
			Gateway:         o.Gateway,
			HTTPClient:      o.HTTPClient,
		}, l)
	},
	mistral.ProviderName: func(o Options, l zerolog.Logger) (llm.Provider, error) {
		return mistral.New(o.openAI(), l)
	},
	groq.ProviderName: func(o Options, l zerolog.Logger) (llm.Provider, error) {
		return groq.New(o.openAI(), l)
	},
	deepseek.ProviderName: func(o Options, l zerolog.Logger) (llm.Provider, error) {
		return deepseek.New(o.openAI(), l)
	},
	perplexity.ProviderName: func(o Options, l zerolog.Logger) (llm.Provider, error) {
		return perplexity.New(o.openAI(), l)
	},
	openrouter.ProviderName: func(o Options, l zerolog.Logger) (llm.Provider, error) {
		return openrouter.New(openrouter.Options{Options: o.openAI(), Referer: o.Referer, AppName: o.AppName}, l)
	},
}

func (o Options) openAI() openai.Options {
	return openai.Options{
		APIKey:       o.APIKey,
		BaseURL:      o.BaseURL,
		Model:        o.Model,
		Organization: o.Organization,
		HTTPClient:   o.HTTPClient,
	}
}

// New creates the named provider wrapped with logging and opts.Middleware.
func New(name string, opts Options, logger zerolog.Logger) (llm.Provider, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
	provider, err := ctor(opts, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s provider: %w", name, err)
	}

	mws := append([]llm.Middleware{llm.LoggingMiddleware(name, logger)}, opts.Middleware...)
	return llm.WrapWithMiddleware(provider, mws...), nil
}

// Providers returns the names accepted by New, sorted.
func Providers() []string {
	names := lo.Keys(constructors)
	sort.Strings(names)
	return names
}

// IsSupported reports whether New accepts name.
func IsSupported(name string) bool {
	_, ok := constructors[name]
	return ok
}
