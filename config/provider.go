package config

import (
	"fmt"

	"github.com/codeboltai/codebolt-go/llm"
	"github.com/codeboltai/codebolt-go/llm/bedrock"
	"github.com/codeboltai/codebolt-go/multillm"
	"github.com/rs/zerolog"
)

// ProviderOptions returns the multillm options configured for the named provider.
func ProviderOptions(cfg *Config, name string) (multillm.Options, error) {
	if cfg == nil {
		d := Defaults()
		cfg = &d
	}
	p := cfg.Providers

	fromBlock := func(b ProviderConfig) multillm.Options {
		return multillm.Options{
			APIKey:       b.APIKey,
			BaseURL:      b.BaseURL,
			Model:        b.Model,
			Organization: b.Organization,
		}
	}

	switch name {
	case "openai":
		return fromBlock(p.OpenAI), nil
	case "anthropic":
		return fromBlock(p.Anthropic), nil
	case "gemini":
		return fromBlock(p.Gemini), nil
	case "mistral":
		return fromBlock(p.Mistral), nil
	case "groq":
		return fromBlock(p.Groq), nil
	case "deepseek":
		return fromBlock(p.DeepSeek), nil
	case "perplexity":
		return fromBlock(p.Perplexity), nil
	case "openrouter":
		opts := fromBlock(p.OpenRouter.ProviderConfig)
		opts.Referer = p.OpenRouter.Referer
		opts.AppName = p.OpenRouter.AppName
		return opts, nil
	case "ollama":
		return multillm.Options{Host: p.Ollama.Host, Model: p.Ollama.Model}, nil
	case "bedrock":
		b := p.Bedrock
		return multillm.Options{
			Region:          b.Region,
			AccessKeyID:     b.AccessKeyID,
			SecretAccessKey: b.SecretAccessKey,
			SessionToken:    b.SessionToken,
			Model:           b.Model,
			BaseURL:         b.BaseURL,
			Gateway: bedrock.Gateway{
				AccountID:   b.Gateway.AccountID,
				GatewayName: b.Gateway.GatewayName,
			},
		}, nil
	default:
		return multillm.Options{}, fmt.Errorf("unknown provider: %s", name)
	}
}

// NewProvider creates the named provider from the configuration.
// An empty name selects cfg.DefaultProvider.
func NewProvider(cfg *Config, name string, logger zerolog.Logger, mws ...llm.Middleware) (llm.Provider, error) {
	if name == "" && cfg != nil {
		name = cfg.DefaultProvider
	}
	opts, err := ProviderOptions(cfg, name)
	if err != nil {
		return nil, err
	}
	opts.Middleware = mws
	return multillm.New(name, opts, logger)
}
