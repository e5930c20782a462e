package config

import "os"

// applyEnv overrides cfg with any set environment variables.
func applyEnv(cfg *Config) {
	p := &cfg.Providers
	for prefix, block := range map[string]*ProviderConfig{
		"OPENAI":     &p.OpenAI,
		"ANTHROPIC":  &p.Anthropic,
		"GEMINI":     &p.Gemini,
		"MISTRAL":    &p.Mistral,
		"GROQ":       &p.Groq,
		"DEEPSEEK":   &p.DeepSeek,
		"PERPLEXITY": &p.Perplexity,
		"OPENROUTER": &p.OpenRouter.ProviderConfig,
	} {
		setFromEnv(&block.APIKey, prefix+"_API_KEY")
		setFromEnv(&block.BaseURL, prefix+"_BASE_URL")
		setFromEnv(&block.Model, prefix+"_MODEL")
	}
	setFromEnv(&p.OpenAI.Organization, "OPENAI_ORG_ID")

	setFromEnv(&p.Ollama.Host, "OLLAMA_HOST")
	setFromEnv(&p.Ollama.Model, "OLLAMA_MODEL")

	setFromEnv(&p.Bedrock.Region, "AWS_REGION")
	setFromEnv(&p.Bedrock.AccessKeyID, "AWS_ACCESS_KEY_ID")
	setFromEnv(&p.Bedrock.SecretAccessKey, "AWS_SECRET_ACCESS_KEY")
	setFromEnv(&p.Bedrock.SessionToken, "AWS_SESSION_TOKEN")
	setFromEnv(&p.Bedrock.Model, "BEDROCK_MODEL")
	setFromEnv(&p.Bedrock.Gateway.AccountID, "CLOUDFLARE_ACCOUNT_ID")
	setFromEnv(&p.Bedrock.Gateway.GatewayName, "CLOUDFLARE_GATEWAY_NAME")

	setFromEnv(&cfg.WebSocket.URL, "CODEBOLT_WS_URL")
	setFromEnv(&cfg.DefaultProvider, "CODEBOLT_PROVIDER")
}

func setFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
