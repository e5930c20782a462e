package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultWebSocketURL is the host endpoint used when none is configured.
	DefaultWebSocketURL = "ws://localhost:12345/codebolt"

	// DefaultResponseTimeout bounds SendAndWaitForResponse, in seconds.
	DefaultResponseTimeout = 60

	// DefaultDialAttempts is the number of connection attempts before giving up.
	DefaultDialAttempts = 5
)

// LogConfig controls logger.InitWithOptions.
type LogConfig struct {
	File   string `yaml:"file,omitempty"`   // Log file path (empty: stdout)
	Pretty bool   `yaml:"pretty,omitempty"` // Console output instead of JSON
}

// WebSocketConfig configures the connection to the host application.
type WebSocketConfig struct {
	URL             string `yaml:"url,omitempty"`
	ResponseTimeout int    `yaml:"response_timeout,omitempty"` // Seconds to wait for a correlated reply
	DialAttempts    int    `yaml:"dial_attempts,omitempty"`
}

// Timeout returns ResponseTimeout as a duration.
func (w WebSocketConfig) Timeout() time.Duration {
	return time.Duration(w.ResponseTimeout) * time.Second
}

// ProviderConfig is the settings block shared by key-authenticated vendors.
type ProviderConfig struct {
	APIKey       string `yaml:"api_key,omitempty"`
	BaseURL      string `yaml:"base_url,omitempty"`     // Custom base URL (default: vendor API)
	Model        string `yaml:"model,omitempty"`        // Default model name
	Organization string `yaml:"organization,omitempty"` // OpenAI only
}

// OllamaConfig represents configuration for the Ollama provider.
type OllamaConfig struct {
	Host  string `yaml:"host,omitempty"`  // Ollama host (default: "http://localhost:11434")
	Model string `yaml:"model,omitempty"` // Default model name
}

// GatewayConfig routes Bedrock calls through a Cloudflare AI Gateway.
type GatewayConfig struct {
	AccountID   string `yaml:"account_id,omitempty"`
	GatewayName string `yaml:"gateway_name,omitempty"`
}

// BedrockConfig represents configuration for AWS Bedrock.
type BedrockConfig struct {
	Region          string        `yaml:"region,omitempty"`
	AccessKeyID     string        `yaml:"access_key_id,omitempty"`
	SecretAccessKey string        `yaml:"secret_access_key,omitempty"`
	SessionToken    string        `yaml:"session_token,omitempty"`
	Model           string        `yaml:"model,omitempty"`
	BaseURL         string        `yaml:"base_url,omitempty"`
	Gateway         GatewayConfig `yaml:"gateway,omitempty"`
}

// OpenRouterConfig adds the attribution headers OpenRouter accepts.
type OpenRouterConfig struct {
	ProviderConfig `yaml:",inline"`
	Referer        string `yaml:"referer,omitempty"`
	AppName        string `yaml:"app_name,omitempty"`
}

// ProvidersConfig holds one block per supported vendor.
type ProvidersConfig struct {
	OpenAI     ProviderConfig   `yaml:"openai,omitempty"`
	Anthropic  ProviderConfig   `yaml:"anthropic,omitempty"`
	Gemini     ProviderConfig   `yaml:"gemini,omitempty"`
	Mistral    ProviderConfig   `yaml:"mistral,omitempty"`
	Groq       ProviderConfig   `yaml:"groq,omitempty"`
	DeepSeek   ProviderConfig   `yaml:"deepseek,omitempty"`
	Perplexity ProviderConfig   `yaml:"perplexity,omitempty"`
	OpenRouter OpenRouterConfig `yaml:"openrouter,omitempty"`
	Ollama     OllamaConfig     `yaml:"ollama,omitempty"`
	Bedrock    BedrockConfig    `yaml:"bedrock,omitempty"`
}

// Config is the complete client configuration.
type Config struct {
	Log       LogConfig       `yaml:"log,omitempty"`
	WebSocket WebSocketConfig `yaml:"websocket,omitempty"`

	// DefaultProvider is used by NewProvider when name is empty.
	DefaultProvider string          `yaml:"default_provider,omitempty"`
	Providers       ProvidersConfig `yaml:"providers,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		WebSocket: WebSocketConfig{
			URL:             DefaultWebSocketURL,
			ResponseTimeout: DefaultResponseTimeout,
			DialAttempts:    DefaultDialAttempts,
		},
		DefaultProvider: "openai",
		Providers: ProvidersConfig{
			Ollama: OllamaConfig{
				Host: "http://localhost:11434",
			},
			OpenRouter: OpenRouterConfig{
				AppName: "Codebolt",
			},
		},
	}
}

// GetConfigPath returns the default config file path.
// Can be overridden via CODEBOLT_CONFIG_PATH environment variable.
func GetConfigPath() string {
	if envPath := os.Getenv("CODEBOLT_CONFIG_PATH"); envPath != "" {
		return expandPath(envPath)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./.codebolt/config.yaml"
	}
	return filepath.Join(homeDir, ".codebolt", "config.yaml")
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// Load reads configuration from path: defaults, then the file (if it
// exists), then environment overrides.
func Load(path string) (*Config, error) {
	// Step 1: Set defaults
	cfg := Defaults()

	// Step 2: Merge config file onto defaults
	expandedPath := expandPath(path)
	if _, err := os.Stat(expandedPath); err == nil {
		data, err := os.ReadFile(expandedPath) //#nosec 304 -- intentional file read for config
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", expandedPath, err)
		}

		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}

		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge config: %w", err)
		}
	}

	// Step 3: Environment wins over both
	applyEnv(&cfg)

	if cfg.WebSocket.ResponseTimeout <= 0 {
		cfg.WebSocket.ResponseTimeout = DefaultResponseTimeout
	}
	if cfg.WebSocket.DialAttempts <= 0 {
		cfg.WebSocket.DialAttempts = DefaultDialAttempts
	}

	return &cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	expandedPath := expandPath(path)

	// Ensure directory exists
	dir := filepath.Dir(expandedPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Keys live in this file
	if err := os.WriteFile(expandedPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
