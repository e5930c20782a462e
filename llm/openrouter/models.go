package openrouter

import "github.com/codeboltai/codebolt-go/llm"

// Models is the static metadata table for popular OpenRouter routes.
var Models = llm.ModelTable{
	"openai/gpt-4o":                     {TokenLimit: 128000, MaxOutput: 16384, SupportsTools: true, SupportsVision: true},
	"openai/gpt-4o-mini":                {TokenLimit: 128000, MaxOutput: 16384, SupportsTools: true, SupportsVision: true},
	"anthropic/claude-3.5-sonnet":       {TokenLimit: 200000, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
	"anthropic/claude-sonnet-4":         {TokenLimit: 200000, MaxOutput: 64000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"google/gemini-2.5-pro":             {TokenLimit: 1048576, MaxOutput: 65536, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"google/gemini-2.0-flash-001":       {TokenLimit: 1048576, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
	"meta-llama/llama-3.3-70b-instruct": {TokenLimit: 131072, MaxOutput: 16384, SupportsTools: true},
	"deepseek/deepseek-chat":            {TokenLimit: 163840, MaxOutput: 16384, SupportsTools: true},
	"deepseek/deepseek-r1":              {TokenLimit: 163840, MaxOutput: 32768, SupportsReasoning: true},
	"mistralai/mistral-large":           {TokenLimit: 128000, MaxOutput: 8192, SupportsTools: true},
}
