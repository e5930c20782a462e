package bedrock

import "github.com/codeboltai/codebolt-go/llm"

// Models is the static metadata table for Bedrock model ids.
var Models = llm.ModelTable{
	"anthropic.claude-3-5-sonnet-20241022-v2:0":    {TokenLimit: 200000, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
	"anthropic.claude-3-5-haiku-20241022-v1:0":     {TokenLimit: 200000, MaxOutput: 8192, SupportsTools: true},
	"anthropic.claude-3-7-sonnet-20250219-v1:0":    {TokenLimit: 200000, MaxOutput: 64000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"anthropic.claude-sonnet-4-20250514-v1:0":      {TokenLimit: 200000, MaxOutput: 64000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"anthropic.claude-3-haiku-20240307-v1:0":       {TokenLimit: 200000, MaxOutput: 4096, SupportsTools: true, SupportsVision: true},
	"amazon.nova-pro-v1:0":                         {TokenLimit: 300000, MaxOutput: 5120, SupportsTools: true, SupportsVision: true},
	"amazon.nova-lite-v1:0":                        {TokenLimit: 300000, MaxOutput: 5120, SupportsTools: true, SupportsVision: true},
	"amazon.nova-micro-v1:0":                       {TokenLimit: 128000, MaxOutput: 5120, SupportsTools: true},
	"meta.llama3-1-70b-instruct-v1:0":              {TokenLimit: 128000, MaxOutput: 2048, SupportsTools: true},
	"meta.llama3-1-8b-instruct-v1:0":               {TokenLimit: 128000, MaxOutput: 2048, SupportsTools: true},
	"mistral.mistral-large-2407-v1:0":              {TokenLimit: 128000, MaxOutput: 8192, SupportsTools: true},
	"cohere.command-r-plus-v1:0":                   {TokenLimit: 128000, MaxOutput: 4096, SupportsTools: true},
	"us.anthropic.claude-3-5-sonnet-20241022-v2:0": {TokenLimit: 200000, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
}
