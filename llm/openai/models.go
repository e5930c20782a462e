package openai

import "github.com/codeboltai/codebolt-go/llm"

// Models is the static metadata table for OpenAI models.
var Models = llm.ModelTable{
	"gpt-4o":                 {TokenLimit: 128000, MaxOutput: 16384, SupportsTools: true, SupportsVision: true},
	"gpt-4o-mini":            {TokenLimit: 128000, MaxOutput: 16384, SupportsTools: true, SupportsVision: true},
	"gpt-4.1":                {TokenLimit: 1047576, MaxOutput: 32768, SupportsTools: true, SupportsVision: true},
	"gpt-4.1-mini":           {TokenLimit: 1047576, MaxOutput: 32768, SupportsTools: true, SupportsVision: true},
	"gpt-4.1-nano":           {TokenLimit: 1047576, MaxOutput: 32768, SupportsTools: true, SupportsVision: true},
	"gpt-4-turbo":            {TokenLimit: 128000, MaxOutput: 4096, SupportsTools: true, SupportsVision: true},
	"gpt-4":                  {TokenLimit: 8192, MaxOutput: 8192, SupportsTools: true},
	"gpt-3.5-turbo":          {TokenLimit: 16385, MaxOutput: 4096, SupportsTools: true},
	"o1":                     {TokenLimit: 200000, MaxOutput: 100000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"o1-mini":                {TokenLimit: 128000, MaxOutput: 65536, SupportsReasoning: true},
	"o3-mini":                {TokenLimit: 200000, MaxOutput: 100000, SupportsTools: true, SupportsReasoning: true},
	"o4-mini":                {TokenLimit: 200000, MaxOutput: 100000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"text-embedding-3-small": {TokenLimit: 8191},
	"text-embedding-3-large": {TokenLimit: 8191},
}
