package anthropic

import "github.com/codeboltai/codebolt-go/llm"

// Models is the static metadata table for Anthropic models.
var Models = llm.ModelTable{
	"claude-opus-4-1-20250805":   {TokenLimit: 200000, MaxOutput: 32000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"claude-opus-4-20250514":     {TokenLimit: 200000, MaxOutput: 32000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"claude-sonnet-4-20250514":   {TokenLimit: 200000, MaxOutput: 64000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"claude-3-7-sonnet-20250219": {TokenLimit: 200000, MaxOutput: 64000, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"claude-3-5-sonnet-20241022": {TokenLimit: 200000, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
	"claude-3-5-haiku-20241022":  {TokenLimit: 200000, MaxOutput: 8192, SupportsTools: true},
	"claude-3-opus-20240229":     {TokenLimit: 200000, MaxOutput: 4096, SupportsTools: true, SupportsVision: true},
	"claude-3-haiku-20240307":    {TokenLimit: 200000, MaxOutput: 4096, SupportsTools: true, SupportsVision: true},
}
