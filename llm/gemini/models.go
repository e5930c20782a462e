package gemini

import "github.com/codeboltai/codebolt-go/llm"

// Models is the static metadata table for Gemini models.
var Models = llm.ModelTable{
	"gemini-2.5-pro":        {TokenLimit: 1048576, MaxOutput: 65536, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"gemini-2.5-flash":      {TokenLimit: 1048576, MaxOutput: 65536, SupportsTools: true, SupportsVision: true, SupportsReasoning: true},
	"gemini-2.5-flash-lite": {TokenLimit: 1048576, MaxOutput: 65536, SupportsTools: true, SupportsVision: true},
	"gemini-2.0-flash":      {TokenLimit: 1048576, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
	"gemini-2.0-flash-lite": {TokenLimit: 1048576, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
	"gemini-1.5-pro":        {TokenLimit: 2097152, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
	"gemini-1.5-flash":      {TokenLimit: 1048576, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
}
