package mistral

import "github.com/codeboltai/codebolt-go/llm"

// Models is the static metadata table for Mistral models.
var Models = llm.ModelTable{
	"mistral-large-latest":    {TokenLimit: 131072, MaxOutput: 8192, SupportsTools: true},
	"mistral-medium-latest":   {TokenLimit: 131072, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
	"mistral-small-latest":    {TokenLimit: 32768, MaxOutput: 8192, SupportsTools: true},
	"codestral-latest":        {TokenLimit: 256000, MaxOutput: 8192, SupportsTools: true},
	"pixtral-large-latest":    {TokenLimit: 131072, MaxOutput: 8192, SupportsTools: true, SupportsVision: true},
	"open-mistral-nemo":       {TokenLimit: 131072, MaxOutput: 8192, SupportsTools: true},
	"magistral-medium-latest": {TokenLimit: 40000, MaxOutput: 40000, SupportsReasoning: true},
}
