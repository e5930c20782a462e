package perplexity

import "github.com/codeboltai/codebolt-go/llm"

// Models is the static metadata table for Perplexity models.
var Models = llm.ModelTable{
	"sonar":               {TokenLimit: 127072, MaxOutput: 8000},
	"sonar-pro":           {TokenLimit: 200000, MaxOutput: 8000},
	"sonar-reasoning":     {TokenLimit: 127072, MaxOutput: 8000, SupportsReasoning: true},
	"sonar-reasoning-pro": {TokenLimit: 127072, MaxOutput: 8000, SupportsReasoning: true},
	"sonar-deep-research": {TokenLimit: 127072, MaxOutput: 8000, SupportsReasoning: true},
}
