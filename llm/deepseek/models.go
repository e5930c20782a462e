package deepseek

import "github.com/codeboltai/codebolt-go/llm"

// Models is the static metadata table for DeepSeek models.
var Models = llm.ModelTable{
	"deepseek-chat":     {TokenLimit: 65536, MaxOutput: 8192, SupportsTools: true},
	"deepseek-reasoner": {TokenLimit: 65536, MaxOutput: 65536, SupportsReasoning: true},
	"deepseek-coder":    {TokenLimit: 65536, MaxOutput: 8192, SupportsTools: true},
}
