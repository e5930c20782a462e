package groq

import "github.com/codeboltai/codebolt-go/llm"

// Models is the static metadata table for models served by Groq.
var Models = llm.ModelTable{
	"llama-3.3-70b-versatile":       {TokenLimit: 131072, MaxOutput: 32768, SupportsTools: true},
	"llama-3.1-8b-instant":          {TokenLimit: 131072, MaxOutput: 131072, SupportsTools: true},
	"gemma2-9b-it":                  {TokenLimit: 8192, MaxOutput: 8192},
	"deepseek-r1-distill-llama-70b": {TokenLimit: 131072, MaxOutput: 131072, SupportsTools: true, SupportsReasoning: true},
	"qwen/qwen3-32b":                {TokenLimit: 131072, MaxOutput: 40960, SupportsTools: true, SupportsReasoning: true},
	"openai/gpt-oss-120b":           {TokenLimit: 131072, MaxOutput: 65536, SupportsTools: true, SupportsReasoning: true},
}
