package ollama

import "github.com/codeboltai/codebolt-go/llm"

// Models is the static metadata table for commonly pulled Ollama models.
var Models = llm.ModelTable{
	"llama3.1":         {TokenLimit: 131072, MaxOutput: 4096, SupportsTools: true},
	"llama3.2":         {TokenLimit: 131072, MaxOutput: 4096, SupportsTools: true},
	"llama3.3":         {TokenLimit: 131072, MaxOutput: 4096, SupportsTools: true},
	"qwen2.5-coder":    {TokenLimit: 32768, MaxOutput: 8192, SupportsTools: true},
	"qwen3":            {TokenLimit: 40960, MaxOutput: 8192, SupportsTools: true, SupportsReasoning: true},
	"mistral":          {TokenLimit: 32768, MaxOutput: 4096, SupportsTools: true},
	"deepseek-r1":      {TokenLimit: 131072, MaxOutput: 8192, SupportsReasoning: true},
	"gemma3":           {TokenLimit: 131072, MaxOutput: 8192, SupportsVision: true},
	"llava":            {TokenLimit: 4096, MaxOutput: 2048, SupportsVision: true},
	"nomic-embed-text": {TokenLimit: 8192},
}
