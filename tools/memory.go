package tools

import (
	"context"
	"fmt"

	"github.com/codeboltai/codebolt-go/tools/schemas"
)

// MemoryTools builds the key/value memory tools.
func MemoryTools(kv KeyValueStore) []Tool {
	return []Tool{
		newTool("memory_set",
			"Store a JSON value under a key in the agent's persistent memory.",
			func(p *schemas.MemorySetParams) error {
				if err := required("key", p.Key); err != nil {
					return err
				}
				if p.Value == nil {
					return errNoValue
				}
				return nil
			},
			func(ctx context.Context, p *schemas.MemorySetParams) (Result, error) {
				if err := kv.Set(ctx, p.Key, p.Value); err != nil {
					return Result{}, err
				}
				return Result{
					LLMContent:    fmt.Sprintf("Stored value under %q", p.Key),
					ReturnDisplay: "Saved " + p.Key,
				}, nil
			}),

		newTool("memory_get",
			"Read the value stored under a key.",
			func(p *schemas.MemoryGetParams) error { return required("key", p.Key) },
			func(ctx context.Context, p *schemas.MemoryGetParams) (Result, error) {
				value, found, err := kv.Get(ctx, p.Key)
				if err != nil {
					return Result{}, err
				}
				if !found {
					return Result{
						LLMContent:    fmt.Sprintf("No value stored under %q", p.Key),
						ReturnDisplay: "Not found: " + p.Key,
					}, nil
				}
				return Result{
					LLMContent:    string(value),
					ReturnDisplay: "Loaded " + p.Key,
				}, nil
			}),
	}
}
