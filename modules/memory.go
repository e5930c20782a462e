package modules

import (
	"context"
	"encoding/json"
)

// Memory is the host's per-agent key/value store.
type Memory struct{ module }

func (m *Memory) Set(ctx context.Context, key string, value any) error {
	return m.call(ctx, "set", map[string]any{"key": key, "value": value}, nil)
}

// Get returns the raw JSON value stored under key; found is false when the
// key is absent.
func (m *Memory) Get(ctx context.Context, key string) (value json.RawMessage, found bool, err error) {
	var resp struct {
		Value json.RawMessage `json:"value"`
	}
	if err := m.call(ctx, "get", map[string]any{"key": key}, &resp); err != nil {
		return nil, false, err
	}
	if len(resp.Value) == 0 || string(resp.Value) == "null" {
		return nil, false, nil
	}
	return resp.Value, true, nil
}
