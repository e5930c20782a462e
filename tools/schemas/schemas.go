// Package schemas holds the parameter types of every tool and reflects them
// into the JSON schemas advertised to models. A field without omitempty is
// required; descriptions and enums come from struct tags.
package schemas

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

var reflector = jsonschema.Reflector{
	DoNotReference:            true,
	AllowAdditionalProperties: false,
}

type objectSchema struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Required   []string       `json:"required"`
}

// FromStruct reflects a params struct into an object schema with only the
// type, properties and required keys.
func FromStruct(v any) (map[string]any, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, fmt.Errorf("schema struct is nil")
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema struct must be a struct, got %s", t.Kind())
	}

	raw, err := json.Marshal(reflector.Reflect(reflect.New(t).Interface()))
	if err != nil {
		return nil, fmt.Errorf("marshal generated schema: %w", err)
	}
	var s objectSchema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode generated schema: %w", err)
	}
	if s.Properties == nil {
		s.Properties = map[string]any{}
	}
	if s.Required == nil {
		s.Required = []string{}
	}
	return map[string]any{
		"type":       "object",
		"properties": s.Properties,
		"required":   s.Required,
	}, nil
}

// Must is FromStruct for package-level params types; it panics on error.
func Must(v any) map[string]any {
	s, err := FromStruct(v)
	if err != nil {
		panic(err)
	}
	return s
}

// Empty is the params type of tools that take no arguments.
type Empty struct{}
