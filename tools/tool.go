package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/codeboltai/codebolt-go/tools/schemas"
)

// ErrorType classifies a failed tool call.
type ErrorType string

const (
	// ErrorTypeInvalidParams means the arguments failed validation; the SDK was not called.
	ErrorTypeInvalidParams ErrorType = "INVALID_TOOL_PARAMS"
	// ErrorTypeExecutionFailed means the SDK call returned an error.
	ErrorTypeExecutionFailed ErrorType = "EXECUTION_FAILED"
)

// ToolError describes why a tool call failed.
type ToolError struct {
	Message string    `json:"message"`
	Type    ErrorType `json:"type"`
}

func (e *ToolError) Error() string {
	return string(e.Type) + ": " + e.Message
}

// Result is the outcome of a tool call. LLMContent is fed back to the model;
// ReturnDisplay is a short line for the user.
type Result struct {
	LLMContent    string     `json:"llmContent"`
	ReturnDisplay string     `json:"returnDisplay"`
	Error         *ToolError `json:"error,omitempty"`
}

// IsError reports whether the call failed.
func (r Result) IsError() bool {
	return r.Error != nil
}

// ErrorResult builds a failed Result.
func ErrorResult(typ ErrorType, message string) Result {
	return Result{
		LLMContent:    "Error: " + message,
		ReturnDisplay: "Error: " + message,
		Error:         &ToolError{Message: message, Type: typ},
	}
}

// Tool is a model-callable operation backed by one SDK module function.
// Execute never returns an error; failures are reported in Result.Error.
type Tool interface {
	Name() string
	Description() string
	Schema() map[string]any
	Validate(args json.RawMessage) error
	Execute(ctx context.Context, args json.RawMessage) Result
}

// typedTool adapts a params struct, a validator and a run function to Tool.
type typedTool[P any] struct {
	name        string
	description string
	schema      map[string]any
	validate    func(p *P) error
	run         func(ctx context.Context, p *P) (Result, error)
}

func newTool[P any](name, description string, validate func(p *P) error, run func(ctx context.Context, p *P) (Result, error)) *typedTool[P] {
	return &typedTool[P]{
		name:        name,
		description: description,
		schema:      schemas.Must(new(P)),
		validate:    validate,
		run:         run,
	}
}

func (t *typedTool[P]) Name() string           { return t.name }
func (t *typedTool[P]) Description() string    { return t.description }
func (t *typedTool[P]) Schema() map[string]any { return t.schema }

func (t *typedTool[P]) Validate(args json.RawMessage) error {
	_, err := t.decode(args)
	return err
}

func (t *typedTool[P]) Execute(ctx context.Context, args json.RawMessage) Result {
	p, err := t.decode(args)
	if err != nil {
		return ErrorResult(ErrorTypeInvalidParams, err.Error())
	}
	res, err := t.run(ctx, p)
	if err != nil {
		return ErrorResult(ErrorTypeExecutionFailed, err.Error())
	}
	return res
}

func (t *typedTool[P]) decode(args json.RawMessage) (*P, error) {
	p := new(P)
	if raw := strings.TrimSpace(string(args)); raw != "" && raw != "null" {
		if err := json.Unmarshal([]byte(raw), p); err != nil {
			return nil, fmt.Errorf("invalid arguments: %w", err)
		}
	}
	if t.validate != nil {
		if err := t.validate(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// noValidation is used by tools whose params are all optional and unconstrained.
func noValidation[P any](*P) error { return nil }

// jsonContent renders v for the model, falling back to %v.
func jsonContent(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
