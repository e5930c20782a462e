package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	ctxpkg "github.com/codeboltai/codebolt-go/context"
	"github.com/codeboltai/codebolt-go/llm"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

const maxLoggedResult = 500

// Observer is notified after every handled tool call. errType is "" on success.
type Observer interface {
	ToolHandled(name string, errType ErrorType, elapsed time.Duration)
}

// Registry maps tool names to tools.
type Registry struct {
	mu       sync.RWMutex
	tools    map[string]Tool
	observer Observer
	logger   zerolog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger zerolog.Logger) *Registry {
	logger = logger.With().Str("component", "tool_registry").Logger()
	logger.Debug().Msg("Creating new tool Registry")
	return &Registry{
		tools:  make(map[string]Tool),
		logger: logger,
	}
}

// SetObserver installs an observer for handled calls.
func (r *Registry) SetObserver(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observer = o
}

// Register adds tools, replacing any already registered under the same name.
func (r *Registry) Register(tools ...Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range tools {
		if _, exists := r.tools[t.Name()]; exists {
			r.logger.Warn().Str("name", t.Name()).Msg("Replacing registered tool")
		}
		r.logger.Debug().Str("name", t.Name()).Msg("Registering tool")
		r.tools[t.Name()] = t
	}
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := lo.Keys(r.tools)
	sort.Strings(names)
	return names
}

// Specs returns chat-completion tool definitions for every registered tool,
// sorted by name.
func (r *Registry) Specs() []llm.Tool {
	return lo.FilterMap(r.Names(), func(name string, _ int) (llm.Tool, bool) {
		t, ok := r.Get(name)
		if !ok {
			return llm.Tool{}, false
		}
		return llm.NewFunctionTool(t.Name(), t.Description(), t.Schema()), true
	})
}

// Handle dispatches a tool call. Unknown tools and invalid arguments are
// reported in the Result like any other failure.
// The progress callback is retrieved from context if available.
func (r *Registry) Handle(ctx context.Context, toolName string, args json.RawMessage) Result {
	agentID := ctxpkg.AgentID(ctx)
	logger := r.logger.With().Str("tool", toolName).Str("agentID", agentID).Logger()
	progress, _ := ctxpkg.Progress(ctx)
	start := time.Now()

	t, ok := r.Get(toolName)
	if !ok {
		logger.Error().Msg("Unknown tool requested")
		res := ErrorResult(ErrorTypeInvalidParams, fmt.Sprintf("unknown tool: %s", toolName))
		r.observe(toolName, res, time.Since(start))
		return res
	}

	if progress != nil {
		progress(fmt.Sprintf("Executing tool: %s", toolName))
	}
	logger.Info().Msg("Executing tool")

	var prettyArgs any
	if err := json.Unmarshal(args, &prettyArgs); err == nil {
		if b, err := json.MarshalIndent(prettyArgs, "", "  "); err == nil {
			if progress != nil {
				progress(fmt.Sprintf("Tool arguments: %s", b))
			}
			logger.Debug().Str("args", string(b)).Msg("Tool called with arguments")
		}
	}

	res := t.Execute(ctx, args)
	elapsed := time.Since(start)

	if res.Error != nil {
		if progress != nil {
			progress(fmt.Sprintf("Tool error: %s", res.Error.Message))
		}
		logger.Warn().
			Str("error_type", string(res.Error.Type)).
			Str("error", res.Error.Message).
			Dur("elapsed", elapsed).
			Msg("Tool returned error")
	} else {
		out := truncate(res.LLMContent, maxLoggedResult)
		if progress != nil {
			progress(fmt.Sprintf("Tool result: %s", out))
		}
		logger.Info().Str("result", out).Dur("elapsed", elapsed).Msg("Tool returned result")
	}

	r.observe(toolName, res, elapsed)
	return res
}

func (r *Registry) observe(name string, res Result, elapsed time.Duration) {
	r.mu.RLock()
	o := r.observer
	r.mu.RUnlock()
	if o == nil {
		return
	}
	var errType ErrorType
	if res.Error != nil {
		errType = res.Error.Type
	}
	o.ToolHandled(name, errType, elapsed)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "... (truncated)"
}
