// Package context carries per-call values shared by the tool registry and
// its callers.
package context

import (
	stdctx "context"
)

type progressKey struct{}

type agentKey struct{}

// WithProgress adds a progress callback to the context. The registry reports
// tool start, arguments and results through it.
func WithProgress(ctx stdctx.Context, cb func(string)) stdctx.Context {
	return stdctx.WithValue(ctx, progressKey{}, cb)
}

// Progress retrieves the progress callback from the context.
func Progress(ctx stdctx.Context) (func(string), bool) {
	cb, ok := ctx.Value(progressKey{}).(func(string))
	return cb, ok && cb != nil
}

// WithAgentID records the agent a tool call is made on behalf of.
func WithAgentID(ctx stdctx.Context, agentID string) stdctx.Context {
	return stdctx.WithValue(ctx, agentKey{}, agentID)
}

// AgentID returns the agent recorded by WithAgentID, or "".
func AgentID(ctx stdctx.Context) string {
	id, _ := ctx.Value(agentKey{}).(string)
	return id
}
