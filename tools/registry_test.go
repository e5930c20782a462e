package tools

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	ctxpkg "github.com/codeboltai/codebolt-go/context"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu    sync.Mutex
	calls map[string]ErrorType
}

func (o *recordingObserver) ToolHandled(name string, errType ErrorType, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.calls == nil {
		o.calls = map[string]ErrorType{}
	}
	o.calls[name] = errType
}

func newTestRegistry() *Registry {
	r := NewRegistry(zerolog.Nop())
	r.Register(PortfolioTools(&fakePortfolios{karma: 7})...)
	return r
}

func TestRegistry_NamesAndSpecs(t *testing.T) {
	r := newTestRegistry()

	names := r.Names()
	assert.Equal(t, []string{
		"portfolio_add_karma",
		"portfolio_add_talent",
		"portfolio_add_testimonial",
		"portfolio_get",
		"portfolio_get_ranking",
	}, names)

	specs := r.Specs()
	require.Len(t, specs, len(names))
	assert.Equal(t, "function", specs[0].Type)
	assert.Equal(t, "portfolio_add_karma", specs[0].Function.Name)
	assert.Equal(t, "object", specs[0].Function.Parameters["type"])

	_, ok := r.Get("portfolio_get")
	assert.True(t, ok)
	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_HandleUnknownTool(t *testing.T) {
	r := newTestRegistry()
	obs := &recordingObserver{}
	r.SetObserver(obs)

	res := r.Handle(context.Background(), "nope", json.RawMessage(`{}`))
	require.NotNil(t, res.Error)
	assert.Equal(t, ErrorTypeInvalidParams, res.Error.Type)
	assert.Equal(t, "unknown tool: nope", res.Error.Message)
	assert.Equal(t, ErrorTypeInvalidParams, obs.calls["nope"])
}

func TestRegistry_HandleReportsProgress(t *testing.T) {
	r := newTestRegistry()
	obs := &recordingObserver{}
	r.SetObserver(obs)

	var events []string
	ctx := ctxpkg.WithProgress(context.Background(), func(s string) { events = append(events, s) })
	ctx = ctxpkg.WithAgentID(ctx, "a1")

	res := r.Handle(ctx, "portfolio_add_karma", json.RawMessage(`{"toAgentId":"a2","amount":3}`))
	require.Nil(t, res.Error)
	assert.Contains(t, res.LLMContent, "New karma: 7")

	require.Len(t, events, 3)
	assert.Equal(t, "Executing tool: portfolio_add_karma", events[0])
	assert.True(t, strings.HasPrefix(events[1], "Tool arguments: "))
	assert.True(t, strings.HasPrefix(events[2], "Tool result: "))

	v, ok := obs.calls["portfolio_add_karma"]
	require.True(t, ok)
	assert.Equal(t, ErrorType(""), v)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	r := newTestRegistry()
	r.Register(PortfolioTools(&fakePortfolios{karma: 1})[1])
	res := r.Handle(context.Background(), "portfolio_add_karma", json.RawMessage(`{"toAgentId":"a2","amount":1}`))
	assert.Contains(t, res.LLMContent, "New karma: 1")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab... (truncated)", truncate("abcdef", 2))

	// "é" is two bytes; cutting inside it backs off to the rune start.
	out := truncate("aéb", 2)
	assert.Equal(t, "a... (truncated)", out)
	assert.True(t, utf8.ValidString(out))
}
