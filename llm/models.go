package llm

import (
	"sort"

	"github.com/samber/lo"
)

// ModelInfo is the static metadata known for one model id.
type ModelInfo struct {
	TokenLimit        int
	MaxOutput         int
	SupportsTools     bool
	SupportsVision    bool
	SupportsReasoning bool
}

// ModelTable maps model ids to their metadata. Tables are package-level
// values in each adapter and must never be mutated at runtime.
type ModelTable map[string]ModelInfo

// Lookup returns the metadata for an exact model id.
func (t ModelTable) Lookup(id string) (ModelInfo, bool) {
	info, ok := t[id]
	return info, ok
}

// Attach sets TokenLimit and MaxOutputTokens on resp from the table, keyed by
// resp.Model. Unknown ids leave both fields nil.
func (t ModelTable) Attach(resp *ChatCompletionResponse) {
	if resp == nil {
		return
	}
	t.AttachFor(resp, resp.Model)
}

// AttachFor is Attach keyed by the requested model id. Vendors often echo a
// dated revision in resp.Model, which the table does not list.
func (t ModelTable) AttachFor(resp *ChatCompletionResponse, model string) {
	if resp == nil {
		return
	}
	info, ok := t.Lookup(model)
	if !ok {
		resp.TokenLimit = nil
		resp.MaxOutputTokens = nil
		return
	}
	resp.TokenLimit = lo.ToPtr(info.TokenLimit)
	resp.MaxOutputTokens = lo.ToPtr(info.MaxOutput)
}

// Enrich fills the metadata fields of m from the table, if the id is known.
func (t ModelTable) Enrich(m Model) Model {
	info, ok := t.Lookup(m.ID)
	if !ok {
		return m
	}
	m.TokenLimit = lo.ToPtr(info.TokenLimit)
	m.MaxOutput = lo.ToPtr(info.MaxOutput)
	m.SupportsTools = info.SupportsTools
	m.SupportsVision = info.SupportsVision
	m.SupportsReasoning = info.SupportsReasoning
	return m
}

// Models returns every table entry as a chat model, sorted by id.
func (t ModelTable) Models(provider string) []Model {
	ids := lo.Keys(t)
	sort.Strings(ids)
	return lo.Map(ids, func(id string, _ int) Model {
		return t.Enrich(Model{
			ID:       id,
			Name:     id,
			Provider: provider,
			Type:     ModelTypeChat,
		})
	})
}
