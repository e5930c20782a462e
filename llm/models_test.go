package llm

import "testing"

var testTable = ModelTable{
	"b-model": {TokenLimit: 200000, MaxOutput: 8192, SupportsTools: true},
	"a-model": {TokenLimit: 32000, MaxOutput: 4096, SupportsVision: true},
}

func TestModelTableAttach(t *testing.T) {
	resp := &ChatCompletionResponse{Model: "b-model"}
	testTable.Attach(resp)
	if resp.TokenLimit == nil || *resp.TokenLimit != 200000 {
		t.Errorf("Expected token limit 200000, got %v", resp.TokenLimit)
	}
	if resp.MaxOutputTokens == nil || *resp.MaxOutputTokens != 8192 {
		t.Errorf("Expected max output 8192, got %v", resp.MaxOutputTokens)
	}

	// Exact match only.
	resp = &ChatCompletionResponse{Model: "b-model-2024"}
	testTable.Attach(resp)
	if resp.TokenLimit != nil || resp.MaxOutputTokens != nil {
		t.Error("Expected no metadata for a prefix match")
	}
}

func TestModelTableAttachForRequestedModel(t *testing.T) {
	resp := &ChatCompletionResponse{Model: "a-model-2024-08-06"}
	testTable.AttachFor(resp, "a-model")
	if resp.TokenLimit == nil || *resp.TokenLimit != 32000 {
		t.Errorf("Expected token limit 32000, got %v", resp.TokenLimit)
	}
	if resp.Model != "a-model-2024-08-06" {
		t.Errorf("Expected echoed model to be kept, got %s", resp.Model)
	}

	testTable.AttachFor(resp, "unknown")
	if resp.TokenLimit != nil || resp.MaxOutputTokens != nil {
		t.Error("Expected metadata cleared for an unknown model")
	}
}

func TestModelTableModelsSortedAndIdempotent(t *testing.T) {
	first := testTable.Models("test")
	second := testTable.Models("test")

	if len(first) != 2 {
		t.Fatalf("Expected 2 models, got %d", len(first))
	}
	if first[0].ID != "a-model" || first[1].ID != "b-model" {
		t.Errorf("Expected models sorted by id, got %s, %s", first[0].ID, first[1].ID)
	}
	if !first[0].SupportsVision || first[1].SupportsVision {
		t.Error("Expected capability flags from the table")
	}
	for i := range first {
		if first[i].ID != second[i].ID || *first[i].TokenLimit != *second[i].TokenLimit {
			t.Errorf("Expected identical listings, got %+v and %+v", first[i], second[i])
		}
		if first[i].Provider != "test" || first[i].Type != ModelTypeChat {
			t.Errorf("Unexpected provider/type: %+v", first[i])
		}
	}
}
