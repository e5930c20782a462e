package llm

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	resp  *ChatCompletionResponse
	err   error
	seen  *ChatCompletionRequest
	calls int
}

func (s *stubProvider) Name() string  { return "stub" }
func (s *stubProvider) Model() string { return "stub-model" }
func (s *stubProvider) CreateCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	s.calls++
	s.seen = req
	return s.resp, s.err
}
func (s *stubProvider) GetModels(ctx context.Context) ([]Model, error) { return nil, nil }

type stubEmbedder struct{ stubProvider }

func (s *stubEmbedder) CreateEmbedding(ctx context.Context, input []string, model string) (*EmbeddingResponse, error) {
	return &EmbeddingResponse{Model: model}, nil
}

func TestWrapWithMiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return MiddlewareFunc{
			BeforeRequestFunc: func(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionRequest, error) {
				order = append(order, "before-"+name)
				return req, nil
			},
			AfterResponseFunc: func(ctx context.Context, req *ChatCompletionRequest, resp *ChatCompletionResponse) (*ChatCompletionResponse, error) {
				order = append(order, "after-"+name)
				return resp, nil
			},
		}
	}

	base := &stubProvider{resp: &ChatCompletionResponse{ID: "r1"}}
	p := WrapWithMiddleware(base, mw("a"), mw("b"))
	resp, err := p.CreateCompletion(context.Background(), &ChatCompletionRequest{Model: "m"})
	if err != nil {
		t.Fatalf("CreateCompletion failed: %v", err)
	}
	if resp.ID != "r1" {
		t.Errorf("Expected response r1, got %q", resp.ID)
	}
	want := []string{"before-a", "before-b", "after-b", "after-a"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected %v, got %v", want, order)
			break
		}
	}
	if p.Name() != "stub" {
		t.Errorf("Expected Name to pass through, got %q", p.Name())
	}
}

func TestWrapWithMiddlewareAbortsAndMapsErrors(t *testing.T) {
	abort := errors.New("blocked")
	base := &stubProvider{}
	p := WrapWithMiddleware(base, MiddlewareFunc{
		BeforeRequestFunc: func(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionRequest, error) {
			return nil, abort
		},
	})
	if _, err := p.CreateCompletion(context.Background(), &ChatCompletionRequest{}); !errors.Is(err, abort) {
		t.Errorf("Expected abort error, got %v", err)
	}
	if base.calls != 0 {
		t.Error("Expected provider not to be called")
	}

	upstream := errors.New("upstream")
	base = &stubProvider{err: upstream}
	p = WrapWithMiddleware(base, MiddlewareFunc{
		OnErrorFunc: func(ctx context.Context, req *ChatCompletionRequest, err error) error {
			return nil
		},
	})
	if _, err := p.CreateCompletion(context.Background(), &ChatCompletionRequest{}); !errors.Is(err, upstream) {
		t.Errorf("Expected original error when middleware returns nil, got %v", err)
	}
}

func TestWrapWithMiddlewareKeepsEmbedder(t *testing.T) {
	p := WrapWithMiddleware(&stubEmbedder{}, MiddlewareFunc{})
	emb, ok := p.(Embedder)
	if !ok {
		t.Fatal("Expected wrapped provider to keep the Embedder capability")
	}
	resp, err := emb.CreateEmbedding(context.Background(), []string{"x"}, "e")
	if err != nil || resp.Model != "e" {
		t.Errorf("Unexpected embedding result: %+v, %v", resp, err)
	}

	if _, ok := WrapWithMiddleware(&stubProvider{}, MiddlewareFunc{}).(Embedder); ok {
		t.Error("Expected plain provider not to gain Embedder")
	}
}
