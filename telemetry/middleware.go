package telemetry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/codeboltai/codebolt-go/llm"
)

// Middleware records request counts, latency and token usage for provider.
// Latency is measured from llm.WithRequestStart when the caller set it,
// otherwise from BeforeRequest.
func Middleware(provider string, m *Metrics) llm.Middleware {
	return &metricsMiddleware{provider: provider, metrics: m}
}

type metricsMiddleware struct {
	provider string
	metrics  *Metrics
	starts   sync.Map // *llm.ChatCompletionRequest -> time.Time
}

func (mw *metricsMiddleware) BeforeRequest(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionRequest, error) {
	mw.starts.Store(req, time.Now())
	return req, nil
}

func (mw *metricsMiddleware) AfterResponse(ctx context.Context, req *llm.ChatCompletionRequest, resp *llm.ChatCompletionResponse) (*llm.ChatCompletionResponse, error) {
	model := resp.Model
	if model == "" {
		model = req.Model
	}
	mw.metrics.RecordRequest(RequestLabels{
		Provider:         mw.provider,
		Model:            model,
		Status:           "success",
		DurationMs:       mw.elapsedMs(ctx, req),
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
	})
	return resp, nil
}

func (mw *metricsMiddleware) OnError(ctx context.Context, req *llm.ChatCompletionRequest, err error) error {
	status := string(llm.ErrorTypeUnknown)
	var llmErr *llm.Error
	if errors.As(err, &llmErr) {
		status = string(llmErr.Type)
	}
	mw.metrics.RecordRequest(RequestLabels{
		Provider:   mw.provider,
		Model:      req.Model,
		Status:     status,
		DurationMs: mw.elapsedMs(ctx, req),
	})
	return err
}

func (mw *metricsMiddleware) elapsedMs(ctx context.Context, req *llm.ChatCompletionRequest) float64 {
	v, ok := mw.starts.LoadAndDelete(req)
	start, _ := v.(time.Time)
	if ctxStart, found := llm.RequestStart(ctx); found {
		start, ok = ctxStart, true
	}
	if !ok {
		return 0
	}
	return float64(time.Since(start).Microseconds()) / 1000
}
