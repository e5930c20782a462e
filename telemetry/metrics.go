// Package telemetry records Prometheus metrics for provider calls, host
// traffic and tool executions.
package telemetry

import (
	"time"

	"github.com/codeboltai/codebolt-go/tools"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the SDK.
type Metrics struct {
	LLMRequestsTotal     *prometheus.CounterVec
	LLMRequestDurationMs *prometheus.HistogramVec
	LLMTokensTotal       *prometheus.CounterVec
	WSPendingRequests    prometheus.Gauge
	WSMessagesTotal      *prometheus.CounterVec
	ToolExecutionsTotal  *prometheus.CounterVec
	ToolDurationMs       *prometheus.HistogramVec
}

// NewMetrics creates all metrics and registers them with reg.
// A nil reg registers with the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		LLMRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "codebolt_llm_requests_total",
			Help: "Total number of chat completion requests by outcome.",
		}, []string{"provider", "model", "status"}),

		LLMRequestDurationMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "codebolt_llm_request_duration_ms",
			Help:    "Chat completion latency in milliseconds.",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000},
		}, []string{"provider", "model"}),

		LLMTokensTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "codebolt_llm_tokens_total",
			Help: "Total tokens reported by providers.",
		}, []string{"provider", "model", "direction"}),

		WSPendingRequests: factory.NewGauge(prometheus.GaugeOpts{
			Name: "codebolt_ws_pending_requests",
			Help: "Requests waiting for a host response.",
		}),

		WSMessagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "codebolt_ws_messages_total",
			Help: "Messages exchanged with the host.",
		}, []string{"direction", "type"}),

		ToolExecutionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "codebolt_tool_executions_total",
			Help: "Tool calls by outcome.",
		}, []string{"tool", "status"}),

		ToolDurationMs: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "codebolt_tool_duration_ms",
			Help:    "Tool call latency in milliseconds.",
			Buckets: []float64{5, 10, 50, 100, 250, 500, 1000, 5000, 30000},
		}, []string{"tool"}),
	}
}

// RequestLabels holds the values recorded for one completion.
type RequestLabels struct {
	Provider         string
	Model            string
	Status           string
	DurationMs       float64
	PromptTokens     int
	CompletionTokens int
}

// RecordRequest records metrics for a finished completion.
func (m *Metrics) RecordRequest(l RequestLabels) {
	m.LLMRequestsTotal.WithLabelValues(l.Provider, l.Model, l.Status).Inc()
	m.LLMRequestDurationMs.WithLabelValues(l.Provider, l.Model).Observe(l.DurationMs)

	if l.PromptTokens > 0 {
		m.LLMTokensTotal.WithLabelValues(l.Provider, l.Model, "prompt").Add(float64(l.PromptTokens))
	}
	if l.CompletionTokens > 0 {
		m.LLMTokensTotal.WithLabelValues(l.Provider, l.Model, "completion").Add(float64(l.CompletionTokens))
	}
}

// MessageSent implements messaging.Observer.
func (m *Metrics) MessageSent(msgType string) {
	m.WSMessagesTotal.WithLabelValues("sent", msgType).Inc()
}

// MessageReceived implements messaging.Observer.
func (m *Metrics) MessageReceived(msgType string) {
	m.WSMessagesTotal.WithLabelValues("received", msgType).Inc()
}

// PendingChanged implements messaging.Observer.
func (m *Metrics) PendingChanged(n int) {
	m.WSPendingRequests.Set(float64(n))
}

// ToolHandled implements tools.Observer.
func (m *Metrics) ToolHandled(name string, errType tools.ErrorType, elapsed time.Duration) {
	status := "success"
	if errType != "" {
		status = string(errType)
	}
	m.ToolExecutionsTotal.WithLabelValues(name, status).Inc()
	m.ToolDurationMs.WithLabelValues(name).Observe(float64(elapsed.Microseconds()) / 1000)
}
