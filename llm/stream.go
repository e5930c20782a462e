package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"
	"github.com/rs/zerolog"
)

// ErrNoEventStream is returned when a streaming response carries no body.
var ErrNoEventStream = errors.New("response has no event stream")

// ReadEventStream decodes a server-sent-event response body and calls fn with
// every complete event. Keep-alive comments are dropped by the decoder and the
// OpenAI style "[DONE]" sentinel ends the stream. fn returning an error stops
// reading and that error is returned.
func ReadEventStream(resp *http.Response, fn func(eventType string, data []byte) error) error {
	dec := ssestream.NewDecoder(resp)
	if dec == nil {
		return ErrNoEventStream
	}
	defer dec.Close()

	for dec.Next() {
		ev := dec.Event()
		data := bytes.TrimSpace(ev.Data)
		if len(data) == 0 {
			continue
		}
		if bytes.Equal(data, []byte("[DONE]")) {
			return nil
		}
		if err := fn(ev.Type, data); err != nil {
			return err
		}
	}
	return dec.Err()
}

// DecodeEvent unmarshals one event payload into v. Events that are not valid
// JSON are logged at debug level and reported as not decoded.
func DecodeEvent(logger zerolog.Logger, data []byte, v any) bool {
	if err := json.Unmarshal(data, v); err != nil {
		logger.Debug().Err(err).Int("bytes", len(data)).Msg("Skipping undecodable stream event")
		return false
	}
	return true
}

// StreamAccumulator folds streamed chunks into a single ChatCompletionResponse.
// Text deltas are appended in order, tool call fragments are joined by index,
// and the finish reason and usage come from the last chunk that carries them.
type StreamAccumulator struct {
	id      string
	model   string
	created int64
	role    MessageRole
	text    strings.Builder
	calls   map[int]*ToolCall
	finish  string
	usage   Usage
}

// NewStreamAccumulator creates an empty accumulator.
func NewStreamAccumulator() *StreamAccumulator {
	return &StreamAccumulator{
		role:  RoleAssistant,
		calls: make(map[int]*ToolCall),
	}
}

// SetMeta records response identity. The first non-empty value of each field wins.
func (a *StreamAccumulator) SetMeta(id, model string, created int64) {
	if a.id == "" {
		a.id = id
	}
	if a.model == "" {
		a.model = model
	}
	if a.created == 0 {
		a.created = created
	}
}

// AddText appends a content delta.
func (a *StreamAccumulator) AddText(delta string) {
	a.text.WriteString(delta)
}

// AddToolCallDelta merges a tool call fragment. id and name are kept from the
// first fragment that sets them; argument fragments are concatenated.
func (a *StreamAccumulator) AddToolCallDelta(index int, id, name, arguments string) {
	call, ok := a.calls[index]
	if !ok {
		call = &ToolCall{Type: "function"}
		a.calls[index] = call
	}
	if call.ID == "" {
		call.ID = id
	}
	if call.Function.Name == "" {
		call.Function.Name = name
	}
	call.Function.Arguments += arguments
}

// SetFinishReason records the finish reason; empty values are ignored.
func (a *StreamAccumulator) SetFinishReason(reason string) {
	if reason != "" {
		a.finish = reason
	}
}

// SetUsage records token usage; all-zero usage is ignored.
func (a *StreamAccumulator) SetUsage(u Usage) {
	if u == (Usage{}) {
		return
	}
	if u.TotalTokens == 0 {
		u.TotalTokens = u.PromptTokens + u.CompletionTokens
	}
	a.usage = u
}

// Response builds the aggregated response.
func (a *StreamAccumulator) Response() *ChatCompletionResponse {
	msg := Message{Role: a.role, Content: a.text.String()}

	indexes := make([]int, 0, len(a.calls))
	for i := range a.calls {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)
	for _, i := range indexes {
		msg.ToolCalls = append(msg.ToolCalls, *a.calls[i])
	}

	created := a.created
	if created == 0 {
		created = time.Now().Unix()
	}

	return &ChatCompletionResponse{
		ID:      a.id,
		Object:  "chat.completion",
		Created: created,
		Model:   a.model,
		Choices: []Choice{{
			Index:        0,
			Message:      msg,
			FinishReason: a.finish,
		}},
		Usage: a.usage,
	}
}
