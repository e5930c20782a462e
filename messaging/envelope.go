// Package messaging correlates requests sent to the host application with
// the replies that carry the same toolUseId.
package messaging

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Envelope is one outbound message.
type Envelope struct {
	ToolUseID string `json:"toolUseId"`
	Type      string `json:"type"`
	Action    string `json:"action,omitempty"`
	Data      any    `json:"data,omitempty"`
	Content   any    `json:"content,omitempty"`
	IsError   bool   `json:"isError,omitempty"`
}

// Message is one inbound message. Raw holds the complete frame so callers
// can decode their own payload shape.
type Message struct {
	ToolUseID string          `json:"toolUseId"`
	Type      string          `json:"type"`
	Action    string          `json:"action,omitempty"`
	Raw       json.RawMessage `json:"-"`
}

// Decode unmarshals the complete frame into v.
func (m *Message) Decode(v any) error {
	if err := json.Unmarshal(m.Raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", m.Type, err)
	}
	return nil
}

var toolUseIDPattern = regexp.MustCompile(`^tool_\d+_[a-z0-9]+$`)

// NewToolUseID returns an id of the form tool_<epoch-ms>_<9 hex chars>.
func NewToolUseID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("tool_%d_%s", time.Now().UnixMilli(), random)
}

// IsToolUseID reports whether id has the shape produced by NewToolUseID.
func IsToolUseID(id string) bool {
	return toolUseIDPattern.MatchString(id)
}
