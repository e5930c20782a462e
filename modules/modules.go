// Package modules exposes the host's operations as typed request/response
// calls over the messaging layer.
//
// Each call sends an envelope whose type is the module's event name and
// whose action is the operation, then waits for a reply of type
// "<action>Response" with the same toolUseId. A reply carrying
// success:false becomes a *HostError.
package modules

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/codeboltai/codebolt-go/messaging"
)

// Requester sends an envelope and waits for its correlated reply.
type Requester interface {
	SendAndWaitForResponse(ctx context.Context, env messaging.Envelope, expectedType string) (*messaging.Message, error)
}

// HostError is returned when the host reports a failed operation.
type HostError struct {
	Event   string
	Action  string
	Message string
}

func (e *HostError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s.%s failed", e.Event, e.Action)
	}
	return fmt.Sprintf("%s.%s failed: %s", e.Event, e.Action, e.Message)
}

// ResponseType returns the reply type expected for action.
func ResponseType(action string) string {
	return action + "Response"
}

type status struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
}

func (s status) failure() (string, bool) {
	if s.Success != nil && !*s.Success {
		if s.Message == "" && len(s.Error) > 0 {
			var msg string
			if err := json.Unmarshal(s.Error, &msg); err == nil {
				return msg, true
			}
			return string(s.Error), true
		}
		return s.Message, true
	}
	return "", false
}

type module struct {
	r     Requester
	event string
}

// call performs one round trip and decodes the reply into out (which may be nil).
func (m module) call(ctx context.Context, action string, data any, out any) error {
	msg, err := m.r.SendAndWaitForResponse(ctx, messaging.Envelope{
		Type:   m.event,
		Action: action,
		Data:   data,
	}, ResponseType(action))
	if err != nil {
		return fmt.Errorf("%s.%s: %w", m.event, action, err)
	}

	var st status
	if err := msg.Decode(&st); err != nil {
		return err
	}
	if text, failed := st.failure(); failed {
		return &HostError{Event: m.event, Action: action, Message: text}
	}

	if out == nil {
		return nil
	}
	return msg.Decode(out)
}

// Modules bundles every module over one Requester.
type Modules struct {
	FS           *FS
	Git          *Git
	Terminal     *Terminal
	Deliberation *Deliberation
	Portfolio    *Portfolio
	Todo         *Todo
	Memory       *Memory
	Browser      *Browser
}

// New creates all modules.
func New(r Requester) *Modules {
	return &Modules{
		FS:           &FS{module{r, EventFS}},
		Git:          &Git{module{r, EventGit}},
		Terminal:     &Terminal{module{r, EventTerminal}},
		Deliberation: &Deliberation{module{r, EventDeliberation}},
		Portfolio:    &Portfolio{module{r, EventPortfolio}},
		Todo:         &Todo{module{r, EventTodo}},
		Memory:       &Memory{module{r, EventMemory}},
		Browser:      &Browser{module{r, EventBrowser}},
	}
}

// Event names, used as the envelope type.
const (
	EventFS           = "fsEvent"
	EventGit          = "gitEvent"
	EventTerminal     = "executeCommand"
	EventDeliberation = "agentDeliberation"
	EventPortfolio    = "agentPortfolio"
	EventTodo         = "todoEvent"
	EventMemory       = "memoryEvent"
	EventBrowser      = "browserEvent"
)
