package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultResponseTimeout bounds SendAndWaitForResponse.
	DefaultResponseTimeout = 60 * time.Second
	// DefaultSubscriberBuffer is the channel size returned by Subscribe.
	DefaultSubscriberBuffer = 16
)

var (
	// ErrTimeout is returned when no matching reply arrives in time.
	ErrTimeout = errors.New("timed out waiting for response")
	// ErrClosed is returned once the manager has been closed.
	ErrClosed = errors.New("message manager closed")
	// ErrNotConnected is returned when the manager has no connection.
	ErrNotConnected = errors.New("not connected")
	// ErrDuplicateID is returned when a toolUseId is already awaiting a reply.
	ErrDuplicateID = errors.New("toolUseId already pending")
)

// Conn is the outbound side of the host connection.
type Conn interface {
	WriteJSON(v any) error
	Ready() bool
}

// Observer receives traffic events, e.g. for metrics.
type Observer interface {
	MessageSent(msgType string)
	MessageReceived(msgType string)
	PendingChanged(n int)
}

// Options configures a Manager.
type Options struct {
	ResponseTimeout  time.Duration
	SubscriberBuffer int
	Observer         Observer
}

type waiter struct {
	expectedType string
	ch           chan *Message
}

type subscriber struct {
	msgType string
	ch      chan *Message
}

// Manager sends envelopes and pairs replies with waiting callers.
// Many requests may be in flight; completion order is unspecified.
type Manager struct {
	conn     Conn
	timeout  time.Duration
	buffer   int
	observer Observer
	logger   zerolog.Logger

	mu      sync.Mutex
	pending map[string]*waiter
	subs    map[int]*subscriber
	nextSub int
	closed  bool
	done    chan struct{}
}

// NewManager creates a Manager writing to conn.
func NewManager(conn Conn, opts Options, logger zerolog.Logger) *Manager {
	timeout := opts.ResponseTimeout
	if timeout <= 0 {
		timeout = DefaultResponseTimeout
	}
	buffer := opts.SubscriberBuffer
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	return &Manager{
		conn:     conn,
		timeout:  timeout,
		buffer:   buffer,
		observer: opts.Observer,
		logger:   logger.With().Str("component", "messaging").Logger(),
		pending:  make(map[string]*waiter),
		subs:     make(map[int]*subscriber),
		done:     make(chan struct{}),
	}
}

// Send writes env without waiting for a reply. An empty ToolUseID is filled.
// When the connection is not ready a warning is logged and delivery is still
// attempted.
func (m *Manager) Send(env Envelope) error {
	m.mu.Lock()
	closed := m.closed
	m.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if env.ToolUseID == "" {
		env.ToolUseID = NewToolUseID()
	}
	return m.write(env)
}

func (m *Manager) write(env Envelope) error {
	if m.conn == nil {
		m.logger.Error().Str("type", env.Type).Str("action", env.Action).Msg("No connection for outgoing message")
		return ErrNotConnected
	}
	if !m.conn.Ready() {
		m.logger.Warn().Str("type", env.Type).Str("action", env.Action).Msg("Connection not ready, sending anyway")
	}
	if err := m.conn.WriteJSON(env); err != nil {
		m.logger.Error().Err(err).
			Str("type", env.Type).
			Str("action", env.Action).
			Str("tool_use_id", env.ToolUseID).
			Msg("Failed to send message")
		return fmt.Errorf("send %s/%s: %w", env.Type, env.Action, err)
	}
	if m.observer != nil {
		m.observer.MessageSent(env.Type)
	}
	m.logger.Debug().Str("type", env.Type).Str("action", env.Action).Str("tool_use_id", env.ToolUseID).Msg("Message sent")
	return nil
}

// SendAndWaitForResponse sends env and blocks until a message with the same
// toolUseId and type expectedType arrives, ctx is done, the response timeout
// elapses or the manager is closed.
func (m *Manager) SendAndWaitForResponse(ctx context.Context, env Envelope, expectedType string) (*Message, error) {
	if env.ToolUseID == "" {
		env.ToolUseID = NewToolUseID()
	}
	id := env.ToolUseID

	w := &waiter{expectedType: expectedType, ch: make(chan *Message, 1)}
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrClosed
	}
	if _, exists := m.pending[id]; exists {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	m.pending[id] = w
	n := len(m.pending)
	m.mu.Unlock()
	m.pendingChanged(n)

	defer m.remove(id, w)

	if err := m.write(env); err != nil {
		return nil, err
	}

	timer := time.NewTimer(m.timeout)
	defer timer.Stop()

	select {
	case msg := <-w.ch:
		return msg, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
		m.logger.Warn().Str("tool_use_id", id).Str("expected_type", expectedType).Dur("timeout", m.timeout).Msg("No response received")
		return nil, fmt.Errorf("%w: %s after %s", ErrTimeout, expectedType, m.timeout)
	case <-m.done:
		return nil, ErrClosed
	}
}

func (m *Manager) remove(id string, w *waiter) {
	m.mu.Lock()
	if m.pending[id] == w {
		delete(m.pending, id)
	}
	n := len(m.pending)
	m.mu.Unlock()
	m.pendingChanged(n)
}

func (m *Manager) pendingChanged(n int) {
	if m.observer != nil {
		m.observer.PendingChanged(n)
	}
}

// Dispatch handles one inbound frame. A frame matching a pending request
// resolves it; anything else goes to subscribers. Malformed frames are dropped.
func (m *Manager) Dispatch(raw []byte) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		m.logger.Warn().Err(err).Int("bytes", len(raw)).Msg("Dropping malformed message")
		return
	}
	msg.Raw = append(json.RawMessage(nil), raw...)

	if m.observer != nil {
		m.observer.MessageReceived(msg.Type)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if w, ok := m.pending[msg.ToolUseID]; ok && msg.ToolUseID != "" && w.expectedType == msg.Type {
		delete(m.pending, msg.ToolUseID)
		w.ch <- &msg
		return
	}

	delivered := false
	for _, s := range m.subs {
		if s.msgType != "" && s.msgType != msg.Type {
			continue
		}
		select {
		case s.ch <- &msg:
			delivered = true
		default:
			m.logger.Warn().Str("type", msg.Type).Msg("Subscriber buffer full, dropping message")
		}
	}
	if !delivered {
		m.logger.Debug().Str("type", msg.Type).Str("tool_use_id", msg.ToolUseID).Msg("Unhandled message")
	}
}

// Subscribe returns a channel receiving unsolicited messages of msgType
// ("" for all types) and a function that cancels the subscription.
func (m *Manager) Subscribe(msgType string) (<-chan *Message, func()) {
	ch := make(chan *Message, m.buffer)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := m.nextSub
	m.nextSub++
	m.subs[id] = &subscriber{msgType: msgType, ch: ch}
	m.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			if _, ok := m.subs[id]; ok {
				delete(m.subs, id)
				close(ch)
			}
		})
	}
}

// Pending returns the number of requests awaiting a reply.
func (m *Manager) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Close fails every waiter with ErrClosed and closes all subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	close(m.done)
	for id, s := range m.subs {
		close(s.ch)
		delete(m.subs, id)
	}
}
