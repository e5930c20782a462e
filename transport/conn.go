// Package transport holds the single WebSocket connection to the host application.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	// DefaultDialAttempts is used when Options.DialAttempts is zero.
	DefaultDialAttempts = 5
	// DefaultInitialInterval is the first delay between dial attempts.
	DefaultInitialInterval = 500 * time.Millisecond
	// DefaultHandshakeTimeout bounds one WebSocket handshake.
	DefaultHandshakeTimeout = 10 * time.Second

	closeGracePeriod = time.Second
)

// ErrClosed is returned by WriteJSON after Close.
var ErrClosed = errors.New("connection closed")

// Options configures Dial.
type Options struct {
	// DialAttempts is the total number of connection attempts.
	DialAttempts     int
	InitialInterval  time.Duration
	HandshakeTimeout time.Duration
	Header           http.Header
}

// Conn is a WebSocket connection carrying JSON text frames.
// WriteJSON is safe for concurrent use; ReadLoop must have a single caller.
type Conn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
	ready   atomic.Bool
	closed  atomic.Bool
	once    sync.Once
	logger  zerolog.Logger
}

// Dial connects to url, retrying with exponential backoff until
// opts.DialAttempts is exhausted or ctx is done. Only connection
// establishment is retried.
func Dial(ctx context.Context, url string, opts Options, logger zerolog.Logger) (*Conn, error) {
	logger = logger.With().Str("component", "transport").Str("url", url).Logger()

	attempts := opts.DialAttempts
	if attempts <= 0 {
		attempts = DefaultDialAttempts
	}
	interval := opts.InitialInterval
	if interval <= 0 {
		interval = DefaultInitialInterval
	}
	handshake := opts.HandshakeTimeout
	if handshake <= 0 {
		handshake = DefaultHandshakeTimeout
	}

	dialer := &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: handshake,
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = interval
	eb.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(attempts-1)), ctx)

	var ws *websocket.Conn
	attempt := 0
	operation := func() error {
		attempt++
		conn, resp, err := dialer.DialContext(ctx, url, opts.Header)
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		if err != nil {
			return err
		}
		ws = conn
		return nil
	}
	notify := func(err error, next time.Duration) {
		logger.Warn().Err(err).Int("attempt", attempt).Dur("retry_in", next).Msg("WebSocket dial failed")
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		return nil, fmt.Errorf("failed to connect to %s after %d attempts: %w", url, attempt, err)
	}

	c := &Conn{ws: ws, logger: logger}
	c.ready.Store(true)
	logger.Info().Int("attempts", attempt).Msg("WebSocket connected")
	return c, nil
}

// Ready reports whether the connection is open.
func (c *Conn) Ready() bool {
	return c.ready.Load()
}

// WriteJSON sends v as one text frame.
func (c *Conn) WriteJSON(v any) error {
	if c.closed.Load() {
		return ErrClosed
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.ws.WriteJSON(v); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ReadLoop delivers every text frame to handler until the connection fails,
// the peer closes it, or ctx is done. A normal close returns nil.
func (c *Conn) ReadLoop(ctx context.Context, handler func([]byte)) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = c.Close()
		case <-done:
		}
	}()

	for {
		msgType, data, err := c.ws.ReadMessage()
		if err != nil {
			c.ready.Store(false)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if c.closed.Load() || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Info().Msg("WebSocket closed")
				return nil
			}
			c.logger.Error().Err(err).Msg("WebSocket read failed")
			return fmt.Errorf("read: %w", err)
		}
		if msgType != websocket.TextMessage {
			c.logger.Debug().Int("type", msgType).Msg("Ignoring non-text frame")
			continue
		}
		handler(data)
	}
}

// Close sends a close frame and releases the connection. It is idempotent.
func (c *Conn) Close() error {
	var err error
	c.once.Do(func() {
		c.closed.Store(true)
		c.ready.Store(false)

		c.writeMu.Lock()
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGracePeriod))
		c.writeMu.Unlock()

		err = c.ws.Close()
	})
	return err
}
