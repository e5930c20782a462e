// Package codebolt connects an agent to the host application and exposes
// notifications, SDK modules, tools and configured LLM providers.
package codebolt

import (
	"context"
	"fmt"
	"net/http"

	"github.com/codeboltai/codebolt-go/agent"
	"github.com/codeboltai/codebolt-go/config"
	"github.com/codeboltai/codebolt-go/llm"
	"github.com/codeboltai/codebolt-go/messaging"
	"github.com/codeboltai/codebolt-go/modules"
	"github.com/codeboltai/codebolt-go/notifications"
	"github.com/codeboltai/codebolt-go/telemetry"
	"github.com/codeboltai/codebolt-go/tools"
	"github.com/codeboltai/codebolt-go/transport"
	"github.com/rs/zerolog"
)

// Client is a live connection to the host.
type Client struct {
	*modules.Modules

	Messages *messaging.Manager
	Notify   *notifications.Notifier
	Tools    *tools.Registry

	cfg     *config.Config
	conn    *transport.Conn
	metrics *telemetry.Metrics
	logger  zerolog.Logger
	cancel  context.CancelFunc
	done    chan error
}

// Option customizes Connect.
type Option func(*options)

type options struct {
	metrics *telemetry.Metrics
	header  http.Header
}

// WithMetrics records host traffic, tool calls and provider calls in m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithHeader adds headers to the WebSocket handshake.
func WithHeader(h http.Header) Option {
	return func(o *options) { o.header = h }
}

// Connect dials the host configured in cfg and starts reading from it. The
// returned client owns the connection until Close.
func Connect(ctx context.Context, cfg *config.Config, logger zerolog.Logger, opts ...Option) (*Client, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger = logger.With().Str("component", "codebolt").Logger()

	conn, err := transport.Dial(ctx, cfg.WebSocket.URL, transport.Options{
		DialAttempts: cfg.WebSocket.DialAttempts,
		Header:       o.header,
	}, logger)
	if err != nil {
		return nil, err
	}

	mgrOpts := messaging.Options{ResponseTimeout: cfg.WebSocket.Timeout()}
	if o.metrics != nil {
		mgrOpts.Observer = o.metrics
	}
	mgr := messaging.NewManager(conn, mgrOpts, logger)

	mods := modules.New(mgr)
	registry := tools.NewRegistry(logger)
	registry.Register(tools.All(mods)...)
	if o.metrics != nil {
		registry.SetObserver(o.metrics)
	}

	readCtx, cancel := context.WithCancel(context.Background())
	c := &Client{
		Modules:  mods,
		Messages: mgr,
		Notify:   notifications.New(mgr),
		Tools:    registry,
		cfg:      cfg,
		conn:     conn,
		metrics:  o.metrics,
		logger:   logger,
		cancel:   cancel,
		done:     make(chan error, 1),
	}

	go func() {
		err := conn.ReadLoop(readCtx, mgr.Dispatch)
		mgr.Close()
		if err != nil && readCtx.Err() == nil {
			logger.Error().Err(err).Msg("Connection to host lost")
		}
		c.done <- err
	}()

	logger.Info().Str("url", cfg.WebSocket.URL).Int("tools", len(registry.Names())).Msg("Connected to host")
	return c, nil
}

// Done yields the read loop's result once the connection ends.
func (c *Client) Done() <-chan error {
	return c.done
}

// Provider builds the named LLM provider from the client's configuration.
// An empty name selects the configured default.
func (c *Client) Provider(name string) (llm.Provider, error) {
	if name == "" {
		name = c.cfg.DefaultProvider
	}
	var mws []llm.Middleware
	if c.metrics != nil {
		mws = append(mws, telemetry.Middleware(name, c.metrics))
	}
	p, err := config.NewProvider(c.cfg, name, c.logger, mws...)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider %s: %w", name, err)
	}
	return p, nil
}

// Runner builds an agent runner that uses the named provider, the client's
// tool registry and its notifier.
func (c *Client) Runner(providerName string, ag *agent.Agent) (*agent.Runner, error) {
	p, err := c.Provider(providerName)
	if err != nil {
		return nil, err
	}
	return agent.NewRunner(c.logger, p, ag, c.Tools, c.Notify)
}

// Close stops the read loop, fails outstanding requests and closes the
// connection.
func (c *Client) Close() error {
	c.cancel()
	c.Messages.Close()
	return c.conn.Close()
}
