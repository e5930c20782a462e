package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codeboltai/codebolt-go/codebolt"
	"github.com/codeboltai/codebolt-go/config"
	cblogger "github.com/codeboltai/codebolt-go/logger"
	"github.com/codeboltai/codebolt-go/mcp"
	"github.com/codeboltai/codebolt-go/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const version = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		wsURL       = flag.String("url", "", "Host WebSocket URL (overrides config and CODEBOLT_WS_URL)")
		logFile     = flag.String("logfile", cblogger.DefaultLogFile, "Path to log file; stdout is reserved for MCP")
		metricsAddr = flag.String("metrics", "", "Address to serve Prometheus metrics on (e.g. localhost:9464). Disabled if empty")
	)
	flag.Parse()

	logger, err := cblogger.InitWithOptions(*logFile, false)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	configPath := config.GetConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if *wsURL != "" {
		cfg.WebSocket.URL = *wsURL
	}
	logger.Info().Str("config", configPath).Str("url", cfg.WebSocket.URL).Msg("codebolt-mcp starting")

	reg := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(reg)
	if *metricsAddr != "" {
		go serveMetrics(*metricsAddr, reg, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := codebolt.Connect(ctx, cfg, logger, codebolt.WithMetrics(metrics))
	if err != nil {
		return fmt.Errorf("failed to connect to host: %w", err)
	}
	defer client.Close() //nolint:errcheck // No remedy for close errors on shutdown

	srv, err := mcp.NewServer(client.Tools, "codebolt", version, logger)
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- srv.ServeStdio() }()

	select {
	case <-ctx.Done():
		logger.Info().Msg("Received shutdown signal")
	case err := <-client.Done():
		if err != nil {
			return fmt.Errorf("host connection lost: %w", err)
		}
		logger.Info().Msg("Host closed the connection")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("mcp server failed: %w", err)
		}
	}

	logger.Info().Msg("codebolt-mcp shutdown complete")
	return nil
}

func serveMetrics(addr string, reg *prometheus.Registry, logger zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	logger.Info().Str("addr", addr).Msg("Serving metrics")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("Metrics server failed")
	}
}
