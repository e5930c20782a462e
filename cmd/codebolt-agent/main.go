package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/codeboltai/codebolt-go/agent"
	"github.com/codeboltai/codebolt-go/codebolt"
	"github.com/codeboltai/codebolt-go/config"
	ctxpkg "github.com/codeboltai/codebolt-go/context"
	cblogger "github.com/codeboltai/codebolt-go/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		wsURL    = flag.String("url", "", "Host WebSocket URL (overrides config and CODEBOLT_WS_URL)")
		provider = flag.String("provider", "", "Provider name (default: default_provider from config)")
		model    = flag.String("model", "", "Model id (default: the provider's configured model)")
		agentID  = flag.String("id", "codebolt-agent", "Agent id reported to the host")
		system   = flag.String("system", "", "Optional system prompt")
		toolList = flag.String("tools", "", "Comma separated tool allowlist; empty offers every tool")
		verbose  = flag.Bool("v", false, "Print tool progress to stderr")
		logFile  = flag.String("logfile", cblogger.DefaultLogFile, "Path to log file; stdout carries the answer")
	)
	flag.Parse()

	logger, err := cblogger.InitWithOptions(*logFile, false)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if *wsURL != "" {
		cfg.WebSocket.URL = *wsURL
	}

	prompt := strings.Join(flag.Args(), " ")
	if prompt == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read prompt: %w", err)
		}
		prompt = strings.TrimSpace(string(data))
	}
	if prompt == "" {
		return fmt.Errorf("prompt is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if *verbose {
		ctx = ctxpkg.WithProgress(ctx, func(msg string) { fmt.Fprintln(os.Stderr, msg) })
	}

	client, err := codebolt.Connect(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to host: %w", err)
	}
	defer client.Close() //nolint:errcheck // No remedy for close errors on shutdown

	ag := agent.NewAgent(*agentID, *agentID)
	ag.SystemPrompt = *system
	ag.Model = *model
	if *toolList != "" {
		ag.Tools = strings.Split(*toolList, ",")
	}

	runner, err := client.Runner(*provider, ag)
	if err != nil {
		return err
	}

	answer, err := runner.RunAgent(ctx, prompt, nil)
	if err != nil {
		return err
	}
	fmt.Println(answer)
	return nil
}
