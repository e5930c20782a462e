package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/codeboltai/codebolt-go/config"
	"github.com/codeboltai/codebolt-go/llm"
	cblogger "github.com/codeboltai/codebolt-go/logger"
	"github.com/codeboltai/codebolt-go/multillm"
)

func main() {
	var (
		provider   = flag.String("provider", "", "Provider name (default: default_provider from config). One of: "+strings.Join(multillm.Providers(), ", "))
		model      = flag.String("model", "", "Model id (default: the provider's configured model)")
		system     = flag.String("system", "", "Optional system prompt")
		stream     = flag.Bool("stream", false, "Request a streamed completion")
		listModels = flag.Bool("models", false, "List the provider's models and exit")
		timeout    = flag.Duration("timeout", 2*time.Minute, "Request timeout")
		logFile    = flag.String("logfile", "", "Path to log file. If not set, logs to stdout/stderr")
		pretty     = flag.Bool("pretty", false, "Use pretty console output (only valid when logfile is not set)")
	)
	flag.Parse()

	if *logFile != "" && *pretty {
		fmt.Fprintf(os.Stderr, "Error: --logfile and --pretty are mutually exclusive\n")
		os.Exit(1)
	}

	logger, err := cblogger.InitWithOptions(*logFile, *pretty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(config.GetConfigPath())
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to load configuration, using defaults")
		defaults := config.Defaults()
		cfg = &defaults
	}

	p, err := config.NewProvider(cfg, *provider, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if *listModels {
		models, err := p.GetModels(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1) //nolint:gocritic // cancel is irrelevant on exit
		}
		for _, m := range models {
			limit := "-"
			if m.TokenLimit != nil {
				limit = fmt.Sprint(*m.TokenLimit)
			}
			fmt.Printf("%-50s %-10s %s\n", m.ID, m.Type, limit)
		}
		return
	}

	prompt := strings.Join(flag.Args(), " ")
	if prompt == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading prompt: %v\n", err)
			os.Exit(1)
		}
		prompt = strings.TrimSpace(string(data))
	}

	var msgs []llm.Message
	if *system != "" {
		msgs = append(msgs, llm.NewTextMessage(llm.RoleSystem, *system))
	}
	msgs = append(msgs, llm.NewTextMessage(llm.RoleUser, prompt))

	resp, err := p.CreateCompletion(ctx, &llm.ChatCompletionRequest{
		Messages: msgs,
		Model:    *model,
		Stream:   *stream,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(resp.FirstContent())
	logger.Info().
		Str("provider", p.Name()).
		Str("model", resp.Model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("Completion finished")
}
