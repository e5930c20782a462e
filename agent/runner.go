package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	ctxpkg "github.com/codeboltai/codebolt-go/context"
	"github.com/codeboltai/codebolt-go/llm"
	"github.com/codeboltai/codebolt-go/messaging"
	"github.com/codeboltai/codebolt-go/notifications"
	"github.com/codeboltai/codebolt-go/tools"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Loop safeguards.
const (
	maxIterations       = 20
	maxRepeatedFailures = 3
)

// ToolExecutor runs tool calls and lists the tools it offers.
type ToolExecutor interface {
	Handle(ctx context.Context, toolName string, args json.RawMessage) tools.Result
	Specs() []llm.Tool
}

// Runner drives the completion/tool-call loop for one agent.
type Runner struct {
	provider llm.Provider
	agent    *Agent
	toolExec ToolExecutor
	notify   *notifications.Notifier // optional
	logger   zerolog.Logger
}

// NewRunner creates a Runner. notify may be nil.
func NewRunner(logger zerolog.Logger, provider llm.Provider, agent *Agent, toolExec ToolExecutor, notify *notifications.Notifier) (*Runner, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is required for Runner")
	}
	if agent == nil {
		return nil, errors.New("agent is nil")
	}
	if toolExec == nil {
		return nil, errors.New("tool executor is required for Runner")
	}
	return &Runner{
		provider: provider,
		agent:    agent,
		toolExec: toolExec,
		notify:   notify,
		logger:   logger.With().Str("component", "agentRunner").Str("agentID", agent.ID).Logger(),
	}, nil
}

// toolCallKey is used to track repeated identical failing tool calls.
type toolCallKey struct {
	toolName string
	input    string
}

// RunAgent sends userMsg after history and executes requested tools until
// the model answers without tool calls. The final text is returned.
func (r *Runner) RunAgent(ctx context.Context, userMsg string, history []llm.Message) (string, error) {
	ctx = ctxpkg.WithAgentID(ctx, r.agent.ID)
	progress, _ := ctxpkg.Progress(ctx)

	conversation := make([]llm.Message, 0, len(history)+2)
	if r.agent.SystemPrompt != "" {
		conversation = append(conversation, llm.NewTextMessage(llm.RoleSystem, r.agent.SystemPrompt))
	}
	conversation = append(conversation, history...)
	conversation = append(conversation, llm.NewTextMessage(llm.RoleUser, userMsg))

	specs := r.toolSpecs()
	repeatedFailures := make(map[toolCallKey]int)

	for iteration := 1; iteration <= maxIterations; iteration++ {
		req := &llm.ChatCompletionRequest{
			Messages:  conversation,
			Model:     r.agent.Model,
			MaxTokens: r.agent.MaxTokens,
			Tools:     specs,
		}
		if progress != nil {
			progress(fmt.Sprintf("Calling LLM (model: %s, messages: %d, tools: %d)", lo.CoalesceOrEmpty(req.Model, r.provider.Model()), len(conversation), len(specs)))
		}

		resp, err := r.infer(ctx, req)
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("provider %s returned no choices", r.provider.Name())
		}
		msg := resp.Choices[0].Message
		msg.Role = llm.RoleAssistant
		conversation = append(conversation, msg)

		if len(msg.ToolCalls) == 0 {
			final := strings.TrimSpace(msg.Content)
			r.sendReply(final)
			r.logger.Info().Int("iterations", iteration).Msg("Agent run finished")
			return final, nil
		}

		for _, call := range msg.ToolCalls {
			args := json.RawMessage(call.Function.Arguments)
			if len(strings.TrimSpace(call.Function.Arguments)) == 0 {
				args = json.RawMessage("{}")
			}
			res := r.toolExec.Handle(ctx, call.Function.Name, args)

			key := toolCallKey{toolName: call.Function.Name, input: string(args)}
			if res.Error != nil {
				repeatedFailures[key]++
				if repeatedFailures[key] >= maxRepeatedFailures {
					r.logger.Warn().
						Str("toolName", call.Function.Name).
						Str("input", string(args)).
						Int("failures", repeatedFailures[key]).
						Msg("Tool has failed too many times. Breaking loop to prevent infinite retry")
					return "", fmt.Errorf("tool '%s' repeatedly failed with same input after %d attempts: %s",
						call.Function.Name, maxRepeatedFailures, res.Error.Message)
				}
			} else {
				delete(repeatedFailures, key)
			}
			conversation = append(conversation, llm.NewToolResultMessage(call.ID, res.LLMContent))
		}
	}

	return "", fmt.Errorf("tool loop exceeded maximum iterations (%d). Possible infinite loop detected", maxIterations)
}

// infer runs one completion and mirrors it to the host as an llmnotify pair.
func (r *Runner) infer(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	if r.notify == nil {
		return r.provider.CreateCompletion(ctx, req)
	}

	id := messaging.NewToolUseID()
	if err := r.notify.LLM.InferenceRequest(notifications.Inference{Messages: req.Messages, Tools: req.Tools}, id); err != nil {
		r.logger.Warn().Err(err).Msg("Failed to send inference notification")
	}
	resp, err := r.provider.CreateCompletion(ctx, req)
	var content any = resp
	if err != nil {
		content = err.Error()
	}
	if nerr := r.notify.LLM.InferenceResult(content, err != nil, id); nerr != nil {
		r.logger.Warn().Err(nerr).Msg("Failed to send inference result notification")
	}
	return resp, err
}

func (r *Runner) sendReply(text string) {
	if r.notify == nil || text == "" {
		return
	}
	if err := r.notify.Chat.AgentTextResponse(text, false, messaging.NewToolUseID()); err != nil {
		r.logger.Warn().Err(err).Msg("Failed to send agent reply")
	}
}

func (r *Runner) toolSpecs() []llm.Tool {
	specs := r.toolExec.Specs()
	if len(r.agent.Tools) == 0 {
		return specs
	}
	return lo.Filter(specs, func(t llm.Tool, _ int) bool {
		return lo.Contains(r.agent.Tools, t.Function.Name)
	})
}
