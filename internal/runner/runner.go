package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jkringel/fantasy-football-agent/internal/backoff"
	"github.com/jkringel/fantasy-football-agent/internal/host"
	"github.com/jkringel/fantasy-football-agent/internal/telemetry"
	"github.com/jkringel/fantasy-football-agent/tools"
)

// DefaultMaxTurns bounds the conversation when the caller doesn't configure
// a ceiling. A misbehaving host that keeps emitting tool calls would
// otherwise loop forever.
const DefaultMaxTurns = 16

// ErrTurnLimit reports that the conversation hit the turn ceiling before the
// host produced a final answer.
var ErrTurnLimit = errors.New("conversation exceeded turn limit")

// Runner owns one conversation loop. Each analysis run constructs its own
// Runner; nothing is shared between concurrent runs.
type Runner struct {
	host     host.Client
	registry *tools.Registry
	retry    backoff.Policy
	maxTurns int
}

// Options configures a Runner.
type Options struct {
	// MaxTurns caps host exchanges per run; <= 0 selects DefaultMaxTurns.
	MaxTurns int
	// Retry overrides the default backoff policy (tests).
	Retry *backoff.Policy
}

// New creates a Runner over the given host client and tool registry.
func New(hc host.Client, registry *tools.Registry, opts Options) *Runner {
	r := &Runner{
		host:     hc,
		registry: registry,
		retry:    backoff.Default(),
		maxTurns: opts.MaxTurns,
	}
	if opts.Retry != nil {
		r.retry = *opts.Retry
	}
	if r.maxTurns <= 0 {
		r.maxTurns = DefaultMaxTurns
	}
	return r
}

// Run executes the conversation to completion and returns the final text.
// Tool-level failures are absorbed into error payloads along the way; only
// retry exhaustion, cancellation, or the turn ceiling surface as errors.
func (r *Runner) Run(ctx context.Context, instructions, prompt string) (string, error) {
	if _, ok := telemetry.RunIDFromContext(ctx); !ok {
		ctx = telemetry.WithRunID(ctx, fmt.Sprintf("run-%d", time.Now().UnixNano()))
	}
	runID, _ := telemetry.RunIDFromContext(ctx)

	specs := r.toolSpecs()
	req := host.Request{
		Instructions: instructions,
		Prompt:       prompt,
		Tools:        specs,
	}

	for turn := 1; ; turn++ {
		resp, err := backoff.Do(ctx, r.retry, func(ctx context.Context) (*host.Response, error) {
			return r.host.CreateResponse(ctx, req)
		})
		if err != nil {
			return "", fmt.Errorf("model host request failed: %w", err)
		}

		telemetry.Emit("turn_usage", map[string]any{
			"run_id":        runID,
			"turn":          turn,
			"response_id":   resp.ID,
			"input_tokens":  resp.Usage.InputTokens,
			"output_tokens": resp.Usage.OutputTokens,
		})

		calls := collectToolCalls(resp)
		if len(calls) == 0 {
			return finalText(resp), nil
		}
		if turn >= r.maxTurns {
			return "", fmt.Errorf("%w (%d turns)", ErrTurnLimit, r.maxTurns)
		}

		// Dispatch sequentially, preserving response order; every call gets
		// exactly one output before the turn is resubmitted.
		outputs := make([]host.ToolOutput, 0, len(calls))
		for _, call := range calls {
			result := r.registry.Dispatch(ctx, call)
			outputs = append(outputs, host.ToolOutput{CallID: result.CallID, Payload: result.Payload})
		}

		req = host.Request{
			Instructions:       instructions,
			PreviousResponseID: resp.ID,
			ToolOutputs:        outputs,
			Tools:              specs,
		}
	}
}

// collectToolCalls gathers dispatchable tool-call items in response order.
// Host-native items carry no dispatch obligation and are only observed.
func collectToolCalls(resp *host.Response) []tools.CallRequest {
	var calls []tools.CallRequest
	for _, item := range resp.Items {
		switch item.Kind {
		case host.ItemToolCall:
			calls = append(calls, tools.CallRequest{
				CallID:       item.CallID,
				Name:         item.ToolName,
				RawArguments: item.RawArguments,
			})
		case host.ItemHostToolCall:
			telemetry.Emit("host_tool_call", map[string]any{
				"tool":   item.HostTool,
				"status": item.Status,
			})
		}
	}
	return calls
}

// finalText prefers the host's aggregated text and falls back to
// concatenating message items in order.
func finalText(resp *host.Response) string {
	if resp.Text != "" {
		return resp.Text
	}
	var b strings.Builder
	for _, item := range resp.Items {
		if item.Kind == host.ItemMessage {
			b.WriteString(item.Text)
		}
	}
	if b.Len() == 0 {
		return "Analysis complete."
	}
	return b.String()
}

func (r *Runner) toolSpecs() []host.ToolSpec {
	defs := r.registry.Definitions()
	specs := make([]host.ToolSpec, 0, len(defs))
	for _, def := range defs {
		specs = append(specs, host.ToolSpec{
			Name:        def.Name,
			Description: def.Description,
			Parameters:  def.Parameters,
		})
	}
	return specs
}
