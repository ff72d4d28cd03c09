package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/jkringel/fantasy-football-agent/internal/telemetry"
)

// CallRequest is one tool invocation the model host asked for. RawArguments
// is host-generated and may be malformed JSON.
type CallRequest struct {
	CallID       string
	Name         string
	RawArguments string
}

// CallResult answers exactly one CallRequest. Payload is the serialized
// handler output or an {"error": ...} object; every request gets a result.
type CallResult struct {
	CallID  string
	Payload string
}

// Dispatch resolves and runs the requested tool. It never returns an error:
// unknown names, malformed arguments, handler errors, and handler panics all
// become error payloads so a bad tool call cannot abort the conversation.
func (r *Registry) Dispatch(ctx context.Context, req CallRequest) CallResult {
	start := time.Now()
	result := r.dispatch(ctx, req)

	fields := map[string]any{
		"tool_name":   req.Name,
		"duration_ms": time.Since(start).Milliseconds(),
		"input_size":  len(req.RawArguments),
		"output_size": len(result.Payload),
	}
	if id, ok := telemetry.RunIDFromContext(ctx); ok {
		fields["run_id"] = id
	}
	telemetry.Emit("tool_exec", fields)

	return result
}

func (r *Registry) dispatch(ctx context.Context, req CallRequest) (result CallResult) {
	result.CallID = req.CallID

	// A handler panic must still yield a result for this call_id.
	defer func() {
		if rec := recover(); rec != nil {
			result.Payload = errorPayload(fmt.Sprintf("tool %s panicked: %v", req.Name, rec))
		}
	}()

	if r.IsHostNative(req.Name) {
		// The host executes these itself and never legitimately routes them
		// here; answer informationally rather than failing the turn.
		result.Payload = fmt.Sprintf(`{"note":"%s is executed by the model host"}`, req.Name)
		return result
	}

	handler, err := r.Resolve(req.Name)
	if err != nil {
		if errors.Is(err, ErrUnknownTool) {
			result.Payload = errorPayload(fmt.Sprintf("tool %q not found", req.Name))
		} else {
			result.Payload = errorPayload(err.Error())
		}
		return result
	}

	value, err := handler(ctx, parseArguments(req.RawArguments))
	if err != nil {
		result.Payload = errorPayload(err.Error())
		return result
	}
	result.Payload = serialize(value)
	return result
}

// parseArguments applies the leniency policy: host-generated arguments that
// are empty or not valid JSON are treated as an empty object, since
// no-parameter tools legitimately arrive with empty arguments.
func parseArguments(raw string) json.RawMessage {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !gjson.Valid(trimmed) || !strings.HasPrefix(trimmed, "{") {
		return json.RawMessage("{}")
	}
	return json.RawMessage(trimmed)
}

// serialize renders a handler result for the wire. Strings pass through
// verbatim; structured values are JSON-encoded.
func serialize(value any) string {
	switch v := value.(type) {
	case nil:
		return "{}"
	case string:
		return v
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return errorPayload(fmt.Sprintf("unserializable tool result: %v", err))
		}
		return string(b)
	}
}

func errorPayload(msg string) string {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return string(b)
}
