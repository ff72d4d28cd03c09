package tools_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/jkringel/fantasy-football-agent/tools"
)

func newRegistryWith(t *testing.T, defs ...tools.Definition) *tools.Registry {
	t.Helper()
	r := tools.NewRegistry()
	for _, def := range defs {
		if err := r.Register(def); err != nil {
			t.Fatalf("register %s: %v", def.Name, err)
		}
	}
	return r
}

func TestDispatch_HappyPath(t *testing.T) {
	r := newRegistryWith(t, pingDefinition())

	result := r.Dispatch(context.Background(), tools.CallRequest{
		CallID: "1",
		Name:   "ping",
	})

	if result.CallID != "1" {
		t.Errorf("call id: want 1, got %s", result.CallID)
	}
	var got map[string]bool
	if err := json.Unmarshal([]byte(result.Payload), &got); err != nil {
		t.Fatalf("payload not JSON: %v (%q)", err, result.Payload)
	}
	if !got["pong"] {
		t.Errorf("unexpected payload: %q", result.Payload)
	}
}

func TestDispatch_UnknownTool(t *testing.T) {
	r := newRegistryWith(t, pingDefinition())

	result := r.Dispatch(context.Background(), tools.CallRequest{
		CallID: "42",
		Name:   "does_not_exist",
	})

	if result.CallID != "42" {
		t.Errorf("call id: want 42, got %s", result.CallID)
	}
	msg := errorMessage(t, result.Payload)
	if !strings.Contains(msg, "not found") {
		t.Errorf("error should mention the tool is missing, got %q", msg)
	}
	if !strings.Contains(msg, "does_not_exist") {
		t.Errorf("error should name the tool, got %q", msg)
	}
}

func TestDispatch_MalformedArgumentsTreatedAsEmpty(t *testing.T) {
	var received string
	r := newRegistryWith(t, tools.Definition{
		Name:       "echo_args",
		Parameters: tools.GenerateSchema[struct{}](),
		Function: func(ctx context.Context, input json.RawMessage) (any, error) {
			received = string(input)
			return "ok", nil
		},
	})

	for _, raw := range []string{"", "   ", "{not json", `"just a string"`, "[1,2,3]"} {
		received = ""
		result := r.Dispatch(context.Background(), tools.CallRequest{CallID: "m", Name: "echo_args", RawArguments: raw})
		if received != "{}" {
			t.Errorf("raw %q: handler saw %q, want {}", raw, received)
		}
		if result.Payload != "ok" {
			t.Errorf("raw %q: payload %q", raw, result.Payload)
		}
	}
}

func TestDispatch_ValidArgumentsPassThrough(t *testing.T) {
	var received string
	r := newRegistryWith(t, tools.Definition{
		Name:       "echo_args",
		Parameters: tools.GenerateSchema[struct{}](),
		Function: func(ctx context.Context, input json.RawMessage) (any, error) {
			received = string(input)
			return "ok", nil
		},
	})

	r.Dispatch(context.Background(), tools.CallRequest{CallID: "v", Name: "echo_args", RawArguments: `{"position":"RB"}`})
	if received != `{"position":"RB"}` {
		t.Errorf("handler saw %q", received)
	}
}

func TestDispatch_HandlerErrorBecomesPayload(t *testing.T) {
	r := newRegistryWith(t, tools.Definition{
		Name:       "broken",
		Parameters: tools.GenerateSchema[struct{}](),
		Function: func(ctx context.Context, input json.RawMessage) (any, error) {
			return nil, errors.New("upstream timeout")
		},
	})

	result := r.Dispatch(context.Background(), tools.CallRequest{CallID: "e", Name: "broken"})
	if msg := errorMessage(t, result.Payload); msg != "upstream timeout" {
		t.Errorf("error message: %q", msg)
	}
}

func TestDispatch_HandlerPanicBecomesPayload(t *testing.T) {
	r := newRegistryWith(t, tools.Definition{
		Name:       "explosive",
		Parameters: tools.GenerateSchema[struct{}](),
		Function: func(ctx context.Context, input json.RawMessage) (any, error) {
			panic("boom")
		},
	})

	result := r.Dispatch(context.Background(), tools.CallRequest{CallID: "p", Name: "explosive"})
	if result.CallID != "p" {
		t.Errorf("call id: %s", result.CallID)
	}
	if msg := errorMessage(t, result.Payload); !strings.Contains(msg, "boom") {
		t.Errorf("error should carry the panic value, got %q", msg)
	}
}

func TestDispatch_HostNativeNameAnsweredInformationally(t *testing.T) {
	r := tools.NewRegistry()
	result := r.Dispatch(context.Background(), tools.CallRequest{CallID: "h", Name: tools.WebSearchToolName})
	if !strings.Contains(result.Payload, "model host") {
		t.Errorf("expected informational note, got %q", result.Payload)
	}
	var payload map[string]string
	if err := json.Unmarshal([]byte(result.Payload), &payload); err != nil {
		t.Fatalf("payload not JSON: %v", err)
	}
	if _, isErr := payload["error"]; isErr {
		t.Error("host-native dispatch should not be reported as an error")
	}
}

func TestDispatch_StringResultPassesThroughVerbatim(t *testing.T) {
	r := newRegistryWith(t, tools.Definition{
		Name:       "text",
		Parameters: tools.GenerateSchema[struct{}](),
		Function: func(ctx context.Context, input json.RawMessage) (any, error) {
			return "STARTERS:\n  QB: Josh Allen", nil
		},
	})

	result := r.Dispatch(context.Background(), tools.CallRequest{CallID: "s", Name: "text"})
	if result.Payload != "STARTERS:\n  QB: Josh Allen" {
		t.Errorf("string results must not be re-quoted, got %q", result.Payload)
	}
}

func TestDispatch_NilResultBecomesEmptyObject(t *testing.T) {
	r := newRegistryWith(t, tools.Definition{
		Name:       "silent",
		Parameters: tools.GenerateSchema[struct{}](),
		Function: func(ctx context.Context, input json.RawMessage) (any, error) {
			return nil, nil
		},
	})

	result := r.Dispatch(context.Background(), tools.CallRequest{CallID: "n", Name: "silent"})
	if result.Payload != "{}" {
		t.Errorf("payload: %q", result.Payload)
	}
}

// errorMessage decodes an {"error": ...} payload and fails the test if the
// payload has any other shape.
func errorMessage(t *testing.T, payload string) string {
	t.Helper()
	var decoded map[string]string
	if err := json.Unmarshal([]byte(payload), &decoded); err != nil {
		t.Fatalf("payload not a JSON object: %v (%q)", err, payload)
	}
	msg, ok := decoded["error"]
	if !ok {
		t.Fatalf("payload missing error key: %q", payload)
	}
	return msg
}
