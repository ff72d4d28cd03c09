package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Handler executes a tool against the league snapshot. It receives the
// parsed argument object (always valid JSON, possibly {}) and returns a
// serializable result. Data-level problems (entity not found, bad filter)
// are reported as {"error": ...}-shaped return values; a non-nil error is
// reserved for unexpected failures and is converted to an error payload by
// the dispatcher.
type Handler func(ctx context.Context, input json.RawMessage) (any, error)

// Definition declares one callable tool: its wire name, the description the
// model sees, the JSON Schema of its parameters, and the handler. Immutable
// once registered.
type Definition struct {
	Name        string
	Description string
	Parameters  map[string]any
	Function    Handler
}

// GenerateSchema derives a JSON Schema object for T's fields, suitable for a
// function-tool parameter declaration. Constraints (enum, minimum, maximum,
// default) come from jsonschema struct tags.
func GenerateSchema[T any]() map[string]any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)

	b, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("tools: marshal schema: %v", err))
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		panic(fmt.Sprintf("tools: unmarshal schema: %v", err))
	}
	delete(m, "$schema")
	return m
}
