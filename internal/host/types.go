package host

import "context"

// ToolSpec declares one locally dispatched function tool to the host.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolOutput answers one tool call in a continuation turn.
type ToolOutput struct {
	CallID  string
	Payload string
}

// Request is one turn's submission. Exactly one of Prompt (initial turn) or
// ToolOutputs+PreviousResponseID (continuation turn) is populated; a
// continuation sends only tool outputs and relies on the host's session
// state keyed by the previous response id.
type Request struct {
	Instructions       string
	Prompt             string
	PreviousResponseID string
	ToolOutputs        []ToolOutput
	Tools              []ToolSpec
}

// ItemKind discriminates response output items.
type ItemKind int

const (
	// ItemMessage carries final or intermediate output text.
	ItemMessage ItemKind = iota
	// ItemToolCall asks the caller to run a registered tool.
	ItemToolCall
	// ItemHostToolCall records a capability the host executed itself
	// (web search); informational, no dispatch obligation.
	ItemHostToolCall
)

// OutputItem is one entry of a response's ordered output sequence.
type OutputItem struct {
	Kind ItemKind

	// Message fields.
	Text string

	// Tool-call fields. RawArguments is host-generated JSON and may be
	// malformed.
	CallID       string
	ToolName     string
	RawArguments string

	// Host-native fields.
	HostTool string
	Status   string
}

// Usage carries the host's token counters, surfaced for observability only.
type Usage struct {
	InputTokens  int64
	OutputTokens int64
}

// Response is one turn's result.
type Response struct {
	ID    string
	Items []OutputItem
	// Text is the host's aggregated output text when it provides one;
	// otherwise empty and callers concatenate message items.
	Text  string
	Usage Usage
}

// Client submits turns to the model host.
type Client interface {
	CreateResponse(ctx context.Context, req Request) (*Response, error)
}
