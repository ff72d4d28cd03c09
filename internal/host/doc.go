// Package host models the request/response protocol with the model host: a
// turn submits instructions, input (prompt or tool outputs), and tool
// declarations, and receives an ordered sequence of typed output items.
// The OpenAI Responses API adapter lives here; the conversation driver only
// sees the neutral types, so tests script turns without the SDK.
package host
