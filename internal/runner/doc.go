// Package runner drives the multi-turn tool-calling conversation with the
// model host.
//
// Invariants:
//   - Tool calls are dispatched sequentially, in the order the response
//     listed them, and every call_id receives exactly one result before the
//     turn is resubmitted.
//   - Host-native items (web search) are observed but never dispatched.
//   - The loop ends when a response carries no tool calls, or fails with
//     ErrTurnLimit once the configured turn ceiling is hit.
//
// Flow:
//
//	prompt -> response(tool calls) -> dispatch -> tool outputs -> ... -> final text
package runner
