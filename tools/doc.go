// Package tools defines the callable-tool contracts for the advisor.
//
// Includes:
//   - Definition: name, description, JSON parameter schema, handler.
//   - GenerateSchema[T](): derive JSON Schema from Go structs.
//   - Registry: named registration with duplicate/unknown errors, plus the
//     host-native web_search declaration that has no local handler.
//   - Dispatch: lenient argument parsing and panic-safe handler invocation;
//     failures become error payloads, never dropped calls.
//   - Fantasy tools: get_waiver_wire, get_team_details, get_player_stats.
package tools
