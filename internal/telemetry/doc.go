// Package telemetry provides opt-in JSONL event emission for observing
// analysis runs: per-turn token usage, tool execution timings, and
// host-native tool activity. Gated by FFA_OBSERVE_JSON=1; events append to
// .advisor/events.jsonl.
package telemetry
