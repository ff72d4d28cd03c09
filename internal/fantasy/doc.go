// Package fantasy turns league snapshot records into the compact summaries,
// tool payloads, and prompt text the advisor feeds to the model. Everything
// here is a pure function of the snapshot; defaults for missing provider
// fields are resolved at the espn boundary, not re-checked per consumer.
package fantasy
