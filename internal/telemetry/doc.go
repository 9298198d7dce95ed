// Package telemetry defines the shared value types of the digital twin:
// Scenario, Snapshot, Series, and the physical bounds of every reading.
// These are the canonical in-memory representations, separate from any
// export or API shaping.
package telemetry
