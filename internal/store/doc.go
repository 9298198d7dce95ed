// Package store manages in-memory live-mode state: the latest telemetry
// snapshot, a fixed-capacity window of recent snapshots, and the current
// health report. All methods are safe for concurrent use.
package store
