// Package ws streams live telemetry to dashboard clients over WebSocket.
// The Hub broadcasts the latest snapshot and health report on a fixed
// interval and keeps connections alive with ping/pong frames.
package ws
