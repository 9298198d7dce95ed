// Package health derives subsystem condition scores and maintenance
// projections from generated telemetry.
//
// score.go provides the pure Score(series) function computing cooling,
// lubrication and fuel-delivery scores (0–100) from fixed threshold bands,
// combined into an overall score with documented weights:
// cooling(35%) + lubrication(35%) + fuel(30%).
//
// maintenance.go projects remaining distance to each scheduled service from
// an odometer reading, optionally tightened when overall health is critical.
//
// Health state thresholds: Healthy ≥85, Degraded 60–84, Critical <60,
// Unknown for empty input.
package health
