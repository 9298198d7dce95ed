package api

import (
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/health"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
)

// HealthResponse is the payload for GET /api/v1/health.
type HealthResponse struct {
	VehicleID string        `json:"vehicle_id"`
	State     string        `json:"state"`
	Report    health.Report `json:"report"`
	Samples   int           `json:"samples"`
}

// SnapshotResponse is the payload for GET /api/v1/snapshot.
type SnapshotResponse struct {
	VehicleID string             `json:"vehicle_id"`
	Snapshot  telemetry.Snapshot `json:"snapshot"`
	UpdatedAt string             `json:"updated_at"`
}

// SeriesResponse is the payload for GET /api/v1/series.
type SeriesResponse struct {
	VehicleID string           `json:"vehicle_id"`
	Count     int              `json:"count"`
	Series    telemetry.Series `json:"series"`
}

// ScenariosResponse is the payload for GET /api/v1/scenarios.
type ScenariosResponse struct {
	Scenarios []telemetry.Scenario `json:"scenarios"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Error string `json:"error"`
}
