// Package api serves the live-mode HTTP surface:
//
//	GET /api/v1/health        current health report (unknown when no data)
//	GET /api/v1/snapshot      latest telemetry snapshot
//	GET /api/v1/series        retained history window, oldest first
//	GET /api/v1/scenarios     supported scenario names
//	GET /api/v1/maintenance   service projection for ?mileage_km=N
//	GET /metrics              Prometheus text exposition of the latest reading
//
// All responses are JSON except /metrics, which encodes gauge families with
// the Prometheus client_model/expfmt types.
package api
