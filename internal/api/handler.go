package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/health"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/store"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
)

// Handler serves the live-mode REST surface. It reads simulator state from
// the snapshot store and returns JSON responses.
type Handler struct {
	store     *store.Store
	vehicleID string
	router    *mux.Router

	// mu guards schedule, which config hot reload swaps at runtime.
	mu       sync.RWMutex
	schedule []health.ServiceItem
}

// New creates a Handler wired to the given store and registers all routes.
func New(st *store.Store, vehicleID string, schedule []health.ServiceItem) *Handler {
	h := &Handler{
		store:     st,
		vehicleID: vehicleID,
		schedule:  schedule,
		router:    mux.NewRouter(),
	}

	h.router.HandleFunc("/api/v1/health", h.health).Methods(http.MethodGet)
	h.router.HandleFunc("/api/v1/snapshot", h.snapshot).Methods(http.MethodGet)
	h.router.HandleFunc("/api/v1/series", h.series).Methods(http.MethodGet)
	h.router.HandleFunc("/api/v1/scenarios", h.scenarios).Methods(http.MethodGet)
	h.router.HandleFunc("/api/v1/maintenance", h.maintenance).Methods(http.MethodGet)
	h.router.HandleFunc("/metrics", h.metrics).Methods(http.MethodGet)

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// SetSchedule replaces the maintenance schedule used by subsequent
// /api/v1/maintenance requests. Safe to call while requests are in flight.
func (h *Handler) SetSchedule(schedule []health.ServiceItem) {
	h.mu.Lock()
	h.schedule = schedule
	h.mu.Unlock()
}

func (h *Handler) currentSchedule() []health.ServiceItem {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.schedule
}

// --- route handlers ---------------------------------------------------------

// health returns GET /api/v1/health — the current health report. If the
// periodic re-score has not run yet, it scores the retained history on the
// fly; with no data at all the state is unknown.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	rep, ok := h.store.Report()
	hist := h.store.History()
	if !ok {
		if len(hist) == 0 {
			jsonResp(w, http.StatusOK, HealthResponse{
				VehicleID: h.vehicleID,
				State:     health.StateUnknown,
			})
			return
		}
		var err error
		rep, err = health.Score(hist)
		if err != nil {
			jsonErr(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	jsonResp(w, http.StatusOK, HealthResponse{
		VehicleID: h.vehicleID,
		State:     rep.State,
		Report:    rep,
		Samples:   len(hist),
	})
}

// snapshot returns GET /api/v1/snapshot — the latest telemetry reading.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.store.Latest()
	if !ok {
		jsonErr(w, http.StatusNotFound, "no telemetry yet")
		return
	}
	jsonResp(w, http.StatusOK, SnapshotResponse{
		VehicleID: h.vehicleID,
		Snapshot:  snap,
		UpdatedAt: h.store.UpdatedAt().UTC().Format(time.RFC3339),
	})
}

// series returns GET /api/v1/series — the retained history window, oldest
// first.
func (h *Handler) series(w http.ResponseWriter, r *http.Request) {
	hist := h.store.History()
	jsonResp(w, http.StatusOK, SeriesResponse{
		VehicleID: h.vehicleID,
		Count:     len(hist),
		Series:    hist,
	})
}

// scenarios returns GET /api/v1/scenarios — the supported scenario names.
func (h *Handler) scenarios(w http.ResponseWriter, r *http.Request) {
	jsonResp(w, http.StatusOK, ScenariosResponse{Scenarios: telemetry.Scenarios()})
}

// maintenance returns GET /api/v1/maintenance?mileage_km=N — the service
// projection at the given odometer reading, adjusted by the current health
// report when one exists.
func (h *Handler) maintenance(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("mileage_km")
	if raw == "" {
		jsonErr(w, http.StatusBadRequest, "mileage_km query parameter is required")
		return
	}
	mileage, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		jsonErr(w, http.StatusBadRequest, "mileage_km must be a number")
		return
	}

	var rep *health.Report
	if cur, ok := h.store.Report(); ok {
		rep = &cur
	}

	est, err := health.EstimateMaintenance(mileage, rep, h.currentSchedule())
	if err != nil {
		if errors.Is(err, telemetry.ErrInvalidInput) {
			jsonErr(w, http.StatusBadRequest, err.Error())
			return
		}
		jsonErr(w, http.StatusInternalServerError, err.Error())
		return
	}
	jsonResp(w, http.StatusOK, est)
}

// --- helpers ----------------------------------------------------------------

func jsonResp(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonErr(w http.ResponseWriter, code int, msg string) {
	jsonResp(w, code, errorResponse{Error: msg})
}
