package api

import (
	"net/http"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
)

// metrics returns GET /metrics — the latest snapshot and health scores in
// Prometheus text exposition format, so a scraper can treat the twin like
// any other target.
func (h *Handler) metrics(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.store.Latest()
	if !ok {
		http.Error(w, "no telemetry yet", http.StatusServiceUnavailable)
		return
	}

	fams := []*dto.MetricFamily{
		gauge("engine_rpm", "Engine speed in revolutions per minute.", float64(snap.RPM)),
		gauge("engine_speed_kph", "Road speed in km/h.", snap.SpeedKPH),
		gauge("engine_load_pct", "Engine load in percent.", snap.EngineLoadPct),
		gauge("engine_coolant_temp_celsius", "Coolant temperature in degrees Celsius.", snap.CoolantTempC),
		gauge("engine_oil_temp_celsius", "Oil temperature in degrees Celsius.", snap.OilTempC),
		gauge("engine_oil_pressure_kpa", "Oil pressure in kPa.", snap.OilPressureKPa),
		gauge("engine_fuel_rate_lph", "Fuel consumption in litres per hour.", snap.FuelRateLPH),
		gauge("engine_throttle_pct", "Throttle position in percent.", snap.ThrottlePct),
		gauge("engine_intake_temp_celsius", "Intake air temperature in degrees Celsius.", snap.IntakeTempC),
		gauge("engine_maf_gps", "Mass air flow in grams per second.", snap.MAFGPS),
	}
	if rep, ok := h.store.Report(); ok {
		fams = append(fams,
			gauge("engine_health_cooling_score", "Cooling subsystem health score (0-100).", rep.Cooling),
			gauge("engine_health_lubrication_score", "Lubrication subsystem health score (0-100).", rep.Lubrication),
			gauge("engine_health_fuel_score", "Fuel delivery subsystem health score (0-100).", rep.Fuel),
			gauge("engine_health_overall_score", "Overall health score (0-100).", rep.Overall),
		)
	}

	format := expfmt.NewFormat(expfmt.TypeTextPlain)
	w.Header().Set("Content-Type", string(format))
	enc := expfmt.NewEncoder(w, format)
	for _, mf := range fams {
		if err := enc.Encode(mf); err != nil {
			return
		}
	}
}

// gauge builds a single-sample gauge MetricFamily.
func gauge(name, help string, value float64) *dto.MetricFamily {
	typ := dto.MetricType_GAUGE
	return &dto.MetricFamily{
		Name: &name,
		Help: &help,
		Type: &typ,
		Metric: []*dto.Metric{
			{Gauge: &dto.Gauge{Value: &value}},
		},
	}
}
