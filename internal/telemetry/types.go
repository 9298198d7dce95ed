package telemetry

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidInput marks caller errors: unknown scenarios, non-positive step
// counts, negative mileage, empty series. Test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

// Scenario is a named driving condition profile that parameterises the
// generator's base trends.
type Scenario string

const (
	ScenarioIdle         Scenario = "idle"
	ScenarioAcceleration Scenario = "acceleration"
	ScenarioCruise       Scenario = "cruise"
	ScenarioStress       Scenario = "stress"
)

// Scenarios returns all scenarios in their canonical run order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioIdle, ScenarioAcceleration, ScenarioCruise, ScenarioStress}
}

// ParseScenario converts a user-supplied string (CLI flag, query parameter)
// into a Scenario. Matching is exact and lowercase.
func ParseScenario(s string) (Scenario, error) {
	switch Scenario(s) {
	case ScenarioIdle, ScenarioAcceleration, ScenarioCruise, ScenarioStress:
		return Scenario(s), nil
	}
	return "", fmt.Errorf("%w: unknown scenario %q", ErrInvalidInput, s)
}

// Snapshot is one instant's full set of simulated engine readings.
// Field names and units are part of the export contract — downstream
// consumers parse them by name, so they must not change.
type Snapshot struct {
	// Tick is the zero-based step index within the run.
	Tick int `json:"tick"`

	// Timestamp is the simulated wall-clock time of this reading.
	Timestamp time.Time `json:"timestamp"`

	RPM            int     `json:"rpm"`
	SpeedKPH       float64 `json:"speed_kph"`
	EngineLoadPct  float64 `json:"engine_load_pct"`
	CoolantTempC   float64 `json:"coolant_temp_c"`
	OilTempC       float64 `json:"oil_temp_c"`
	OilPressureKPa float64 `json:"oil_pressure_kpa"`
	FuelRateLPH    float64 `json:"fuel_rate_lph"`
	ThrottlePct    float64 `json:"throttle_pct"`
	IntakeTempC    float64 `json:"intake_temp_c"`
	MAFGPS         float64 `json:"maf_gps"`
	Gear           int     `json:"gear"`
}

// Series is one chronological scenario run. Order is significant.
type Series []Snapshot

// Range is an inclusive physical bound for one telemetry field.
type Range struct {
	Min float64
	Max float64
}

// Clamp restricts v to the range. Values outside the physical envelope are
// pinned to the nearest bound, never wrapped.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Physical envelopes per field. Noise is injected before clamping, so every
// published Snapshot satisfies these.
var (
	BoundsRPM            = Range{Min: 700, Max: 6500}
	BoundsSpeedKPH       = Range{Min: 0, Max: 240}
	BoundsEngineLoadPct  = Range{Min: 0, Max: 100}
	BoundsCoolantTempC   = Range{Min: 60, Max: 125}
	BoundsOilTempC       = Range{Min: 60, Max: 140}
	BoundsOilPressureKPa = Range{Min: 100, Max: 650}
	BoundsFuelRateLPH    = Range{Min: 0, Max: 45}
	BoundsThrottlePct    = Range{Min: 0, Max: 100}
	BoundsIntakeTempC    = Range{Min: 15, Max: 80}
	BoundsMAFGPS         = Range{Min: 0, Max: 250}
)

// Validate checks every bounded field against its physical envelope.
// The generator clamps before publishing, so a failure here indicates a bug.
func (s Snapshot) Validate() error {
	checks := []struct {
		name  string
		value float64
		r     Range
	}{
		{"rpm", float64(s.RPM), BoundsRPM},
		{"speed_kph", s.SpeedKPH, BoundsSpeedKPH},
		{"engine_load_pct", s.EngineLoadPct, BoundsEngineLoadPct},
		{"coolant_temp_c", s.CoolantTempC, BoundsCoolantTempC},
		{"oil_temp_c", s.OilTempC, BoundsOilTempC},
		{"oil_pressure_kpa", s.OilPressureKPa, BoundsOilPressureKPa},
		{"fuel_rate_lph", s.FuelRateLPH, BoundsFuelRateLPH},
		{"throttle_pct", s.ThrottlePct, BoundsThrottlePct},
		{"intake_temp_c", s.IntakeTempC, BoundsIntakeTempC},
		{"maf_gps", s.MAFGPS, BoundsMAFGPS},
	}
	for _, c := range checks {
		if !c.r.Contains(c.value) {
			return fmt.Errorf("telemetry: field %s = %.2f outside [%.0f, %.0f]",
				c.name, c.value, c.r.Min, c.r.Max)
		}
	}
	return nil
}
