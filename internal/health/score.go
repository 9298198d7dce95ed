package health

import (
	"fmt"
	"math"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
)

// Weight constants for the overall health score.
// They must sum to 1.0.
const (
	weightCooling     = 0.35
	weightLubrication = 0.35
	weightFuel        = 0.30
)

// State constants returned by the scorer.
const (
	StateHealthy  = "healthy"
	StateDegraded = "degraded"
	StateCritical = "critical"
	StateUnknown  = "unknown"
)

// Thresholds that map an overall score to a health state.
const (
	ThresholdHealthy  = 85.0
	ThresholdDegraded = 60.0
)

// Threshold bands per subsystem. A reading past its water mark erodes the
// subsystem score linearly at the stated rate.
const (
	// coolantTargetC is the ideal average coolant temperature; each degree
	// of deviation costs coolantPenaltyPerC points.
	coolantTargetC     = 85.0
	coolantPenaltyPerC = 5.0

	// oilPressureFloorKPa is the lubrication low-water-mark; each kPa the
	// observed minimum falls short costs oilPenaltyPerKPa points.
	oilPressureFloorKPa = 170.0
	oilPenaltyPerKPa    = 0.6

	// fuelHighLPH is the fuel-delivery high-water-mark; each L/h the
	// average consumption exceeds it costs fuelPenaltyPerLPH points.
	fuelHighLPH       = 12.0
	fuelPenaltyPerLPH = 5.0
)

// Stats are the aggregate observations a Report is derived from.
type Stats struct {
	AvgCoolantTempC   float64 `json:"avg_coolant_temp_c"`
	MaxCoolantTempC   float64 `json:"max_coolant_temp_c"`
	AvgRPM            float64 `json:"avg_rpm"`
	MaxRPM            int     `json:"max_rpm"`
	MinOilPressureKPa float64 `json:"min_oil_pressure_kpa"`
	AvgFuelRateLPH    float64 `json:"avg_fuel_rate_lph"`
}

// Report is the derived health snapshot for one series.
// All scores are in [0, 100].
type Report struct {
	Cooling     float64 `json:"cooling_score"`
	Lubrication float64 `json:"lubrication_score"`
	Fuel        float64 `json:"fuel_score"`
	Overall     float64 `json:"overall_score"`
	State       string  `json:"state"`
	Stats       Stats   `json:"stats"`
}

// Score derives subsystem and overall health scores from a series.
//
// Formula:
//
//	cooling     = 100 - |avg_coolant - 85°C| * 5
//	lubrication = 100 - max(0, 170 kPa - min_oil_pressure) * 0.6
//	fuel        = 100 - max(0, avg_fuel_rate - 12 L/h) * 5
//	overall     = cooling*0.35 + lubrication*0.35 + fuel*0.30
//
// Every score is clamped to [0, 100]. An empty series is an input error.
func Score(series telemetry.Series) (Report, error) {
	if len(series) == 0 {
		return Report{State: StateUnknown}, fmt.Errorf("%w: empty series", telemetry.ErrInvalidInput)
	}

	st := aggregate(series)

	cooling := clamp100(100 - math.Abs(st.AvgCoolantTempC-coolantTargetC)*coolantPenaltyPerC)
	lubrication := clamp100(100 - math.Max(0, oilPressureFloorKPa-st.MinOilPressureKPa)*oilPenaltyPerKPa)
	fuel := clamp100(100 - math.Max(0, st.AvgFuelRateLPH-fuelHighLPH)*fuelPenaltyPerLPH)

	overall := cooling*weightCooling + lubrication*weightLubrication + fuel*weightFuel

	return Report{
		Cooling:     cooling,
		Lubrication: lubrication,
		Fuel:        fuel,
		Overall:     overall,
		State:       stateFromScore(overall),
		Stats:       st,
	}, nil
}

// ScoreSnapshot scores a single instant — a series of one.
func ScoreSnapshot(snap telemetry.Snapshot) (Report, error) {
	return Score(telemetry.Series{snap})
}

// aggregate computes the summary statistics the score formulas consume.
func aggregate(series telemetry.Series) Stats {
	st := Stats{
		MaxCoolantTempC:   series[0].CoolantTempC,
		MaxRPM:            series[0].RPM,
		MinOilPressureKPa: series[0].OilPressureKPa,
	}
	var sumCoolant, sumRPM, sumFuel float64
	for _, s := range series {
		sumCoolant += s.CoolantTempC
		sumRPM += float64(s.RPM)
		sumFuel += s.FuelRateLPH
		if s.CoolantTempC > st.MaxCoolantTempC {
			st.MaxCoolantTempC = s.CoolantTempC
		}
		if s.RPM > st.MaxRPM {
			st.MaxRPM = s.RPM
		}
		if s.OilPressureKPa < st.MinOilPressureKPa {
			st.MinOilPressureKPa = s.OilPressureKPa
		}
	}
	n := float64(len(series))
	st.AvgCoolantTempC = sumCoolant / n
	st.AvgRPM = sumRPM / n
	st.AvgFuelRateLPH = sumFuel / n
	return st
}

// stateFromScore maps a numeric score to a named health state.
func stateFromScore(score float64) string {
	switch {
	case score >= ThresholdHealthy:
		return StateHealthy
	case score >= ThresholdDegraded:
		return StateDegraded
	default:
		return StateCritical
	}
}

// clamp100 restricts v to the range [0, 100].
func clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
