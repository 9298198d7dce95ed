package simulate

import "time"

// psiToKPa converts the oil-pressure model's psi-denominated constants to
// the kPa unit used throughout the data model.
const psiToKPa = 6.89476

// Noise holds per-field uniform noise amplitudes. A reading x is published
// as x + U(-amp, +amp), clamped to the field's physical bounds.
type Noise struct {
	RPM            float64
	SpeedKPH       float64
	EngineLoadPct  float64
	CoolantTempC   float64
	OilTempC       float64
	OilPressureKPa float64
	FuelRateLPH    float64
	ThrottlePct    float64
	IntakeTempC    float64
	MAFGPS         float64
}

// Params tunes the engine model. All values are plain constants of the
// simulation, not learned quantities.
type Params struct {
	// AmbientTempC is the outside air temperature feeding the intake model.
	AmbientTempC float64

	// IdleRPM is the zero-throttle engine speed the RPM model relaxes to.
	IdleRPM float64

	// RPMPerThrottlePct is the slope of the throttle→target-RPM line:
	// target = IdleRPM + throttle * RPMPerThrottlePct.
	RPMPerThrottlePct float64

	// RPMSmoothing is the per-tick fraction of the gap between current and
	// target RPM that is closed (first-order lag).
	RPMSmoothing float64

	// CoolantTargetC is the thermostat-regulated operating temperature the
	// cooling model pulls toward.
	CoolantTargetC float64

	// CoolantDissipation is the per-tick cooling rate per degree above
	// CoolantTargetC.
	CoolantDissipation float64

	// OilFollowRate is the per-tick fraction by which oil temperature
	// closes its gap to coolant temperature.
	OilFollowRate float64

	// GearRatios maps gear number (1–6) to its drive ratio.
	// Index 0 is neutral (ratio 0, zero road speed).
	GearRatios [7]float64

	// TickInterval is the simulated time between consecutive snapshots.
	// It drives timestamps and mileage integration.
	TickInterval time.Duration

	Noise Noise
}

// DefaultParams returns the documented simulation constants.
func DefaultParams() Params {
	return Params{
		AmbientTempC:       25,
		IdleRPM:            800,
		RPMPerThrottlePct:  50,
		RPMSmoothing:       0.1,
		CoolantTargetC:     85,
		CoolantDissipation: 0.1,
		OilFollowRate:      0.05,
		GearRatios:         [7]float64{0, 3.5, 2.5, 1.8, 1.3, 1.0, 0.8},
		TickInterval:       time.Second,
		Noise: Noise{
			RPM:            50,
			SpeedKPH:       2,
			EngineLoadPct:  2,
			CoolantTempC:   1,
			OilTempC:       1,
			OilPressureKPa: 14,
			FuelRateLPH:    0.1,
			ThrottlePct:    1,
			IntakeTempC:    0.5,
			MAFGPS:         0.5,
		},
	}
}
