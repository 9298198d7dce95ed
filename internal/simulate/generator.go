package simulate

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
)

// Generator produces scenario-driven engine telemetry. It owns an explicitly
// seeded *rand.Rand — never the global source — so identical inputs yield
// identical output and concurrent generators never share state.
//
// A Generator is not safe for concurrent use; create one per run.
type Generator struct {
	params Params
	rng    *rand.Rand
	now    func() time.Time // injectable for deterministic tests

	// engine state, reset per scenario
	scenario telemetry.Scenario
	prof     profile
	tick     int
	base     time.Time
	rpm      float64
	coolantC float64
	oilC     float64

	// odometer accumulates across Reset calls, like a real vehicle.
	distanceKM float64
}

// New creates a Generator with the given parameters and deterministic seed.
func New(p Params, seed int64) *Generator {
	return &Generator{
		params: p,
		rng:    rand.New(rand.NewSource(seed)),
		now:    time.Now,
	}
}

// Reset selects the scenario and returns the engine to its warm starting
// state (idle RPM, normal operating temperatures). The odometer is kept.
func (g *Generator) Reset(sc telemetry.Scenario) error {
	prof, ok := profiles[sc]
	if !ok {
		return fmt.Errorf("%w: unknown scenario %q", telemetry.ErrInvalidInput, sc)
	}
	g.scenario = sc
	g.prof = prof
	g.tick = 0
	g.base = g.now()
	g.rpm = g.params.IdleRPM
	g.coolantC = g.params.CoolantTargetC
	g.oilC = g.params.CoolantTargetC - 5
	return nil
}

// Generate runs the full contract: validate, reset, produce exactly steps
// snapshots. On any error no partial series is returned.
func (g *Generator) Generate(sc telemetry.Scenario, steps int) (telemetry.Series, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: steps must be positive, got %d", telemetry.ErrInvalidInput, steps)
	}
	if err := g.Reset(sc); err != nil {
		return nil, err
	}
	series := make(telemetry.Series, 0, steps)
	for i := 0; i < steps; i++ {
		series = append(series, g.Step())
	}
	return series, nil
}

// Step advances the engine model one tick and returns the resulting
// snapshot. Callers must Reset before the first Step.
func (g *Generator) Step() telemetry.Snapshot {
	p := g.params
	throttle := g.prof.throttleAt(g.tick)

	// RPM relaxes toward the throttle-demanded target (first-order lag).
	target := p.IdleRPM + throttle*p.RPMPerThrottlePct
	g.rpm += (target - g.rpm) * p.RPMSmoothing

	// Road speed follows RPM through the held gear's ratio.
	speed := g.rpm * p.GearRatios[g.prof.gear] / 60

	// Load reflects throttle demand plus pumping losses at engine speed.
	load := throttle*0.7 + g.rpm/telemetry.BoundsRPM.Max*25

	// Thermal balance: combustion heat against thermostat-regulated cooling.
	heat := g.rpm/1000*0.2 + throttle*0.05
	cooling := (g.coolantC - p.CoolantTargetC) * p.CoolantDissipation
	g.coolantC += heat - cooling

	// Oil temperature trails coolant.
	g.oilC += (g.coolantC - g.oilC) * p.OilFollowRate

	// Oil pressure rises with pump speed and thins with hot oil.
	basePSI := g.rpm/1000*8 + 20
	tempFactor := clampRange(1-(g.oilC-80)/200, 0.5, 1.5)
	oilKPa := basePSI * tempFactor * psiToKPa

	// Fuel delivery scales with throttle opening and engine speed.
	fuel := throttle/100*12 + g.rpm/1000*0.8

	// Intake air heats up under load; mass air flow tracks RPM and load.
	intake := p.AmbientTempC + load*0.15
	maf := g.rpm / 1000 * load * 0.4

	// Odometer integrates road speed over the tick.
	g.distanceKM += speed * p.TickInterval.Seconds() / 3600

	snap := telemetry.Snapshot{
		Tick:           g.tick,
		Timestamp:      g.base.Add(time.Duration(g.tick) * p.TickInterval),
		RPM:            int(math.Round(g.noisy(g.rpm, p.Noise.RPM, telemetry.BoundsRPM))),
		SpeedKPH:       g.noisy(speed, p.Noise.SpeedKPH, telemetry.BoundsSpeedKPH),
		EngineLoadPct:  g.noisy(load, p.Noise.EngineLoadPct, telemetry.BoundsEngineLoadPct),
		CoolantTempC:   g.noisy(g.coolantC, p.Noise.CoolantTempC, telemetry.BoundsCoolantTempC),
		OilTempC:       g.noisy(g.oilC, p.Noise.OilTempC, telemetry.BoundsOilTempC),
		OilPressureKPa: g.noisy(oilKPa, p.Noise.OilPressureKPa, telemetry.BoundsOilPressureKPa),
		FuelRateLPH:    g.noisy(fuel, p.Noise.FuelRateLPH, telemetry.BoundsFuelRateLPH),
		ThrottlePct:    g.noisy(throttle, p.Noise.ThrottlePct, telemetry.BoundsThrottlePct),
		IntakeTempC:    g.noisy(intake, p.Noise.IntakeTempC, telemetry.BoundsIntakeTempC),
		MAFGPS:         g.noisy(maf, p.Noise.MAFGPS, telemetry.BoundsMAFGPS),
		Gear:           g.prof.gear,
	}
	g.tick++
	return snap
}

// Scenario returns the active scenario set by the last Reset.
func (g *Generator) Scenario() telemetry.Scenario { return g.scenario }

// DistanceKM returns the distance accumulated since the Generator was
// created, across all runs.
func (g *Generator) DistanceKM() float64 { return g.distanceKM }

// SetClock replaces the wall-clock source used for run base timestamps.
// Production code keeps the default time.Now.
func (g *Generator) SetClock(now func() time.Time) { g.now = now }

// SetNoise replaces the per-field noise amplitudes, taking effect on the
// next Step. The engine state and physics constants are untouched, so live
// retuning never perturbs the underlying model. Must be called from the
// goroutine that owns the Generator.
func (g *Generator) SetNoise(n Noise) { g.params.Noise = n }

// noisy injects uniform noise in ±amp, then clamps to the field's bounds.
func (g *Generator) noisy(v, amp float64, r telemetry.Range) float64 {
	if amp > 0 {
		v += (g.rng.Float64()*2 - 1) * amp
	}
	return r.Clamp(v)
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
