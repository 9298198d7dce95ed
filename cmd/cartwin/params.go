package main

import (
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/config"
	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/simulate"
)

// simulationParams maps the config tree onto the generator's parameters,
// keeping the model constants at their documented defaults.
func simulationParams(cfg *config.Config) simulate.Params {
	p := simulate.DefaultParams()
	p.AmbientTempC = cfg.Simulation.AmbientTempC
	p.TickInterval = cfg.Simulation.TickInterval
	p.Noise = noiseParams(cfg.Simulation.Noise)
	return p
}

// noiseParams maps the config noise block onto the generator's amplitudes.
// Also used when a hot reload retunes noise mid-run.
func noiseParams(n config.NoiseConfig) simulate.Noise {
	return simulate.Noise{
		RPM:            n.RPM,
		SpeedKPH:       n.SpeedKPH,
		EngineLoadPct:  n.EngineLoadPct,
		CoolantTempC:   n.CoolantTempC,
		OilTempC:       n.OilTempC,
		OilPressureKPa: n.OilPressureKPa,
		FuelRateLPH:    n.FuelRateLPH,
		ThrottlePct:    n.ThrottlePct,
		IntakeTempC:    n.IntakeTempC,
		MAFGPS:         n.MAFGPS,
	}
}
