package simulate

import (
	"math"

	"github.com/Allen-Ronaldo-C/Digital-Twin-Carengine/internal/telemetry"
)

// profile defines one scenario's driver inputs: which gear is held and how
// throttle demand evolves over the run.
type profile struct {
	gear       int
	throttleAt func(tick int) float64
}

// profiles is the closed set of scenario profiles.
//
//   - idle: no throttle, neutral, engine relaxes to idle speed.
//   - acceleration: throttle ramps 10 %/tick toward wide open in third gear.
//   - cruise: steady half throttle in top-ish gear.
//   - stress: sustained 90 % throttle held in a low gear.
//
// Gear 0 is neutral: the drive ratio is zero, so road speed stays zero.
var profiles = map[telemetry.Scenario]profile{
	telemetry.ScenarioIdle: {
		gear:       0,
		throttleAt: func(int) float64 { return 0 },
	},
	telemetry.ScenarioAcceleration: {
		gear:       3,
		throttleAt: func(tick int) float64 { return math.Min(100, float64(tick)*10) },
	},
	telemetry.ScenarioCruise: {
		gear:       5,
		throttleAt: func(int) float64 { return 50 },
	},
	telemetry.ScenarioStress: {
		gear:       3,
		throttleAt: func(int) float64 { return 90 },
	},
}
