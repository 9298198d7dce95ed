// Package simulate generates plausible, time-varying engine telemetry for a
// chosen driving scenario.
//
// Each tick the Generator advances a small physical model — throttle demand
// from the scenario profile, first-order RPM lag, gear-ratio road speed,
// coolant/oil thermal coupling, RPM- and temperature-dependent oil pressure,
// throttle-and-RPM fuel delivery — then injects bounded uniform noise per
// field and clamps every reading to its physical envelope.
//
// Runs are reproducible: the Generator owns an explicitly seeded
// *rand.Rand, and Generate(scenario, steps) yields an identical Series for
// identical inputs. Generate(sc, n) is equivalent to Reset(sc) followed by
// n calls to Step, which live mode uses to stream one snapshot per tick.
package simulate
