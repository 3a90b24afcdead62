// Package sim option surfaces and result types.
package sim

import "github.com/katalvlaran/episim/core"

// DiscreteOptions configures RunDiscrete.
//
// Fields:
//   - Steps           — number of synchronous updates; the timeline holds
//     Steps+1 snapshots including the initial one.
//   - Beta            — per-link transmission rate; the per-step edge
//     probability is 1 − e^(−Beta).
//   - Gamma           — recovery rate; the per-step recovery probability
//     is 1 − e^(−Gamma).
//   - InitialInfected — nodes seeded Infected, uniformly without
//     replacement; clamped to [0, N].
//   - Seed            — RNG seed for this run (0 aliases the default
//     stream per the rng seed policy).
//   - Resistance      — enables the waning-immunity variant.
//   - Gain            — resistance added per recovery draw, clamped to
//     [0,1]; meaningful only when Resistance is set.
//
// Example:
//
//	opts := sim.DefaultDiscreteOptions()
//	opts.Steps = 200
//	opts.Seed = 42
//	tl, err := sim.RunDiscrete(ctx, g, opts)
type DiscreteOptions struct {
	Steps           int
	Beta            float64
	Gamma           float64
	InitialInfected int
	Seed            int64
	Resistance      bool
	Gain            float64
}

// DefaultDiscreteOptions returns the canonical starting configuration:
// a mild epidemic over 100 steps, one index case, no waning immunity.
func DefaultDiscreteOptions() DiscreteOptions {
	return DiscreteOptions{
		Steps:           100,
		Beta:            0.3,
		Gamma:           0.1,
		InitialInfected: 1,
		Gain:            0.25,
	}
}

// EventOptions configures RunEvents.
//
// Fields:
//   - Beta, Gamma, InitialInfected, Seed — as in DiscreteOptions, except
//     Beta and Gamma are used directly as instantaneous rates.
//   - MaxEvents   — cap on fired events; the timeline holds at most
//     MaxEvents+1 entries including the initial one.
//   - TimeHorizon — optional simulation-clock bound; 0 means unbounded.
//     An event whose holding time pushes the clock past the horizon is
//     discarded, not applied.
type EventOptions struct {
	Beta            float64
	Gamma           float64
	InitialInfected int
	Seed            int64
	MaxEvents       int
	TimeHorizon     float64
}

// DefaultEventOptions mirrors DefaultDiscreteOptions for the event engine.
func DefaultEventOptions() EventOptions {
	return EventOptions{
		Beta:            0.3,
		Gamma:           0.1,
		InitialInfected: 1,
		MaxEvents:       1000,
	}
}

// EventTimeline pairs each fired event's snapshot with the simulation
// clock at which it was applied. Times[0] is always 0 for the initial
// snapshot; subsequent timestamps are strictly increasing.
type EventTimeline struct {
	Times     []float64
	Snapshots core.Timeline
}

// Len returns the number of recorded entries (events fired + 1).
func (t *EventTimeline) Len() int { return len(t.Snapshots) }
