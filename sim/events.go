// SPDX-License-Identifier: MIT
// Package: episim/sim
//
// events.go — exact event-driven (Gillespie-style) SIR engine.
//
// Model (instantaneous per-node rates):
//   - Susceptible: beta × (number of infected neighbors)
//   - Infected:    gamma
//   - Recovered:   0
//
// Loop, bounded by MaxEvents:
//  1. Recompute every rate and the total Rtot. The rescan each iteration
//     is required: neighbor-infection counts change as the state evolves.
//  2. Rtot ≤ 0 ⇒ absorbing configuration; stop (normal termination).
//  3. Holding time dt = −ln(U)/Rtot for a fresh U ∈ (0,1); advance the
//     clock; a clock past TimeHorizon stops BEFORE applying the event.
//  4. Threshold draw in [0, Rtot); rescan nodes id-ascending accumulating
//     rates; the first node whose cumulative rate crosses the threshold
//     fires. Fixed scan order is the tie-break.
//  5. Apply the single transition (S→I or I→R), record (clock, snapshot).
//
// Draw discipline: one uniform for the holding time, then one for node
// selection, in that order each iteration — fixed so seeded tests stay
// stable. U==0 is redrawn (dt must be finite and positive; timestamps are
// strictly increasing by contract).
//
// Complexity: O(events × (N + L)) time, O(N) working space.
package sim

import (
	"context"
	"math"

	"github.com/katalvlaran/episim/core"
	"github.com/katalvlaran/episim/rng"
)

// RunEvents evolves g one stochastic event at a time and returns the
// timeline of (timestamp, snapshot) pairs: the initial state at time 0
// plus one entry per fired event.
//
// Termination on MaxEvents, an absorbing state, or TimeHorizon is normal;
// the only error is caller cancellation (partial timeline + ctx.Err()).
func RunEvents(ctx context.Context, g *core.Graph, opts EventOptions) (*EventTimeline, error) {
	n := g.N()

	// 1) Clamp parameters to the nearest valid configuration.
	beta := clampRate(opts.Beta)
	gamma := clampRate(opts.Gamma)
	maxEvents := clampIntMin(opts.MaxEvents, 0)
	horizon := clampRate(opts.TimeHorizon)
	initial := clampIntRange(opts.InitialInfected, 0, n)

	// 2) Per-run state.
	r := rng.New(opts.Seed)
	ix := core.NewAdjacencyIndex(g)

	state := make(core.Snapshot, n)
	seedInfected(state, initial, r)

	tl := &EventTimeline{
		Times:     make([]float64, 0, maxEvents+1),
		Snapshots: make(core.Timeline, 0, maxEvents+1),
	}
	tl.Times = append(tl.Times, 0)
	tl.Snapshots = append(tl.Snapshots, state.Clone())

	rates := make([]float64, n)
	clock := 0.0

	// 3) Event loop.
	for event := 0; event < maxEvents; event++ {
		// Cancellation boundary: between events only.
		if err := ctx.Err(); err != nil {
			return tl, err
		}

		// Rate bookkeeping: full rescan, id-ascending.
		rtot := 0.0
		for id := 0; id < n; id++ {
			var rate float64
			switch state[id] {
			case core.Susceptible:
				m := 0
				for _, nb := range ix.Neighbors(id) {
					if state[nb] == core.Infected {
						m++
					}
				}
				rate = beta * float64(m)
			case core.Infected:
				rate = gamma
			}
			rates[id] = rate
			rtot += rate
		}

		// Absorbing configuration: nothing can fire, the run is over.
		if rtot <= 0 {
			break
		}

		// Holding time; redraw U==0 so dt stays finite and positive.
		u := r.Float64()
		for u == 0 {
			u = r.Float64()
		}
		clock += -math.Log(u) / rtot

		// Horizon check happens before the event is applied.
		if horizon > 0 && clock > horizon {
			break
		}

		// Node selection: cumulative-rate scan in fixed id order.
		threshold := r.Float64() * rtot
		chosen := -1
		acc := 0.0
		for id := 0; id < n; id++ {
			if rates[id] <= 0 {
				continue
			}
			acc += rates[id]
			if acc > threshold {
				chosen = id

				break
			}
		}
		if chosen < 0 {
			// Float round-off pushed the threshold past the last partial
			// sum; the final active node fires.
			for id := n - 1; id >= 0; id-- {
				if rates[id] > 0 {
					chosen = id

					break
				}
			}
		}

		// Apply exactly one transition.
		switch state[chosen] {
		case core.Susceptible:
			state[chosen] = core.Infected
		case core.Infected:
			state[chosen] = core.Recovered
		}

		tl.Times = append(tl.Times, clock)
		tl.Snapshots = append(tl.Snapshots, state.Clone())
	}

	return tl, nil
}
