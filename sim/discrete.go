// SPDX-License-Identifier: MIT
// Package: episim/sim
//
// discrete.go — synchronous fixed-step SIR engine.
//
// Model:
//   - Per-step probabilities from continuous rates:
//     pEdgeInf = 1 − e^(−beta)   (one infected neighbor transmits in a step)
//     pRec     = 1 − e^(−gamma)  (an infected node recovers in a step)
//   - Susceptible with m infected neighbors: p = 1 − (1 − pEdgeInf)^m,
//     scaled by (1 − resistance) in the waning-immunity variant; one draw.
//   - Infected: one draw against pRec. Simple model → Recovered.
//     Waning variant → resistance += Gain (clamped at 1); saturation means
//     permanent Recovered, otherwise back to Susceptible carrying the
//     accumulated resistance.
//   - Recovered: absorbing.
//
// Buffering (no read-after-write within a step):
//   - Compartments use two alternating fixed-size buffers; every read in a
//     step sees the previous step's snapshot.
//   - Resistance lives in a single array: a node's resistance is read and
//     written only by that node's own branch, and never read across nodes,
//     so in-place update cannot leak intra-step state.
//
// Draw discipline (sequence-stable, documented for seeded tests):
//   - Nodes are visited id-ascending. A Susceptible node draws only when
//     m > 0; an Infected node always draws; Recovered never draws.
//
// Termination:
//   - Exactly Steps updates, or early return with the partial timeline and
//     ctx.Err() when the caller cancels between steps.
package sim

import (
	"context"
	"math"

	"github.com/katalvlaran/episim/core"
	"github.com/katalvlaran/episim/rng"
)

// RunDiscrete evolves g for opts.Steps synchronous updates and returns the
// full timeline of Steps+1 snapshots (including the initial one).
//
// The run owns its RNG, buffers and adjacency view; g itself is only read.
// Complexity: O(Steps · (N + L)) time, O(N) working space.
func RunDiscrete(ctx context.Context, g *core.Graph, opts DiscreteOptions) (core.Timeline, error) {
	n := g.N()

	// 1) Clamp parameters to the nearest valid configuration.
	steps := clampIntMin(opts.Steps, 0)
	beta := clampRate(opts.Beta)
	gamma := clampRate(opts.Gamma)
	gain := clampUnit(opts.Gain)
	initial := clampIntRange(opts.InitialInfected, 0, n)

	// 2) Per-run state: fresh RNG, adjacency view, buffers.
	r := rng.New(opts.Seed)
	ix := core.NewAdjacencyIndex(g)

	pEdgeInf := 1 - math.Exp(-beta)
	pRec := 1 - math.Exp(-gamma)

	cur := make(core.Snapshot, n)
	next := make(core.Snapshot, n)
	resistance := make([]float64, n)
	seedInfected(cur, initial, r)

	timeline := make(core.Timeline, 0, steps+1)
	timeline = append(timeline, cur.Clone())

	// 3) Synchronous stepping.
	for step := 0; step < steps; step++ {
		// Cancellation boundary: between steps only, state stays run-local.
		if err := ctx.Err(); err != nil {
			return timeline, err
		}

		for id := 0; id < n; id++ {
			switch cur[id] {
			case core.Susceptible:
				// Count infected neighbors in the PREVIOUS snapshot.
				// Parallel links count per channel; a self-loop neighbor is
				// the node itself, Susceptible here, so never contributes.
				m := 0
				for _, nb := range ix.Neighbors(id) {
					if cur[nb] == core.Infected {
						m++
					}
				}

				next[id] = core.Susceptible
				if m > 0 {
					p := 1 - math.Pow(1-pEdgeInf, float64(m))
					if opts.Resistance {
						p *= 1 - resistance[id]
					}
					if r.Float64() < p {
						next[id] = core.Infected
					}
				}

			case core.Infected:
				next[id] = core.Infected
				if r.Float64() < pRec {
					if !opts.Resistance {
						next[id] = core.Recovered

						break
					}
					// Waning-immunity variant: accumulate, saturate at 1.
					nr := resistance[id] + gain
					if nr >= 1 {
						resistance[id] = 1
						next[id] = core.Recovered
					} else {
						resistance[id] = nr
						next[id] = core.Susceptible
					}
				}

			default:
				// Recovered is absorbing.
				next[id] = core.Recovered
			}
		}

		// Swap buffers; the new state becomes the next step's input.
		cur, next = next, cur
		timeline = append(timeline, cur.Clone())
	}

	return timeline, nil
}
