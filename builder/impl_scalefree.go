// SPDX-License-Identifier: MIT
// Package: episim/builder
//
// impl_scalefree.go — implementation of ScaleFree(n, m).
//
// Canonical model (Barabási–Albert, degree-bag variant):
//   - Seed: fully connected core of max(m+1, 2) nodes (capped at n).
//   - Growth: each new node v draws targets from a multiset ("bag") holding
//     one entry per unit of current degree — degree-proportional sampling
//     without an exact weighted structure.
//   - v collects min(m, v) DISTINCT targets, rejecting v itself, then links
//     to each; both endpoints of every new link join the bag afterwards,
//     so a node's own links never bias its own target draws.
//
// Contract:
//   - n clamps to ≥0, m clamps to ≥1.
//   - Degenerate growth (more targets wanted than existing nodes) cannot
//     occur: min(m, v) ≤ v and only ids < v are ever in the bag; the
//     uniform fallback below fires only for an empty bag (n ≤ 1 cores).
//   - Expected output: a heavy-tailed degree distribution with a small
//     number of high-degree hubs — the defining property. Exact
//     proportional sampling is a non-goal.
//
// Complexity:
//   - Time: O(core²) clique + O(n·m) expected draws (rejection sampling
//     terminates almost surely; collisions are geometric).
//   - Space: O(n·m) bag entries.
//
// Determinism:
//   - Core links emitted i asc, j asc. Targets linked in pick order.
package builder

import (
	"fmt"

	"github.com/katalvlaran/episim/core"
)

// ScaleFree returns a Constructor that appends an n-node Barabási–Albert
// graph with m links per newly attached node.
func ScaleFree(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Clamp parameters to the nearest valid configuration.
		n = clampMin(n, 0)
		m = clampMin(m, 1)

		// 2) Append n nodes in ascending id order.
		base := g.N()
		for i := 0; i < n; i++ {
			g.AddNode()
		}
		if n == 0 {
			return nil
		}

		// 3) Fully connected core of max(m+1, 2) nodes, capped at n.
		coreSize := clampInt(m+1, MinScaleFreeCore, n)

		// bag holds one node id per unit of degree (local ids, offset later).
		bag := make([]int, 0, 2*n*m)
		for i := 0; i < coreSize; i++ {
			for j := i + 1; j < coreSize; j++ {
				if err := g.AddLink(base+i, base+j); err != nil {
					return fmt.Errorf("%s: AddLink(%d,%d): %w", MethodScaleFree, base+i, base+j, err)
				}
				bag = append(bag, i, j)
			}
		}

		r := cfg.rng
		picked := make([]int, 0, m)       // targets in pick order
		seen := make(map[int]struct{}, m) // distinctness filter

		// 4) Preferential attachment for every node past the core.
		for v := coreSize; v < n; v++ {
			want := m
			if v < want {
				// Fewer prior nodes than m: connect to all of them.
				want = v
			}

			picked = picked[:0]
			for id := range seen {
				delete(seen, id)
			}

			// Rejection-sample distinct targets; bag draw approximates
			// degree-proportional selection.
			for len(picked) < want {
				var c int
				if len(bag) > 0 {
					c = bag[r.Intn(len(bag))]
				} else {
					// Empty-bag fallback: uniform over existing nodes.
					c = r.Intn(v)
				}
				if c == v {
					continue
				}
				if _, dup := seen[c]; dup {
					continue
				}
				seen[c] = struct{}{}
				picked = append(picked, c)
			}

			// Link v to each target, then grow both endpoints' bag share.
			for _, tgt := range picked {
				if err := g.AddLink(base+v, base+tgt); err != nil {
					return fmt.Errorf("%s: AddLink(%d,%d): %w", MethodScaleFree, base+v, base+tgt, err)
				}
				bag = append(bag, v, tgt)
			}
		}

		return nil
	}
}
