// SPDX-License-Identifier: MIT
// Package: episim/builder
//
// impl_smallworld.go — implementation of SmallWorld(n, k, rewireProb).
//
// Canonical model (Watts–Strogatz):
//   - Ring lattice: node i links to its k/2 nearest neighbors on each side.
//   - Rewiring: every lattice link, in emission order, is rewired with
//     probability rewireProb — its far endpoint replaced by a uniform draw.
//
// Contract:
//   - n clamps to ≥0; k clamps per clampEvenDegree (odd rounds up to even,
//     capped at the largest even value ≤ n-1); rewireProb clamps to [0,1].
//   - One Bernoulli draw per lattice link, ALWAYS consumed, so sequences
//     stay stable across rewireProb values.
//   - Candidate redraws are bounded by RewireRetryLimit; exhaustion accepts
//     the last candidate even if it duplicates an edge or self-loops.
//     This observed behavior is contractual — do not silently fix it.
//   - Output: exactly n nodes, exactly n·k/2 links (rewiring replaces,
//     never adds), average degree ≈ k; degree exactly k when rewireProb=0.
//
// Complexity:
//   - Time: O(n) vertices + O(n·k/2) lattice links + O(n·k/2 · retries) worst.
//   - Space: O(n·k) for the dedup set.
//
// Determinism:
//   - Stable node order: id asc. Stable link order: for i asc, offset asc.
//   - Rewire scan follows link emission order; fixed draw order (one
//     Bernoulli, then candidate draws) pins the stream layout.
package builder

import (
	"fmt"

	"github.com/katalvlaran/episim/core"
	"github.com/katalvlaran/episim/rng"
)

// linkKey is a normalized unordered pair for duplicate detection.
type linkKey struct{ lo, hi int }

// normKey builds the normalized key for endpoints (a,b).
func normKey(a, b int) linkKey {
	if a > b {
		a, b = b, a
	}

	return linkKey{lo: a, hi: b}
}

// SmallWorld returns a Constructor that appends an n-node Watts–Strogatz
// graph. Nodes receive the next n dense ids of the target graph.
func SmallWorld(n, k int, rewireProb float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Clamp parameters to the nearest valid configuration.
		n = clampMin(n, 0)
		rewireProb = clampProb(rewireProb)

		// 2) Append n nodes in ascending id order.
		base := g.N()
		for i := 0; i < n; i++ {
			g.AddNode()
		}

		// 3) Lattice + rewiring over the freshly added id range.
		if err := smallWorldInto(g, base, n, k, rewireProb, cfg.rng); err != nil {
			return fmt.Errorf("%s: %w", MethodSmallWorld, err)
		}

		return nil
	}
}

// smallWorldInto emits a Watts–Strogatz lattice over the n existing nodes
// base..base+n-1 and rewires it in place. Shared with Clustered, which maps
// each community onto a contiguous id range.
func smallWorldInto(g *core.Graph, base, n, k int, rewireProb float64, r *rng.Source) error {
	k = clampEvenDegree(k, n)
	if n <= 0 || k == 0 {
		// Nothing to connect; an empty lattice is a valid degenerate output.
		return nil
	}
	half := k / 2

	// Track this lattice's links for duplicate detection during rewiring.
	// Clusters occupy disjoint id ranges, so a local set is exact.
	start := len(g.Links())
	exists := make(map[linkKey]struct{}, n*half)

	// Ring lattice: for each node, link the half nearest clockwise partners.
	// (Counter-clockwise partners arrive via the symmetric emissions.)
	for i := 0; i < n; i++ {
		for j := 1; j <= half; j++ {
			u := base + i
			v := base + (i+j)%n
			if err := g.AddLink(u, v); err != nil {
				return fmt.Errorf("AddLink(%d,%d): %w", u, v, err)
			}
			exists[normKey(u, v)] = struct{}{}
		}
	}

	// Rewire pass: deterministic scan in emission order.
	links := g.Links()
	for li := start; li < len(links); li++ {
		// One Bernoulli draw per lattice link, consumed unconditionally.
		if r.Float64() >= rewireProb {
			continue
		}

		near := links[li].A // kept endpoint; the far endpoint is replaced
		old := links[li]

		// Redraw the far endpoint, avoiding self-loops and duplicates, up to
		// RewireRetryLimit times. The dedup check runs against the live set,
		// which still contains the link being rewired, so re-drawing the old
		// far endpoint is also rejected.
		candidate := near
		for attempt := 0; attempt < RewireRetryLimit; attempt++ {
			candidate = base + r.Intn(n)
			if candidate == near {
				continue
			}
			if _, dup := exists[normKey(near, candidate)]; dup {
				continue
			}
			break
		}

		// Accept the last candidate unconditionally — on exhaustion this may
		// be a duplicate or self-loop (tolerated approximation, see doc.go).
		delete(exists, normKey(old.A, old.B))
		exists[normKey(near, candidate)] = struct{}{}
		if err := g.ReplaceLink(li, core.Link{A: near, B: candidate}); err != nil {
			return fmt.Errorf("ReplaceLink(%d): %w", li, err)
		}
	}

	return nil
}
