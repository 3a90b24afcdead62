// SPDX-License-Identifier: MIT
// Package: episim/builder
//
// impl_clustered.go — implementation of Clustered(n, clusterCount, intraK, interProb).
//
// Canonical model (community graph):
//   - Partition n nodes into clusterCount contiguous id ranges; the last
//     cluster absorbs the remainder of an uneven division.
//   - Each cluster's internal links come from the shared small-world
//     lattice routine (degree intraK, fixed rewire prob ClusterRewireProb).
//   - Every pair of distinct clusters is scanned exhaustively over all
//     node pairs; each cross link is added independently with interProb.
//
// Contract:
//   - n clamps to ≥0; clusterCount clamps to [1, max(n,1)]; interProb
//     clamps to [0,1]; intraK is clamped per-cluster by the lattice routine.
//   - Exactly clusterCount partitions are produced; cross-cluster links
//     exist only where the inter-cluster step emitted them.
//
// Complexity:
//   - Time: Σ O(size_i·intraK) lattices + O(Σ size_i·size_j) cross trials.
//     The quadratic cross term dominates and is intrinsic to fully
//     independent per-pair trials — callers bound n and clusterCount.
//   - Space: O(n·intraK) dedup sets (per cluster, transient).
//
// Determinism:
//   - Clusters built in index order off one shared stream; cross trials
//     scan (i asc, j asc, u asc, v asc).
package builder

import (
	"fmt"

	"github.com/katalvlaran/episim/core"
)

// Clustered returns a Constructor that appends an n-node community graph
// of clusterCount densely connected sub-networks.
func Clustered(n, clusterCount, intraK int, interProb float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Clamp parameters to the nearest valid configuration.
		n = clampMin(n, 0)
		clusterCount = clampInt(clusterCount, 1, clampMin(n, 1))
		interProb = clampProb(interProb)

		// 2) Append n nodes in ascending id order.
		base := g.N()
		for i := 0; i < n; i++ {
			g.AddNode()
		}
		if n == 0 {
			return nil
		}

		// 3) Contiguous partition: equal sizes, last absorbs the remainder.
		clusterSize := n / clusterCount
		offsets := make([]int, clusterCount+1)
		for c := 0; c < clusterCount; c++ {
			offsets[c] = c * clusterSize
		}
		offsets[clusterCount] = n

		// 4) Internal small-world lattice per cluster, shared stream.
		for c := 0; c < clusterCount; c++ {
			lo, hi := offsets[c], offsets[c+1]
			if err := smallWorldInto(g, base+lo, hi-lo, intraK, ClusterRewireProb, cfg.rng); err != nil {
				return fmt.Errorf("%s: cluster %d: %w", MethodClustered, c, err)
			}
		}

		// 5) Exhaustive independent inter-cluster trials, stable scan order.
		r := cfg.rng
		for ci := 0; ci < clusterCount; ci++ {
			for cj := ci + 1; cj < clusterCount; cj++ {
				for u := offsets[ci]; u < offsets[ci+1]; u++ {
					for v := offsets[cj]; v < offsets[cj+1]; v++ {
						if r.Float64() < interProb {
							if err := g.AddLink(base+u, base+v); err != nil {
								return fmt.Errorf("%s: AddLink(%d,%d): %w", MethodClustered, base+u, base+v, err)
							}
						}
					}
				}
			}
		}

		return nil
	}
}
