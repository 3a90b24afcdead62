// SPDX-License-Identifier: MIT
// Package: episim/sim
//
// seeding.go — initial-condition setup shared by both engines.
package sim

import (
	"github.com/katalvlaran/episim/core"
	"github.com/katalvlaran/episim/rng"
)

// seedInfected marks count distinct nodes Infected, chosen uniformly
// without replacement via a partial Fisher–Yates pass over the id range.
// count is assumed pre-clamped to [0, len(state)].
//
// Complexity: O(N) time and space (the permutation buffer).
func seedInfected(state core.Snapshot, count int, r *rng.Source) {
	n := len(state)
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	for i := 0; i < count; i++ {
		// Swap a uniform pick from the unchosen tail into position i.
		j := i + r.Intn(n-i)
		ids[i], ids[j] = ids[j], ids[i]
		state[ids[i]] = core.Infected
	}
}
