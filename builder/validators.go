// SPDX-License-Identifier: MIT
// Package: episim/builder
//
// validators.go — clamp helpers shared by all constructors.
//
// The module-wide error policy (§doc.go) turns out-of-range parameters
// into the nearest valid configuration instead of errors. These helpers
// are the single place that policy is implemented so every constructor
// degrades identically.
package builder

// clampInt confines v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// clampMin confines v to at least lo.
func clampMin(v, lo int) int {
	if v < lo {
		return lo
	}

	return v
}

// clampProb confines p to [MinProbability, MaxProbability].
func clampProb(p float64) float64 {
	if p < MinProbability {
		return MinProbability
	}
	if p > MaxProbability {
		return MaxProbability
	}

	return p
}

// clampEvenDegree resolves a requested lattice degree k against population
// size n: negative k clamps to 0, odd k rounds UP to even, and the result
// never exceeds the largest even value ≤ n-1 (a ring node has at most n-1
// distinct partners).
func clampEvenDegree(k, n int) int {
	if k < 0 {
		k = 0
	}
	if k%2 == 1 {
		k++
	}

	maxEven := n - 1
	if maxEven < 0 {
		maxEven = 0
	}
	if maxEven%2 == 1 {
		maxEven--
	}
	if k > maxEven {
		k = maxEven
	}

	return k
}
