// SPDX-License-Identifier: MIT
// Package: episim/sim
//
// validate.go — clamp helpers implementing the module-wide parameter
// policy for the engines: out-of-range values degrade to the nearest
// valid configuration, never an error.
package sim

// clampIntMin confines v to at least lo.
func clampIntMin(v, lo int) int {
	if v < lo {
		return lo
	}

	return v
}

// clampIntRange confines v to [lo, hi].
func clampIntRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// clampRate confines a rate to ≥ 0.
func clampRate(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}

// clampUnit confines v to [0,1].
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
