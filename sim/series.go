// SPDX-License-Identifier: MIT
// Package: episim/sim
//
// series.go — pure per-compartment aggregation for external charting.
package sim

import "github.com/katalvlaran/episim/core"

// Counts is the compartment census of one snapshot.
type Counts struct {
	S int
	I int
	R int
}

// N returns the population size the counts were taken over.
func (c Counts) N() int { return c.S + c.I + c.R }

// Fractions returns the compartment shares of N, in S, I, R order.
// An empty snapshot yields all zeros.
func (c Counts) Fractions() (fs, fi, fr float64) {
	n := float64(c.N())
	if n == 0 {
		return 0, 0, 0
	}

	return float64(c.S) / n, float64(c.I) / n, float64(c.R) / n
}

// Reduce tallies one snapshot. Stateless; O(N).
func Reduce(s core.Snapshot) Counts {
	var c Counts
	for _, st := range s {
		switch st {
		case core.Susceptible:
			c.S++
		case core.Infected:
			c.I++
		case core.Recovered:
			c.R++
		}
	}

	return c
}

// ReduceTimeline applies Reduce to every entry, preserving order.
// O(len(tl) · N).
func ReduceTimeline(tl core.Timeline) []Counts {
	out := make([]Counts, len(tl))
	for i, s := range tl {
		out[i] = Reduce(s)
	}

	return out
}
