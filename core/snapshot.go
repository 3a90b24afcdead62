// SPDX-License-Identifier: MIT
// Package: episim/core
//
// snapshot.go — per-instant population state and its ordered sequence.
package core

// Snapshot is the compartment of every node at one instant, indexed by id.
type Snapshot []State

// Clone returns an independent copy of the snapshot.
// Engines append clones so a timeline entry is never aliased by the
// engine's working buffer.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	copy(out, s)

	return out
}

// Count returns the number of nodes currently in state st.
// Complexity: O(N).
func (s Snapshot) Count(st State) int {
	c := 0
	for _, v := range s {
		if v == st {
			c++
		}
	}

	return c
}

// Timeline is an ordered sequence of snapshots: one per integer step for
// the discrete engine, one per fired event for the event engine (which
// pairs it with timestamps, see sim.EventTimeline).
type Timeline []Snapshot
