// SPDX-License-Identifier: MIT
// Package: episim/core
//
// adjacency.go — neighbor-list view over a finished Graph.
//
// Contract:
//   - Built once per simulation run from a fixed Graph; read-only afterwards.
//   - Neighbor order is deterministic: link-emission order, both directions
//     of each undirected link.
//   - Duplicate links yield duplicate neighbor entries on purpose: each
//     parallel link is an independent transmission channel, so an infected
//     neighbor behind two links counts twice (matches both engines' rate
//     bookkeeping).
//   - A self-loop contributes the node to its own neighbor list twice and
//     is simply never a transmission channel (a node cannot infect itself).
//
// Complexity: build O(N + L) time and space; Neighbors/Degree O(1).
package core

// AdjacencyIndex maps node id → ordered neighbor ids.
type AdjacencyIndex struct {
	neighbors [][]int
}

// NewAdjacencyIndex derives the neighbor lists from g.
// Two passes: degree counting sizes each list exactly, then a fill pass
// appends in link order. No per-append reallocation.
func NewAdjacencyIndex(g *Graph) *AdjacencyIndex {
	n := g.N()
	deg := g.Degrees()

	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		neighbors[i] = make([]int, 0, deg[i])
	}

	for _, l := range g.Links() {
		neighbors[l.A] = append(neighbors[l.A], l.B)
		neighbors[l.B] = append(neighbors[l.B], l.A)
	}

	return &AdjacencyIndex{neighbors: neighbors}
}

// Neighbors returns node id's neighbor list in deterministic order.
// The returned slice is shared; callers must not mutate it.
// Out-of-range ids return nil.
func (ix *AdjacencyIndex) Neighbors(id int) []int {
	if id < 0 || id >= len(ix.neighbors) {
		return nil
	}

	return ix.neighbors[id]
}

// Degree returns the neighbor count of node id (0 for out-of-range ids).
func (ix *AdjacencyIndex) Degree(id int) int {
	if id < 0 || id >= len(ix.neighbors) {
		return 0
	}

	return len(ix.neighbors[id])
}

// N returns the number of indexed nodes.
func (ix *AdjacencyIndex) N() int { return len(ix.neighbors) }
