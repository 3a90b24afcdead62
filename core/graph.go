// SPDX-License-Identifier: MIT
// Package: episim/core
//
// graph.go — Graph construction and read accessors.
//
// Contract:
//   - NewGraph(n) allocates n nodes with ids 0..n-1, all Susceptible,
//     resistance 0; n<0 clamps to 0.
//   - AddLink validates endpoint ranges only; duplicates and self-loops
//     pass through (documented generator approximations).
//   - Accessors return live slices for O(1) reads; callers treat them as
//     read-only once construction is done.
//
// Complexity: all operations O(1) except Degrees (O(N+L)).
package core

// NewGraph returns a graph of n isolated Susceptible nodes.
// n < 0 is clamped to 0 (module-wide clamp policy; never an error).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}

	nodes := make([]Node, n)
	for i := range nodes {
		// State zero-value is Susceptible; only the id needs setting.
		nodes[i].ID = i
	}

	return &Graph{nodes: nodes}
}

// N returns the population size.
func (g *Graph) N() int { return len(g.nodes) }

// AddNode appends one Susceptible node and returns its id.
func (g *Graph) AddNode() int {
	id := len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id})

	return id
}

// AddLink appends the undirected link (a,b).
// Out-of-range endpoints return ErrNodeNotFound; a==b and duplicates are
// accepted (see package doc).
func (g *Graph) AddLink(a, b int) error {
	n := len(g.nodes)
	if a < 0 || a >= n || b < 0 || b >= n {
		return ErrNodeNotFound
	}
	g.links = append(g.links, Link{A: a, B: b})

	return nil
}

// ReplaceLink overwrites the link at index i. Used by the small-world
// rewiring pass, which edits lattice links in place.
// Out-of-range endpoints or index return ErrNodeNotFound.
func (g *Graph) ReplaceLink(i int, l Link) error {
	n := len(g.nodes)
	if i < 0 || i >= len(g.links) || l.A < 0 || l.A >= n || l.B < 0 || l.B >= n {
		return ErrNodeNotFound
	}
	g.links[i] = l

	return nil
}

// Nodes returns the node slice. Read-only after construction.
func (g *Graph) Nodes() []Node { return g.nodes }

// Links returns the link slice. Read-only after construction.
func (g *Graph) Links() []Link { return g.links }

// Degrees returns per-node degree counts (self-loops count twice, the
// usual undirected convention).
// Complexity: O(N + L) time, O(N) space.
func (g *Graph) Degrees() []int {
	deg := make([]int, len(g.nodes))
	for _, l := range g.links {
		deg[l.A]++
		deg[l.B]++
	}

	return deg
}
