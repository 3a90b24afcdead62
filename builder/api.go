// SPDX-License-Identifier: MIT
// Package: episim/builder
//
// api.go — thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg,
//     runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go
//     (single place to read docs).
//   - Functional options (Option) resolve into an immutable builderConfig
//     (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors for programmer-level
//     defects; parameter noise is clamped, not rejected.
package builder

import (
	"fmt"

	"github.com/katalvlaran/episim/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Clamp parameters per the module policy (no parameter errors).
//   - Emit nodes and links in a stable, documented order.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty core.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted by design.
//
// Complexity: O(len(bopts)) resolution + Σ cost of each constructor.
func BuildGraph(bopts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(0)

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		// Defensive: reject a nil constructor to avoid a panic later.
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// SmallWorld builds a Watts–Strogatz graph: ring lattice of n nodes with
// degree k (rounded up to even), each lattice link rewired with probability
// rewireProb. Complexity: O(n·k) links + O(n·k) rewire trials.
//   → impl_smallworld.go

// ScaleFree builds a Barabási–Albert graph: fully connected core of
// max(m+1,2) nodes, then degree-bag preferential attachment of m links per
// new node. Complexity: O(core²) + O(n·m) expected.
//   → impl_scalefree.go

// Clustered builds a community graph: contiguous id partitions, each an
// internal small-world lattice, joined by independent inter-cluster link
// trials. Complexity: O(Σ size_i·size_j) over cluster pairs — the dominant
// cost, intrinsic to fully independent trials.
//   → impl_clustered.go

// =============================================================================
// One-shot helpers (topology + seed in a single call)
// =============================================================================

// BuildSmallWorld constructs a small-world graph in one call.
// Equivalent to BuildGraph([]Option{WithSeed(seed)}, SmallWorld(n, k, rewireProb)).
func BuildSmallWorld(n, k int, rewireProb float64, seed int64) (*core.Graph, error) {
	return BuildGraph([]Option{WithSeed(seed)}, SmallWorld(n, k, rewireProb))
}

// BuildScaleFree constructs a scale-free graph in one call.
func BuildScaleFree(n, m int, seed int64) (*core.Graph, error) {
	return BuildGraph([]Option{WithSeed(seed)}, ScaleFree(n, m))
}

// BuildClustered constructs a clustered graph in one call.
func BuildClustered(n, clusterCount, intraK int, interProb float64, seed int64) (*core.Graph, error) {
	return BuildGraph([]Option{WithSeed(seed)}, Clustered(n, clusterCount, intraK, interProb))
}
