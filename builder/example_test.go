package builder_test

import (
	"fmt"

	"github.com/katalvlaran/episim/builder"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuildSmallWorld
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A 100-person contact network on a ring: everyone knows their four
//	nearest neighbors; rewireProb=0 keeps the pure lattice so the counts
//	below are exact for any seed.
//
// Use case:
//
//	Deterministic fixture for engine tests and charting demos.
//
// Complexity: O(n·k) links.
func ExampleBuildSmallWorld() {
	g, err := builder.BuildSmallWorld(100, 4, 0, 1)
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	fmt.Printf("nodes=%d links=%d degree0=%d\n", g.N(), len(g.Links()), g.Degrees()[0])
	// Output: nodes=100 links=200 degree0=4
}

// ExampleBuildGraph composes two topologies on disjoint id ranges of a
// single graph — communities first, then a scale-free overlay population.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]builder.Option{builder.WithSeed(7)},
		builder.Clustered(30, 3, 2, 0),
		builder.ScaleFree(20, 2),
	)
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	fmt.Printf("nodes=%d\n", g.N())
	// Output: nodes=50
}
