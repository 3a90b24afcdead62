package sim_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/episim/builder"
	"github.com/katalvlaran/episim/sim"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleRunDiscrete
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A quarantine thought experiment on the 100-node ring: beta=0 means no
//	link ever transmits, so the single index case simply recovers (per-step
//	probability 1−e⁻¹ ≈ 0.632) while everyone else stays Susceptible. The
//	final census below is stable for any seed.
//
// Use case:
//
//	Sanity baseline before dialing transmission up.
func ExampleRunDiscrete() {
	g, err := builder.BuildSmallWorld(100, 4, 0, 1)
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	tl, err := sim.RunDiscrete(context.Background(), g, sim.DiscreteOptions{
		Steps: 60, Beta: 0, Gamma: 1, InitialInfected: 1, Seed: 1,
	})
	if err != nil {
		fmt.Println("run:", err)

		return
	}

	final := sim.Reduce(tl[len(tl)-1])
	fmt.Printf("snapshots=%d S=%d I=%d R=%d\n", len(tl), final.S, final.I, final.R)
	// Output: snapshots=61 S=99 I=0 R=1
}

// ExampleRunEvents fires the only event beta=0 permits — the index case's
// recovery — and shows the absorbing stop.
func ExampleRunEvents() {
	g, err := builder.BuildSmallWorld(100, 4, 0, 1)
	if err != nil {
		fmt.Println("build:", err)

		return
	}

	tl, err := sim.RunEvents(context.Background(), g, sim.EventOptions{
		Beta: 0, Gamma: 1, InitialInfected: 1, Seed: 1, MaxEvents: 100,
	})
	if err != nil {
		fmt.Println("run:", err)

		return
	}

	final := sim.Reduce(tl.Snapshots[tl.Len()-1])
	fmt.Printf("events=%d S=%d I=%d R=%d\n", tl.Len()-1, final.S, final.I, final.R)
	// Output: events=1 S=99 I=0 R=1
}
