// Package episim generates synthetic contact networks and simulates
// stochastic SIR (Susceptible–Infected–Recovered) epidemics over them.
//
// 🚀 What is episim?
//
//	A deterministic, in-memory epidemic toolkit that brings together:
//		• Core primitives: dense-id graphs, compartment snapshots, timelines
//		• Topologies: small-world (Watts–Strogatz), scale-free (Barabási–Albert),
//		  and clustered community graphs
//		• Engines: synchronous discrete-time SIR (with optional waning immunity)
//		  and an exact event-driven (Gillespie-style) continuous-time simulator
//		• Series: per-compartment count/fraction reduction for charting
//
// ✨ Why choose episim?
//
//   - Reproducible – every run owns a seeded 32-bit mixing RNG; same seed,
//     same graph, same timeline
//   - Forgiving – out-of-range parameters clamp to the nearest valid value,
//     never abort a run
//   - Pure Go core – no cgo, no I/O, no hidden state; results are plain
//     structures handed to whatever renders or charts them
//
// Under the hood, everything is organized under four subpackages:
//
//	rng/     — seeded deterministic float stream (Mulberry32) + substreams
//	core/    — Graph, Link, State, Snapshot, Timeline, AdjacencyIndex
//	builder/ — SmallWorld, ScaleFree and Clustered constructors
//	sim/     — discrete-time and event-driven engines + series reduction
//
// Quick ASCII example:
//
//	    0───1
//	    │   │        ring lattice of four nodes; infect one,
//	    3───2        step the engine, read off S/I/R counts.
//
// The cmd/episim binary wires the pieces into a batch runner: scenario in,
// CSV series and a terminal summary out.
//
//	go get github.com/katalvlaran/episim
package episim
