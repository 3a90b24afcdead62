// Package core types: State, Node, Link, Graph and their sentinels.
//
// This file declares the data model only; behavior lives in graph.go,
// adjacency.go and snapshot.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an id outside [0,N).
	ErrNodeNotFound = errors.New("core: node id out of range")
)

// State is a node's SIR compartment.
type State uint8

const (
	// Susceptible nodes can be infected by Infected neighbors.
	Susceptible State = iota

	// Infected nodes transmit along links and eventually recover.
	Infected

	// Recovered is absorbing in the simple model; in the waning-immunity
	// model it is reached only once resistance saturates at 1.
	Recovered
)

// stateNames backs State.String; indexed by the State value.
var stateNames = [...]string{"S", "I", "R"}

// String renders the compartment as its conventional single letter.
func (s State) String() string {
	if int(s) >= len(stateNames) {
		return "?"
	}

	return stateNames[s]
}

// Node is one member of the population.
//
// ID equals the node's position in its Graph. State and Resistance are
// mutated only by the engine that owns the run; Resistance stays 0 unless
// the waning-immunity variant is active.
type Node struct {
	// ID is the dense integer identity, 0..N-1.
	ID int

	// State is the current SIR compartment.
	State State

	// Resistance is accumulated partial immunity in [0,1].
	Resistance float64
}

// Link is an unordered pair of node ids.
//
// Generators aim for A != B; the small-world rewiring fallback may emit a
// self-loop or duplicate after its retry budget is spent, and consumers
// must tolerate (not rely on) such links.
type Link struct {
	// A is one endpoint id.
	A int

	// B is the other endpoint id.
	B int
}

// Graph is an undirected, unweighted contact network with dense node ids.
//
// It is built once per run by a constructor and read-only afterwards.
// No locks: a Graph is never shared between concurrent runs (each run
// builds its own), so synchronization would only hide misuse.
type Graph struct {
	nodes []Node
	links []Link
}
