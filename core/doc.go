// Package core defines the central Graph, Node and Link types, the SIR
// compartment State, and the Snapshot/Timeline structures produced by the
// simulation engines.
//
// Node identity is a dense integer: node i lives at position i of the node
// slice, ids run 0..N-1 with no gaps. This keeps every per-node lookup an
// array index and makes snapshots plain fixed-length slices.
//
// A Graph is append-only while a builder constructs it and treated as
// immutable afterwards: engines read it, never write it. Duplicate links
// and (in one documented rewiring corner) self-loops are tolerated as
// bounded generator approximations; out-of-range endpoints are not.
//
// AdjacencyIndex derives a read-only neighbor-list view from a finished
// Graph; both engines consume it instead of rescanning the link list.
//
// Errors:
//
//	ErrNodeNotFound — a link referenced an id outside [0,N).
package core
