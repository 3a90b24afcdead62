// SPDX-License-Identifier: MIT
// Package: episim/rng
//
// rng.go — the Mulberry32 stream and seed-derivation helpers.
//
// Contract:
//   - New(seed) is the only way to obtain a Source; seed==0 maps to a fixed
//     non-zero default so the zero value of a config still yields a usable,
//     reproducible stream.
//   - Float64 returns the next value in [0,1) with 32 bits of resolution.
//   - Intn(n) returns a uniform int in [0,n); n<=0 returns 0 (clamp policy,
//     mirrors the module-wide "degrade, never abort" rule).
//   - Derive(stream) yields an independent deterministic substream via a
//     SplitMix64-style avalanche mix of the parent seed and the stream id.
//
// Determinism:
//   - State is one uint32; the update and output mix are fixed constants.
//   - No global state; two Sources with equal seeds produce equal sequences.
package rng

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// mulberry32Increment is the Weyl-sequence increment applied to the state
// word before each output mix. Canonical Mulberry32 constant.
const mulberry32Increment uint32 = 0x6D2B79F5

// float64Scale converts a full 32-bit word into [0,1).
const float64Scale = 1.0 / (1 << 32)

// Source is a deterministic Mulberry32 stream. The zero value is usable but
// callers should prefer New so that the seed policy applies uniformly.
type Source struct {
	state uint32
	seed  int64 // retained for Derive; not consumed after construction
}

// New returns a Source seeded with the given value.
// Policy: seed==0 ⇒ defaultSeed; otherwise the low 32 bits of seed verbatim.
//
// Complexity: O(1).
func New(seed int64) *Source {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return &Source{state: uint32(uint64(s)), seed: s}
}

// Float64 advances the stream and returns the next value in [0,1).
//
// The update is the canonical Mulberry32 round: add the Weyl increment,
// then run the two-multiply avalanche mix over the new state word.
//
// Complexity: O(1); no allocations.
func (s *Source) Float64() float64 {
	s.state += mulberry32Increment

	t := s.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	t ^= t >> 14

	return float64(t) * float64Scale
}

// Intn returns a uniform int in [0,n) drawn from the stream.
// n <= 0 returns 0 rather than panicking; one draw is consumed either way
// so call sites stay sequence-stable under clamped parameters.
//
// Complexity: O(1).
func (s *Source) Intn(n int) int {
	u := s.Float64()
	if n <= 0 {
		return 0
	}

	return int(u * float64(n))
}

// Derive creates an independent deterministic substream identified by
// stream. The parent seed and stream id are mixed with a SplitMix64-style
// finalizer (see Vigna 2014 for the constants) so that nearby ids yield
// well-separated states. The parent stream is not advanced.
//
// Usage: call during setup (not in hot loops) to create per-run or
// per-cluster streams from a single scenario seed.
//
// Complexity: O(1).
func (s *Source) Derive(stream uint64) *Source {
	x := uint64(s.seed) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	child := int64(x)
	if child == 0 {
		child = defaultSeed
	}

	return New(child)
}
