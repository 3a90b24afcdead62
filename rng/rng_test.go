package rng_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/episim/rng"
)

const sequenceProbe = 1024 // draws compared per determinism check

// TestSource_Deterministic verifies that two sources with equal seeds emit
// identical sequences, draw for draw.
func TestSource_Deterministic(t *testing.T) {
	t.Parallel()

	a := rng.New(42)
	b := rng.New(42)
	for i := 0; i < sequenceProbe; i++ {
		require.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

// TestSource_ZeroSeedPolicy verifies seed==0 maps onto the fixed default
// stream rather than a degenerate all-zero state.
func TestSource_ZeroSeedPolicy(t *testing.T) {
	t.Parallel()

	zero := rng.New(0)
	def := rng.New(1)
	for i := 0; i < sequenceProbe; i++ {
		require.Equal(t, def.Float64(), zero.Float64(), "seed 0 must alias the default seed")
	}
}

// TestSource_Range verifies every draw lies in [0,1).
func TestSource_Range(t *testing.T) {
	t.Parallel()

	s := rng.New(7)
	for i := 0; i < sequenceProbe; i++ {
		u := s.Float64()
		assert.GreaterOrEqual(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}
}

// TestSource_SeedsDiverge verifies distinct seeds do not alias (beyond the
// documented 0→default mapping).
func TestSource_SeedsDiverge(t *testing.T) {
	t.Parallel()

	a := rng.New(1)
	b := rng.New(2)
	same := 0
	for i := 0; i < sequenceProbe; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	// A handful of collisions is possible on 32-bit outputs; full overlap is not.
	assert.Less(t, same, sequenceProbe/4, "seeds 1 and 2 must not produce the same stream")
}

// TestSource_Intn verifies bounds and the n<=0 clamp.
func TestSource_Intn(t *testing.T) {
	t.Parallel()

	s := rng.New(99)
	for i := 0; i < sequenceProbe; i++ {
		v := s.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
	assert.Zero(t, s.Intn(0), "Intn(0) clamps to 0")
	assert.Zero(t, s.Intn(-3), "Intn(negative) clamps to 0")
}

// TestSource_Intn_ConsumesDrawWhenClamped ensures a clamped Intn still
// advances the stream, keeping call sites sequence-stable.
func TestSource_Intn_ConsumesDrawWhenClamped(t *testing.T) {
	t.Parallel()

	a := rng.New(5)
	b := rng.New(5)
	_ = a.Intn(0)   // clamped, but must consume one draw
	_ = b.Float64() // explicit single draw
	require.Equal(t, b.Float64(), a.Float64(), "clamped Intn must advance state by exactly one draw")
}

// TestSource_Derive verifies substreams are deterministic, independent of
// the parent's position, and distinct from the parent stream.
func TestSource_Derive(t *testing.T) {
	t.Parallel()

	parent := rng.New(1234)
	childA := parent.Derive(1)
	_ = parent.Float64() // advancing the parent must not affect derivation
	childB := rng.New(1234).Derive(1)

	reference := rng.New(1234)
	same := 0
	for i := 0; i < sequenceProbe; i++ {
		ca, cb := childA.Float64(), childB.Float64()
		require.Equal(t, ca, cb, "Derive must be a pure function of (seed, stream)")
		if ca == reference.Float64() {
			same++
		}
	}
	assert.Less(t, same, sequenceProbe/4, "child stream must diverge from parent")
}
