package sim_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/episim/core"
	"github.com/katalvlaran/episim/sim"
)

// TestRunEvents_SingleRecoveryThenAbsorbing: beta=0 with one index case
// allows exactly one event (I→R); afterwards every rate is zero and the
// run stops well before the cap.
func TestRunEvents_SingleRecoveryThenAbsorbing(t *testing.T) {
	t.Parallel()

	g := ring(t)
	opts := sim.EventOptions{Beta: 0, Gamma: 1, InitialInfected: 1, Seed: 1, MaxEvents: 100}

	tl, err := sim.RunEvents(context.Background(), g, opts)
	require.NoError(t, err)
	require.Equal(t, 2, tl.Len(), "one recovery, then absorbing")

	c := sim.Reduce(tl.Snapshots[1])
	assert.Equal(t, 99, c.S)
	assert.Zero(t, c.I)
	assert.Equal(t, 1, c.R)
	assert.Greater(t, tl.Times[1], 0.0)
}

// TestRunEvents_TimestampsStrictlyIncrease over a live epidemic.
func TestRunEvents_TimestampsStrictlyIncrease(t *testing.T) {
	t.Parallel()

	g := ring(t)
	opts := sim.EventOptions{Beta: 0.6, Gamma: 0.2, InitialInfected: 3, Seed: 9, MaxEvents: 300}

	tl, err := sim.RunEvents(context.Background(), g, opts)
	require.NoError(t, err)
	require.Greater(t, tl.Len(), 1)
	assert.Zero(t, tl.Times[0])
	for i := 1; i < tl.Len(); i++ {
		assert.Greater(t, tl.Times[i], tl.Times[i-1], "timestamps must strictly increase")
	}
}

// TestRunEvents_EventCap verifies at most MaxEvents entries past the
// initial snapshot.
func TestRunEvents_EventCap(t *testing.T) {
	t.Parallel()

	g := ring(t)
	opts := sim.EventOptions{Beta: 2, Gamma: 0.05, InitialInfected: 5, Seed: 4, MaxEvents: 10}

	tl, err := sim.RunEvents(context.Background(), g, opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, tl.Len(), 11)
}

// TestRunEvents_OneTransitionPerEvent verifies consecutive snapshots differ
// in exactly one node, and only along S→I or I→R.
func TestRunEvents_OneTransitionPerEvent(t *testing.T) {
	t.Parallel()

	g := ring(t)
	opts := sim.EventOptions{Beta: 0.8, Gamma: 0.3, InitialInfected: 2, Seed: 6, MaxEvents: 200}

	tl, err := sim.RunEvents(context.Background(), g, opts)
	require.NoError(t, err)
	for e := 1; e < tl.Len(); e++ {
		prev, cur := tl.Snapshots[e-1], tl.Snapshots[e]
		changed := 0
		for id := range cur {
			if prev[id] == cur[id] {
				continue
			}
			changed++
			valid := (prev[id] == core.Susceptible && cur[id] == core.Infected) ||
				(prev[id] == core.Infected && cur[id] == core.Recovered)
			assert.True(t, valid, "event %d: illegal transition %v→%v on node %d",
				e, prev[id], cur[id], id)
		}
		assert.Equal(t, 1, changed, "event %d must change exactly one node", e)
	}
}

// TestRunEvents_Conservation verifies the census at every event.
func TestRunEvents_Conservation(t *testing.T) {
	t.Parallel()

	g := ring(t)
	opts := sim.EventOptions{Beta: 0.5, Gamma: 0.2, InitialInfected: 4, Seed: 8, MaxEvents: 250}

	tl, err := sim.RunEvents(context.Background(), g, opts)
	require.NoError(t, err)
	for i, s := range tl.Snapshots {
		assert.Equal(t, 100, sim.Reduce(s).N(), "event %d leaks population", i)
	}
}

// TestRunEvents_TimeHorizon: a vanishing horizon discards the first event
// before it applies (an Exp(1) holding time below 1e-9 is not a thing any
// seed will produce).
func TestRunEvents_TimeHorizon(t *testing.T) {
	t.Parallel()

	g := ring(t)
	opts := sim.EventOptions{Beta: 0, Gamma: 1, InitialInfected: 1, Seed: 13, MaxEvents: 100, TimeHorizon: 1e-9}

	tl, err := sim.RunEvents(context.Background(), g, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, tl.Len(), "the horizon stops the run before the first event applies")
}

// TestRunEvents_InitialInfectedClamped: seeding the whole population with
// beta=0 yields exactly N recovery events, then absorbing.
func TestRunEvents_InitialInfectedClamped(t *testing.T) {
	t.Parallel()

	g := ring(t)
	opts := sim.EventOptions{Beta: 0, Gamma: 1, InitialInfected: 500, Seed: 3, MaxEvents: 300}

	tl, err := sim.RunEvents(context.Background(), g, opts)
	require.NoError(t, err)
	assert.Equal(t, 100, sim.Reduce(tl.Snapshots[0]).I)
	assert.Equal(t, 101, tl.Len(), "100 recoveries then absorbing")
	assert.Equal(t, 100, sim.Reduce(tl.Snapshots[100]).R)
}

// TestRunEvents_Deterministic verifies same seed ⇒ identical runs.
func TestRunEvents_Deterministic(t *testing.T) {
	t.Parallel()

	g := ring(t)
	opts := sim.EventOptions{Beta: 0.7, Gamma: 0.25, InitialInfected: 2, Seed: 17, MaxEvents: 150}

	a, err := sim.RunEvents(context.Background(), g, opts)
	require.NoError(t, err)
	b, err := sim.RunEvents(context.Background(), g, opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestRunEvents_Cancellation verifies the partial-timeline contract.
func TestRunEvents_Cancellation(t *testing.T) {
	t.Parallel()

	g := ring(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tl, err := sim.RunEvents(ctx, g, sim.DefaultEventOptions())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, tl.Len())
}
