// SPDX-License-Identifier: MIT
// Package: episim/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   - Options are functional (type Option func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs
//     (nil source); constructors themselves MUST NOT panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through builderConfig.
package builder

import "github.com/katalvlaran/episim/rng"

// Option customizes a builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*builderConfig)

// WithSeed attaches a fresh deterministic stream for the given seed.
// Use this in tests and examples to lock outcomes; seed 0 aliases the
// default stream per the rng seed policy.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rng.New(seed)
	}
}

// WithRand provides an explicit stream for stochastic constructors, for
// callers that derive substreams from a scenario-level source.
// Panics on nil to surface programmer error early.
// Complexity: O(1).
func WithRand(r *rng.Source) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}
