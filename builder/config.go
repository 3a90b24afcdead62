// SPDX-License-Identifier: MIT
// Package: episim/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   - rng = rng.New(0)  (the fixed default stream; see episim/rng seed policy)
//
// Passing the config by VALUE keeps it immutable for constructors.
package builder

import "github.com/katalvlaran/episim/rng"

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	// rng drives every stochastic choice; never nil after resolution.
	rng *rng.Source
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng: rng.New(0), // deterministic default stream unless seeded
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
