// Package rng provides the deterministic random stream used by every
// stochastic component in episim.
//
// The generator is Mulberry32: a 32-bit mixing generator with a single
// uint32 word of state. It is fast, allocation-free, and emphatically NOT
// cryptographically secure. The algorithm is fixed and documented so that
// tests may capture and replay exact sequences; do not swap it out without
// revisiting every seeded test in the module.
//
// Goals:
//   - Determinism: same seed ⇒ identical float sequence across runs.
//   - Encapsulation: one factory (New); no time-based sources hidden anywhere.
//   - Isolation: every simulation run owns a fresh *Source; there is no
//     package-level generator to share or contend on.
//
// Concurrency:
//   - *Source is NOT goroutine-safe. Do not share one across goroutines.
//   - Use Derive to split independent substreams for parallel runs.
package rng
