// Package builder constructs synthetic contact networks with specific
// topological guarantees: small-world (Watts–Strogatz), scale-free
// (Barabási–Albert) and clustered community graphs.
//
// 🚀 Shape of the API:
//
//	Each topology factory returns a Constructor closure; BuildGraph resolves
//	functional options into an immutable config and applies constructors in
//	order. Thin BuildSmallWorld / BuildScaleFree / BuildClustered wrappers
//	cover the one-topology, one-seed case.
//
//	g, err := builder.BuildSmallWorld(100, 4, 0.1, 42)
//
// Determinism:
//   - Same parameters, options and seed ⇒ identical graphs, link for link.
//   - Node emission order is id-ascending; link emission order is fixed and
//     documented per constructor.
//
// Parameter policy (degrade, never abort):
//   - Out-of-range numeric parameters are clamped to the nearest valid
//     value: sizes to ≥0, probabilities to [0,1], degrees to even values
//     that fit the population. A constructor error therefore signals a
//     programmer-level defect (nil constructor), not bad user input.
//
// Documented approximations:
//   - Small-world rewiring retries at most RewireRetryLimit times to avoid
//     a self-loop or duplicate; on exhaustion the last candidate is taken
//     as-is. Consumers must tolerate the rare duplicate/loop link.
//   - Scale-free sampling uses a degree bag, not an exact weighted
//     structure; the preferential-attachment contract (hubs, heavy tail)
//     is what is guaranteed, not exact proportionality.
package builder
