// Package sim evolves SIR epidemics over a contact network built by
// episim/builder.
//
// Two engines share the same inputs (graph, beta, gamma, initial infected,
// seed) and differ in their notion of time:
//
//   - RunDiscrete — synchronous fixed-step update. Continuous rates are
//     converted to per-step probabilities (p = 1 − e^(−rate)); every step
//     is computed entirely from the previous step's snapshot using two
//     alternating buffers, so there are no read-after-write hazards.
//     The optional waning-immunity variant lets recovered-from infection
//     return to Susceptible with accumulated resistance until it saturates.
//
//   - RunEvents — exact event-driven stochastic simulation (Gillespie).
//     Each iteration recomputes every node's instantaneous rate, draws an
//     exponential holding time from the total, and fires exactly one
//     transition selected by a deterministic cumulative-rate scan.
//
// Both engines are pure functions of their inputs: each run owns its RNG,
// state arrays and scratch buffers, logs nothing, touches no globals, and
// may be cancelled between steps/events via the context. Reaching an
// absorbing state, the event cap or the time horizon are all normal
// terminations, never errors.
//
// Reduce / ReduceTimeline aggregate snapshots into per-compartment counts
// for external charting.
package sim
