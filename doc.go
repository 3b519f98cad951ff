// Package kettoride is the rules engine for Ket to Ride — a route-claiming
// board game where every route is labeled with a quantum-gate symbol, and
// completing a mission means steering a small quantum register from a named
// initial state into a named target state along the gates of a claimed path.
//
// The engine answers two questions, both synchronously and deterministically:
//
//   - Feasibility: given a start/target city pair (or one start per qubit) and
//     a desired state transformation, does some simple path and some choice of
//     per-route gate options realize it?
//   - Completion: do the routes a player actually claimed transform the
//     mission's initial state into its target state?
//
// Everything is organized under focused subpackages:
//
//	quantum/     — 1–3 qubit state-vector register, gate catalog, named states
//	core/        — the route map: cities, gate-labeled routes, claim state
//	paths/       — depth-bounded simple-path enumeration between cities
//	feasibility/ — gate-combination search and the feasibility service
//	builder/     — map construction from JSON configs and the canned board
//	game/        — missions, players, card deck, turns, mission authoring
//
// The quantum register is exact complex-amplitude arithmetic with
// phase-sensitive fidelity checks: |Bell+⟩ and |Bell−⟩ are distinct targets
// even though they are indistinguishable by per-qubit marginals. Search is
// explicit bounded enumeration with early exit, so worst-case latency stays
// acceptable on game-scale maps (tens of cities, max path depth 6).
//
//	go get github.com/ketlab/kettoride
package kettoride
