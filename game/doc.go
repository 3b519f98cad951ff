// Package game layers the playable game on top of the engine packages:
// missions with validated construction, the gate-card deck, players and
// their hands, turn order, route claiming, mission-completion checks, and
// generate-and-test mission authoring.
//
// The engine packages (quantum, core, paths, feasibility) stay silent;
// this layer is where diagnostics are logged, through zerolog. Pass
// WithLogger to NewState to see them; the default logger discards
// everything.
//
// Randomness is injected (*rand.Rand) so deals, shuffles, and authored
// missions are reproducible in tests.
package game
