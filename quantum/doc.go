// Package quantum implements the 1–3 qubit state-vector register behind
// Ket to Ride's mission checks: named-state preparation, discrete gate
// application, and phase-sensitive fidelity scoring against a target label.
//
// Key features:
//   - Register: exact complex128 amplitude vector, qubit 0 least significant
//   - Closed Gate enumeration (I, X, Y, Z, H, CNOT); ParseGate is the single
//     runtime boundary for the wire vocabulary
//   - Named-state catalog (computational basis, |+⟩/|−⟩, Bell pairs, |GHZ⟩,
//     |W⟩) mapping each label to a fixed preparation program
//   - Fidelity/Matches: |⟨target|state⟩|² compared against a tolerance, so
//     |Bell+⟩ and |Bell−⟩ are distinguished despite equal marginals
//   - Describe: sum-of-basis-states text with terms below 1% probability
//     omitted, for player-facing diagnostics only
//
// Width convention: a gate that is structurally unavailable at the register's
// width (CNOT on a single qubit) is applied as Identity and counted in
// Substituted(); it is never an error. The game treats every card as playable,
// so the register must too.
//
// Registers are cheap value-like objects: construct one per simulation call,
// mutate it with Apply, discard it. Nothing in this package is shared or
// goroutine-safe; callers own their registers.
//
// Complexity: every gate application is O(2^n) with n ≤ 3, so all operations
// are constant-time in practice.
//
// Errors:
//
//   - ErrUnknownState    unknown or ambiguous state label.
//   - ErrUnknownGate     gate label outside the closed catalog.
//   - ErrQubitMismatch   label's implied width differs from the register's.
//   - ErrBadQubit        target qubit index out of range.
package quantum
