// Package quantum defines the closed gate vocabulary, sentinel errors,
// and match options shared by the register and the named-state catalog.
package quantum

import "errors"

// Width bounds for registers. The game never plays beyond three qubits.
const (
	MinQubits = 1
	MaxQubits = 3
)

// DefaultTolerance is the fidelity slack used by Matches when no
// WithTolerance option is supplied: fidelity > 1-DefaultTolerance succeeds.
const DefaultTolerance = 0.01

var (
	// ErrUnknownState indicates a state label that is not in the catalog.
	ErrUnknownState = errors.New("quantum: unknown state label")

	// ErrUnknownGate indicates a gate label outside the closed gate set.
	ErrUnknownGate = errors.New("quantum: unknown gate")

	// ErrQubitMismatch indicates a label whose implied qubit count differs
	// from the register it was used with.
	ErrQubitMismatch = errors.New("quantum: qubit count mismatch")

	// ErrBadQubit indicates a target qubit index outside [0, NumQubits).
	ErrBadQubit = errors.New("quantum: qubit index out of range")

	// ErrBadWidth indicates a register width outside [MinQubits, MaxQubits].
	ErrBadWidth = errors.New("quantum: unsupported qubit count")
)

// MatchOption configures optional behavior of Register.Matches.
type MatchOption func(*matchOptions)

type matchOptions struct {
	// tolerance is the accepted fidelity slack; Matches succeeds when
	// fidelity exceeds 1-tolerance.
	tolerance float64
}

func defaultMatchOptions() matchOptions {
	return matchOptions{tolerance: DefaultTolerance}
}

// WithTolerance returns a MatchOption overriding the fidelity slack.
// Non-positive values are ignored (the default is retained).
func WithTolerance(tol float64) MatchOption {
	return func(o *matchOptions) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}
