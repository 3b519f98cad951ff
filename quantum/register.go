package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Register holds the complex amplitude vector of a 1–3 qubit register.
// Basis index i encodes qubit q in bit q (qubit 0 least significant).
// A Register is constructed fresh per simulation call, mutated in place by
// Apply, and discarded; it is never shared between calls or goroutines.
type Register struct {
	qubits int
	amps   []complex128

	// substituted counts gates that were structurally unavailable at this
	// width (CNOT on one qubit) and were applied as Identity instead.
	substituted int
}

// NewRegister prepares a fresh register in the named state, deriving the
// width from the label. Returns ErrUnknownState for labels outside the
// catalog.
func NewRegister(label string) (*Register, error) {
	st, err := lookup(label)
	if err != nil {
		return nil, err
	}

	return newPrepared(st)
}

// NewRegisterN prepares a fresh register in the named state at an explicit
// width. The width must match the label's implied qubit count; there is no
// implicit padding (ErrQubitMismatch otherwise).
func NewRegisterN(label string, qubits int) (*Register, error) {
	// 1. Bounds check the requested width
	if qubits < MinQubits || qubits > MaxQubits {
		return nil, fmt.Errorf("%w: %d", ErrBadWidth, qubits)
	}

	// 2. Resolve the label and enforce width agreement
	st, err := lookup(label)
	if err != nil {
		return nil, err
	}
	if st.qubits != qubits {
		return nil, fmt.Errorf("%w: state %q implies %d qubits, register has %d",
			ErrQubitMismatch, st.label, st.qubits, qubits)
	}

	return newPrepared(st)
}

// newPrepared allocates an all-zero register and runs the prep program.
func newPrepared(st *state) (*Register, error) {
	r := &Register{
		qubits: st.qubits,
		amps:   make([]complex128, 1<<st.qubits),
	}
	r.amps[0] = 1
	for _, op := range st.prog {
		r.exec(op)
	}

	return r, nil
}

// NumQubits returns the register width.
func (r *Register) NumQubits() int { return r.qubits }

// Amplitudes returns a copy of the amplitude vector.
func (r *Register) Amplitudes() []complex128 {
	amps := make([]complex128, len(r.amps))
	copy(amps, r.amps)

	return amps
}

// Substituted reports how many gates were applied as Identity because they
// were unavailable at this register's width.
func (r *Register) Substituted() int { return r.substituted }

// Apply left-multiplies the state by the gate's unitary with the game's
// placement convention: single-qubit gates act on qubit 0, CNOT uses
// control 0 and target 1. On a one-qubit register CNOT degrades to Identity
// (counted in Substituted), never an error.
func (r *Register) Apply(g Gate) error { return r.ApplyOn(g, 0) }

// ApplyOn applies a single-qubit gate to the given target qubit. CNOT
// ignores the target: its placement is fixed at control 0, target 1.
func (r *Register) ApplyOn(g Gate, target int) error {
	// 1. Validate arguments against the closed catalog and width
	if g >= numGates {
		return fmt.Errorf("%w: %v", ErrUnknownGate, g)
	}
	if target < 0 || target >= r.qubits {
		return fmt.Errorf("%w: %d on %d-qubit register", ErrBadQubit, target, r.qubits)
	}

	// 2. Dispatch on the enumeration (exhaustive by construction)
	switch g {
	case GateI:
		// no change
	case GateX:
		r.applyX(target)
	case GateY:
		r.applyY(target)
	case GateZ:
		r.applyZ(target)
	case GateH:
		r.applyH(target)
	case GateCNOT:
		if r.qubits < 2 {
			r.substituted++ // unavailable at this width: Identity
			return nil
		}
		r.applyCX(0, 1)
	}

	return nil
}

// ApplyAll applies a gate sequence in order with the Apply conventions.
func (r *Register) ApplyAll(seq []Gate) error {
	for _, g := range seq {
		if err := r.Apply(g); err != nil {
			return err
		}
	}

	return nil
}

// Fidelity computes |⟨target|state⟩|² against the named reference state.
// The result is in [0,1]; 1 means identical up to global phase.
// Returns ErrQubitMismatch if the label implies a different width.
func (r *Register) Fidelity(label string) (float64, error) {
	ref, err := NewRegisterN(label, r.qubits)
	if err != nil {
		return 0, err
	}

	var inner complex128
	for i, a := range ref.amps {
		inner += cmplx.Conj(a) * r.amps[i]
	}
	fid := cmplx.Abs(inner)

	return fid * fid, nil
}

// Matches reports whether the register is in the named target state:
// Fidelity(label) > 1-tolerance. This is the authoritative success predicate
// for mission checks — phase- and superposition-aware, never a most-likely
// basis-state comparison.
func (r *Register) Matches(label string, opts ...MatchOption) (bool, error) {
	mopts := defaultMatchOptions()
	for _, fn := range opts {
		fn(&mopts)
	}

	fid, err := r.Fidelity(label)
	if err != nil {
		return false, err
	}

	return fid > 1-mopts.tolerance, nil
}

// Probabilities returns the probability of each computational basis state.
func (r *Register) Probabilities() []float64 {
	probs := make([]float64, len(r.amps))
	for i, a := range r.amps {
		probs[i] = real(a * cmplx.Conj(a))
	}

	return probs
}

// Normalized reports whether the squared amplitudes sum to 1 within tol.
func (r *Register) Normalized(tol float64) bool {
	return math.Abs(floats.Sum(r.Probabilities())-1) <= tol
}

// MostLikely returns the basis-state label with the highest probability.
// Diagnostics only: mission success always goes through Matches.
func (r *Register) MostLikely() string {
	return basisLabel(floats.MaxIdx(r.Probabilities()), r.qubits)
}

// Describe renders the state as a sum of basis kets with amplitude magnitude
// and phase, omitting terms below 1% probability. For UI and logs, not for
// correctness decisions.
func (r *Register) Describe() string {
	var terms []string
	for i, a := range r.amps {
		prob := real(a * cmplx.Conj(a))
		if prob <= 0.01 {
			continue
		}
		mag := cmplx.Abs(a)
		phase := cmplx.Phase(a)
		ket := basisLabel(i, r.qubits)
		switch {
		case math.Abs(phase) < 0.1: // real positive
			terms = append(terms, fmt.Sprintf("%.3f%s", mag, ket))
		case math.Abs(math.Abs(phase)-math.Pi) < 0.1: // real negative
			terms = append(terms, fmt.Sprintf("-%.3f%s", mag, ket))
		default:
			terms = append(terms, fmt.Sprintf("%.3fe^(i%.2f)%s", mag, phase, ket))
		}
	}
	if len(terms) == 0 {
		return "0"
	}

	return strings.Join(terms, " + ")
}

// exec runs one preparation instruction. Only catalog programs reach here,
// so kinds are trusted.
func (r *Register) exec(op prepOp) {
	switch op.kind {
	case opX:
		r.applyX(op.q)
	case opZ:
		r.applyZ(op.q)
	case opH:
		r.applyH(op.q)
	case opRY:
		r.applyRY(op.q, op.theta)
	case opCX:
		r.applyCX(op.c, op.q)
	case opCH:
		r.applyCH(op.c, op.q)
	case opCCX:
		r.applyCCX(op.c, op.c2, op.q)
	}
}

// The primitives below embed each unitary into the full 2^n space by
// pairing basis indices that differ only in the acted-on bit.

func (r *Register) applyX(q int) {
	bit := 1 << q
	for i := range r.amps {
		if i&bit == 0 {
			j := i | bit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
}

func (r *Register) applyY(q int) {
	bit := 1 << q
	for i := range r.amps {
		if i&bit == 0 {
			j := i | bit
			r.amps[i], r.amps[j] = -1i*r.amps[j], 1i*r.amps[i]
		}
	}
}

func (r *Register) applyZ(q int) {
	bit := 1 << q
	for i := range r.amps {
		if i&bit != 0 {
			r.amps[i] = -r.amps[i]
		}
	}
}

func (r *Register) applyH(q int) {
	factor := complex(1/math.Sqrt2, 0)
	bit := 1 << q
	next := make([]complex128, len(r.amps))
	for i := range r.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = factor * (r.amps[i] + r.amps[j])
			next[j] = factor * (r.amps[i] - r.amps[j])
		}
	}
	r.amps = next
}

func (r *Register) applyRY(q int, theta float64) {
	cos := complex(math.Cos(theta/2), 0)
	sin := complex(math.Sin(theta/2), 0)
	bit := 1 << q
	next := make([]complex128, len(r.amps))
	for i := range r.amps {
		if i&bit == 0 {
			j := i | bit
			next[i] = cos*r.amps[i] - sin*r.amps[j]
			next[j] = sin*r.amps[i] + cos*r.amps[j]
		}
	}
	r.amps = next
}

func (r *Register) applyCX(control, target int) {
	cBit, tBit := 1<<control, 1<<target
	for i := range r.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
}

func (r *Register) applyCH(control, target int) {
	factor := complex(1/math.Sqrt2, 0)
	cBit, tBit := 1<<control, 1<<target
	next := make([]complex128, len(r.amps))
	copy(next, r.amps)
	for i := range r.amps {
		if i&cBit != 0 && i&tBit == 0 {
			j := i | tBit
			next[i] = factor * (r.amps[i] + r.amps[j])
			next[j] = factor * (r.amps[i] - r.amps[j])
		}
	}
	r.amps = next
}

func (r *Register) applyCCX(c1, c2, target int) {
	b1, b2, tBit := 1<<c1, 1<<c2, 1<<target
	for i := range r.amps {
		if i&b1 != 0 && i&b2 != 0 && i&tBit == 0 {
			j := i | tBit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
}
