package quantum

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// prepOp is one instruction of a named-state preparation program.
// The internal instruction set is wider than the playable Gate catalog
// (rotations and multi-controlled gates are needed to build |W⟩), but it is
// only ever executed from the fixed programs below.
type prepOp struct {
	kind  prepKind
	q     int     // target qubit
	c, c2 int     // control qubits (kind-dependent)
	theta float64 // rotation angle (opRY only)
}

type prepKind uint8

const (
	opX prepKind = iota
	opZ
	opH
	opRY  // Y-rotation by theta on q
	opCX  // controlled-X: control c, target q
	opCH  // controlled-H: control c, target q
	opCCX // Toffoli: controls c and c2, target q
)

// state is one catalog entry: a canonical label, its qubit count, the
// preparation program from |0…0⟩, and whether the state is a superposition
// (used by mission scoring to rate difficulty).
type state struct {
	label      string
	qubits     int
	prog       []prepOp
	superposed bool
}

func x(q int) prepOp            { return prepOp{kind: opX, q: q} }
func z(q int) prepOp            { return prepOp{kind: opZ, q: q} }
func h(q int) prepOp            { return prepOp{kind: opH, q: q} }
func ry(q int, th float64) prepOp { return prepOp{kind: opRY, q: q, theta: th} }
func cx(c, t int) prepOp        { return prepOp{kind: opCX, c: c, q: t} }
func ch(c, t int) prepOp        { return prepOp{kind: opCH, c: c, q: t} }
func ccx(c1, c2, t int) prepOp  { return prepOp{kind: opCCX, c: c1, c2: c2, q: t} }

// wTheta puts amplitude 1/√3 on the rotated branch: cos(wTheta/2) = 1/√3.
var wTheta = 2 * math.Acos(1/math.Sqrt(3))

// catalog maps every canonical state label to its entry. Basis-state labels
// (|0⟩, |01⟩, |110⟩, …) are generated in init below; only the named states
// are spelled out here. Adding a state means adding one entry.
var catalog = map[string]*state{
	"|+⟩": {label: "|+⟩", qubits: 1, prog: []prepOp{h(0)}, superposed: true},
	"|−⟩": {label: "|−⟩", qubits: 1, prog: []prepOp{x(0), h(0)}, superposed: true},

	// (|00⟩ + |11⟩)/√2
	"|Bell+⟩": {label: "|Bell+⟩", qubits: 2, prog: []prepOp{h(0), cx(0, 1)}, superposed: true},
	// (|00⟩ - |11⟩)/√2
	"|Bell−⟩": {label: "|Bell−⟩", qubits: 2, prog: []prepOp{h(0), cx(0, 1), z(0)}, superposed: true},
	// (|01⟩ + |10⟩)/√2
	"|Ψ+⟩": {label: "|Ψ+⟩", qubits: 2, prog: []prepOp{x(0), h(1), cx(1, 0)}, superposed: true},
	// (|01⟩ - |10⟩)/√2
	"|Ψ−⟩": {label: "|Ψ−⟩", qubits: 2, prog: []prepOp{x(0), h(1), cx(1, 0), z(1)}, superposed: true},

	// (|000⟩ + |111⟩)/√2
	"|GHZ⟩": {label: "|GHZ⟩", qubits: 3, prog: []prepOp{h(2), cx(2, 1), cx(2, 0)}, superposed: true},
	// (|001⟩ + |010⟩ + |100⟩)/√3
	"|W⟩": {label: "|W⟩", qubits: 3, prog: []prepOp{
		ry(0, wTheta),
		ch(0, 1),
		cx(1, 0),
		x(0), x(1), ccx(0, 1, 2), x(0), x(1),
	}, superposed: true},
}

// aliases maps accepted alternative spellings onto canonical labels.
var aliases = map[string]string{
	"|-⟩":  "|−⟩", // ASCII hyphen
	"|Φ+⟩": "|Bell+⟩",
	"|Φ-⟩": "|Bell−⟩",
	"|Φ−⟩": "|Bell−⟩",
	"|Bell-⟩": "|Bell−⟩",
	"|Ψ-⟩": "|Ψ−⟩",
}

func init() {
	// Generate all computational-basis entries: for each supported width,
	// |b_{n-1}…b_0⟩ prepared by X on every set bit. Qubit 0 is the
	// rightmost character, matching the usual ket convention.
	for n := MinQubits; n <= MaxQubits; n++ {
		for idx := 0; idx < 1<<n; idx++ {
			label := basisLabel(idx, n)
			prog := make([]prepOp, 0, n)
			for q := 0; q < n; q++ {
				if idx&(1<<q) != 0 {
					prog = append(prog, x(q))
				}
			}
			catalog[label] = &state{label: label, qubits: n, prog: prog}
		}
	}
}

// basisLabel renders basis index idx of an n-qubit register as a ket string,
// qubit n-1 leftmost.
func basisLabel(idx, n int) string {
	var b strings.Builder
	b.WriteString("|")
	for q := n - 1; q >= 0; q-- {
		if idx&(1<<q) != 0 {
			b.WriteString("1")
		} else {
			b.WriteString("0")
		}
	}
	b.WriteString("⟩")

	return b.String()
}

// lookup resolves a label (canonical or alias) to its catalog entry.
func lookup(label string) (*state, error) {
	label = strings.TrimSpace(label)
	if canon, ok := aliases[label]; ok {
		label = canon
	}
	if st, ok := catalog[label]; ok {
		return st, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownState, label)
}

// QubitsFor returns the qubit count implied by a state label.
// Every label in mission data must resolve to exactly one width;
// unknown labels are a hard error (ErrUnknownState).
func QubitsFor(label string) (int, error) {
	st, err := lookup(label)
	if err != nil {
		return 0, err
	}

	return st.qubits, nil
}

// Superposed reports whether the labeled state is a superposition or
// entangled state. Mission scoring uses this as a difficulty signal.
func Superposed(label string) (bool, error) {
	st, err := lookup(label)
	if err != nil {
		return false, err
	}

	return st.superposed, nil
}

// KnownStates returns every canonical label for the given width, sorted,
// so callers sampling from it are reproducible. Mission authoring samples
// from this set.
func KnownStates(qubits int) []string {
	var labels []string
	for _, st := range catalog {
		if st.qubits == qubits {
			labels = append(labels, st.label)
		}
	}
	sort.Strings(labels)

	return labels
}
