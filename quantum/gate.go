package quantum

import (
	"fmt"
	"strings"
)

// Gate enumerates the closed catalog of playable gate cards.
// The zero value is GateI (identity).
type Gate uint8

const (
	// GateI is the identity: no change.
	GateI Gate = iota
	// GateX is the Pauli bit flip: |0⟩↔|1⟩.
	GateX
	// GateY is the Pauli Y: bit flip with an imaginary phase.
	GateY
	// GateZ is the Pauli phase flip: |1⟩→-|1⟩.
	GateZ
	// GateH is the Hadamard: equal superposition.
	GateH
	// GateCNOT is the controlled-X with control qubit 0, target qubit 1.
	GateCNOT

	numGates
)

// gateNames is the wire vocabulary, indexed by Gate value.
var gateNames = [numGates]string{"I", "X", "Y", "Z", "H", "CNOT"}

// gateDescriptions are player-facing one-liners, indexed by Gate value.
var gateDescriptions = [numGates]string{
	"Identity - no change",
	"Bit flip - |0⟩↔|1⟩",
	"Bit flip with phase - |0⟩→i|1⟩",
	"Phase flip - |1⟩→-|1⟩",
	"Superposition - equal probability",
	"Controlled bit flip - entangles qubits 0 and 1",
}

// String returns the wire label of g ("I", "X", …, "CNOT").
func (g Gate) String() string {
	if g >= numGates {
		return fmt.Sprintf("Gate(%d)", uint8(g))
	}

	return gateNames[g]
}

// Describe returns a player-facing one-line description of what g does.
func (g Gate) Describe() string {
	if g >= numGates {
		return "unknown gate"
	}

	return gateDescriptions[g]
}

// Arity returns the number of qubits g acts on: 2 for CNOT, 1 otherwise.
func (g Gate) Arity() int {
	if g == GateCNOT {
		return 2
	}

	return 1
}

// ParseGate resolves a wire label to its Gate. This is the single runtime
// boundary between the open string vocabulary (map configs, mission data)
// and the closed enumeration; everything past it is exhaustive.
// Returns ErrUnknownGate for labels outside the catalog.
func ParseGate(label string) (Gate, error) {
	label = strings.TrimSpace(label)
	for g, name := range gateNames {
		if name == label {
			return Gate(g), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownGate, label)
}

// ParseGates resolves a slice of wire labels, preserving order.
func ParseGates(labels []string) ([]Gate, error) {
	gates := make([]Gate, len(labels))
	var err error
	for i, label := range labels {
		if gates[i], err = ParseGate(label); err != nil {
			return nil, err
		}
	}

	return gates, nil
}

// Gates returns the full catalog in declaration order.
// Useful for deck construction and exhaustive tests.
func Gates() []Gate {
	all := make([]Gate, numGates)
	for i := range all {
		all[i] = Gate(i)
	}

	return all
}
