package quantum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ketlab/kettoride/quantum"
)

func TestParseGate_RoundTrip(t *testing.T) {
	for _, g := range quantum.Gates() {
		parsed, err := quantum.ParseGate(g.String())
		assert.NoError(t, err)
		assert.Equal(t, g, parsed, "label %q must round-trip", g.String())
	}
}

func TestParseGate_TrimsWhitespace(t *testing.T) {
	g, err := quantum.ParseGate("  CNOT ")
	assert.NoError(t, err)
	assert.Equal(t, quantum.GateCNOT, g)
}

func TestParseGate_Unknown(t *testing.T) {
	_, err := quantum.ParseGate("SWAP")
	assert.ErrorIs(t, err, quantum.ErrUnknownGate)
	assert.ErrorContains(t, err, "SWAP")
}

func TestParseGates_OrderPreserved(t *testing.T) {
	gates, err := quantum.ParseGates([]string{"H", "CNOT", "I"})
	assert.NoError(t, err)
	assert.Equal(t, []quantum.Gate{quantum.GateH, quantum.GateCNOT, quantum.GateI}, gates)
}

func TestParseGates_FailsFast(t *testing.T) {
	gates, err := quantum.ParseGates([]string{"H", "Q"})
	assert.Nil(t, gates)
	assert.ErrorIs(t, err, quantum.ErrUnknownGate)
}

func TestGate_Arity(t *testing.T) {
	for _, g := range quantum.Gates() {
		want := 1
		if g == quantum.GateCNOT {
			want = 2
		}
		assert.Equal(t, want, g.Arity(), "arity of %v", g)
	}
}

func TestGate_Describe_NonEmpty(t *testing.T) {
	for _, g := range quantum.Gates() {
		assert.NotEmpty(t, g.Describe())
	}
}
