package quantum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ketlab/kettoride/quantum"
)

// mustRegister prepares a register or fails the test.
func mustRegister(t *testing.T, label string) *quantum.Register {
	t.Helper()
	r, err := quantum.NewRegister(label)
	require.NoError(t, err, "prepare %q", label)

	return r
}

func TestNewRegister_UnknownState(t *testing.T) {
	r, err := quantum.NewRegister("|Nope⟩")
	assert.Nil(t, r)
	assert.ErrorIs(t, err, quantum.ErrUnknownState)
}

func TestNewRegisterN_WidthMismatch(t *testing.T) {
	_, err := quantum.NewRegisterN("|Bell+⟩", 3)
	assert.ErrorIs(t, err, quantum.ErrQubitMismatch)

	_, err = quantum.NewRegisterN("|0⟩", 4)
	assert.ErrorIs(t, err, quantum.ErrBadWidth)
}

// Every catalog preparation must leave a unit-norm vector.
func TestUnitarity_AllPreparations(t *testing.T) {
	for n := 1; n <= 3; n++ {
		for _, label := range quantum.KnownStates(n) {
			r := mustRegister(t, label)
			assert.True(t, r.Normalized(1e-6), "preparation of %q must be unit norm", label)
		}
	}
}

// Every gate applied to every preparation must preserve the norm.
func TestUnitarity_AllGates(t *testing.T) {
	for n := 1; n <= 3; n++ {
		for _, label := range quantum.KnownStates(n) {
			for _, g := range quantum.Gates() {
				r := mustRegister(t, label)
				require.NoError(t, r.Apply(g))
				assert.True(t, r.Normalized(1e-6), "%v on %q must be unit norm", g, label)
			}
		}
	}
}

func TestIdentity_Idempotent(t *testing.T) {
	r := mustRegister(t, "|Bell+⟩")
	before, err := r.Fidelity("|Bell+⟩")
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, r.Apply(quantum.GateI))
	}
	after, err := r.Fidelity("|Bell+⟩")
	require.NoError(t, err)
	assert.InDelta(t, before, after, 1e-12, "Identity must never move the state")
}

func TestBellWitness(t *testing.T) {
	// |00⟩ --H(0)--CNOT--> |Bell+⟩
	r := mustRegister(t, "|00⟩")
	require.NoError(t, r.Apply(quantum.GateH))
	require.NoError(t, r.Apply(quantum.GateCNOT))

	ok, err := r.Matches("|Bell+⟩")
	require.NoError(t, err)
	assert.True(t, ok, "H then CNOT from |00⟩ must reach |Bell+⟩")

	ok, err = r.Matches("|00⟩")
	require.NoError(t, err)
	assert.False(t, ok, "the Bell state is not |00⟩")
}

func TestBellPhase_Distinguished(t *testing.T) {
	// |Bell+⟩ and |Bell−⟩ share marginals but differ in relative phase.
	plus := mustRegister(t, "|Bell+⟩")
	minus := mustRegister(t, "|Bell−⟩")

	fid, err := plus.Fidelity("|Bell−⟩")
	require.NoError(t, err)
	assert.InDelta(t, 0, fid, 1e-9, "orthogonal Bell states")

	ok, err := minus.Matches("|Bell−⟩")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = minus.Matches("|Bell+⟩")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGHZ_Amplitudes(t *testing.T) {
	r := mustRegister(t, "|GHZ⟩")
	amps := r.Amplitudes()
	require.Len(t, amps, 8)

	inv := 1 / math.Sqrt2
	assert.InDelta(t, inv, real(amps[0]), 1e-9)
	assert.InDelta(t, inv, real(amps[7]), 1e-9)
	for _, i := range []int{1, 2, 3, 4, 5, 6} {
		assert.InDelta(t, 0, real(amps[i]), 1e-9)
		assert.InDelta(t, 0, imag(amps[i]), 1e-9)
	}

	ok, err := r.Matches("|GHZ⟩")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestW_Amplitudes(t *testing.T) {
	// (|001⟩ + |010⟩ + |100⟩)/√3: single-excitation indices 1, 2, 4.
	r := mustRegister(t, "|W⟩")
	amps := r.Amplitudes()

	inv := 1 / math.Sqrt(3)
	for _, i := range []int{1, 2, 4} {
		assert.InDelta(t, inv, real(amps[i]), 1e-9, "amplitude at index %d", i)
	}
	for _, i := range []int{0, 3, 5, 6, 7} {
		assert.InDelta(t, 0, real(amps[i]), 1e-9, "amplitude at index %d", i)
	}
}

func TestCNOT_OnSingleQubit_IsIdentity(t *testing.T) {
	r := mustRegister(t, "|+⟩")
	require.NoError(t, r.Apply(quantum.GateCNOT))

	ok, err := r.Matches("|+⟩")
	require.NoError(t, err)
	assert.True(t, ok, "CNOT on one qubit degrades to Identity")
	assert.Equal(t, 1, r.Substituted())
}

func TestY_FullMemberAtEveryWidth(t *testing.T) {
	for _, label := range []string{"|0⟩", "|00⟩", "|000⟩"} {
		r := mustRegister(t, label)
		require.NoError(t, r.Apply(quantum.GateY))
		assert.True(t, r.Normalized(1e-6))
		assert.Zero(t, r.Substituted(), "Y is never substituted")
	}
}

func TestApplyOn_BadQubit(t *testing.T) {
	r := mustRegister(t, "|0⟩")
	assert.ErrorIs(t, r.ApplyOn(quantum.GateX, 1), quantum.ErrBadQubit)
	assert.ErrorIs(t, r.ApplyOn(quantum.GateX, -1), quantum.ErrBadQubit)
}

func TestFidelity_WidthMismatch(t *testing.T) {
	r := mustRegister(t, "|0⟩")
	_, err := r.Fidelity("|Bell+⟩")
	assert.ErrorIs(t, err, quantum.ErrQubitMismatch)
}

func TestMatches_Tolerance(t *testing.T) {
	r := mustRegister(t, "|+⟩")
	// |⟨0|+⟩|² = 0.5: fails the default tolerance, passes an absurdly lax one.
	ok, err := r.Matches("|0⟩")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.Matches("|0⟩", quantum.WithTolerance(0.75))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDescribe(t *testing.T) {
	bell := mustRegister(t, "|Bell+⟩")
	assert.Equal(t, "0.707|00⟩ + 0.707|11⟩", bell.Describe())

	minus := mustRegister(t, "|Bell−⟩")
	assert.Equal(t, "0.707|00⟩ + -0.707|11⟩", minus.Describe())

	one := mustRegister(t, "|1⟩")
	assert.Equal(t, "1.000|1⟩", one.Describe())
}

func TestMostLikely(t *testing.T) {
	r := mustRegister(t, "|101⟩")
	assert.Equal(t, "|101⟩", r.MostLikely())
}

func TestProbabilities_SumToOne(t *testing.T) {
	r := mustRegister(t, "|W⟩")
	var sum float64
	for _, p := range r.Probabilities() {
		sum += p
	}
	assert.InDelta(t, 1, sum, 1e-9)
}
