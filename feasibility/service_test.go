package feasibility_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ketlab/kettoride/core"
	"github.com/ketlab/kettoride/feasibility"
	"github.com/ketlab/kettoride/quantum"
)

func gates(gs ...quantum.Gate) []quantum.Gate { return gs }

// buildBellBoard wires the board of the Bell-state scenario:
//
//	Princeton ──H── Carnegie ──CNOT── UChicago
//	GeorgiaTech ─I── Carnegie
func buildBellBoard(t *testing.T) *core.Map {
	t.Helper()
	m := core.NewMap()
	for _, r := range []struct {
		from, to core.City
		gs       []quantum.Gate
	}{
		{"Princeton", "Carnegie", gates(quantum.GateH)},
		{"GeorgiaTech", "Carnegie", gates(quantum.GateI)},
		{"Carnegie", "UChicago", gates(quantum.GateCNOT)},
	} {
		_, err := m.AddRoute(r.from, r.to, r.gs, 1)
		require.NoError(t, err)
	}

	return m
}

func TestCheck_RequestValidation(t *testing.T) {
	svc := feasibility.New()
	m := core.NewMap()
	m.AddCity("A")

	_, err := svc.Check(nil, feasibility.Request{})
	assert.ErrorIs(t, err, core.ErrMapNil)

	_, err = svc.Check(m, feasibility.Request{TargetCity: "A"})
	assert.ErrorIs(t, err, feasibility.ErrNoStartCities)

	_, err = svc.Check(m, feasibility.Request{StartCities: []core.City{"A"}})
	assert.ErrorIs(t, err, feasibility.ErrNoTargetCity)
}

func TestCheck_BadLabels(t *testing.T) {
	svc := feasibility.New()
	m := core.NewMap()
	m.AddRoute("A", "B", gates(quantum.GateX), 1)

	_, err := svc.Check(m, feasibility.Request{
		StartCities:  []core.City{"A"},
		TargetCity:   "B",
		InitialState: "|Bogus⟩",
		TargetState:  "|1⟩",
	})
	assert.ErrorIs(t, err, quantum.ErrUnknownState)

	_, err = svc.Check(m, feasibility.Request{
		StartCities:  []core.City{"A"},
		TargetCity:   "B",
		InitialState: "|0⟩",
		TargetState:  "|Bell+⟩",
	})
	assert.ErrorIs(t, err, quantum.ErrQubitMismatch)
}

func TestCheck_SingleQubit_Feasible(t *testing.T) {
	// |0⟩ --X--> |1⟩ over a single route.
	m := core.NewMap()
	m.AddRoute("MIT", "Oxford", gates(quantum.GateX), 1)

	svc := feasibility.New()
	ws, err := svc.Check(m, feasibility.Request{
		StartCities:  []core.City{"MIT"},
		TargetCity:   "Oxford",
		InitialState: "|0⟩",
		TargetState:  "|1⟩",
	})
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, core.City("MIT"), ws[0].StartCity)
	assert.Equal(t, []quantum.Gate{quantum.GateX}, ws[0].Sequence)
	assert.Len(t, ws[0].Assignments, 1)
	assert.Equal(t, "1.000|1⟩", ws[0].Description)
}

func TestCheck_SingleQubit_ParallelOptionsSearched(t *testing.T) {
	// The route offers Z or X; only X flips |0⟩ to |1⟩.
	m := core.NewMap()
	m.AddRoute("MIT", "Oxford", gates(quantum.GateZ, quantum.GateX), 1)

	svc := feasibility.New()
	ws, err := svc.Check(m, feasibility.Request{
		StartCities:  []core.City{"MIT"},
		TargetCity:   "Oxford",
		InitialState: "|0⟩",
		TargetState:  "|1⟩",
	})
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, quantum.GateX, ws[0].Assignments[0].Gate)
}

func TestCheck_Infeasible_EmptyNotError(t *testing.T) {
	// Z alone can never take |0⟩ to |1⟩.
	m := core.NewMap()
	m.AddRoute("MIT", "Oxford", gates(quantum.GateZ), 1)

	svc := feasibility.New()
	ws, err := svc.Check(m, feasibility.Request{
		StartCities:  []core.City{"MIT"},
		TargetCity:   "Oxford",
		InitialState: "|0⟩",
		TargetState:  "|1⟩",
	})
	require.NoError(t, err, "infeasible is an outcome, not an error")
	assert.Empty(t, ws)
}

func TestCheck_LengthMatters(t *testing.T) {
	// A length-2 X route applies X twice: back to |0⟩, so |1⟩ is unreachable,
	// while |0⟩ is trivially reached.
	m := core.NewMap()
	m.AddRoute("A", "B", gates(quantum.GateX), 2)

	svc := feasibility.New()
	ws, err := svc.Check(m, feasibility.Request{
		StartCities:  []core.City{"A"},
		TargetCity:   "B",
		InitialState: "|0⟩",
		TargetState:  "|1⟩",
	})
	require.NoError(t, err)
	assert.Empty(t, ws)

	ws, err = svc.Check(m, feasibility.Request{
		StartCities:  []core.City{"A"},
		TargetCity:   "B",
		InitialState: "|0⟩",
		TargetState:  "|0⟩",
	})
	require.NoError(t, err)
	assert.Len(t, ws, 1)
}

func TestCheck_ShortestWitnessFirst(t *testing.T) {
	// Direct X route and a longer I-then-X detour both work; the witness
	// for the first path returned must be the direct one.
	m := core.NewMap()
	m.AddRoute("A", "B", gates(quantum.GateX), 1)
	m.AddRoute("A", "C", gates(quantum.GateI), 1)
	m.AddRoute("C", "B", gates(quantum.GateX), 1)

	svc := feasibility.New()
	ws, err := svc.Check(m, feasibility.Request{
		StartCities:  []core.City{"A"},
		TargetCity:   "B",
		InitialState: "|0⟩",
		TargetState:  "|1⟩",
	})
	require.NoError(t, err)
	require.Len(t, ws, 2, "one witness per feasible path")
	assert.Len(t, ws[0].Path, 1, "shortest path witnessed first")
	assert.Len(t, ws[1].Path, 2)
}

func TestCheck_MultiQubit_AllOrNothing(t *testing.T) {
	// Like the Bell board, but the GeorgiaTech leg offers I or H so that it
	// can independently realize |00⟩ → |Bell+⟩ (the per-city precondition
	// applies the same labels to every leg).
	m := core.NewMap()
	m.AddRoute("Princeton", "Carnegie", gates(quantum.GateH), 1)
	m.AddRoute("GeorgiaTech", "Carnegie", gates(quantum.GateI, quantum.GateH), 1)
	m.AddRoute("Carnegie", "UChicago", gates(quantum.GateCNOT), 1)

	svc := feasibility.New()
	req := feasibility.Request{
		StartCities:  []core.City{"Princeton", "GeorgiaTech"},
		TargetCity:   "UChicago",
		InitialState: "|00⟩",
		TargetState:  "|Bell+⟩",
	}
	ws, err := svc.Check(m, req)
	require.NoError(t, err)
	require.Len(t, ws, 2, "one witness per start city")
	assert.Equal(t, core.City("Princeton"), ws[0].StartCity)
	assert.Equal(t, core.City("GeorgiaTech"), ws[1].StartCity)
	assert.Equal(t, quantum.GateH, ws[1].Assignments[0].Gate,
		"the H option is what makes the GeorgiaTech leg work")

	// The plain Bell board fails the strict per-city precondition: the
	// GeorgiaTech leg alone (I then CNOT) leaves |00⟩ untouched.
	ws, err = svc.Check(buildBellBoard(t), req)
	require.NoError(t, err)
	assert.Empty(t, ws, "every start city must independently reach the target")
}

func TestCheck_Cancellation(t *testing.T) {
	m := buildBellBoard(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := feasibility.New(feasibility.WithContext(ctx))
	_, err := svc.Check(m, feasibility.Request{
		StartCities:  []core.City{"Princeton"},
		TargetCity:   "UChicago",
		InitialState: "|0⟩",
		TargetState:  "|1⟩",
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulateClaimed_BellScenario(t *testing.T) {
	// End-to-end: the three claimed routes of the Bell mission, in path
	// order, transform |00⟩ into |Bell+⟩.
	m := buildBellBoard(t)
	claimed := m.Routes() // r1: H, r2: I, r3: CNOT — already path-ordered

	svc := feasibility.New()
	res, err := svc.SimulateClaimed(claimed, "|00⟩", "|Bell+⟩")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []quantum.Gate{quantum.GateH, quantum.GateI, quantum.GateCNOT}, res.Sequence)
	assert.Equal(t, "0.707|00⟩ + 0.707|11⟩", res.Description)

	ok, err := res.Register.Matches("|Bell+⟩")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSimulateClaimed_ParallelOptionRecovered(t *testing.T) {
	// A claimed route offering X or H: the search must find the H choice
	// that reaches |+⟩.
	m := core.NewMap()
	id, err := m.AddRoute("A", "B", gates(quantum.GateX, quantum.GateH), 1)
	require.NoError(t, err)
	r, err := m.Route(id)
	require.NoError(t, err)

	svc := feasibility.New()
	res, err := svc.SimulateClaimed([]*core.Route{r}, "|0⟩", "|+⟩")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []quantum.Gate{quantum.GateH}, res.Sequence)
}

func TestSimulateClaimed_Failure(t *testing.T) {
	m := core.NewMap()
	id, _ := m.AddRoute("A", "B", gates(quantum.GateZ), 1)
	r, err := m.Route(id)
	require.NoError(t, err)

	svc := feasibility.New()
	res, err := svc.SimulateClaimed([]*core.Route{r}, "|0⟩", "|1⟩")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Empty(t, res.Sequence)
	require.NotNil(t, res.Register, "failure still reports the initial state")
	assert.Equal(t, "1.000|0⟩", res.Description)
}

func TestSimulateClaimed_Validation(t *testing.T) {
	svc := feasibility.New()

	_, err := svc.SimulateClaimed(nil, "|0⟩", "|1⟩")
	assert.ErrorIs(t, err, feasibility.ErrNoRoutes)

	m := core.NewMap()
	id, _ := m.AddRoute("A", "B", gates(quantum.GateX), 1)
	r, _ := m.Route(id)
	_, err = svc.SimulateClaimed([]*core.Route{r}, "|0⟩", "|Huh⟩")
	assert.ErrorIs(t, err, quantum.ErrUnknownState)
}

func TestCheck_FaultyCombinationSkipped(t *testing.T) {
	// A route carrying an out-of-catalog gate value alongside X: the bad
	// combination fails locally and the search continues to the X choice.
	m := core.NewMap()
	m.AddRoute("A", "B", []quantum.Gate{quantum.Gate(97), quantum.GateX}, 1)

	svc := feasibility.New()
	ws, err := svc.Check(m, feasibility.Request{
		StartCities:  []core.City{"A"},
		TargetCity:   "B",
		InitialState: "|0⟩",
		TargetState:  "|1⟩",
	})
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.Equal(t, quantum.GateX, ws[0].Assignments[0].Gate)
}
