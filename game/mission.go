package game

import (
	"fmt"

	"github.com/ketlab/kettoride/core"
	"github.com/ketlab/kettoride/feasibility"
	"github.com/ketlab/kettoride/quantum"
)

// Mission is one objective card: transform InitialState into TargetState by
// routing every start city to the target city over claimed routes.
type Mission struct {
	// StartCities lists one city per qubit, all distinct.
	StartCities []core.City

	// TargetCity is where all qubit paths converge.
	TargetCity core.City

	// InitialState and TargetState are catalog labels of equal qubit count.
	InitialState string
	TargetState  string

	// Points is awarded on completion.
	Points int

	// Completed is set by State.CheckMission once proven.
	Completed bool
}

// NewMission validates and constructs a mission.
//
// Both state labels must resolve in the catalog, imply the same qubit
// count, and the start-city list must name exactly one distinct city per
// qubit. Violations surface as quantum.ErrUnknownState,
// quantum.ErrQubitMismatch, or ErrQubitCountMismatch; they are never
// deferred to play time.
func NewMission(starts []core.City, target core.City, initial, goal string, points int) (*Mission, error) {
	// 1. Resolve both labels; unknown labels fail here, not mid-game
	nIn, err := quantum.QubitsFor(initial)
	if err != nil {
		return nil, err
	}
	nOut, err := quantum.QubitsFor(goal)
	if err != nil {
		return nil, err
	}
	if nIn != nOut {
		return nil, fmt.Errorf("%w: %q is %d-qubit, %q is %d-qubit",
			quantum.ErrQubitMismatch, initial, nIn, goal, nOut)
	}

	// 2. One distinct start city per qubit
	if target == "" {
		return nil, core.ErrEmptyCityID
	}
	if len(starts) != nIn {
		return nil, fmt.Errorf("%w: %d start cities for a %d-qubit state",
			ErrQubitCountMismatch, len(starts), nIn)
	}
	seen := make(map[core.City]struct{}, len(starts))
	for _, c := range starts {
		if c == "" {
			return nil, core.ErrEmptyCityID
		}
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("%w: duplicate start city %q", ErrQubitCountMismatch, c)
		}
		seen[c] = struct{}{}
	}

	return &Mission{
		StartCities:  append([]core.City(nil), starts...),
		TargetCity:   target,
		InitialState: initial,
		TargetState:  goal,
		Points:       points,
	}, nil
}

// Qubits returns the qubit count both state labels agree on.
func (m *Mission) Qubits() int {
	n, _ := quantum.QubitsFor(m.InitialState)

	return n
}

// Request shapes the mission as a feasibility question.
func (m *Mission) Request() feasibility.Request {
	return feasibility.Request{
		StartCities:  m.StartCities,
		TargetCity:   m.TargetCity,
		InitialState: m.InitialState,
		TargetState:  m.TargetState,
	}
}
