package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/ketlab/kettoride/core"
	"github.com/ketlab/kettoride/feasibility"
	"github.com/ketlab/kettoride/quantum"
)

// DefaultAttempts bounds the generate-and-test loop of GenerateMission.
const DefaultAttempts = 64

// Mission scoring: a base award plus a per-route bonus along the proving
// witness, doubled for superposed or entangled targets.
const (
	missionBasePoints   = 5
	missionStepBonus    = 2
	entangledMultiplier = 2
)

// AuthorOption configures GenerateMission.
type AuthorOption func(*AuthorOptions)

// AuthorOptions holds configurable mission-authoring parameters.
type AuthorOptions struct {
	// Attempts bounds candidate sampling; defaults to DefaultAttempts.
	Attempts int

	// Widths are the qubit counts to sample from; defaults to {1, 2}.
	// Three-qubit missions are legal but rarely provable on small boards.
	Widths []int

	// Service proves candidates; defaults to a fresh default service.
	Service *feasibility.Service
}

// DefaultAuthorOptions returns the authoring defaults.
func DefaultAuthorOptions() AuthorOptions {
	return AuthorOptions{
		Attempts: DefaultAttempts,
		Widths:   []int{1, 2},
		Service:  feasibility.New(),
	}
}

// WithAttempts returns an AuthorOption overriding the attempt budget.
// Non-positive budgets are ignored.
func WithAttempts(n int) AuthorOption {
	return func(o *AuthorOptions) {
		if n > 0 {
			o.Attempts = n
		}
	}
}

// WithWidths returns an AuthorOption restricting candidate qubit counts.
// An empty list has no effect.
func WithWidths(ws ...int) AuthorOption {
	return func(o *AuthorOptions) {
		if len(ws) > 0 {
			o.Widths = ws
		}
	}
}

// WithService returns an AuthorOption supplying the proving service.
// A nil service has no effect.
func WithService(svc *feasibility.Service) AuthorOption {
	return func(o *AuthorOptions) {
		if svc != nil {
			o.Service = svc
		}
	}
}

// GenerateMission authors one provably-feasible mission by generate and
// test: sample a candidate (start cities, target city, target state),
// prove it with the feasibility service, resample on failure. The ground
// state |0..0⟩ is always the initial state. Points reflect the proving
// witness: longer paths and entangled targets score higher.
//
// Returns ErrNoFeasibleMission when the attempt budget runs out; on rich
// boards with the default budget this is effectively unreachable.
func GenerateMission(m *core.Map, rng *rand.Rand, opts ...AuthorOption) (*Mission, error) {
	if m == nil {
		return nil, core.ErrMapNil
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	o := DefaultAuthorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cities := m.Cities()
	for attempt := 0; attempt < o.Attempts; attempt++ {
		// 1. Sample a width the board can host
		n := o.Widths[rng.Intn(len(o.Widths))]
		if n < quantum.MinQubits || n > quantum.MaxQubits || len(cities) < n+1 {
			continue
		}

		// 2. Sample distinct cities: one target, n starts
		perm := rng.Perm(len(cities))
		target := cities[perm[0]]
		starts := make([]core.City, n)
		for i := range starts {
			starts[i] = cities[perm[1+i]]
		}

		// 3. Sample a goal state other than the ground state
		initial := groundLabel(n)
		goals := candidateGoals(n, initial)
		goal := goals[rng.Intn(len(goals))]

		ms, err := NewMission(starts, target, initial, goal, 0)
		if err != nil {
			continue
		}

		// 4. Prove it; discard unprovable candidates
		ws, err := o.Service.Check(m, ms.Request())
		if err != nil || len(ws) == 0 {
			continue
		}

		ms.Points = MissionPoints(goal, len(ws[0].Path))

		return ms, nil
	}

	return nil, ErrNoFeasibleMission
}

func groundLabel(n int) string {
	return "|" + strings.Repeat("0", n) + "⟩"
}

func candidateGoals(n int, initial string) []string {
	var out []string
	for _, label := range quantum.KnownStates(n) {
		if label != initial {
			out = append(out, label)
		}
	}

	return out
}

// MissionPoints scores a mission from its proving witness: a base award
// plus a bonus per route, doubled when the goal is superposed or entangled.
func MissionPoints(goal string, witnessLen int) int {
	pts := missionBasePoints + missionStepBonus*witnessLen
	if sup, err := quantum.Superposed(goal); err == nil && sup {
		pts *= entangledMultiplier
	}

	return pts
}
