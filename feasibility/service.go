package feasibility

import (
	"fmt"
	"sort"

	"github.com/ketlab/kettoride/core"
	"github.com/ketlab/kettoride/paths"
	"github.com/ketlab/kettoride/quantum"
)

// Service orchestrates path enumeration and gate-combination search.
// A Service is stateless between calls and safe for concurrent use;
// every invocation constructs and discards its own registers.
type Service struct {
	opts Options
}

// New creates a Service with the given options.
func New(opts ...Option) *Service {
	sopts := DefaultOptions()
	for _, fn := range opts {
		fn(&sopts)
	}

	return &Service{opts: sopts}
}

// Check decides whether the requested transformation is achievable and
// returns witnesses demonstrating it.
//
// Single start city: every path from that city is searched; each feasible
// path contributes one witness (its first successful gate combination).
//
// Multiple start cities (one per qubit): every start city must
// independently have at least one feasible path; the result is one witness
// per start city, or empty if any city fails — all or nothing.
//
// Infeasibility is an expected outcome, reported as an empty slice with a
// nil error. Errors are reserved for malformed requests and bad labels.
func (s *Service) Check(m *core.Map, req Request) ([]Witness, error) {
	// 1. Validate the request shape
	if m == nil {
		return nil, core.ErrMapNil
	}
	if len(req.StartCities) == 0 {
		return nil, ErrNoStartCities
	}
	if req.TargetCity == "" {
		return nil, ErrNoTargetCity
	}

	// 2. Resolve and cross-check the state labels up front, so label errors
	// surface here rather than disappearing inside the combination search.
	if err := validateStates(req.InitialState, req.TargetState); err != nil {
		return nil, err
	}

	// 3. Per-start-city search
	multi := len(req.StartCities) > 1
	var witnesses []Witness
	for _, start := range req.StartCities {
		found, err := paths.Enumerate(m, start, req.TargetCity,
			paths.WithContext(s.opts.Ctx),
			paths.WithMaxDepth(s.opts.MaxDepth),
		)
		if err != nil {
			return nil, err
		}

		// Shortest paths first: first-found witnesses favor short paths.
		sort.SliceStable(found, func(i, j int) bool { return len(found[i]) < len(found[j]) })

		cityWitnesses, err := s.searchPaths(start, found, req, multi)
		if err != nil {
			return nil, err
		}
		if multi && len(cityWitnesses) == 0 {
			return nil, nil // one qubit cannot reach the target: mission infeasible
		}
		witnesses = append(witnesses, cityWitnesses...)
	}

	return witnesses, nil
}

// searchPaths runs the combination search over each path. In multi mode it
// stops at the first feasible path; in single mode it collects one witness
// per feasible path.
func (s *Service) searchPaths(start core.City, found []paths.Path, req Request, multi bool) ([]Witness, error) {
	var witnesses []Witness
	for _, p := range found {
		w, ok, err := s.searchPath(start, p, req)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		witnesses = append(witnesses, w)
		if multi {
			break
		}
	}

	return witnesses, nil
}

// searchPath tries every gate combination on one path, short-circuiting at
// the first sequence that reaches the target.
func (s *Service) searchPath(start core.City, p paths.Path, req Request) (Witness, bool, error) {
	var witness Witness
	var matched bool

	err := Combinations(p, func(seq []quantum.Gate, asg []Assignment) (bool, error) {
		// Cancellation check between combinations
		select {
		case <-s.opts.Ctx.Done():
			return false, s.opts.Ctx.Err()
		default:
		}

		reg, ok := s.simulate(seq, req.InitialState, req.TargetState)
		if !ok {
			return false, nil
		}

		matched = true
		witness = Witness{
			StartCity:   start,
			Path:        p,
			Assignments: append([]Assignment(nil), asg...),
			Sequence:    append([]quantum.Gate(nil), seq...),
			Description: reg.Describe(),
		}

		return true, nil
	})
	if err != nil {
		return Witness{}, false, err
	}

	return witness, matched, nil
}

// simulate runs one flat gate sequence from the initial state and checks it
// against the target. Any simulation fault marks the combination as a
// non-match; the search continues with the next combination.
func (s *Service) simulate(seq []quantum.Gate, initial, target string) (*quantum.Register, bool) {
	reg, err := quantum.NewRegister(initial)
	if err != nil {
		return nil, false
	}
	if err = reg.ApplyAll(seq); err != nil {
		return nil, false
	}
	ok, err := reg.Matches(target, quantum.WithTolerance(s.opts.Tolerance))
	if err != nil || !ok {
		return nil, false
	}

	return reg, true
}

// SimulateClaimed replays a player's actually claimed routes at
// mission-completion time: the Cartesian product of the claimed routes'
// gate options is searched, in the order the routes are given, and the
// check succeeds if any combination reaches the target state.
//
// On failure the returned Result carries the freshly prepared initial
// register so callers can still render player feedback.
func (s *Service) SimulateClaimed(claimed []*core.Route, initial, target string) (Result, error) {
	// 1. Validate inputs
	if len(claimed) == 0 {
		return Result{}, ErrNoRoutes
	}
	if err := validateStates(initial, target); err != nil {
		return Result{}, err
	}

	// 2. Search the (small) claimed-route product
	var res Result
	err := Combinations(paths.Path(claimed), func(seq []quantum.Gate, _ []Assignment) (bool, error) {
		select {
		case <-s.opts.Ctx.Done():
			return false, s.opts.Ctx.Err()
		default:
		}

		reg, ok := s.simulate(seq, initial, target)
		if !ok {
			return false, nil
		}
		res = Result{
			Success:     true,
			Register:    reg,
			Sequence:    append([]quantum.Gate(nil), seq...),
			Description: reg.Describe(),
		}

		return true, nil
	})
	if err != nil {
		return Result{}, err
	}
	if res.Success {
		return res, nil
	}

	// 3. No combination matched: report the initial state for feedback
	reg, err := quantum.NewRegister(initial)
	if err != nil {
		return Result{}, err
	}
	res = Result{Register: reg, Description: reg.Describe()}

	return res, nil
}

// validateStates resolves both labels and requires them to agree on width.
func validateStates(initial, target string) error {
	ni, err := quantum.QubitsFor(initial)
	if err != nil {
		return err
	}
	nt, err := quantum.QubitsFor(target)
	if err != nil {
		return err
	}
	if ni != nt {
		return fmt.Errorf("%w: initial %q implies %d qubits, target %q implies %d",
			quantum.ErrQubitMismatch, initial, ni, target, nt)
	}

	return nil
}
