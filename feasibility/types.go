// Package feasibility defines witnesses, requests, results, sentinel
// errors, and service options.
package feasibility

import (
	"context"
	"errors"

	"github.com/ketlab/kettoride/core"
	"github.com/ketlab/kettoride/paths"
	"github.com/ketlab/kettoride/quantum"
)

var (
	// ErrNoStartCities indicates a request without any start city.
	ErrNoStartCities = errors.New("feasibility: no start cities")

	// ErrNoTargetCity indicates a request without a target city.
	ErrNoTargetCity = errors.New("feasibility: no target city")

	// ErrNoRoutes indicates a completion check against an empty claim set.
	ErrNoRoutes = errors.New("feasibility: no claimed routes")
)

// Request describes one mission-shaped feasibility question: one start city
// per qubit, a shared target city, and the state transformation to realize.
type Request struct {
	StartCities  []core.City
	TargetCity   core.City
	InitialState string
	TargetState  string
}

// Assignment is one concrete gate choice on one route of a path.
type Assignment struct {
	RouteID string
	Gate    quantum.Gate
	Length  int
}

// Witness is a concrete demonstration that a transformation is achievable:
// a path from one start city plus the gate assignment that realizes it.
type Witness struct {
	StartCity   core.City
	Path        paths.Path
	Assignments []Assignment
	Sequence    []quantum.Gate
	Description string // final-state rendering, for authoring diagnostics
}

// Result is the outcome of a mission-completion simulation.
type Result struct {
	// Success reports whether any gate combination over the claimed routes
	// reached the target state.
	Success bool

	// Register is the final register of the successful combination, or the
	// freshly prepared initial register when Success is false.
	Register *quantum.Register

	// Sequence is the flat gate sequence of the successful combination;
	// empty when Success is false.
	Sequence []quantum.Gate

	// Description renders Register for player feedback.
	Description string
}

// Option configures a Service.
type Option func(*Options)

// Options holds configurable Service parameters.
type Options struct {
	// Ctx cancels long-running searches; defaults to context.Background().
	Ctx context.Context

	// MaxDepth bounds enumerated paths; defaults to paths.DefaultMaxDepth.
	MaxDepth int

	// Tolerance is the fidelity slack for target matching; defaults to
	// quantum.DefaultTolerance.
	Tolerance float64
}

// DefaultOptions returns the Service defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDepth:  paths.DefaultMaxDepth,
		Tolerance: quantum.DefaultTolerance,
	}
}

// WithContext returns an Option that sets the cancellation context.
// A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option overriding the path depth bound.
// Non-positive limits are ignored.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit > 0 {
			o.MaxDepth = limit
		}
	}
}

// WithTolerance returns an Option overriding the fidelity slack.
// Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}
