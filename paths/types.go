// Package paths defines the Path type and options for simple-path
// enumeration: depth limiting, cancellation, and streaming hooks.
package paths

import (
	"context"
	"errors"

	"github.com/ketlab/kettoride/core"
)

// DefaultMaxDepth bounds a path to six routes, keeping enumeration
// tractable on cyclic boards.
const DefaultMaxDepth = 6

var (
	// ErrMapNil is returned when a nil *core.Map is passed to Enumerate.
	ErrMapNil = errors.New("paths: map is nil")

	// ErrStop signals, from an OnPath hook, that enumeration should end
	// early with the paths collected so far and no error.
	ErrStop = errors.New("paths: stop enumeration")
)

// Path is an ordered list of routes connecting a start city to a target
// city with no repeated city.
type Path []*core.Route

// Cost returns the total card cost (sum of route lengths) of the path.
func (p Path) Cost() int {
	var total int
	for _, r := range p {
		total += r.Length
	}

	return total
}

// Option configures optional behavior of Enumerate.
type Option func(*Options)

// Options holds configurable parameters for path enumeration.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxDepth limits paths to at most this many routes. Default 6.
	MaxDepth int

	// OnPath, if non-nil, is invoked for each discovered path in discovery
	// order. Returning ErrStop ends enumeration early without error; any
	// other error aborts with that error. The Path slice is only valid for
	// the duration of the call; copy it to retain it.
	OnPath func(p Path) error
}

// DefaultOptions returns Options with a background context, the default
// depth bound, and no streaming hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: DefaultMaxDepth,
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

// WithMaxDepth returns an Option that overrides the path depth bound.
// Non-positive limits are ignored.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit > 0 {
			o.MaxDepth = limit
		}
	}
}

// WithOnPath returns an Option that installs fn as a streaming hook.
func WithOnPath(fn func(p Path) error) Option {
	return func(o *Options) {
		o.OnPath = fn
	}
}
