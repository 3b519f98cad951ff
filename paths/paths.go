package paths

import (
	"errors"
	"fmt"

	"github.com/ketlab/kettoride/core"
)

// walker encapsulates state during one enumeration.
type walker struct {
	m       *core.Map
	target  core.City
	opts    Options
	visited map[core.City]bool // scoped to the current DFS branch
	trail   Path               // routes taken so far
	found   []Path
}

// Enumerate returns every simple path from start to target with at most
// MaxDepth routes, in depth-first discovery order. Disconnected endpoints
// produce an empty slice and a nil error. When an OnPath hook stops the
// search via ErrStop, the paths discovered so far are returned.
func Enumerate(m *core.Map, start, target core.City, opts ...Option) ([]Path, error) {
	// 1. Validate the board
	if m == nil {
		return nil, ErrMapNil
	}

	// 2. Apply options
	popts := DefaultOptions()
	for _, fn := range opts {
		fn(&popts)
	}

	// 3. Both endpoints must exist
	for _, c := range []core.City{start, target} {
		if !m.HasCity(c) {
			return nil, fmt.Errorf("%w: %q", core.ErrCityNotFound, c)
		}
	}

	// 4. A path is never empty: identical endpoints yield nothing
	if start == target {
		return nil, nil
	}

	w := &walker{
		m:       m,
		target:  target,
		opts:    popts,
		visited: make(map[core.City]bool),
	}

	// 5. Depth-first enumeration
	if err := w.explore(start, 0); err != nil {
		if errors.Is(err, ErrStop) {
			return w.found, nil
		}

		return nil, err
	}

	return w.found, nil
}

// explore extends the current trail from city at the given depth.
// The visited set is branch-scoped: cities are released on backtrack so
// disjoint alternatives through the same city are all discovered.
func (w *walker) explore(city core.City, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth bound: no room for another route
	if depth >= w.opts.MaxDepth {
		return nil
	}

	w.visited[city] = true
	defer delete(w.visited, city)

	// 3. Try every incident route in deterministic order
	nbs, err := w.m.Neighbors(city)
	if err != nil {
		return fmt.Errorf("paths: neighbors of %q: %w", city, err)
	}
	for _, r := range nbs {
		next, ok := r.Other(city)
		if !ok || w.visited[next] {
			continue
		}

		w.trail = append(w.trail, r)

		// 4. Emit on arrival, otherwise recurse
		if next == w.target {
			if err = w.emit(); err != nil {
				return err
			}
		} else if err = w.explore(next, depth+1); err != nil {
			return err
		}

		w.trail = w.trail[:len(w.trail)-1]
	}

	return nil
}

// emit records a copy of the current trail and feeds the streaming hook.
func (w *walker) emit() error {
	p := make(Path, len(w.trail))
	copy(p, w.trail)
	w.found = append(w.found, p)

	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(p); err != nil {
			if errors.Is(err, ErrStop) {
				return ErrStop
			}

			return fmt.Errorf("paths: OnPath hook: %w", err)
		}
	}

	return nil
}
