package feasibility

import (
	"fmt"

	"github.com/ketlab/kettoride/paths"
	"github.com/ketlab/kettoride/quantum"
)

// Combinations enumerates every per-route gate choice along the path — the
// Cartesian product over each route's gate options, ∏|gates_i| combinations
// in total — and invokes fn with the flat gate sequence (each chosen gate
// repeated by its route's length) and the per-route assignment.
//
// fn returning stop == true ends enumeration early (first-found semantics);
// a non-nil error aborts with that error. The seq and asg slices are reused
// between calls: copy them to retain them.
//
// An empty path invokes fn exactly once with empty slices: claiming nothing
// applies no gates.
func Combinations(p paths.Path, fn func(seq []quantum.Gate, asg []Assignment) (stop bool, err error)) error {
	// 1. Validate the per-route option sets
	for _, r := range p {
		if len(r.Gates) == 0 {
			return fmt.Errorf("feasibility: route %q: no gate options", r.ID)
		}
	}

	// 2. Pre-size the shared buffers
	var total int
	for _, r := range p {
		total += r.Length
	}
	seq := make([]quantum.Gate, 0, total)
	asg := make([]Assignment, len(p))

	// 3. Odometer over per-route option indices
	choice := make([]int, len(p))
	for {
		// 3a. Materialize this combination into the shared buffers
		seq = seq[:0]
		for i, r := range p {
			g := r.Gates[choice[i]]
			asg[i] = Assignment{RouteID: r.ID, Gate: g, Length: r.Length}
			for k := 0; k < r.Length; k++ {
				seq = append(seq, g)
			}
		}

		// 3b. Hand it to the caller
		stop, err := fn(seq, asg)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}

		// 3c. Advance the odometer; carry right-to-left
		i := len(p) - 1
		for ; i >= 0; i-- {
			choice[i]++
			if choice[i] < len(p[i].Gates) {
				break
			}
			choice[i] = 0
		}
		if i < 0 {
			return nil // odometer wrapped: product exhausted
		}
	}
}
