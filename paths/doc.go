// Package paths implements depth-bounded exhaustive enumeration of simple
// paths between two cities on a core.Map.
//
// Key features:
//   - Enumerate(m, start, target, opts...): every simple path of at most
//     MaxDepth routes (default 6), via depth-first search with a visited set
//     scoped to the current branch, so disjoint alternatives are all found
//   - Streaming: WithOnPath(fn) delivers each path as it is discovered;
//     returning ErrStop ends enumeration early without error
//   - Cancellation via context.Context (WithContext)
//
// A path never repeats a city and is never empty; start == target yields no
// paths. Disconnected endpoints yield an empty result, not an error — "no
// path" is an expected outcome during mission generation.
//
// Complexity is exponential in the branching factor within the depth bound.
// That is an accepted cost: the board has tens of cities, and enumeration
// runs only at mission-authoring and mission-completion time.
//
// Errors:
//
//   - ErrMapNil             if m is nil.
//   - core.ErrCityNotFound  if start or target is missing.
//   - context.Canceled      if ctx is done.
//   - any non-ErrStop error returned by OnPath.
package paths
