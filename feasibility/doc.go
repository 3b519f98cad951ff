// Package feasibility decides whether a mission's quantum transformation is
// achievable on the board, and verifies it against a player's actually
// claimed routes.
//
// Two layers:
//
//   - Combinations(path, fn): explicit Cartesian-product enumeration of
//     per-route gate choices along one path. Each combination yields the
//     flat gate sequence (every chosen gate repeated by its route length)
//     plus the per-route assignment for traceability. The callback can
//     short-circuit at the first success — combinations are produced one at
//     a time, never materialized eagerly.
//
//   - Service: orchestrates path enumeration and combination search.
//     Check answers "is this mission achievable" and returns witnesses
//     (path + gate assignment); SimulateClaimed replays the routes a player
//     actually claimed at mission-completion time.
//
// Search-exhaustion is not an error: an infeasible mission yields an empty
// witness list, a failed completion check yields Success == false. A gate
// application fault inside one combination marks that combination as a
// non-match and the search continues.
//
// Witness selection is first-found over paths ordered shortest-first, so
// returned witnesses favor short paths without paying for full ranking.
package feasibility
