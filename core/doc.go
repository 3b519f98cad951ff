// Package core defines the central Map, City, and Route types of the
// Ket to Ride board: cities are graph vertices, routes are undirected,
// gate-labeled edges with a card-cost length and a claim state.
//
// All Map APIs are guarded by a single sync.RWMutex, so the game layer can
// mutate claim state while read-heavy feasibility searches run elsewhere.
// The search packages (paths, feasibility) only ever read; claiming and
// releasing routes is the game layer's job.
//
// Determinism: Cities() returns IDs sorted lexicographically, Routes() and
// Neighbors() return routes sorted by Route.ID, so enumeration order — and
// therefore witness selection — is reproducible across runs.
//
// Errors:
//
//	ErrMapNil          - nil *Map passed to a consumer.
//	ErrEmptyCityID     - city ID is the empty string.
//	ErrCityNotFound    - requested city does not exist.
//	ErrRouteNotFound   - requested route does not exist.
//	ErrBadLength       - route length is not positive.
//	ErrNoGates         - route offers no gate option.
//	ErrSelfLoop        - route endpoints are the same city.
//	ErrAlreadyClaimed  - route is already claimed by another player.
package core
