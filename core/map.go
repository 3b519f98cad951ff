// This file implements Map mutation and query methods: city and route
// registration, deterministic adjacency queries, claim bookkeeping, cloning,
// and stats. Locking: every exported method takes m.mu itself; unexported
// helpers assume the caller holds it.
package core

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ketlab/kettoride/quantum"
)

// AddCity registers a city. Adding an existing city is a no-op.
// Returns ErrEmptyCityID for the empty string.
func (m *Map) AddCity(id City) error {
	if id == "" {
		return ErrEmptyCityID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.cities[id]; !ok {
		m.cities[id] = struct{}{}
		m.adjacency[id] = nil
	}

	return nil
}

// HasCity reports whether a city exists.
func (m *Map) HasCity(id City) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.cities[id]

	return ok
}

// AddRoute registers an undirected route between two cities and returns its
// generated ID. Unknown endpoint cities are registered implicitly. Parallel
// routes between the same endpoints are allowed (they are distinct claims).
//
// Validation:
//   - both endpoints non-empty (ErrEmptyCityID)
//   - endpoints differ (ErrSelfLoop)
//   - length positive (ErrBadLength)
//   - at least one gate option (ErrNoGates)
func (m *Map) AddRoute(from, to City, gates []quantum.Gate, length int) (string, error) {
	// 1. Validate endpoints and attributes
	if from == "" || to == "" {
		return "", ErrEmptyCityID
	}
	if from == to {
		return "", fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if length <= 0 {
		return "", fmt.Errorf("%w: got %d", ErrBadLength, length)
	}
	if len(gates) == 0 {
		return "", ErrNoGates
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 2. Implicitly register endpoints
	for _, c := range []City{from, to} {
		if _, ok := m.cities[c]; !ok {
			m.cities[c] = struct{}{}
			m.adjacency[c] = nil
		}
	}

	// 3. Allocate the route with a copied gate slice
	m.nextRouteID++
	id := "r" + strconv.FormatUint(m.nextRouteID, 10)
	r := &Route{
		ID:     id,
		From:   from,
		To:     to,
		Gates:  append([]quantum.Gate(nil), gates...),
		Length: length,
	}
	m.routes[id] = r

	// 4. Mirror adjacency on both endpoints
	m.adjacency[from] = append(m.adjacency[from], id)
	m.adjacency[to] = append(m.adjacency[to], id)

	return id, nil
}

// Route returns the route with the given ID.
func (m *Map) Route(id string) (*Route, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.routes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRouteNotFound, id)
	}

	return r, nil
}

// Cities returns all city IDs sorted lexicographically.
func (m *Map) Cities() []City {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]City, 0, len(m.cities))
	for c := range m.cities {
		out = append(out, c)
	}
	sort.Strings(out)

	return out
}

// Routes returns all routes sorted by Route.ID.
func (m *Map) Routes() []*Route {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Route, 0, len(m.routes))
	for _, r := range m.routes {
		out = append(out, r)
	}
	sortRoutes(out)

	return out
}

// Neighbors returns the routes incident to the given city, sorted by
// Route.ID for deterministic traversal order.
//
// Errors:
//   - ErrEmptyCityID: if id == "".
//   - ErrCityNotFound: if the city does not exist.
func (m *Map) Neighbors(id City) ([]*Route, error) {
	if id == "" {
		return nil, ErrEmptyCityID
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.cities[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrCityNotFound, id)
	}

	ids := m.adjacency[id]
	out := make([]*Route, 0, len(ids))
	for _, rid := range ids {
		out = append(out, m.routes[rid])
	}
	sortRoutes(out)

	return out, nil
}

// Claim marks a route as owned by the given player. Claiming a route the
// same player already holds is a no-op; claiming another player's route
// fails with ErrAlreadyClaimed.
func (m *Map) Claim(routeID, playerID string) error {
	if playerID == "" {
		return fmt.Errorf("core: empty player ID")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.routes[routeID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRouteNotFound, routeID)
	}
	if r.ClaimedBy != "" && r.ClaimedBy != playerID {
		return fmt.Errorf("%w: %q held by %q", ErrAlreadyClaimed, routeID, r.ClaimedBy)
	}
	r.ClaimedBy = playerID

	return nil
}

// Release clears a route's claim state.
func (m *Map) Release(routeID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.routes[routeID]
	if !ok {
		return fmt.Errorf("%w: %q", ErrRouteNotFound, routeID)
	}
	r.ClaimedBy = ""

	return nil
}

// ClaimedBy returns the routes currently held by the given player,
// sorted by Route.ID.
func (m *Map) ClaimedBy(playerID string) []*Route {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*Route
	for _, r := range m.routes {
		if r.ClaimedBy == playerID {
			out = append(out, r)
		}
	}
	sortRoutes(out)

	return out
}

// Clone returns a deep copy of the board, including claim state.
// Useful for what-if searches that must not observe live mutations.
func (m *Map) Clone() *Map {
	m.mu.RLock()
	defer m.mu.RUnlock()

	c := NewMap()
	c.nextRouteID = m.nextRouteID
	for id := range m.cities {
		c.cities[id] = struct{}{}
	}
	for id, r := range m.routes {
		cp := *r
		cp.Gates = append([]quantum.Gate(nil), r.Gates...)
		c.routes[id] = &cp
	}
	for id, ids := range m.adjacency {
		c.adjacency[id] = append([]string(nil), ids...)
	}

	return c
}

// MapStats is a read-only snapshot of board size and claim counts.
type MapStats struct {
	CityCount    int
	RouteCount   int
	ClaimedCount int
}

// Stats produces a deterministic snapshot of board counters.
// Complexity: O(E).
func (m *Map) Stats() MapStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := MapStats{CityCount: len(m.cities), RouteCount: len(m.routes)}
	for _, r := range m.routes {
		if r.ClaimedBy != "" {
			st.ClaimedCount++
		}
	}

	return st
}

// sortRoutes orders routes by ID ascending. Route IDs are "r<counter>", so
// numeric suffixes are compared by length first to keep insertion order.
func sortRoutes(rs []*Route) {
	sort.Slice(rs, func(i, j int) bool {
		a, b := rs[i].ID, rs[j].ID
		if len(a) != len(b) {
			return len(a) < len(b)
		}

		return a < b
	})
}
