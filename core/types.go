// This file declares City, Route, Map, sentinel errors, and the NewMap
// constructor. Methods live in map.go.
package core

import (
	"errors"
	"sync"

	"github.com/ketlab/kettoride/quantum"
)

// Sentinel errors for board operations.
var (
	// ErrMapNil is returned when a nil *Map is passed to a consumer.
	ErrMapNil = errors.New("core: map is nil")

	// ErrEmptyCityID indicates an empty city identifier.
	ErrEmptyCityID = errors.New("core: city ID is empty")

	// ErrCityNotFound indicates an operation referenced a non-existent city.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrRouteNotFound indicates an operation referenced a non-existent route.
	ErrRouteNotFound = errors.New("core: route not found")

	// ErrBadLength indicates a route length that is not a positive integer.
	ErrBadLength = errors.New("core: route length must be positive")

	// ErrNoGates indicates a route with an empty gate-option set.
	ErrNoGates = errors.New("core: route offers no gates")

	// ErrSelfLoop indicates a route from a city to itself.
	ErrSelfLoop = errors.New("core: self-loop route not allowed")

	// ErrAlreadyClaimed indicates a claim on a route another player holds.
	ErrAlreadyClaimed = errors.New("core: route already claimed")
)

// City identifies a vertex of the board. The game uses university names.
type City = string

// Route represents one claimable connection between two cities.
//
// A route is an undirected edge for path purposes. Gates holds the gate
// options the route can be claimed under: one element for a simple route,
// several for a "parallel options" route. Length is the card cost and the
// number of times the chosen gate is applied in sequence during simulation.
type Route struct {
	// ID uniquely identifies this route within its Map.
	ID string

	// From and To are the endpoint city IDs. Orientation carries no meaning.
	From City
	To   City

	// Gates are the candidate gate labels, in declaration order.
	Gates []quantum.Gate

	// Length is the claim cost; the chosen gate is applied Length times.
	Length int

	// ClaimedBy is the owning player's ID, or empty while unclaimed.
	ClaimedBy string
}

// Other returns the endpoint opposite to the given city, and whether the
// route touches that city at all.
func (r *Route) Other(c City) (City, bool) {
	switch c {
	case r.From:
		return r.To, true
	case r.To:
		return r.From, true
	default:
		return "", false
	}
}

// Claimed reports whether the route is currently owned by any player.
func (r *Route) Claimed() bool { return r.ClaimedBy != "" }

// Map is the in-memory board: a catalog of cities and undirected routes
// with mirrored adjacency. One RWMutex guards all state; feasibility
// searches take only read locks.
type Map struct {
	mu sync.RWMutex

	nextRouteID uint64             // route ID generator
	cities      map[City]struct{}  // city ID → presence
	routes      map[string]*Route  // route ID → Route
	adjacency   map[City][]string  // city ID → incident route IDs
}

// NewMap creates an empty board.
// Complexity: O(1).
func NewMap() *Map {
	return &Map{
		cities:    make(map[City]struct{}),
		routes:    make(map[string]*Route),
		adjacency: make(map[City][]string),
	}
}
