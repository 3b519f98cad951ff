// This file declares the game sentinels and the NewState option set.
package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/ketlab/kettoride/feasibility"
)

// DefaultHandSize is the number of gate cards dealt to a joining player.
const DefaultHandSize = 5

var (
	// ErrQubitCountMismatch indicates a mission whose start-city list does
	// not provide exactly one distinct city per qubit of its states.
	ErrQubitCountMismatch = errors.New("game: start city count must equal qubit count")

	// ErrNoPlayers indicates a turn operation on a game nobody joined.
	ErrNoPlayers = errors.New("game: no players")

	// ErrPlayerNotFound indicates an operation for an unknown player ID.
	ErrPlayerNotFound = errors.New("game: player not found")

	// ErrInsufficientCards indicates a claim the player's hand cannot pay.
	ErrInsufficientCards = errors.New("game: not enough gate cards")

	// ErrGateNotOffered indicates a claim under a gate the route does not offer.
	ErrGateNotOffered = errors.New("game: gate not offered by route")

	// ErrGameOver indicates an action after a winner was decided.
	ErrGameOver = errors.New("game: game is over")

	// ErrNoFeasibleMission indicates authoring exhausted its attempt budget.
	ErrNoFeasibleMission = errors.New("game: no feasible mission found")
)

// Option configures a State.
type Option func(*Options)

// Options holds configurable State parameters.
type Options struct {
	// Logger receives game diagnostics; defaults to a no-op logger.
	Logger zerolog.Logger

	// Rand drives deck shuffles; defaults to a time-seeded source.
	Rand *rand.Rand

	// HandSize is the initial deal per player; defaults to DefaultHandSize.
	HandSize int

	// Feasibility configures the mission-check service.
	Feasibility []feasibility.Option
}

// DefaultOptions returns the State defaults.
func DefaultOptions() Options {
	return Options{
		Logger:   zerolog.Nop(),
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		HandSize: DefaultHandSize,
	}
}

// WithLogger returns an Option that sets the game logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithRand returns an Option that sets the shuffle source.
// A nil source has no effect.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithHandSize returns an Option overriding the initial deal.
// Negative sizes are ignored.
func WithHandSize(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.HandSize = n
		}
	}
}

// WithFeasibility returns an Option forwarding options to the
// mission-check service.
func WithFeasibility(opts ...feasibility.Option) Option {
	return func(o *Options) { o.Feasibility = append(o.Feasibility, opts...) }
}
