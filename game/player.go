package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ketlab/kettoride/quantum"
)

// Player is one participant: an identity, a hand of gate cards, the routes
// they claimed, their mission cards, and their score.
type Player struct {
	// ID is a generated uuid; it is what routes are claimed under.
	ID string

	// Name is the display name; not required to be unique.
	Name string

	// Hand counts gate cards held, per gate.
	Hand map[quantum.Gate]int

	// ClaimedRoutes lists route IDs in claim order.
	ClaimedRoutes []string

	// Missions are the player's objective cards.
	Missions []*Mission

	// Score accumulates completed-mission points.
	Score int
}

// NewPlayer creates a player with a fresh uuid and an empty hand.
func NewPlayer(name string) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Hand: make(map[quantum.Gate]int),
	}
}

// Cards returns how many cards of gate g the player holds.
func (p *Player) Cards(g quantum.Gate) int { return p.Hand[g] }

// HandSize returns the total card count across all gates.
func (p *Player) HandSize() int {
	var n int
	for _, c := range p.Hand {
		n += c
	}

	return n
}

func (p *Player) addCards(gs ...quantum.Gate) {
	for _, g := range gs {
		p.Hand[g]++
	}
}

// pay removes n cards of gate g, failing without partial effect.
func (p *Player) pay(g quantum.Gate, n int) error {
	if p.Hand[g] < n {
		return fmt.Errorf("%w: need %d×%s, have %d", ErrInsufficientCards, n, g, p.Hand[g])
	}
	p.Hand[g] -= n

	return nil
}

// completedAll reports whether the player holds missions and finished
// every one of them.
func (p *Player) completedAll() bool {
	if len(p.Missions) == 0 {
		return false
	}
	for _, m := range p.Missions {
		if !m.Completed {
			return false
		}
	}

	return true
}
