package game

import (
	"math/rand"
	"time"

	"github.com/ketlab/kettoride/quantum"
)

// standardDeck is the gate-card distribution of the base game: 68 cards.
var standardDeck = []struct {
	gate  quantum.Gate
	count int
}{
	{quantum.GateI, 12},
	{quantum.GateX, 12},
	{quantum.GateY, 12},
	{quantum.GateZ, 12},
	{quantum.GateH, 12},
	{quantum.GateCNOT, 8},
}

// Deck is the gate-card draw pile plus its discard pile. When the draw
// pile runs dry the discard pile is shuffled back in. Not safe for
// concurrent use; State serializes access.
type Deck struct {
	rng     *rand.Rand
	draw    []quantum.Gate
	discard []quantum.Gate
}

// NewDeck builds and shuffles the standard deck. A nil rng falls back to
// a time-seeded source.
func NewDeck(rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	d := &Deck{rng: rng}
	for _, c := range standardDeck {
		for i := 0; i < c.count; i++ {
			d.draw = append(d.draw, c.gate)
		}
	}
	d.shuffle()

	return d
}

// Draw removes the top card. ok is false only when both piles are empty.
func (d *Deck) Draw() (g quantum.Gate, ok bool) {
	if len(d.draw) == 0 {
		d.reshuffle()
	}
	if len(d.draw) == 0 {
		return quantum.GateI, false
	}
	g = d.draw[len(d.draw)-1]
	d.draw = d.draw[:len(d.draw)-1]

	return g, true
}

// DrawN draws up to n cards; fewer when the deck runs out entirely.
func (d *Deck) DrawN(n int) []quantum.Gate {
	out := make([]quantum.Gate, 0, n)
	for i := 0; i < n; i++ {
		g, ok := d.Draw()
		if !ok {
			break
		}
		out = append(out, g)
	}

	return out
}

// Discard returns spent cards to the discard pile.
func (d *Deck) Discard(gs ...quantum.Gate) {
	d.discard = append(d.discard, gs...)
}

// Remaining counts the cards still in circulation, both piles included.
func (d *Deck) Remaining() int {
	return len(d.draw) + len(d.discard)
}

func (d *Deck) shuffle() {
	d.rng.Shuffle(len(d.draw), func(i, j int) {
		d.draw[i], d.draw[j] = d.draw[j], d.draw[i]
	})
}

func (d *Deck) reshuffle() {
	if len(d.discard) == 0 {
		return
	}
	d.draw = append(d.draw, d.discard...)
	d.discard = d.discard[:0]
	d.shuffle()
}
