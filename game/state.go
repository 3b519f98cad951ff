package game

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/ketlab/kettoride/core"
	"github.com/ketlab/kettoride/feasibility"
	"github.com/ketlab/kettoride/paths"
	"github.com/ketlab/kettoride/quantum"
)

// State is one running game: the board, the deck, the players in turn
// order, and the claimed-gate ledger. Methods are not safe for concurrent
// use; one game runs on one goroutine.
type State struct {
	log  zerolog.Logger
	opts Options

	board *core.Map
	deck  *Deck
	svc   *feasibility.Service

	players []*Player
	byID    map[string]*Player
	turn    int
	round   int

	// claimedGates records which gate option each claimed route was
	// claimed under; mission simulation narrows the route to that gate.
	claimedGates map[string]quantum.Gate

	over   bool
	winner string
}

// NewState starts a game on the given board.
func NewState(board *core.Map, opts ...Option) (*State, error) {
	if board == nil {
		return nil, core.ErrMapNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &State{
		log:          o.Logger,
		opts:         o,
		board:        board,
		deck:         NewDeck(o.Rand),
		svc:          feasibility.New(o.Feasibility...),
		byID:         make(map[string]*Player),
		claimedGates: make(map[string]quantum.Gate),
	}, nil
}

// Board exposes the game board, for claim inspection and rendering.
func (s *State) Board() *core.Map { return s.board }

// Round returns the number of completed turn cycles.
func (s *State) Round() int { return s.round }

// Over reports whether a winner has been decided.
func (s *State) Over() bool { return s.over }

// Winner returns the winning player's ID once the game is over.
func (s *State) Winner() (string, bool) { return s.winner, s.over }

// AddPlayer joins a named player and deals their starting hand.
func (s *State) AddPlayer(name string) (*Player, error) {
	if s.over {
		return nil, ErrGameOver
	}
	p := NewPlayer(name)
	p.addCards(s.deck.DrawN(s.opts.HandSize)...)
	s.players = append(s.players, p)
	s.byID[p.ID] = p
	s.log.Info().Str("player", name).Str("id", p.ID).Int("hand", p.HandSize()).
		Msg("player joined")

	return p, nil
}

// AssignMission deals a mission card to a player.
func (s *State) AssignMission(playerID string, m *Mission) error {
	p, err := s.player(playerID)
	if err != nil {
		return err
	}
	p.Missions = append(p.Missions, m)
	s.log.Info().Str("player", p.Name).Str("target", m.TargetState).
		Int("points", m.Points).Msg("mission assigned")

	return nil
}

// CurrentPlayer returns the player whose turn it is.
func (s *State) CurrentPlayer() (*Player, error) {
	if len(s.players) == 0 {
		return nil, ErrNoPlayers
	}

	return s.players[s.turn], nil
}

// NextTurn advances to the next player, wrapping into a new round.
func (s *State) NextTurn() (*Player, error) {
	if len(s.players) == 0 {
		return nil, ErrNoPlayers
	}
	s.turn++
	if s.turn == len(s.players) {
		s.turn = 0
		s.round++
	}

	return s.players[s.turn], nil
}

// DrawCards draws up to n gate cards into the player's hand.
func (s *State) DrawCards(playerID string, n int) ([]quantum.Gate, error) {
	if s.over {
		return nil, ErrGameOver
	}
	p, err := s.player(playerID)
	if err != nil {
		return nil, err
	}
	drawn := s.deck.DrawN(n)
	p.addCards(drawn...)
	s.log.Debug().Str("player", p.Name).Int("drawn", len(drawn)).
		Int("hand", p.HandSize()).Msg("cards drawn")

	return drawn, nil
}

// CanClaimRoute reports whether the player could claim the route under the
// given gate right now: the route is unclaimed, offers the gate, and the
// hand covers Length cards of it. Unknown players or routes are errors.
func (s *State) CanClaimRoute(playerID, routeID string, g quantum.Gate) (bool, error) {
	p, err := s.player(playerID)
	if err != nil {
		return false, err
	}
	r, err := s.board.Route(routeID)
	if err != nil {
		return false, err
	}
	if r.Claimed() || !offers(r, g) {
		return false, nil
	}

	return p.Hand[g] >= r.Length, nil
}

// ClaimRoute claims a route for the player, paying Length cards of the
// chosen gate into the discard pile and recording the gate choice.
func (s *State) ClaimRoute(playerID, routeID string, g quantum.Gate) error {
	if s.over {
		return ErrGameOver
	}
	p, err := s.player(playerID)
	if err != nil {
		return err
	}
	r, err := s.board.Route(routeID)
	if err != nil {
		return err
	}
	if !offers(r, g) {
		return ErrGateNotOffered
	}

	// 1. Pay first so an already-claimed route cannot eat the cards twice
	if p.Hand[g] < r.Length {
		return s.refuse(p, g, r.Length)
	}
	if err = s.board.Claim(routeID, p.ID); err != nil {
		return err
	}
	_ = p.pay(g, r.Length)
	for i := 0; i < r.Length; i++ {
		s.deck.Discard(g)
	}
	p.ClaimedRoutes = append(p.ClaimedRoutes, routeID)
	s.claimedGates[routeID] = g
	s.log.Info().Str("player", p.Name).Str("route", routeID).
		Stringer("gate", g).Int("cost", r.Length).Msg("route claimed")

	return nil
}

// CheckMission simulates the mission over the player's claimed routes.
//
// Every start city must reach the target city through routes the player
// owns; the routes along those paths, each narrowed to the gate it was
// claimed under, are fed to the feasibility service. On first success the
// mission completes, points are awarded, and finishing the last mission
// ends the game.
func (s *State) CheckMission(playerID string, m *Mission) (feasibility.Result, error) {
	p, err := s.player(playerID)
	if err != nil {
		return feasibility.Result{}, err
	}

	chain, ok := s.claimedChain(p, m)
	if !ok {
		s.log.Debug().Str("player", p.Name).Str("target", m.TargetState).
			Msg("mission not connected")

		return failedResult(m.InitialState)
	}

	res, err := s.svc.SimulateClaimed(chain, m.InitialState, m.TargetState)
	if err != nil {
		return feasibility.Result{}, err
	}
	if res.Success && !m.Completed {
		m.Completed = true
		p.Score += m.Points
		s.log.Info().Str("player", p.Name).Str("target", m.TargetState).
			Int("points", m.Points).Int("score", p.Score).Msg("mission completed")
		if p.completedAll() {
			s.over = true
			s.winner = p.ID
			s.log.Info().Str("player", p.Name).Int("score", p.Score).Msg("game over")
		}
	}

	return res, nil
}

// claimedChain orders the player's claimed routes for simulation: for each
// start city, the shortest path to the target over the claimed subgraph,
// concatenated with duplicates dropped. Each route carries only the gate
// it was claimed under.
func (s *State) claimedChain(p *Player, m *Mission) ([]*core.Route, bool) {
	owned := s.board.ClaimedBy(p.ID)
	if len(owned) == 0 {
		return nil, false
	}

	sub := core.NewMap()
	for _, r := range owned {
		g, recorded := s.claimedGates[r.ID]
		if !recorded {
			g = r.Gates[0]
		}
		if _, err := sub.AddRoute(r.From, r.To, []quantum.Gate{g}, r.Length); err != nil {
			return nil, false
		}
	}
	if !sub.HasCity(m.TargetCity) {
		return nil, false
	}

	var chain []*core.Route
	seen := make(map[string]bool)
	for _, start := range m.StartCities {
		if !sub.HasCity(start) {
			return nil, false
		}
		ps, err := paths.Enumerate(sub, start, m.TargetCity,
			paths.WithMaxDepth(len(owned)))
		if err != nil || len(ps) == 0 {
			return nil, false
		}
		sort.SliceStable(ps, func(i, j int) bool { return len(ps[i]) < len(ps[j]) })
		for _, r := range ps[0] {
			if seen[r.ID] {
				continue
			}
			seen[r.ID] = true
			chain = append(chain, r)
		}
	}

	return chain, true
}

func (s *State) player(id string) (*Player, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, ErrPlayerNotFound
	}

	return p, nil
}

func (s *State) refuse(p *Player, g quantum.Gate, need int) error {
	s.log.Debug().Str("player", p.Name).Stringer("gate", g).
		Int("need", need).Int("have", p.Hand[g]).Msg("claim refused")

	return p.pay(g, need)
}

func offers(r *core.Route, g quantum.Gate) bool {
	for _, o := range r.Gates {
		if o == g {
			return true
		}
	}

	return false
}

// failedResult reports an unfinished mission: the freshly prepared initial
// register, no sequence.
func failedResult(initial string) (feasibility.Result, error) {
	reg, err := quantum.NewRegister(initial)
	if err != nil {
		return feasibility.Result{}, err
	}

	return feasibility.Result{Register: reg, Description: reg.Describe()}, nil
}
