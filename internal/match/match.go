// Package match runs one game: both players place their fleets, then take
// strictly alternating shots, human first, until a home board is defeated.
package match

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"battleship/internal/game"
)

type Phase uint8

const (
	Setup Phase = iota
	InProgress
	Finished
)

func (p Phase) String() string {
	switch p {
	case Setup:
		return "setup"
	case InProgress:
		return "in_progress"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Side indexes the two players.
type Side uint8

const (
	Human Side = iota
	Computer
)

func (s Side) Other() Side { return 1 - s }

func (s Side) String() string {
	if s == Human {
		return "human"
	}
	return "computer"
}

var (
	ErrWrongPhase  = errors.New("action not allowed in this phase")
	ErrNotYourTurn = errors.New("not this side's turn")
)

// Guesser picks the computer's next shot.
type Guesser interface {
	NextGuess(tracking *game.Board) (game.Coord, error)
}

// Placer positions every unplaced ship of a player.
type Placer interface {
	PlaceFleet(p *game.Player) error
}

// Strategy is the computer opponent.
type Strategy interface {
	Guesser
	Placer
}

type Config struct {
	HumanName    string
	ComputerName string
	Classes      []game.ShipClass // defaults to game.StandardClasses
}

type Option func(*Match)

func WithLogger(l zerolog.Logger) Option {
	return func(m *Match) { m.log = l }
}

// Match is single-threaded; callers must not use it concurrently.
type Match struct {
	ID       uuid.UUID
	players  [2]*game.Player
	strategy Strategy
	log      zerolog.Logger

	phase  Phase
	turn   Side
	winner Side
	turns  int
}

// TurnResult is what the shell renders after a shot.
type TurnResult struct {
	Attacker Side
	game.Outcome
	Winner *Side
}

func New(cfg Config, strategy Strategy, opts ...Option) (*Match, error) {
	classes := cfg.Classes
	if classes == nil {
		classes = game.StandardClasses
	}
	if err := game.ValidateClasses(classes); err != nil {
		return nil, err
	}
	if strategy == nil {
		return nil, errors.New("match: nil strategy")
	}
	m := &Match{
		ID:       uuid.New(),
		strategy: strategy,
		log:      zerolog.Nop(),
		phase:    Setup,
		turn:     Human,
	}
	m.players[Human] = game.NewPlayer(nameOr(cfg.HumanName, "Player"), game.NewFleet(classes))
	m.players[Computer] = game.NewPlayer(nameOr(cfg.ComputerName, "Computer"), game.NewFleet(classes))
	for _, o := range opts {
		o(m)
	}
	m.log = m.log.With().Str("match", m.ID.String()).Logger()
	return m, nil
}

func nameOr(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func (m *Match) Phase() Phase { return m.phase }

// Turn is the side expected to fire next.
func (m *Match) Turn() Side { return m.turn }

func (m *Match) Turns() int { return m.turns }

// Winner is set once the match is finished.
func (m *Match) Winner() (Side, bool) { return m.winner, m.phase == Finished }

func (m *Match) Player(s Side) *game.Player { return m.players[s] }

// NextShip is the ship side will place next, if any.
func (m *Match) NextShip(s Side) (*game.Ship, bool) {
	return m.players[s].Fleet.NextUnplaced()
}

// Place positions the next unplaced ship of side. An invalid placement
// returns the validation error and the same ship stays next.
func (m *Match) Place(s Side, anchor game.Coord, d game.Direction) (*game.Ship, error) {
	if m.phase != Setup {
		return nil, fmt.Errorf("place: %w (%s)", ErrWrongPhase, m.phase)
	}
	ship, err := m.players[s].PlaceNext(anchor, d)
	if err != nil {
		return ship, err
	}
	m.log.Debug().Stringer("side", s).Str("ship", ship.Name).
		Int("row", anchor.Row).Int("col", anchor.Col).Stringer("dir", d).
		Msg("ship placed")
	m.maybeStart()
	return ship, nil
}

// AutoPlace places the remaining ships of side at random.
func (m *Match) AutoPlace(s Side) error {
	if m.phase != Setup {
		return fmt.Errorf("auto place: %w (%s)", ErrWrongPhase, m.phase)
	}
	if err := m.strategy.PlaceFleet(m.players[s]); err != nil {
		return fmt.Errorf("auto place %s: %w", s, err)
	}
	m.log.Debug().Stringer("side", s).Msg("fleet placed at random")
	m.maybeStart()
	return nil
}

func (m *Match) maybeStart() {
	if !m.players[Human].Fleet.AllPlaced() || !m.players[Computer].Fleet.AllPlaced() {
		return
	}
	m.phase = InProgress
	m.turn = Human
	m.log.Info().Msg("setup complete, match started")
}

// Fire resolves a human shot at c.
func (m *Match) Fire(c game.Coord) (TurnResult, error) {
	return m.play(Human, c)
}

// ComputerTurn lets the strategy pick and fire the computer's shot.
func (m *Match) ComputerTurn() (TurnResult, error) {
	if err := m.check(Computer); err != nil {
		return TurnResult{}, err
	}
	c, err := m.strategy.NextGuess(m.players[Computer].Tracking)
	if err != nil {
		return TurnResult{}, fmt.Errorf("computer guess: %w", err)
	}
	return m.play(Computer, c)
}

func (m *Match) check(s Side) error {
	if m.phase != InProgress {
		return fmt.Errorf("fire: %w (%s)", ErrWrongPhase, m.phase)
	}
	if m.turn != s {
		return fmt.Errorf("fire: %w (%s)", ErrNotYourTurn, s)
	}
	return nil
}

// play fires for attacker. A rejected coordinate does not consume the turn.
func (m *Match) play(attacker Side, c game.Coord) (TurnResult, error) {
	if err := m.check(attacker); err != nil {
		return TurnResult{}, err
	}
	out, err := m.players[attacker].Fire(m.players[attacker.Other()], c)
	if err != nil {
		return TurnResult{}, err
	}
	m.turns++
	res := TurnResult{Attacker: attacker, Outcome: out}

	ev := m.log.Debug().Stringer("side", attacker).
		Int("row", c.Row).Int("col", c.Col).Stringer("result", out.Result)
	if out.Sunk != nil {
		ev = ev.Str("sunk", out.Sunk.Name)
	}
	ev.Msg("shot resolved")

	if w, ok := m.defeated(); ok {
		m.phase = Finished
		m.winner = w
		res.Winner = &w
		m.log.Info().Stringer("winner", w).Int("turns", m.turns).Msg("match finished")
		return res, nil
	}
	m.turn = attacker.Other()
	return res, nil
}

// defeated checks the computer's board before the human's; only the board
// just fired at can change, so at most one is ever newly defeated.
func (m *Match) defeated() (Side, bool) {
	if m.players[Computer].Home.IsDefeated() {
		return Human, true
	}
	if m.players[Human].Home.IsDefeated() {
		return Computer, true
	}
	return 0, false
}
