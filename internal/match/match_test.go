package match

import (
	"testing"

	"github.com/stretchr/testify/require"

	"battleship/internal/game"
	"battleship/internal/opponent"
)

// scripted fires a fixed sequence and places ships in rows 0..4 from col 0.
type scripted struct {
	guesses []game.Coord
}

func (s *scripted) NextGuess(*game.Board) (game.Coord, error) {
	c := s.guesses[0]
	s.guesses = s.guesses[1:]
	return c, nil
}

func (s *scripted) PlaceFleet(p *game.Player) error {
	for row := 0; !p.Fleet.AllPlaced(); row++ {
		if _, err := p.PlaceNext(game.At(row, 0), game.Horizontal); err != nil {
			return err
		}
	}
	return nil
}

func rowLayoutCells() []game.Coord {
	var out []game.Coord
	for row, cls := range game.StandardClasses {
		for c := 0; c < cls.Length; c++ {
			out = append(out, game.At(row, c))
		}
	}
	return out
}

func newStarted(t *testing.T, s Strategy) *Match {
	t.Helper()
	m, err := New(Config{}, s)
	require.NoError(t, err)
	require.NoError(t, m.AutoPlace(Human))
	require.Equal(t, Setup, m.Phase())
	require.NoError(t, m.AutoPlace(Computer))
	require.Equal(t, InProgress, m.Phase())
	return m
}

func TestNewRejectsWrongFleetSize(t *testing.T) {
	_, err := New(Config{Classes: game.StandardClasses[:3]}, &scripted{})
	require.ErrorIs(t, err, game.ErrFleetSize)

	_, err = New(Config{}, nil)
	require.Error(t, err)
}

func TestSetupRetryKeepsSameShip(t *testing.T) {
	m, err := New(Config{}, &scripted{})
	require.NoError(t, err)

	ship, err := m.Place(Human, game.At(0, 9), game.Horizontal)
	require.ErrorIs(t, err, game.ErrOutOfBounds)
	require.Equal(t, game.ShipID(0), ship.ID)

	next, ok := m.NextShip(Human)
	require.True(t, ok)
	require.Equal(t, game.ShipID(0), next.ID)

	_, err = m.Place(Human, game.At(0, 0), game.Horizontal)
	require.NoError(t, err)
	_, err = m.Place(Human, game.At(0, 1), game.Vertical)
	require.ErrorIs(t, err, game.ErrOverlap)

	next, _ = m.NextShip(Human)
	require.Equal(t, game.ShipID(1), next.ID)
	require.Equal(t, 4, m.Player(Human).Fleet.RemainingCount())
}

func TestSetupTransitionsWhenBothFleetsPlaced(t *testing.T) {
	m, err := New(Config{}, opponent.NewSeeded(5))
	require.NoError(t, err)

	for row := 0; row < 5; row++ {
		require.Equal(t, Setup, m.Phase())
		_, err := m.Place(Human, game.At(row, 0), game.Horizontal)
		require.NoError(t, err)
	}
	require.Equal(t, Setup, m.Phase())

	_, err = m.Fire(game.At(0, 0))
	require.ErrorIs(t, err, ErrWrongPhase)

	require.NoError(t, m.AutoPlace(Computer))
	require.Equal(t, InProgress, m.Phase())
	require.Equal(t, Human, m.Turn())

	_, err = m.Place(Human, game.At(9, 0), game.Horizontal)
	require.ErrorIs(t, err, ErrWrongPhase)
}

func TestStrictAlternation(t *testing.T) {
	m := newStarted(t, &scripted{guesses: []game.Coord{game.At(9, 9), game.At(9, 8)}})

	_, err := m.ComputerTurn()
	require.ErrorIs(t, err, ErrNotYourTurn)

	res, err := m.Fire(game.At(0, 0))
	require.NoError(t, err)
	require.Equal(t, Human, res.Attacker)
	require.Equal(t, game.Hit, res.Result)
	require.Equal(t, Computer, m.Turn())

	_, err = m.Fire(game.At(0, 1))
	require.ErrorIs(t, err, ErrNotYourTurn)

	res, err = m.ComputerTurn()
	require.NoError(t, err)
	require.Equal(t, Computer, res.Attacker)
	require.Equal(t, game.Miss, res.Result)
	require.Equal(t, Human, m.Turn())
	require.Equal(t, 2, m.Turns())
}

func TestRepeatGuessDoesNotConsumeTurn(t *testing.T) {
	m := newStarted(t, &scripted{guesses: []game.Coord{game.At(9, 9)}})

	_, err := m.Fire(game.At(5, 5))
	require.NoError(t, err)
	_, err = m.ComputerTurn()
	require.NoError(t, err)

	_, err = m.Fire(game.At(5, 5))
	require.ErrorIs(t, err, game.ErrAlreadyGuessed)
	require.Equal(t, Human, m.Turn())
	require.Equal(t, 2, m.Turns())
}

func TestHumanWins(t *testing.T) {
	cells := rowLayoutCells()
	// computer keeps missing in the bottom rows
	var misses []game.Coord
	for i := 0; i < len(cells); i++ {
		misses = append(misses, game.CoordAt(50+i))
	}
	m := newStarted(t, &scripted{guesses: misses})

	for i, c := range cells {
		res, err := m.Fire(c)
		require.NoError(t, err)
		require.Equal(t, game.Hit, res.Result)
		if i == len(cells)-1 {
			require.NotNil(t, res.Winner)
			require.Equal(t, Human, *res.Winner)
			require.True(t, res.Defeated)
			break
		}
		require.Nil(t, res.Winner)
		_, err = m.ComputerTurn()
		require.NoError(t, err)
	}

	w, ok := m.Winner()
	require.True(t, ok)
	require.Equal(t, Human, w)
	require.Equal(t, Finished, m.Phase())

	_, err := m.Fire(game.At(9, 9))
	require.ErrorIs(t, err, ErrWrongPhase)
	_, err = m.ComputerTurn()
	require.ErrorIs(t, err, ErrWrongPhase)
}

func TestComputerWins(t *testing.T) {
	cells := rowLayoutCells()
	m := newStarted(t, &scripted{guesses: cells})

	var last TurnResult
	for i := range cells {
		_, err := m.Fire(game.CoordAt(50 + i))
		require.NoError(t, err)
		last, err = m.ComputerTurn()
		require.NoError(t, err)
	}
	require.NotNil(t, last.Winner)
	require.Equal(t, Computer, *last.Winner)
	w, ok := m.Winner()
	require.True(t, ok)
	require.Equal(t, Computer, w)
}

func TestSunkReported(t *testing.T) {
	m := newStarted(t, &scripted{guesses: []game.Coord{game.At(9, 9)}})

	res, err := m.Fire(game.At(0, 0))
	require.NoError(t, err)
	require.Nil(t, res.Sunk)
	_, err = m.ComputerTurn()
	require.NoError(t, err)

	res, err = m.Fire(game.At(0, 1))
	require.NoError(t, err)
	require.NotNil(t, res.Sunk)
	require.Equal(t, 2, res.Sunk.Length)
}

func TestRandomOpponentFullGame(t *testing.T) {
	m := newStarted(t, opponent.NewSeeded(11))
	human := opponent.NewSeeded(12)

	for m.Phase() == InProgress {
		c, err := human.NextGuess(m.Player(Human).Tracking)
		require.NoError(t, err)
		_, err = m.Fire(c)
		require.NoError(t, err)
		if m.Phase() != InProgress {
			break
		}
		_, err = m.ComputerTurn()
		require.NoError(t, err)
	}
	w, ok := m.Winner()
	require.True(t, ok)
	require.True(t, m.Player(w.Other()).Home.IsDefeated())
	require.False(t, m.Player(w).Home.IsDefeated())
}
