// Package opponent drives the computer player: memoryless uniform guessing
// and random fleet placement.
package opponent

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"battleship/internal/game"
)

// maxPlacementTries bounds random fleet placement.
const maxPlacementTries = 10000

var (
	ErrBoardExhausted  = errors.New("every cell already guessed")
	ErrPlacementFailed = errors.New("failed to place ships")
)

// Random picks cells uniformly at random, re-rolling cells already guessed.
// It never aims near earlier hits.
type Random struct {
	rng *rand.Rand
}

// NewRandom uses rng, or a process-seeded source when rng is nil.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Random{rng: rng}
}

// NewSeeded returns a reproducible Random.
func NewSeeded(seed uint64) *Random {
	return NewRandom(rand.New(rand.NewPCG(seed, seed)))
}

func (r *Random) coord() game.Coord {
	return game.At(r.rng.IntN(game.Rows), r.rng.IntN(game.Cols))
}

// NextGuess draws cells until one is not yet on the tracking board.
func (r *Random) NextGuess(tracking *game.Board) (game.Coord, error) {
	if tracking.Remaining() == 0 {
		return game.Coord{}, ErrBoardExhausted
	}
	c := r.coord()
	for tracking.AlreadyGuessed(c) {
		c = r.coord()
	}
	return c, nil
}

// PlaceFleet places every unplaced ship of p at random legal positions.
func (r *Random) PlaceFleet(p *game.Player) error {
	tries := 0
	for {
		s, ok := p.Fleet.NextUnplaced()
		if !ok {
			return nil
		}
		for {
			if tries >= maxPlacementTries {
				return fmt.Errorf("%w after %d tries", ErrPlacementFailed, tries)
			}
			tries++
			d := game.Horizontal
			if r.rng.IntN(2) == 1 {
				d = game.Vertical
			}
			err := p.PlaceShip(s.ID, r.coord(), d)
			if err == nil {
				break
			}
			if !errors.Is(err, game.ErrOutOfBounds) && !errors.Is(err, game.ErrOverlap) {
				return err
			}
		}
	}
}
