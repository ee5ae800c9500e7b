package game

import (
	"fmt"
)

// Cell is one grid square. Ship metadata is only set on occupied cells.
type Cell struct {
	Occupied      bool        `json:"occupied"`
	Status        GuessStatus `json:"status"`
	Ship          ShipID      `json:"ship"`
	ShipLength    int         `json:"shipLength,omitempty"`
	ShipDirection Direction   `json:"shipDirection,omitempty"`
}

// Board is a Rows x Cols grid. A home board holds ships and incoming
// guesses; a tracking board only records outgoing guesses and their outcome.
type Board struct {
	cells  [Rows][Cols]Cell
	hits   int
	target int
}

// NewBoard returns an empty board defeated after TotalShipCells hits.
func NewBoard() *Board { return &Board{target: TotalShipCells} }

// NewHomeBoard returns an empty board defeated once every cell of f is hit.
func NewHomeBoard(f *Fleet) *Board { return &Board{target: f.TotalCells()} }

func (b *Board) Cell(c Coord) Cell { return b.cells[c.Row][c.Col] }

// PlaceShip marks the footprint of a placed ship as occupied. It does not
// check bounds or overlap; run ValidatePlacement first.
func (b *Board) PlaceShip(s *Ship) {
	if !s.Placed() {
		panic(fmt.Sprintf("game: PlaceShip with unplaced ship %q", s.Name))
	}
	for _, c := range s.Footprint() {
		cell := &b.cells[c.Row][c.Col]
		cell.Occupied = true
		cell.Ship = s.ID
		cell.ShipLength = s.Length
		cell.ShipDirection = s.dir
	}
}

func (b *Board) HasShip(c Coord) bool { return b.cells[c.Row][c.Col].Occupied }

func (b *Board) AlreadyGuessed(c Coord) bool {
	return b.cells[c.Row][c.Col].Status != Unguessed
}

// ApplyGuess resolves an incoming guess against this board's ships.
func (b *Board) ApplyGuess(c Coord) (GuessStatus, error) {
	if !c.InBounds() {
		return Unguessed, fmt.Errorf("guess %v: %w", c, ErrOffBoard)
	}
	if b.AlreadyGuessed(c) {
		return Unguessed, fmt.Errorf("guess %v: %w", c, ErrAlreadyGuessed)
	}
	res := Miss
	if b.HasShip(c) {
		res = Hit
	}
	b.mark(c, res)
	return res, nil
}

// Record stores the outcome of an outgoing guess on a tracking board.
func (b *Board) Record(c Coord, res GuessStatus) error {
	if res != Hit && res != Miss {
		panic(fmt.Sprintf("game: Record with status %v", res))
	}
	if b.AlreadyGuessed(c) {
		return fmt.Errorf("record %v: %w", c, ErrAlreadyGuessed)
	}
	b.mark(c, res)
	return nil
}

func (b *Board) mark(c Coord, res GuessStatus) {
	b.cells[c.Row][c.Col].Status = res
	if res == Hit {
		b.hits++
	}
}

// HitCount is the number of cells marked Hit.
func (b *Board) HitCount() int { return b.hits }

func (b *Board) IsDefeated() bool { return b.hits >= b.target }

// Sunk reports whether every occupied cell of ship id has been hit. A ship
// with no cells on this board is never sunk.
func (b *Board) Sunk(id ShipID) bool {
	seen := false
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			cell := b.cells[r][c]
			if !cell.Occupied || cell.Ship != id {
				continue
			}
			seen = true
			if cell.Status != Hit {
				return false
			}
		}
	}
	return seen
}

// Remaining counts guessable cells.
func (b *Board) Remaining() int { return Rows*Cols - b.Guessed() }

// Guessed counts cells with a status other than Unguessed.
func (b *Board) Guessed() int {
	n := 0
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].Status != Unguessed {
				n++
			}
		}
	}
	return n
}

// Flatten returns occupancy bits in row-major order (0=water, 1=ship).
func (b *Board) Flatten() []uint8 {
	out := make([]uint8, Rows*Cols)
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if b.cells[r][c].Occupied {
				out[r*Cols+c] = 1
			}
		}
	}
	return out
}
