package game

import "fmt"

// Board is always Rows x Cols. Row labels are single letters, so Rows must
// not exceed 26.
const (
	Rows = 10
	Cols = 10

	maxRows = 26
)

// compile-time guard: fails to build if Rows > maxRows.
const _ = uint(maxRows - Rows)

// Direction a ship extends from its anchor. The zero value is not a valid
// direction and marks an unplaced ship.
type Direction uint8

const (
	Horizontal Direction = iota + 1
	Vertical
)

func (d Direction) Valid() bool { return d == Horizontal || d == Vertical }

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// GuessStatus of a single cell.
type GuessStatus uint8

const (
	Unguessed GuessStatus = iota
	Hit
	Miss
)

func (s GuessStatus) String() string {
	switch s {
	case Unguessed:
		return "unguessed"
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	}
	return fmt.Sprintf("GuessStatus(%d)", uint8(s))
}

// Coord is a 0-indexed (row, col) position.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func At(row, col int) Coord { return Coord{Row: row, Col: col} }

func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// Index flattens c in row-major order.
func (c Coord) Index() int { return c.Row*Cols + c.Col }

// CoordAt is the inverse of Index.
func CoordAt(idx int) Coord { return Coord{Row: idx / Cols, Col: idx % Cols} }

func (c Coord) step(d Direction, n int) Coord {
	switch d {
	case Horizontal:
		return Coord{Row: c.Row, Col: c.Col + n}
	case Vertical:
		return Coord{Row: c.Row + n, Col: c.Col}
	}
	panic(fmt.Sprintf("game: invalid direction %d", uint8(d)))
}

// Footprint returns the length consecutive cells starting at anchor and
// extending right (Horizontal) or down (Vertical). Coordinates may fall
// outside the board; callers check with InBounds.
func Footprint(anchor Coord, length int, d Direction) []Coord {
	out := make([]Coord, length)
	for i := 0; i < length; i++ {
		out[i] = anchor.step(d, i)
	}
	return out
}
