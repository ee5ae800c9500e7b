package game

import (
	"fmt"

	"github.com/samber/lo"
)

// ShipID is a ship's stable position in its fleet.
type ShipID int

// ShipClass names a fleet slot and its fixed length.
type ShipClass struct {
	Name   string
	Length int
}

// StandardClasses is the fixed fleet composition: 17 cells over 5 ships.
var StandardClasses = []ShipClass{
	{Name: "destroyer", Length: 2},
	{Name: "submarine", Length: 3},
	{Name: "cruiser", Length: 3},
	{Name: "battleship", Length: 4},
	{Name: "carrier", Length: 5},
}

// TotalShipCells of the standard fleet.
const TotalShipCells = 17

const standardFleetSize = 5

type Ship struct {
	ID     ShipID
	Name   string
	Length int

	anchor Coord
	dir    Direction
}

// Placed reports whether anchor and direction are set.
func (s *Ship) Placed() bool { return s.dir.Valid() }

func (s *Ship) Anchor() (Coord, bool) { return s.anchor, s.Placed() }

func (s *Ship) Direction() Direction { return s.dir }

// Footprint of a placed ship, nil otherwise.
func (s *Ship) Footprint() []Coord {
	if !s.Placed() {
		return nil
	}
	return Footprint(s.anchor, s.Length, s.dir)
}

// place sets anchor and direction once.
func (s *Ship) place(anchor Coord, d Direction) error {
	if s.Placed() {
		return fmt.Errorf("%s: %w", s.Name, ErrAlreadyPlaced)
	}
	if !d.Valid() {
		return ErrInvalidDirection
	}
	s.anchor, s.dir = anchor, d
	return nil
}

// Fleet is an ordered set of ships. Composition never changes after
// construction.
type Fleet struct {
	ships []*Ship
}

// NewFleet builds an unplaced fleet with one ship per class, in order.
func NewFleet(classes []ShipClass) *Fleet {
	f := &Fleet{ships: make([]*Ship, len(classes))}
	for i, c := range classes {
		if c.Length <= 0 || c.Length > max(Rows, Cols) {
			panic(fmt.Sprintf("game: ship %q has invalid length %d", c.Name, c.Length))
		}
		f.ships[i] = &Ship{ID: ShipID(i), Name: c.Name, Length: c.Length}
	}
	return f
}

// NewStandardFleet returns the 2,3,3,4,5 fleet.
func NewStandardFleet() *Fleet { return NewFleet(StandardClasses) }

// ValidateClasses rejects match fleets that are not exactly 5 ships.
func ValidateClasses(classes []ShipClass) error {
	if len(classes) != standardFleetSize {
		return fmt.Errorf("%w: got %d", ErrFleetSize, len(classes))
	}
	return nil
}

func (f *Fleet) Ships() []*Ship { return f.ships }

func (f *Fleet) Len() int { return len(f.ships) }

func (f *Fleet) Ship(id ShipID) (*Ship, error) {
	if id < 0 || int(id) >= len(f.ships) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownShip, id)
	}
	return f.ships[id], nil
}

// NextUnplaced returns the first ship, in fleet order, without a position.
func (f *Fleet) NextUnplaced() (*Ship, bool) {
	return lo.Find(f.ships, func(s *Ship) bool { return !s.Placed() })
}

func (f *Fleet) AllPlaced() bool {
	return lo.EveryBy(f.ships, func(s *Ship) bool { return s.Placed() })
}

func (f *Fleet) RemainingCount() int {
	return lo.CountBy(f.ships, func(s *Ship) bool { return !s.Placed() })
}

// TotalCells is the number of cells the fleet covers once placed.
func (f *Fleet) TotalCells() int {
	return lo.SumBy(f.ships, func(s *Ship) int { return s.Length })
}
