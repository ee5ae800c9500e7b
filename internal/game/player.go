package game

import "fmt"

// Player owns a fleet, the home board holding it, and a tracking board of
// its own guesses. Boards are never shared between players.
type Player struct {
	Name     string
	Fleet    *Fleet
	Home     *Board
	Tracking *Board
}

func NewPlayer(name string, fleet *Fleet) *Player {
	return &Player{
		Name:     name,
		Fleet:    fleet,
		Home:     NewHomeBoard(fleet),
		Tracking: NewBoard(),
	}
}

// PlaceShip validates and places ship id. On error nothing changes.
func (p *Player) PlaceShip(id ShipID, anchor Coord, d Direction) error {
	s, err := p.Fleet.Ship(id)
	if err != nil {
		return err
	}
	if s.Placed() {
		return fmt.Errorf("%s: %w", s.Name, ErrAlreadyPlaced)
	}
	if err := ValidatePlacement(p.Home, s.Length, anchor, d); err != nil {
		return err
	}
	if err := s.place(anchor, d); err != nil {
		return err
	}
	p.Home.PlaceShip(s)
	return nil
}

// PlaceNext places the first unplaced ship in fleet order.
func (p *Player) PlaceNext(anchor Coord, d Direction) (*Ship, error) {
	s, ok := p.Fleet.NextUnplaced()
	if !ok {
		return nil, ErrFleetPlaced
	}
	if err := p.PlaceShip(s.ID, anchor, d); err != nil {
		return s, err
	}
	return s, nil
}
