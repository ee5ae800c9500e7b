package game

import "fmt"

// ValidatePlacement decides whether a ship of the given length may be placed
// at anchor facing d. Ships may touch; only bounds and overlap are checked.
func ValidatePlacement(b *Board, length int, anchor Coord, d Direction) error {
	if !d.Valid() {
		return ErrInvalidDirection
	}
	fp := Footprint(anchor, length, d)
	for _, c := range fp {
		if !c.InBounds() {
			return fmt.Errorf("%d-length %s ship at %v: %w", length, d, anchor, ErrOutOfBounds)
		}
	}
	for _, c := range fp {
		if b.HasShip(c) {
			return fmt.Errorf("%d-length %s ship at %v: %w", length, d, anchor, ErrOverlap)
		}
	}
	return nil
}
