package game

import "errors"

// Placement and guess errors are recoverable: nothing changes and the
// caller may retry with different input.
var (
	ErrOutOfBounds    = errors.New("ship does not fit on the board")
	ErrOverlap        = errors.New("there is already a ship at that location")
	ErrAlreadyGuessed = errors.New("location already guessed")
	ErrOffBoard       = errors.New("location is off the board")

	ErrInvalidDirection = errors.New("invalid direction")
	ErrAlreadyPlaced    = errors.New("ship already placed")
	ErrUnknownShip      = errors.New("unknown ship")
	ErrFleetSize        = errors.New("fleet must have exactly 5 ships")
	ErrFleetPlaced      = errors.New("all ships already placed")
)
