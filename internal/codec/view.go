package codec

import "battleship/internal/game"

// View selects which layer of a board to render.
type View uint8

const (
	// StatusView shows guesses only: - unguessed, O miss, X hit.
	StatusView View = iota
	// ShipsView shows ships by class letter, - for water.
	ShipsView
	// CombinedView shows X on hit cells, otherwise the ships view.
	CombinedView
)

// ShipLetter maps ship length to its display letter.
func ShipLetter(length int) byte {
	switch length {
	case 2:
		return 'D'
	case 3:
		return 'C'
	case 4:
		return 'B'
	case 5:
		return 'A'
	}
	return 'S'
}

// Grid renders b as one byte per cell.
func Grid(b *game.Board, v View) [game.Rows][game.Cols]byte {
	var out [game.Rows][game.Cols]byte
	for r := 0; r < game.Rows; r++ {
		for c := 0; c < game.Cols; c++ {
			out[r][c] = symbol(b.Cell(game.At(r, c)), v)
		}
	}
	return out
}

func symbol(cell game.Cell, v View) byte {
	switch v {
	case StatusView:
		switch cell.Status {
		case game.Hit:
			return 'X'
		case game.Miss:
			return 'O'
		}
		return '-'
	case CombinedView:
		if cell.Status == game.Hit {
			return 'X'
		}
	}
	if cell.Occupied {
		return ShipLetter(cell.ShipLength)
	}
	return '-'
}
