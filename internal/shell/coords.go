package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"battleship/internal/game"
)

var ErrBadInput = errors.New("invalid location")

// RowLabel is the letter for 0-indexed row r.
func RowLabel(r int) string { return string(rune('A' + r)) }

// Label formats c as the player types it, e.g. "B7".
func Label(c game.Coord) string { return RowLabel(c.Row) + strconv.Itoa(c.Col+1) }

// ParseCoord reads a row letter followed by a 1-based column, e.g. "j10".
func ParseCoord(s string) (game.Coord, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 {
		return game.Coord{}, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	row := int(s[0] - 'A')
	col, err := strconv.Atoi(s[1:])
	if err != nil {
		return game.Coord{}, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	c := game.At(row, col-1)
	if s[0] < 'A' || s[0] > 'Z' || !c.InBounds() {
		return game.Coord{}, fmt.Errorf("%w: %q", ErrBadInput, s)
	}
	return c, nil
}

// ParseDirection accepts h/v, horizontal/vertical, or the 0/1 codes.
func ParseDirection(s string) (game.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "horizontal", "0":
		return game.Horizontal, nil
	case "v", "vertical", "1":
		return game.Vertical, nil
	}
	return 0, fmt.Errorf("%w: direction %q", ErrBadInput, s)
}
