package shell

import (
	"fmt"
	"io"
	"strings"

	"battleship/internal/codec"
	"battleship/internal/game"
)

// Render prints b with column numbers across the top and row letters down
// the side.
func Render(w io.Writer, b *game.Board, v codec.View) {
	var sb strings.Builder
	sb.WriteString("\n  ")
	for c := 1; c <= game.Cols; c++ {
		fmt.Fprintf(&sb, "%d ", c)
	}
	sb.WriteByte('\n')
	grid := codec.Grid(b, v)
	for r, row := range grid {
		sb.WriteString(RowLabel(r))
		sb.WriteByte(' ')
		for _, ch := range row {
			sb.WriteByte(ch)
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	io.WriteString(w, sb.String())
}
