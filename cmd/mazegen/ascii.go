package main

import (
	"fmt"
	"io"

	"github.com/Faultbox/labyrinth/internal/game"
	"github.com/Faultbox/labyrinth/internal/maze"
)

// writeASCII renders the layout top-down, one character per physical cell.
func writeASCII(out io.Writer, g *game.Game, highlight map[[2]int]bool) {
	w := g.World()
	size := w.Layout.Size()

	// Close the north and west sides so the level reads as enclosed.
	for px := 0; px <= size; px++ {
		out.Write([]byte{'#'})
	}
	fmt.Fprintln(out)

	for py := 0; py < size; py++ {
		line := make([]byte, 0, size+1)
		line = append(line, '#')
		for px := 0; px < size; px++ {
			line = append(line, cellGlyph(w.Layout.Cell(px, py), w.Start, w.Finish, highlight))
		}
		out.Write(line)
		fmt.Fprintln(out)
	}
}

func cellGlyph(c maze.PhysicalCell, start, finish maze.Coord, highlight map[[2]int]bool) byte {
	switch {
	case c.X == start.X && c.Y == start.Y:
		return 'S'
	case c.X == finish.X && c.Y == finish.Y:
		return 'F'
	case highlight[[2]int{c.X, c.Y}]:
		return '*'
	case c.Open():
		return '.'
	default:
		return '#'
	}
}
