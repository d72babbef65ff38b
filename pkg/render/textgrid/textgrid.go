// Package textgrid draws boards as fixed-width character art.
//
// Each terrain tile becomes a five-row ASCII hexagon showing its label and
// number; port tiles become a two-row label with the trade ratio. Tiles are
// placed on a shared character grid from their hex coordinates, so adjacent
// hexagons share their border characters.
package textgrid

import (
	"strconv"
	"strings"

	"github.com/matzehuels/hexboard/pkg/board"
)

const (
	cellWidth  = 7
	cellHeight = 4
)

// Render draws every tile of the board onto one character grid and returns
// the joined rows. Blank rows above and below the art are trimmed. An empty
// board renders as the empty string.
func Render(b *board.Board) string {
	tiles := b.Tiles()
	if len(tiles) == 0 {
		return ""
	}

	bounds := b.Bounds()
	width := bounds.Right - bounds.Left + 1
	height := int(bounds.Bottom - bounds.Top + 1.5)

	grid := make([][]byte, height*cellHeight+1)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(" ", width*cellWidth+2))
	}

	for _, tile := range tiles {
		startX := (tile.X() - bounds.Left) * cellWidth
		startY := int((tile.Y() - bounds.Top) * cellHeight)
		for dy, line := range block(tile.Data) {
			for dx := 0; dx < len(line); dx++ {
				if line[dx] != ' ' {
					grid[startY+dy][startX+dx] = line[dx]
				}
			}
		}
	}

	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}
	return strings.Join(rows, "\n")
}

// block returns the tile's character rows. Rows may have differing lengths;
// spaces are transparent so neighboring blocks can interleave.
func block(a board.Attrs) []string {
	if a.Port {
		ratio := "2:1"
		if a.Terrain == board.PortAny {
			ratio = "3:1"
		}
		return []string{
			"",
			"",
			"  " + center(a.Terrain.Label(), 5),
			"   " + ratio,
		}
	}

	lines := []string{
		"  _____",
		` /     \ `,
		"/ " + center(a.Terrain.Label(), 5) + ` \ `,
	}
	if n := a.Number(); n != 0 {
		lines = append(lines, `\ `+center(strconv.Itoa(n), 5)+" /")
	} else {
		lines = append(lines, `\       /`)
	}
	return append(lines, ` \_____/`)
}

// center pads s to width, biasing extra padding to the right.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
