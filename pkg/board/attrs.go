package board

import "github.com/matzehuels/hexboard/pkg/hexgrid"

// Tile is a hex tile carrying board attributes. The graph structure
// (identity, coordinates, neighbor slots) comes from the hexgrid package;
// the payload is an [Attrs].
type Tile = hexgrid.Tile[Attrs]

// Attrs holds the board-specific attributes of a tile: its terrain
// category, its production number with the derived pip weight, and the
// port flag distinguishing border trade tiles from terrain.
//
// The production number and pip weight are kept consistent by
// [Attrs.SetNumber]; there is no way to set one without the other.
type Attrs struct {
	// Terrain is the tile's category. On port tiles it holds the port
	// kind rather than a producing terrain.
	Terrain Terrain

	// Port marks border trade tiles. Port tiles never receive numbers
	// and are skipped by every derived ordering.
	Port bool

	number int
	pips   int
}

// SetNumber assigns the production number and recomputes the derived pip
// weight in the same step. Pass 0 to clear the number (deserts and port
// tiles produce nothing).
func (a *Attrs) SetNumber(n int) {
	a.number = n
	d := 7 - n
	if d < 0 {
		d = -d
	}
	a.pips = 6 - d
}

// Number returns the production number, or 0 when none is assigned.
func (a *Attrs) Number() int { return a.number }

// Pips returns the production frequency weight 6-|7-n| for the assigned
// number n, and whether the tile produces at all. Tiles without a number
// (deserts, ports, unassigned tiles) return ok == false; the weight is
// meaningless in that case.
func (a *Attrs) Pips() (weight int, ok bool) {
	if a.number == 0 {
		return 0, false
	}
	return a.pips, true
}
