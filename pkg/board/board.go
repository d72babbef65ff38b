package board

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/matzehuels/hexboard/pkg/hexgrid"
	"github.com/matzehuels/hexboard/pkg/observability"
)

var (
	// ErrUnknownVariant is returned by [New] for a variant value outside
	// the defined set.
	ErrUnknownVariant = errors.New("unknown board variant")

	// ErrSpiralStuck is returned by [New] when the spiral walk dead-ends
	// before visiting every terrain tile. It indicates a malformed
	// topology; a board that cannot be spiraled is never returned.
	ErrSpiralStuck = errors.New("spiral walk stuck")
)

// Variant selects a board construction sequence.
type Variant int

const (
	// VariantStandard is the 3/4-player board: one center tile, two
	// surrounding rings (19 terrain tiles), nine ports.
	VariantStandard Variant = iota

	// VariantLarge is the 5/6-player board: a 2x2 center block, two
	// surrounding rings (30 terrain tiles), eleven ports.
	VariantLarge
)

// String returns the variant's name ("standard" or "large").
func (v Variant) String() string {
	switch v {
	case VariantStandard:
		return "standard"
	case VariantLarge:
		return "large"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant converts a name accepted on the command line into a
// [Variant].
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "standard", "":
		return VariantStandard, nil
	case "large":
		return VariantLarge, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Option configures board construction.
type Option func(*Board)

// WithFrame makes the large variant place ports at the fixed positions of
// the physical 5th-edition frame instead of the alternating rule. It has
// no effect on the standard variant, whose frame matches the alternating
// rule anyway.
func WithFrame() Option {
	return func(b *Board) { b.useFrame = true }
}

// Board is a fully constructed hex board topology: the tile graph, the
// selected port tiles, and the derived orderings used by layout and
// validation. The topology is fixed once built; only tile attributes
// change between layout trials.
//
// Board is not safe for concurrent use.
type Board struct {
	variant  Variant
	useFrame bool

	grid    *hexgrid.Grid[Attrs]
	terrain []*Tile
	ports   []*Tile

	columns       []*Tile
	spiral        []*Tile
	intersections []Intersection

	trials int
}

// New builds a board topology for the given variant and derives its
// orderings. It fails only on an internal invariant violation (a spiral
// that cannot be closed); a non-nil Board is always fully arranged.
func New(v Variant, opts ...Option) (*Board, error) {
	b := &Board{variant: v, grid: hexgrid.New[Attrs]()}
	for _, opt := range opts {
		opt(b)
	}

	switch v {
	case VariantStandard:
		b.buildStandard()
	case VariantLarge:
		b.buildLarge()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, int(v))
	}
	b.grid.RecomputeBounds()

	b.arrangeColumns()
	if err := b.arrangeSpiral(); err != nil {
		return nil, err
	}
	b.arrangeIntersections()

	observability.Generation().OnBuildComplete(v.String(), len(b.terrain), len(b.ports))
	return b, nil
}

// buildStandard grows the 3/4-player topology: center tile, ring of six,
// ring of twelve, then a border ring of port candidates.
func (b *Board) buildStandard() {
	start := b.grid.Start(Attrs{})
	b.grid.Surround(start, nil)
	b.grid.SurroundAll(nil)
	b.finishBuild()
}

// buildLarge grows the 5/6-player topology from a 2x2 center block, two
// full rings, then the port candidate border.
func (b *Board) buildLarge() {
	b.grid.Start(Attrs{})
	b.grid.GrowAll([]hexgrid.Direction{hexgrid.DownRight}, nil)
	b.grid.GrowAll([]hexgrid.Direction{hexgrid.Down}, nil)
	b.grid.SurroundAll(nil)
	b.grid.SurroundAll(nil)
	b.finishBuild()
}

// finishBuild snapshots the terrain tiles, grows the port candidate ring,
// selects the kept ports, and drops the rest from the tile collection.
func (b *Board) finishBuild() {
	b.terrain = slices.Clone(b.grid.Tiles())
	candidates := b.grid.SurroundAll(func() Attrs { return Attrs{Port: true} })

	// Clockwise from 12 o'clock. Descending atan2(x, y) starts straight
	// up and walks the ring clockwise.
	slices.SortStableFunc(candidates, func(a, c *Tile) int {
		aa := math.Atan2(float64(a.X()), a.Y())
		cc := math.Atan2(float64(c.X()), c.Y())
		switch {
		case aa > cc:
			return -1
		case aa < cc:
			return 1
		}
		return 0
	})

	if b.useFrame && b.variant == VariantLarge {
		b.ports = make([]*Tile, 0, len(largeFramePorts))
		for _, i := range largeFramePorts {
			b.ports = append(b.ports, candidates[i])
		}
	} else {
		// Keep every other candidate, starting from the second.
		for i := 1; i < len(candidates); i += 2 {
			b.ports = append(b.ports, candidates[i])
		}
	}

	b.grid.Retain(append(slices.Clone(b.terrain), b.ports...))
}

// Variant returns the construction variant of the board.
func (b *Board) Variant() Variant { return b.variant }

// Tiles returns every tile of the board (terrain then ports) in creation
// order. Read-only view.
func (b *Board) Tiles() []*Tile { return b.grid.Tiles() }

// TerrainTiles returns the terrain tiles in creation order. Read-only
// view.
func (b *Board) TerrainTiles() []*Tile { return b.terrain }

// PortTiles returns the selected port tiles, clockwise from 12 o'clock.
// Read-only view.
func (b *Board) PortTiles() []*Tile { return b.ports }

// Columns returns the terrain tiles grouped into top-to-bottom columns,
// the ordering terrain assignment uses. Read-only view.
func (b *Board) Columns() []*Tile { return b.columns }

// Spiral returns the counter-clockwise spiral ordering over all terrain
// tiles, the ordering number assignment uses. Read-only view.
func (b *Board) Spiral() []*Tile { return b.spiral }

// Bounds returns the coordinate bounding box of the board.
func (b *Board) Bounds() hexgrid.Bounds { return b.grid.Bounds() }

// TileAt returns the tile at the given coordinates, or an error wrapping
// [hexgrid.ErrNoTile].
func (b *Board) TileAt(x int, y float64) (*Tile, error) { return b.grid.TileAt(x, y) }

// TrialCount reports how many assignment passes the last [Board.Layout]
// call ran: 0 when no validators were supplied, otherwise at least 1.
func (b *Board) TrialCount() int { return b.trials }
