package hexgrid

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoTile is returned by [Grid.TileAt] when no tile occupies the
// requested coordinates.
var ErrNoTile = errors.New("no tile at coordinates")

// Bounds is the coordinate bounding box of a grid. Top is the smallest y
// (highest row on screen), Bottom the largest; Left and Right bound x.
type Bounds struct {
	Top    float64
	Bottom float64
	Left   int
	Right  int
}

// Grid is an ordered collection of tiles linked into a hex tessellation.
// Insertion order is significant: iteration over [Grid.Tiles] is
// deterministic and matches creation order.
//
// The zero value is not usable - use [New]. Grid is not safe for
// concurrent use without external synchronization.
type Grid[T any] struct {
	tiles  []*Tile[T]
	nextID int
	bounds Bounds
}

// New creates an empty grid.
func New[T any]() *Grid[T] {
	return &Grid[T]{}
}

// Start creates a tile at the origin and appends it to the grid. The first
// tile anchors the coordinate system; every later tile gets its position
// from the neighbor that grew it.
func (g *Grid[T]) Start(data T) *Tile[T] {
	t := g.newTile(data)
	t.placed = true
	g.tiles = append(g.tiles, t)
	return t
}

// Grow creates a new neighbor of t at every requested direction that is
// still empty, links it, and appends it to the grid. Existing neighbors
// are never overwritten. After growing, corner propagation runs on t so
// that freshly created siblings become mutually linked where the geometry
// requires it.
//
// The payload function produces the Data value for each new tile; a nil
// payload yields zero values. Returns the newly created tiles in direction
// order.
func (g *Grid[T]) Grow(t *Tile[T], dirs []Direction, payload func() T) []*Tile[T] {
	var created []*Tile[T]
	for _, d := range dirs {
		if !d.Valid() || t.Neighbor(d) != nil {
			continue
		}
		var data T
		if payload != nil {
			data = payload()
		}
		n := g.newTile(data)
		// t belongs to the grid and is therefore placed; Link cannot fail.
		_ = t.Link(d, n)
		created = append(created, n)
	}
	t.JoinCorners()
	g.tiles = append(g.tiles, created...)
	return created
}

// GrowAll applies [Grid.Grow] to a snapshot of the current tile collection
// and returns all newly created tiles. Tiles created during the pass are
// not themselves grown, so one GrowAll adds at most one layer.
func (g *Grid[T]) GrowAll(dirs []Direction, payload func() T) []*Tile[T] {
	var created []*Tile[T]
	for _, t := range slices.Clone(g.tiles) {
		created = append(created, g.Grow(t, dirs, payload)...)
	}
	return created
}

// Surround grows neighbors of t in all six directions.
func (g *Grid[T]) Surround(t *Tile[T], payload func() T) []*Tile[T] {
	return g.Grow(t, Directions[:], payload)
}

// SurroundAll grows every tile of the grid in all six directions, adding a
// full border ring around the current tessellation.
func (g *Grid[T]) SurroundAll(payload func() T) []*Tile[T] {
	return g.GrowAll(Directions[:], payload)
}

// Tiles returns all tiles in creation order. The returned slice is a
// read-only view; do not modify it.
func (g *Grid[T]) Tiles() []*Tile[T] { return g.tiles }

// Len returns the number of tiles in the grid.
func (g *Grid[T]) Len() int { return len(g.tiles) }

// Bounds returns the bounding box computed by the last call to
// [Grid.RecomputeBounds]. Growth leaves the box stale on purpose; callers
// recompute once construction settles.
func (g *Grid[T]) Bounds() Bounds { return g.bounds }

// RecomputeBounds scans every tile and updates the bounding box to the
// min/max of all coordinates. An empty grid keeps the zero box.
func (g *Grid[T]) RecomputeBounds() {
	g.bounds = Bounds{}
	for _, t := range g.tiles {
		g.bounds.Left = min(g.bounds.Left, t.x)
		g.bounds.Right = max(g.bounds.Right, t.x)
		g.bounds.Top = min(g.bounds.Top, t.y)
		g.bounds.Bottom = max(g.bounds.Bottom, t.y)
	}
}

// Retain replaces the grid's ordered tile collection. Tiles left out stay
// linked inside the tessellation (their neighbors keep pointing at them)
// but no longer appear in [Grid.Tiles], bounds computation, or coordinate
// lookups. Board builders use this to discard unused border candidates
// after selecting which ones to keep.
func (g *Grid[T]) Retain(tiles []*Tile[T]) {
	g.tiles = slices.Clone(tiles)
}

// TileAt returns the tile occupying the given coordinates. Returns an
// error wrapping [ErrNoTile] if no tile matches. Linear scan - meant for
// tests and debugging, not hot paths.
func (g *Grid[T]) TileAt(x int, y float64) (*Tile[T], error) {
	for _, t := range g.tiles {
		if t.x == x && t.y == y {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: (%d, %v)", ErrNoTile, x, y)
}

func (g *Grid[T]) newTile(data T) *Tile[T] {
	t := &Tile[T]{Data: data, id: g.nextID}
	g.nextID++
	return t
}
