package hexgrid

import "errors"

var (
	// ErrUnplacedTile is returned by [Tile.Link] when the receiving tile's
	// own coordinates have not been fixed yet. A tile can only hand out
	// positions to neighbors once it has one itself; the first tile of a
	// grid is placed at the origin by [Grid.Start].
	ErrUnplacedTile = errors.New("tile has no position yet")

	// ErrInvalidDirection is returned by [Tile.Link] when the direction is
	// not one of the six defined hex directions.
	ErrInvalidDirection = errors.New("invalid hex direction")
)

// Tile is a single hexagonal cell in a [Grid]. It carries a unique
// per-grid ID, planar coordinates derived from its parent at creation,
// six directional neighbor slots, and an arbitrary payload.
//
// Tiles are created by grid growth operations; the zero value is not
// usable on its own because it has no position.
type Tile[T any] struct {
	// Data is the caller-defined payload attached to the tile.
	Data T

	id        int
	x         int
	y         float64
	placed    bool
	neighbors [6]*Tile[T]
}

// ID returns the tile's unique identifier within its grid.
// IDs increment in creation order starting from 0.
func (t *Tile[T]) ID() int { return t.id }

// X returns the tile's horizontal coordinate in whole hex units.
func (t *Tile[T]) X() int { return t.x }

// Y returns the tile's vertical coordinate. Diagonal links step by half
// units, so y may end in .5. Smaller y is further up.
func (t *Tile[T]) Y() float64 { return t.y }

// Neighbor returns the adjacent tile at direction d, or nil if the slot is
// empty or d is invalid.
func (t *Tile[T]) Neighbor(d Direction) *Tile[T] {
	if !d.Valid() {
		return nil
	}
	return t.neighbors[d.index()]
}

// Link makes n the tile's neighbor at direction d and the tile n's
// neighbor at the opposite direction, then fixes n's coordinates as an
// offset from the tile's own. Returns ErrUnplacedTile if the tile itself
// has no position yet, or ErrInvalidDirection for an angle outside the
// hex directions.
//
// Relinking an already-linked pair is harmless: the geometry assigns the
// same coordinates again.
func (t *Tile[T]) Link(d Direction, n *Tile[T]) error {
	if !d.Valid() {
		return ErrInvalidDirection
	}
	if !t.placed {
		return ErrUnplacedTile
	}
	t.neighbors[d.index()] = n
	n.neighbors[d.Opposite().index()] = t
	dx, dy := d.Offset()
	n.x = t.x + dx
	n.y = t.y + dy
	n.placed = true
	return nil
}

// UnlinkAll removes every neighbor link of the tile symmetrically, so no
// neighbor keeps a dangling back-reference. Intended for topology editing;
// normal board generation never unlinks.
func (t *Tile[T]) UnlinkAll() {
	for _, d := range Directions {
		if n := t.neighbors[d.index()]; n != nil {
			n.neighbors[d.Opposite().index()] = nil
			t.neighbors[d.index()] = nil
		}
	}
}

// JoinCorners links pairs of the tile's neighbors that sit 60 degrees
// apart to each other, completing the tessellation around shared corners.
// For neighbors a at d and b at d.Next(), a gains b as its neighbor at
// d+120. This is how a tile grown from two different parents becomes
// connected to both without manual bookkeeping.
func (t *Tile[T]) JoinCorners() {
	for _, d := range Directions {
		a := t.neighbors[d.index()]
		b := t.neighbors[d.Next().index()]
		if a != nil && b != nil {
			// a is placed (it has coordinates from t), so Link cannot fail.
			_ = a.Link(d.Next().Next(), b)
		}
	}
}
