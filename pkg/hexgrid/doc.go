// Package hexgrid provides generic hexagonal tessellation primitives.
//
// # Overview
//
// A [Grid] is an ordered collection of [Tile] values linked into a
// hex-adjacency graph. Tiles carry an arbitrary payload type, so the package
// knows nothing about what a tile means - a game board, a world map, or a
// test fixture all build on the same growth operations.
//
// Grids are built incrementally: [Grid.Start] places the first tile at the
// origin, and [Grid.Grow], [Grid.GrowAll], [Grid.Surround], and
// [Grid.SurroundAll] extend the tessellation outward. Growth never
// overwrites existing neighbors, and after each growth step corner
// propagation ([Tile.JoinCorners]) links newly created siblings that the
// geometry makes mutually adjacent, so callers never do that bookkeeping by
// hand.
//
// # Directions and Coordinates
//
// The six edges of a hex are addressed by [Direction] values in degrees
// (0, 60, ..., 300), with 0 pointing up and angles increasing clockwise.
// Every tile has planar coordinates derived from its parent at creation
// time: x steps are whole units, y steps are whole or half units depending
// on the link angle. Coordinates are fixed once assigned and never
// recomputed.
//
// # Invariants
//
// Adjacency is always mutual: if a tile's neighbor at direction d is u,
// then u's neighbor at d.Opposite() is the original tile. Linking a tile
// whose own position is not yet established returns [ErrUnplacedTile];
// only the first tile of a grid originates at (0, 0) by fiat.
package hexgrid
