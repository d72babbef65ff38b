package board

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/hexboard/pkg/hexgrid"
)

// Intersection is a group of mutually adjacent terrain tiles, sorted by
// tile ID. Size 3 groups are the three-tile junctions that matter for
// settlement placement; size 2 groups are board-edge pairs, size 1 the
// lonely outer corners.
type Intersection []*Tile

// Pips sums the pip weights of the group's producing tiles. ok is false
// when any member has no number assigned, matching the convention that a
// partially assigned junction has no meaningful total.
func (in Intersection) Pips() (total int, ok bool) {
	for _, t := range in {
		w, has := t.Data.Pips()
		if !has {
			return 0, false
		}
		total += w
	}
	return total, true
}

// key canonicalizes the group for deduplication.
func (in Intersection) key() string {
	var sb strings.Builder
	for i, t := range in {
		if i > 0 {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.Itoa(t.ID()))
	}
	return sb.String()
}

// arrangeColumns finds the topmost terrain tile, walks outward along the
// top edge in both directions, and drops a column straight down from each
// top tile. Column order is center first, then alternating right and
// left, which is the order the canonical terrain sequences expect.
func (b *Board) arrangeColumns() {
	top := b.grid.Tiles()[0]
climb:
	for {
		for _, d := range []hexgrid.Direction{hexgrid.Up, hexgrid.UpRight, hexgrid.UpLeft} {
			if higher := top.Neighbor(d); higher != nil && !higher.Data.Port {
				top = higher
				continue climb
			}
		}
		break
	}

	tops := []*Tile{top}
	right := top.Neighbor(hexgrid.DownRight)
	left := top.Neighbor(hexgrid.DownLeft)
	for right != nil || left != nil {
		if right != nil {
			tops = append(tops, right)
			if n := right.Neighbor(hexgrid.DownRight); n != nil && !n.Data.Port {
				right = n
			} else {
				right = nil
			}
		}
		if left != nil {
			tops = append(tops, left)
			if n := left.Neighbor(hexgrid.DownLeft); n != nil && !n.Data.Port {
				left = n
			} else {
				left = nil
			}
		}
	}

	b.columns = b.columns[:0]
	for _, t := range tops {
		b.columns = append(b.columns, t)
		for {
			lower := b.columns[len(b.columns)-1].Neighbor(hexgrid.Down)
			if lower == nil || lower.Data.Port {
				break
			}
			b.columns = append(b.columns, lower)
		}
	}
}

// arrangeSpiral walks the terrain counter-clockwise from the bottommost
// tile inward. At each step the walk keeps its current facing and only
// turns (60 degrees counter-clockwise) when the tile ahead is absent,
// already visited, or a port. Turning through all six directions without
// progress means the topology cannot be spiraled.
func (b *Board) arrangeSpiral() error {
	bottom := b.grid.Tiles()[0]
descend:
	for {
		for _, d := range []hexgrid.Direction{hexgrid.Down, hexgrid.DownRight, hexgrid.DownLeft} {
			if lower := bottom.Neighbor(d); lower != nil && !lower.Data.Port {
				bottom = lower
				continue descend
			}
		}
		break
	}

	b.spiral = append(b.spiral[:0], bottom)
	visited := map[*Tile]bool{bottom: true}
	dir := hexgrid.UpRight
	for len(b.spiral) < len(b.terrain) {
		start := dir
		for {
			target := b.spiral[len(b.spiral)-1].Neighbor(dir)
			if target != nil && !visited[target] && !target.Data.Port {
				break
			}
			dir = dir.Prev()
			if dir == start {
				return fmt.Errorf("%w: dead end at tile %d after %d tiles",
					ErrSpiralStuck, b.spiral[len(b.spiral)-1].ID(), len(b.spiral))
			}
		}
		next := b.spiral[len(b.spiral)-1].Neighbor(dir)
		b.spiral = append(b.spiral, next)
		visited[next] = true
	}
	return nil
}

// arrangeIntersections collects, for every terrain tile and each pair of
// directions 60 degrees apart, the group of present non-port tiles around
// that corner. Groups are ID-sorted and deduplicated.
func (b *Board) arrangeIntersections() {
	seen := make(map[string]bool)
	b.intersections = b.intersections[:0]
	for _, tile := range b.terrain {
		for _, d := range hexgrid.Directions {
			group := Intersection{tile}
			if n := tile.Neighbor(d); n != nil && !n.Data.Port {
				group = append(group, n)
			}
			if n := tile.Neighbor(d.Next()); n != nil && !n.Data.Port {
				group = append(group, n)
			}
			slices.SortFunc(group, func(a, c *Tile) int { return a.ID() - c.ID() })
			if k := group.key(); !seen[k] {
				seen[k] = true
				b.intersections = append(b.intersections, group)
			}
		}
	}
}

// Intersections returns the deduplicated corner groups, optionally
// filtered by group size. With no arguments every group is returned,
// including the size-1 outer corners; Intersections(3) yields only the
// three-tile junctions. A filter matching nothing returns an empty slice,
// not an error.
func (b *Board) Intersections(sizes ...int) []Intersection {
	if len(sizes) == 0 {
		return slices.Clone(b.intersections)
	}
	var out []Intersection
	for _, in := range b.intersections {
		if slices.Contains(sizes, len(in)) {
			out = append(out, in)
		}
	}
	return out
}
