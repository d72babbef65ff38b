package validate

import (
	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/hexgrid"
)

// MaxIntersectionPips rejects layouts where any intersection's producing
// tiles sum to more than n pips. The conventional cap is 11: it forbids
// corners like 6-8-9 that dominate production.
func MaxIntersectionPips(n int) board.Validator {
	return func(b *board.Board) bool {
		for _, in := range b.Intersections() {
			total := 0
			for _, t := range in {
				if w, ok := t.Data.Pips(); ok {
					total += w
				}
			}
			if total > n {
				return false
			}
		}
		return true
	}
}

// NoAdjacent68 rejects layouts where tiles numbered 6 and 8 (the hottest
// numbers) touch each other, in any combination.
func NoAdjacent68() board.Validator {
	return noAdjacentNumbers(6, 8)
}

// NoAdjacent212 rejects layouts where tiles numbered 2 and 12 (the
// coldest numbers) touch each other, in any combination.
func NoAdjacent212() board.Validator {
	return noAdjacentNumbers(2, 12)
}

// noAdjacentNumbers forbids any neighboring pair drawn from {a, b}.
func noAdjacentNumbers(a, b int) board.Validator {
	bad := func(x, y int) bool {
		return (x == a || x == b) && (y == a || y == b)
	}
	return func(bd *board.Board) bool {
		for _, t := range bd.Tiles() {
			if n := t.Data.Number(); n != 0 {
				for _, d := range hexgrid.Directions {
					adj := t.Neighbor(d)
					if adj == nil {
						continue
					}
					if m := adj.Data.Number(); m != 0 && bad(n, m) {
						return false
					}
				}
			}
		}
		return true
	}
}

// NoRepeatedHotTerrain rejects layouts where any terrain kind holds more
// than one 5-pip tile (numbers 6 and 8), spreading the hottest numbers
// over distinct resources.
func NoRepeatedHotTerrain() board.Validator {
	return func(b *board.Board) bool {
		hot := make(map[board.Terrain]bool)
		for _, t := range b.TerrainTiles() {
			if w, ok := t.Data.Pips(); ok && w == 5 {
				if hot[t.Data.Terrain] {
					return false
				}
				hot[t.Data.Terrain] = true
			}
		}
		return true
	}
}

// NoNumberPairs rejects layouts where two neighboring tiles carry the
// same production number. Tiles without a number are ignored.
func NoNumberPairs() board.Validator {
	return func(b *board.Board) bool {
		for _, t := range b.TerrainTiles() {
			n := t.Data.Number()
			if n == 0 {
				continue
			}
			for _, d := range hexgrid.Directions {
				if adj := t.Neighbor(d); adj != nil && adj.Data.Number() == n {
					return false
				}
			}
		}
		return true
	}
}

// NoTerrainPairs rejects layouts where two neighboring tiles share a
// terrain kind. This also covers adjacent ports of the same kind on
// frame-spaced boards.
func NoTerrainPairs() board.Validator {
	return func(b *board.Board) bool {
		for _, t := range b.Tiles() {
			for _, d := range hexgrid.Directions {
				adj := t.Neighbor(d)
				if adj == nil || adj.Data.Terrain == board.TerrainNone {
					continue
				}
				if t.Data.Terrain == adj.Data.Terrain {
					return false
				}
			}
		}
		return true
	}
}

// NoTerrainTriangles rejects layouts with a three-tile intersection whose
// members all share one terrain kind.
func NoTerrainTriangles() board.Validator {
	return func(b *board.Board) bool {
		for _, in := range b.Intersections(3) {
			if in[0].Data.Terrain == in[1].Data.Terrain && in[1].Data.Terrain == in[2].Data.Terrain {
				return false
			}
		}
		return true
	}
}

// TerrainRegions rejects layouts where some terrain tile has no neighbor
// of its own kind, forcing every resource into contiguous regions of at
// least two. Kinds listed in ignore are exempt; with no arguments only
// the desert is.
func TerrainRegions(ignore ...board.Terrain) board.Validator {
	if len(ignore) == 0 {
		ignore = []board.Terrain{board.Desert}
	}
	exempt := make(map[board.Terrain]bool, len(ignore))
	for _, t := range ignore {
		exempt[t] = true
	}
	return func(b *board.Board) bool {
		for _, t := range b.TerrainTiles() {
			if exempt[t.Data.Terrain] {
				continue
			}
			paired := false
			for _, d := range hexgrid.Directions {
				if adj := t.Neighbor(d); adj != nil && adj.Data.Terrain == t.Data.Terrain {
					paired = true
					break
				}
			}
			if !paired {
				return false
			}
		}
		return true
	}
}

// MaxPortPips rejects layouts where a resource port's neighboring tiles
// of its own matching terrain sum to more than n pips, keeping 2:1 ports
// from sitting on top of their own strongest production. PortAny tiles
// are exempt.
func MaxPortPips(n int) board.Validator {
	return func(b *board.Board) bool {
		for _, p := range b.PortTiles() {
			match, ok := board.TerrainForPort[p.Data.Terrain]
			if !ok {
				continue
			}
			pips := 0
			for _, d := range hexgrid.Directions {
				adj := p.Neighbor(d)
				if adj == nil || adj.Data.Terrain != match {
					continue
				}
				if w, has := adj.Data.Pips(); has {
					pips += w
				}
			}
			if pips > n {
				return false
			}
		}
		return true
	}
}

// MinOrePips rejects layouts where no mountain tile reaches at least n
// pips, guaranteeing one reasonably productive ore source.
func MinOrePips(n int) board.Validator {
	return func(b *board.Board) bool {
		for _, t := range b.TerrainTiles() {
			if t.Data.Terrain != board.Mountains {
				continue
			}
			if w, ok := t.Data.Pips(); ok && w >= n {
				return true
			}
		}
		return false
	}
}
