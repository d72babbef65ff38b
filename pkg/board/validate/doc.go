// Package validate provides constraint predicates for board layouts.
//
// Each factory returns a [board.Validator]: a pure predicate over a fully
// assigned board that reads derived orderings and tile attributes and
// never mutates them. Factories take thresholds so callers can tune how
// strict a constraint is; combining several validators narrows the space
// of acceptable layouts and drives the retry loop in [board.Board.Layout].
//
// The predicates fall into three families: pip concentration limits
// (MaxIntersectionPips, MaxPortPips, NoRepeatedHotTerrain, MinOrePips),
// adjacency restrictions on numbers (NoAdjacent68, NoAdjacent212,
// NoNumberPairs), and terrain distribution rules (NoTerrainPairs,
// NoTerrainTriangles, TerrainRegions).
package validate
