// Package board builds and lays out hex game boards.
//
// # Overview
//
// A [Board] is a fixed topology - terrain tiles plus a ring of trade
// ports - built on top of the generic hexgrid tessellation, with three
// orderings derived once from pure adjacency:
//
//   - columns: terrain grouped into top-to-bottom chains, the order
//     terrain assignment uses
//   - spiral: a counter-clockwise total order over all terrain tiles
//     starting at the bottom, the order number assignment uses
//   - intersections: deduplicated groups of mutually adjacent terrain
//     tiles, the corners where settlements sit
//
// [New] constructs the topology for a [Variant]; [Board.Layout] then
// assigns terrain, production numbers, and port kinds in beginner,
// standard, or shuffled order, retrying a shuffled assignment until every
// [Validator] accepts it. The topology never changes between trials -
// only tile attributes are rewritten.
//
// # Randomness
//
// Shuffled modes draw from the process-wide math/rand/v2 source unless
// [LayoutOptions].Rand injects a seeded one. The package itself never
// seeds anything.
//
// # Termination
//
// With an unsatisfiable validator set and MaxTrials of zero, Layout
// retries forever, matching the reference behavior this package
// reimplements. Set MaxTrials to get [ErrTrialLimit] instead.
package board
