// Package analysis computes descriptive statistics for laid-out boards.
//
// # Overview
//
// The package answers "how balanced is this layout?" with three measures:
// production per terrain kind ([TerrainProduction]), how spread out each
// terrain's tiles are ([TerrainSpread]), and the pip totals at intersections
// where several producing tiles meet ([IntersectionPips]). [Summarize] folds
// the three into a single report for one board, and [Sample] repeats the
// exercise over many freshly generated boards to characterize a whole rule
// set rather than a single draw.
//
// Aggregation (mean, population standard deviation, percentiles) is done
// with github.com/montanaflynn/stats.
package analysis
