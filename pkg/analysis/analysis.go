package analysis

import (
	"errors"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/matzehuels/hexboard/pkg/board"
)

// ErrNoData is returned when a statistic is requested for an empty series.
var ErrNoData = errors.New("analysis: no data")

// Production is a terrain kind's share of the board: how many tiles carry
// it and how many pips of production those tiles add up to.
type Production struct {
	Tiles int
	Pips  int
}

// TerrainProduction tallies tile count and total pips per terrain kind.
// The desert appears with zero pips; ports are not counted.
func TerrainProduction(b *board.Board) map[board.Terrain]Production {
	out := make(map[board.Terrain]Production)
	for _, tile := range b.TerrainTiles() {
		p := out[tile.Data.Terrain]
		p.Tiles++
		if pips, ok := tile.Data.Pips(); ok {
			p.Pips += pips
		}
		out[tile.Data.Terrain] = p
	}
	return out
}

// TerrainSpread reports, per terrain kind, the average distance between
// pairs of that kind's tiles. Distances are Euclidean in hex coordinates,
// truncated to whole hexes. Kinds with fewer than two tiles are omitted
// since they have no pairs.
func TerrainSpread(b *board.Board) map[board.Terrain]float64 {
	groups := make(map[board.Terrain][]*board.Tile)
	for _, tile := range b.TerrainTiles() {
		groups[tile.Data.Terrain] = append(groups[tile.Data.Terrain], tile)
	}

	out := make(map[board.Terrain]float64)
	for terr, tiles := range groups {
		total, pairs := 0, 0
		for i, a := range tiles {
			for _, z := range tiles[i+1:] {
				dx := float64(z.X() - a.X())
				dy := z.Y() - a.Y()
				total += int(math.Sqrt(dx*dx + dy*dy))
				pairs++
			}
		}
		if pairs > 0 {
			out[terr] = float64(total) / float64(pairs)
		}
	}
	return out
}

// IntersectionPips returns the pip totals of the intersections joining
// exactly size tiles. Intersections touching a desert or an unnumbered
// tile do not produce and are skipped.
func IntersectionPips(b *board.Board, size int) []int {
	var out []int
	for _, inter := range b.Intersections(size) {
		if total, ok := inter.Pips(); ok {
			out = append(out, total)
		}
	}
	return out
}

// Summary is the balance report for a single laid-out board.
type Summary struct {
	Trials int

	// Pips per tile for each producing terrain kind, and the population
	// standard deviation across kinds.
	PerTile    map[board.Terrain]float64
	PerTileDev float64

	// Average pairwise distance per terrain kind and its deviation.
	Spread    map[board.Terrain]float64
	SpreadDev float64

	// Triple-production intersections: how many there are and the mean
	// and deviation of their pip totals.
	TriCount int
	TriMean  float64
	TriDev   float64
}

// Summarize computes the balance report for a laid-out board.
func Summarize(b *board.Board) (Summary, error) {
	s := Summary{
		Trials:  b.TrialCount(),
		PerTile: make(map[board.Terrain]float64),
		Spread:  TerrainSpread(b),
	}

	for terr, p := range TerrainProduction(b) {
		if terr.Produces() {
			s.PerTile[terr] = float64(p.Pips) / float64(p.Tiles)
		}
	}

	var err error
	if s.PerTileDev, err = deviation(values(s.PerTile)); err != nil {
		return Summary{}, err
	}
	if s.SpreadDev, err = deviation(values(s.Spread)); err != nil {
		return Summary{}, err
	}

	tri := IntersectionPips(b, 3)
	s.TriCount = len(tri)
	series := make([]float64, len(tri))
	for i, p := range tri {
		series[i] = float64(p)
	}
	if s.TriMean, err = stats.Mean(series); err != nil {
		return Summary{}, errFor(err)
	}
	if s.TriDev, err = deviation(series); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// Percentiles returns the 0th through 100th percentile of the series in
// steps of ten, so eleven values from minimum to maximum.
func Percentiles(series []float64) ([]float64, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}
	out := make([]float64, 0, 11)
	min, err := stats.Min(series)
	if err != nil {
		return nil, errFor(err)
	}
	out = append(out, min)
	for p := 10; p <= 90; p += 10 {
		q, err := stats.Percentile(series, float64(p))
		if err != nil {
			return nil, errFor(err)
		}
		out = append(out, q)
	}
	max, err := stats.Max(series)
	if err != nil {
		return nil, errFor(err)
	}
	return append(out, max), nil
}

func deviation(series []float64) (float64, error) {
	dev, err := stats.StandardDeviation(series)
	if err != nil {
		return 0, errFor(err)
	}
	return dev, nil
}

func values[K comparable](m map[K]float64) []float64 {
	out := make([]float64, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

func errFor(err error) error {
	if errors.Is(err, stats.EmptyInputErr) {
		return ErrNoData
	}
	return err
}
