package analysis

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/matzehuels/hexboard/pkg/board"
)

// Series collects one per-board measurement across a simulation run. Each
// slice has one entry per generated board.
type Series struct {
	Min       []float64
	Max       []float64
	Mean      []float64
	Deviation []float64
}

func (s *Series) observe(values []float64) error {
	min, err := stats.Min(values)
	if err != nil {
		return errFor(err)
	}
	max, err := stats.Max(values)
	if err != nil {
		return errFor(err)
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return errFor(err)
	}
	dev, err := stats.StandardDeviation(values)
	if err != nil {
		return errFor(err)
	}
	s.Min = append(s.Min, min)
	s.Max = append(s.Max, max)
	s.Mean = append(s.Mean, mean)
	s.Deviation = append(s.Deviation, dev)
	return nil
}

// SampleData aggregates the three balance measures over a run of simulated
// boards: pips per tile by terrain, terrain spread, and triple-intersection
// pip totals.
type SampleData struct {
	Boards      int
	PerTilePips Series
	Spread      Series
	TriPips     Series
}

// Sample generates n boards of the given variant, lays each one out with
// the given options, and aggregates the balance measures per board. Build
// options are forwarded to [board.New].
func Sample(n int, variant board.Variant, layout board.LayoutOptions, opts ...board.Option) (*SampleData, error) {
	data := &SampleData{Boards: n}
	for i := 0; i < n; i++ {
		b, err := board.New(variant, opts...)
		if err != nil {
			return nil, err
		}
		if err := b.Layout(layout); err != nil {
			return nil, fmt.Errorf("board %d: %w", i+1, err)
		}

		perTile := make([]float64, 0, 5)
		for terr, p := range TerrainProduction(b) {
			if terr.Produces() {
				perTile = append(perTile, float64(p.Pips)/float64(p.Tiles))
			}
		}
		if err := data.PerTilePips.observe(perTile); err != nil {
			return nil, err
		}
		if err := data.Spread.observe(values(TerrainSpread(b))); err != nil {
			return nil, err
		}

		tri := IntersectionPips(b, 3)
		series := make([]float64, len(tri))
		for j, p := range tri {
			series[j] = float64(p)
		}
		if err := data.TriPips.observe(series); err != nil {
			return nil, err
		}
	}
	return data, nil
}
