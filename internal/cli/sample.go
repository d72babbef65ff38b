package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexboard/pkg/analysis"
	"github.com/matzehuels/hexboard/pkg/cache"
)

// sampleTTL bounds how long cached simulation results are reused.
const sampleTTL = 7 * 24 * time.Hour

// newSampleCmd creates the sample command.
func newSampleCmd() *cobra.Command {
	var (
		flags   layoutFlags
		boards  int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Aggregate balance statistics over simulated boards",
		Long: `Aggregate balance statistics over simulated boards.

Generates many boards with the given rules and reports how per-tile
production, terrain spread, and triple-intersection pips are distributed
across layouts. Results are cached under a key derived from the run
parameters, so repeating a run is cheap.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())

			store, err := openCache(noCache)
			if err != nil {
				logger.Warn("cache unavailable, computing fresh", "err", err)
				store = cache.NewNullCache()
			}
			defer store.Close()

			key := cache.Key("sample", boards, res.variant.String(), flags.frame, res.rules)

			var data *analysis.SampleData
			cached := false
			if raw, hit, err := store.Get(cmd.Context(), key); err == nil && hit {
				if err := json.Unmarshal(raw, &data); err == nil {
					cached = true
				}
			}

			if data == nil {
				prog := newProgress(logger)
				data, err = analysis.Sample(boards, res.variant, res.layout, res.buildOpts...)
				if err != nil {
					return fmt.Errorf("sample boards: %w", err)
				}
				prog.done(fmt.Sprintf("Laid out %d boards", boards))

				if raw, err := json.Marshal(data); err == nil {
					if err := store.Set(cmd.Context(), key, raw, sampleTTL); err != nil {
						logger.Debug("cache write failed", "err", err)
					}
				}
			}

			printRunStats(data.Boards, cached)
			if err := printSeries("per-tile pips", data.PerTilePips); err != nil {
				return err
			}
			if err := printSeries("terrain spread", data.Spread); err != nil {
				return err
			}
			if err := printSeries("triple pips", data.TriPips); err != nil {
				return err
			}

			quantiles, err := analysis.Percentiles(data.TriPips.Mean)
			if err != nil {
				return fmt.Errorf("percentiles: %w", err)
			}
			printInfo("triple-pip means, min to max by deciles")
			printDetail("%s", formatQuantiles(quantiles))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&boards, "boards", "n", 100, "number of boards to simulate")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// printSeries prints one measure's distribution across the run.
func printSeries(name string, s analysis.Series) error {
	lo, err := stats.Min(s.Min)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	hi, err := stats.Max(s.Max)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	mean, err := stats.Mean(s.Mean)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	dev, err := stats.Mean(s.Deviation)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	printKeyValue(name, fmt.Sprintf("mean %.2f  deviation %.2f  range %.2f to %.2f", mean, dev, lo, hi))
	return nil
}

func formatQuantiles(qs []float64) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = fmt.Sprintf("%.1f", q)
	}
	return strings.Join(parts, "  ")
}

// openCache opens the file cache under the user cache directory.
func openCache(disabled bool) (cache.Cache, error) {
	if disabled {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the directory for cached sample runs.
func cacheDir() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("get cache dir: %w", err)
	}
	return filepath.Join(base, "hexboard"), nil
}
