package cli

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/board/validate"
)

// seedMix decorrelates the two PCG seed words.
const seedMix = 0x9e3779b97f4a7c15

// Rules is the TOML layout rules file. All fields are optional; zero values
// fall back to the defaults in [defaultRules].
//
// Example:
//
//	[layout]
//	terrain = "shuffle"
//	numbers = "standard"
//	ports = "shuffle"
//	seed = 42
//	max-trials = 10000
//
//	[validators]
//	max-intersection-pips = 11
//	no-adjacent-6-8 = true
type Rules struct {
	Layout     LayoutRules    `toml:"layout"`
	Validators ValidatorRules `toml:"validators"`
}

// LayoutRules selects assignment modes and the random seed.
type LayoutRules struct {
	Terrain   string `toml:"terrain"`
	Numbers   string `toml:"numbers"`
	Ports     string `toml:"ports"`
	Seed      int64  `toml:"seed"`
	MaxTrials int    `toml:"max-trials"`
}

// ValidatorRules toggles layout validators. Threshold validators are off at
// zero; boolean validators are off at false.
type ValidatorRules struct {
	MaxIntersectionPips  int  `toml:"max-intersection-pips"`
	NoAdjacent68         bool `toml:"no-adjacent-6-8"`
	NoAdjacent212        bool `toml:"no-adjacent-2-12"`
	NoRepeatedHotTerrain bool `toml:"no-repeated-hot-terrain"`
	NoNumberPairs        bool `toml:"no-number-pairs"`
	NoTerrainPairs       bool `toml:"no-terrain-pairs"`
	NoTerrainTriangles   bool `toml:"no-terrain-triangles"`
	TerrainRegions       bool `toml:"terrain-regions"`
	MaxPortPips          int  `toml:"max-port-pips"`
	MinOrePips           int  `toml:"min-ore-pips"`
}

// defaultRules mirrors the classic setup procedure: shuffled terrain and
// ports, the standard number run, no validators.
func defaultRules() Rules {
	return Rules{
		Layout: LayoutRules{
			Terrain: board.ModeShuffle.String(),
			Numbers: board.ModeStandard.String(),
			Ports:   board.ModeShuffle.String(),
		},
	}
}

// loadRules reads a TOML rules file, or returns the defaults when path is
// empty.
func loadRules(path string) (Rules, error) {
	rules := defaultRules()
	if path == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules: %w", err)
	}
	if err := toml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if rules.Layout.Terrain == "" {
		rules.Layout.Terrain = board.ModeShuffle.String()
	}
	if rules.Layout.Numbers == "" {
		rules.Layout.Numbers = board.ModeStandard.String()
	}
	if rules.Layout.Ports == "" {
		rules.Layout.Ports = board.ModeShuffle.String()
	}
	return rules, nil
}

// layoutOptions converts the rules into board layout options.
func (r Rules) layoutOptions() (board.LayoutOptions, error) {
	var opts board.LayoutOptions
	var err error

	if opts.Terrain, err = board.ParseMode(r.Layout.Terrain); err != nil {
		return board.LayoutOptions{}, err
	}
	if opts.Numbers, err = board.ParseMode(r.Layout.Numbers); err != nil {
		return board.LayoutOptions{}, err
	}
	if opts.Ports, err = board.ParseMode(r.Layout.Ports); err != nil {
		return board.LayoutOptions{}, err
	}

	opts.MaxTrials = r.Layout.MaxTrials
	opts.Validators = r.Validators.build()
	if r.Layout.Seed != 0 {
		seed := uint64(r.Layout.Seed)
		opts.Rand = rand.New(rand.NewPCG(seed, seed^seedMix))
	}
	return opts, nil
}

func (v ValidatorRules) build() []board.Validator {
	var out []board.Validator
	if v.MaxIntersectionPips > 0 {
		out = append(out, validate.MaxIntersectionPips(v.MaxIntersectionPips))
	}
	if v.NoAdjacent68 {
		out = append(out, validate.NoAdjacent68())
	}
	if v.NoAdjacent212 {
		out = append(out, validate.NoAdjacent212())
	}
	if v.NoRepeatedHotTerrain {
		out = append(out, validate.NoRepeatedHotTerrain())
	}
	if v.NoNumberPairs {
		out = append(out, validate.NoNumberPairs())
	}
	if v.NoTerrainPairs {
		out = append(out, validate.NoTerrainPairs())
	}
	if v.NoTerrainTriangles {
		out = append(out, validate.NoTerrainTriangles())
	}
	if v.TerrainRegions {
		out = append(out, validate.TerrainRegions())
	}
	if v.MaxPortPips > 0 {
		out = append(out, validate.MaxPortPips(v.MaxPortPips))
	}
	if v.MinOrePips > 0 {
		out = append(out, validate.MinOrePips(v.MinOrePips))
	}
	return out
}
