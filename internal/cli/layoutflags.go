package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexboard/pkg/board"
)

// layoutFlags are the flags shared by every command that generates boards.
// Command-line values override the rules file.
type layoutFlags struct {
	variant   string
	frame     bool
	rules     string
	terrain   string
	numbers   string
	ports     string
	seed      int64
	maxTrials int
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.variant, "variant", "standard", "board variant: standard, large")
	cmd.Flags().BoolVar(&f.frame, "frame", false, "use fixed frame port spacing (large variant)")
	cmd.Flags().StringVar(&f.rules, "rules", "", "TOML rules file with modes and validators")
	cmd.Flags().StringVar(&f.terrain, "terrain", "", "terrain mode: shuffle, beginner")
	cmd.Flags().StringVar(&f.numbers, "numbers", "", "number mode: shuffle, beginner, standard")
	cmd.Flags().StringVar(&f.ports, "ports", "", "port mode: shuffle, beginner")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 uses entropy)")
	cmd.Flags().IntVar(&f.maxTrials, "max-trials", 0, "abort after this many rejected layouts (0 is unbounded)")
}

// resolved is the outcome of merging a rules file with flag overrides.
type resolved struct {
	variant   board.Variant
	buildOpts []board.Option
	layout    board.LayoutOptions

	// rules is the effective rule set after overrides, used for cache keys.
	rules Rules
}

// resolve merges the rules file with explicit flag overrides and returns the
// pieces needed to build and lay out a board.
func (f *layoutFlags) resolve(cmd *cobra.Command) (resolved, error) {
	variant, err := board.ParseVariant(f.variant)
	if err != nil {
		return resolved{}, err
	}
	var buildOpts []board.Option
	if f.frame {
		if variant != board.VariantLarge {
			return resolved{}, fmt.Errorf("--frame requires the large variant")
		}
		buildOpts = append(buildOpts, board.WithFrame())
	}

	rules, err := loadRules(f.rules)
	if err != nil {
		return resolved{}, err
	}
	if cmd.Flags().Changed("terrain") {
		rules.Layout.Terrain = f.terrain
	}
	if cmd.Flags().Changed("numbers") {
		rules.Layout.Numbers = f.numbers
	}
	if cmd.Flags().Changed("ports") {
		rules.Layout.Ports = f.ports
	}
	if cmd.Flags().Changed("seed") {
		rules.Layout.Seed = f.seed
	}
	if cmd.Flags().Changed("max-trials") {
		rules.Layout.MaxTrials = f.maxTrials
	}

	layout, err := rules.layoutOptions()
	if err != nil {
		return resolved{}, err
	}
	return resolved{variant: variant, buildOpts: buildOpts, layout: layout, rules: rules}, nil
}
