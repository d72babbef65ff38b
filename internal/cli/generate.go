package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexboard/pkg/analysis"
	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/observability"
	"github.com/matzehuels/hexboard/pkg/render/textgrid"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	var (
		flags   layoutFlags
		plain   bool
		noStats bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build a board, lay it out, and print it",
		Long: `Build a board, lay it out, and print it.

Terrain, production numbers, and trade ports are assigned according to the
selected modes, rerolling until every validator from the rules file accepts
the layout. The finished board is printed as character art together with a
short balance report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			observability.SetGenerationHooks(&logHooks{logger: logger})
			defer observability.SetGenerationHooks(nil)

			b, err := board.New(res.variant, res.buildOpts...)
			if err != nil {
				return fmt.Errorf("build board: %w", err)
			}
			prog := newProgress(logger)
			if err := b.Layout(res.layout); err != nil {
				return fmt.Errorf("lay out board: %w", err)
			}
			prog.done(fmt.Sprintf("Laid out %s board", res.variant))

			art := textgrid.Render(b)
			if !plain {
				art = colorizeBoard(art)
			}
			fmt.Println(art)

			if noStats {
				return nil
			}
			fmt.Println()
			return printSummary(b)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "disable terrain colors")
	cmd.Flags().BoolVar(&noStats, "no-stats", false, "skip the balance report")

	return cmd
}

// printSummary prints the balance report for a laid-out board.
func printSummary(b *board.Board) error {
	s, err := analysis.Summarize(b)
	if err != nil {
		return fmt.Errorf("summarize board: %w", err)
	}

	switch s.Trials {
	case 0:
		// No validators ran; nothing to report.
	case 1:
		printInfo("It took one trial to generate this layout")
	default:
		printInfo("It took %d trials to generate this layout", s.Trials)
	}

	for _, terr := range []board.Terrain{
		board.Fields, board.Forest, board.Hills, board.Mountains, board.Pasture,
	} {
		if perTile, ok := s.PerTile[terr]; ok {
			spread := s.Spread[terr]
			printKeyValue(terr.String(), fmt.Sprintf("%.1f pips/tile, spread %.1f", perTile, spread))
		}
	}
	printDetail("per-tile production deviation %.1f, spread deviation %.1f", s.PerTileDev, s.SpreadDev)
	printDetail("%d triple intersections, %.1f pips mean, %.1f deviation", s.TriCount, s.TriMean, s.TriDev)
	return nil
}
