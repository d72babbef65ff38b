package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/observability"
	"github.com/matzehuels/hexboard/pkg/render/graphdot"
)

// newExportCmd creates the export command.
func newExportCmd() *cobra.Command {
	var (
		flags  layoutFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board's adjacency graph as DOT or SVG",
		Long: `Write the board's adjacency graph as DOT or SVG.

Generates a board like 'generate' does, then exports its adjacency graph
with tiles pinned at their hex coordinates. The DOT output targets the
neato engine; SVG output is rendered in-process.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != "dot" && format != "svg" {
				return fmt.Errorf("unknown format %q (want dot or svg)", format)
			}
			if output == "" {
				output = "board." + format
			}

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
			if err := b.Layout(res.layout); err != nil {
				return fmt.Errorf("lay out board: %w", err)
			}

			dot := graphdot.ToDOT(b)
			data := []byte(dot)
			if format == "svg" {
				prog := newProgress(logger)
				if data, err = graphdot.RenderSVG(dot); err != nil {
					return fmt.Errorf("render svg: %w", err)
				}
				prog.done("Rendered SVG")
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Exported %s board", res.variant)
			printFile(output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to board.<format>)")

	return cmd
}
