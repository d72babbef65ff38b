// Package pkg provides the core libraries for hexboard generation.
//
// # Overview
//
// Hexboard builds hexagonal tile game boards and assigns terrain, production
// numbers, and trade ports under configurable balance rules. The pkg
// directory is organized into five areas:
//
//  1. [hexgrid] - Pointy-side-up hex grid with typed directions and growth
//     primitives, generic over the tile payload.
//  2. [board] - Board variants, derived orderings (columns, spiral,
//     intersections), and the layout engine with its [board/validate] rules.
//  3. [analysis] - Balance statistics for single boards and simulation runs.
//  4. [render] - Output formats: [render/textgrid] character art and
//     [render/graphdot] DOT/SVG adjacency graphs.
//  5. [cache], [observability] - Supporting infrastructure for the CLI.
//
// # Quick Start
//
// Build a standard board and lay it out with shuffled terrain:
//
//	b, _ := board.New(board.VariantStandard)
//	err := b.Layout(board.LayoutOptions{
//	    Terrain: board.ModeShuffle,
//	    Numbers: board.ModeStandard,
//	    Ports:   board.ModeShuffle,
//	    Validators: []board.Validator{
//	        validate.MaxIntersectionPips(11),
//	        validate.NoAdjacent68(),
//	    },
//	})
//	fmt.Println(textgrid.Render(b))
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/board/...      # Specific package
//	go test -run Example         # Examples only
//
// [hexgrid]: https://pkg.go.dev/github.com/matzehuels/hexboard/pkg/hexgrid
// [board]: https://pkg.go.dev/github.com/matzehuels/hexboard/pkg/board
// [board/validate]: https://pkg.go.dev/github.com/matzehuels/hexboard/pkg/board/validate
// [analysis]: https://pkg.go.dev/github.com/matzehuels/hexboard/pkg/analysis
// [render]: https://pkg.go.dev/github.com/matzehuels/hexboard/pkg/render
// [render/textgrid]: https://pkg.go.dev/github.com/matzehuels/hexboard/pkg/render/textgrid
// [render/graphdot]: https://pkg.go.dev/github.com/matzehuels/hexboard/pkg/render/graphdot
// [cache]: https://pkg.go.dev/github.com/matzehuels/hexboard/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/hexboard/pkg/observability
package pkg
