package board_test

import (
	"fmt"

	"github.com/matzehuels/hexboard/pkg/board"
)

func ExampleNew() {
	b, _ := board.New(board.VariantStandard)

	fmt.Println("terrain tiles:", len(b.TerrainTiles()))
	fmt.Println("port tiles:", len(b.PortTiles()))
	fmt.Println("bounds:", b.Bounds())
	// Output:
	// terrain tiles: 19
	// port tiles: 9
	// bounds: {-2.5 3 -3 3}
}

func ExampleBoard_Layout() {
	b, _ := board.New(board.VariantStandard)

	// The beginner modes reproduce the fixed setup from the rulebook,
	// so the result is the same on every run.
	_ = b.Layout(board.LayoutOptions{
		Terrain: board.ModeBeginner,
		Numbers: board.ModeBeginner,
		Ports:   board.ModeBeginner,
	})

	first := b.Spiral()[0]
	pips, _ := first.Data.Pips()
	fmt.Printf("first tile: %s %d (%d pips)\n", first.Data.Terrain, first.Data.Number(), pips)
	fmt.Println("first port:", b.PortTiles()[0].Data.Terrain)
	// Output:
	// first tile: hills 5 (4 pips)
	// first port: ore port
}

func ExampleBoard_Intersections() {
	b, _ := board.New(board.VariantStandard)

	fmt.Println("three-way:", len(b.Intersections(3)))
	fmt.Println("two-way:", len(b.Intersections(2)))
	fmt.Println("all:", len(b.Intersections()))
	// Output:
	// three-way: 24
	// two-way: 12
	// all: 48
}
