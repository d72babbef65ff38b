package graphdot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/hexboard/pkg/board"
	"github.com/matzehuels/hexboard/pkg/hexgrid"
)

// fillColors maps producing terrain and the desert to Graphviz fill colors.
var fillColors = map[board.Terrain]string{
	board.Fields:    "gold",
	board.Forest:    "forestgreen",
	board.Hills:     "firebrick",
	board.Mountains: "gray",
	board.Pasture:   "palegreen",
	board.Desert:    "tan",
}

// ToDOT converts the board's adjacency graph to Graphviz DOT. Nodes carry
// pinned positions derived from hex coordinates, so the output is meant for
// the neato engine ([RenderSVG] selects it).
func ToDOT(b *board.Board) string {
	var buf bytes.Buffer
	buf.WriteString("graph board {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=hexagon, style=filled, fontsize=12, fixedsize=true, width=1.1, height=1.1];\n")
	buf.WriteString("\n")

	// Unselected port candidates keep their links but are not part of the
	// board; edges to them must not be emitted.
	onBoard := make(map[*board.Tile]bool, len(b.Tiles()))
	for _, tile := range b.Tiles() {
		onBoard[tile] = true
		attrs := tileAttrs(tile)
		fmt.Fprintf(&buf, "  %d [%s];\n", tile.ID(), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, tile := range b.Tiles() {
		for _, d := range hexgrid.Directions {
			n := tile.Neighbor(d)
			// Each link once, from the lower id.
			if n != nil && onBoard[n] && tile.ID() < n.ID() {
				fmt.Fprintf(&buf, "  %d -- %d;\n", tile.ID(), n.ID())
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func tileAttrs(tile *board.Tile) []string {
	// Graphviz points y up, hex coordinates point y down.
	pos := fmt.Sprintf("pos=\"%d,%s!\"", tile.X()*2, strconv.FormatFloat(-tile.Y()*2, 'f', -1, 64))
	attrs := []string{fmt.Sprintf("label=%q", tileLabel(tile.Data)), pos}

	if tile.Data.Port {
		return append(attrs, "style=\"filled,dashed\"", "fillcolor=lightblue")
	}
	if color, ok := fillColors[tile.Data.Terrain]; ok {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%s", color))
	} else {
		attrs = append(attrs, "fillcolor=white")
	}
	return attrs
}

func tileLabel(a board.Attrs) string {
	if a.Port {
		ratio := "2:1"
		if a.Terrain == board.PortAny {
			ratio = "3:1"
		}
		return a.Terrain.Label() + "\n" + ratio
	}
	if n := a.Number(); n != 0 {
		return fmt.Sprintf("%s\n%d", a.Terrain.Label(), n)
	}
	return a.Terrain.Label()
}

// RenderSVG renders a DOT graph to SVG with the neato engine, honoring the
// pinned node positions from [ToDOT].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.-]+)\s+([0-9.-]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the svg tag to a zero-origin viewBox with
// explicit pixel dimensions, which embeds more predictably in documents.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
