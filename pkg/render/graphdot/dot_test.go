package graphdot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/hexboard/pkg/board"
)

func beginnerBoard(t *testing.T) *board.Board {
	t.Helper()
	b, err := board.New(board.VariantStandard)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	opts := board.LayoutOptions{
		Terrain: board.ModeBeginner,
		Numbers: board.ModeBeginner,
		Ports:   board.ModeBeginner,
	}
	if err := b.Layout(opts); err != nil {
		t.Fatalf("Layout: %v", err)
	}
	return b
}

func TestToDOT_Beginner(t *testing.T) {
	b := beginnerBoard(t)
	dot := ToDOT(b)

	if !strings.HasPrefix(dot, "graph board {\n") || !strings.HasSuffix(dot, "}\n") {
		t.Fatal("output is not a graph block")
	}

	declared := make(map[string]bool)
	var edges [][2]string
	for _, line := range strings.Split(dot, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.Contains(line, " -- "):
			var from, to string
			if _, err := fmt.Sscanf(line, "%s -- %s", &from, &to); err != nil {
				t.Fatalf("unparseable edge %q: %v", line, err)
			}
			edges = append(edges, [2]string{from, strings.TrimSuffix(to, ";")})
		case strings.Contains(line, "label="):
			declared[strings.Fields(line)[0]] = true
		}
	}

	if got, want := len(declared), len(b.Tiles()); got != want {
		t.Errorf("declared %d nodes, want %d", got, want)
	}
	if len(edges) == 0 {
		t.Fatal("no edges emitted")
	}
	seen := make(map[[2]string]bool)
	for _, e := range edges {
		if !declared[e[0]] || !declared[e[1]] {
			t.Errorf("edge %v references an undeclared node", e)
		}
		if seen[e] || seen[[2]string{e[1], e[0]}] {
			t.Errorf("duplicate edge %v", e)
		}
		seen[e] = true
	}

	if got := strings.Count(dot, "fillcolor=tan"); got != 1 {
		t.Errorf("desert fills = %d, want 1", got)
	}
	if got := strings.Count(dot, `style="filled,dashed"`); got != 9 {
		t.Errorf("dashed ports = %d, want 9", got)
	}
	if !strings.Contains(dot, `label="ROCK\n2:1"`) {
		t.Error("missing the ore port label")
	}
}

func TestToDOT_PinsPositions(t *testing.T) {
	dot := ToDOT(beginnerBoard(t))

	// The center tile sits at the origin.
	if !strings.Contains(dot, `pos="0,0!"`) {
		t.Error("center tile position missing")
	}
	if strings.Count(dot, "!\"") != 28 {
		t.Error("not every node is pinned")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>` + "\n" +
		`<svg width="216pt" height="188pt" viewBox="0.00 0.00 216.00 188.00" xmlns="http://www.w3.org/2000/svg">` +
		`<g></g></svg>`)
	out := string(normalizeViewBox(in))

	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 216.00 188.00" width="216" height="188">`
	if !strings.Contains(out, want) {
		t.Errorf("svg tag not normalized:\n%s", out)
	}
	if strings.Contains(out, "216pt") {
		t.Error("original svg tag left in place")
	}
}

func TestNormalizeViewBox_NoMatch(t *testing.T) {
	in := []byte("<svg><g></g></svg>")
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Error("svg without a viewBox should pass through unchanged")
	}
}
