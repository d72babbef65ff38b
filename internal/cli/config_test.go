package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/hexboard/pkg/board"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
	return path
}

func TestLoadRules_Defaults(t *testing.T) {
	rules, err := loadRules("")
	if err != nil {
		t.Fatalf("loadRules: %v", err)
	}

	opts, err := rules.layoutOptions()
	if err != nil {
		t.Fatalf("layoutOptions: %v", err)
	}
	if opts.Terrain != board.ModeShuffle {
		t.Errorf("Terrain = %v, want shuffle", opts.Terrain)
	}
	if opts.Numbers != board.ModeStandard {
		t.Errorf("Numbers = %v, want standard", opts.Numbers)
	}
	if opts.Ports != board.ModeShuffle {
		t.Errorf("Ports = %v, want shuffle", opts.Ports)
	}
	if len(opts.Validators) != 0 {
		t.Errorf("default validators = %d, want none", len(opts.Validators))
	}
	if opts.Rand != nil {
		t.Error("default rules should not pin the random source")
	}
}

func TestLoadRules_File(t *testing.T) {
	path := writeRules(t, `
[layout]
terrain = "beginner"
numbers = "beginner"
ports = "beginner"
seed = 42
max-trials = 250

[validators]
max-intersection-pips = 11
no-adjacent-6-8 = true
min-ore-pips = 4
`)

	rules, err := loadRules(path)
	if err != nil {
		t.Fatalf("loadRules: %v", err)
	}

	opts, err := rules.layoutOptions()
	if err != nil {
		t.Fatalf("layoutOptions: %v", err)
	}
	if opts.Terrain != board.ModeBeginner || opts.Numbers != board.ModeBeginner || opts.Ports != board.ModeBeginner {
		t.Errorf("modes = %v/%v/%v, want beginner throughout", opts.Terrain, opts.Numbers, opts.Ports)
	}
	if opts.MaxTrials != 250 {
		t.Errorf("MaxTrials = %d, want 250", opts.MaxTrials)
	}
	if len(opts.Validators) != 3 {
		t.Errorf("validators = %d, want 3", len(opts.Validators))
	}
	if opts.Rand == nil {
		t.Error("seeded rules should pin the random source")
	}
}

func TestLoadRules_PartialFileKeepsDefaults(t *testing.T) {
	path := writeRules(t, `
[layout]
numbers = "shuffle"
`)

	rules, err := loadRules(path)
	if err != nil {
		t.Fatalf("loadRules: %v", err)
	}
	if rules.Layout.Terrain != "shuffle" || rules.Layout.Ports != "shuffle" {
		t.Errorf("unset modes = %q/%q, want shuffle", rules.Layout.Terrain, rules.Layout.Ports)
	}
	if rules.Layout.Numbers != "shuffle" {
		t.Errorf("Numbers = %q, want shuffle", rules.Layout.Numbers)
	}
}

func TestLoadRules_BadMode(t *testing.T) {
	path := writeRules(t, `
[layout]
terrain = "random"
`)

	rules, err := loadRules(path)
	if err != nil {
		t.Fatalf("loadRules: %v", err)
	}
	if _, err := rules.layoutOptions(); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestLoadRules_MissingFile(t *testing.T) {
	if _, err := loadRules(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadRules_SeededDeterminism(t *testing.T) {
	path := writeRules(t, `
[layout]
seed = 7
`)

	boardsEqual := func() []board.Terrain {
		rules, err := loadRules(path)
		if err != nil {
			t.Fatalf("loadRules: %v", err)
		}
		opts, err := rules.layoutOptions()
		if err != nil {
			t.Fatalf("layoutOptions: %v", err)
		}
		b, err := board.New(board.VariantStandard)
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := b.Layout(opts); err != nil {
			t.Fatalf("Layout: %v", err)
		}
		terrs := make([]board.Terrain, 0, 19)
		for _, tile := range b.TerrainTiles() {
			terrs = append(terrs, tile.Data.Terrain)
		}
		return terrs
	}

	first, second := boardsEqual(), boardsEqual()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different terrain at %d: %v vs %v", i, first[i], second[i])
		}
	}
}
