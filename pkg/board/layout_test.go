package board

import (
	"errors"
	"math/rand/v2"
	"testing"
)

func TestLayout_NoValidatorsSinglePass(t *testing.T) {
	b := mustBoard(t, VariantStandard)

	if err := b.Layout(LayoutOptions{}); err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if b.TrialCount() != 0 {
		t.Errorf("TrialCount() = %d, want 0 without validators", b.TrialCount())
	}
	for _, tile := range b.TerrainTiles() {
		if tile.Data.Terrain == TerrainNone {
			t.Fatalf("tile %d left unassigned", tile.ID())
		}
	}
}

func TestLayout_AcceptingValidatorCountsOneTrial(t *testing.T) {
	b := mustBoard(t, VariantStandard)

	accept := func(*Board) bool { return true }
	if err := b.Layout(LayoutOptions{Validators: []Validator{accept}}); err != nil {
		t.Fatalf("Layout() error: %v", err)
	}
	if b.TrialCount() != 1 {
		t.Errorf("TrialCount() = %d, want 1", b.TrialCount())
	}
}

func TestLayout_TrialLimit(t *testing.T) {
	b := mustBoard(t, VariantStandard)

	reject := func(*Board) bool { return false }
	err := b.Layout(LayoutOptions{
		Validators: []Validator{reject},
		MaxTrials:  5,
	})
	if !errors.Is(err, ErrTrialLimit) {
		t.Fatalf("Layout() error = %v, want ErrTrialLimit", err)
	}
	if b.TrialCount() != 5 {
		t.Errorf("TrialCount() = %d, want 5", b.TrialCount())
	}
}

func TestLayout_InvalidModes(t *testing.T) {
	b := mustBoard(t, VariantStandard)

	if err := b.Layout(LayoutOptions{Terrain: ModeStandard}); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("standard terrain mode error = %v, want ErrInvalidMode", err)
	}
	if err := b.Layout(LayoutOptions{Ports: ModeStandard}); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("standard port mode error = %v, want ErrInvalidMode", err)
	}
}

func TestLayout_BeginnerReference(t *testing.T) {
	b := mustBoard(t, VariantStandard)

	opts := LayoutOptions{
		Terrain: ModeBeginner,
		Numbers: ModeBeginner,
		Ports:   ModeBeginner,
	}
	if err := b.Layout(opts); err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	// The beginner desert sits on the center tile and carries no number.
	center, err := b.TileAt(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if center.Data.Terrain != Desert {
		t.Errorf("center terrain = %v, want desert", center.Data.Terrain)
	}
	if center.Data.Number() != 0 {
		t.Errorf("desert number = %d, want 0", center.Data.Number())
	}
	if _, ok := center.Data.Pips(); ok {
		t.Error("desert reports pips, want none")
	}

	// Column assignment puts the column sequence back out in column order.
	for i, tile := range b.Columns() {
		if tile.Data.Terrain != standardBeginnerTerrain[i] {
			t.Errorf("columns[%d] terrain = %v, want %v", i, tile.Data.Terrain, standardBeginnerTerrain[i])
		}
	}

	// The spiral starts on the bottom-center hills tile and the number
	// run over non-desert tiles matches the fixed reference.
	if got := b.Spiral()[0].Data.Terrain; got != Hills {
		t.Errorf("spiral[0] terrain = %v, want hills", got)
	}
	var nums []int
	for _, tile := range b.Spiral() {
		if tile.Data.Terrain != Desert {
			nums = append(nums, tile.Data.Number())
		}
	}
	if len(nums) != len(standardBeginnerNumbers) {
		t.Fatalf("numbered tiles = %d, want %d", len(nums), len(standardBeginnerNumbers))
	}
	for i, n := range nums {
		if n != standardBeginnerNumbers[i] {
			t.Errorf("spiral number %d = %d, want %d", i, n, standardBeginnerNumbers[i])
		}
	}

	// Ports clockwise from 12 o'clock match the beginner ring.
	for i, p := range b.PortTiles() {
		if p.Data.Terrain != standardBeginnerPorts[i] {
			t.Errorf("port %d = %v, want %v", i, p.Data.Terrain, standardBeginnerPorts[i])
		}
	}
}

func TestLayout_ShuffleDeterministicWithSeed(t *testing.T) {
	layoutTerrains := func() []Terrain {
		b := mustBoard(t, VariantStandard)
		r := rand.New(rand.NewPCG(7, 7))
		if err := b.Layout(LayoutOptions{Rand: r}); err != nil {
			t.Fatalf("Layout() error: %v", err)
		}
		var out []Terrain
		for _, tile := range b.Columns() {
			out = append(out, tile.Data.Terrain)
		}
		return out
	}

	first := layoutTerrains()
	second := layoutTerrains()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("same seed produced different terrain at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestLayout_ShuffleKeepsMultiset(t *testing.T) {
	b := mustBoard(t, VariantStandard)
	if err := b.Layout(LayoutOptions{Rand: rand.New(rand.NewPCG(3, 9))}); err != nil {
		t.Fatalf("Layout() error: %v", err)
	}

	count := func(seq []Terrain) map[Terrain]int {
		m := make(map[Terrain]int)
		for _, tr := range seq {
			m[tr]++
		}
		return m
	}
	var got []Terrain
	for _, tile := range b.TerrainTiles() {
		got = append(got, tile.Data.Terrain)
	}
	want := count(standardBeginnerTerrain)
	for tr, n := range count(got) {
		if want[tr] != n {
			t.Errorf("terrain %v appears %d times, want %d", tr, n, want[tr])
		}
	}
}

func TestLayout_ValidatorIdempotent(t *testing.T) {
	b := mustBoard(t, VariantStandard)
	if err := b.Layout(LayoutOptions{Numbers: ModeBeginner, Terrain: ModeBeginner, Ports: ModeBeginner}); err != nil {
		t.Fatal(err)
	}

	calls := 0
	v := func(bd *Board) bool {
		calls++
		for _, in := range bd.Intersections(3) {
			if total, ok := in.Pips(); ok && total > 15 {
				return false
			}
		}
		return true
	}
	first := v(b)
	second := v(b)
	if first != second {
		t.Errorf("validator returned %v then %v on the same board", first, second)
	}
	if calls != 2 {
		t.Errorf("validator ran %d times, want 2", calls)
	}
}

func TestSetNumber_PipDerivation(t *testing.T) {
	wantPips := map[int]int{
		2: 1, 3: 2, 4: 3, 5: 4, 6: 5, 8: 5, 9: 4, 10: 3, 11: 2, 12: 1,
	}
	var a Attrs
	for n, want := range wantPips {
		a.SetNumber(n)
		got, ok := a.Pips()
		if !ok {
			t.Errorf("Pips() after SetNumber(%d) not ok", n)
		}
		if got != want {
			t.Errorf("pips for %d = %d, want %d", n, got, want)
		}
	}

	a.SetNumber(0)
	if _, ok := a.Pips(); ok {
		t.Error("Pips() ok after SetNumber(0), want not ok")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"shuffle", ModeShuffle, false},
		{"", ModeShuffle, false},
		{"beginner", ModeBeginner, false},
		{"standard", ModeStandard, false},
		{"random", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPortTerrainRoundTrip(t *testing.T) {
	for terr, port := range PortForTerrain {
		back, ok := TerrainForPort[port]
		if !ok {
			t.Errorf("port %v has no terrain mapping", port)
			continue
		}
		if back != terr {
			t.Errorf("round trip %v -> %v -> %v", terr, port, back)
		}
	}
	if len(PortForTerrain) != 5 || len(TerrainForPort) != 5 {
		t.Errorf("mapping sizes = %d/%d, want 5/5", len(PortForTerrain), len(TerrainForPort))
	}
	if _, ok := TerrainForPort[PortAny]; ok {
		t.Error("PortAny must not map to a terrain")
	}
}
