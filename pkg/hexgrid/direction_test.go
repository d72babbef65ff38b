package hexgrid

import "testing"

func TestDirection_Opposite(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:        Down,
		UpRight:   DownLeft,
		DownRight: UpLeft,
		Down:      Up,
		DownLeft:  UpRight,
		UpLeft:    DownRight,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
	}
}

func TestDirection_NextPrev(t *testing.T) {
	for _, d := range Directions {
		if got := d.Next().Prev(); got != d {
			t.Errorf("%v.Next().Prev() = %v, want %v", d, got, d)
		}
		if got := d.Prev().Next(); got != d {
			t.Errorf("%v.Prev().Next() = %v, want %v", d, got, d)
		}
	}
	if got := UpLeft.Next(); got != Up {
		t.Errorf("UpLeft.Next() = %v, want Up", got)
	}
	if got := Up.Prev(); got != UpLeft {
		t.Errorf("Up.Prev() = %v, want UpLeft", got)
	}
}

func TestDirection_Offset(t *testing.T) {
	tests := []struct {
		dir    Direction
		wantDX int
		wantDY float64
	}{
		{Up, 0, -1},
		{UpRight, 1, -0.5},
		{DownRight, 1, 0.5},
		{Down, 0, 1},
		{DownLeft, -1, 0.5},
		{UpLeft, -1, -0.5},
	}
	for _, tt := range tests {
		dx, dy := tt.dir.Offset()
		if dx != tt.wantDX || dy != tt.wantDY {
			t.Errorf("%v.Offset() = (%d, %v), want (%d, %v)", tt.dir, dx, dy, tt.wantDX, tt.wantDY)
		}
	}
}

func TestDirection_Valid(t *testing.T) {
	for _, d := range Directions {
		if !d.Valid() {
			t.Errorf("%v.Valid() = false, want true", d)
		}
	}
	for _, d := range []Direction{-60, 30, 90, 360, 420} {
		if d.Valid() {
			t.Errorf("Direction(%d).Valid() = true, want false", int(d))
		}
	}
}
