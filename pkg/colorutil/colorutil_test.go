package colorutil

import "testing"

func TestDarken(t *testing.T) {
	got := Darken(White, 0.5)
	if got.R != 127 || got.G != 127 || got.B != 127 || got.A != 255 {
		t.Errorf("expected mid gray, got %+v", got)
	}

	if Darken(Cyan, 1) != Black {
		t.Error("full factor should yield black")
	}
	if Darken(Yellow, -0.5) != Yellow {
		t.Error("negative factor should clamp to no change")
	}
	if Darken(Magenta, 2) != Black {
		t.Error("factor above 1 should clamp to black")
	}
}
