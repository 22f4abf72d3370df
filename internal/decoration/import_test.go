package decoration

import (
	"testing"

	"image-interact/pkg/geometry"
)

func TestImportAreas(t *testing.T) {
	decorations := ImportAreas([]string{"10,20,30,40,50,60"}, 0, 0)
	if len(decorations) != 1 {
		t.Fatalf("expected 1 decoration, got %d", len(decorations))
	}
	d := decorations[0]
	if d.Kind != KindPolygon {
		t.Fatalf("expected polygon, got %v", d.Kind)
	}
	want := []geometry.Point2D{
		geometry.NewPoint2D(10, 20),
		geometry.NewPoint2D(30, 40),
		geometry.NewPoint2D(50, 60),
	}
	if len(d.Points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(d.Points))
	}
	for i := range want {
		if d.Points[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], d.Points[i])
		}
	}
}

func TestImportAreasRescales(t *testing.T) {
	// Legacy coordinates were captured against an 800px-wide image, now
	// displayed at 400px.
	decorations := ImportAreas([]string{"100,200"}, 400, 800)
	got := decorations[0].Points[0]
	if got != geometry.NewPoint2D(50, 100) {
		t.Errorf("expected (50,100), got %v", got)
	}
}

func TestImportAreasSkipsMalformed(t *testing.T) {
	cases := []string{"", "-", "not,numbers", "1,2,3"}
	decorations := ImportAreas(cases, 0, 0)
	if len(decorations) != len(cases) {
		t.Fatalf("expected %d decorations, got %d", len(cases), len(decorations))
	}
	for i, d := range decorations {
		if len(d.Points) != 0 {
			t.Errorf("entry %q should import as an empty polygon, got %d points", cases[i], len(d.Points))
		}
	}
}
