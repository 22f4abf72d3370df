package geometry

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := NewPoint2D(3, 4)
	b := NewPoint2D(1, 2)

	if got := a.Add(b); got != NewPoint2D(4, 6) {
		t.Errorf("Add: expected (4,6), got %v", got)
	}
	if got := a.Sub(b); got != NewPoint2D(2, 2) {
		t.Errorf("Sub: expected (2,2), got %v", got)
	}
	if got := b.Scale(3); got != NewPoint2D(3, 6) {
		t.Errorf("Scale: expected (3,6), got %v", got)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	if !r.Contains(NewPoint2D(5, 5)) {
		t.Error("center should be inside")
	}
	if !r.Contains(NewPoint2D(10, 10)) {
		t.Error("edges are inclusive")
	}
	if r.Contains(NewPoint2D(11, 5)) {
		t.Error("point right of the rect should be outside")
	}
}

func TestBoundingBox(t *testing.T) {
	points := []Point2D{
		NewPoint2D(3, 7),
		NewPoint2D(-1, 2),
		NewPoint2D(5, 4),
	}

	got := BoundingBox(points)
	want := NewRect(-1, 2, 6, 5)
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	if (BoundingBox(nil) != Rect{}) {
		t.Error("empty input should yield the zero rect")
	}
}
