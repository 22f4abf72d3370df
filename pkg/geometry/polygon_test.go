package geometry

import "testing"

func TestPointInPolygon(t *testing.T) {
	square := []Point2D{
		NewPoint2D(0, 0),
		NewPoint2D(10, 0),
		NewPoint2D(10, 10),
		NewPoint2D(0, 10),
	}

	if !PointInPolygon(NewPoint2D(5, 5), square) {
		t.Error("center of square should be inside")
	}
	if PointInPolygon(NewPoint2D(15, 5), square) {
		t.Error("point right of square should be outside")
	}
	if PointInPolygon(NewPoint2D(5, -1), square) {
		t.Error("point above square should be outside")
	}
}

func TestPointInPolygonTooFewVertices(t *testing.T) {
	line := []Point2D{NewPoint2D(0, 0), NewPoint2D(10, 0)}
	if PointInPolygon(NewPoint2D(5, 0), line) {
		t.Error("a two-point polygon has no interior")
	}
}

func TestBoundingBoxPolygon(t *testing.T) {
	points := []Point2D{
		NewPoint2D(3, 7),
		NewPoint2D(-2, 4),
		NewPoint2D(8, -1),
	}
	box := BoundingBox(points)
	want := NewRect(-2, -1, 10, 8)
	if box != want {
		t.Errorf("BoundingBox failed: expected %v, got %v", want, box)
	}
}
