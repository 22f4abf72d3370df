package geometry

import "math"

// LineLength returns the Euclidean distance between two points.
func LineLength(a, b Point2D) float64 {
	return a.Distance(b)
}

// PointToSegmentDistance returns the distance from p to the segment a-b.
// A zero-length segment degenerates to the distance from p to a. When the
// perpendicular foot falls outside the segment's bounding box, the distance
// to the nearer endpoint is returned instead.
func PointToSegmentDistance(p, a, b Point2D) float64 {
	if a == b {
		return LineLength(p, a)
	}

	var foot Point2D
	switch {
	case a.X == b.X:
		// Vertical segment: the perpendicular is horizontal
		foot = Point2D{X: a.X, Y: p.Y}
	case a.Y == b.Y:
		// Horizontal segment: the perpendicular is vertical
		foot = Point2D{X: p.X, Y: a.Y}
	default:
		// Intersect the segment's line with the perpendicular through p
		m := (b.Y - a.Y) / (b.X - a.X)
		perp := -1 / m
		x := (m*a.X - perp*p.X + p.Y - a.Y) / (m - perp)
		y := a.Y + m*(x-a.X)
		foot = Point2D{X: x, Y: y}
	}

	if !withinSegmentBounds(foot, a, b) {
		return math.Min(LineLength(p, a), LineLength(p, b))
	}

	// Standard point-to-line distance |A*px + B*py + C| / sqrt(A^2 + B^2)
	lineA := a.Y - b.Y
	lineB := b.X - a.X
	lineC := a.X*b.Y - a.Y*b.X
	return math.Abs(lineA*p.X+lineB*p.Y+lineC) / math.Sqrt(lineA*lineA+lineB*lineB)
}

// ClosestPointOnSegment projects p onto the line through a and b and clamps
// the projection parameter to [0, 1] so the result always lies on the segment.
func ClosestPointOnSegment(p, a, b Point2D) Point2D {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Point2D{X: a.X + t*dx, Y: a.Y + t*dy}
}

// withinSegmentBounds reports whether p lies inside the bounding box of the
// segment a-b.
func withinSegmentBounds(p, a, b Point2D) bool {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}
