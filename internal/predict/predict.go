// Package predict computes insertion-point candidates for polygon edges near
// the cursor.
package predict

import (
	"image-interact/pkg/geometry"
)

// edgeProximity is the maximum model-space distance from an edge at which a
// candidate is considered at all.
const edgeProximity = 20.0

// Candidate is a not-yet-committed vertex on a polygon edge. InsertAt is the
// index at which it would be spliced into the point sequence if confirmed.
type Candidate struct {
	Point    geometry.Point2D
	InsertAt int
}

// Nearest returns at most one insertion candidate for the cursor position p
// against the open edges of the polygon, or nil when no edge qualifies.
//
// The winning edge is the closest one within edgeProximity (first seen wins
// ties). Near the polygon's trailing point the threshold tightens to half the
// cursor-to-last-point distance, since the user is more likely extending the
// polygon than refining its final edge.
func Nearest(p geometry.Point2D, points []geometry.Point2D) *Candidate {
	if len(points) < 2 {
		return nil
	}

	bestEdge := -1
	bestDist := 0.0
	for i := 0; i+1 < len(points); i++ {
		dist := geometry.PointToSegmentDistance(p, points[i], points[i+1])
		if dist > edgeProximity {
			continue
		}
		if bestEdge < 0 || dist < bestDist {
			bestEdge = i
			bestDist = dist
		}
	}
	if bestEdge < 0 {
		return nil
	}

	last := points[len(points)-1]
	lastDist := geometry.LineLength(p, last)
	if points[bestEdge+1] == last {
		if bestDist >= lastDist/2 {
			return nil
		}
	} else if bestDist >= lastDist {
		return nil
	}

	return &Candidate{
		Point:    geometry.ClosestPointOnSegment(p, points[bestEdge], points[bestEdge+1]),
		InsertAt: bestEdge + 1,
	}
}
