// Package decoration holds the polygon annotations drawn over the image and
// the ordered store that owns them.
package decoration

import "image-interact/pkg/geometry"

// Kind tags the decoration variant.
type Kind int

const (
	// KindPolygon is an ordered sequence of editable vertices.
	KindPolygon Kind = iota
	// KindPoint is reserved for a single-marker decoration. Nothing
	// constructs it yet.
	KindPoint
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindPolygon:
		return "polygon"
	case KindPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Decoration is one user-placed annotation shape.
type Decoration struct {
	Kind   Kind
	Points []geometry.Point2D
}

// NewPolygon creates an empty polygon decoration.
func NewPolygon() Decoration {
	return Decoration{Kind: KindPolygon}
}

// PolygonFromPoints creates a polygon decoration from existing vertices.
func PolygonFromPoints(points []geometry.Point2D) Decoration {
	return Decoration{Kind: KindPolygon, Points: points}
}
