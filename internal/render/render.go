// Package render projects the decoration store and interaction state into a
// list of draw primitives. It never mutates either input; the host turns the
// primitives into on-screen elements.
package render

import (
	"fmt"

	"image-interact/internal/decoration"
	"image-interact/internal/interaction"
	"image-interact/internal/viewport"
	"image-interact/pkg/geometry"
)

// baseStrokeWidth is the outline stroke width at 1x zoom.
const baseStrokeWidth = 2.0

// HandleShape selects the handle glyph.
type HandleShape int

const (
	HandleCircle HandleShape = iota
	HandleSquare
)

// HandleTag distinguishes handle roles for styling.
type HandleTag int

const (
	// TagNone means no drag is in progress.
	TagNone HandleTag = iota
	// TagActive marks the vertex currently being dragged.
	TagActive
	// TagInactive marks the dragged vertex's siblings.
	TagInactive
	// TagGhost marks the predicted, not-yet-committed vertex.
	TagGhost
)

// Handle is one draggable (or ghost) vertex control.
type Handle struct {
	Pos        geometry.Point2D
	Size       float64
	Shape      HandleShape
	Tag        HandleTag
	PointIndex int
}

// Group is the draw output for one decoration.
type Group struct {
	ShapeID     string
	Outline     []geometry.Point2D
	StrokeWidth float64
	Handles     []Handle
}

// Render derives the full primitive list from the current store and
// interaction state. Calling it twice with unchanged state yields the same
// result.
func Render(store *decoration.Store, st interaction.State, shape HandleShape, handleSize float64, pz viewport.PanZoom) []Group {
	scale := viewport.HandleScale(pz)
	size := handleSize * scale

	var groups []Group
	for i, d := range store.Decorations() {
		switch d.Kind {
		case decoration.KindPolygon:
			g := Group{
				ShapeID:     fmt.Sprintf("poly-%d", i),
				Outline:     append([]geometry.Point2D(nil), d.Points...),
				StrokeWidth: baseStrokeWidth * scale,
			}

			if i == store.Active() && st.Predicted != nil {
				g.Handles = append(g.Handles, Handle{
					Pos:        st.Predicted.Point,
					Size:       size,
					Shape:      shape,
					Tag:        TagGhost,
					PointIndex: st.Predicted.InsertAt,
				})
			}

			dragging := st.ActivePoint >= 0 && i == store.Active()
			for j, p := range d.Points {
				tag := TagNone
				if dragging {
					if j == st.ActivePoint {
						tag = TagActive
					} else {
						tag = TagInactive
					}
				}
				g.Handles = append(g.Handles, Handle{
					Pos:        p,
					Size:       size,
					Shape:      shape,
					Tag:        tag,
					PointIndex: j,
				})
			}
			groups = append(groups, g)

		case decoration.KindPoint:
			// Reserved variant, nothing to draw yet.
		}
	}
	return groups
}
