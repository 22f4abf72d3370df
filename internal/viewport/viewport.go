// Package viewport reconciles raw pointer coordinates with a possibly
// panned/zoomed canvas.
package viewport

import "image-interact/pkg/geometry"

// PanZoom is the capability an external pan/zoom provider exposes. A nil
// provider means the identity transform.
type PanZoom interface {
	// CurrentScale returns the current zoom factor (1 = unscaled).
	CurrentScale() float64
}

// ToModel converts a raw pointer coordinate into model space by applying the
// inverse zoom scale. Every pointer coordinate passes through here before it
// reaches the store or the prediction engine.
func ToModel(p geometry.Point2D, pz PanZoom) geometry.Point2D {
	if pz == nil {
		return p
	}
	scale := pz.CurrentScale()
	if scale == 0 {
		return p
	}
	return geometry.Point2D{X: p.X / scale, Y: p.Y / scale}
}

// HandleScale returns the rendering-only factor that keeps handle size and
// stroke width visually constant under zoom. The 0.2 floor stops handles from
// vanishing at extreme zoom-in.
func HandleScale(pz PanZoom) float64 {
	if pz == nil {
		return 1
	}
	zoom := pz.CurrentScale()
	if zoom > 10 {
		return 0.2
	}
	if zoom == 0 {
		return 1
	}
	return 1 / zoom
}
