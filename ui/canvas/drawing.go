package canvas

import (
	"image"
	"image/color"

	"image-interact/internal/render"
	"image-interact/pkg/colorutil"
	"image-interact/pkg/geometry"
)

// Handle colors. The ghost handle shows where a click would insert a vertex,
// so it is drawn hollow to distinguish it from committed vertices.
var (
	outlineColor        = colorutil.Cyan
	handleColor         = colorutil.Cyan
	activeHandleColor   = colorutil.Yellow
	inactiveHandleColor = colorutil.White
	ghostHandleColor    = colorutil.Magenta
)

// drawGroup rasterizes one draw group: the polygon outline followed by its
// vertex handles. Group coordinates are in image space and are scaled by the
// current zoom here.
func (ac *AnnotationCanvas) drawGroup(output *image.RGBA, g render.Group) {
	scaled := make([]geometry.Point2D, len(g.Outline))
	for i, p := range g.Outline {
		scaled[i] = p.Scale(ac.zoom)
	}

	thickness := int(g.StrokeWidth*ac.zoom + 0.5)
	if thickness < 1 {
		thickness = 1
	}

	n := len(scaled)
	if n >= 2 {
		// Close the ring only once the shape has area
		edges := n - 1
		if n >= 3 {
			edges = n
		}
		for i := 0; i < edges; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]
			ac.drawLine(output, int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), outlineColor, thickness)
		}
	}

	for _, h := range g.Handles {
		ac.drawHandle(output, h)
	}
}

// drawHandle rasterizes a single vertex handle at the zoomed position.
func (ac *AnnotationCanvas) drawHandle(output *image.RGBA, h render.Handle) {
	pos := h.Pos.Scale(ac.zoom)
	radius := h.Size * ac.zoom / 2
	if radius < 1 {
		radius = 1
	}

	col := handleColor
	filled := true
	switch h.Tag {
	case render.TagActive:
		col = activeHandleColor
	case render.TagInactive:
		col = inactiveHandleColor
	case render.TagGhost:
		col = ghostHandleColor
		filled = false
	}

	cx, cy := int(pos.X), int(pos.Y)
	r := int(radius)

	if h.Shape == render.HandleSquare {
		if filled {
			ac.fillSquare(output, cx, cy, r, col)
		}
		ac.drawSquare(output, cx, cy, r, colorutil.Darken(col, 0.3))
		return
	}

	if filled {
		ac.fillCircle(output, cx, cy, r, col)
	}
	ac.drawRing(output, cx, cy, r, colorutil.Darken(col, 0.3))
}

// drawLine draws a line between two points using Bresenham's algorithm.
func (ac *AnnotationCanvas) drawLine(output *image.RGBA, x1, y1, x2, y2 int, col color.RGBA, thickness int) {
	bounds := output.Bounds()

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		// Draw thick point
		for t := -thickness / 2; t <= thickness/2; t++ {
			for s := -thickness / 2; s <= thickness/2; s++ {
				px, py := x1+s, y1+t
				if px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y {
					output.Set(px, py, col)
				}
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillCircle draws a filled circle centered at (cx, cy).
func (ac *AnnotationCanvas) fillCircle(output *image.RGBA, cx, cy, radius int, col color.RGBA) {
	bounds := output.Bounds()
	r2 := radius * radius

	for y := cy - radius; y <= cy+radius; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := x - cx
			dy := y - cy
			if dx*dx+dy*dy <= r2 {
				output.Set(x, y, col)
			}
		}
	}
}

// drawRing draws a circle outline one to two pixels thick.
func (ac *AnnotationCanvas) drawRing(output *image.RGBA, cx, cy, radius int, col color.RGBA) {
	bounds := output.Bounds()
	r2 := radius * radius
	inner := radius - 2
	if inner < 0 {
		inner = 0
	}
	innerR2 := inner * inner

	for y := cy - radius; y <= cy+radius; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := cx - radius; x <= cx+radius; x++ {
			if x < bounds.Min.X || x >= bounds.Max.X {
				continue
			}
			dx := x - cx
			dy := y - cy
			dist2 := dx*dx + dy*dy
			if dist2 <= r2 && dist2 >= innerR2 {
				output.Set(x, y, col)
			}
		}
	}
}

// fillSquare draws a filled axis-aligned square centered at (cx, cy).
func (ac *AnnotationCanvas) fillSquare(output *image.RGBA, cx, cy, half int, col color.RGBA) {
	bounds := output.Bounds()

	for y := cy - half; y <= cy+half; y++ {
		if y < bounds.Min.Y || y >= bounds.Max.Y {
			continue
		}
		for x := cx - half; x <= cx+half; x++ {
			if x >= bounds.Min.X && x < bounds.Max.X {
				output.Set(x, y, col)
			}
		}
	}
}

// drawSquare draws a square outline centered at (cx, cy).
func (ac *AnnotationCanvas) drawSquare(output *image.RGBA, cx, cy, half int, col color.RGBA) {
	bounds := output.Bounds()

	x1, y1 := cx-half, cy-half
	x2, y2 := cx+half, cy+half

	for x := x1; x <= x2; x++ {
		if x >= bounds.Min.X && x < bounds.Max.X {
			if y1 >= bounds.Min.Y && y1 < bounds.Max.Y {
				output.Set(x, y1, col)
			}
			if y2 >= bounds.Min.Y && y2 < bounds.Max.Y {
				output.Set(x, y2, col)
			}
		}
	}
	for y := y1; y <= y2; y++ {
		if y >= bounds.Min.Y && y < bounds.Max.Y {
			if x1 >= bounds.Min.X && x1 < bounds.Max.X {
				output.Set(x1, y, col)
			}
			if x2 >= bounds.Min.X && x2 < bounds.Max.X {
				output.Set(x2, y, col)
			}
		}
	}
}
