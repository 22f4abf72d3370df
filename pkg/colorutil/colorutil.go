// Package colorutil provides the shared overlay colors for the annotation canvas.
package colorutil

import "image/color"

// Common overlay colors used throughout the application.
var (
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan    = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Yellow  = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// Darken scales a color toward black by the given factor (0 keeps the color,
// 1 yields black).
func Darken(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	keep := 1 - factor
	return color.RGBA{
		R: uint8(float64(c.R) * keep),
		G: uint8(float64(c.G) * keep),
		B: uint8(float64(c.B) * keep),
		A: c.A,
	}
}
