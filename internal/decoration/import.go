package decoration

import (
	"strconv"
	"strings"

	"image-interact/pkg/geometry"
)

// noShapeSentinel marks a legacy area entry that carries no coordinates.
const noShapeSentinel = "-"

// ImportAreas converts legacy area definitions into polygon decorations. Each
// entry is a flat "x,y,x,y,..." coordinate list. Empty or sentinel entries
// yield an empty polygon so the decoration ordering of the legacy list is
// preserved. When scaleFromWidth is positive, coordinates are rescaled by
// hostWidth/scaleFromWidth.
func ImportAreas(coordLists []string, hostWidth, scaleFromWidth float64) []Decoration {
	scale := 1.0
	if scaleFromWidth > 0 && hostWidth > 0 {
		scale = hostWidth / scaleFromWidth
	}

	decorations := make([]Decoration, 0, len(coordLists))
	for _, coords := range coordLists {
		decorations = append(decorations, parseArea(coords, scale))
	}
	return decorations
}

// parseArea parses one flat coordinate list. Anything unparseable degrades to
// an empty polygon rather than an error.
func parseArea(coords string, scale float64) Decoration {
	coords = strings.TrimSpace(coords)
	if coords == "" || coords == noShapeSentinel {
		return NewPolygon()
	}

	fields := strings.Split(coords, ",")
	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return NewPolygon()
		}
		values = append(values, v)
	}
	if len(values)%2 != 0 {
		return NewPolygon()
	}

	points := make([]geometry.Point2D, 0, len(values)/2)
	for i := 0; i+1 < len(values); i += 2 {
		points = append(points, geometry.Point2D{X: values[i] * scale, Y: values[i+1] * scale})
	}
	return PolygonFromPoints(points)
}
