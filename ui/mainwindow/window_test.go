package mainwindow

import (
	"bytes"
	"encoding/json"
	"testing"

	"image-interact/internal/decoration"
	"image-interact/pkg/geometry"
)

func TestExportAnnotations(t *testing.T) {
	decs := []decoration.Decoration{
		decoration.PolygonFromPoints([]geometry.Point2D{
			geometry.NewPoint2D(1, 2),
			geometry.NewPoint2D(3, 4),
		}),
		{Kind: decoration.KindPoint},
		decoration.NewPolygon(),
	}

	var buf bytes.Buffer
	if err := exportAnnotations(decs, &buf); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var got [][]geometry.Point2D
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("polygons kept, point decorations skipped: expected 2 entries, got %d", len(got))
	}
	if got[0][1] != geometry.NewPoint2D(3, 4) {
		t.Errorf("expected (3,4), got %v", got[0][1])
	}
	if len(got[1]) != 0 {
		t.Errorf("empty polygon should export empty, got %v", got[1])
	}
}
