package editor

import (
	"testing"

	"image-interact/internal/interaction"
	"image-interact/internal/render"
	"image-interact/pkg/geometry"
)

type fixedScale float64

func (f fixedScale) CurrentScale() float64 { return float64(f) }

func pt(x, y float64) geometry.Point2D { return geometry.NewPoint2D(x, y) }

func canvas() interaction.Target { return interaction.CanvasTarget() }

// click presses and releases the primary button at p against the canvas.
func click(e *Editor, p geometry.Point2D) {
	e.PointerDown(p, interaction.ButtonPrimary, false, canvas())
	e.PointerUp(p, interaction.ButtonPrimary, false, canvas())
}

func TestDrawThenRefineScenario(t *testing.T) {
	e := New(DefaultConfig())

	// Two clicks sketch the first edge.
	click(e, pt(10, 10))
	click(e, pt(50, 10))

	points := e.Store().ActivePoints()
	if len(points) != 2 {
		t.Fatalf("expected 2 points after two clicks, got %d", len(points))
	}

	// Hovering near the edge midpoint predicts an insertion.
	e.PointerMove(pt(30, 11), false, canvas())
	st := e.State()
	if st.Predicted == nil {
		t.Fatal("expected a predicted point near (30,10)")
	}
	if st.Predicted.InsertAt != 1 {
		t.Errorf("expected insertAt 1, got %d", st.Predicted.InsertAt)
	}

	// Clicking at the predicted location confirms it.
	click(e, pt(30, 10))

	want := []geometry.Point2D{pt(10, 10), pt(30, 10), pt(50, 10)}
	got := e.Store().ActivePoints()
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if e.State().Predicted != nil {
		t.Error("prediction should be consumed after confirmation")
	}
}

func TestPredictedInsertGrowsPolygonByOne(t *testing.T) {
	e := New(DefaultConfig())
	click(e, pt(0, 0))
	click(e, pt(40, 0))

	e.PointerMove(pt(20, 2), false, canvas())
	st := e.State()
	if st.Predicted == nil {
		t.Fatal("expected a prediction")
	}
	predicted := *st.Predicted

	before := len(e.Store().ActivePoints())
	e.PointerDown(predicted.Point, interaction.ButtonPrimary, false, canvas())

	got := e.Store().ActivePoints()
	if len(got) != before+1 {
		t.Fatalf("insert should grow the polygon by exactly one: %d -> %d", before, len(got))
	}
	if got[predicted.InsertAt] != predicted.Point {
		t.Errorf("expected %v at index %d, got %v", predicted.Point, predicted.InsertAt, got[predicted.InsertAt])
	}
	e.PointerUp(predicted.Point, interaction.ButtonPrimary, false, canvas())
}

func TestPointerCoordinatesAreUnzoomed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PanZoom = fixedScale(2)
	e := New(cfg)

	click(e, pt(20, 20))

	got := e.Store().ActivePoints()
	if len(got) != 1 || got[0] != pt(10, 10) {
		t.Errorf("raw (20,20) at 2x zoom should store as (10,10), got %v", got)
	}
}

func TestModeToggleAndPanGuard(t *testing.T) {
	e := New(DefaultConfig())
	if e.AllowPan() {
		t.Error("panning must be refused while drawing")
	}

	e.PointerUp(pt(0, 0), interaction.ButtonAuxiliary, false, canvas())
	if e.Mode() != interaction.ModePan {
		t.Fatalf("expected Pan after middle release, got %v", e.Mode())
	}
	if !e.AllowPan() {
		t.Error("panning should be allowed in Pan mode")
	}

	e.PointerUp(pt(0, 0), interaction.ButtonAuxiliary, false, canvas())
	if e.Mode() != interaction.ModePoly {
		t.Fatalf("expected Poly after second middle release, got %v", e.Mode())
	}
}

func TestSecondaryClickDeletesVertex(t *testing.T) {
	e := New(DefaultConfig())
	click(e, pt(0, 0))
	click(e, pt(10, 0))
	click(e, pt(10, 10))

	e.PointerDown(pt(10, 0), interaction.ButtonSecondary, false, interaction.HandleTarget(0, 1))
	e.PointerUp(pt(10, 0), interaction.ButtonSecondary, false, interaction.HandleTarget(0, 1))

	got := e.Store().ActivePoints()
	if len(got) != 2 {
		t.Fatalf("expected 2 points after delete, got %d", len(got))
	}
	if got[1] != pt(10, 10) {
		t.Errorf("remaining points should shift down, got %v", got[1])
	}
}

func TestRenderEventFiresOnEveryPointerEvent(t *testing.T) {
	e := New(DefaultConfig())

	var renders int
	var last []render.Group
	e.On(EventRender, func(data interface{}) {
		renders++
		last = data.([]render.Group)
	})

	click(e, pt(5, 5))
	if renders != 2 {
		t.Errorf("expected a render per pointer event, got %d", renders)
	}
	if len(last) != 1 || len(last[0].Handles) != 1 {
		t.Errorf("expected one polygon group with one handle, got %+v", last)
	}
}

func TestDecorationsChangedFiresOnMutation(t *testing.T) {
	e := New(DefaultConfig())

	var changes int
	e.On(EventDecorationsChanged, func(interface{}) { changes++ })

	// Idle move mutates nothing.
	e.PointerMove(pt(100, 100), false, canvas())
	if changes != 0 {
		t.Errorf("idle move should not report a change, got %d", changes)
	}

	e.PointerDown(pt(5, 5), interaction.ButtonPrimary, false, canvas())
	if changes != 1 {
		t.Errorf("append should report one change, got %d", changes)
	}
	e.PointerUp(pt(5, 5), interaction.ButtonPrimary, false, canvas())
}

func TestNewFromAreasSeedsStore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScaleFromWidth = 800
	e := NewFromAreas(cfg, []string{"100,200,300,400", "-"}, 400)

	if e.Store().Len() != 2 {
		t.Fatalf("expected 2 imported decorations, got %d", e.Store().Len())
	}
	got := e.Store().ActivePoints()
	if len(got) != 2 || got[0] != pt(50, 100) {
		t.Errorf("legacy coordinates should rescale by hostWidth/scaleFromWidth, got %v", got)
	}
}

func TestShiftConstraintDuringDrag(t *testing.T) {
	e := New(DefaultConfig())
	click(e, pt(0, 0))

	// Drag a fresh second point with shift held: near-horizontal locks y.
	e.PointerDown(pt(1, 0), interaction.ButtonPrimary, false, canvas())
	e.PointerMove(pt(10, 1), true, canvas())

	got := e.Store().ActivePoints()
	if got[1] != pt(10, 0) {
		t.Errorf("expected constrained (10,0), got %v", got[1])
	}

	e.PointerUp(pt(10, 1), interaction.ButtonPrimary, true, canvas())
	if pts := e.Store().ActivePoints(); pts[1] != pt(10, 0) {
		t.Errorf("release should commit the constrained point, got %v", pts[1])
	}
}
