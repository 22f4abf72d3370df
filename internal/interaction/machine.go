// Package interaction interprets raw pointer events into polygon mutations.
//
// The state machine is a pure transition function: it never touches the
// decoration store directly. Each step returns the successor state plus the
// list of store mutations to apply, which keeps the whole event
// interpretation testable without a UI host.
package interaction

import (
	"math"

	"image-interact/internal/predict"
	"image-interact/pkg/geometry"
)

// Mode enumerates the interaction modes. Only Poly and Pan drive behavior;
// Delete, Point and Select are reserved and leave pointer events inert.
type Mode int

const (
	ModeDelete Mode = iota
	ModePan
	ModePoly
	ModePoint
	ModeSelect
)

// String returns the mode name for diagnostics.
func (m Mode) String() string {
	switch m {
	case ModeDelete:
		return "delete"
	case ModePan:
		return "pan"
	case ModePoly:
		return "poly"
	case ModePoint:
		return "point"
	case ModeSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Pointer button codes, matching the host event contract.
const (
	ButtonPrimary   = 0
	ButtonAuxiliary = 1
	ButtonSecondary = 2
)

// EventType distinguishes pointer event phases.
type EventType int

const (
	PointerDown EventType = iota
	PointerMove
	PointerUp
)

// TargetKind classifies the element under the pointer.
type TargetKind int

const (
	TargetCanvas TargetKind = iota
	TargetHandle
	TargetPolygon
)

// Target identifies the element a pointer event hit. It replaces host-element
// identity comparison with an explicit value.
type Target struct {
	Kind       TargetKind
	Decoration int // decoration index, -1 for the background canvas
	PointIndex int // handle's vertex index, -1 otherwise
}

// CanvasTarget is the background canvas.
func CanvasTarget() Target {
	return Target{Kind: TargetCanvas, Decoration: -1, PointIndex: -1}
}

// HandleTarget is the vertex handle pointIndex of a decoration.
func HandleTarget(decoration, pointIndex int) Target {
	return Target{Kind: TargetHandle, Decoration: decoration, PointIndex: pointIndex}
}

// PolygonTarget is the body of a decoration's polygon.
func PolygonTarget(decoration int) Target {
	return Target{Kind: TargetPolygon, Decoration: decoration, PointIndex: -1}
}

// Event is one pointer event in model-space coordinates.
type Event struct {
	Type   EventType
	Button int
	Pos    geometry.Point2D
	Shift  bool
	// Held reports whether any button is currently pressed. Only meaningful
	// on move events; the host tracks it across down/up.
	Held   bool
	Target Target
}

// State is the transient interaction state threaded through Step.
type State struct {
	Mode        Mode
	ActivePoint int // vertex being dragged, -1 when idle
	DragAnchor  *geometry.Point2D
	Predicted   *predict.Candidate
	DragTarget  *Target
}

// NewState returns an idle state in the given mode.
func NewState(mode Mode) State {
	return State{Mode: mode, ActivePoint: -1}
}

// Context is the read-only polygon context a step runs against.
type Context struct {
	Active      int // active decoration index
	Points      []geometry.Point2D
	Constraints bool // shift-axis snapping enabled
}

// EffectKind enumerates store mutations a step can request.
type EffectKind int

const (
	EffectSetPoint EffectKind = iota
	EffectInsertPoint
	EffectDeletePoint
	EffectTranslate
)

// Effect is one store mutation requested by a transition.
type Effect struct {
	Kind   EffectKind
	Index  int
	Point  geometry.Point2D
	DX, DY float64
}

// Step advances the state machine by one pointer event. It returns the
// successor state and the store mutations to apply, in order.
func Step(st State, ev Event, ctx Context) (State, []Effect) {
	// Middle-button release toggles Poly <-> Pan independent of Poly logic.
	if ev.Type == PointerUp && ev.Button == ButtonAuxiliary {
		switch st.Mode {
		case ModePoly:
			st.Mode = ModePan
		case ModePan:
			st.Mode = ModePoly
		}
		return st, nil
	}

	if st.Mode != ModePoly {
		return st, nil
	}

	switch ev.Type {
	case PointerDown:
		return stepDown(st, ev, ctx)
	case PointerMove:
		return stepMove(st, ev, ctx)
	case PointerUp:
		return stepUp(st, ev, ctx)
	}
	return st, nil
}

func stepDown(st State, ev Event, ctx Context) (State, []Effect) {
	tgt := ev.Target
	st.DragTarget = &tgt

	if ev.Button == ButtonSecondary {
		var effects []Effect
		if tgt.Kind == TargetHandle && tgt.Decoration == ctx.Active {
			effects = append(effects, Effect{Kind: EffectDeletePoint, Index: tgt.PointIndex})
		}
		// Clear drag state regardless of what was hit.
		st.ActivePoint = -1
		st.DragAnchor = nil
		st.Predicted = nil
		return st, effects
	}
	if ev.Button != ButtonPrimary {
		return st, nil
	}

	var effects []Effect
	switch {
	case tgt.Kind == TargetHandle && tgt.Decoration == ctx.Active:
		// Grab the vertex; subsequent moves relocate it.
		st.ActivePoint = tgt.PointIndex

	case tgt.Kind == TargetPolygon && tgt.Decoration == ctx.Active:
		if st.Predicted != nil {
			c := *st.Predicted
			effects = append(effects, Effect{Kind: EffectInsertPoint, Index: c.InsertAt, Point: c.Point})
			st.ActivePoint = c.InsertAt
			anchor := c.Point
			st.DragAnchor = &anchor
			st.Predicted = nil
		} else {
			// Whole-polygon drag from here.
			anchor := ev.Pos
			st.DragAnchor = &anchor
		}

	default:
		// Background canvas, or a decoration other than the active one.
		if st.Predicted != nil {
			c := *st.Predicted
			effects = append(effects, Effect{Kind: EffectInsertPoint, Index: c.InsertAt, Point: c.Point})
			st.ActivePoint = c.InsertAt
			st.Predicted = nil
		} else {
			idx := len(ctx.Points)
			effects = append(effects, Effect{Kind: EffectSetPoint, Index: idx, Point: ev.Pos})
			st.ActivePoint = idx
		}
	}
	return st, effects
}

func stepMove(st State, ev Event, ctx Context) (State, []Effect) {
	// Stale predictions never survive a move.
	st.Predicted = nil
	if !ev.Held && ev.Target.Kind != TargetHandle {
		st.Predicted = predict.Nearest(ev.Pos, ctx.Points)
	}

	var effects []Effect
	overActiveBody := ev.Target.Kind == TargetPolygon && ev.Target.Decoration == ctx.Active
	switch {
	case st.DragAnchor != nil && overActiveBody && st.Predicted == nil:
		delta := ev.Pos.Sub(*st.DragAnchor)
		effects = append(effects, Effect{
			Kind: EffectTranslate,
			DX:   delta.X,
			DY:   delta.Y,
		})
		anchor := ev.Pos
		st.DragAnchor = &anchor

	case st.ActivePoint >= 0:
		effects = append(effects, Effect{
			Kind:  EffectSetPoint,
			Index: st.ActivePoint,
			Point: dragPoint(st, ev, ctx),
		})
	}
	return st, effects
}

func stepUp(st State, ev Event, ctx Context) (State, []Effect) {
	var effects []Effect
	if ev.Button == ButtonPrimary && st.ActivePoint >= 0 {
		final := dragPoint(st, ev, ctx)
		if st.Predicted != nil {
			effects = append(effects, Effect{Kind: EffectInsertPoint, Index: st.Predicted.InsertAt, Point: final})
		} else {
			effects = append(effects, Effect{Kind: EffectSetPoint, Index: st.ActivePoint, Point: final})
		}
	}

	// Back to idle at the end of every pointer-up.
	st.ActivePoint = -1
	st.DragAnchor = nil
	st.Predicted = nil
	st.DragTarget = nil
	return st, effects
}

// dragPoint resolves the dragged vertex position, applying the shift-axis
// constraint against the previous vertex when enabled.
func dragPoint(st State, ev Event, ctx Context) geometry.Point2D {
	if !ev.Shift || !ctx.Constraints || st.ActivePoint <= 0 || st.ActivePoint-1 >= len(ctx.Points) {
		return ev.Pos
	}
	return constrainAxis(ctx.Points[st.ActivePoint-1], ev.Pos)
}

// constrainAxis snaps p to the dominant axis relative to prev. Deltas within
// 45 degrees of horizontal (or past 157.5 degrees) lock y; everything else
// locks x.
func constrainAxis(prev, p geometry.Point2D) geometry.Point2D {
	angle := math.Atan2(p.Y-prev.Y, p.X-prev.X) * 180 / math.Pi
	if (angle > -45 && angle < 45) || angle > 157.5 || angle < -157.5 {
		return geometry.Point2D{X: p.X, Y: prev.Y}
	}
	return geometry.Point2D{X: prev.X, Y: p.Y}
}
