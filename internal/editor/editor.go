// Package editor wires the decoration store, interaction state machine, and
// renderer together behind a pointer-event API for the host.
package editor

import (
	"github.com/sirupsen/logrus"

	"image-interact/internal/decoration"
	"image-interact/internal/interaction"
	"image-interact/internal/render"
	"image-interact/internal/viewport"
	"image-interact/pkg/geometry"
)

// Config is the construction configuration. Immutable after New.
type Config struct {
	// ConstraintsEnabled enables shift-axis snapping while dragging.
	ConstraintsEnabled bool
	// HandleShape selects circle or square vertex handles.
	HandleShape render.HandleShape
	// HandleSize is the handle size in model-space units at 1x zoom.
	HandleSize float64
	// ScaleFromWidth is the reference width legacy coordinates were captured
	// against. Zero disables rescaling on import.
	ScaleFromWidth float64
	// PanZoom is the optional pan/zoom capability. Nil disables zoom-aware
	// coordinate handling.
	PanZoom viewport.PanZoom
}

// DefaultConfig returns the editor defaults.
func DefaultConfig() Config {
	return Config{
		ConstraintsEnabled: true,
		HandleShape:        render.HandleCircle,
		HandleSize:         6,
	}
}

// Editor owns the decoration store and the interaction state. It is the
// store's only writer; rendering and hit-testing read through it. All methods
// must be called from a single goroutine.
type Editor struct {
	cfg   Config
	store *decoration.Store
	state interaction.State
	held  bool

	listeners map[EventType][]EventListener
	log       *logrus.Entry
}

// New creates an editor seeded with one empty active polygon.
func New(cfg Config) *Editor {
	return newEditor(cfg, nil, 0)
}

// NewFromAreas creates an editor seeded from a legacy area list. Entries that
// carry no shape import as empty polygons; an empty list falls back to a
// single empty polygon so there is always an active decoration.
func NewFromAreas(cfg Config, coordLists []string, hostWidth float64) *Editor {
	return newEditor(cfg, coordLists, hostWidth)
}

func newEditor(cfg Config, coordLists []string, hostWidth float64) *Editor {
	if cfg.HandleSize <= 0 {
		cfg.HandleSize = DefaultConfig().HandleSize
	}

	e := &Editor{
		cfg:       cfg,
		store:     decoration.NewStore(),
		state:     interaction.NewState(interaction.ModePoly),
		listeners: make(map[EventType][]EventListener),
		log:       logrus.WithField("component", "editor"),
	}

	if cfg.PanZoom == nil {
		e.log.Warn("no pan/zoom provider; coordinates are used unscaled")
	}

	for _, d := range decoration.ImportAreas(coordLists, hostWidth, cfg.ScaleFromWidth) {
		e.store.Add(d)
	}
	if e.store.Len() == 0 {
		e.store.Add(decoration.NewPolygon())
	}
	return e
}

// Config returns the construction configuration.
func (e *Editor) Config() Config {
	return e.cfg
}

// Store exposes the decoration store for reading (rendering, hit-testing).
func (e *Editor) Store() *decoration.Store {
	return e.store
}

// Mode returns the current interaction mode.
func (e *Editor) Mode() interaction.Mode {
	return e.state.Mode
}

// State returns a copy of the current interaction state.
func (e *Editor) State() interaction.State {
	return e.state
}

// AllowPan reports whether the host may start a pan gesture. Panning while
// drawing is refused.
func (e *Editor) AllowPan() bool {
	return e.state.Mode != interaction.ModePoly
}

// PointerDown handles a button press at a raw (screen-relative) position.
func (e *Editor) PointerDown(raw geometry.Point2D, button int, shift bool, target interaction.Target) {
	e.held = true
	e.handle(interaction.Event{
		Type:   interaction.PointerDown,
		Button: button,
		Pos:    viewport.ToModel(raw, e.cfg.PanZoom),
		Shift:  shift,
		Target: target,
	})
}

// PointerMove handles pointer motion.
func (e *Editor) PointerMove(raw geometry.Point2D, shift bool, target interaction.Target) {
	e.handle(interaction.Event{
		Type:   interaction.PointerMove,
		Pos:    viewport.ToModel(raw, e.cfg.PanZoom),
		Shift:  shift,
		Held:   e.held,
		Target: target,
	})
}

// PointerUp handles a button release.
func (e *Editor) PointerUp(raw geometry.Point2D, button int, shift bool, target interaction.Target) {
	e.held = false
	e.handle(interaction.Event{
		Type:   interaction.PointerUp,
		Button: button,
		Pos:    viewport.ToModel(raw, e.cfg.PanZoom),
		Shift:  shift,
		Target: target,
	})
}

// Render derives the current draw primitives.
func (e *Editor) Render() []render.Group {
	return render.Render(e.store, e.state, e.cfg.HandleShape, e.cfg.HandleSize, e.cfg.PanZoom)
}

// handle runs one event through the state machine, applies the resulting
// store mutations, and notifies listeners. Every event ends with a re-render.
func (e *Editor) handle(ev interaction.Event) {
	prevMode := e.state.Mode

	ctx := interaction.Context{
		Active:      e.store.Active(),
		Points:      e.store.ActivePoints(),
		Constraints: e.cfg.ConstraintsEnabled,
	}
	next, effects := interaction.Step(e.state, ev, ctx)
	e.state = next

	if len(effects) > 0 {
		e.apply(effects)
		e.Emit(EventDecorationsChanged, nil)
	}
	if next.Mode != prevMode {
		e.log.WithField("mode", next.Mode.String()).Debug("mode changed")
		e.Emit(EventModeChanged, next.Mode)
	}
	e.Emit(EventRender, e.Render())
}

func (e *Editor) apply(effects []interaction.Effect) {
	for _, ef := range effects {
		switch ef.Kind {
		case interaction.EffectSetPoint:
			e.store.SetPoint(ef.Index, ef.Point)
		case interaction.EffectInsertPoint:
			e.store.InsertPoint(ef.Index, ef.Point)
		case interaction.EffectDeletePoint:
			e.store.DeletePoint(ef.Index)
		case interaction.EffectTranslate:
			e.store.Translate(ef.DX, ef.DY)
		}
	}
}
