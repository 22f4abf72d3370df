// Package canvas provides the annotation canvas: an image display with pan,
// zoom, and pointer-driven polygon editing.
package canvas

import (
	"image"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	xdraw "golang.org/x/image/draw"

	"image-interact/internal/decoration"
	"image-interact/internal/editor"
	"image-interact/internal/interaction"
	"image-interact/internal/render"
	"image-interact/internal/viewport"
	"image-interact/pkg/colorutil"
	"image-interact/pkg/geometry"
)

const (
	minZoom  = 0.1
	maxZoom  = 20.0
	zoomStep = 1.25
)

// AnnotationCanvas displays an image with polygon decorations drawn over it.
// It feeds pointer events to the editor and rasterizes the editor's draw
// primitives. The canvas is the editor's pan/zoom provider: its zoom factor
// is the current scale.
type AnnotationCanvas struct {
	widget.BaseWidget

	editor     *editor.Editor
	background image.Image

	raster *fynecanvas.Raster
	zoom   float64
	groups []render.Group

	scroll  *zoomScroll
	content *pointerContent
	imgSize fyne.Size

	onZoomChange func(zoom float64)
}

// New creates an annotation canvas showing the given background image.
// Attach must be called before the canvas receives pointer events.
func New(background image.Image) *AnnotationCanvas {
	ac := &AnnotationCanvas{
		background: background,
		zoom:       1.0,
		imgSize:    fyne.NewSize(400, 300),
	}

	ac.raster = fynecanvas.NewRaster(ac.draw)
	ac.raster.ScaleMode = fynecanvas.ImageScalePixels
	ac.raster.SetMinSize(ac.imgSize)

	ac.content = newPointerContent(ac, ac.raster)
	ac.scroll = newZoomScroll(ac.content, ac)

	ac.ExtendBaseWidget(ac)
	ac.updateContentSize()
	return ac
}

// Attach connects the editor and subscribes to its render output.
func (ac *AnnotationCanvas) Attach(ed *editor.Editor) {
	ac.editor = ed
	ac.groups = ed.Render()
	ed.On(editor.EventRender, func(data interface{}) {
		ac.groups = data.([]render.Group)
		ac.raster.Refresh()
	})
}

// CurrentScale implements viewport.PanZoom.
func (ac *AnnotationCanvas) CurrentScale() float64 {
	return ac.zoom
}

// Container returns the canvas container for embedding in layouts.
func (ac *AnnotationCanvas) Container() fyne.CanvasObject {
	return ac.scroll
}

// SetBackground replaces the background image and resets the zoom.
func (ac *AnnotationCanvas) SetBackground(background image.Image) {
	ac.background = background
	ac.SetZoom(1.0)
}

// SetZoom sets the zoom level.
func (ac *AnnotationCanvas) SetZoom(zoom float64) {
	if zoom < minZoom {
		zoom = minZoom
	}
	if zoom > maxZoom {
		zoom = maxZoom
	}
	ac.zoom = zoom
	ac.updateContentSize()

	if ac.onZoomChange != nil {
		ac.onZoomChange(zoom)
	}
}

// Zoom returns the current zoom level.
func (ac *AnnotationCanvas) Zoom() float64 {
	return ac.zoom
}

// ZoomIn increases the zoom level.
func (ac *AnnotationCanvas) ZoomIn() {
	ac.SetZoom(ac.zoom * zoomStep)
}

// ZoomOut decreases the zoom level.
func (ac *AnnotationCanvas) ZoomOut() {
	ac.SetZoom(ac.zoom / zoomStep)
}

// OnZoomChange sets a callback for zoom changes.
func (ac *AnnotationCanvas) OnZoomChange(callback func(zoom float64)) {
	ac.onZoomChange = callback
}

// Refresh refreshes the canvas display.
func (ac *AnnotationCanvas) Refresh() {
	ac.raster.Refresh()
}

// backgroundBounds returns the background image bounds, or a default area.
func (ac *AnnotationCanvas) backgroundBounds() image.Rectangle {
	if ac.background == nil {
		return image.Rect(0, 0, 400, 300)
	}
	return ac.background.Bounds()
}

// updateContentSize resizes the raster to the zoomed image size.
func (ac *AnnotationCanvas) updateContentSize() {
	bounds := ac.backgroundBounds()
	ac.imgSize = fyne.NewSize(
		float32(float64(bounds.Dx())*ac.zoom),
		float32(float64(bounds.Dy())*ac.zoom),
	)

	ac.raster.SetMinSize(ac.imgSize)
	ac.raster.Resize(ac.imgSize)
	if ac.content != nil {
		ac.content.Resize(ac.imgSize)
		ac.content.Refresh()
	}
	ac.raster.Refresh()
	if ac.scroll != nil {
		ac.scroll.Refresh()
	}
}

// canvasPos converts a widget-relative event position into canvas (zoomed
// pixel) coordinates.
func (ac *AnnotationCanvas) canvasPos(pos fyne.Position) geometry.Point2D {
	offset := ac.scroll.Offset()
	return geometry.Point2D{
		X: float64(pos.X + offset.X),
		Y: float64(pos.Y + offset.Y),
	}
}

// targetAt hit-tests a model-space position against the decorations: vertex
// handles first (topmost decoration wins), then polygon bodies, else the
// background canvas.
func (ac *AnnotationCanvas) targetAt(model geometry.Point2D) interaction.Target {
	if ac.editor == nil {
		return interaction.CanvasTarget()
	}

	decs := ac.editor.Store().Decorations()
	// Clickable radius matches the drawn glyph radius.
	hitRadius := ac.editor.Config().HandleSize * viewport.HandleScale(ac) / 2

	for i := len(decs) - 1; i >= 0; i-- {
		if decs[i].Kind != decoration.KindPolygon {
			continue
		}
		for j, p := range decs[i].Points {
			if geometry.LineLength(model, p) <= hitRadius {
				return interaction.HandleTarget(i, j)
			}
		}
	}

	for i := len(decs) - 1; i >= 0; i-- {
		if decs[i].Kind != decoration.KindPolygon || len(decs[i].Points) < 3 {
			continue
		}
		if !geometry.BoundingBox(decs[i].Points).Contains(model) {
			continue
		}
		if geometry.PointInPolygon(model, decs[i].Points) {
			return interaction.PolygonTarget(i)
		}
	}

	return interaction.CanvasTarget()
}

// draw is the raster drawing function.
func (ac *AnnotationCanvas) draw(w, h int) image.Image {
	output := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.Draw(output, output.Bounds(), image.NewUniform(colorutil.Black), image.Point{}, xdraw.Src)

	if ac.background != nil {
		bounds := ac.background.Bounds()
		dstW := int(float64(bounds.Dx()) * ac.zoom)
		dstH := int(float64(bounds.Dy()) * ac.zoom)
		if dstW > w {
			dstW = w
		}
		if dstH > h {
			dstH = h
		}
		xdraw.NearestNeighbor.Scale(output, image.Rect(0, 0, dstW, dstH), ac.background, bounds, xdraw.Src, nil)
	}

	for _, g := range ac.groups {
		ac.drawGroup(output, g)
	}
	return output
}

// CreateRenderer implements fyne.Widget.
func (ac *AnnotationCanvas) CreateRenderer() fyne.WidgetRenderer {
	return &annotationCanvasRenderer{canvas: ac}
}

type annotationCanvasRenderer struct {
	canvas *AnnotationCanvas
}

func (r *annotationCanvasRenderer) Layout(size fyne.Size) {
	if r.canvas.scroll != nil {
		r.canvas.scroll.Resize(size)
	}
}

func (r *annotationCanvasRenderer) MinSize() fyne.Size {
	return fyne.NewSize(100, 100)
}

func (r *annotationCanvasRenderer) Refresh() {
	r.canvas.raster.Refresh()
}

func (r *annotationCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.canvas.scroll}
}

func (r *annotationCanvasRenderer) Destroy() {}

// zoomScroll wraps a scroll container but intercepts the wheel for zoom.
type zoomScroll struct {
	widget.BaseWidget
	scroll *container.Scroll
	canvas *AnnotationCanvas
}

func newZoomScroll(content fyne.CanvasObject, canvas *AnnotationCanvas) *zoomScroll {
	scroll := container.NewScroll(content)
	scroll.Direction = container.ScrollBoth
	zs := &zoomScroll{scroll: scroll, canvas: canvas}
	zs.ExtendBaseWidget(zs)
	return zs
}

func (zs *zoomScroll) Scrolled(ev *fyne.ScrollEvent) {
	if ev.Scrolled.DY > 0 {
		zs.canvas.ZoomIn()
	} else if ev.Scrolled.DY < 0 {
		zs.canvas.ZoomOut()
	}
}

func (zs *zoomScroll) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(zs.scroll)
}

// Offset returns the scroll container's current offset.
func (zs *zoomScroll) Offset() fyne.Position {
	return zs.scroll.Offset
}

// ScrollBy pans the viewport by the given delta.
func (zs *zoomScroll) ScrollBy(dx, dy float32) {
	zs.scroll.Offset = fyne.NewPos(zs.scroll.Offset.X-dx, zs.scroll.Offset.Y-dy)
	zs.scroll.Refresh()
}

// Refresh refreshes the scroll container.
func (zs *zoomScroll) Refresh() {
	zs.scroll.Refresh()
	zs.BaseWidget.Refresh()
}

// Resize sets the size of the scroll container.
func (zs *zoomScroll) Resize(size fyne.Size) {
	zs.scroll.Resize(size)
	zs.BaseWidget.Resize(size)
}

// pointerContent wraps the raster and feeds mouse events to the editor.
type pointerContent struct {
	widget.BaseWidget
	canvas *AnnotationCanvas
	raster *fynecanvas.Raster
}

var _ desktop.Mouseable = (*pointerContent)(nil)
var _ desktop.Hoverable = (*pointerContent)(nil)
var _ fyne.Draggable = (*pointerContent)(nil)

func newPointerContent(ac *AnnotationCanvas, raster *fynecanvas.Raster) *pointerContent {
	pc := &pointerContent{canvas: ac, raster: raster}
	pc.ExtendBaseWidget(pc)
	return pc
}

func (pc *pointerContent) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.raster)
}

func (pc *pointerContent) MinSize() fyne.Size {
	return pc.raster.MinSize()
}

// buttonCode maps Fyne mouse buttons to the pointer event contract
// (primary=0, auxiliary=1, secondary=2).
func buttonCode(b desktop.MouseButton) int {
	switch b {
	case desktop.MouseButtonSecondary:
		return interaction.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return interaction.ButtonAuxiliary
	default:
		return interaction.ButtonPrimary
	}
}

func shiftDown(m fyne.KeyModifier) bool {
	return m&fyne.KeyModifierShift != 0
}

func (pc *pointerContent) MouseDown(ev *desktop.MouseEvent) {
	if pc.canvas.editor == nil {
		return
	}
	raw := pc.canvas.canvasPos(ev.Position)
	model := viewport.ToModel(raw, pc.canvas)
	pc.canvas.editor.PointerDown(raw, buttonCode(ev.Button), shiftDown(ev.Modifier), pc.canvas.targetAt(model))
}

func (pc *pointerContent) MouseUp(ev *desktop.MouseEvent) {
	if pc.canvas.editor == nil {
		return
	}
	raw := pc.canvas.canvasPos(ev.Position)
	model := viewport.ToModel(raw, pc.canvas)
	pc.canvas.editor.PointerUp(raw, buttonCode(ev.Button), shiftDown(ev.Modifier), pc.canvas.targetAt(model))
}

func (pc *pointerContent) MouseIn(*desktop.MouseEvent) {}

func (pc *pointerContent) MouseMoved(ev *desktop.MouseEvent) {
	if pc.canvas.editor == nil {
		return
	}
	raw := pc.canvas.canvasPos(ev.Position)
	model := viewport.ToModel(raw, pc.canvas)
	pc.canvas.editor.PointerMove(raw, shiftDown(ev.Modifier), pc.canvas.targetAt(model))
}

func (pc *pointerContent) MouseOut() {}

// Dragged pans the viewport, but only when the editor permits it. Drags in
// Poly mode belong to the polygon tools.
func (pc *pointerContent) Dragged(ev *fyne.DragEvent) {
	if pc.canvas.editor == nil || !pc.canvas.editor.AllowPan() {
		return
	}
	pc.canvas.scroll.ScrollBy(ev.Dragged.DX, ev.Dragged.DY)
}

func (pc *pointerContent) DragEnd() {}
