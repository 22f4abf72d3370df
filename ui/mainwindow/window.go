// Package mainwindow provides the main application window.
package mainwindow

import (
	"encoding/json"
	"fmt"
	"image"
	"io"
	"path/filepath"

	"image-interact/internal/decoration"
	"image-interact/internal/editor"
	imgload "image-interact/internal/image"
	"image-interact/internal/interaction"
	"image-interact/internal/version"
	"image-interact/pkg/geometry"
	"image-interact/ui/canvas"
	"image-interact/ui/prefs"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyLastDir   = "lastDirectory"
	prefKeyLastImage = "lastImage"
	prefKeyZoom      = "zoom"
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app    fyne.App
	editor *editor.Editor
	canvas *canvas.AnnotationCanvas
	prefs  *prefs.Prefs

	statusBar *widget.Label
	modeLabel *widget.Label
	zoomLabel *widget.Label
}

// New creates the main window. The canvas serves as the editor's pan/zoom
// provider, so the editor is constructed here once the canvas exists.
func New(fyneApp fyne.App, cfg editor.Config, areas []string, background image.Image, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Image Annotator")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		prefs:  p,
	}

	mw.setupUI(cfg, areas, background)
	mw.setupMenus()
	mw.setupEventHandlers()

	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI(cfg editor.Config, areas []string, background image.Image) {
	mw.canvas = canvas.New(background)

	cfg.PanZoom = mw.canvas
	var hostWidth float64
	if background != nil {
		hostWidth = float64(background.Bounds().Dx())
	}
	mw.editor = editor.NewFromAreas(cfg, areas, hostWidth)
	mw.canvas.Attach(mw.editor)

	mw.statusBar = widget.NewLabel("Ready")
	mw.modeLabel = widget.NewLabel("Mode: " + mw.editor.Mode().String())
	mw.zoomLabel = widget.NewLabel("100%")

	mw.canvas.OnZoomChange(func(zoom float64) {
		mw.zoomLabel.SetText(fmt.Sprintf("%.0f%%", zoom*100))
		mw.prefs.SetFloat(prefKeyZoom, zoom)
	})
	if zoom := mw.prefs.Float(prefKeyZoom); zoom > 0 {
		mw.canvas.SetZoom(zoom)
	}

	toolbar := mw.createToolbar()

	content := container.NewBorder(
		toolbar,                           // top
		container.NewPadded(mw.statusBar), // bottom
		nil,                               // left
		nil,                               // right
		mw.canvas.Container(),             // center
	)

	mw.SetContent(content)
	mw.Resize(fyne.NewSize(900, 700))
}

// createToolbar creates the toolbar with zoom controls and the mode readout.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	zoomOutBtn := widget.NewButton("-", func() {
		mw.canvas.ZoomOut()
	})
	zoomInBtn := widget.NewButton("+", func() {
		mw.canvas.ZoomIn()
	})
	actualBtn := widget.NewButton("1:1", func() {
		mw.canvas.SetZoom(1.0)
	})

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		zoomOutBtn,
		zoomInBtn,
		actualBtn,
		mw.zoomLabel,
		widget.NewSeparator(),
		mw.modeLabel,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mw.onOpenImage),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Annotations...", mw.onExportAnnotations),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Zoom In", func() { mw.canvas.ZoomIn() }),
		fyne.NewMenuItem("Zoom Out", func() { mw.canvas.ZoomOut() }),
		fyne.NewMenuItem("Actual Size", func() { mw.canvas.SetZoom(1.0) }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, viewMenu, helpMenu)
	mw.SetMainMenu(mainMenu)
}

// setupEventHandlers registers for editor events.
func (mw *MainWindow) setupEventHandlers() {
	mw.editor.On(editor.EventModeChanged, func(data interface{}) {
		mode := data.(interaction.Mode)
		mw.modeLabel.SetText("Mode: " + mode.String())
		if mode == interaction.ModePan {
			mw.updateStatus("Pan mode: drag to scroll, middle-click to return to drawing")
		} else {
			mw.updateStatus("Draw mode: click to place points, middle-click to pan")
		}
	})

	mw.editor.On(editor.EventDecorationsChanged, func(interface{}) {
		points := len(mw.editor.Store().ActivePoints())
		mw.updateStatus(fmt.Sprintf("Active polygon: %d points", points))
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefKeyLastDir, filepath.Dir(filePath))
	_ = mw.prefs.Save()
}

func (mw *MainWindow) onOpenImage() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)

		img, err := imgload.Load(path)
		if err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}

		mw.prefs.SetString(prefKeyLastImage, path)
		_ = mw.prefs.Save()

		mw.canvas.SetBackground(img)
		mw.SetTitle("Image Annotator - " + filepath.Base(path))
		mw.updateStatus("Image loaded: " + path)
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".tiff", ".tif"}))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

func (mw *MainWindow) onExportAnnotations() {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		mw.saveLastDir(writer.URI().Path())

		if err := exportAnnotations(mw.editor.Store().Decorations(), writer); err != nil {
			dialog.ShowError(err, mw.Window)
			return
		}
		mw.updateStatus("Annotations exported: " + writer.URI().Name())
	}, mw.Window)
	fd.SetFileName("annotations.json")
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// exportAnnotations writes the polygon point lists as JSON.
func exportAnnotations(decs []decoration.Decoration, w io.Writer) error {
	polygons := make([][]geometry.Point2D, 0, len(decs))
	for _, d := range decs {
		if d.Kind != decoration.KindPolygon {
			continue
		}
		polygons = append(polygons, d.Points)
	}

	data, err := json.MarshalIndent(polygons, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode annotations: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Image Annotator",
		fmt.Sprintf("Image Annotator v%s\n\n"+
			"Polygon annotation tool for images.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
