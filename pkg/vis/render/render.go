package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/fonts"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/input"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout"
)

// Default face sizes in points, tuned for the stock 150px tile.
const (
	defaultTileFontSize    = 11
	defaultButtonFontSize  = 13
	defaultLoadingFontSize = 22
)

// Button labels. The toggle labels describe the action, not the state.
const (
	labelClose      = "Close"
	labelHideCamera = "Hide Camera"
	labelShowCamera = "Show Camera"
	labelHideGrid   = "Hide Grid"
	labelShowGrid   = "Show Grid"
)

// Renderer composes visualizer frames into 8-bit RGBA canvases. A
// renderer is reusable across frames but not goroutine-safe: the font
// faces it holds are shared state.
type Renderer struct {
	style  Style
	logger *log.Logger

	tileSize    float64
	buttonSize  float64
	loadingSize float64

	tileFace    font.Face
	buttonFace  font.Face
	loadingFace font.Face
}

// Option configures a renderer.
type Option func(*Renderer)

// WithStyle replaces the default color theme.
func WithStyle(s Style) Option {
	return func(r *Renderer) { r.style = s }
}

// WithFontSizes overrides the tile, button, and loading point sizes.
func WithFontSizes(tile, button, loading float64) Option {
	return func(r *Renderer) {
		r.tileSize = tile
		r.buttonSize = button
		r.loadingSize = loading
	}
}

// WithLogger attaches a logger for draw diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// New creates a renderer with the default dark style and loads its
// font faces.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		style:       DefaultStyle(),
		tileSize:    defaultTileFontSize,
		buttonSize:  defaultButtonFontSize,
		loadingSize: defaultLoadingFontSize,
	}
	for _, opt := range opts {
		opt(r)
	}

	var err error
	if r.tileFace, err = fonts.Face(r.tileSize); err != nil {
		return nil, err
	}
	if r.buttonFace, err = fonts.Face(r.buttonSize); err != nil {
		return nil, err
	}
	if r.loadingFace, err = fonts.Face(r.loadingSize); err != nil {
		return nil, err
	}
	return r, nil
}

// Render composes one frame. It allocates a fresh canvas sized to the
// geometry on every call. A nil or empty camera frame leaves the camera
// block as background; cells outside the grid are skipped.
func (r *Renderer) Render(st input.State, geo layout.Geometry, cells []grid.Cell, camera image.Image) *image.RGBA {
	dc := gg.NewContext(geo.CanvasWidth, geo.CanvasHeight)
	dc.SetColor(r.style.Background)
	dc.Clear()

	if st.ShowCamera {
		r.drawCamera(dc, geo, camera)
	}
	if st.ShowGrid {
		r.drawGrid(dc, geo, cells)
	}
	r.drawButtons(dc, st, geo)

	return dc.Image().(*image.RGBA)
}

func (r *Renderer) drawCamera(dc *gg.Context, geo layout.Geometry, frame image.Image) {
	if frame == nil || frame.Bounds().Empty() {
		return
	}
	resized := imaging.Resize(frame, geo.Sizing.CameraWidth, geo.Sizing.CameraHeight, imaging.Linear)
	dc.DrawImage(resized, geo.CameraX(), geo.CameraY)
}

func (r *Renderer) drawGrid(dc *gg.Context, geo layout.Geometry, cells []grid.Cell) {
	for _, cell := range cells {
		if cell.Row < 0 || cell.Row >= geo.Rows || cell.Col < 0 || cell.Col >= geo.Cols {
			if r.logger != nil {
				r.logger.Debug("skipping cell outside grid", "row", cell.Row, "col", cell.Col)
			}
			continue
		}
		r.drawCell(dc, geo, cell)
	}
}

func (r *Renderer) drawCell(dc *gg.Context, geo layout.Geometry, cell grid.Cell) {
	b := geo.CellBounds(cell.Row, cell.Col)

	dr, dg, db := cell.Dominant.Bytes()
	fillBounds(dc, b, rgb(dr, dg, db))
	strokeBounds(dc, b, r.style.TileBorder)

	lines := []string{
		fmt.Sprintf("[%d,%d]", cell.Row, cell.Col),
		fmt.Sprintf("R:%.0f", cell.AvgRed*255),
		fmt.Sprintf("G:%.0f", cell.AvgGreen*255),
		fmt.Sprintf("B:%.0f", cell.AvgBlue*255),
		fmt.Sprintf("Br:%.2f", cell.Brightness),
		fmt.Sprintf("Cn:%.2f", cell.Contrast),
		fmt.Sprintf("D:(%d,%d,%d)", dr, dg, db),
	}

	dc.SetColor(r.tileTextColor(cell.Brightness))
	dc.SetFontFace(r.tileFace)

	maxTextWidth := geo.Sizing.CellSize - 2*layout.TextPadding
	baseline := b.Y1 + 10
	for _, line := range lines {
		if baseline+layout.LineHeight > b.Y2-layout.TextPadding {
			break
		}
		dc.DrawString(truncate(r.tileFace, line, maxTextWidth), float64(b.X1+layout.TextPadding), float64(baseline))
		baseline += layout.LineHeight
	}
}

// tileTextColor picks dark text on bright tiles and light text on dark
// ones.
func (r *Renderer) tileTextColor(brightness float64) color.RGBA {
	if brightness > 0.5 {
		return r.style.TileTextDark
	}
	return r.style.TileTextLight
}

func (r *Renderer) drawButtons(dc *gg.Context, st input.State, geo layout.Geometry) {
	r.drawButton(dc, st, geo.Close, labelClose, r.style.CloseFill, r.style.CloseHover)

	cameraLabel := labelShowCamera
	if st.ShowCamera {
		cameraLabel = labelHideCamera
	}
	r.drawButton(dc, st, geo.ToggleCamera, cameraLabel, r.style.CameraToggleFill, r.style.CameraToggleHover)

	gridLabel := labelShowGrid
	if st.ShowGrid {
		gridLabel = labelHideGrid
	}
	r.drawButton(dc, st, geo.ToggleGrid, gridLabel, r.style.GridToggleFill, r.style.GridToggleHover)
}

func (r *Renderer) drawButton(dc *gg.Context, st input.State, b layout.Bounds, label string, fill, hover color.RGBA) {
	c := fill
	if st.Pointer.Over(b) {
		c = hover
	}
	fillBounds(dc, b, c)
	strokeBounds(dc, b, r.style.ButtonBorder)

	dc.SetColor(r.style.ButtonLabel)
	dc.SetFontFace(r.buttonFace)
	label = truncate(r.buttonFace, label, b.Width()-2*layout.TextPadding)
	dc.DrawStringAnchored(label, float64(b.CenterX()), float64(b.CenterY()), 0.5, 0.5)
}

// fillBounds paints the inclusive rectangle, covering both corner
// pixels.
func fillBounds(dc *gg.Context, b layout.Bounds, c color.Color) {
	dc.SetColor(c)
	dc.DrawRectangle(float64(b.X1), float64(b.Y1), float64(b.Width()+1), float64(b.Height()+1))
	dc.Fill()
}

// strokeBounds outlines the rectangle with a crisp 1px border.
func strokeBounds(dc *gg.Context, b layout.Bounds, c color.Color) {
	dc.SetColor(c)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(b.X1)+0.5, float64(b.Y1)+0.5, float64(b.Width()), float64(b.Height()))
	dc.Stroke()
}
