// Package layout computes the responsive screen geometry of the
// visualizer window.
//
// Sizing happens once per grid configuration: desired block sizes are
// scaled down uniformly when the stacked canvas would exceed the height
// cap. Geometry is then a pure function of that sizing and the current
// visibility flags, so toggling a block off and on restores the previous
// layout exactly.
package layout

import (
	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
)

// Chrome dimensions shared by layout and rendering. These stay fixed;
// only the desired sizes in Tunables participate in scaling.
const (
	Padding       = 10
	TextPadding   = 5
	ButtonHeight  = 35
	ButtonWidth   = 140
	ButtonSpacing = 10
	LineHeight    = 14
)

// barWidth is the total width of the three-button control row.
const barWidth = 3*ButtonWidth + 2*ButtonSpacing

// Tunables holds the adjustable sizing targets. Desired sizes apply
// before scaling. Start from DefaultTunables; the zero value fails
// validation.
type Tunables struct {
	DesiredCellSize      int
	DesiredCameraWidth   int
	DesiredCameraHeight  int
	MaxCanvasHeight      int
	MaxCanvasWidth       int // informational; width derives from content and is never capped
	FallbackContentWidth int
}

// DefaultTunables returns the stock sizing targets.
func DefaultTunables() Tunables {
	return Tunables{
		DesiredCellSize:      150,
		DesiredCameraWidth:   640,
		DesiredCameraHeight:  480,
		MaxCanvasHeight:      900,
		MaxCanvasWidth:       1600,
		FallbackContentWidth: 400,
	}
}

func (t Tunables) validate() error {
	for _, v := range []struct {
		name  string
		value int
	}{
		{"desired cell size", t.DesiredCellSize},
		{"desired camera width", t.DesiredCameraWidth},
		{"desired camera height", t.DesiredCameraHeight},
		{"max canvas height", t.MaxCanvasHeight},
		{"fallback content width", t.FallbackContentWidth},
	} {
		if v.value < 1 {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be positive, got %d", v.name, v.value)
		}
	}
	return nil
}

// Sizing holds the scaled block dimensions, computed once per grid
// configuration.
type Sizing struct {
	CellSize     int
	CameraWidth  int
	CameraHeight int
	GridWidth    int
	GridHeight   int
	Scale        float64
}

// Geometry is the complete frame layout for one combination of
// visibility flags. It is a plain value: comparing two geometries with
// == tells whether a toggle round trip restored the layout.
//
// Offsets of hidden blocks are zero. Shown blocks always sit below the
// control row, so a zero offset never aliases a real position.
type Geometry struct {
	Sizing     Sizing
	Rows, Cols int

	ShowCamera bool
	ShowGrid   bool

	CanvasWidth  int
	CanvasHeight int

	ButtonBarY int
	CameraY    int
	GridY      int

	Close        Bounds
	ToggleCamera Bounds
	ToggleGrid   Bounds
}

// CameraX returns the horizontal offset that centers the camera block.
func (g Geometry) CameraX() int { return (g.CanvasWidth - g.Sizing.CameraWidth) / 2 }

// GridX returns the horizontal offset that centers the grid panel.
func (g Geometry) GridX() int { return (g.CanvasWidth - g.Sizing.GridWidth) / 2 }

// CellBounds returns the inclusive rectangle of one tile.
func (g Geometry) CellBounds(row, col int) Bounds {
	x := g.GridX() + Padding + col*(g.Sizing.CellSize+Padding)
	y := g.GridY + Padding + row*(g.Sizing.CellSize+Padding)
	return Bounds{X1: x, Y1: y, X2: x + g.Sizing.CellSize, Y2: y + g.Sizing.CellSize}
}

// Engine computes layouts for one grid configuration.
type Engine struct {
	cfg      grid.Config
	tunables Tunables
	sizing   Sizing
}

// Option configures the layout engine.
type Option func(*Engine)

// WithTunables replaces the full set of sizing targets.
func WithTunables(t Tunables) Option {
	return func(e *Engine) { e.tunables = t }
}

// WithCellSize overrides the desired (pre-scale) tile size in pixels.
func WithCellSize(px int) Option {
	return func(e *Engine) { e.tunables.DesiredCellSize = px }
}

// WithCameraSize overrides the desired (pre-scale) camera block size.
func WithCameraSize(width, height int) Option {
	return func(e *Engine) {
		e.tunables.DesiredCameraWidth = width
		e.tunables.DesiredCameraHeight = height
	}
}

// WithMaxCanvasHeight overrides the canvas height cap that triggers
// uniform downscaling.
func WithMaxCanvasHeight(px int) Option {
	return func(e *Engine) { e.tunables.MaxCanvasHeight = px }
}

// NewEngine validates the grid configuration and computes the one-time
// sizing. Returns ErrCodeInvalidGrid for degenerate grids and
// ErrCodeInvalidInput for broken tunables.
func NewEngine(cfg grid.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{cfg: cfg, tunables: DefaultTunables()}
	for _, opt := range opts {
		opt(e)
	}

	if err := e.tunables.validate(); err != nil {
		return nil, err
	}

	e.sizing = computeSizing(e.cfg, e.tunables)
	return e, nil
}

// Config returns the grid configuration the engine was built for.
func (e *Engine) Config() grid.Config { return e.cfg }

// Tunables returns the sizing targets in effect.
func (e *Engine) Tunables() Tunables { return e.tunables }

// Sizing returns the scaled block dimensions.
func (e *Engine) Sizing() Sizing { return e.sizing }

// Layout returns the geometry for the given visibility flags.
func (e *Engine) Layout(showCamera, showGrid bool) Geometry {
	return Compute(e.cfg, e.sizing, e.tunables, showCamera, showGrid)
}

// gridExtent returns the span of n cells plus the padding around and
// between them.
func gridExtent(cell, n int) int {
	return cell*n + Padding*(n+1)
}

func computeSizing(cfg grid.Config, t Tunables) Sizing {
	desiredGridHeight := gridExtent(t.DesiredCellSize, cfg.Rows)

	// The height budget assumes both blocks visible: hiding one later
	// must not change tile or camera dimensions.
	desiredTotal := Padding + t.DesiredCameraHeight + Padding + desiredGridHeight + Padding + ButtonHeight + Padding

	scale := 1.0
	if desiredTotal > t.MaxCanvasHeight {
		scale = float64(t.MaxCanvasHeight) / float64(desiredTotal)
	}

	cell := int(float64(t.DesiredCellSize) * scale)
	return Sizing{
		CellSize:     cell,
		CameraWidth:  int(float64(t.DesiredCameraWidth) * scale),
		CameraHeight: int(float64(t.DesiredCameraHeight) * scale),
		GridWidth:    gridExtent(cell, cfg.Cols),
		GridHeight:   gridExtent(cell, cfg.Rows),
		Scale:        scale,
	}
}

// Compute derives the frame geometry for one combination of visibility
// flags. It is a pure function: identical inputs produce an identical
// Geometry value.
func Compute(cfg grid.Config, s Sizing, t Tunables, showCamera, showGrid bool) Geometry {
	g := Geometry{
		Sizing:     s,
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		ShowCamera: showCamera,
		ShowGrid:   showGrid,
	}

	// Stack blocks top to bottom: controls, camera, grid. Each shown
	// block carries one trailing Padding; one more tops the stack.
	y := Padding
	g.ButtonBarY = y
	y += ButtonHeight + Padding

	if showCamera {
		g.CameraY = y
		y += s.CameraHeight + Padding
	}
	if showGrid {
		g.GridY = y
		y += s.GridHeight + Padding
	}
	g.CanvasHeight = y

	// Canvas width follows the widest shown block. The control row does
	// not participate; on narrow canvases its outer buttons clip.
	content := 0
	if showCamera && s.CameraWidth > content {
		content = s.CameraWidth
	}
	if showGrid && s.GridWidth > content {
		content = s.GridWidth
	}
	if !showCamera && !showGrid {
		content = t.FallbackContentWidth
	}
	g.CanvasWidth = content + 2*Padding

	startX := (g.CanvasWidth - barWidth) / 2
	g.Close = buttonBounds(startX, g.ButtonBarY, 0)
	g.ToggleCamera = buttonBounds(startX, g.ButtonBarY, 1)
	g.ToggleGrid = buttonBounds(startX, g.ButtonBarY, 2)

	return g
}

func buttonBounds(startX, y, index int) Bounds {
	x := startX + index*(ButtonWidth+ButtonSpacing)
	return Bounds{X1: x, Y1: y, X2: x + ButtonWidth, Y2: y + ButtonHeight}
}
