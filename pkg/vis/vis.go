package vis

import (
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/observability"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/input"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/render"
)

// DefaultWindowName titles the visualizer window.
const DefaultWindowName = "Webcam OSC Visualizer"

// Visualizer ties the layout engine, interaction controller, and
// renderer together and drives an optional presentation surface.
type Visualizer struct {
	engine     *layout.Engine
	controller *input.Controller
	renderer   *render.Renderer
	surface    Surface
	logger     *log.Logger

	windowName string
	showCamera bool
	showGrid   bool
	layoutOpts []layout.Option
	renderOpts []render.Option

	opened bool
}

// Option configures a visualizer.
type Option func(*Visualizer)

// WithSurface attaches a presentation surface. Without one the
// visualizer runs headless: Show composes frames but presents nothing.
func WithSurface(s Surface) Option {
	return func(v *Visualizer) { v.surface = s }
}

// WithLogger attaches a logger for lifecycle and input diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(v *Visualizer) { v.logger = logger }
}

// WithWindowName overrides the window title.
func WithWindowName(name string) Option {
	return func(v *Visualizer) { v.windowName = name }
}

// WithShowCamera sets the initial camera visibility.
func WithShowCamera(show bool) Option {
	return func(v *Visualizer) { v.showCamera = show }
}

// WithShowGrid sets the initial grid visibility.
func WithShowGrid(show bool) Option {
	return func(v *Visualizer) { v.showGrid = show }
}

// WithLayoutOptions forwards options to the layout engine.
func WithLayoutOptions(opts ...layout.Option) Option {
	return func(v *Visualizer) { v.layoutOpts = append(v.layoutOpts, opts...) }
}

// WithRenderOptions forwards options to the renderer.
func WithRenderOptions(opts ...render.Option) Option {
	return func(v *Visualizer) { v.renderOpts = append(v.renderOpts, opts...) }
}

// New builds a visualizer for the given grid configuration. It fails
// fast on degenerate grids, broken sizing targets, and unusable window
// names.
func New(cfg grid.Config, opts ...Option) (*Visualizer, error) {
	v := &Visualizer{
		windowName: DefaultWindowName,
		showCamera: true,
		showGrid:   true,
	}
	for _, opt := range opts {
		opt(v)
	}

	if err := errors.ValidateWindowName(v.windowName); err != nil {
		return nil, err
	}

	engine, err := layout.NewEngine(cfg, v.layoutOpts...)
	if err != nil {
		return nil, err
	}
	renderer, err := render.New(v.renderOpts...)
	if err != nil {
		return nil, err
	}

	ctrlOpts := []input.Option{
		input.WithShowCamera(v.showCamera),
		input.WithShowGrid(v.showGrid),
	}
	if v.logger != nil {
		ctrlOpts = append(ctrlOpts, input.WithLogger(v.logger))
	}

	v.engine = engine
	v.renderer = renderer
	v.controller = input.NewController(engine, ctrlOpts...)
	return v, nil
}

// WindowName returns the window title in use.
func (v *Visualizer) WindowName() string { return v.windowName }

// State returns the current interaction state.
func (v *Visualizer) State() input.State { return v.controller.State() }

// Geometry returns the layout for the current visibility flags.
func (v *Visualizer) Geometry() layout.Geometry { return v.controller.Geometry() }

// ShouldClose reports whether the user or the surface requested
// shutdown.
func (v *Visualizer) ShouldClose() bool { return v.controller.ShouldClose() }

// Enqueue adds an input event for the next Show to apply. Callers that
// bypass a surface (the terminal preview does) feed events in here.
func (v *Visualizer) Enqueue(ev input.Event) { v.controller.Enqueue(ev) }

// Drain applies queued input immediately instead of waiting for the
// next Show. Headless callers use it to settle state before Frame.
func (v *Visualizer) Drain() int {
	applied := v.controller.Drain()
	observability.Frame().OnDrain(applied)
	return applied
}

// Open creates the window at the initial geometry and subscribes its
// event delivery into the controller queue.
func (v *Visualizer) Open() error {
	if v.surface == nil {
		return errors.New(errors.ErrCodeDisplayUnavailable, "no surface configured")
	}

	geo := v.controller.Geometry()
	if err := v.surface.Open(v.windowName, geo.CanvasWidth, geo.CanvasHeight); err != nil {
		return errors.Wrap(errors.ErrCodeDisplayUnavailable, err, "failed to open window %q", v.windowName)
	}
	if err := v.surface.Events(v.windowName, v.controller.Enqueue); err != nil {
		return errors.Wrap(errors.ErrCodeDisplayUnavailable, err, "failed to subscribe window events")
	}

	v.opened = true
	observability.Surface().OnOpen(v.windowName, geo.CanvasWidth, geo.CanvasHeight)
	if v.logger != nil {
		v.logger.Debug("window opened", "name", v.windowName,
			"width", geo.CanvasWidth, "height", geo.CanvasHeight)
	}
	return nil
}

// Show runs one frame tick: apply pending input, compose the canvas,
// present it, and verify the window is still on screen. Present
// failures and a hidden window both mark the visualizer for shutdown;
// only the present failure surfaces as an error.
func (v *Visualizer) Show(cells []grid.Cell, camera image.Image) error {
	v.Drain()

	canvas := v.Frame(cells, camera)

	if v.surface == nil || !v.opened {
		return nil
	}

	start := time.Now()
	err := v.surface.Present(v.windowName, canvas)
	observability.Frame().OnPresentComplete(time.Since(start), err)
	if err != nil {
		v.surfaceLost("present failed")
		return errors.Wrap(errors.ErrCodeDisplayUnavailable, err, "failed to present frame")
	}

	if !v.surface.Visible(v.windowName) {
		v.surfaceLost("window hidden")
	}
	return nil
}

// Frame composes the current frame without presenting it. Headless
// callers write the canvas straight to disk.
func (v *Visualizer) Frame(cells []grid.Cell, camera image.Image) *image.RGBA {
	st := v.controller.State()
	geo := v.controller.Geometry()

	observability.Frame().OnRenderStart(geo.CanvasWidth, geo.CanvasHeight)
	start := time.Now()
	canvas := v.renderer.Render(st, geo, cells, camera)
	observability.Frame().OnRenderComplete(geo.CanvasWidth, geo.CanvasHeight, time.Since(start))
	return canvas
}

// ShowLoading presents the loading screen. Present problems are logged
// and swallowed: the screen is cosmetic and the frame loop decides
// whether the surface is usable.
func (v *Visualizer) ShowLoading(message string) {
	canvas := v.renderer.Loading(message)
	if v.surface == nil || !v.opened {
		return
	}
	if err := v.surface.Present(v.windowName, canvas); err != nil && v.logger != nil {
		v.logger.Warn("loading screen present failed", "error", err)
	}
}

// CloseSurface destroys the window. Safe to call when nothing is open.
func (v *Visualizer) CloseSurface() error {
	if v.surface == nil || !v.opened {
		return nil
	}

	v.opened = false
	observability.Surface().OnClose(v.windowName)
	if err := v.surface.Close(v.windowName); err != nil {
		return errors.Wrap(errors.ErrCodeSurfaceClosed, err, "failed to close window %q", v.windowName)
	}
	if v.logger != nil {
		v.logger.Debug("window closed", "name", v.windowName)
	}
	return nil
}

// surfaceLost routes a dead surface through the controller so the state
// machine ends up in its closing phase like any other close request.
func (v *Visualizer) surfaceLost(reason string) {
	observability.Surface().OnLost(v.windowName, reason)
	v.controller.Enqueue(input.SurfaceLost())
	v.controller.Drain()
	if v.logger != nil {
		v.logger.Warn("surface lost", "reason", reason)
	}
}
