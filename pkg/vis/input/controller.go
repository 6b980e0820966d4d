package input

import (
	"github.com/charmbracelet/log"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout"
)

// Phase is the lifecycle state of the visualizer UI.
type Phase int

const (
	// PhaseOpen accepts and applies input events.
	PhaseOpen Phase = iota
	// PhaseClosing is terminal. Every further event is absorbed without
	// any state change, including pointer tracking.
	PhaseClosing
)

// String returns the phase as a log-friendly name.
func (p Phase) String() string {
	switch p {
	case PhaseOpen:
		return "open"
	case PhaseClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// State is the interactive UI state consumed by the renderer.
type State struct {
	ShowCamera  bool
	ShowGrid    bool
	ShouldClose bool
	Pointer     Pointer
}

// Controller owns the UI state machine. It consumes pointer events from
// an explicit queue, flips visibility flags, and recomputes geometry
// through the layout engine whenever a toggle lands.
//
// The controller is not safe for concurrent use: Enqueue, Apply, and
// Drain must run on the frame goroutine. Surfaces that receive events on
// other threads must marshal them onto the frame loop first.
type Controller struct {
	engine *layout.Engine
	logger *log.Logger

	phase Phase
	state State
	geo   layout.Geometry
	queue []Event
}

// Option configures the controller.
type Option func(*Controller)

// WithShowCamera sets the initial camera visibility (default true).
func WithShowCamera(show bool) Option {
	return func(c *Controller) { c.state.ShowCamera = show }
}

// WithShowGrid sets the initial grid visibility (default true).
func WithShowGrid(show bool) Option {
	return func(c *Controller) { c.state.ShowGrid = show }
}

// WithLogger attaches a logger for debug-level event tracing.
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// NewController builds a controller in PhaseOpen with geometry computed
// for the initial visibility flags.
func NewController(engine *layout.Engine, opts ...Option) *Controller {
	c := &Controller{
		engine: engine,
		state:  State{ShowCamera: true, ShowGrid: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.geo = engine.Layout(c.state.ShowCamera, c.state.ShowGrid)
	return c
}

// Enqueue appends an event for the next Drain.
func (c *Controller) Enqueue(ev Event) {
	c.queue = append(c.queue, ev)
}

// Pending returns the number of queued events.
func (c *Controller) Pending() int {
	return len(c.queue)
}

// Drain applies every queued event in arrival order, clears the queue,
// and returns the number of events applied. Call once per frame tick
// before rendering.
func (c *Controller) Drain() int {
	n := len(c.queue)
	for _, ev := range c.queue {
		c.Apply(ev)
	}
	c.queue = c.queue[:0]
	return n
}

// Apply processes a single event immediately, bypassing the queue.
// Frame loops that already serialize their input can call it directly.
func (c *Controller) Apply(ev Event) {
	if c.phase == PhaseClosing {
		return
	}

	switch ev.Kind {
	case KindPointerMove:
		c.state.Pointer = Pointer{X: ev.X, Y: ev.Y, Known: true}
	case KindPointerDown:
		// A press also places the pointer: devices emit a move first,
		// but synthetic streams may not.
		c.state.Pointer = Pointer{X: ev.X, Y: ev.Y, Known: true}
		c.press(ev.X, ev.Y)
	case KindSurfaceLost:
		c.beginClose("surface lost")
	}
}

// press hit-tests the buttons in priority order: close first, then the
// camera toggle, then the grid toggle. Presses elsewhere do nothing.
func (c *Controller) press(x, y int) {
	switch {
	case c.geo.Close.Contains(x, y):
		c.beginClose("close button")
	case c.geo.ToggleCamera.Contains(x, y):
		c.state.ShowCamera = !c.state.ShowCamera
		c.recompute()
	case c.geo.ToggleGrid.Contains(x, y):
		c.state.ShowGrid = !c.state.ShowGrid
		c.recompute()
	}
}

func (c *Controller) beginClose(reason string) {
	c.phase = PhaseClosing
	c.state.ShouldClose = true
	if c.logger != nil {
		c.logger.Debug("visualizer closing", "reason", reason)
	}
}

func (c *Controller) recompute() {
	c.geo = c.engine.Layout(c.state.ShowCamera, c.state.ShowGrid)
	if c.logger != nil {
		c.logger.Debug("layout recomputed",
			"camera", c.state.ShowCamera,
			"grid", c.state.ShowGrid,
			"canvas_w", c.geo.CanvasWidth,
			"canvas_h", c.geo.CanvasHeight)
	}
}

// State returns the current UI state snapshot.
func (c *Controller) State() State { return c.state }

// Geometry returns the layout for the current visibility flags.
func (c *Controller) Geometry() layout.Geometry { return c.geo }

// Phase returns the lifecycle phase.
func (c *Controller) Phase() Phase { return c.phase }

// ShouldClose reports whether the UI has entered its terminal phase.
func (c *Controller) ShouldClose() bool { return c.state.ShouldClose }
