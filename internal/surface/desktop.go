// Package surface hosts visualizer windows on the desktop through
// raylib. Raylib owns a single GL context, so a Desktop drives exactly
// one window and every method must run on the main thread.
package surface

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/observability"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/input"
)

// DefaultFPS is the present rate cap raylib enforces between frames.
const DefaultFPS = 30

// Desktop is the raylib-backed presentation surface.
type Desktop struct {
	logger *log.Logger
	fps    int32

	name    string
	open    bool
	deliver func(input.Event)

	winW, winH int

	texture    rl.Texture2D
	texW, texH int32
	pixels     []color.RGBA

	lastX, lastY int
	tracked      bool
}

var _ vis.Surface = (*Desktop)(nil)

// Option configures the desktop surface.
type Option func(*Desktop)

// WithFPS overrides the target present rate.
func WithFPS(fps int) Option {
	return func(d *Desktop) {
		if fps > 0 {
			d.fps = int32(fps)
		}
	}
}

// WithLogger attaches a logger for window diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(d *Desktop) { d.logger = logger }
}

// New creates an unopened desktop surface.
func New(opts ...Option) *Desktop {
	d := &Desktop{fps: DefaultFPS}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open creates the raylib window. The escape key is released from its
// default close binding; shutdown goes through the close button or the
// on-canvas controls.
func (d *Desktop) Open(name string, width, height int) error {
	if d.open {
		return errors.New(errors.ErrCodeDisplayUnavailable, "window %q already open", d.name)
	}

	rl.InitWindow(int32(width), int32(height), name)
	rl.SetTargetFPS(d.fps)
	rl.SetExitKey(0)
	if !rl.IsWindowReady() {
		return errors.New(errors.ErrCodeDisplayUnavailable, "window %q failed to initialize", name)
	}

	d.name = name
	d.open = true
	d.winW, d.winH = width, height
	if d.logger != nil {
		d.logger.Debug("raylib window ready", "name", name, "width", width, "height", height, "fps", d.fps)
	}
	return nil
}

// Present uploads the canvas, draws it, and pumps pointer input. The
// window is resized first whenever the canvas dimensions changed.
func (d *Desktop) Present(name string, canvas *image.RGBA) error {
	if !d.open || name != d.name {
		return errors.New(errors.ErrCodeSurfaceClosed, "window %q is not open", name)
	}

	w, h := canvas.Bounds().Dx(), canvas.Bounds().Dy()
	if w != d.winW || h != d.winH {
		rl.SetWindowSize(w, h)
		d.winW, d.winH = w, h
		observability.Surface().OnResize(d.name, w, h)
		if d.logger != nil {
			d.logger.Debug("window resized", "width", w, "height", h)
		}
	}

	d.upload(canvas)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	rl.DrawTexture(d.texture, 0, 0, rl.White)
	rl.EndDrawing()

	d.pump()
	return nil
}

// Visible reports whether the window is still usable. Raylib flags the
// close button through WindowShouldClose, which maps to the visibility
// poll the frame loop runs after each present.
func (d *Desktop) Visible(name string) bool {
	if !d.open || name != d.name {
		return false
	}
	return !rl.WindowShouldClose() && !rl.IsWindowHidden()
}

// Close destroys the window and releases GPU resources.
func (d *Desktop) Close(name string) error {
	if !d.open || name != d.name {
		return nil
	}

	if d.texture.ID > 0 {
		rl.UnloadTexture(d.texture)
		d.texture = rl.Texture2D{}
	}
	rl.CloseWindow()

	d.open = false
	d.deliver = nil
	d.tracked = false
	if d.logger != nil {
		d.logger.Debug("raylib window closed", "name", name)
	}
	return nil
}

// Events registers the input delivery callback.
func (d *Desktop) Events(name string, deliver func(input.Event)) error {
	if !d.open || name != d.name {
		return errors.New(errors.ErrCodeSurfaceClosed, "window %q is not open", name)
	}
	d.deliver = deliver
	return nil
}

// upload moves the canvas into the frame texture, recreating it when
// the size changed and updating in place otherwise.
func (d *Desktop) upload(canvas *image.RGBA) {
	w, h := int32(canvas.Bounds().Dx()), int32(canvas.Bounds().Dy())

	if d.texture.ID == 0 || w != d.texW || h != d.texH {
		if d.texture.ID > 0 {
			rl.UnloadTexture(d.texture)
		}
		img := rl.NewImageFromImage(canvas)
		d.texture = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		d.texW, d.texH = w, h
		return
	}

	n := int(w) * int(h)
	if cap(d.pixels) < n {
		d.pixels = make([]color.RGBA, n)
	}
	d.pixels = d.pixels[:n]

	i := 0
	for y := 0; y < int(h); y++ {
		row := canvas.Pix[y*canvas.Stride:]
		for x := 0; x < int(w); x++ {
			p := row[x*4 : x*4+4]
			d.pixels[i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
			i++
		}
	}
	rl.UpdateTexture(d.texture, d.pixels)
}

// pump polls the raylib input state after a present and translates it
// into queue events. Moves are deduplicated; raylib reports position
// every frame whether or not the mouse moved.
func (d *Desktop) pump() {
	if d.deliver == nil {
		return
	}

	pos := rl.GetMousePosition()
	x, y := int(pos.X), int(pos.Y)
	if !d.tracked || x != d.lastX || y != d.lastY {
		d.deliver(input.PointerMove(x, y))
		d.lastX, d.lastY = x, y
		d.tracked = true
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		d.deliver(input.PointerDown(x, y))
	}
}
