package vis

import (
	"image"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/input"
)

// Surface is the minimal window abstraction the visualizer presents
// through. Implementations own the platform event pump; methods are
// keyed by window name so one surface can host several windows.
type Surface interface {
	// Open creates a window with the given initial canvas size.
	Open(name string, width, height int) error

	// Present displays a composed canvas. Implementations resize the
	// window when the canvas size changes.
	Present(name string, canvas *image.RGBA) error

	// Visible reports whether the window is still on screen.
	Visible(name string) bool

	// Close destroys the window. Closing an unknown window is a no-op.
	Close(name string) error

	// Events registers the callback that receives input events for the
	// window. The callback runs on the frame goroutine during the pump.
	Events(name string, deliver func(input.Event)) error
}
