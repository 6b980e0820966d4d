// Package input manages the interactive state of the visualizer: the
// visibility flags, the close lifecycle, and the pointer events that
// drive them.
//
// Events arrive through an explicit queue and are applied once per frame
// tick, so rendering always sees one consistent state. The package is
// single-threaded; see Controller for the threading contract.
package input

import "github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout"

// Kind identifies a pointer event variant.
type Kind int

const (
	// KindPointerMove reports the pointer at a new position.
	KindPointerMove Kind = iota
	// KindPointerDown reports a primary-button press.
	KindPointerDown
	// KindSurfaceLost reports that the presentation surface went away.
	KindSurfaceLost
)

// String returns the event kind as a log-friendly name.
func (k Kind) String() string {
	switch k {
	case KindPointerMove:
		return "pointer_move"
	case KindPointerDown:
		return "pointer_down"
	case KindSurfaceLost:
		return "surface_lost"
	default:
		return "unknown"
	}
}

// Event is one input occurrence. Coordinates are canvas pixels and are
// meaningless for KindSurfaceLost.
type Event struct {
	Kind Kind
	X, Y int
}

// PointerMove returns a pointer-move event at canvas coordinates (x, y).
func PointerMove(x, y int) Event { return Event{Kind: KindPointerMove, X: x, Y: y} }

// PointerDown returns a primary-button press at canvas coordinates (x, y).
func PointerDown(x, y int) Event { return Event{Kind: KindPointerDown, X: x, Y: y} }

// SurfaceLost returns the event reporting that the window is gone.
func SurfaceLost() Event { return Event{Kind: KindSurfaceLost} }

// Pointer is the last observed pointer position. Known stays false until
// the first move or press arrives, so hover feedback starts off.
type Pointer struct {
	X, Y  int
	Known bool
}

// Over reports whether the pointer is known and inside b.
func (p Pointer) Over(b layout.Bounds) bool {
	return p.Known && b.Contains(p.X, p.Y)
}
