package input

import (
	"testing"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout"
)

// testEngine returns an engine for a 2x3 grid, which lays out buttons at
// Close (110,10)-(250,45), ToggleCamera (260,10)-(400,45) and
// ToggleGrid (410,10)-(550,45) when both blocks are shown.
func testEngine(t *testing.T) *layout.Engine {
	t.Helper()
	e, err := layout.NewEngine(grid.Config{Rows: 2, Cols: 3})
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestNewControllerDefaults(t *testing.T) {
	e := testEngine(t)
	c := NewController(e)

	st := c.State()
	if !st.ShowCamera || !st.ShowGrid {
		t.Errorf("initial visibility = (%v, %v), want (true, true)", st.ShowCamera, st.ShowGrid)
	}
	if st.ShouldClose {
		t.Error("initial ShouldClose = true, want false")
	}
	if st.Pointer.Known {
		t.Error("initial Pointer.Known = true, want false before any move")
	}
	if c.Phase() != PhaseOpen {
		t.Errorf("initial Phase = %v, want %v", c.Phase(), PhaseOpen)
	}
	if got, want := c.Geometry(), e.Layout(true, true); got != want {
		t.Errorf("initial Geometry = %+v, want %+v", got, want)
	}
}

func TestControllerInitialVisibilityOptions(t *testing.T) {
	e := testEngine(t)
	c := NewController(e, WithShowCamera(false))

	if c.State().ShowCamera {
		t.Error("ShowCamera = true, want false from option")
	}
	if got, want := c.Geometry(), e.Layout(false, true); got != want {
		t.Errorf("Geometry = %+v, want camera-hidden layout %+v", got, want)
	}
}

func TestCloseButtonPress(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"center", 180, 27},
		{"top-left corner", 110, 10},
		{"bottom-right corner", 250, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(testEngine(t))
			before := c.Geometry()

			c.Enqueue(PointerDown(tt.x, tt.y))
			if n := c.Drain(); n != 1 {
				t.Errorf("Drain() = %d, want 1", n)
			}

			if !c.ShouldClose() {
				t.Error("ShouldClose() = false after close press, want true")
			}
			if c.Phase() != PhaseClosing {
				t.Errorf("Phase() = %v, want %v", c.Phase(), PhaseClosing)
			}
			if c.Geometry() != before {
				t.Error("geometry changed on close press, want unchanged")
			}
		})
	}
}

func TestClosingAbsorbsAllEvents(t *testing.T) {
	c := NewController(testEngine(t))

	c.Apply(PointerMove(5, 5))
	c.Apply(PointerDown(180, 27)) // close
	stClosed := c.State()

	c.Enqueue(PointerMove(300, 25))
	c.Enqueue(PointerDown(300, 25)) // would toggle camera if open
	c.Enqueue(SurfaceLost())
	c.Drain()

	if got := c.State(); got != stClosed {
		t.Errorf("state changed while closing:\ngot  %+v\nwant %+v", got, stClosed)
	}
	if got := c.State().Pointer; got.X != 5 || got.Y != 5 {
		t.Errorf("pointer = (%d,%d), want frozen at (5,5)", got.X, got.Y)
	}
}

func TestToggleCamera(t *testing.T) {
	e := testEngine(t)
	c := NewController(e)
	initial := c.Geometry()

	c.Apply(PointerDown(300, 25))
	if c.State().ShowCamera {
		t.Fatal("ShowCamera = true after toggle, want false")
	}
	if got, want := c.Geometry(), e.Layout(false, true); got != want {
		t.Errorf("Geometry after toggle = %+v, want %+v", got, want)
	}

	// Toggling back restores the exact previous geometry.
	// The toggle buttons move with the narrower canvas, so aim at the
	// camera toggle's new position.
	c.Apply(PointerDown(c.Geometry().ToggleCamera.CenterX(), c.Geometry().ToggleCamera.CenterY()))
	if !c.State().ShowCamera {
		t.Fatal("ShowCamera = false after second toggle, want true")
	}
	if got := c.Geometry(); got != initial {
		t.Errorf("geometry after round trip:\ngot  %+v\nwant %+v", got, initial)
	}
}

func TestToggleGrid(t *testing.T) {
	e := testEngine(t)
	c := NewController(e)

	c.Apply(PointerDown(450, 25))
	st := c.State()
	if st.ShowGrid {
		t.Fatal("ShowGrid = true after toggle, want false")
	}
	if st.ShowCamera {
		t.Error("ShowCamera flipped by grid toggle")
	}
	if got, want := c.Geometry(), e.Layout(true, false); got != want {
		t.Errorf("Geometry after toggle = %+v, want %+v", got, want)
	}
}

func TestPressOutsideButtonsIsNoop(t *testing.T) {
	c := NewController(testEngine(t))
	before := c.Geometry()

	c.Apply(PointerDown(5, 200))

	st := c.State()
	if !st.ShowCamera || !st.ShowGrid || st.ShouldClose {
		t.Errorf("state changed by miss: %+v", st)
	}
	if c.Geometry() != before {
		t.Error("geometry changed by miss")
	}
	// The press still places the pointer.
	if !st.Pointer.Known || st.Pointer.X != 5 || st.Pointer.Y != 200 {
		t.Errorf("pointer = %+v, want known at (5,200)", st.Pointer)
	}
}

func TestPointerMoveTracksHover(t *testing.T) {
	c := NewController(testEngine(t))

	c.Apply(PointerMove(120, 20))

	st := c.State()
	if !st.Pointer.Over(c.Geometry().Close) {
		t.Error("pointer not over close button after move into it")
	}
	if st.Pointer.Over(c.Geometry().ToggleGrid) {
		t.Error("pointer over grid toggle, want only close button")
	}
}

func TestSurfaceLostCloses(t *testing.T) {
	c := NewController(testEngine(t))

	c.Apply(SurfaceLost())

	if !c.ShouldClose() {
		t.Error("ShouldClose() = false after surface loss, want true")
	}
	if c.Phase() != PhaseClosing {
		t.Errorf("Phase() = %v, want %v", c.Phase(), PhaseClosing)
	}
}

func TestDrainAppliesInOrderAgainstCurrentGeometry(t *testing.T) {
	c := NewController(testEngine(t))

	// First press hides the camera, which narrows the canvas and moves
	// the buttons left. The second press lands inside the grid toggle's
	// OLD bounds but outside its new ones, so it must miss.
	c.Enqueue(PointerDown(300, 25))
	c.Enqueue(PointerDown(520, 25))

	if n := c.Drain(); n != 2 {
		t.Errorf("Drain() = %d, want 2", n)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d after drain, want 0", c.Pending())
	}

	st := c.State()
	if st.ShowCamera {
		t.Error("ShowCamera = true, want false from first press")
	}
	if !st.ShowGrid {
		t.Error("ShowGrid = false; second press hit stale geometry, want miss")
	}
}

func TestDrainEmptyQueue(t *testing.T) {
	c := NewController(testEngine(t))
	if n := c.Drain(); n != 0 {
		t.Errorf("Drain() on empty queue = %d, want 0", n)
	}
}
