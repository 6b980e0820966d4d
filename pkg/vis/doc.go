// Package vis provides the webcam grid visualizer engine.
//
// # Overview
//
// The visualizer turns a grid of color-analysis cells and an optional
// camera frame into an interactive desktop overlay. This package ties
// the stages together and drives an optional presentation surface:
//
//  1. Layout ([layout]): Compute block sizing and per-frame geometry for the current visibility flags.
//  2. Input ([input]): Apply queued pointer events to the interaction state and hit-test the controls.
//  3. Render ([render]): Compose the button bar, camera block, and stat tiles into an RGBA canvas.
//
// # Frame Loop
//
// A frame tick typically follows these steps:
//
//	v, _ := vis.New(grid.Config{Rows: 3, Cols: 3}, vis.WithSurface(surface))
//	_ = v.Open()
//	v.ShowLoading("Initializing...")
//
//	for !v.ShouldClose() {
//	    cells, frame := source.Next() // analysis results and camera image
//	    if err := v.Show(cells, frame); err != nil {
//	        break
//	    }
//	}
//	_ = v.CloseSurface()
//
// All Visualizer methods must run on one goroutine, the frame loop.
// Surfaces deliver their input events on that same goroutine during the
// platform pump.
//
// # Subpackages
//
//   - [layout]: Responsive geometry: one-time sizing plus pure per-flag recomputes.
//   - [input]: The interaction state machine fed by an explicit event queue.
//   - [render]: Raster composition of frames and the loading screen.
//
// [layout]: github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout
// [input]: github.com/idkwhattoputkk/OSC-webcam/pkg/vis/input
// [render]: github.com/idkwhattoputkk/OSC-webcam/pkg/vis/render
package vis
