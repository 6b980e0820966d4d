// Package pkg provides the core libraries for the oscviz overlay visualizer.
//
// # Overview
//
// Oscviz renders per-region color statistics of a webcam feed as an
// interactive desktop overlay: a control row, an optional camera block,
// and a grid of color tiles. The pkg directory is organized into three
// main areas:
//
//  1. [vis] - The visualizer core (layout, input state machine, raster rendering)
//  2. [grid] - Color-analysis data types and JSON snapshot serialization
//  3. [errors], [fonts], [buildinfo], [observability] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through oscviz:
//
//	Capture tool (external)
//	         ↓
//	    [grid] package (cells, snapshots, synthetic sources)
//	         ↓
//	    [vis/input] package (pointer events → visibility/close state)
//	         ↓
//	    [vis/layout] package (geometry for the current state)
//	         ↓
//	    [vis/render] package (geometry + cells → raster canvas)
//	         ↓
//	    presentation surface (desktop window or image file)
//
// # Quick Start
//
// Compose one frame headless and write it to disk:
//
//	import (
//	    "github.com/disintegration/imaging"
//	    "github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
//	    "github.com/idkwhattoputkk/OSC-webcam/pkg/vis"
//	)
//
//	cfg := grid.Config{Rows: 2, Cols: 3}
//	v, _ := vis.New(cfg)
//	frame := v.Frame(grid.Synthesize(cfg, 0), nil)
//	_ = imaging.Save(frame, "frame.png")
//
// # Main Packages
//
// [vis] - The umbrella type tying the engine, controller, and renderer
// together and driving an optional presentation surface. Subpackages:
//
//   - [vis/layout]: Pure geometry (sizing, scaling, block stacking, hit rectangles)
//   - [vis/input]: Event queue and UI state machine (toggles, hover, close lifecycle)
//   - [vis/render]: Raster composition with gg and freetype faces
//
// [grid] - Cell statistics as exchanged with capture pipelines, JSON
// snapshot files, and deterministic synthetic sources for demos and
// tests.
//
// [errors] - Structured errors with stable codes and user-facing
// messages, plus input validation helpers shared by the CLI and the
// packages.
//
// [fonts] - Cached truetype faces for the renderer.
//
// [buildinfo] - Version metadata injected at build time.
//
// [observability] - Frame and surface lifecycle hooks for tests and
// instrumentation.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/vis/layout/... # Specific package
//
// [vis]: https://pkg.go.dev/github.com/idkwhattoputkk/OSC-webcam/pkg/vis
// [vis/layout]: https://pkg.go.dev/github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout
// [vis/input]: https://pkg.go.dev/github.com/idkwhattoputkk/OSC-webcam/pkg/vis/input
// [vis/render]: https://pkg.go.dev/github.com/idkwhattoputkk/OSC-webcam/pkg/vis/render
// [grid]: https://pkg.go.dev/github.com/idkwhattoputkk/OSC-webcam/pkg/grid
// [errors]: https://pkg.go.dev/github.com/idkwhattoputkk/OSC-webcam/pkg/errors
// [fonts]: https://pkg.go.dev/github.com/idkwhattoputkk/OSC-webcam/pkg/fonts
// [buildinfo]: https://pkg.go.dev/github.com/idkwhattoputkk/OSC-webcam/pkg/buildinfo
// [observability]: https://pkg.go.dev/github.com/idkwhattoputkk/OSC-webcam/pkg/observability
package pkg
