// Package cli implements the oscviz command-line interface.
//
// This package provides commands for composing visualizer frames headlessly,
// inspecting the computed layout, previewing the control surface in the
// terminal, and running the interactive desktop window. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Compose one frame from a cell snapshot or synthetic data and write it to an image file
//   - layout: Report the computed geometry and export it as DOT, SVG, or PNG
//   - preview: Explore the layout interactively in the terminal
//   - show: Run the interactive desktop window
//   - synth: Write a synthetic cell snapshot for testing
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The root
// command attaches its logger to the cobra context, so every command can
// pick it up with loggerFromContext.
//
// # Example
//
//	import "github.com/idkwhattoputkk/OSC-webcam/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger that writes to w at the given level, with
// "15:04:05.00" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs how long a step took. Single goroutine use only.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts the clock.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, rounded to a millisecond.
// Example: "Rendered frame (0.012s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// loggerKey carries the command logger through a context.
type loggerKey struct{}

// withLogger attaches l to ctx.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default()
// when none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
