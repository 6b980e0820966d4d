package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/idkwhattoputkk/OSC-webcam/internal/surface"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis"
)

// showOpts holds the command-line flags for the show command.
type showOpts struct {
	rows       int
	cols       int
	gridFlags  bool
	fps        int
	fpsFlag    bool
	snapshot   string
	hideCamera bool
	hideGrid   bool
	config     string
}

// showCommand creates the show command for the interactive desktop window.
func (c *CLI) showCommand() *cobra.Command {
	opts := showOpts{rows: 2, cols: 3, fps: surface.DefaultFPS}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Open the interactive visualizer window",
		Long: `Open the interactive visualizer window.

The show command opens a desktop window and runs the frame loop until
the Close button is clicked, the window is dismissed, or the process is
interrupted. Cells come from a snapshot file (--snapshot) or a
synthetic animation; the camera block shows a drifting test frame.

The window must run on the main thread, so show cannot be combined
with other commands in one invocation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.gridFlags = cmd.Flags().Changed("rows") || cmd.Flags().Changed("cols")
			opts.fpsFlag = cmd.Flags().Changed("fps")
			return c.runShow(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "grid columns")
	cmd.Flags().IntVar(&opts.fps, "fps", opts.fps, "target frames per second")
	cmd.Flags().StringVarP(&opts.snapshot, "snapshot", "s", "", "snapshot file to display")
	cmd.Flags().BoolVar(&opts.hideCamera, "hide-camera", false, "start with the camera block hidden")
	cmd.Flags().BoolVar(&opts.hideGrid, "hide-grid", false, "start with the grid panel hidden")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default: oscviz.toml if present)")

	return cmd
}

// runShow opens the window and drives the frame loop until shutdown.
func (c *CLI) runShow(ctx context.Context, opts showOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := resolveConfig(opts.config)
	if err != nil {
		return err
	}

	gcfg := cfg.gridConfig()
	if opts.gridFlags {
		gcfg = grid.Config{Rows: opts.rows, Cols: opts.cols}
	}
	fps := cfg.Show.FPS
	if opts.fpsFlag {
		fps = opts.fps
	}
	showCamera := cfg.Show.Camera && !opts.hideCamera
	showGrid := cfg.Show.Grid && !opts.hideGrid

	// Snapshot cells are static; without a snapshot the field animates.
	var snapCells []grid.Cell
	if opts.snapshot != "" {
		snap, err := grid.ReadSnapshotFile(opts.snapshot)
		if err != nil {
			return err
		}
		gcfg = snap.Config()
		snapCells = snap.Cells
	}

	renderOptions, err := cfg.renderOptions()
	if err != nil {
		return err
	}

	v, err := vis.New(gcfg,
		vis.WithSurface(surface.New(surface.WithFPS(fps), surface.WithLogger(logger))),
		vis.WithLogger(logger),
		vis.WithWindowName(cfg.Show.WindowName),
		vis.WithShowCamera(showCamera),
		vis.WithShowGrid(showGrid),
		vis.WithLayoutOptions(cfg.layoutOptions()...),
		vis.WithRenderOptions(renderOptions...),
	)
	if err != nil {
		return err
	}

	spinner := newSpinnerWithContext(ctx, "Opening window...")
	spinner.Start()
	if err := v.Open(); err != nil {
		spinner.StopWithError("Window did not open")
		return err
	}
	spinner.Stop()
	defer func() {
		if err := v.CloseSurface(); err != nil {
			logger.Warn("window close failed", "error", err)
		}
	}()

	v.ShowLoading(loadingMessage)

	geo := v.Geometry()
	logger.Info("Window open", "name", v.WindowName(),
		"width", geo.CanvasWidth, "height", geo.CanvasHeight, "fps", fps)

	// The surface paces the loop to the target FPS; the context check
	// keeps Ctrl-C responsive between frames.
	start := time.Now()
	for !v.ShouldClose() {
		if err := ctx.Err(); err != nil {
			return err
		}

		t := time.Since(start).Seconds()
		cells := snapCells
		if cells == nil {
			cells = grid.Synthesize(gcfg, t)
		}
		s := v.Geometry().Sizing
		frame := grid.TestFrame(s.CameraWidth, s.CameraHeight, t)

		if err := v.Show(cells, frame); err != nil {
			return err
		}
	}

	printSuccess("Window closed")
	return nil
}
