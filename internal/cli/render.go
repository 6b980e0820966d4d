package cli

import (
	"context"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/input"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	snapshot   string  // snapshot file to render; empty means synthesize
	rows       int     // synthetic grid rows
	cols       int     // synthetic grid columns
	gridFlags  bool    // whether --rows/--cols were given explicitly
	at         float64 // synthetic animation time
	camera     string  // camera image file; empty means test frame
	hideCamera bool    // start with the camera block hidden
	hideGrid   bool    // start with the grid panel hidden
	pointer    string  // "x,y" hover position; empty means no pointer
	output     string  // output image path
	config     string  // explicit config file
}

// renderCommand creates the render command for composing a single frame.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		rows:   2,
		cols:   3,
		output: "frame.png",
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one frame to an image file",
		Long: `Render one frame to an image file.

The render command composes a full visualizer frame headless, without
opening a window. Cells come from a snapshot file (--snapshot, produced
by a capture tool or 'synth') or are synthesized on the fly. The camera
block shows --camera when given, otherwise a deterministic test frame.

The output format follows the file extension (png, jpg, bmp, tif).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.gridFlags = cmd.Flags().Changed("rows") || cmd.Flags().Changed("cols")
			if opts.snapshot != "" && opts.gridFlags {
				printWarning("--rows/--cols are ignored with --snapshot")
			}
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.snapshot, "snapshot", "s", "", "snapshot file to render")
	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "synthetic grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "synthetic grid columns")
	cmd.Flags().Float64Var(&opts.at, "time", 0, "synthetic animation time in seconds")
	cmd.Flags().StringVar(&opts.camera, "camera", "", "camera image file")
	cmd.Flags().BoolVar(&opts.hideCamera, "hide-camera", false, "hide the camera block")
	cmd.Flags().BoolVar(&opts.hideGrid, "hide-grid", false, "hide the grid panel")
	cmd.Flags().StringVar(&opts.pointer, "pointer", "", "hover position as x,y canvas pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output image file")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default: oscviz.toml if present)")

	return cmd
}

// runRender composes the frame and writes it to disk.
func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	if err := errors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	if err := errors.ValidateImageExtension(opts.output); err != nil {
		return err
	}

	cfg, err := resolveConfig(opts.config)
	if err != nil {
		return err
	}

	gcfg, cells, err := loadCells(opts, cfg)
	if err != nil {
		return err
	}

	renderOptions, err := cfg.renderOptions()
	if err != nil {
		return err
	}

	v, err := vis.New(gcfg,
		vis.WithLogger(c.Logger),
		vis.WithShowCamera(!opts.hideCamera),
		vis.WithShowGrid(!opts.hideGrid),
		vis.WithLayoutOptions(cfg.layoutOptions()...),
		vis.WithRenderOptions(renderOptions...),
	)
	if err != nil {
		return err
	}

	camera, err := loadCamera(opts, v)
	if err != nil {
		return err
	}

	// A simulated hover exercises the button styling the window would
	// show for that pointer position.
	if opts.pointer != "" {
		px, py, err := parsePointer(opts.pointer)
		if err != nil {
			return err
		}
		v.Enqueue(input.PointerMove(px, py))
		v.Drain()
	}

	p := newProgress(c.Logger)
	frame := v.Frame(cells, camera)
	p.done("Composed frame")

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := imaging.Save(frame, opts.output); err != nil {
		return fmt.Errorf("save frame %s: %w", opts.output, err)
	}

	geo := v.Geometry()
	printSuccess("Frame rendered")
	printFile(opts.output)
	printStats(len(cells), geo.CanvasWidth, geo.CanvasHeight, geo.Sizing.Scale < 1)
	printNewline()
	printNextStep("Open a live window", "oscviz show")

	return nil
}

// parsePointer parses an "x,y" canvas position.
func parsePointer(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid pointer %q, want x,y", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return 0, 0, errors.New(errors.ErrCodeInvalidInput, "invalid pointer %q, want x,y", s)
	}
	return x, y, nil
}

// loadCells resolves the cell field: a snapshot file when given,
// otherwise a synthetic field at the requested grid size and time.
func loadCells(opts renderOpts, cfg *Config) (grid.Config, []grid.Cell, error) {
	if opts.snapshot != "" {
		snap, err := grid.ReadSnapshotFile(opts.snapshot)
		if err != nil {
			return grid.Config{}, nil, err
		}
		return snap.Config(), snap.Cells, nil
	}

	gcfg := cfg.gridConfig()
	if opts.gridFlags {
		gcfg = grid.Config{Rows: opts.rows, Cols: opts.cols}
	}
	if err := gcfg.Validate(); err != nil {
		return grid.Config{}, nil, err
	}
	return gcfg, grid.Synthesize(gcfg, opts.at), nil
}

// loadCamera resolves the camera block image. Hidden camera blocks need
// no image at all.
func loadCamera(opts renderOpts, v *vis.Visualizer) (image.Image, error) {
	if opts.hideCamera {
		if opts.camera != "" {
			printWarning("--camera is ignored with --hide-camera")
		}
		return nil, nil
	}

	if opts.camera != "" {
		img, err := imaging.Open(opts.camera)
		if err != nil {
			return nil, fmt.Errorf("load camera image %s: %w", opts.camera, err)
		}
		return img, nil
	}

	s := v.Geometry().Sizing
	return grid.TestFrame(s.CameraWidth, s.CameraHeight, opts.at), nil
}
