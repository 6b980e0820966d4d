package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	rows       int
	cols       int
	gridFlags  bool
	hideCamera bool
	hideGrid   bool
	output     string // diagram output; empty prints the text report
	config     string
}

// layoutCommand creates the layout command for inspecting frame geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	opts := layoutOpts{rows: 2, cols: 3}

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Inspect the computed frame geometry",
		Long: `Inspect the computed frame geometry.

The layout command prints the canvas size, block offsets, and button
rectangles the visualizer would use for a grid configuration, without
rendering anything. With --output it emits a block diagram instead
(.dot, .svg, or .png by extension), which is handy for eyeballing
stacking changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.gridFlags = cmd.Flags().Changed("rows") || cmd.Flags().Changed("cols")
			return c.runLayout(opts)
		},
	}

	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "grid rows")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "grid columns")
	cmd.Flags().BoolVar(&opts.hideCamera, "hide-camera", false, "hide the camera block")
	cmd.Flags().BoolVar(&opts.hideGrid, "hide-grid", false, "hide the grid panel")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "diagram file (.dot, .svg, or .png)")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default: oscviz.toml if present)")

	return cmd
}

// runLayout computes the geometry and prints or exports it.
func (c *CLI) runLayout(opts layoutOpts) error {
	cfg, err := resolveConfig(opts.config)
	if err != nil {
		return err
	}

	gcfg := cfg.gridConfig()
	if opts.gridFlags {
		gcfg.Rows = opts.rows
		gcfg.Cols = opts.cols
	}

	engine, err := layout.NewEngine(gcfg, cfg.layoutOptions()...)
	if err != nil {
		return err
	}
	geo := engine.Layout(!opts.hideCamera, !opts.hideGrid)

	if opts.output != "" {
		return c.writeDiagram(geo, opts.output)
	}

	printGeometry(gcfg.Rows, gcfg.Cols, geo)
	return nil
}

// writeDiagram exports the geometry as a DOT, SVG, or PNG diagram.
func (c *CLI) writeDiagram(geo layout.Geometry, output string) error {
	dot := layout.ToDOT(geo)

	var data []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".dot":
		data = []byte(dot)
	case ".svg":
		data, err = layout.RenderSVG(dot)
	case ".png":
		data, err = layout.RenderPNG(dot)
	default:
		return fmt.Errorf("unsupported diagram extension %q (want .dot, .svg, or .png)", ext)
	}
	if err != nil {
		return fmt.Errorf("render diagram: %w", err)
	}

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write diagram %s: %w", output, err)
	}

	printSuccess("Diagram written")
	printFile(output)
	return nil
}

// printGeometry prints the text geometry report.
func printGeometry(rows, cols int, geo layout.Geometry) {
	s := geo.Sizing

	printInfo("Geometry for a %s grid", StyleHighlight.Render(fmt.Sprintf("%dx%d", rows, cols)))
	printNewline()

	printKeyValue("Canvas", fmt.Sprintf("%dx%d px", geo.CanvasWidth, geo.CanvasHeight))
	if s.Scale < 1 {
		printKeyValue("Scale", fmt.Sprintf("%.3f (capped height)", s.Scale))
	} else {
		printKeyValue("Scale", "1.000")
	}
	printKeyValue("Cell size", fmt.Sprintf("%d px", s.CellSize))
	printNewline()

	printKeyValue("Close", fmtBounds(geo.Close))
	printKeyValue("Toggle camera", fmtBounds(geo.ToggleCamera))
	printKeyValue("Toggle grid", fmtBounds(geo.ToggleGrid))
	printNewline()

	if geo.ShowCamera {
		printKeyValue("Camera", fmt.Sprintf("%dx%d @ (%d,%d)",
			s.CameraWidth, s.CameraHeight, geo.CameraX(), geo.CameraY))
	} else {
		printKeyValue("Camera", "hidden")
	}
	if geo.ShowGrid {
		printKeyValue("Grid", fmt.Sprintf("%dx%d @ (%d,%d)",
			s.GridWidth, s.GridHeight, geo.GridX(), geo.GridY))
		printDetail("first cell %s", fmtBounds(geo.CellBounds(0, 0)))
		printDetail("last cell  %s", fmtBounds(geo.CellBounds(rows-1, cols-1)))
	} else {
		printKeyValue("Grid", "hidden")
	}
}

// fmtBounds formats an inclusive rectangle as (x1,y1)-(x2,y2).
func fmtBounds(b layout.Bounds) string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.X1, b.Y1, b.X2, b.Y2)
}
