package layout

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts a geometry to Graphviz DOT format for layout debugging.
// Each block becomes a node labeled with its pixel rectangle; hidden
// blocks render dashed with a grey fill. Render the result with
// [RenderSVG] or [RenderPNG] to eyeball stacking regressions.
func ToDOT(g Geometry) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  canvas [label=%q];\n", fmt.Sprintf("canvas\n%dx%d", g.CanvasWidth, g.CanvasHeight))
	fmt.Fprintf(&buf, "  buttons [label=%q];\n", fmt.Sprintf("button bar\ny=%d", g.ButtonBarY))

	for _, btn := range []struct {
		id, label string
		b         Bounds
	}{
		{"close", "Close", g.Close},
		{"toggle_camera", "Toggle Camera", g.ToggleCamera},
		{"toggle_grid", "Toggle Grid", g.ToggleGrid},
	} {
		fmt.Fprintf(&buf, "  %s [label=%q];\n", btn.id, btn.label+"\n"+fmtBounds(btn.b))
	}

	writeBlock(&buf, "camera", fmt.Sprintf("camera\n%dx%d @ (%d,%d)",
		g.Sizing.CameraWidth, g.Sizing.CameraHeight, g.CameraX(), g.CameraY), g.ShowCamera)
	writeBlock(&buf, "grid", fmt.Sprintf("grid\n%dx%d @ (%d,%d)",
		g.Sizing.GridWidth, g.Sizing.GridHeight, g.GridX(), g.GridY), g.ShowGrid)

	if g.ShowGrid {
		fmt.Fprintf(&buf, "  cells [label=%q];\n", fmt.Sprintf("%dx%d cells\nfirst %s\nlast %s",
			g.Rows, g.Cols, fmtBounds(g.CellBounds(0, 0)), fmtBounds(g.CellBounds(g.Rows-1, g.Cols-1))))
	}

	buf.WriteString("\n")
	buf.WriteString("  canvas -> buttons;\n")
	buf.WriteString("  buttons -> close;\n")
	buf.WriteString("  buttons -> toggle_camera;\n")
	buf.WriteString("  buttons -> toggle_grid;\n")
	buf.WriteString("  canvas -> camera;\n")
	buf.WriteString("  canvas -> grid;\n")
	if g.ShowGrid {
		buf.WriteString("  grid -> cells;\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtBounds(b Bounds) string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.X1, b.Y1, b.X2, b.Y2)
}

func writeBlock(buf *bytes.Buffer, id, label string, shown bool) {
	if shown {
		fmt.Fprintf(buf, "  %s [label=%q];\n", id, label)
		return
	}
	fmt.Fprintf(buf, "  %s [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", id, label+"\nhidden")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.PNG)
}

func renderDOT(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
