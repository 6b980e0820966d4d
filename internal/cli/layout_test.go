package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/grid"
	"github.com/idkwhattoputkk/OSC-webcam/pkg/vis/layout"
)

func TestRunLayoutTextReport(t *testing.T) {
	c := testCLI()

	if err := c.runLayout(layoutOpts{rows: 2, cols: 3}); err != nil {
		t.Fatalf("runLayout: %v", err)
	}
}

func TestWriteDiagramDot(t *testing.T) {
	c := testCLI()
	engine, err := layout.NewEngine(grid.Config{Rows: 2, Cols: 3})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	geo := engine.Layout(true, true)

	path := filepath.Join(t.TempDir(), "layout.dot")
	if err := c.writeDiagram(geo, path); err != nil {
		t.Fatalf("writeDiagram: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read diagram: %v", err)
	}
	if !strings.Contains(string(data), "digraph layout") {
		t.Errorf("diagram should be a DOT graph, got %q", string(data[:min(len(data), 40)]))
	}
}

func TestWriteDiagramRejectsUnknownExtension(t *testing.T) {
	c := testCLI()
	engine, err := layout.NewEngine(grid.Config{Rows: 2, Cols: 3})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	geo := engine.Layout(true, true)

	err = c.writeDiagram(geo, filepath.Join(t.TempDir(), "layout.pdf"))
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !strings.Contains(err.Error(), ".pdf") {
		t.Errorf("error should name the extension, got %v", err)
	}
}

func TestFmtBounds(t *testing.T) {
	got := fmtBounds(layout.Bounds{X1: 110, Y1: 10, X2: 250, Y2: 45})
	if got != "(110,10)-(250,45)" {
		t.Errorf("fmtBounds = %q", got)
	}
}
