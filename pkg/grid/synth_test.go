package grid

import (
	"reflect"
	"testing"
)

func TestSynthesizeDeterministic(t *testing.T) {
	cfg := Config{Rows: 3, Cols: 4}

	a := Synthesize(cfg, 1.5)
	b := Synthesize(cfg, 1.5)
	if !reflect.DeepEqual(a, b) {
		t.Error("Synthesize() differs between calls with identical inputs")
	}

	c := Synthesize(cfg, 2.5)
	if reflect.DeepEqual(a, c) {
		t.Error("Synthesize() identical for different times, want animation")
	}
}

func TestSynthesizeCoversGrid(t *testing.T) {
	cfg := Config{Rows: 2, Cols: 3}
	cells := Synthesize(cfg, 0)

	if len(cells) != cfg.Rows*cfg.Cols {
		t.Fatalf("len(cells) = %d, want %d", len(cells), cfg.Rows*cfg.Cols)
	}

	for _, cl := range cells {
		if err := cl.Validate(cfg); err != nil {
			t.Errorf("cell [%d,%d] invalid: %v", cl.Row, cl.Col, err)
		}
	}
}

func TestTestFrame(t *testing.T) {
	img := TestFrame(64, 48, 0)

	if got := img.Bounds().Dx(); got != 64 {
		t.Errorf("width = %d, want 64", got)
	}
	if got := img.Bounds().Dy(); got != 48 {
		t.Errorf("height = %d, want 48", got)
	}

	a := TestFrame(64, 48, 3)
	b := TestFrame(64, 48, 3)
	if !reflect.DeepEqual(a.Pix, b.Pix) {
		t.Error("TestFrame() differs between calls with identical inputs")
	}
}
