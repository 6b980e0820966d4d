package grid

import (
	"testing"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid 2x3", Config{Rows: 2, Cols: 3}, false},
		{"valid 1x1", Config{Rows: 1, Cols: 1}, false},
		{"valid large", Config{Rows: 20, Cols: 30}, false},

		{"zero rows", Config{Rows: 0, Cols: 3}, true},
		{"zero cols", Config{Rows: 2, Cols: 0}, true},
		{"negative rows", Config{Rows: -1, Cols: 3}, true},
		{"negative cols", Config{Rows: 2, Cols: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidGrid) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidGrid)
			}
		})
	}
}

func TestConfigContains(t *testing.T) {
	cfg := Config{Rows: 2, Cols: 3}

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 1, 2, true},
		{"row out of range", 2, 0, false},
		{"col out of range", 0, 3, false},
		{"negative row", -1, 0, false},
		{"negative col", 0, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.Contains(tt.row, tt.col); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.row, tt.col, got, tt.want)
			}
		})
	}
}

func TestColorBytes(t *testing.T) {
	tests := []struct {
		name    string
		c       Color
		r, g, b uint8
	}{
		{"black", Color{0, 0, 0}, 0, 0, 0},
		{"white", Color{1, 1, 1}, 255, 255, 255},
		{"truncates not rounds", Color{0.999, 0.5, 0.25}, 254, 127, 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.c.Bytes()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("Bytes() = (%d, %d, %d), want (%d, %d, %d)", r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestCellValidate(t *testing.T) {
	cfg := Config{Rows: 2, Cols: 3}
	valid := Cell{
		Row: 1, Col: 2,
		Dominant:   Color{0.8, 0.1, 0.1},
		AvgRed:     0.7,
		AvgGreen:   0.2,
		AvgBlue:    0.2,
		Brightness: 0.4,
		Contrast:   0.6,
	}

	t.Run("valid cell", func(t *testing.T) {
		if err := valid.Validate(cfg); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(Cell) Cell
	}{
		{"row outside grid", func(c Cell) Cell { c.Row = 2; return c }},
		{"col outside grid", func(c Cell) Cell { c.Col = 3; return c }},
		{"negative row", func(c Cell) Cell { c.Row = -1; return c }},
		{"dominant channel above one", func(c Cell) Cell { c.Dominant.G = 1.5; return c }},
		{"dominant channel negative", func(c Cell) Cell { c.Dominant.B = -0.1; return c }},
		{"avg out of range", func(c Cell) Cell { c.AvgBlue = 2; return c }},
		{"brightness out of range", func(c Cell) Cell { c.Brightness = -0.5; return c }},
		{"contrast out of range", func(c Cell) Cell { c.Contrast = 1.01; return c }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate(cfg)
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidCell) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidCell)
			}
		})
	}
}
