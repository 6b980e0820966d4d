// Package grid defines the color-analysis data consumed by the visualizer.
//
// A capture pipeline divides each camera frame into a rows-by-cols grid
// and derives per-region color statistics. This package holds those value
// types plus JSON snapshot serialization and a synthetic source for demos
// and tests. Capture itself happens outside this repository.
package grid

import (
	"encoding/json"

	"github.com/idkwhattoputkk/OSC-webcam/pkg/errors"
)

// Config describes the analysis grid dimensions.
type Config struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Validate checks that the grid has at least one row and one column.
func (c Config) Validate() error {
	if c.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidGrid, "grid must have at least one row, got %d", c.Rows)
	}
	if c.Cols < 1 {
		return errors.New(errors.ErrCodeInvalidGrid, "grid must have at least one column, got %d", c.Cols)
	}
	return nil
}

// Contains reports whether the cell coordinate lies inside the grid.
func (c Config) Contains(row, col int) bool {
	return row >= 0 && row < c.Rows && col >= 0 && col < c.Cols
}

// Color is an RGB triple with channels in [0, 1].
//
// It serializes as a three-element JSON array to stay wire-compatible
// with capture pipelines that emit (r, g, b) tuples.
type Color struct {
	R, G, B float64
}

// Bytes converts the color to 8-bit channels by truncation.
func (c Color) Bytes() (r, g, b uint8) {
	return uint8(c.R * 255), uint8(c.G * 255), uint8(c.B * 255)
}

// MarshalJSON encodes the color as [r, g, b].
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]float64{c.R, c.G, c.B})
}

// UnmarshalJSON decodes a [r, g, b] array.
func (c *Color) UnmarshalJSON(data []byte) error {
	var arr [3]float64
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	c.R, c.G, c.B = arr[0], arr[1], arr[2]
	return nil
}

func (c Color) validate(field string) error {
	for _, ch := range []struct {
		name  string
		value float64
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}} {
		if ch.value < 0 || ch.value > 1 {
			return errors.New(errors.ErrCodeInvalidCell,
				"%s channel %s out of range [0,1]: %g", field, ch.name, ch.value)
		}
	}
	return nil
}

// Cell holds the color statistics for one grid region.
//
// Field names mirror the capture pipeline's snapshot format.
type Cell struct {
	Row        int     `json:"row"`
	Col        int     `json:"col"`
	Dominant   Color   `json:"dominant_color"`
	AvgRed     float64 `json:"avg_red"`
	AvgGreen   float64 `json:"avg_green"`
	AvgBlue    float64 `json:"avg_blue"`
	Brightness float64 `json:"brightness"`
	Contrast   float64 `json:"contrast"`
}

// Validate checks coordinates against the grid and all statistics
// against their [0, 1] ranges.
func (cl Cell) Validate(cfg Config) error {
	if !cfg.Contains(cl.Row, cl.Col) {
		return errors.New(errors.ErrCodeInvalidCell,
			"cell [%d,%d] outside %dx%d grid", cl.Row, cl.Col, cfg.Rows, cfg.Cols)
	}
	if err := cl.Dominant.validate("dominant_color"); err != nil {
		return err
	}
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"avg_red", cl.AvgRed},
		{"avg_green", cl.AvgGreen},
		{"avg_blue", cl.AvgBlue},
		{"brightness", cl.Brightness},
		{"contrast", cl.Contrast},
	} {
		if v.value < 0 || v.value > 1 {
			return errors.New(errors.ErrCodeInvalidCell,
				"cell [%d,%d] %s out of range [0,1]: %g", cl.Row, cl.Col, v.name, v.value)
		}
	}
	return nil
}
