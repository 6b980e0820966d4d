package grid

import (
	"image"
	"image/color"
	"math"
)

// Synthesize returns a deterministic cell field for animation time t.
//
// Each cell cycles through phase-shifted sinusoids so neighboring tiles
// stay visually distinct while the whole field drifts smoothly. The same
// (cfg, t) always produces the same cells, which demos and tests rely on.
func Synthesize(cfg Config, t float64) []Cell {
	cells := make([]Cell, 0, cfg.Rows*cfg.Cols)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			phase := t + float64(row)*0.7 + float64(col)*1.3

			dom := Color{
				R: 0.5 + 0.5*math.Sin(phase),
				G: 0.5 + 0.5*math.Sin(phase+2.1),
				B: 0.5 + 0.5*math.Sin(phase+4.2),
			}

			cells = append(cells, Cell{
				Row:      row,
				Col:      col,
				Dominant: dom,
				// Region means sit closer to mid-gray than the dominant hue.
				AvgRed:     0.25 + 0.5*dom.R,
				AvgGreen:   0.25 + 0.5*dom.G,
				AvgBlue:    0.25 + 0.5*dom.B,
				Brightness: 0.299*dom.R + 0.587*dom.G + 0.114*dom.B,
				Contrast:   0.5 + 0.5*math.Sin(phase*0.8),
			})
		}
	}
	return cells
}

// TestFrame returns a deterministic stand-in camera frame for animation
// time t: a diagonal RGB gradient that drifts with t. Used when no real
// capture feed is attached.
func TestFrame(width, height int, t float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	shift := 0.5 + 0.5*math.Sin(t*0.4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fx := float64(x) / float64(width)
			fy := float64(y) / float64(height)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(255 * fx),
				G: uint8(255 * fy),
				B: uint8(255 * (shift*(1-fx) + (1-shift)*fy)),
				A: 255,
			})
		}
	}
	return img
}
