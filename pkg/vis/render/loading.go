package render

import (
	"image"

	"github.com/fogleman/gg"
)

// Loading screen canvas size in pixels.
const (
	LoadingWidth  = 500
	LoadingHeight = 300
)

const loadingDotRadius = 5

// Loading composes the standalone screen shown before the first frame:
// the message centered on a small canvas with three dots underneath.
// The surface animates the dots by presenting the screen repeatedly.
func (r *Renderer) Loading(message string) *image.RGBA {
	dc := gg.NewContext(LoadingWidth, LoadingHeight)
	dc.SetColor(r.style.Background)
	dc.Clear()

	dc.SetColor(r.style.LoadingText)
	dc.SetFontFace(r.loadingFace)
	dc.DrawStringAnchored(message, LoadingWidth/2, LoadingHeight/2, 0.5, 0.5)

	dc.SetColor(r.style.LoadingDot)
	dotsY := float64(LoadingHeight/2 + 40)
	for i := 0; i < 3; i++ {
		dc.DrawCircle(float64(LoadingWidth/2-30+i*30), dotsY, loadingDotRadius)
		dc.Fill()
	}

	return dc.Image().(*image.RGBA)
}
