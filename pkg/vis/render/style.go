package render

import "image/color"

// Style holds every color the renderer paints with. All colors are
// opaque RGB.
type Style struct {
	Background color.RGBA

	CloseFill         color.RGBA
	CloseHover        color.RGBA
	CameraToggleFill  color.RGBA
	CameraToggleHover color.RGBA
	GridToggleFill    color.RGBA
	GridToggleHover   color.RGBA
	ButtonBorder      color.RGBA
	ButtonLabel       color.RGBA

	TileBorder    color.RGBA
	TileTextDark  color.RGBA
	TileTextLight color.RGBA

	LoadingText color.RGBA
	LoadingDot  color.RGBA
}

// DefaultStyle returns the stock dark theme.
func DefaultStyle() Style {
	return Style{
		Background:        rgb(30, 30, 30),
		CloseFill:         rgb(200, 60, 60),
		CloseHover:        rgb(220, 80, 80),
		CameraToggleFill:  rgb(60, 120, 60),
		CameraToggleHover: rgb(80, 150, 80),
		GridToggleFill:    rgb(60, 60, 120),
		GridToggleHover:   rgb(80, 80, 150),
		ButtonBorder:      rgb(120, 120, 120),
		ButtonLabel:       rgb(255, 255, 255),
		TileBorder:        rgb(100, 100, 100),
		TileTextDark:      rgb(50, 50, 50),
		TileTextLight:     rgb(220, 220, 220),
		LoadingText:       rgb(200, 200, 200),
		LoadingDot:        rgb(200, 100, 100),
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
