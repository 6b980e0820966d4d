package render

import "golang.org/x/image/font"

const ellipsis = "..."

// measure returns the advance width of s in whole pixels, rounded up.
func measure(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// truncate shortens s with a trailing ellipsis until it fits maxWidth.
// Strings that already fit come back unchanged. At least three runes
// always survive, so very narrow tiles can still overflow slightly.
func truncate(face font.Face, s string, maxWidth int) string {
	if measure(face, s) <= maxWidth {
		return s
	}
	runes := []rune(s)
	for len(runes) > 3 && measure(face, string(runes)+ellipsis) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
