package layout

// Bounds is an inclusive pixel rectangle: points with x == X2 or y == Y2
// still count as inside. Drawn outlines cover both corner pixels, so the
// hit region matches what the user sees.
type Bounds struct {
	X1, Y1 int
	X2, Y2 int
}

// Contains reports whether the point lies inside the bounds, edges
// included.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X1 && x <= b.X2 && y >= b.Y1 && y <= b.Y2
}

// Width returns the horizontal span of the bounds.
func (b Bounds) Width() int { return b.X2 - b.X1 }

// Height returns the vertical span of the bounds.
func (b Bounds) Height() int { return b.Y2 - b.Y1 }

// CenterX returns the horizontal center point of the bounds.
func (b Bounds) CenterX() int { return (b.X1 + b.X2) / 2 }

// CenterY returns the vertical center point of the bounds.
func (b Bounds) CenterY() int { return (b.Y1 + b.Y2) / 2 }
