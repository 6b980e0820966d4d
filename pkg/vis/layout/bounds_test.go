package layout

import "testing"

func TestBoundsContains(t *testing.T) {
	b := Bounds{X1: 10, Y1: 20, X2: 150, Y2: 55}

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"interior", 80, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 150, 55, true},
		{"right edge", 150, 30, true},
		{"bottom edge", 100, 55, true},
		{"one past right", 151, 30, false},
		{"one past bottom", 100, 56, false},
		{"one before left", 9, 30, false},
		{"one before top", 100, 19, false},
		{"far outside", 500, 500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestBoundsSpans(t *testing.T) {
	b := Bounds{X1: 10, Y1: 20, X2: 150, Y2: 55}

	if got := b.Width(); got != 140 {
		t.Errorf("Width() = %d, want 140", got)
	}
	if got := b.Height(); got != 35 {
		t.Errorf("Height() = %d, want 35", got)
	}
	if got := b.CenterX(); got != 80 {
		t.Errorf("CenterX() = %d, want 80", got)
	}
	if got := b.CenterY(); got != 37 {
		t.Errorf("CenterY() = %d, want 37", got)
	}
}
