package geom

import "math"

// Bounds is an axis-aligned rectangle in pixel space with its origin at the
// top-left corner. Y grows downwards.
type Bounds struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (b Bounds) Right() float64 { return b.X + b.W }

// Bottom returns the y coordinate of the bottom edge.
func (b Bounds) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal center point of the rectangle.
func (b Bounds) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center point of the rectangle.
func (b Bounds) CenterY() float64 { return b.Y + b.H/2 }

// Area returns W*H.
func (b Bounds) Area() float64 { return b.W * b.H }

// Inset shrinks the rectangle by d on every side. Dimensions never go
// below zero; a rectangle too small to inset collapses onto its center.
func (b Bounds) Inset(d float64) Bounds {
	w := math.Max(0, b.W-2*d)
	h := math.Max(0, b.H-2*d)
	return Bounds{X: b.CenterX() - w/2, Y: b.CenterY() - h/2, W: w, H: h}
}

// Overlap returns the area shared by b and o.
func (b Bounds) Overlap(o Bounds) float64 {
	w := math.Min(b.Right(), o.Right()) - math.Max(b.X, o.X)
	h := math.Min(b.Bottom(), o.Bottom()) - math.Max(b.Y, o.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}
