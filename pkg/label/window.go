package label

import "math"

// Window decides when two labels compete for the same space: they must sit
// in the same visual column (closer than X horizontally) and overlap
// vertically (closer than Y).
type Window struct {
	X, Y float64
}

// DefaultWindow is the linear-family collision window.
var DefaultWindow = Window{X: 10, Y: 25}

// SameColumn reports whether x1 and x2 fall in the same column bucket.
func (w Window) SameColumn(x1, x2 float64) bool {
	return math.Abs(x1-x2) < w.X
}

// Overlaps reports whether the points (x1, y1) and (x2, y2) collide.
func (w Window) Overlaps(x1, y1, x2, y2 float64) bool {
	return w.SameColumn(x1, x2) && math.Abs(y1-y2) < w.Y
}

// raiseClear moves y upward in fixed steps until it leaves the window
// around other. It returns the new y.
func (w Window) raiseClear(y, other, step float64) float64 {
	if step <= 0 || w.Y <= 0 {
		return y
	}
	for math.Abs(y-other) < w.Y {
		y -= step
	}
	return y
}
