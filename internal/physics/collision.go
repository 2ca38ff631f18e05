// Package physics provides the hit tests used by the simulation.
package physics

import "math"

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the middle point of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Overlap reports whether two boxes intersect. Touching edges do not count.
func Overlap(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// CircleHitsBox approximates a circle-vs-box test: the circle hits when its
// centre is closer to the box centre than radius plus half the box's smaller side.
func CircleHitsBox(cx, cy, radius float64, box Rect) bool {
	bx, by := box.Center()
	return Distance(cx, cy, bx, by) < radius+math.Min(box.W, box.H)/2
}
