package geom

import "math"

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and other.
func (p Point) Dist(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

