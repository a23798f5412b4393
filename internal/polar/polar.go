// Package polar places points on circles using screen angles:
// 0° points right and angles grow clockwise because Y grows downward.
package polar

import (
	"math"

	"github.com/grindlemire/go-panels/internal/geom"
)

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Point returns the point at the given angle and distance from center.
func Point(center geom.Point, radius, deg float64) geom.Point {
	rad := Radians(deg)
	return geom.Point{
		X: center.X + radius*math.Cos(rad),
		Y: center.Y + radius*math.Sin(rad),
	}
}

// Spread returns n angles starting at start and step degrees apart.
func Spread(start, step float64, n int) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = start + float64(i)*step
	}
	return angles
}

// EndToEnd returns the step that puts the first of n items at the start of
// sweep and the last at its end. A single item gets a zero step.
func EndToEnd(sweep float64, n int) float64 {
	if n <= 1 {
		return 0
	}
	return sweep / float64(n-1)
}

// Slices returns the step that divides sweep into n equal slices, leaving
// the end of the sweep free. Used for full circles where the end would
// coincide with the start.
func Slices(sweep float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return sweep / float64(n)
}

// Extent returns the side of the square that holds a ring of the given
// radius with items of the given half extent on it.
func Extent(radius, halfItem float64) float64 {
	return 2 * (radius + halfItem)
}
