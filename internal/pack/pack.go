package pack

import (
	"math"
	"sort"

	"github.com/grindlemire/go-panels/internal/geom"
)

const (
	// MinRadius is the floor applied to every bubble radius so that tiny or
	// empty children still occupy space and the search never degenerates.
	MinRadius = 10.0

	tangentStepDeg = 10
	ringStep       = 10.0
	ringStepDeg    = 15

	// epsilon absorbs rounding when a tangent candidate is checked against
	// the circle it was generated from.
	epsilon = 1e-9
)

// Tier records which stage of the search produced a position.
type Tier uint8

const (
	TierCenter   Tier = iota // First circle, placed at the center
	TierTangent              // Touching an already placed circle
	TierRing                 // Concentric ring scan around the center
	TierOverflow             // Outside every placed circle, may leave the area
)

// String returns a short name for the tier.
func (t Tier) String() string {
	switch t {
	case TierCenter:
		return "center"
	case TierTangent:
		return "tangent"
	case TierRing:
		return "ring"
	case TierOverflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// Circle is a placed bubble. Index refers back to the caller's item.
type Circle struct {
	X, Y   float64
	Radius float64
	Index  int
	Tier   Tier
}

// Center returns the circle's center point.
func (c Circle) Center() geom.Point {
	return geom.Point{X: c.X, Y: c.Y}
}

// Bounds returns the circle's bounding box.
func (c Circle) Bounds() geom.Rect {
	return geom.NewRect(c.X-c.Radius, c.Y-c.Radius, 2*c.Radius, 2*c.Radius)
}

// Item is a circle waiting to be placed.
type Item struct {
	Index  int
	Radius float64
}

// Area describes the space bubbles are packed into.
type Area struct {
	Width, Height float64
	Spacing       float64
}

// Center returns the point the packer gravitates toward.
func (a Area) Center() geom.Point {
	return geom.Point{X: a.Width / 2, Y: a.Height / 2}
}

// RadiusFor returns the bubble radius for a child of the given size:
// half its larger extent, floored at MinRadius.
func RadiusFor(size geom.Size) float64 {
	return max(MinRadius, size.MaxExtent()/2)
}

// Pack places items largest first and returns the circles in placement
// order. Items with equal radii keep their relative order.
func Pack(items []Item, area Area) []Circle {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Radius > sorted[j].Radius
	})

	placed := make([]Circle, 0, len(sorted))
	for _, item := range sorted {
		pos, tier := Find(placed, item.Radius, area)
		placed = append(placed, Circle{
			X:      pos.X,
			Y:      pos.Y,
			Radius: item.Radius,
			Index:  item.Index,
			Tier:   tier,
		})
	}
	return placed
}

// Find computes the center for a circle of radius r given the circles
// already placed. The result never overlaps a placed circle. It lies inside
// the area unless the returned tier is TierOverflow.
func Find(placed []Circle, r float64, area Area) (geom.Point, Tier) {
	center := area.Center()
	if len(placed) == 0 {
		return center, TierCenter
	}

	if p, ok := bestTangent(placed, r, area, center); ok {
		return p, TierTangent
	}

	if p, ok := firstOnRings(placed, r, area, center); ok {
		return p, TierRing
	}

	return overflow(placed, r, area.Spacing, center), TierOverflow
}

// bestTangent tries every position touching a placed circle and keeps the
// valid one closest to the center.
func bestTangent(placed []Circle, r float64, area Area, center geom.Point) (geom.Point, bool) {
	var best geom.Point
	bestDist := math.MaxFloat64
	found := false

	for _, c := range placed {
		d := c.Radius + r + area.Spacing
		for _, dir := range tangentDirs {
			p := geom.Point{X: c.X + d*dir.X, Y: c.Y + d*dir.Y}
			if !inBounds(p, r, area) || overlaps(p, r, placed, area.Spacing) {
				continue
			}
			found = true
			if dist := p.Dist(center); dist < bestDist {
				bestDist = dist
				best = p
			}
		}
	}
	return best, found
}

// firstOnRings scans rings around the center, innermost first.
func firstOnRings(placed []Circle, r float64, area Area, center geom.Point) (geom.Point, bool) {
	limit := max(area.Width, area.Height) * 2
	for ring := r + area.Spacing; ring < limit; ring += ringStep {
		for _, dir := range ringDirs {
			p := geom.Point{X: center.X + ring*dir.X, Y: center.Y + ring*dir.Y}
			if inBounds(p, r, area) && !overlaps(p, r, placed, area.Spacing) {
				return p, true
			}
		}
	}
	return geom.Point{}, false
}

// overflow returns a point right of the center, past the farthest extent
// of every placed circle. The extent is measured from the area origin, not
// the center, so the point can land well outside the area.
func overflow(placed []Circle, r, spacing float64, center geom.Point) geom.Point {
	extent := 0.0
	for _, c := range placed {
		extent = max(extent, math.Hypot(c.X, c.Y)+c.Radius)
	}
	return geom.Point{X: center.X + extent + r + spacing, Y: center.Y}
}

func inBounds(p geom.Point, r float64, area Area) bool {
	return p.X-r >= 0 && p.X+r <= area.Width &&
		p.Y-r >= 0 && p.Y+r <= area.Height
}

func overlaps(p geom.Point, r float64, placed []Circle, spacing float64) bool {
	for _, c := range placed {
		if p.Dist(c.Center()) < r+c.Radius+spacing-epsilon {
			return true
		}
	}
	return false
}

var (
	tangentDirs = directions(tangentStepDeg)
	ringDirs    = directions(ringStepDeg)
)

// directions returns unit vectors for 0..360 degrees in the given step.
func directions(stepDeg int) []geom.Point {
	dirs := make([]geom.Point, 0, 360/stepDeg)
	for angle := 0; angle < 360; angle += stepDeg {
		rad := float64(angle) * math.Pi / 180
		dirs = append(dirs, geom.Point{X: math.Cos(rad), Y: math.Sin(rad)})
	}
	return dirs
}
