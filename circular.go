package panels

import (
	"github.com/grindlemire/go-panels/internal/geom"
	"github.com/grindlemire/go-panels/internal/polar"
)

// SweepDirection is the direction consecutive children advance around a
// circle.
type SweepDirection uint8

const (
	Clockwise SweepDirection = iota
	CounterClockwise
)

// CircularAlignment moves a child relative to its point on the circle.
type CircularAlignment uint8

const (
	// CircularCenter centers the child on the circle.
	CircularCenter CircularAlignment = iota
	// CircularInner pulls the child toward the center by half its larger extent.
	CircularInner
	// CircularOuter pushes the child away from the center by half its larger extent.
	CircularOuter
)

// CircularPanel places children around a full circle.
type CircularPanel struct {
	Radius     float64
	StartAngle float64

	// AngleStep is the angle between consecutive children. Nil divides the
	// circle evenly among the visible children.
	AngleStep *float64

	SweepDirection SweepDirection

	// KeepInBounds clamps every child into the panel.
	KeepInBounds bool

	// Per-child overrides keyed by child index.
	Angles     map[int]float64 // absolute angle, ignores StartAngle and step
	Radii      map[int]float64
	Alignments map[int]CircularAlignment
}

// NewCircularPanel returns a CircularPanel that keeps children in bounds.
func NewCircularPanel() *CircularPanel {
	return &CircularPanel{
		Radius:       100,
		KeepInBounds: true,
	}
}

func (p *CircularPanel) Measure(children []Child, available Size) Size {
	idx := visible(children)
	if len(idx) == 0 {
		return Size{}
	}
	var reach float64
	for _, i := range idx {
		half := children[i].Desired.MaxExtent() / 2
		reach = max(reach, p.radiusOf(i, half)+half)
	}
	return NewSize(2*reach, 2*reach)
}

func (p *CircularPanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	idx := visible(children)

	step := polar.Slices(360, len(idx))
	if p.AngleStep != nil {
		step = *p.AngleStep
	}
	if p.SweepDirection == CounterClockwise {
		step = -step
	}

	center := panelCenter(final)
	bounds := NewRect(0, 0, final.Width, final.Height)
	for n, angle := range polar.Spread(p.StartAngle, step, len(idx)) {
		i := idx[n]
		if a, ok := p.Angles[i]; ok {
			angle = a
		}
		d := children[i].Desired
		r := geom.RectFromCenter(polar.Point(center, p.radiusOf(i, d.MaxExtent()/2), angle), d)
		if p.KeepInBounds {
			r = r.ClampInto(bounds)
		}
		out[i].Rect = r
		out[i].Visible = true
	}
	return out
}

// radiusOf returns the distance of child i's center from the panel center
// after its radius override and alignment.
func (p *CircularPanel) radiusOf(i int, half float64) float64 {
	r := p.Radius
	if v, ok := p.Radii[i]; ok {
		r = v
	}
	switch p.Alignments[i] {
	case CircularInner:
		r -= half
	case CircularOuter:
		r += half
	}
	return r
}
