package panels

import (
	"github.com/grindlemire/go-panels/internal/geom"
	"github.com/grindlemire/go-panels/internal/polar"
)

// RadialPanel places children on a circle and, optionally, turns each one
// so that it faces along the circle.
type RadialPanel struct {
	Radius     float64
	StartAngle float64
	SweepAngle float64

	// RotateItems sets Placement.Rotation to angle+90+ItemAngle.
	RotateItems bool
	ItemAngle   float64
}

// NewRadialPanel returns a RadialPanel over the full circle with rotation
// enabled.
func NewRadialPanel() *RadialPanel {
	return &RadialPanel{
		Radius:      100,
		SweepAngle:  360,
		RotateItems: true,
	}
}

func (p *RadialPanel) Measure(children []Child, available Size) Size {
	return ringSize(children, visible(children), p.Radius)
}

func (p *RadialPanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	idx := visible(children)

	// A full circle would put the last child on top of the first.
	step := polar.EndToEnd(p.SweepAngle, len(idx))
	if p.SweepAngle >= 360 {
		step = polar.Slices(360, len(idx))
	}

	center := panelCenter(final)
	for n, angle := range polar.Spread(p.StartAngle, step, len(idx)) {
		i := idx[n]
		out[i].Rect = geom.RectFromCenter(polar.Point(center, p.Radius, angle), children[i].Desired)
		out[i].Visible = true
		if p.RotateItems {
			out[i].Rotation = angle + 90 + p.ItemAngle
			out[i].Rotated = true
		}
	}
	return out
}
