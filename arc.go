package panels

import (
	"github.com/grindlemire/go-panels/internal/geom"
	"github.com/grindlemire/go-panels/internal/polar"
)

// ArcPanel spreads children along an arc of a circle centered in the panel.
// Angles are in degrees; 0 points right and angles grow clockwise.
type ArcPanel struct {
	Radius     float64
	StartAngle float64
	SweepAngle float64

	// DistributeEvenly puts the first child at StartAngle and the last at
	// StartAngle+SweepAngle. Otherwise the sweep is cut into equal slices
	// and the end of the arc stays free.
	DistributeEvenly bool
}

// NewArcPanel returns an ArcPanel covering the lower half circle.
func NewArcPanel() *ArcPanel {
	return &ArcPanel{
		Radius:           100,
		SweepAngle:       180,
		DistributeEvenly: true,
	}
}

func (p *ArcPanel) Measure(children []Child, available Size) Size {
	return ringSize(children, visible(children), p.Radius)
}

func (p *ArcPanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	idx := visible(children)

	step := polar.Slices(p.SweepAngle, len(idx))
	if p.DistributeEvenly {
		step = polar.EndToEnd(p.SweepAngle, len(idx))
	}

	center := panelCenter(final)
	for n, angle := range polar.Spread(p.StartAngle, step, len(idx)) {
		i := idx[n]
		out[i].Rect = geom.RectFromCenter(polar.Point(center, p.Radius, angle), children[i].Desired)
		out[i].Visible = true
	}
	return out
}

// ringSize is the desired size of a ring of the given radius holding the
// children: the ring diameter plus the largest child on both ends.
func ringSize(children []Child, idx []int, radius float64) Size {
	if len(idx) == 0 {
		return Size{}
	}
	side := polar.Extent(radius, maxDesired(children, idx).MaxExtent()/2)
	return NewSize(side, side)
}

func panelCenter(s Size) Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}
