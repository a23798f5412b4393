package panels

import (
	"math"

	"github.com/grindlemire/go-panels/internal/pack"
	"github.com/sirupsen/logrus"
)

// DefaultBubbleSpacing is the gap NewBubblePanel leaves between bubbles.
const DefaultBubbleSpacing = 4.0

// BubblePanel packs children as circles around the center of the panel,
// largest first. A child's circle has half its larger extent as radius.
type BubblePanel struct {
	Padding Edges
	// Spacing is the minimum gap between two circles.
	Spacing float64
}

// NewBubblePanel returns a BubblePanel with default spacing.
func NewBubblePanel() *BubblePanel {
	return &BubblePanel{Spacing: DefaultBubbleSpacing}
}

// Measure returns a square large enough to hold the total circle area with
// room to spare, and never smaller than the largest circle.
func (p *BubblePanel) Measure(children []Child, available Size) Size {
	idx := visible(children)
	if len(idx) == 0 {
		return Size{}
	}

	var area, largest float64
	for _, i := range idx {
		r := children[i].Desired.MaxExtent() / 2
		area += math.Pi * r * r
		largest = max(largest, r)
	}
	side := max(math.Sqrt(area)*1.5, 2*largest)
	return NewSize(side, side).Inflate(p.Padding)
}

// Arrange centers every visible child on its packed circle.
func (p *BubblePanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	for _, c := range p.Pack(children, final) {
		d := children[c.Index].Desired
		out[c.Index].Rect = NewRect(c.X-d.Width/2, c.Y-d.Height/2, d.Width, d.Height)
		out[c.Index].Visible = true
	}
	return out
}

// Pack returns the circle of every visible child in placement order, in
// panel coordinates. Circle.Index refers to the child.
func (p *BubblePanel) Pack(children []Child, final Size) []Circle {
	inner := final.Deflate(p.Padding)
	idx := visible(children)

	items := make([]pack.Item, len(idx))
	for n, i := range idx {
		items[n] = pack.Item{Index: i, Radius: pack.RadiusFor(children[i].Desired)}
	}

	circles := pack.Pack(items, pack.Area{
		Width:   inner.Width,
		Height:  inner.Height,
		Spacing: p.Spacing,
	})
	for n := range circles {
		c := &circles[n]
		c.X += p.Padding.Left
		c.Y += p.Padding.Top
		if c.Tier == pack.TierOverflow {
			logger.WithFields(logrus.Fields{
				"child":  c.Index,
				"radius": c.Radius,
			}).Warn("bubble does not fit, placed outside the packed area")
		}
	}
	return circles
}
