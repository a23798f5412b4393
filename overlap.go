package panels

import "math"

// OverlapPanel fans children out like a stack of cards, each one shifted
// by a fixed offset from the previous.
type OverlapPanel struct {
	// Offsets between consecutive children. Negative offsets fan toward
	// the origin: the last child sits at 0.
	OffsetX float64
	OffsetY float64

	// ReverseZIndex puts the first child on top.
	ReverseZIndex bool
}

// NewOverlapPanel returns an OverlapPanel fanning down and to the right.
func NewOverlapPanel() *OverlapPanel {
	return &OverlapPanel{OffsetX: 10, OffsetY: 10}
}

func (p *OverlapPanel) Measure(children []Child, available Size) Size {
	idx := visible(children)
	if len(idx) == 0 {
		return Size{}
	}
	m := maxDesired(children, idx)
	steps := float64(len(idx) - 1)
	return NewSize(m.Width+math.Abs(p.OffsetX)*steps, m.Height+math.Abs(p.OffsetY)*steps)
}

func (p *OverlapPanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	idx := visible(children)
	n := len(idx)
	for k, i := range idx {
		d := children[i].Desired
		out[i].Rect = NewRect(fan(p.OffsetX, k, n), fan(p.OffsetY, k, n), d.Width, d.Height)
		out[i].Visible = true
		out[i].ZIndex = k
		if p.ReverseZIndex {
			out[i].ZIndex = n - 1 - k
		}
	}
	return out
}

// fan returns the offset of the k-th of n children.
func fan(offset float64, k, n int) float64 {
	if offset < 0 {
		return float64(n-1-k) * -offset
	}
	return float64(k) * offset
}
