package panels

// Justification distributes children along the stacking axis.
type Justification uint8

const (
	// Packed keeps children Spacing apart and positions the block with
	// the main axis alignment.
	Packed Justification = iota
	// SpaceBetween pins the first and last child to the edges and spreads
	// the rest evenly, never closer than Spacing.
	SpaceBetween
)

// Alignment positions content inside the space it was given.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// AutoLayout is a stack panel with spacing, padding, justification and
// absolutely positioned children.
type AutoLayout struct {
	Orientation   Orientation
	Spacing       float64
	Padding       Edges
	Justification Justification

	HorizontalAlignment Alignment
	VerticalAlignment   Alignment

	// Absolute children are left out of the stack and measure; they are
	// placed at their entry in Offsets, or the origin.
	Absolute map[int]bool
	Offsets  map[int]Point
}

// NewAutoLayout returns a vertical packed AutoLayout.
func NewAutoLayout() *AutoLayout {
	return &AutoLayout{}
}

func (p *AutoLayout) Measure(children []Child, available Size) Size {
	flow := p.flow(children)
	var main, cross float64
	for _, i := range flow {
		m, c := p.axes(children[i].Desired)
		main += m
		cross = max(cross, c)
	}
	if len(flow) > 1 {
		main += float64(len(flow)-1) * p.Spacing
	}
	return p.size(main, cross).Inflate(p.Padding)
}

func (p *AutoLayout) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)

	for _, i := range visible(children) {
		if p.Absolute[i] {
			d := children[i].Desired
			at := p.Offsets[i]
			out[i].Rect = NewRect(at.X, at.Y, d.Width, d.Height)
			out[i].Visible = true
		}
	}

	flow := p.flow(children)
	if len(flow) == 0 {
		return out
	}

	inner := NewRect(0, 0, final.Width, final.Height).Inset(p.Padding)
	length, lane := p.axes(inner.Size())
	mainAlign, crossAlign := p.alignments()

	var total float64
	for _, i := range flow {
		m, _ := p.axes(children[i].Desired)
		total += m
	}

	gap := p.Spacing
	var pos float64
	if p.Justification == SpaceBetween && len(flow) > 1 {
		gap = max(p.Spacing, (length-total)/float64(len(flow)-1))
	} else {
		pos = align(mainAlign, length, total+float64(len(flow)-1)*gap)
	}

	for _, i := range flow {
		m, c := p.axes(children[i].Desired)
		if crossAlign == AlignStretch {
			c = lane
		}
		off := align(crossAlign, lane, c)

		var r Rect
		if p.Orientation == Horizontal {
			r = NewRect(pos, off, m, c)
		} else {
			r = NewRect(off, pos, c, m)
		}
		out[i].Rect = r.Translate(inner.X, inner.Y)
		out[i].Visible = true
		pos += m + gap
	}
	return out
}

// flow returns the visible children that take part in stacking.
func (p *AutoLayout) flow(children []Child) []int {
	var idx []int
	for _, i := range visible(children) {
		if !p.Absolute[i] {
			idx = append(idx, i)
		}
	}
	return idx
}

func (p *AutoLayout) axes(s Size) (main, cross float64) {
	if p.Orientation == Horizontal {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func (p *AutoLayout) size(main, cross float64) Size {
	if p.Orientation == Horizontal {
		return NewSize(main, cross)
	}
	return NewSize(cross, main)
}

// alignments returns the main and cross axis alignment.
func (p *AutoLayout) alignments() (main, cross Alignment) {
	if p.Orientation == Horizontal {
		return p.HorizontalAlignment, p.VerticalAlignment
	}
	return p.VerticalAlignment, p.HorizontalAlignment
}

// align returns the offset of content of the given length inside space.
// Stretch behaves like Start; callers stretch the content themselves.
func align(a Alignment, space, content float64) float64 {
	switch a {
	case AlignCenter:
		return (space - content) / 2
	case AlignEnd:
		return space - content
	default:
		return 0
	}
}
