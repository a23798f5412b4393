package panels

// TimelinePanel stacks children along one axis and reserves a lane for
// the connector line drawn by the host.
type TimelinePanel struct {
	Orientation    Orientation
	Spacing        float64
	ConnectorWidth float64

	// AlternateItems puts the connector in the middle and alternates
	// children on both sides of it, starting left (or top).
	AlternateItems bool
}

// NewTimelinePanel returns a vertical TimelinePanel.
func NewTimelinePanel() *TimelinePanel {
	return &TimelinePanel{
		Spacing:        20,
		ConnectorWidth: 40,
	}
}

func (p *TimelinePanel) Measure(children []Child, available Size) Size {
	idx := visible(children)
	if len(idx) == 0 {
		return Size{}
	}

	var primary, secondary float64
	for _, i := range idx {
		main, cross := p.axes(children[i].Desired)
		primary += main
		secondary = max(secondary, cross)
	}
	primary += float64(len(idx)-1) * p.Spacing

	if p.AlternateItems {
		secondary *= 2
	}
	secondary += p.ConnectorWidth
	return p.size(primary, secondary)
}

func (p *TimelinePanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	_, lane := p.axes(final)
	side := (lane - p.ConnectorWidth) / 2

	var pos float64
	for n, i := range visible(children) {
		d := children[i].Desired
		main, cross := p.axes(d)

		offset := p.ConnectorWidth
		if p.AlternateItems {
			if n%2 == 0 {
				offset = side - cross
			} else {
				offset = side + p.ConnectorWidth
			}
		}

		if p.Orientation == Horizontal {
			out[i].Rect = NewRect(pos, offset, d.Width, d.Height)
		} else {
			out[i].Rect = NewRect(offset, pos, d.Width, d.Height)
		}
		out[i].Visible = true
		pos += main + p.Spacing
	}
	return out
}

// axes splits s into the stacking axis and the connector axis.
func (p *TimelinePanel) axes(s Size) (main, cross float64) {
	if p.Orientation == Horizontal {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func (p *TimelinePanel) size(main, cross float64) Size {
	if p.Orientation == Horizontal {
		return NewSize(main, cross)
	}
	return NewSize(cross, main)
}
