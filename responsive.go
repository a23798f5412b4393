package panels

import (
	"strings"

	"github.com/grindlemire/go-panels/internal/geom"
)

// Breakpoint is a set of width classes a child is shown in.
type Breakpoint uint8

const (
	Narrow Breakpoint = 1 << iota
	Normal
	Wide

	AllBreakpoints = Narrow | Normal | Wide
)

// String returns the breakpoint names joined with "|".
func (b Breakpoint) String() string {
	var parts []string
	for _, bp := range []struct {
		bit  Breakpoint
		name string
	}{{Narrow, "narrow"}, {Normal, "normal"}, {Wide, "wide"}} {
		if b&bp.bit != 0 {
			parts = append(parts, bp.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// ResponsivePanel shows only the children whose condition matches the
// current width class. Shown children overlay each other at the origin.
type ResponsivePanel struct {
	NarrowBreakpoint float64
	WideBreakpoint   float64

	// Conditions keyed by child index. Missing entries mean AllBreakpoints.
	Conditions map[int]Breakpoint
}

// NewResponsivePanel returns a ResponsivePanel with 600/1000 breakpoints.
func NewResponsivePanel() *ResponsivePanel {
	return &ResponsivePanel{
		NarrowBreakpoint: 600,
		WideBreakpoint:   1000,
	}
}

// Active returns the width class for the given width. An unbounded width
// is wide.
func (p *ResponsivePanel) Active(width float64) Breakpoint {
	switch {
	case geom.IsInf(width) || width >= p.WideBreakpoint:
		return Wide
	case width < p.NarrowBreakpoint:
		return Narrow
	default:
		return Normal
	}
}

// Measure returns the largest desired size among the shown children. For
// an unbounded width it asks for at least the wide breakpoint so that the
// arrange pass stays in the same width class.
func (p *ResponsivePanel) Measure(children []Child, available Size) Size {
	idx := p.shown(children, p.Active(available.Width))
	if len(idx) == 0 {
		return Size{}
	}
	s := maxDesired(children, idx)
	if geom.IsInf(available.Width) {
		s.Width = max(s.Width, p.WideBreakpoint)
	}
	return s
}

func (p *ResponsivePanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	for _, i := range p.shown(children, p.Active(final.Width)) {
		d := children[i].Desired
		if d.Width == 0 {
			d.Width = final.Width
		}
		if d.Height == 0 {
			d.Height = final.Height
		}
		out[i].Rect = NewRect(0, 0, d.Width, d.Height)
		out[i].Visible = true
	}
	return out
}

func (p *ResponsivePanel) shown(children []Child, active Breakpoint) []int {
	var idx []int
	for _, i := range visible(children) {
		cond, ok := p.Conditions[i]
		if !ok {
			cond = AllBreakpoints
		}
		if cond&active != 0 {
			idx = append(idx, i)
		}
	}
	return idx
}
