package panels

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Child is a pre-measured child box handed to a panel.
type Child struct {
	// Desired is the size produced by the host's measure pass.
	Desired Size
	// Hidden children take no space and come back with Visible false.
	Hidden bool
}

// Sized returns a visible child with the given desired size.
func Sized(width, height float64) Child {
	return Child{Desired: NewSize(width, height)}
}

// Placement is where a panel put one child.
type Placement struct {
	Index   int
	Rect    Rect
	Visible bool

	// ZIndex orders overlapping children; higher draws on top.
	ZIndex int

	// Rotation in degrees around the child's center, set only when Rotated.
	Rotation float64
	Rotated  bool
}

// Panel computes the layout for a sequence of children.
//
// Measure reports the size the panel wants for the children given the
// available size, which may be infinite on either axis. Arrange returns one
// placement per child, in input order, for the final size.
type Panel interface {
	Measure(children []Child, available Size) Size
	Arrange(children []Child, final Size) []Placement
}

// Result is the outcome of a full layout pass.
type Result struct {
	Desired    Size
	Final      Size
	Placements []Placement
}

// Layout runs a measure pass followed by an arrange pass. Finite axes of
// available become the final size; infinite axes fall back to the desired
// size.
func Layout(p Panel, children []Child, available Size) Result {
	desired := p.Measure(children, available)
	final := available.Resolve(desired)

	logger.WithFields(logrus.Fields{
		"panel":    Name(p),
		"children": len(children),
		"final":    fmt.Sprintf("%gx%g", final.Width, final.Height),
	}).Debug("layout pass")

	return Result{
		Desired:    desired,
		Final:      final,
		Placements: p.Arrange(children, final),
	}
}

// Name returns the short type name of a panel, e.g. "BubblePanel".
func Name(p Panel) string {
	name := fmt.Sprintf("%T", p)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Ptr returns a pointer to v. Useful for optional config fields.
func Ptr[T any](v T) *T {
	return &v
}

// visible returns the indices of children that take part in layout.
func visible(children []Child) []int {
	idx := make([]int, 0, len(children))
	for i, c := range children {
		if !c.Hidden {
			idx = append(idx, i)
		}
	}
	return idx
}

// hiddenPlacements returns one invisible placement per child. Panels fill
// in the visible ones.
func hiddenPlacements(children []Child) []Placement {
	out := make([]Placement, len(children))
	for i := range out {
		out[i].Index = i
	}
	return out
}

// maxDesired returns the largest desired width and height among the given
// children.
func maxDesired(children []Child, idx []int) Size {
	var s Size
	for _, i := range idx {
		s.Width = max(s.Width, children[i].Desired.Width)
		s.Height = max(s.Height, children[i].Desired.Height)
	}
	return s
}

// Orientation selects the primary axis of a panel.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}
