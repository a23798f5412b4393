package geom

import "math"

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Infinite is the unconstrained size offered to panels that may grow freely.
var Infinite = Size{Width: math.Inf(1), Height: math.Inf(1)}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Deflate returns s shrunk by the given edges, never below zero.
// Infinite dimensions stay infinite.
func (s Size) Deflate(e Edges) Size {
	return Size{
		Width:  max(0, s.Width-e.Horizontal()),
		Height: max(0, s.Height-e.Vertical()),
	}
}

// Inflate returns s grown by the given edges.
func (s Size) Inflate(e Edges) Size {
	return Size{Width: s.Width + e.Horizontal(), Height: s.Height + e.Vertical()}
}

// MaxExtent returns the larger of the two dimensions.
func (s Size) MaxExtent() float64 {
	return max(s.Width, s.Height)
}

// Resolve picks the final size for a pass: finite available axes win,
// infinite ones fall back to the desired size.
func (s Size) Resolve(desired Size) Size {
	out := s
	if math.IsInf(out.Width, 1) || math.IsNaN(out.Width) {
		out.Width = desired.Width
	}
	if math.IsInf(out.Height, 1) || math.IsNaN(out.Height) {
		out.Height = desired.Height
	}
	return out
}

// IsInf reports whether v is an unconstrained dimension.
func IsInf(v float64) bool {
	return math.IsInf(v, 1)
}
