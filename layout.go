// layout.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package panels

import (
	"github.com/grindlemire/go-panels/internal/geom"
	"github.com/grindlemire/go-panels/internal/pack"
)

// Rect represents a rectangle with position and dimensions.
type Rect = geom.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = geom.Edges

// Size represents a width/height pair.
type Size = geom.Size

// Point represents an x/y coordinate.
type Point = geom.Point

// Circle is a bubble placed by BubblePanel.Pack.
type Circle = pack.Circle

// Tier records which search stage placed a bubble.
type Tier = pack.Tier

const (
	TierCenter   = pack.TierCenter
	TierTangent  = pack.TierTangent
	TierRing     = pack.TierRing
	TierOverflow = pack.TierOverflow
)

// Infinite is the unconstrained size. Pass it to Layout to let a panel size
// itself to its content.
var Infinite = geom.Infinite

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return geom.NewRect(x, y, width, height)
}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return geom.NewSize(width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return geom.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return geom.EdgeSymmetric(v, h)
}

// EdgeLTRB creates Edges in left, top, right, bottom order.
func EdgeLTRB(l, t, r, b float64) Edges {
	return geom.EdgeLTRB(l, t, r, b)
}

// IsInf reports whether v is an unconstrained extent.
func IsInf(v float64) bool {
	return geom.IsInf(v)
}
