package canvas

import (
	"math"

	"github.com/grindlemire/go-panels/internal/geom"
)

// Box is a rectangle in whole terminal cells.
type Box struct {
	X, Y          int
	Width, Height int
}

// NewBox creates a new Box.
func NewBox(x, y, width, height int) Box {
	return Box{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate one past the right edge.
func (b Box) Right() int {
	return b.X + b.Width
}

// Bottom returns the y-coordinate one past the bottom edge.
func (b Box) Bottom() int {
	return b.Y + b.Height
}

// IsEmpty returns true if the box has no area.
func (b Box) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Intersect returns the overlap of two boxes, or an empty box.
func (b Box) Intersect(other Box) Box {
	x := max(b.X, other.X)
	y := max(b.Y, other.Y)
	right := min(b.Right(), other.Right())
	bottom := min(b.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Box{}
	}
	return Box{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Projection maps layout units onto terminal cells. Terminal cells are
// roughly twice as tall as they are wide, so rows usually cover twice the
// units of a column.
type Projection struct {
	UnitsPerColumn float64
	UnitsPerRow    float64
}

// NewProjection returns a projection with the given horizontal scale and a
// vertical scale twice as coarse.
func NewProjection(unitsPerColumn float64) Projection {
	unitsPerColumn = max(unitsPerColumn, 0.01)
	return Projection{UnitsPerColumn: unitsPerColumn, UnitsPerRow: 2 * unitsPerColumn}
}

// FitWidth returns the projection that maps width layout units onto the
// given number of columns.
func FitWidth(width float64, columns int) Projection {
	if columns <= 0 || width <= 0 || math.IsInf(width, 0) {
		return NewProjection(1)
	}
	return NewProjection(width / float64(columns))
}

// Box converts a layout rectangle into cells. Edges are rounded
// independently so that adjacent rectangles stay adjacent.
func (p Projection) Box(r geom.Rect) Box {
	x := p.col(r.X)
	y := p.row(r.Y)
	return Box{
		X:      x,
		Y:      y,
		Width:  p.col(r.Right()) - x,
		Height: p.row(r.Bottom()) - y,
	}
}

// Cell converts a layout point into the cell containing it.
func (p Projection) Cell(pt geom.Point) (x, y int) {
	return int(math.Floor(pt.X / p.UnitsPerColumn)), int(math.Floor(pt.Y / p.UnitsPerRow))
}

// Size returns the canvas size in cells needed for a layout size.
func (p Projection) Size(s geom.Size) (columns, rows int) {
	return p.col(s.Width), p.row(s.Height)
}

func (p Projection) col(v float64) int {
	return int(math.Round(v / p.UnitsPerColumn))
}

func (p Projection) row(v float64) int {
	return int(math.Round(v / p.UnitsPerRow))
}
