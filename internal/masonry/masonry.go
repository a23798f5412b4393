// Package masonry implements shortest-column placement for staggered
// layouts: every item goes to the column whose stack is currently the
// shortest.
package masonry

import (
	"math"

	"github.com/grindlemire/go-panels/internal/geom"
)

// Grid describes the columns items are stacked into.
type Grid struct {
	Columns       int
	ColumnWidth   float64
	ColumnSpacing float64
	RowSpacing    float64
}

// ColumnCount returns how many columns of the desired width fit into the
// available width. An unbounded width yields a single column.
func ColumnCount(available, desired, spacing float64) int {
	if math.IsInf(available, 1) || desired <= 0 {
		return 1
	}
	n := int(math.Floor((available + spacing) / (desired + spacing)))
	return max(1, n)
}

// NewGrid sizes a grid for the available width. Columns stretch so that
// together with the spacing they fill the width exactly; for an unbounded
// width the desired column width is used.
func NewGrid(available, desired, columnSpacing, rowSpacing float64) Grid {
	cols := ColumnCount(available, desired, columnSpacing)
	width := desired
	if !math.IsInf(available, 1) {
		width = max(0, (available-float64(cols-1)*columnSpacing)/float64(cols))
	}
	return Grid{
		Columns:       cols,
		ColumnWidth:   width,
		ColumnSpacing: columnSpacing,
		RowSpacing:    rowSpacing,
	}
}

// Width returns the total width the columns occupy.
func (g Grid) Width() float64 {
	if g.Columns == 0 {
		return 0
	}
	return float64(g.Columns)*g.ColumnWidth + float64(g.Columns-1)*g.ColumnSpacing
}

// Placement is the outcome of stacking a sequence of item heights.
type Placement struct {
	Rects   []geom.Rect
	Column  []int
	Heights []float64 // per column, including trailing row spacing
}

// Height returns the height of the tallest column without the trailing
// row spacing.
func (p Placement) Height(rowSpacing float64) float64 {
	tallest := 0.0
	for _, h := range p.Heights {
		if h > 0 {
			tallest = max(tallest, h-rowSpacing)
		}
	}
	return tallest
}

// Place stacks items of the given heights. Rects are relative to the grid
// origin and ordered like heights.
func (g Grid) Place(heights []float64) Placement {
	cols := max(1, g.Columns)
	p := Placement{
		Rects:   make([]geom.Rect, len(heights)),
		Column:  make([]int, len(heights)),
		Heights: make([]float64, cols),
	}

	for i, h := range heights {
		col := shortest(p.Heights)
		p.Rects[i] = geom.NewRect(
			float64(col)*(g.ColumnWidth+g.ColumnSpacing),
			p.Heights[col],
			g.ColumnWidth,
			h,
		)
		p.Column[i] = col
		p.Heights[col] += h + g.RowSpacing
	}
	return p
}

// shortest returns the index of the lowest column, preferring the leftmost.
func shortest(heights []float64) int {
	best := 0
	for i := 1; i < len(heights); i++ {
		if heights[i] < heights[best] {
			best = i
		}
	}
	return best
}
