package panels

import (
	"github.com/grindlemire/go-panels/internal/geom"
	"github.com/grindlemire/go-panels/internal/tiles"
	"github.com/grindlemire/go-panels/internal/virtual"
)

// Plan is a precomputed layout for a large item list. Hosts size their
// scroll area with Extent and only create the items Realize returns.
type Plan struct {
	index  *virtual.Index
	extent Size
}

func newPlan(rects []Rect, extent Size) *Plan {
	return &Plan{index: virtual.NewIndex(rects), extent: extent}
}

// Len returns the number of planned items.
func (pl *Plan) Len() int {
	return pl.index.Len()
}

// Rect returns the rectangle of item i.
func (pl *Plan) Rect(i int) Rect {
	return pl.index.Rect(i)
}

// Extent returns the size of the scrollable content.
func (pl *Plan) Extent() Size {
	return pl.extent
}

// Realize returns, in ascending order, the items visible in the viewport.
func (pl *Plan) Realize(viewport Rect) []int {
	return pl.index.Query(viewport)
}

// VirtualizingVariableSizeWrapPanel is a VariableSizeWrapPanel that can
// plan an item list without measuring its children.
type VirtualizingVariableSizeWrapPanel struct {
	VariableSizeWrapPanel
}

// NewVirtualizingVariableSizeWrapPanel returns a panel with the
// VariableSizeWrapPanel defaults.
func NewVirtualizingVariableSizeWrapPanel() *VirtualizingVariableSizeWrapPanel {
	return &VirtualizingVariableSizeWrapPanel{VariableSizeWrapPanel: *NewVariableSizeWrapPanel()}
}

// Plan lays out count items using the span side-tables.
func (p *VirtualizingVariableSizeWrapPanel) Plan(count int) *Plan {
	idx := make([]int, max(0, count))
	for i := range idx {
		idx[i] = i
	}
	m := p.metrics()
	cells, extent := tiles.Layout(p.Columns, p.spans(idx), m)
	rects := make([]Rect, len(cells))
	for i, c := range cells {
		rects[i] = m.Rect(c)
	}
	return newPlan(rects, extent)
}

// VirtualizingStaggeredPanel is a StaggeredPanel that can plan an item list
// from item heights alone.
type VirtualizingStaggeredPanel struct {
	StaggeredPanel
}

// NewVirtualizingStaggeredPanel returns a panel with the StaggeredPanel
// defaults.
func NewVirtualizingStaggeredPanel() *VirtualizingStaggeredPanel {
	return &VirtualizingStaggeredPanel{StaggeredPanel: *NewStaggeredPanel()}
}

// Plan lays out items of the given heights in a panel of the given width.
func (p *VirtualizingStaggeredPanel) Plan(heights []float64, width float64) *Plan {
	inner := geom.NewSize(width, 0).Deflate(p.Padding)
	placed := p.grid(inner.Width).Place(heights)
	rects := make([]Rect, len(placed.Rects))
	for i, r := range placed.Rects {
		rects[i] = r.Translate(p.Padding.Left, p.Padding.Top)
	}
	return newPlan(rects, NewSize(width, placed.Height(p.RowSpacing)+p.Padding.Vertical()))
}
