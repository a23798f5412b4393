package panels

import (
	"github.com/grindlemire/go-panels/internal/geom"
	"github.com/grindlemire/go-panels/internal/masonry"
)

// StaggeredPanel is a masonry layout: children keep their desired height,
// are stretched to the column width and always go to the shortest column.
type StaggeredPanel struct {
	// DesiredColumnWidth decides how many columns fit; the actual columns
	// stretch to fill the width.
	DesiredColumnWidth float64
	ColumnSpacing      float64
	RowSpacing         float64
	Padding            Edges
}

// NewStaggeredPanel returns a StaggeredPanel with 250 wide columns.
func NewStaggeredPanel() *StaggeredPanel {
	return &StaggeredPanel{DesiredColumnWidth: 250}
}

func (p *StaggeredPanel) Measure(children []Child, available Size) Size {
	inner := available.Deflate(p.Padding)
	g := p.grid(inner.Width)
	placed := g.Place(heights(children, visible(children)))

	width := available.Width
	if geom.IsInf(width) {
		width = g.Width() + p.Padding.Horizontal()
	}
	return NewSize(width, placed.Height(p.RowSpacing)+p.Padding.Vertical())
}

func (p *StaggeredPanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	idx := visible(children)

	inner := final.Deflate(p.Padding)
	placed := p.grid(inner.Width).Place(heights(children, idx))
	for n, i := range idx {
		out[i].Rect = placed.Rects[n].Translate(p.Padding.Left, p.Padding.Top)
		out[i].Visible = true
	}
	return out
}

func (p *StaggeredPanel) grid(width float64) masonry.Grid {
	return masonry.NewGrid(width, p.DesiredColumnWidth, p.ColumnSpacing, p.RowSpacing)
}

func heights(children []Child, idx []int) []float64 {
	hs := make([]float64, len(idx))
	for n, i := range idx {
		hs[n] = children[i].Desired.Height
	}
	return hs
}
