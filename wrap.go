package panels

import "github.com/grindlemire/go-panels/internal/tiles"

// VariableSizeWrapPanel places children as tiles on a fixed column grid.
// Tiles may span several cells; smaller tiles flow into the holes left by
// larger ones. Children are sized by their tile, not their desired size.
type VariableSizeWrapPanel struct {
	TileSize float64
	Spacing  float64
	Columns  int

	// Spans keyed by child index. Missing entries mean 1; column spans are
	// clamped to Columns.
	ColumnSpans map[int]int
	RowSpans    map[int]int
}

// NewVariableSizeWrapPanel returns a four column VariableSizeWrapPanel.
func NewVariableSizeWrapPanel() *VariableSizeWrapPanel {
	return &VariableSizeWrapPanel{
		TileSize: 100,
		Spacing:  8,
		Columns:  4,
	}
}

func (p *VariableSizeWrapPanel) Measure(children []Child, available Size) Size {
	_, size := tiles.Layout(p.Columns, p.spans(visible(children)), p.metrics())
	return size
}

func (p *VariableSizeWrapPanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	idx := visible(children)
	cells, _ := tiles.Layout(p.Columns, p.spans(idx), p.metrics())
	m := p.metrics()
	for n, i := range idx {
		out[i].Rect = m.Rect(cells[n])
		out[i].Visible = true
	}
	return out
}

func (p *VariableSizeWrapPanel) spans(idx []int) []tiles.Span {
	spans := make([]tiles.Span, len(idx))
	for n, i := range idx {
		spans[n] = tiles.Span{Columns: p.ColumnSpans[i], Rows: p.RowSpans[i]}
	}
	return spans
}

func (p *VariableSizeWrapPanel) metrics() tiles.Metrics {
	return tiles.Metrics{TileSize: p.TileSize, Spacing: p.Spacing}
}
