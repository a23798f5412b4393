package panels

// HexPanel lays children out on a honeycomb of RowCount by ColumnCount
// cells. Vertical orientation uses pointy-top cells with every odd row
// shifted right by half a cell; Horizontal is the transpose with odd
// columns shifted down.
type HexPanel struct {
	Orientation Orientation
	ColumnCount int
	RowCount    int

	// Cell assignment keyed by child index. Values are clamped into the
	// grid; missing entries mean 0.
	Rows    map[int]int
	Columns map[int]int
}

// NewHexPanel returns a 3x3 vertical HexPanel.
func NewHexPanel() *HexPanel {
	return &HexPanel{
		ColumnCount: 3,
		RowCount:    3,
	}
}

// Measure uses the largest child as the cell size.
func (p *HexPanel) Measure(children []Child, available Size) Size {
	idx := visible(children)
	if len(idx) == 0 {
		return Size{}
	}
	cell := maxDesired(children, idx)
	cols, rows := p.dims()
	if p.Orientation == Horizontal {
		return NewSize(cell.Width*(0.75*float64(cols)+0.25), cell.Height*(float64(rows)+0.5))
	}
	return NewSize(cell.Width*(float64(cols)+0.5), cell.Height*(0.75*float64(rows)+0.25))
}

// Arrange sizes cells so that the honeycomb fills the panel and stretches
// every child to its cell.
func (p *HexPanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	cell := p.Cell(final)
	for _, i := range visible(children) {
		out[i].Rect = p.CellRect(p.Row(i), p.Column(i), cell)
		out[i].Visible = true
	}
	return out
}

// Cell returns the size of one hex cell for a panel of the given size.
func (p *HexPanel) Cell(final Size) Size {
	cols, rows := p.dims()
	if p.Orientation == Horizontal {
		return NewSize(final.Width/(0.75*float64(cols)+0.25), final.Height/(float64(rows)+0.5))
	}
	return NewSize(final.Width/(float64(cols)+0.5), final.Height/(0.75*float64(rows)+0.25))
}

// CellRect returns the bounding box of the cell at row, col.
func (p *HexPanel) CellRect(row, col int, cell Size) Rect {
	var x, y float64
	if p.Orientation == Horizontal {
		x = float64(col) * cell.Width * 0.75
		y = float64(row) * cell.Height
		if col%2 == 1 {
			y += cell.Height / 2
		}
	} else {
		x = float64(col) * cell.Width
		y = float64(row) * cell.Height * 0.75
		if row%2 == 1 {
			x += cell.Width / 2
		}
	}
	return NewRect(x, y, cell.Width, cell.Height)
}

// Row returns the clamped row of child i.
func (p *HexPanel) Row(i int) int {
	_, rows := p.dims()
	return min(max(0, p.Rows[i]), rows-1)
}

// Column returns the clamped column of child i.
func (p *HexPanel) Column(i int) int {
	cols, _ := p.dims()
	return min(max(0, p.Columns[i]), cols-1)
}

func (p *HexPanel) dims() (cols, rows int) {
	return max(1, p.ColumnCount), max(1, p.RowCount)
}
