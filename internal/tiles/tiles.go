// Package tiles places spanning tiles on a fixed-width grid using first-fit
// in row-major order, so smaller tiles flow into holes left by larger ones.
package tiles

import "github.com/grindlemire/go-panels/internal/geom"

// Span is how many grid cells a tile covers.
type Span struct {
	Columns, Rows int
}

// Cell is a tile's top-left grid position and its clamped span.
type Cell struct {
	Row, Column int
	Span        Span
}

// Grid is a growable occupancy grid with a fixed number of columns.
type Grid struct {
	columns  int
	occupied [][]bool // rows × columns
}

// NewGrid creates an empty grid with at least one column.
func NewGrid(columns int) *Grid {
	return &Grid{columns: max(1, columns)}
}

// Columns returns the grid width in cells.
func (g *Grid) Columns() int {
	return g.columns
}

// Rows returns the number of rows touched by any placed tile.
func (g *Grid) Rows() int {
	return len(g.occupied)
}

// Clamp normalizes a span: at least one cell each way and never wider
// than the grid.
func (g *Grid) Clamp(s Span) Span {
	return Span{
		Columns: min(max(1, s.Columns), g.columns),
		Rows:    max(1, s.Rows),
	}
}

// Place finds the first free position for the span, marks it occupied and
// returns it.
func (g *Grid) Place(s Span) Cell {
	s = g.Clamp(s)
	for row := 0; ; row++ {
		for col := 0; col+s.Columns <= g.columns; col++ {
			if g.free(row, col, s) {
				g.mark(row, col, s)
				return Cell{Row: row, Column: col, Span: s}
			}
		}
	}
}

func (g *Grid) free(row, col int, s Span) bool {
	for r := row; r < row+s.Rows; r++ {
		if r >= len(g.occupied) {
			return true
		}
		for c := col; c < col+s.Columns; c++ {
			if g.occupied[r][c] {
				return false
			}
		}
	}
	return true
}

func (g *Grid) mark(row, col int, s Span) {
	for len(g.occupied) < row+s.Rows {
		g.occupied = append(g.occupied, make([]bool, g.columns))
	}
	for r := row; r < row+s.Rows; r++ {
		for c := col; c < col+s.Columns; c++ {
			g.occupied[r][c] = true
		}
	}
}

// Metrics converts grid cells to layout units.
type Metrics struct {
	TileSize float64
	Spacing  float64
}

// Rect returns the rectangle covered by a placed cell.
func (m Metrics) Rect(c Cell) geom.Rect {
	return geom.NewRect(
		m.offset(c.Column),
		m.offset(c.Row),
		m.Length(c.Span.Columns),
		m.Length(c.Span.Rows),
	)
}

// Length returns the size of n adjacent cells including inner spacing.
func (m Metrics) Length(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*m.TileSize + float64(n-1)*m.Spacing
}

func (m Metrics) offset(i int) float64 {
	return float64(i) * (m.TileSize + m.Spacing)
}

// Layout places every span in order and returns the cells plus the total
// extent in layout units.
func Layout(columns int, spans []Span, m Metrics) ([]Cell, geom.Size) {
	g := NewGrid(columns)
	cells := make([]Cell, len(spans))
	for i, s := range spans {
		cells[i] = g.Place(s)
	}
	if len(spans) == 0 {
		return cells, geom.Size{}
	}
	return cells, geom.NewSize(m.Length(g.Columns()), m.Length(g.Rows()))
}
