package tiles

import (
	"testing"

	"github.com/grindlemire/go-panels/internal/geom"
)

func TestGrid_Place(t *testing.T) {
	type tc struct {
		columns int
		spans   []Span
		want    []Cell
	}

	tests := map[string]tc{
		"row major fill": {
			columns: 3,
			spans:   []Span{{1, 1}, {1, 1}, {1, 1}, {1, 1}},
			want: []Cell{
				{Row: 0, Column: 0, Span: Span{1, 1}},
				{Row: 0, Column: 1, Span: Span{1, 1}},
				{Row: 0, Column: 2, Span: Span{1, 1}},
				{Row: 1, Column: 0, Span: Span{1, 1}},
			},
		},
		"flows around a large tile": {
			columns: 4,
			spans:   []Span{{2, 2}, {1, 1}, {1, 1}, {1, 1}, {1, 1}},
			want: []Cell{
				{Row: 0, Column: 0, Span: Span{2, 2}},
				{Row: 0, Column: 2, Span: Span{1, 1}},
				{Row: 0, Column: 3, Span: Span{1, 1}},
				{Row: 1, Column: 2, Span: Span{1, 1}},
				{Row: 1, Column: 3, Span: Span{1, 1}},
			},
		},
		"fills an earlier hole": {
			columns: 3,
			spans:   []Span{{2, 1}, {2, 1}, {1, 1}},
			want: []Cell{
				{Row: 0, Column: 0, Span: Span{2, 1}},
				{Row: 1, Column: 0, Span: Span{2, 1}},
				{Row: 0, Column: 2, Span: Span{1, 1}},
			},
		},
		"wide span is clamped": {
			columns: 2,
			spans:   []Span{{5, 1}, {0, 0}},
			want: []Cell{
				{Row: 0, Column: 0, Span: Span{2, 1}},
				{Row: 1, Column: 0, Span: Span{1, 1}},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			g := NewGrid(tt.columns)
			for i, s := range tt.spans {
				if got := g.Place(s); got != tt.want[i] {
					t.Errorf("Place(%v) #%d = %+v, want %+v", s, i, got, tt.want[i])
				}
			}
		})
	}
}

func TestMetrics_Rect(t *testing.T) {
	m := Metrics{TileSize: 80, Spacing: 8}

	type tc struct {
		cell Cell
		want geom.Rect
	}

	tests := map[string]tc{
		"single tile": {cell: Cell{Span: Span{1, 1}}, want: geom.NewRect(0, 0, 80, 80)},
		"column span": {cell: Cell{Span: Span{2, 1}}, want: geom.NewRect(0, 0, 168, 80)},
		"row span":    {cell: Cell{Span: Span{1, 2}}, want: geom.NewRect(0, 0, 80, 168)},
		"offset tile": {cell: Cell{Row: 1, Column: 2, Span: Span{1, 1}}, want: geom.NewRect(176, 88, 80, 80)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := m.Rect(tt.cell); got != tt.want {
				t.Errorf("Rect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLayout_Extent(t *testing.T) {
	_, size := Layout(4, []Span{{2, 2}, {1, 1}}, Metrics{TileSize: 100, Spacing: 8})
	if size != geom.NewSize(424, 208) {
		t.Errorf("extent = %v, want {424 208}", size)
	}

	_, empty := Layout(4, nil, Metrics{TileSize: 100, Spacing: 8})
	if empty != (geom.Size{}) {
		t.Errorf("empty extent = %v, want zero", empty)
	}
}
