package canvas

import (
	"math"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-panels/internal/geom"
)

func TestNew(t *testing.T) {
	type tc struct {
		width, height int
		wantW, wantH  int
	}

	tests := map[string]tc{
		"standard size": {
			width:  80,
			height: 24,
			wantW:  80,
			wantH:  24,
		},
		"zero width": {
			width:  0,
			height: 10,
			wantW:  0,
			wantH:  10,
		},
		"negative dimensions": {
			width:  -5,
			height: -3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := New(tt.width, tt.height)
			if c.Width() != tt.wantW || c.Height() != tt.wantH {
				t.Errorf("New(%d, %d) size = (%d, %d), want (%d, %d)",
					tt.width, tt.height, c.Width(), c.Height(), tt.wantW, tt.wantH)
			}
			if got := c.Bounds(); got != NewBox(0, 0, tt.wantW, tt.wantH) {
				t.Errorf("Bounds() = %+v", got)
			}
			for y := 0; y < c.Height(); y++ {
				for x := 0; x < c.Width(); x++ {
					if !c.Cell(x, y).IsEmpty() {
						t.Fatalf("Cell(%d, %d) = %+v, want blank", x, y, c.Cell(x, y))
					}
				}
			}
		})
	}
}

func TestCanvas_SetRune(t *testing.T) {
	type tc struct {
		x    int
		r    rune
		want string
	}

	tests := map[string]tc{
		"narrow": {
			x:    1,
			r:    'a',
			want: " a  ",
		},
		"wide": {
			x:    0,
			r:    '世',
			want: "世  ",
		},
		"wide at right edge": {
			x:    3,
			r:    '世',
			want: "    ",
		},
		"out of bounds": {
			x:    9,
			r:    'a',
			want: "    ",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := New(4, 1)
			c.SetRune(tt.x, 0, tt.r, 0)
			if got := c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCanvas_SetRuneOverWide(t *testing.T) {
	c := New(4, 1)
	c.SetRune(0, 0, '世', 0)
	c.SetRune(1, 0, 'x', 1)

	if got := c.String(); got != " x  " {
		t.Errorf("String() = %q, want %q", got, " x  ")
	}
	if c.Cell(0, 0).Tag != NoTag {
		t.Errorf("Cell(0, 0).Tag = %d, want NoTag", c.Cell(0, 0).Tag)
	}
}

func TestCanvas_SetString(t *testing.T) {
	c := New(10, 1)

	if n := c.SetString(0, 0, "abc", 10, 2); n != 3 {
		t.Errorf("SetString() = %d, want 3", n)
	}
	if got := c.StringTrimmed(); got != "abc" {
		t.Errorf("StringTrimmed() = %q, want %q", got, "abc")
	}
	if c.Cell(1, 0).Tag != 2 {
		t.Errorf("Cell(1, 0).Tag = %d, want 2", c.Cell(1, 0).Tag)
	}

	c.Clear()
	n := c.SetString(0, 0, "hello world", 5, 0)
	if n > 5 {
		t.Errorf("SetString() truncated width = %d, want <= 5", n)
	}
	if got := c.StringTrimmed(); !strings.HasPrefix(got, "hel") || strings.Contains(got, "world") {
		t.Errorf("StringTrimmed() = %q, want a truncated prefix", got)
	}
}

func TestCanvas_Fill(t *testing.T) {
	c := New(5, 3)
	c.Fill(NewBox(3, 1, 10, 10), '#', 0)

	want := "     \n   ##\n   ##"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDrawBox(t *testing.T) {
	type tc struct {
		box    Box
		border BorderStyle
		want   string
	}

	tests := map[string]tc{
		"ascii": {
			box:    NewBox(0, 0, 4, 3),
			border: BorderASCII,
			want:   "+--+\n|  |\n+--+",
		},
		"rounded": {
			box:    NewBox(0, 0, 4, 3),
			border: BorderRounded,
			want:   "╭──╮\n│  │\n╰──╯",
		},
		"too small for a border": {
			box:    NewBox(1, 0, 1, 2),
			border: BorderASCII,
			want:   " #\n #\n",
		},
		"clipped": {
			box:    NewBox(2, 1, 5, 5),
			border: BorderASCII,
			want:   "\n  +-\n  |",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := New(4, 3)
			DrawBox(c, tt.box, tt.border, 0)
			if got := c.StringTrimmed(); got != tt.want {
				t.Errorf("DrawBox() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestParseBorder(t *testing.T) {
	type tc struct {
		name   string
		want   BorderStyle
		wantOK bool
	}

	tests := map[string]tc{
		"empty":   {name: "", want: BorderASCII, wantOK: true},
		"double":  {name: "double", want: BorderDouble, wantOK: true},
		"unknown": {name: "dotted", want: BorderASCII, wantOK: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := ParseBorder(tt.name)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseBorder(%q) = (%v, %v), want (%v, %v)", tt.name, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestProjection_Box(t *testing.T) {
	p := NewProjection(10)
	if p.UnitsPerRow != 20 {
		t.Fatalf("UnitsPerRow = %v, want 20", p.UnitsPerRow)
	}

	left := p.Box(geom.NewRect(0, 0, 15, 40))
	right := p.Box(geom.NewRect(15, 0, 15, 40))
	if left.Right() != right.X {
		t.Errorf("adjacent rects projected to %+v and %+v, want shared edge", left, right)
	}
	if left.Height != 2 {
		t.Errorf("Height = %d, want 2", left.Height)
	}
}

func TestFitWidth(t *testing.T) {
	type tc struct {
		width   float64
		columns int
		want    float64
	}

	tests := map[string]tc{
		"exact":    {width: 400, columns: 80, want: 5},
		"infinite": {width: math.Inf(1), columns: 80, want: 1},
		"no room":  {width: 400, columns: 0, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := FitWidth(tt.width, tt.columns).UnitsPerColumn; got != tt.want {
				t.Errorf("FitWidth(%v, %d).UnitsPerColumn = %v, want %v", tt.width, tt.columns, got, tt.want)
			}
		})
	}
}

func TestDraw_ZOrder(t *testing.T) {
	c := New(10, 5)
	items := []Item{
		{Rect: geom.NewRect(3, 2, 6, 6), ZIndex: 1, Tag: 1},
		{Rect: geom.NewRect(0, 0, 6, 6), ZIndex: 0, Tag: 0},
	}
	Draw(c, items, NewProjection(1), BorderASCII)

	if got := c.Cell(3, 1); got.Tag != 1 || got.Rune != '+' {
		t.Errorf("Cell(3, 1) = %+v, want the top item's corner", got)
	}
	if got := c.Cell(0, 0); got.Tag != 0 || got.Rune != '+' {
		t.Errorf("Cell(0, 0) = %+v, want the bottom item's corner", got)
	}
}

func TestDraw_Label(t *testing.T) {
	c := New(9, 3)
	Draw(c, []Item{{Rect: geom.NewRect(0, 0, 9, 6), Label: "ab", Tag: 0}}, NewProjection(1), BorderASCII)

	want := "+-------+\n|  ab   |\n+-------+"
	if got := c.String(); got != want {
		t.Errorf("Draw() =\n%s\nwant\n%s", got, want)
	}
}

func TestDrawCircle(t *testing.T) {
	c := New(41, 21)
	DrawCircle(c, geom.Point{X: 20, Y: 20}, 10, NewProjection(1), 4)

	if got := c.Cell(30, 10); got.Rune != '·' || got.Tag != 4 {
		t.Errorf("Cell(30, 10) = %+v, want a dot tagged 4", got)
	}
	if !c.Cell(20, 10).IsEmpty() {
		t.Errorf("center cell drawn, want empty")
	}
}

func TestPalette_Style(t *testing.T) {
	p := DefaultPalette()
	if len(p) != 15 {
		t.Fatalf("len(DefaultPalette()) = %d, want 15", len(p))
	}
	if p.Style(15).GetForeground() != p.Style(0).GetForeground() {
		t.Errorf("Style(15) does not cycle back to Style(0)")
	}
	if got := p.Style(NoTag).GetForeground(); got != (lipgloss.NoColor{}) {
		t.Errorf("Style(NoTag) foreground = %v, want none", got)
	}
}
