// Package canvas draws layout results onto a grid of terminal cells so that
// panels can be inspected from the command line and the gallery.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Canvas is a 2D grid of cells.
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// New creates a blank canvas of the specified dimensions.
func New(width, height int) *Canvas {
	width = max(0, width)
	height = max(0, height)

	c := &Canvas{
		cells:  make([]Cell, width*height),
		width:  width,
		height: height,
	}
	c.Clear()
	return c
}

// Width returns the canvas width in columns.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in rows.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas bounds as a Box starting at (0, 0).
func (c *Canvas) Bounds() Box {
	return NewBox(0, 0, c.width, c.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Cell returns the cell at position (x, y).
// Returns an empty Cell if the position is out of bounds.
func (c *Canvas) Cell(x, y int) Cell {
	i := c.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return c.cells[i]
}

// SetCell sets the cell at position (x, y). Out of bounds writes are ignored.
func (c *Canvas) SetCell(x, y int, cell Cell) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}
	c.cells[i] = cell
}

// SetRune sets a rune at position (x, y). Wide characters also claim the
// next cell; a wide character that would overlap the right edge is
// replaced by a space.
func (c *Canvas) SetRune(x, y int, r rune, tag int) {
	if c.idx(x, y) < 0 {
		return
	}

	c.clearWideAt(x, y)

	width := RuneWidth(r)
	if width == 2 {
		if x+1 >= c.width {
			c.SetCell(x, y, Cell{Rune: ' ', Tag: tag, Width: 1})
			return
		}
		c.clearWideAt(x+1, y)
	}

	c.SetCell(x, y, Cell{Rune: r, Tag: tag, Width: uint8(width)})
	if width == 2 {
		c.SetCell(x+1, y, Cell{Tag: tag, Width: 0})
	}
}

// clearWideAt blanks any wide character that covers (x, y).
func (c *Canvas) clearWideAt(x, y int) {
	cell := c.Cell(x, y)
	switch {
	case cell.IsContinuation() && c.idx(x, y) >= 0:
		c.SetCell(x-1, y, blank())
		c.SetCell(x, y, blank())
	case cell.Width == 2:
		c.SetCell(x, y, blank())
		c.SetCell(x+1, y, blank())
	}
}

// SetString writes s starting at (x, y), cut to at most maxWidth columns.
// It returns the display width written.
func (c *Canvas) SetString(x, y int, s string, maxWidth, tag int) int {
	if y < 0 || y >= c.height || maxWidth <= 0 {
		return 0
	}
	if runewidth.StringWidth(s) > maxWidth {
		s = runewidth.Truncate(s, maxWidth, "…")
	}

	written := 0
	for _, r := range s {
		w := RuneWidth(r)
		if x >= c.width || written+w > maxWidth {
			break
		}
		if x >= 0 {
			c.SetRune(x, y, r, tag)
		}
		x += w
		written += w
	}
	return written
}

// Fill fills a box with the given rune.
func (c *Canvas) Fill(b Box, r rune, tag int) {
	b = b.Intersect(c.Bounds())
	width := RuneWidth(r)
	for y := b.Y; y < b.Bottom(); y++ {
		for x := b.X; x < b.Right(); {
			if width == 2 && x+1 >= b.Right() {
				c.SetRune(x, y, ' ', tag)
				x++
				continue
			}
			c.SetRune(x, y, r, tag)
			x += width
		}
	}
}

// Clear blanks the whole canvas.
func (c *Canvas) Clear() {
	for i := range c.cells {
		c.cells[i] = blank()
	}
}

// String renders the canvas as plain text, one line per row.
func (c *Canvas) String() string {
	return strings.Join(c.lines(false), "\n")
}

// StringTrimmed is String with trailing spaces removed from each line.
func (c *Canvas) StringTrimmed() string {
	return strings.Join(c.lines(true), "\n")
}

func (c *Canvas) lines(trim bool) []string {
	out := make([]string, c.height)
	for y := 0; y < c.height; y++ {
		var line strings.Builder
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				line.WriteRune(' ')
			} else {
				line.WriteRune(cell.Rune)
			}
		}
		out[y] = line.String()
		if trim {
			out[y] = strings.TrimRight(out[y], " ")
		}
	}
	return out
}

// Render returns the canvas with every run of cells styled by the palette
// entry for its tag. Untagged cells are left unstyled.
func (c *Canvas) Render(p Palette) string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		var run strings.Builder
		tag := NoTag
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(p.Style(tag).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < c.width; x++ {
			cell := c.cells[y*c.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Tag != tag {
				flush()
				tag = cell.Tag
			}
			if cell.Rune == 0 {
				run.WriteRune(' ')
			} else {
				run.WriteRune(cell.Rune)
			}
		}
		flush()
		if y < c.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// Palette assigns a style to every item tag, cycling when there are more
// items than styles.
type Palette []lipgloss.Style

// DefaultPalette returns one foreground color per gallery accent.
func DefaultPalette() Palette {
	colors := []string{
		"#3498DB", "#2ECC71", "#E74C3C", "#9B59B6", "#F39C12",
		"#1ABC9C", "#E91E63", "#00BCD4", "#FF5722", "#795548",
		"#607D8B", "#8BC34A", "#CDDC39", "#FFC107", "#FF9800",
	}
	p := make(Palette, len(colors))
	for i, hex := range colors {
		p[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return p
}

// Style returns the style for a tag.
func (p Palette) Style(tag int) lipgloss.Style {
	if tag < 0 || len(p) == 0 {
		return lipgloss.NewStyle()
	}
	return p[tag%len(p)]
}
