package canvas

import "github.com/mattn/go-runewidth"

// NoTag marks cells that do not belong to any item.
const NoTag = -1

// Cell represents a single character cell on the canvas.
// Wide characters occupy two cells; the first cell holds the rune and the
// second is marked as a continuation.
type Cell struct {
	Rune  rune  // The character (0 for continuation cells)
	Tag   int   // Index of the item that drew the cell, or NoTag
	Width uint8 // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, tag int) Cell {
	return Cell{
		Rune:  r,
		Tag:   tag,
		Width: uint8(RuneWidth(r)),
	}
}

// IsContinuation returns true if this cell is the second half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// IsEmpty returns true for blank cells that no item has drawn on.
func (c Cell) IsEmpty() bool {
	return (c.Rune == ' ' || c.Rune == 0) && c.Tag == NoTag
}

// RuneWidth returns the display width of a rune in terminal cells, at
// least 1 so that every rune takes up space.
func RuneWidth(r rune) int {
	return max(1, min(2, runewidth.RuneWidth(r)))
}

func blank() Cell {
	return Cell{Rune: ' ', Tag: NoTag, Width: 1}
}
