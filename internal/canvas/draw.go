package canvas

import (
	"math"
	"sort"

	"github.com/grindlemire/go-panels/internal/geom"
	"github.com/grindlemire/go-panels/internal/polar"
)

// Item is one arranged rectangle to draw.
type Item struct {
	Rect   geom.Rect
	Label  string
	ZIndex int
	Tag    int
}

// Draw paints items as labeled boxes in ascending ZIndex order, so items
// stacked on top are drawn last. Items with equal ZIndex keep their order.
func Draw(c *Canvas, items []Item, proj Projection, border BorderStyle) {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].ZIndex < items[order[b]].ZIndex
	})

	for _, i := range order {
		it := items[i]
		box := proj.Box(it.Rect)
		if box.IsEmpty() {
			continue
		}
		// Clear the interior so overlapping items hide what is below them.
		c.Fill(box, ' ', NoTag)
		DrawBox(c, box, border, it.Tag)
		drawLabel(c, box, it.Label, it.Tag)
	}
}

func drawLabel(c *Canvas, box Box, label string, tag int) {
	if label == "" || box.Width < 3 || box.Height < 3 {
		return
	}
	inner := box.Width - 2
	y := box.Y + box.Height/2
	w := c.SetString(box.X+1, y, label, inner, tag)
	if w < inner {
		// Center the label by redrawing it shifted.
		c.Fill(NewBox(box.X+1, y, inner, 1), ' ', NoTag)
		c.SetString(box.X+1+(inner-w)/2, y, label, inner, tag)
	}
}

// DrawCircle traces a circle outline with dots.
func DrawCircle(c *Canvas, center geom.Point, radius float64, proj Projection, tag int) {
	if radius <= 0 {
		return
	}
	// Enough steps that consecutive points land in neighboring cells.
	cells := 2 * math.Pi * radius / math.Min(proj.UnitsPerColumn, proj.UnitsPerRow)
	steps := max(8, int(math.Ceil(cells))*2)

	for k := 0; k < steps; k++ {
		pt := polar.Point(center, radius, 360*float64(k)/float64(steps))
		x, y := proj.Cell(pt)
		if c.Cell(x, y).IsEmpty() {
			c.SetRune(x, y, '·', tag)
		}
	}
}
