package main

import (
	"github.com/grindlemire/go-panels"
	"github.com/grindlemire/go-panels/internal/canvas"
	"github.com/grindlemire/go-panels/internal/scene"
)

// sceneCanvas draws a laid-out scene. The canvas starts at row top and is
// at most rows high; rows <= 0 draws the whole layout.
func sceneCanvas(s *scene.Scene, res panels.Result, proj canvas.Projection, border canvas.BorderStyle, top, rows int) *canvas.Canvas {
	size := drawExtent(s, res)
	cols, total := proj.Size(size)
	cols, total = cols+1, total+1
	top = max(0, min(top, total-1))
	if rows <= 0 || rows > total-top {
		rows = total - top
	}

	c := canvas.New(cols, rows)
	offset := float64(top) * proj.UnitsPerRow
	viewport := panels.NewRect(0, offset, size.Width, float64(rows)*proj.UnitsPerRow)

	var items []canvas.Item
	for _, i := range realized(s, res, viewport) {
		pl := res.Placements[i]
		items = append(items, canvas.Item{
			Rect:   pl.Rect.Translate(0, -offset),
			Label:  s.Children[i].Label,
			ZIndex: pl.ZIndex,
			Tag:    i,
		})
	}
	canvas.Draw(c, items, proj, border)

	if p, ok := s.Panel.(*panels.BubblePanel); ok {
		for _, circle := range p.Pack(s.Inputs(), res.Final) {
			center := panels.Point{X: circle.X, Y: circle.Y - offset}
			canvas.DrawCircle(c, center, circle.Radius, proj, circle.Index)
		}
	}
	return c
}

// drawExtent is the final size grown to cover visible placements and
// packed circles that land past it, such as overflowing bubbles.
// Content left of or above the origin is clipped.
func drawExtent(s *scene.Scene, res panels.Result) panels.Size {
	bounds := panels.NewRect(0, 0, res.Final.Width, res.Final.Height)
	for _, pl := range res.Placements {
		if pl.Visible {
			bounds = bounds.Union(pl.Rect)
		}
	}
	if p, ok := s.Panel.(*panels.BubblePanel); ok {
		for _, circle := range p.Pack(s.Inputs(), res.Final) {
			bounds = bounds.Union(circle.Bounds())
		}
	}
	return panels.NewSize(max(0, bounds.Right()), max(0, bounds.Bottom()))
}

// realized returns the visible children that intersect the viewport.
// Virtualized panels answer from their plan instead of scanning every
// placement.
func realized(s *scene.Scene, res panels.Result, viewport panels.Rect) []int {
	inputs := s.Inputs()

	var candidates []int
	planned := false
	if !anyHidden(inputs) {
		switch p := s.Panel.(type) {
		case *panels.VirtualizingVariableSizeWrapPanel:
			candidates, planned = p.Plan(len(inputs)).Realize(viewport), true
		case *panels.VirtualizingStaggeredPanel:
			heights := make([]float64, len(inputs))
			for i, in := range inputs {
				heights[i] = in.Desired.Height
			}
			candidates, planned = p.Plan(heights, res.Final.Width).Realize(viewport), true
		}
	}
	if !planned {
		candidates = make([]int, len(res.Placements))
		for i := range candidates {
			candidates[i] = i
		}
	}

	out := candidates[:0:0]
	for _, i := range candidates {
		pl := res.Placements[i]
		if pl.Visible && pl.Rect.Intersects(viewport) {
			out = append(out, i)
		}
	}
	return out
}

func anyHidden(children []panels.Child) bool {
	for _, c := range children {
		if c.Hidden {
			return true
		}
	}
	return false
}
