// Package virtual answers viewport queries over precomputed item rects so
// that virtualizing panels only realize the items a viewport can see.
package virtual

import (
	"sort"

	"github.com/grindlemire/go-panels/internal/geom"
)

// Index is an immutable spatial index over item rectangles.
type Index struct {
	rects   []geom.Rect
	byTop   []int // item indices sorted by top edge
	tallest float64
	extent  geom.Size
}

// NewIndex builds an index over rects. The slice is retained; callers must
// not modify it afterwards.
func NewIndex(rects []geom.Rect) *Index {
	idx := &Index{
		rects: rects,
		byTop: make([]int, len(rects)),
	}
	for i, r := range rects {
		idx.byTop[i] = i
		idx.tallest = max(idx.tallest, r.Height)
		idx.extent.Width = max(idx.extent.Width, r.Right())
		idx.extent.Height = max(idx.extent.Height, r.Bottom())
	}
	sort.SliceStable(idx.byTop, func(a, b int) bool {
		return rects[idx.byTop[a]].Y < rects[idx.byTop[b]].Y
	})
	return idx
}

// Len returns the number of indexed items.
func (idx *Index) Len() int {
	return len(idx.rects)
}

// Rect returns the rectangle of item i.
func (idx *Index) Rect(i int) geom.Rect {
	return idx.rects[i]
}

// Extent returns the size of the area covered by all items, measured from
// the origin.
func (idx *Index) Extent() geom.Size {
	return idx.extent
}

// Query returns, in ascending order, the indices of items that intersect
// the viewport. Items merely touching the viewport edge are excluded.
func (idx *Index) Query(viewport geom.Rect) []int {
	if viewport.IsEmpty() || len(idx.rects) == 0 {
		return nil
	}

	// No item can reach the viewport if it starts more than one tallest
	// item above it, so the scan starts there.
	lo := sort.Search(len(idx.byTop), func(i int) bool {
		return idx.rects[idx.byTop[i]].Y > viewport.Y-idx.tallest
	})
	hi := sort.Search(len(idx.byTop), func(i int) bool {
		return idx.rects[idx.byTop[i]].Y >= viewport.Bottom()
	})

	var out []int
	for _, i := range idx.byTop[lo:hi] {
		if idx.rects[i].Intersects(viewport) {
			out = append(out, i)
		}
	}
	sort.Ints(out)
	return out
}
