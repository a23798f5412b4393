package panels

import (
	"sort"

	"github.com/grindlemire/go-panels/internal/geom"
	"github.com/grindlemire/go-panels/internal/polar"
)

// OrbitPanel arranges children on concentric orbits. Orbit 0 is the center;
// orbit k sits at InnerRadius + (k-1)*OrbitSpacing.
type OrbitPanel struct {
	OrbitSpacing float64
	InnerRadius  float64
	StartAngle   float64

	// Orbits assigns children to orbits by child index. Missing or negative
	// entries mean orbit 0.
	Orbits map[int]int
}

// NewOrbitPanel returns an OrbitPanel with default ring geometry.
func NewOrbitPanel() *OrbitPanel {
	return &OrbitPanel{
		OrbitSpacing: 60,
		InnerRadius:  50,
	}
}

// OrbitRadius returns the radius of orbit k.
func (p *OrbitPanel) OrbitRadius(k int) float64 {
	if k <= 0 {
		return 0
	}
	return p.InnerRadius + float64(k-1)*p.OrbitSpacing
}

func (p *OrbitPanel) Measure(children []Child, available Size) Size {
	idx := visible(children)
	if len(idx) == 0 {
		return Size{}
	}
	var reach float64
	for _, i := range idx {
		reach = max(reach, p.OrbitRadius(p.orbit(i))+children[i].Desired.MaxExtent()/2)
	}
	return NewSize(2*reach, 2*reach)
}

func (p *OrbitPanel) Arrange(children []Child, final Size) []Placement {
	out := hiddenPlacements(children)
	center := panelCenter(final)

	orbits := p.group(visible(children))
	keys := make([]int, 0, len(orbits))
	for k := range orbits {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		members := orbits[k]
		radius := p.OrbitRadius(k)
		step := polar.Slices(360, len(members))
		for n, angle := range polar.Spread(p.StartAngle, step, len(members)) {
			i := members[n]
			pt := center
			if k > 0 {
				pt = polar.Point(center, radius, angle)
			}
			out[i].Rect = geom.RectFromCenter(pt, children[i].Desired)
			out[i].Visible = true
		}
	}
	return out
}

// group buckets child indices by orbit, keeping input order inside an
// orbit. Only occupied orbits get a bucket.
func (p *OrbitPanel) group(idx []int) map[int][]int {
	orbits := make(map[int][]int)
	for _, i := range idx {
		k := p.orbit(i)
		orbits[k] = append(orbits[k], i)
	}
	return orbits
}

func (p *OrbitPanel) orbit(i int) int {
	return max(0, p.Orbits[i])
}
