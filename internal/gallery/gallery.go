// Package gallery builds sample scenes, one per panel kind, with generated
// children. The CLI renders them and the interactive gallery browses them.
package gallery

import (
	"fmt"
	"math/rand"

	"github.com/grindlemire/go-panels"
	"github.com/grindlemire/go-panels/internal/scene"
)

// DefaultSize is the container size the samples are tuned for.
var DefaultSize = panels.NewSize(800, 600)

// Generator makes sample scenes from a seeded source so that a seed always
// yields the same scenes.
type Generator struct {
	rng  *rand.Rand
	size panels.Size
}

// New returns a generator for the given seed and the default size.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), size: DefaultSize}
}

// WithSize sets the available size of the scenes made from now on.
func (g *Generator) WithSize(s panels.Size) *Generator {
	g.size = s
	return g
}

var samples = map[string]func(g *Generator, s *scene.Scene){
	"bubble":            (*Generator).bubble,
	"arc":               (*Generator).arc,
	"circular":          (*Generator).circular,
	"radial":            (*Generator).radial,
	"orbit":             (*Generator).orbit,
	"staggered":         (*Generator).staggered,
	"timeline":          (*Generator).timeline,
	"hex":               (*Generator).hex,
	"responsive":        (*Generator).responsive,
	"overlap":           (*Generator).overlap,
	"wrap":              (*Generator).wrap,
	"autolayout":        (*Generator).autolayout,
	"virtual-wrap":      (*Generator).virtualWrap,
	"virtual-staggered": (*Generator).virtualStaggered,
}

// Scenes returns one sample scene per registered panel kind, in kind name
// order.
func (g *Generator) Scenes() []*scene.Scene {
	names := scene.Names()
	out := make([]*scene.Scene, 0, len(names))
	for _, n := range names {
		s, err := g.Scene(n)
		if err != nil {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Scene returns the sample scene for a panel kind.
func (g *Generator) Scene(kind string) (*scene.Scene, error) {
	k, err := scene.Lookup(kind)
	if err != nil {
		return nil, err
	}
	fill, ok := samples[k.Name]
	if !ok {
		return nil, fmt.Errorf("no sample for %q: %w", k.Name, scene.ErrUnknownPanel)
	}

	s := &scene.Scene{
		Name:      k.Name,
		Kind:      k.Name,
		Available: g.size,
		Panel:     k.New(),
	}
	fill(g, s)
	return s, nil
}

// between returns a random integer in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func add(s *scene.Scene, label string, w, h float64) {
	s.Children = append(s.Children, scene.Child{
		ID:    fmt.Sprintf("%s-%d", s.Kind, len(s.Children)),
		Label: label,
		Child: panels.Child{Desired: panels.NewSize(w, h)},
	})
}

func numbered(s *scene.Scene, n int, w, h float64) {
	for i := 0; i < n; i++ {
		add(s, fmt.Sprint(i+1), w, h)
	}
}

func (g *Generator) bubble(s *scene.Scene) {
	for i := 0; i < 24; i++ {
		d := float64(g.between(30, 110))
		add(s, fmt.Sprint(i+1), d, d)
	}
}

func (g *Generator) arc(s *scene.Scene) {
	p := s.Panel.(*panels.ArcPanel)
	p.Radius = 220
	p.StartAngle = 180
	numbered(s, 7, 60, 60)
}

func (g *Generator) circular(s *scene.Scene) {
	p := s.Panel.(*panels.CircularPanel)
	p.Radius = 200
	p.StartAngle = -90
	numbered(s, 8, 70, 50)
	p.Alignments = map[int]panels.CircularAlignment{0: panels.CircularOuter}
}

func (g *Generator) radial(s *scene.Scene) {
	p := s.Panel.(*panels.RadialPanel)
	p.Radius = 200
	p.SweepAngle = 360
	p.RotateItems = true
	numbered(s, 12, 80, 24)
}

func (g *Generator) orbit(s *scene.Scene) {
	p := s.Panel.(*panels.OrbitPanel)
	p.InnerRadius = 60
	p.OrbitSpacing = 80
	p.Orbits = map[int]int{}
	for orbit, n := range []int{1, 6, 10, 14} {
		for i := 0; i < n; i++ {
			p.Orbits[len(s.Children)] = orbit
			add(s, fmt.Sprint(len(s.Children)+1), 36, 36)
		}
	}
}

func (g *Generator) staggered(s *scene.Scene) {
	p := s.Panel.(*panels.StaggeredPanel)
	p.DesiredColumnWidth = 150
	p.ColumnSpacing = 8
	p.RowSpacing = 8
	for i, h := range StaggeredHeights(g.rng, 40) {
		add(s, fmt.Sprintf("Item %d", i+1), 150, h)
	}
}

func (g *Generator) timeline(s *scene.Scene) {
	p := s.Panel.(*panels.TimelinePanel)
	p.AlternateItems = true
	for i := 0; i < 8; i++ {
		add(s, fmt.Sprintf("Step %d", i+1), float64(g.between(140, 260)), 60)
	}
}

func (g *Generator) hex(s *scene.Scene) {
	p := s.Panel.(*panels.HexPanel)
	p.ColumnCount = 5
	p.RowCount = 4
	p.Rows = map[int]int{}
	p.Columns = map[int]int{}
	for r := 0; r < p.RowCount; r++ {
		for c := 0; c < p.ColumnCount; c++ {
			i := len(s.Children)
			p.Rows[i] = r
			p.Columns[i] = c
			add(s, fmt.Sprintf("%d,%d", r, c), 0, 0)
		}
	}
}

func (g *Generator) responsive(s *scene.Scene) {
	p := s.Panel.(*panels.ResponsivePanel)
	p.Conditions = map[int]panels.Breakpoint{
		0: panels.Narrow,
		1: panels.Normal,
		2: panels.Wide,
		3: panels.Normal | panels.Wide,
	}
	add(s, "narrow only", 0, 0)
	add(s, "normal only", 0, 0)
	add(s, "wide only", 0, 0)
	add(s, "normal or wide", 240, 80)
}

func (g *Generator) overlap(s *scene.Scene) {
	p := s.Panel.(*panels.OverlapPanel)
	p.OffsetX = 40
	p.OffsetY = 30
	numbered(s, 6, 160, 200)
}

func (g *Generator) wrap(s *scene.Scene) {
	p := s.Panel.(*panels.VariableSizeWrapPanel)
	p.TileSize = 80
	p.Spacing = 6
	p.Columns = 8
	p.ColumnSpans, p.RowSpans = TileSpans(g.rng, 40)
	numbered(s, 40, 0, 0)
}

func (g *Generator) autolayout(s *scene.Scene) {
	p := s.Panel.(*panels.AutoLayout)
	p.Orientation = panels.Horizontal
	p.Spacing = 16
	p.Padding = panels.EdgeAll(24)
	p.Justification = panels.SpaceBetween
	p.VerticalAlignment = panels.AlignCenter
	for i := 0; i < 4; i++ {
		add(s, fmt.Sprintf("Card %d", i+1), 120, float64(g.between(80, 200)))
	}
	p.Absolute = map[int]bool{4: true}
	p.Offsets = map[int]panels.Point{4: {X: 680, Y: 16}}
	add(s, "badge", 80, 40)
}

func (g *Generator) virtualWrap(s *scene.Scene) {
	p := s.Panel.(*panels.VirtualizingVariableSizeWrapPanel)
	p.TileSize = 80
	p.Spacing = 6
	p.Columns = 8
	p.ColumnSpans, p.RowSpans = TileSpans(g.rng, 500)
	numbered(s, 500, 0, 0)
}

func (g *Generator) virtualStaggered(s *scene.Scene) {
	p := s.Panel.(*panels.VirtualizingStaggeredPanel)
	p.DesiredColumnWidth = 150
	p.ColumnSpacing = 8
	p.RowSpacing = 8
	for i, h := range StaggeredHeights(g.rng, 1000) {
		add(s, fmt.Sprintf("Item %d", i+1), 150, h)
	}
}

// StaggeredHeights returns n item heights between 80 and 250.
func StaggeredHeights(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(80 + rng.Intn(171))
	}
	return out
}

// TileSpans returns spans for n tiles. Seven in ten tiles are 1x1; the
// rest span one or two cells on each axis.
func TileSpans(rng *rand.Rand, n int) (columns, rows map[int]int) {
	columns = map[int]int{}
	rows = map[int]int{}
	for i := 0; i < n; i++ {
		c, r := 1+rng.Intn(2), 1+rng.Intn(2)
		if rng.Intn(100) < 70 {
			continue
		}
		if c > 1 {
			columns[i] = c
		}
		if r > 1 {
			rows[i] = r
		}
	}
	return columns, rows
}

// Bubbles returns n square children with sides between lo and hi.
func Bubbles(rng *rand.Rand, n int, lo, hi float64) []panels.Child {
	out := make([]panels.Child, n)
	for i := range out {
		d := lo + rng.Float64()*(hi-lo)
		out[i] = panels.Child{Desired: panels.NewSize(d, d)}
	}
	return out
}
