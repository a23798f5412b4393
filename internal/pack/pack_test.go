package pack

import (
	"math"
	"testing"

	"github.com/grindlemire/go-panels/internal/geom"
)

func TestFind(t *testing.T) {
	type tc struct {
		placed   []Circle
		radius   float64
		area     Area
		wantTier Tier
		wantPos  geom.Point
	}

	tests := map[string]tc{
		"first circle goes to the center": {
			radius:   30,
			area:     Area{Width: 300, Height: 200},
			wantTier: TierCenter,
			wantPos:  geom.Point{X: 150, Y: 100},
		},
		"unreachable neighbour falls back to rings": {
			placed:   []Circle{{X: 1000, Y: 1000, Radius: 10}},
			radius:   10,
			area:     Area{Width: 200, Height: 200},
			wantTier: TierRing,
			wantPos:  geom.Point{X: 110, Y: 100},
		},
		"container too small overflows along x": {
			placed:   []Circle{{X: 50, Y: 50, Radius: 10}},
			radius:   35,
			area:     Area{Width: 100, Height: 100},
			wantTier: TierOverflow,
			wantPos:  geom.Point{X: 115 + 50*math.Sqrt2, Y: 50},
		},
		"overflow accounts for spacing": {
			placed:   []Circle{{X: 50, Y: 50, Radius: 10}},
			radius:   35,
			area:     Area{Width: 100, Height: 100, Spacing: 5},
			wantTier: TierOverflow,
			wantPos:  geom.Point{X: 120 + 50*math.Sqrt2, Y: 50},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pos, tier := Find(tt.placed, tt.radius, tt.area)
			if tier != tt.wantTier {
				t.Errorf("tier = %v, want %v", tier, tt.wantTier)
			}
			if math.Abs(pos.X-tt.wantPos.X) > 1e-9 || math.Abs(pos.Y-tt.wantPos.Y) > 1e-9 {
				t.Errorf("position = %v, want %v", pos, tt.wantPos)
			}
		})
	}
}

func TestFind_TangentTouchesNeighbour(t *testing.T) {
	area := Area{Width: 300, Height: 300}
	placed := []Circle{{X: 150, Y: 150, Radius: 30}}

	pos, tier := Find(placed, 20, area)
	if tier != TierTangent {
		t.Fatalf("tier = %v, want tangent", tier)
	}
	if d := pos.Dist(placed[0].Center()); math.Abs(d-50) > 1e-9 {
		t.Errorf("distance to neighbour = %v, want 50", d)
	}
}

func TestPack_TwoCircles(t *testing.T) {
	circles := Pack([]Item{{Index: 0, Radius: 30}, {Index: 1, Radius: 20}}, Area{Width: 300, Height: 300})

	if len(circles) != 2 {
		t.Fatalf("len(circles) = %d, want 2", len(circles))
	}
	if d := circles[0].Center().Dist(circles[1].Center()); d < 50-1e-9 {
		t.Errorf("center distance = %v, want >= 50", d)
	}
}

func TestPack_NoOverlapInsideRoomyArea(t *testing.T) {
	type tc struct {
		radii []float64
		area  Area
	}

	tests := map[string]tc{
		"mixed sizes": {
			radii: []float64{40, 12, 25, 30, 18, 10, 22, 35, 15, 28},
			area:  Area{Width: 600, Height: 600},
		},
		"with spacing": {
			radii: []float64{20, 20, 20, 20, 20, 20, 20, 20},
			area:  Area{Width: 500, Height: 400, Spacing: 6},
		},
		"many small": {
			radii: repeat(10, 40),
			area:  Area{Width: 400, Height: 400, Spacing: 2},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			circles := Pack(items(tt.radii), tt.area)
			bounds := geom.NewRect(0, 0, tt.area.Width, tt.area.Height)

			for i, a := range circles {
				if a.Tier == TierOverflow {
					t.Errorf("circle %d overflowed in a roomy area", a.Index)
				}
				if !bounds.ContainsRect(a.Bounds()) {
					t.Errorf("circle %d bounds %v outside %v", a.Index, a.Bounds(), bounds)
				}
				for _, b := range circles[i+1:] {
					want := a.Radius + b.Radius + tt.area.Spacing
					if d := a.Center().Dist(b.Center()); d < want-1e-6 {
						t.Errorf("circles %d and %d overlap: distance %v < %v", a.Index, b.Index, d, want)
					}
				}
			}
		})
	}
}

func TestPack_NoOverlapWhenOverflowing(t *testing.T) {
	circles := Pack(items(repeat(30, 12)), Area{Width: 120, Height: 120, Spacing: 4})

	overflowed := 0
	for i, a := range circles {
		if a.Tier == TierOverflow {
			overflowed++
		}
		for _, b := range circles[i+1:] {
			if d := a.Center().Dist(b.Center()); d < a.Radius+b.Radius+4-1e-6 {
				t.Errorf("circles %d and %d overlap", a.Index, b.Index)
			}
		}
	}
	if overflowed == 0 {
		t.Error("expected at least one overflowing circle in a crowded area")
	}
}

func TestPack_FirstIsLargestAtCenter(t *testing.T) {
	circles := Pack(items([]float64{10, 50, 20}), Area{Width: 400, Height: 300})

	first := circles[0]
	if first.Index != 1 {
		t.Errorf("first placed index = %d, want 1 (largest)", first.Index)
	}
	if first.X != 200 || first.Y != 150 {
		t.Errorf("first center = (%v, %v), want (200, 150)", first.X, first.Y)
	}
}

func TestPack_StableForEqualRadii(t *testing.T) {
	circles := Pack(items([]float64{15, 15, 15, 15}), Area{Width: 300, Height: 300})

	for i, c := range circles {
		if c.Index != i {
			t.Errorf("circles[%d].Index = %d, want %d", i, c.Index, i)
		}
	}
}

func TestPack_Deterministic(t *testing.T) {
	radii := []float64{33, 12, 27, 19, 41, 10, 16, 24}
	area := Area{Width: 500, Height: 350, Spacing: 3}

	first := Pack(items(radii), area)
	for run := 0; run < 5; run++ {
		again := Pack(items(radii), area)
		for i := range first {
			if first[i] != again[i] {
				t.Fatalf("run %d: circle %d = %+v, want %+v", run, i, again[i], first[i])
			}
		}
	}
}

func TestRadiusFor(t *testing.T) {
	type tc struct {
		size geom.Size
		want float64
	}

	tests := map[string]tc{
		"square":          {size: geom.NewSize(40, 40), want: 20},
		"wide uses width": {size: geom.NewSize(80, 10), want: 40},
		"floored":         {size: geom.NewSize(6, 4), want: MinRadius},
		"empty child":     {size: geom.Size{}, want: MinRadius},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := RadiusFor(tt.size); got != tt.want {
				t.Errorf("RadiusFor(%v) = %v, want %v", tt.size, got, tt.want)
			}
		})
	}
}

func items(radii []float64) []Item {
	out := make([]Item, len(radii))
	for i, r := range radii {
		out[i] = Item{Index: i, Radius: r}
	}
	return out
}

func repeat(r float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r
	}
	return out
}
