package main

import (
	"math"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/grindlemire/go-panels"
	"github.com/grindlemire/go-panels/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(t *testing.T, m galleryModel, keys ...string) galleryModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(galleryModel)
	}
	return m
}

func TestGalleryModel_Navigation(t *testing.T) {
	m := newGalleryModel(nil, 1)
	n := len(scene.Names())
	require.Equal(t, n, m.count())

	type tc struct {
		keys []string
		want int
	}

	tests := map[string]tc{
		"next":          {keys: []string{"right"}, want: 1},
		"vim next":      {keys: []string{"l", "l"}, want: 2},
		"wrap backward": {keys: []string{"left"}, want: n - 1},
		"round trip":    {keys: []string{"right", "left"}, want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := press(t, m, tt.keys...)
			assert.Equal(t, tt.want, got.index)
			assert.Equal(t, scene.Names()[tt.want], got.current().Kind)
		})
	}
}

func TestGalleryModel_Zoom(t *testing.T) {
	m := newGalleryModel(nil, 1)
	base := m.current().Available

	grown := press(t, m, "+")
	assert.InDelta(t, base.Width*zoomStep, grown.current().Available.Width, 1e-9)

	shrunk := press(t, m, "-", "-")
	assert.Less(t, shrunk.current().Available.Height, base.Height)

	many := make([]string, 100)
	for i := range many {
		many[i] = "+"
	}
	assert.Equal(t, float64(maxZoom), press(t, m, many...).zoom)

	// The scene itself is never modified.
	assert.Equal(t, base, m.samples[0].Available)
}

func TestGalleryModel_ZoomKeepsInfiniteAxes(t *testing.T) {
	s := &scene.Scene{
		Name:      "free",
		Kind:      "overlap",
		Available: panels.Size{Width: math.Inf(1), Height: 300},
		Panel:     panels.NewOverlapPanel(),
		Children:  []scene.Child{{Label: "x", Child: panels.Sized(10, 10)}},
	}
	m := press(t, newGalleryModel([]*scene.Scene{s}, 1), "+")

	got := m.current().Available
	assert.True(t, panels.IsInf(got.Width))
	assert.InDelta(t, 330, got.Height, 1e-9)
}

func TestGalleryModel_Regenerate(t *testing.T) {
	m := newGalleryModel(nil, 1)
	bubbles := slices.Index(scene.Names(), "bubble")
	require.GreaterOrEqual(t, bubbles, 0)
	before := m.samples[bubbles].Children

	m = press(t, m, "r")
	assert.Equal(t, int64(2), m.seed)
	assert.NotEqual(t, before, m.samples[bubbles].Children)
}

func TestGalleryModel_Scroll(t *testing.T) {
	m := newGalleryModel(nil, 1)
	for m.current().Kind != "virtual-staggered" {
		m = press(t, m, "right")
	}
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(galleryModel)

	m = press(t, m, "up")
	assert.Equal(t, 0, m.scroll)

	m = press(t, m, "down", "down", "down")
	assert.Equal(t, 3, m.scroll)

	m = press(t, m, "right")
	assert.Equal(t, 0, m.scroll, "switching panels resets the scroll")
}

func TestGalleryModel_Quit(t *testing.T) {
	m := newGalleryModel(nil, 1)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestGalleryModel_View(t *testing.T) {
	m := newGalleryModel(nil, 1)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(galleryModel)

	view := m.View()
	assert.Contains(t, view, "ArcPanel")
	assert.Contains(t, view, "1/")
	assert.Contains(t, view, "quit")
}
