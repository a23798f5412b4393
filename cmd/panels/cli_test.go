package main

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/grindlemire/go-panels"
	"github.com/grindlemire/go-panels/internal/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCli()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeScene(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRootCmd(t *testing.T) {
	type tc struct {
		args        []string
		wantErr     bool
		wantContain string
	}

	tests := map[string]tc{
		"help": {
			args:        []string{"--help"},
			wantContain: "render",
		},
		"quiet and verbose": {
			args:    []string{"list", "-q", "-v"},
			wantErr: true,
		},
		"unknown command": {
			args:    []string{"frobnicate"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			out, err := run(t, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantContain)
		})
	}
}

func TestListCmd(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)

	for _, want := range []string{"bubble", "virtual-staggered", "spacing=4", "desiredcolumnwidth=250", "anglestep=auto"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderCmd_JSON(t *testing.T) {
	out, err := run(t, "render", "--sample", "overlap", "-f", "json")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "overlap", r.Panel)
	assert.Equal(t, extent{800, 600}, r.Final)
	require.Len(t, r.Items, 6)
	assert.Equal(t, 40.0, r.Items[1].X)
	assert.Equal(t, 30.0, r.Items[1].Y)
	assert.Equal(t, 1, r.Items[1].ZIndex)
	assert.Nil(t, r.Items[1].Rotation)
}

func TestRenderCmd_YAML(t *testing.T) {
	path := writeScene(t, "fan.yaml", `
panel: radial
width: 400
height: 400
config:
  radius: 100
  sweepAngle: 360
  rotateItems: true
children:
  - {id: a, width: 40, height: 20}
  - {id: b, width: 40, height: 20, hidden: true}
`)

	out, err := run(t, "render", path, "--format", "yaml")
	require.NoError(t, err)

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "fan", r.Scene)
	require.Len(t, r.Items, 2)
	assert.Equal(t, "a", r.Items[0].ID)
	assert.True(t, r.Items[0].Visible)
	assert.NotNil(t, r.Items[0].Rotation)
	assert.False(t, r.Items[1].Visible)
}

func TestRenderCmd_Table(t *testing.T) {
	path := writeScene(t, "stack.yaml", `
panel: autolayout
children:
  - {label: first, width: 50, height: 20}
  - {label: second, width: 50, height: 20}
`)

	out, err := run(t, "render", path)
	require.NoError(t, err)
	assert.Contains(t, out, "(autolayout) desired 50x40 final 50x40")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, out, "LABEL")
}

func TestRenderCmd_ASCII(t *testing.T) {
	path := writeScene(t, "pair.yaml", `
panel: autolayout
config:
  orientation: horizontal
children:
  - {label: a, width: 60, height: 60}
  - {label: b, width: 60, height: 60}
`)

	out, err := run(t, "render", path, "-f", "ascii", "--scale", "10", "--border", "ascii")
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, "+----++----+", lines[1])
	assert.Equal(t, "| a  || b  |", lines[2])
	assert.Equal(t, "+----++----+", lines[3])
}

func TestRenderCmd_Order(t *testing.T) {
	out, err := run(t, "render", "--sample", "wrap,arc,hex", "-f", "json")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var panels []string
	for dec.More() {
		var r report
		require.NoError(t, dec.Decode(&r))
		panels = append(panels, r.Panel)
	}
	assert.Equal(t, []string{"wrap", "arc", "hex"}, panels)
}

func TestRenderCmd_Errors(t *testing.T) {
	type tc struct {
		args    []string
		message string
	}

	tests := map[string]tc{
		"no scenes": {
			args:    []string{"render"},
			message: "no scenes given",
		},
		"bad format": {
			args:    []string{"render", "--sample", "arc", "-f", "svg"},
			message: "unknown format",
		},
		"bad border": {
			args:    []string{"render", "--sample", "arc", "--border", "dotted"},
			message: "unknown border",
		},
		"unknown sample": {
			args:    []string{"render", "--sample", "bubbel"},
			message: `did you mean "bubble"`,
		},
		"missing file": {
			args:    []string{"render", filepath.Join(os.TempDir(), "does-not-exist.yaml")},
			message: "read scene",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestBenchCmd(t *testing.T) {
	out, err := run(t, "bench", "--items", "10", "--iterations", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "items 10, passes 3: mean")

	_, err = run(t, "bench", "--items", "0")
	assert.Error(t, err)

	_, err = run(t, "bench", "--min", "50", "--max", "10")
	assert.Error(t, err)
}

func TestGalleryCmd_NeedsTerminal(t *testing.T) {
	_, err := run(t, "gallery")
	assert.ErrorContains(t, err, "interactive terminal")
}

func TestBench_CountsCirclesOutside(t *testing.T) {
	crowded := bench(rand.New(rand.NewSource(1)), 20, 2, 40, 40, panels.NewSize(100, 100), func() {})
	assert.Equal(t, 2, crowded.Passes)
	assert.Positive(t, crowded.Overflow)
	assert.GreaterOrEqual(t, crowded.Outside, crowded.Overflow)

	roomy := bench(rand.New(rand.NewSource(1)), 3, 1, 10, 10, panels.NewSize(400, 400), func() {})
	assert.Zero(t, roomy.Overflow)
	assert.Zero(t, roomy.Outside)
}

func TestDrawExtent(t *testing.T) {
	type tc struct {
		doc  string
		want panels.Size
	}

	tests := map[string]tc{
		"content inside the container": {
			doc:  "panel: overlap\nwidth: 200\nheight: 100\nchildren: [{width: 20, height: 20}]",
			want: panels.NewSize(200, 100),
		},
		"absolute child past the edge": {
			doc:  "panel: autolayout\nwidth: 100\nheight: 100\nchildren: [{width: 20, height: 20}, {width: 30, height: 10, absolute: true, x: 150, y: 120}]",
			want: panels.NewSize(180, 130),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s, err := scene.Parse(strings.NewReader(tt.doc), "yaml")
			require.NoError(t, err)
			assert.Equal(t, tt.want, drawExtent(s, s.Layout()))
		})
	}
}

func TestDrawExtent_OverflowingBubbles(t *testing.T) {
	s, err := scene.Parse(strings.NewReader(`
panel: bubble
width: 100
height: 100
children:
  - {width: 60, height: 60}
  - {width: 60, height: 60}
  - {width: 60, height: 60}
`), "yaml")
	require.NoError(t, err)

	got := drawExtent(s, s.Layout())
	assert.Greater(t, got.Width, 100.0)
	assert.Equal(t, 100.0, got.Height)
}
