package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"runtime"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/grindlemire/go-panels"
	"github.com/grindlemire/go-panels/internal/canvas"
	"github.com/grindlemire/go-panels/internal/gallery"
	"github.com/grindlemire/go-panels/internal/scene"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var formats = []string{"table", "yaml", "json", "ascii"}

const defaultColumns = 100

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [scene...]",
		Short: "Lay out scenes and print the placements",
		Long: `Lay out scene files and print the result as a table, YAML, JSON or as
boxes drawn on a character canvas. Built-in sample scenes can be rendered
with --sample. Scenes are laid out concurrently and printed in order.`,
		RunE: runRender,
	}

	cmd.Flags().StringP("format", "f", "table", "Output format: "+strings.Join(formats, ", "))
	cmd.Flags().Float64P("scale", "s", 0, "Layout units per character column for ascii output; 0 fits the terminal width")
	cmd.Flags().Int("columns", 0, "Terminal width to fit ascii output to; 0 detects it")
	cmd.Flags().Int("rows", 0, "Maximum rows of ascii output; 0 draws the whole layout")
	cmd.Flags().String("border", "single", "Box border for ascii output: ascii, single, rounded, double")
	cmd.Flags().StringSlice("sample", nil, "Render the built-in sample scene for these panel kinds")
	cmd.Flags().Int64("seed", 1, "Seed for sample scene data")
	for _, name := range []string{"format", "scale", "columns", "rows", "border", "seed"} {
		_ = viper.BindPFlag("render."+name, cmd.Flags().Lookup(name))
	}
	return cmd
}

type renderOptions struct {
	format  string
	scale   float64
	columns int
	rows    int
	border  canvas.BorderStyle
	color   bool
}

// source is a scene still to be loaded.
type source struct {
	name string
	load func() (*scene.Scene, error)
}

func runRender(cmd *cobra.Command, args []string) error {
	opts := renderOptions{
		format:  strings.ToLower(viper.GetString("render.format")),
		scale:   viper.GetFloat64("render.scale"),
		columns: viper.GetInt("render.columns"),
		rows:    viper.GetInt("render.rows"),
	}
	if !slices.Contains(formats, opts.format) {
		return fmt.Errorf("unknown format %q, use one of %s", opts.format, strings.Join(formats, ", "))
	}
	border, ok := canvas.ParseBorder(viper.GetString("render.border"))
	if !ok {
		return fmt.Errorf("unknown border %q", viper.GetString("render.border"))
	}
	opts.border = border

	out := cmd.OutOrStdout()
	if opts.columns <= 0 {
		opts.columns = terminalWidth(out)
	}
	opts.color = isTerminal(out)

	samples, _ := cmd.Flags().GetStringSlice("sample")
	sources := scenesFrom(args, samples, viper.GetInt64("render.seed"))
	if len(sources) == 0 {
		return fmt.Errorf("no scenes given, pass scene files or --sample (one of %s)", strings.Join(scene.Names(), ", "))
	}

	outputs := make([]string, len(sources))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		g.Go(func() error {
			s, err := src.load()
			if err != nil {
				return err
			}
			res := s.Layout()
			log.WithFields(log.Fields{
				"scene": s.Name,
				"final": fmt.Sprintf("%gx%g", res.Final.Width, res.Final.Height),
			}).Debug("rendered")

			outputs[i], err = renderScene(s, res, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", src.name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sep := "\n"
	if opts.format == "yaml" {
		sep = "---\n"
	}
	_, err := io.WriteString(out, strings.Join(outputs, sep))
	return err
}

func scenesFrom(files, samples []string, seed int64) []source {
	var out []source
	for _, f := range files {
		out = append(out, source{name: f, load: func() (*scene.Scene, error) { return scene.Load(f) }})
	}
	for _, kind := range samples {
		out = append(out, source{name: kind, load: func() (*scene.Scene, error) { return gallery.New(seed).Scene(kind) }})
	}
	return out
}

func renderScene(s *scene.Scene, res panels.Result, opts renderOptions) (string, error) {
	switch opts.format {
	case "json":
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(newReport(s, res)); err != nil {
			return "", err
		}
		return buf.String(), nil
	case "yaml":
		b, err := yaml.Marshal(newReport(s, res))
		return string(b), err
	case "ascii":
		proj := projection(drawExtent(s, res), opts)
		c := sceneCanvas(s, res, proj, opts.border, 0, opts.rows)
		body := c.StringTrimmed()
		if opts.color {
			body = c.Render(canvas.DefaultPalette())
		}
		return heading(s, res) + "\n" + body + "\n", nil
	default:
		return heading(s, res) + "\n" + placementTable(s, res) + "\n", nil
	}
}

func projection(size panels.Size, opts renderOptions) canvas.Projection {
	if opts.scale > 0 {
		return canvas.NewProjection(opts.scale)
	}
	return canvas.FitWidth(size.Width, opts.columns-1)
}

func heading(s *scene.Scene, res panels.Result) string {
	return lipgloss.NewStyle().Bold(true).Render(s.Name) +
		fmt.Sprintf(" (%s) desired %s final %s", s.Kind, formatSize(res.Desired), formatSize(res.Final))
}

func placementTable(s *scene.Scene, res panels.Result) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "LABEL", "X", "Y", "W", "H", "Z", "ROTATION")
	for _, pl := range res.Placements {
		if !pl.Visible {
			t.Row(fmt.Sprint(pl.Index), s.Children[pl.Index].Label, "-", "-", "-", "-", "-", "hidden")
			continue
		}
		rot := ""
		if pl.Rotated {
			rot = formatFloat(pl.Rotation)
		}
		t.Row(
			fmt.Sprint(pl.Index),
			s.Children[pl.Index].Label,
			formatFloat(pl.Rect.X),
			formatFloat(pl.Rect.Y),
			formatFloat(pl.Rect.Width),
			formatFloat(pl.Rect.Height),
			fmt.Sprint(pl.ZIndex),
			rot,
		)
	}
	return t.String()
}

func formatSize(s panels.Size) string {
	return formatFloat(s.Width) + "x" + formatFloat(s.Height)
}

func formatFloat(v float64) string {
	if math.IsInf(v, 0) {
		return "inf"
	}
	return fmt.Sprint(round2(v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type extent struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type item struct {
	ID       string   `json:"id" yaml:"id"`
	Label    string   `json:"label" yaml:"label"`
	Visible  bool     `json:"visible" yaml:"visible"`
	X        float64  `json:"x" yaml:"x"`
	Y        float64  `json:"y" yaml:"y"`
	Width    float64  `json:"width" yaml:"width"`
	Height   float64  `json:"height" yaml:"height"`
	ZIndex   int      `json:"zIndex,omitempty" yaml:"zIndex,omitempty"`
	Rotation *float64 `json:"rotation,omitempty" yaml:"rotation,omitempty"`
}

type report struct {
	Scene   string `json:"scene" yaml:"scene"`
	Panel   string `json:"panel" yaml:"panel"`
	Desired extent `json:"desired" yaml:"desired"`
	Final   extent `json:"final" yaml:"final"`
	Items   []item `json:"items" yaml:"items"`
}

func newReport(s *scene.Scene, res panels.Result) report {
	r := report{
		Scene:   s.Name,
		Panel:   s.Kind,
		Desired: extent{round2(res.Desired.Width), round2(res.Desired.Height)},
		Final:   extent{round2(res.Final.Width), round2(res.Final.Height)},
		Items:   make([]item, len(res.Placements)),
	}
	for i, pl := range res.Placements {
		c := s.Children[pl.Index]
		it := item{
			ID:      c.ID,
			Label:   c.Label,
			Visible: pl.Visible,
			X:       round2(pl.Rect.X),
			Y:       round2(pl.Rect.Y),
			Width:   round2(pl.Rect.Width),
			Height:  round2(pl.Rect.Height),
			ZIndex:  pl.ZIndex,
		}
		if pl.Rotated {
			it.Rotation = panels.Ptr(round2(pl.Rotation))
		}
		r.Items[i] = it
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultColumns
}
