// Package scene loads panel scenes from YAML, TOML or JSON files. A scene
// names a panel kind, its settings, the available size and the children
// with their desired sizes and per-child properties.
package scene

import (
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/grindlemire/go-panels"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Scene is a panel ready to be laid out.
type Scene struct {
	Name string
	Kind string

	// Available is the size offered to the panel. Axes left out of the
	// scene file are infinite.
	Available panels.Size

	Panel    panels.Panel
	Children []Child
}

// Child is a layout child with the identity it has in the scene file.
type Child struct {
	ID    string
	Label string
	panels.Child
}

// Inputs returns the children as layout inputs.
func (s *Scene) Inputs() []panels.Child {
	out := make([]panels.Child, len(s.Children))
	for i, c := range s.Children {
		out[i] = c.Child
	}
	return out
}

// Layout runs a full layout pass over the scene.
func (s *Scene) Layout() panels.Result {
	return panels.Layout(s.Panel, s.Inputs(), s.Available)
}

// childSpec is a child as written in a scene file.
type childSpec struct {
	ID     string  `mapstructure:"id"`
	Label  string  `mapstructure:"label"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Hidden bool    `mapstructure:"hidden"`

	// circular
	Angle     *float64 `mapstructure:"angle"`
	Radius    *float64 `mapstructure:"radius"`
	Alignment string   `mapstructure:"alignment"`

	// orbit
	Orbit *int `mapstructure:"orbit"`

	// hex
	Row    *int `mapstructure:"row"`
	Column *int `mapstructure:"column"`

	// wrap
	ColumnSpan *int `mapstructure:"column_span"`
	RowSpan    *int `mapstructure:"row_span"`

	// responsive
	Conditions []string `mapstructure:"conditions"`

	// autolayout
	Absolute bool     `mapstructure:"absolute"`
	X        *float64 `mapstructure:"x"`
	Y        *float64 `mapstructure:"y"`
}

// Load reads a scene file. The format follows the file extension.
func Load(path string) (*Scene, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	s, err := decode(v, name)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse reads a scene in the given format ("yaml", "toml" or "json").
func Parse(r io.Reader, format string) (*Scene, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return decode(v, "scene")
}

func decode(v *viper.Viper, fallbackName string) (*Scene, error) {
	kindName := v.GetString("panel")
	if kindName == "" {
		return nil, fmt.Errorf("%w: missing \"panel\" (one of %s)", ErrInvalidScene, strings.Join(Names(), ", "))
	}
	kind, err := Lookup(kindName)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Name:      v.GetString("name"),
		Kind:      kind.Name,
		Panel:     kind.New(),
		Available: panels.Infinite,
	}
	if s.Name == "" {
		s.Name = fallbackName
	}

	for _, axis := range []struct {
		key string
		dst *float64
	}{{"width", &s.Available.Width}, {"height", &s.Available.Height}} {
		if !v.IsSet(axis.key) {
			continue
		}
		f := v.GetFloat64(axis.key)
		if f < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidScene, axis.key, f)
		}
		if f > 0 {
			*axis.dst = f
		}
	}

	if cfg := v.Sub("config"); cfg != nil {
		if err := configure(cfg, s.Panel); err != nil {
			return nil, err
		}
	}

	if err := checkChildKeys(v.Get("children")); err != nil {
		return nil, err
	}
	var specs []childSpec
	if err := v.UnmarshalKey("children", &specs); err != nil {
		return nil, fmt.Errorf("%w: children: %v", ErrInvalidScene, err)
	}
	if len(specs) == 0 {
		return nil, ErrNoChildren
	}

	s.Children, err = children(specs)
	if err != nil {
		return nil, err
	}
	if err := attach(s.Panel, specs); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"scene":    s.Name,
		"panel":    s.Kind,
		"children": len(s.Children),
	}).Debug("scene loaded")
	return s, nil
}

// configure decodes panel settings over the panel defaults. Unknown keys
// are rejected so that typos do not silently fall back to a default.
func configure(cfg *viper.Viper, p panels.Panel) error {
	target := settingsTarget(p)
	known := Settings(p)

	keys := map[string]bool{}
	for _, k := range cfg.AllKeys() {
		keys[strings.SplitN(k, ".", 2)[0]] = true
	}
	names := make([]string, 0, len(known))
	for n := range known {
		names = append(names, n)
	}
	sort.Strings(names)
	for k := range keys {
		if _, ok := known[k]; !ok {
			return fmt.Errorf("%w: unknown setting %q%s", ErrInvalidScene, k, didYouMean(k, names))
		}
	}

	if err := cfg.Unmarshal(target, viper.DecodeHook(enumHook)); err != nil {
		return fmt.Errorf("%w: config: %v", ErrInvalidScene, err)
	}
	return nil
}

// childKeys lists the keys a child entry may carry.
var childKeys = func() []string {
	t := reflect.TypeOf(childSpec{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, t.Field(i).Tag.Get("mapstructure"))
	}
	sort.Strings(keys)
	return keys
}()

// checkChildKeys rejects child entries with keys no panel understands.
// Entries that are not maps are left for the decoder to report.
func checkChildKeys(raw any) error {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}
	for i, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		for k := range m {
			if !slices.Contains(childKeys, strings.ToLower(k)) {
				return fmt.Errorf("%w: child %d: unknown key %q%s", ErrInvalidScene, i, k, didYouMean(k, childKeys))
			}
		}
	}
	return nil
}

// settingsTarget returns the struct the settings decode into. Virtualized
// panels embed the panel they plan for.
func settingsTarget(p panels.Panel) any {
	switch p := p.(type) {
	case *panels.VirtualizingVariableSizeWrapPanel:
		return &p.VariableSizeWrapPanel
	case *panels.VirtualizingStaggeredPanel:
		return &p.StaggeredPanel
	default:
		return p
	}
}

func children(specs []childSpec) ([]Child, error) {
	out := make([]Child, len(specs))
	seen := map[string]int{}
	for i, spec := range specs {
		if spec.Width < 0 || spec.Height < 0 {
			return nil, fmt.Errorf("%w: child %d has a negative size", ErrInvalidScene, i)
		}

		id := spec.ID
		if id == "" {
			id = uuid.NewString()
		}
		if j, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: children %d and %d share id %q", ErrInvalidScene, j, i, id)
		}
		seen[id] = i

		label := spec.Label
		switch {
		case label != "":
		case spec.ID != "":
			label = spec.ID
		default:
			label = fmt.Sprint(i + 1)
		}

		out[i] = Child{
			ID:    id,
			Label: label,
			Child: panels.Child{
				Desired: panels.NewSize(spec.Width, spec.Height),
				Hidden:  spec.Hidden,
			},
		}
	}
	return out, nil
}

// attach copies per-child properties into the panel's side-tables.
// Properties the panel has no use for are ignored.
func attach(p panels.Panel, specs []childSpec) error {
	switch p := p.(type) {
	case *panels.CircularPanel:
		for i, s := range specs {
			if s.Angle != nil {
				p.Angles = setAt(p.Angles, i, *s.Angle)
			}
			if s.Radius != nil {
				p.Radii = setAt(p.Radii, i, *s.Radius)
			}
			if s.Alignment != "" {
				a, err := parseCircularAlignment(s.Alignment)
				if err != nil {
					return fmt.Errorf("child %d: %w", i, err)
				}
				p.Alignments = setAt(p.Alignments, i, a)
			}
		}
	case *panels.OrbitPanel:
		for i, s := range specs {
			if s.Orbit != nil {
				p.Orbits = setAt(p.Orbits, i, *s.Orbit)
			}
		}
	case *panels.HexPanel:
		for i, s := range specs {
			if s.Row != nil {
				p.Rows = setAt(p.Rows, i, *s.Row)
			}
			if s.Column != nil {
				p.Columns = setAt(p.Columns, i, *s.Column)
			}
		}
	case *panels.VariableSizeWrapPanel:
		attachSpans(p, specs)
	case *panels.VirtualizingVariableSizeWrapPanel:
		attachSpans(&p.VariableSizeWrapPanel, specs)
	case *panels.ResponsivePanel:
		for i, s := range specs {
			if s.Conditions == nil {
				continue
			}
			bp, err := parseConditions(s.Conditions)
			if err != nil {
				return fmt.Errorf("child %d: %w", i, err)
			}
			p.Conditions = setAt(p.Conditions, i, bp)
		}
	case *panels.AutoLayout:
		for i, s := range specs {
			if s.Absolute {
				p.Absolute = setAt(p.Absolute, i, true)
			}
			if s.X != nil || s.Y != nil {
				var off panels.Point
				if s.X != nil {
					off.X = *s.X
				}
				if s.Y != nil {
					off.Y = *s.Y
				}
				p.Offsets = setAt(p.Offsets, i, off)
			}
		}
	}
	return nil
}

func attachSpans(p *panels.VariableSizeWrapPanel, specs []childSpec) {
	for i, s := range specs {
		if s.ColumnSpan != nil {
			p.ColumnSpans = setAt(p.ColumnSpans, i, *s.ColumnSpan)
		}
		if s.RowSpan != nil {
			p.RowSpans = setAt(p.RowSpans, i, *s.RowSpan)
		}
	}
}

func setAt[T any](m map[int]T, i int, v T) map[int]T {
	if m == nil {
		m = map[int]T{}
	}
	m[i] = v
	return m
}
