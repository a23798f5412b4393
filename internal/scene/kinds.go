package scene

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/grindlemire/go-panels"
)

// Kind is a panel type that scenes can name.
type Kind struct {
	Name        string
	Description string

	// New returns the panel with its defaults.
	New func() panels.Panel
}

var kinds = map[string]Kind{}

func register(name, description string, fn func() panels.Panel) {
	kinds[name] = Kind{Name: name, Description: description, New: fn}
}

func init() {
	register("bubble", "packs children as non-overlapping circles around the center",
		func() panels.Panel { return panels.NewBubblePanel() })
	register("arc", "spreads children along an arc",
		func() panels.Panel { return panels.NewArcPanel() })
	register("circular", "places children around a full circle",
		func() panels.Panel { return panels.NewCircularPanel() })
	register("radial", "places children around a circle, optionally rotated",
		func() panels.Panel { return panels.NewRadialPanel() })
	register("orbit", "places children on concentric orbits",
		func() panels.Panel { return panels.NewOrbitPanel() })
	register("staggered", "masonry columns filled shortest first",
		func() panels.Panel { return panels.NewStaggeredPanel() })
	register("timeline", "stacks children beside a connector line",
		func() panels.Panel { return panels.NewTimelinePanel() })
	register("hex", "places children on a hexagonal grid",
		func() panels.Panel { return panels.NewHexPanel() })
	register("responsive", "shows children by width breakpoint",
		func() panels.Panel { return panels.NewResponsivePanel() })
	register("overlap", "fans children out like a stack of cards",
		func() panels.Panel { return panels.NewOverlapPanel() })
	register("wrap", "wraps fixed-size tiles with row and column spans",
		func() panels.Panel { return panels.NewVariableSizeWrapPanel() })
	register("autolayout", "stacks children with spacing, justification and absolute children",
		func() panels.Panel { return panels.NewAutoLayout() })
	register("virtual-wrap", "wrap with a precomputed plan for virtualized lists",
		func() panels.Panel { return panels.NewVirtualizingVariableSizeWrapPanel() })
	register("virtual-staggered", "staggered with a precomputed plan for virtualized lists",
		func() panels.Panel { return panels.NewVirtualizingStaggeredPanel() })
}

// Kinds returns every registered kind sorted by name.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Names returns the registered kind names sorted.
func Names() []string {
	names := make([]string, 0, len(kinds))
	for n := range kinds {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the kind with the given name.
func Lookup(name string) (Kind, error) {
	if k, ok := kinds[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return Kind{}, fmt.Errorf("%w %q%s", ErrUnknownPanel, name, didYouMean(name, Names()))
}

// Settings returns the configurable scalar settings of a panel and their
// current values, keyed by lower-case field name. Side-tables are left
// out; they come from the children.
func Settings(p panels.Panel) map[string]any {
	out := map[string]any{}
	v := reflect.Indirect(reflect.ValueOf(p))
	collectSettings(v, out)
	return out
}

func collectSettings(v reflect.Value, out map[string]any) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if f.Anonymous && fv.Kind() == reflect.Struct {
			collectSettings(fv, out)
			continue
		}
		if fv.Kind() == reflect.Map {
			continue
		}
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				out[strings.ToLower(f.Name)] = nil
				continue
			}
			fv = fv.Elem()
		}
		out[strings.ToLower(f.Name)] = fv.Interface()
	}
}
