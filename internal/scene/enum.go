package scene

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/grindlemire/go-panels"
)

// enums maps every named enum a panel config may carry to its accepted
// spellings. Names are compared after normalize.
var enums = map[reflect.Type]map[string]any{
	reflect.TypeOf(panels.Orientation(0)): {
		"vertical":   panels.Vertical,
		"horizontal": panels.Horizontal,
	},
	reflect.TypeOf(panels.SweepDirection(0)): {
		"clockwise":        panels.Clockwise,
		"counterclockwise": panels.CounterClockwise,
	},
	reflect.TypeOf(panels.Justification(0)): {
		"packed":       panels.Packed,
		"spacebetween": panels.SpaceBetween,
	},
	reflect.TypeOf(panels.Alignment(0)): {
		"start":   panels.AlignStart,
		"center":  panels.AlignCenter,
		"end":     panels.AlignEnd,
		"stretch": panels.AlignStretch,
	},
	reflect.TypeOf(panels.CircularAlignment(0)): {
		"center": panels.CircularCenter,
		"inner":  panels.CircularInner,
		"outer":  panels.CircularOuter,
	},
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// enumHook is a mapstructure decode hook that turns enum names into their
// values. Anything else passes through untouched.
func enumHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	names, ok := enums[to]
	if !ok {
		return data, nil
	}
	return parseEnum(to, names, data.(string))
}

func parseEnum(typ reflect.Type, names map[string]any, s string) (any, error) {
	if v, ok := names[normalize(s)]; ok {
		return v, nil
	}
	valid := make([]string, 0, len(names))
	for n := range names {
		valid = append(valid, n)
	}
	sort.Strings(valid)
	return nil, fmt.Errorf("%w: %q is not a %s (one of %s)%s",
		ErrInvalidScene, s, typ.Name(), strings.Join(valid, ", "), didYouMean(normalize(s), valid))
}

func parseCircularAlignment(s string) (panels.CircularAlignment, error) {
	typ := reflect.TypeOf(panels.CircularAlignment(0))
	v, err := parseEnum(typ, enums[typ], s)
	if err != nil {
		return 0, err
	}
	return v.(panels.CircularAlignment), nil
}

// parseConditions turns breakpoint names into a Breakpoint set.
func parseConditions(names []string) (panels.Breakpoint, error) {
	all := map[string]panels.Breakpoint{
		"narrow": panels.Narrow,
		"normal": panels.Normal,
		"wide":   panels.Wide,
		"all":    panels.AllBreakpoints,
	}
	var bp panels.Breakpoint
	for _, n := range names {
		b, ok := all[normalize(n)]
		if !ok {
			return 0, fmt.Errorf("%w: unknown breakpoint %q%s",
				ErrInvalidScene, n, didYouMean(normalize(n), []string{"narrow", "normal", "wide", "all"}))
		}
		bp |= b
	}
	return bp, nil
}
