package scene

import (
	"errors"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrUnknownPanel is returned when a scene names a panel kind that is
	// not registered.
	ErrUnknownPanel = errors.New("unknown panel")
	// ErrInvalidScene is returned for malformed scene files.
	ErrInvalidScene = errors.New("invalid scene")
	// ErrNoChildren is returned when a scene has nothing to lay out.
	ErrNoChildren = errors.New("scene has no children")
)

// suggest returns the candidate closest to name, or "" when nothing is
// close enough to be a plausible typo.
func suggest(name string, candidates []string) string {
	name = strings.ToLower(name)
	best, bestDist := "", -1
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)
	for _, c := range sorted {
		d := levenshtein.ComputeDistance(name, strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(name)/3) {
		return ""
	}
	return best
}

// didYouMean formats a suggestion suffix for error messages.
func didYouMean(name string, candidates []string) string {
	if s := suggest(name, candidates); s != "" {
		return ", did you mean \"" + s + "\"?"
	}
	return ""
}
