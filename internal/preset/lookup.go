package preset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Lookup resolves a preset name, tolerating small typos. A near miss is
// still an error, but the message carries a suggestion.
func Lookup(name string) (Grammar, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Grammar{}, fmt.Errorf("preset name must not be empty")
	}

	all := Builtin()
	for _, g := range all {
		if g.Name == n {
			return g, nil
		}
	}

	if suggestion := closest(n, all); suggestion != "" {
		return Grammar{}, fmt.Errorf("unknown preset %q (did you mean %q?)", name, suggestion)
	}
	return Grammar{}, fmt.Errorf("unknown preset %q", name)
}

// Names returns the builtin preset names, sorted.
func Names() []string {
	all := Builtin()
	names := make([]string, 0, len(all))
	for _, g := range all {
		names = append(names, g.Name)
	}
	sort.Strings(names)
	return names
}

func closest(name string, all []Grammar) string {
	best := ""
	bestDist := 0
	for _, g := range all {
		dist := levenshtein.ComputeDistance(name, g.Name)
		if dist > distanceLimit(len(g.Name)) {
			continue
		}
		if best == "" || dist < bestDist {
			best = g.Name
			bestDist = dist
		}
	}
	return best
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 7:
		return 2
	default:
		return 3
	}
}
