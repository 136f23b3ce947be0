package lsystem

import (
	"fmt"
	"math"
	"math/rand/v2"
)

type weightedEntry struct {
	repl   []byte
	weight float64
}

// sampler holds replacement candidates with positive finite weights and
// draws one with probability proportional to its weight.
type sampler struct {
	entries []weightedEntry
	total   float64
}

func (s *sampler) add(repl []byte, weight float64) error {
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("weight must be positive and finite, got %v", weight)
	}
	s.entries = append(s.entries, weightedEntry{repl: repl, weight: weight})
	s.total += weight
	return nil
}

// pick draws a uniform value in [0, total) and scans entries, subtracting
// each weight until the remainder goes negative. Rounding at the boundary
// falls to whichever entry the scan reaches first. Picking from an empty
// sampler yields nil, which callers treat as an empty replacement.
func (s *sampler) pick(rng *rand.Rand) []byte {
	remaining := rng.Float64() * s.total
	for _, e := range s.entries {
		remaining -= e.weight
		if remaining < 0 {
			return e.repl
		}
	}
	if n := len(s.entries); n > 0 {
		return s.entries[n-1].repl
	}
	return nil
}
