package lsystem

import (
	"math"
	"testing"
)

func TestSamplerRejectsBadWeights(t *testing.T) {
	for _, weight := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		var s sampler
		if err := s.add([]byte("M"), weight); err == nil {
			t.Fatalf("expected error for weight %v", weight)
		}
	}
}

func TestSamplerEmptyPickReturnsNil(t *testing.T) {
	var s sampler
	if got := s.pick(newRNG(1)); got != nil {
		t.Fatalf("empty sampler pick=%q want nil", string(got))
	}
}

func TestSamplerSingleEntryAlwaysWins(t *testing.T) {
	var s sampler
	if err := s.add([]byte("MA"), 5); err != nil {
		t.Fatalf("add: %v", err)
	}
	rng := newRNG(3)
	for i := 0; i < 1000; i++ {
		if got := string(s.pick(rng)); got != "MA" {
			t.Fatalf("pick=%q want MA", got)
		}
	}
}

func TestSamplerDistribution(t *testing.T) {
	var s sampler
	if err := s.add([]byte("A"), 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := s.add([]byte("B"), 3); err != nil {
		t.Fatalf("add: %v", err)
	}

	rng := newRNG(42)
	const draws = 20000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[string(s.pick(rng))]++
	}
	if counts["A"]+counts["B"] != draws {
		t.Fatalf("unexpected picks: %v", counts)
	}
	fraction := float64(counts["B"]) / draws
	if fraction < 0.73 || fraction > 0.77 {
		t.Fatalf("B fraction=%v want ~0.75 for weights 1:3", fraction)
	}
}
