package parser

import (
	"math"
	"testing"
)

func TestRegistryMatchScores(t *testing.T) {
	r := DefaultRegistry()
	tests := []struct {
		in       string
		verb     string
		score    float64
		consumed int
	}{
		{in: "upgrade", verb: "upgrade", score: scoreExact, consumed: 1},
		{in: "train archer", verb: "recruit", score: scoreAlias, consumed: 1},
		{in: "stand down", verb: "stop", score: scoreAlias, consumed: 2},
		{in: "harv 10 20", verb: "harvest", score: scorePrefix, consumed: 1},
		{in: "upgrde", verb: "upgrade", score: scoreFuzzy - fuzzyEditCost, consumed: 1},
	}
	for _, tc := range tests {
		best, _ := r.match(tokenise(normaliseInput(tc.in)))
		if best.Canonical != tc.verb {
			t.Fatalf("%q: expected verb %q, got %q", tc.in, tc.verb, best.Canonical)
		}
		if math.Abs(best.Score-tc.score) > 1e-9 || best.Consumed != tc.consumed {
			t.Fatalf("%q: expected score %.2f consumed %d, got %.2f consumed %d", tc.in, tc.score, tc.consumed, best.Score, best.Consumed)
		}
	}
}

func TestRegistryMatchShortInputSkipsFuzzy(t *testing.T) {
	r := DefaultRegistry()
	best, alts := r.match([]string{"zz"})
	if best.Canonical != "" || len(alts) != 0 {
		t.Fatalf("expected no match for zz, got %+v %+v", best, alts)
	}
}

func TestMaxEdits(t *testing.T) {
	for length, want := range map[int]int{1: 1, 4: 1, 5: 2, 8: 2, 9: 3, 20: 3} {
		if got := maxEdits(length); got != want {
			t.Fatalf("maxEdits(%d): expected %d, got %d", length, want, got)
		}
	}
}
