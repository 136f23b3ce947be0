package lsystem

import (
	"strings"
	"testing"
)

func TestConstantRuleRoundTrip(t *testing.T) {
	lhs, r, err := parseRule("A = M[+A][-A]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lhs != 'A' {
		t.Fatalf("lhs=%q want A", string(lhs))
	}
	var tbl table
	if err := tbl.set(lhs, r); err != nil {
		t.Fatalf("set: %v", err)
	}
	rng := newRNG(7)
	for i := 0; i < 100; i++ {
		repl, ok := tbl.replacement('A', rng)
		if !ok {
			t.Fatalf("expected a rule for A")
		}
		if string(repl) != "M[+A][-A]" {
			t.Fatalf("replacement=%q want M[+A][-A]", string(repl))
		}
	}
}

func TestAssignmentGlyphs(t *testing.T) {
	for _, line := range []string{"A = M", "A -> M", "A <- M", "A=M", "A->M"} {
		lhs, r, err := parseRule(line)
		if err != nil {
			t.Fatalf("parse %q: %v", line, err)
		}
		if lhs != 'A' || string(r.constant) != "M" {
			t.Fatalf("parse %q: lhs=%q constant=%q", line, string(lhs), string(r.constant))
		}
	}
}

func TestBracketBalance(t *testing.T) {
	if _, _, err := parseRule("X = A[B]C"); err != nil {
		t.Fatalf("balanced brackets rejected: %v", err)
	}
	for _, line := range []string{"X = A[BC", "X = A]BC"} {
		_, _, err := parseRule(line)
		if err == nil {
			t.Fatalf("expected bracket error for %q", line)
		}
		if !strings.Contains(err.Error(), "unbalanced") {
			t.Fatalf("error for %q should name the unbalanced bracket, got: %v", line, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{line: "a = M", want: "uppercase"},
		{line: "A : M", want: "'='"},
		{line: "A = Mq", want: `"q"`},
		{line: "A = 1 M, N", want: "weight"},
		{line: "A = +(A)", want: "lowercase"},
		{line: "A = +(a", want: "unterminated"},
		{line: "A = +()", want: "lowercase"},
	}
	for _, tc := range tests {
		_, _, err := parseRule(tc.line)
		if err == nil {
			t.Fatalf("expected error for %q", tc.line)
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("error for %q should mention %s, got: %v", tc.line, tc.want, err)
		}
		if !strings.Contains(err.Error(), tc.line) {
			t.Fatalf("error for %q should carry the original line, got: %v", tc.line, err)
		}
	}
}

func TestWeightedRuleParsing(t *testing.T) {
	_, r, err := parseRule("A = 1 M[+A], 3 M[-A], 2 N")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.weighted == nil {
		t.Fatalf("expected a weighted rule")
	}
	if n := len(r.weighted.entries); n != 3 {
		t.Fatalf("entries=%d want 3", n)
	}
	if r.weighted.total != 6 {
		t.Fatalf("total=%v want 6", r.weighted.total)
	}
	if got := string(r.weighted.entries[1].repl); got != "M[-A]" {
		t.Fatalf("second replacement=%q want M[-A]", got)
	}
}

func TestZeroWeightRejected(t *testing.T) {
	if _, _, err := parseRule("A = 0 M"); err == nil {
		t.Fatalf("expected an error for weight 0")
	}
}

func TestParamBindingParses(t *testing.T) {
	_, r, err := parseRule("A = +(a)M(b)")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if string(r.constant) != "+(a)M(b)" {
		t.Fatalf("constant=%q want +(a)M(b)", string(r.constant))
	}
}

func TestWhitespaceInsignificant(t *testing.T) {
	_, r, err := parseRule("  A   =  M [ + A ] ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if string(r.constant) != "M[+A]" {
		t.Fatalf("constant=%q want M[+A]", string(r.constant))
	}
}

func TestDuplicateRuleRejected(t *testing.T) {
	var tbl table
	_, r, err := parseRule("A = M")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := tbl.set('A', r); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := tbl.set('A', r); err == nil {
		t.Fatalf("expected duplicate rule error")
	}
}
