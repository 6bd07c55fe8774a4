package sequence

import (
	"strings"
	"testing"
)

func TestTermFormula(t *testing.T) {
	t.Parallel()

	t.Run("arithmetic", func(t *testing.T) {
		req := Request{Kind: Arithmetic, FirstTerm: 1, Step: 2, NumTerms: 5}
		got := req.TermFormula()
		want := "a_n = 1 + (n-1) × 2"
		if got != want {
			t.Errorf("TermFormula() = %q, want %q", got, want)
		}
	})

	t.Run("arithmetic with fractional parameters", func(t *testing.T) {
		req := Request{Kind: Arithmetic, FirstTerm: 0.5, Step: -1.25, NumTerms: 3}
		got := req.TermFormula()
		want := "a_n = 0.50 + (n-1) × -1.25"
		if got != want {
			t.Errorf("TermFormula() = %q, want %q", got, want)
		}
	})

	t.Run("geometric", func(t *testing.T) {
		req := Request{Kind: Geometric, FirstTerm: 3, Step: 2, NumTerms: 4}
		got := req.TermFormula()
		want := "a_n = 3 × 2^(n-1)"
		if got != want {
			t.Errorf("TermFormula() = %q, want %q", got, want)
		}
	})
}

func TestSumFormula(t *testing.T) {
	t.Parallel()

	t.Run("arithmetic", func(t *testing.T) {
		req := Request{Kind: Arithmetic, FirstTerm: 1, Step: 2, NumTerms: 5}
		got := req.SumFormula()
		want := "S_n = n/2 × (2a_1 + (n-1)d) = 5/2 × (2 × 1 + (5-1) × 2)"
		if got != want {
			t.Errorf("SumFormula() = %q, want %q", got, want)
		}
	})

	t.Run("geometric general ratio", func(t *testing.T) {
		req := Request{Kind: Geometric, FirstTerm: 1, Step: 2, NumTerms: 5}
		got := req.SumFormula()
		want := "S_n = a_1 × (1 - r^n)/(1 - r) = 1 × (1 - 2^5)/(1 - 2)"
		if got != want {
			t.Errorf("SumFormula() = %q, want %q", got, want)
		}
	})

	t.Run("geometric ratio one uses degenerate branch", func(t *testing.T) {
		req := Request{Kind: Geometric, FirstTerm: 3, Step: 1, NumTerms: 4}
		got := req.SumFormula()
		want := "S_n = n × a_1 = 4 × 3"
		if got != want {
			t.Errorf("SumFormula() = %q, want %q", got, want)
		}
		if strings.Contains(got, "(1 - ") {
			t.Errorf("ratio one must not use the general branch, got %q", got)
		}
	})
}
