package sequence

import (
	"fmt"

	"github.com/agbru/seqcalc/internal/format"
)

// TermFormula renders the closed-form general term of the request as display
// text with the concrete parameters substituted. The text is purely
// descriptive; it plays no part in the computation.
//
// Arithmetic: "a_n = a1 + (n-1) × d".
// Geometric:  "a_n = a1 × r^(n-1)".
func (r Request) TermFormula() string {
	if r.Kind == Geometric {
		return fmt.Sprintf("a_n = %s × %s^(n-1)",
			format.Number(r.FirstTerm), format.Number(r.Step))
	}
	return fmt.Sprintf("a_n = %s + (n-1) × %s",
		format.Number(r.FirstTerm), format.Number(r.Step))
}

// SumFormula renders the closed-form partial sum of the request as display
// text with the concrete parameters substituted.
//
// Arithmetic: "S_n = n/2 × (2a_1 + (n-1)d)" with the instance spelled out.
// Geometric with ratio 1 uses the degenerate branch "S_n = n × a_1";
// otherwise "S_n = a_1 × (1 - r^n)/(1 - r)".
func (r Request) SumFormula() string {
	first := format.Number(r.FirstTerm)
	step := format.Number(r.Step)
	n := r.NumTerms

	if r.Kind == Geometric {
		if r.Step == 1 {
			return fmt.Sprintf("S_n = n × a_1 = %d × %s", n, first)
		}
		return fmt.Sprintf("S_n = a_1 × (1 - r^n)/(1 - r) = %s × (1 - %s^%d)/(1 - %s)",
			first, step, n, step)
	}
	return fmt.Sprintf("S_n = n/2 × (2a_1 + (n-1)d) = %d/2 × (2 × %s + (%d-1) × %s)",
		n, first, n, step)
}
