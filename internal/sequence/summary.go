package sequence

import "errors"

// ErrEmptySequence is returned by Summarize for a zero-length sequence.
// Upstream validation guarantees at least MinTerms terms, so callers going
// through Generate or Evaluate never observe it.
var ErrEmptySequence = errors.New("sequence is empty")

// Summary holds the derived values of one generated sequence. It is recomputed
// on every request and never cached.
type Summary struct {
	// FirstTerm is the first element of the sequence.
	FirstTerm float64
	// LastTerm is the final element of the sequence.
	LastTerm float64
	// Sum is the arithmetic total of all elements.
	Sum float64
	// Count is the number of elements.
	Count int
}

// Summarize computes the summary of a generated sequence.
// The sum accumulates left-to-right so floating-point rounding is reproducible
// across runs.
//
// Parameters:
//   - terms: The sequence terms in order.
//
// Returns:
//   - Summary: The derived summary values.
//   - error: ErrEmptySequence when terms is empty.
func Summarize(terms []float64) (Summary, error) {
	if len(terms) == 0 {
		return Summary{}, ErrEmptySequence
	}
	var sum float64
	for _, term := range terms {
		sum += term
	}
	return Summary{
		FirstTerm: terms[0],
		LastTerm:  terms[len(terms)-1],
		Sum:       sum,
		Count:     len(terms),
	}, nil
}
