// Package format provides display formatting helpers for sequence terms,
// summaries, and execution durations. All functions are pure and perform no I/O.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number formats a sequence term for display. Values that are exactly integral
// render without a fractional part ("42"); all other finite values render with
// exactly two decimal digits ("3.14"). Non-finite values produced by geometric
// overflow render as "NaN", "+Inf" or "-Inf".
//
// Parameters:
//   - x: The value to format.
//
// Returns:
//   - string: The formatted value.
func Number(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	if x == 0 {
		// Avoids rendering negative zero as "-0".
		return "0"
	}
	if x == math.Trunc(x) {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// Sequence formats a full sequence as a comma-and-space separated list of
// Number-formatted terms, suitable for copy-paste.
//
// Parameters:
//   - terms: The sequence terms in order.
//
// Returns:
//   - string: The joined display string, e.g. "1, 2.50, 4".
func Sequence(terms []float64) string {
	parts := make([]string, len(terms))
	for i, term := range terms {
		parts[i] = Number(term)
	}
	return strings.Join(parts, ", ")
}

// TermLabel returns the display label for the term at the given zero-based
// index, using the conventional one-based subscript ("a_1", "a_2", ...).
func TermLabel(i int) string {
	return fmt.Sprintf("a_%d", i+1)
}
