package sequence

import (
	"fmt"
	"math"
	"strings"

	apperrors "github.com/agbru/seqcalc/internal/errors"
)

// Term count bounds enforced before any generation runs.
const (
	// MinTerms is the smallest accepted term count.
	MinTerms = 1
	// MaxTerms is the largest accepted term count.
	MaxTerms = 1000
)

// Default request parameters, matching the values the input form pre-fills.
const (
	DefaultFirstTerm  = 1.0
	DefaultDifference = 1.0
	DefaultRatio      = 2.0
	DefaultNumTerms   = 10
)

// Kind identifies the sequence family to generate.
type Kind int

const (
	// Arithmetic generates terms with a constant additive step:
	// term(i) = first + i*step.
	Arithmetic Kind = iota
	// Geometric generates terms with a constant multiplicative step:
	// term(i) = first * step^i.
	Geometric
)

// Kinds returns all supported sequence kinds in display order.
func Kinds() []Kind {
	return []Kind{Arithmetic, Geometric}
}

// String returns the lowercase name of the kind ("arithmetic", "geometric").
func (k Kind) String() string {
	switch k {
	case Arithmetic:
		return "arithmetic"
	case Geometric:
		return "geometric"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// StepName returns the conventional name of the step parameter for this kind:
// "common difference" for arithmetic, "common ratio" for geometric.
func (k Kind) StepName() string {
	if k == Geometric {
		return "common ratio"
	}
	return "common difference"
}

// ParseKind parses a kind name (case-insensitive). Accepted values are
// "arithmetic" and "geometric", plus the single-letter shorthands "a" and "g".
//
// Returns:
//   - Kind: The parsed kind.
//   - error: A ConfigError when the name is not recognized.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "arithmetic", "a":
		return Arithmetic, nil
	case "geometric", "g":
		return Geometric, nil
	default:
		return Arithmetic, apperrors.NewConfigError(
			"unknown sequence kind %q (accepted values: arithmetic, geometric)", s)
	}
}

// Request describes one sequence evaluation. Step is the common difference for
// arithmetic requests and the common ratio for geometric requests.
type Request struct {
	Kind      Kind
	FirstTerm float64
	Step      float64
	NumTerms  int
}

// Validate checks the request bounds before generation is attempted.
// A violation is reported as a ValidationError and generation must not run.
//
// Returns:
//   - error: nil when the request is valid.
func (r Request) Validate() error {
	if r.Kind != Arithmetic && r.Kind != Geometric {
		return apperrors.NewValidationError("kind", "unknown sequence kind %d", int(r.Kind))
	}
	if r.NumTerms < MinTerms {
		return apperrors.NewValidationError("num_terms", "must be a positive integer, got %d", r.NumTerms)
	}
	if r.NumTerms > MaxTerms {
		return apperrors.NewValidationError("num_terms", "cannot exceed %d, got %d", MaxTerms, r.NumTerms)
	}
	return nil
}

// GenerateArithmetic produces the arithmetic sequence
// first, first+diff, first+2*diff, ... of length n.
//
// Parameters:
//   - first: The first term of the sequence.
//   - diff: The common difference between consecutive terms.
//   - n: The number of terms to generate (must be >= 1).
//
// Returns:
//   - []float64: The generated terms, exactly n of them.
//   - error: A ValidationError when n < 1.
func GenerateArithmetic(first, diff float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, apperrors.NewValidationError("num_terms", "must be a positive integer, got %d", n)
	}
	terms := make([]float64, n)
	for i := range terms {
		terms[i] = first + float64(i)*diff
	}
	return terms, nil
}

// GenerateGeometric produces the geometric sequence
// first, first*ratio, first*ratio^2, ... of length n.
//
// Ratio zero and negative ratios follow natural IEEE 754 exponentiation
// semantics; negative ratios produce alternating-sign sequences. Overflow is
// not trapped: very large ratios propagate as ±Inf through generation and
// formatting.
//
// Parameters:
//   - first: The first term of the sequence.
//   - ratio: The common ratio between consecutive terms.
//   - n: The number of terms to generate (must be >= 1).
//
// Returns:
//   - []float64: The generated terms, exactly n of them.
//   - error: A ValidationError when n < 1.
func GenerateGeometric(first, ratio float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, apperrors.NewValidationError("num_terms", "must be a positive integer, got %d", n)
	}
	terms := make([]float64, n)
	for i := range terms {
		terms[i] = first * math.Pow(ratio, float64(i))
	}
	return terms, nil
}

// Generate validates the request and dispatches to the generator for its kind.
//
// Returns:
//   - []float64: The generated terms, exactly r.NumTerms of them.
//   - error: A ValidationError when the request bounds are violated.
func Generate(r Request) ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if r.Kind == Geometric {
		return GenerateGeometric(r.FirstTerm, r.Step, r.NumTerms)
	}
	return GenerateArithmetic(r.FirstTerm, r.Step, r.NumTerms)
}

// Result bundles everything one evaluation produces: the originating request,
// the ordered terms, and the derived summary. It is owned by the caller for
// the duration of one render and holds no shared state.
type Result struct {
	Request Request
	Terms   []float64
	Summary Summary
}

// Evaluate runs one full request through the engine: validation, generation,
// and summarization. A request either fully succeeds or reports a single
// error; there is no partial-success state.
//
// Returns:
//   - Result: The complete evaluation result.
//   - error: A ValidationError for bound violations, or a GenerationError for
//     unexpected engine faults.
func Evaluate(r Request) (Result, error) {
	terms, err := Generate(r)
	if err != nil {
		return Result{}, err
	}
	summary, err := Summarize(terms)
	if err != nil {
		// Unreachable through validated paths; surfaced verbatim if it happens.
		return Result{}, apperrors.GenerationError{Cause: err}
	}
	return Result{Request: r, Terms: terms, Summary: summary}, nil
}
