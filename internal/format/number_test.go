package format

import (
	"math"
	"strconv"
	"testing"
)

func TestNumber(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		x    float64
		want string
	}{
		{"positive integer", 5, "5"},
		{"negative integer", -12, "-12"},
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "0"},
		{"two decimals", 2.5, "2.50"},
		{"rounded to two decimals", 1.0 / 3.0, "0.33"},
		{"negative fraction", -0.126, "-0.13"},
		{"large integral value", 1e21, "1000000000000000000000"},
		{"positive infinity", math.Inf(1), "+Inf"},
		{"negative infinity", math.Inf(-1), "-Inf"},
		{"not a number", math.NaN(), "NaN"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Number(tc.x); got != tc.want {
				t.Errorf("Number(%v) = %q, want %q", tc.x, got, tc.want)
			}
		})
	}
}

// TestNumber_RoundTrip verifies that a formatted value parses back to the
// original within the two-decimal rounding tolerance.
func TestNumber_RoundTrip(t *testing.T) {
	t.Parallel()

	values := []float64{0, 1, -1, 2.5, 3.14159, -273.15, 10, 1e6, 0.005}
	for _, x := range values {
		got := Number(x)
		parsed, err := strconv.ParseFloat(got, 64)
		if err != nil {
			t.Fatalf("Number(%v) = %q is not parseable: %v", x, got, err)
		}
		if math.Abs(parsed-x) > 0.005 {
			t.Errorf("round-trip of %v through %q lost precision: got %v", x, got, parsed)
		}
	}
}

func TestSequence(t *testing.T) {
	t.Parallel()

	t.Run("mixed integral and fractional terms", func(t *testing.T) {
		got := Sequence([]float64{1, 2.5, 4})
		want := "1, 2.50, 4"
		if got != want {
			t.Errorf("Sequence() = %q, want %q", got, want)
		}
	})

	t.Run("single term", func(t *testing.T) {
		if got := Sequence([]float64{7}); got != "7" {
			t.Errorf("Sequence() = %q, want %q", got, "7")
		}
	})

	t.Run("empty sequence", func(t *testing.T) {
		if got := Sequence(nil); got != "" {
			t.Errorf("Sequence(nil) = %q, want empty string", got)
		}
	})
}

func TestTermLabel(t *testing.T) {
	t.Parallel()

	if got := TermLabel(0); got != "a_1" {
		t.Errorf("TermLabel(0) = %q, want %q", got, "a_1")
	}
	if got := TermLabel(9); got != "a_10" {
		t.Errorf("TermLabel(9) = %q, want %q", got, "a_10")
	}
}
