// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayValidationError].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteResultToFile].
//
//   - Print* functions write informational banners to an [io.Writer].
//     Examples: [PrintExecutionConfig].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/agbru/seqcalc/internal/format"
	"github.com/agbru/seqcalc/internal/sequence"
	"github.com/agbru/seqcalc/internal/ui"
)

// TermsPerRow is the number of terms shown per row in the verbose term grid.
const TermsPerRow = 10

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet mode suppresses everything except the generated sequence.
	Quiet bool
	// Verbose adds the labeled term grid.
	Verbose bool
}

// FormatQuietResult formats a result for quiet mode output.
// Returns the comma-joined sequence on a single line, suitable for scripting.
func FormatQuietResult(res sequence.Result) string {
	return format.Sequence(res.Terms)
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, res sequence.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayResult outputs a full result: success line, formula, optional term
// grid, the complete sequence, the summary values, and the sum formula.
//
// Parameters:
//   - out: The output writer.
//   - res: The evaluation result.
//   - duration: The generation duration.
//   - cfg: Output configuration.
func DisplayResult(out io.Writer, res sequence.Result, duration time.Duration, cfg OutputConfig) {
	if cfg.Quiet {
		DisplayQuietResult(out, res)
		return
	}

	req := res.Request
	fmt.Fprintf(out, "%s✓ Generated %d %s terms%s in %s%s%s.\n",
		ui.ColorSuccess(), res.Summary.Count, req.Kind, ui.ColorReset(),
		ui.ColorInfo(), format.Duration(duration), ui.ColorReset())

	fmt.Fprintf(out, "\n%sFormula:%s %s\n", ui.ColorBold(), ui.ColorReset(), req.TermFormula())

	if cfg.Verbose {
		fmt.Fprintf(out, "\n%sTerms:%s\n", ui.ColorBold(), ui.ColorReset())
		displayTermGrid(out, res.Terms)
	}

	fmt.Fprintf(out, "\n%sSequence:%s [%s]\n", ui.ColorBold(), ui.ColorReset(), format.Sequence(res.Terms))

	fmt.Fprintf(out, "\n%sSummary:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  First term: %s%s%s\n", ui.ColorInfo(), format.Number(res.Summary.FirstTerm), ui.ColorReset())
	fmt.Fprintf(out, "  Last term:  %s%s%s\n", ui.ColorInfo(), format.Number(res.Summary.LastTerm), ui.ColorReset())
	fmt.Fprintf(out, "  Sum:        %s%s%s\n", ui.ColorInfo(), format.Number(res.Summary.Sum), ui.ColorReset())

	fmt.Fprintf(out, "\n%sSum formula:%s %s\n", ui.ColorBold(), ui.ColorReset(), req.SumFormula())
}

// displayTermGrid writes the terms in rows of TermsPerRow, each labeled with
// its one-based subscript.
func displayTermGrid(out io.Writer, terms []float64) {
	for start := 0; start < len(terms); start += TermsPerRow {
		end := start + TermsPerRow
		if end > len(terms) {
			end = len(terms)
		}
		for i := start; i < end; i++ {
			fmt.Fprintf(out, "  %s%-6s%s %s\n",
				ui.ColorSecondary(), format.TermLabel(i), ui.ColorReset(), format.Number(terms[i]))
		}
		if end < len(terms) {
			fmt.Fprintln(out)
		}
	}
}

// DisplayValidationError reports a pre-generation validation failure to the
// user in a consistent, colorized format.
func DisplayValidationError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s✗ %v%s\n", ui.ColorError(), err, ui.ColorReset())
}

// WriteResultToFile writes an evaluation result to a file with a commented
// header describing the request.
//
// Parameters:
//   - res: The evaluation result.
//   - duration: The generation duration.
//   - cfg: Output configuration; no-op when OutputFile is empty.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteResultToFile(res sequence.Result, duration time.Duration, cfg OutputConfig) error {
	if cfg.OutputFile == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(cfg.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	req := res.Request
	fmt.Fprintf(file, "# Sequence Generation Result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Kind: %s\n", req.Kind)
	fmt.Fprintf(file, "# First term: %s\n", format.Number(req.FirstTerm))
	fmt.Fprintf(file, "# %s: %s\n", req.Kind.StepName(), format.Number(req.Step))
	fmt.Fprintf(file, "# Terms: %d\n", res.Summary.Count)
	fmt.Fprintf(file, "# Sum: %s\n", format.Number(res.Summary.Sum))
	fmt.Fprintf(file, "# Duration: %s\n", duration)
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "%s\n", format.Sequence(res.Terms))

	return nil
}
