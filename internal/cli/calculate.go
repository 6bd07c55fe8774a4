package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/seqcalc/internal/config"
	"github.com/agbru/seqcalc/internal/format"
	"github.com/agbru/seqcalc/internal/ui"
)

// PrintExecutionConfig displays the current execution configuration to the
// user. It shows the sequence kind, the request parameters, and environment
// details.
//
// Parameters:
//   - cfg: The application configuration.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Generating %s%d%s %s%s%s terms with first term %s%s%s and %s %s%s%s.\n",
		ui.ColorPrimary(), cfg.NumTerms, ui.ColorReset(),
		ui.ColorSuccess(), cfg.Kind, ui.ColorReset(),
		ui.ColorInfo(), format.Number(cfg.FirstTerm), ui.ColorReset(),
		cfg.Kind.StepName(),
		ui.ColorInfo(), format.Number(cfg.Step), ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorInfo(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorInfo(), runtime.Version(), ui.ColorReset())
	fmt.Fprintf(out, "\n")
}
