// This file provides the REPL (Read-Eval-Print Loop) functionality
// for interactive sequence generation.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/seqcalc/internal/format"
	"github.com/agbru/seqcalc/internal/sequence"
	"github.com/agbru/seqcalc/internal/ui"
)

// REPL represents an interactive sequence generator session. The current
// request parameters persist across commands until changed.
type REPL struct {
	req     sequence.Request
	verbose bool
	in      io.Reader
	out     io.Writer
}

// NewREPL creates a new REPL instance seeded with the given request.
func NewREPL(req sequence.Request) *REPL {
	return &REPL{
		req: req,
		in:  os.Stdin,
		out: os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// SetVerbose enables the labeled term grid from the start of the session.
func (r *REPL) SetVerbose(verbose bool) {
	r.verbose = verbose
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorSuccess()+"seq> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorError(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorInfo(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %sSequence Generator - Interactive Mode%s                %s║%s\n",
		ui.ColorInfo(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorInfo(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorInfo(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sgen [n]%s       - Generate the sequence (optionally set term count first)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %skind <name>%s   - Set sequence kind (arithmetic, geometric)\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sfirst <x>%s     - Set the first term\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstep <x>%s      - Set the common difference or ratio\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sn <count>%s     - Set the number of terms (%d-%d)\n", ui.ColorWarning(), ui.ColorReset(), sequence.MinTerms, sequence.MaxTerms)
	fmt.Fprintf(r.out, "  %sverbose%s       - Toggle the labeled term grid\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current parameters\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorWarning(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s   - Exit interactive mode\n", ui.ColorWarning(), ui.ColorReset(), ui.ColorWarning(), ui.ColorReset())
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "gen", "g", "generate":
		r.cmdGen(args)
	case "kind", "k":
		r.cmdKind(args)
	case "first", "a":
		r.cmdFirst(args)
	case "step", "d", "ratio":
		r.cmdStep(args)
	case "n", "count":
		r.cmdCount(args)
	case "verbose", "v":
		r.cmdVerbose()
	case "status", "st", "show":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorSuccess(), ui.ColorReset())
		return false
	default:
		// Try to interpret as a term count for quick generation
		if n, err := strconv.Atoi(cmd); err == nil {
			r.req.NumTerms = n
			r.generate()
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorError(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorWarning(), ui.ColorReset())
		}
	}

	return true
}

// cmdGen handles the "gen" command.
func (r *REPL) cmdGen(args []string) {
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintf(r.out, "%sInvalid term count: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
			return
		}
		r.req.NumTerms = n
	}
	r.generate()
}

// generate runs one evaluation with the current parameters and displays the
// result.
func (r *REPL) generate() {
	if err := r.req.Validate(); err != nil {
		DisplayValidationError(r.out, err)
		return
	}

	start := time.Now()
	res, err := sequence.Evaluate(r.req)
	duration := time.Since(start)

	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}

	fmt.Fprintln(r.out)
	DisplayResult(r.out, res, duration, OutputConfig{Verbose: r.verbose})
	fmt.Fprintln(r.out)
}

// cmdKind handles the "kind" command.
func (r *REPL) cmdKind(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: kind <arithmetic|geometric>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	kind, err := sequence.ParseKind(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorError(), err, ui.ColorReset())
		return
	}

	r.req.Kind = kind
	fmt.Fprintf(r.out, "Kind changed to: %s%s%s\n", ui.ColorSuccess(), kind, ui.ColorReset())
}

// cmdFirst handles the "first" command.
func (r *REPL) cmdFirst(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: first <value>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}

	r.req.FirstTerm = x
	fmt.Fprintf(r.out, "First term set to: %s%s%s\n", ui.ColorSuccess(), format.Number(x), ui.ColorReset())
}

// cmdStep handles the "step" command.
func (r *REPL) cmdStep(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: step <value>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	x, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}

	r.req.Step = x
	fmt.Fprintf(r.out, "%s set to: %s%s%s\n",
		r.req.Kind.StepName(), ui.ColorSuccess(), format.Number(x), ui.ColorReset())
}

// cmdCount handles the "n" command.
func (r *REPL) cmdCount(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: n <count>%s\n", ui.ColorError(), ui.ColorReset())
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid term count: %s%s\n", ui.ColorError(), args[0], ui.ColorReset())
		return
	}

	r.req.NumTerms = n
	fmt.Fprintf(r.out, "Term count set to: %s%d%s\n", ui.ColorSuccess(), n, ui.ColorReset())
}

// cmdVerbose toggles the labeled term grid in generation output.
func (r *REPL) cmdVerbose() {
	r.verbose = !r.verbose
	status := "disabled"
	if r.verbose {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Term grid: %s%s%s\n", ui.ColorSuccess(), status, ui.ColorReset())
}

// cmdStatus displays the current request parameters.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent parameters:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Kind:        %s%s%s\n", ui.ColorInfo(), r.req.Kind, ui.ColorReset())
	fmt.Fprintf(r.out, "  First term:  %s%s%s\n", ui.ColorInfo(), format.Number(r.req.FirstTerm), ui.ColorReset())
	stepLabel := "Difference:"
	if r.req.Kind == sequence.Geometric {
		stepLabel = "Ratio:"
	}
	fmt.Fprintf(r.out, "  %-12s %s%s%s\n", stepLabel, ui.ColorInfo(), format.Number(r.req.Step), ui.ColorReset())
	fmt.Fprintf(r.out, "  Term count:  %s%d%s\n", ui.ColorInfo(), r.req.NumTerms, ui.ColorReset())
	fmt.Fprintln(r.out)
}
