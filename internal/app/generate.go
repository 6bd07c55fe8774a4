package app

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/agbru/seqcalc/internal/cli"
	apperrors "github.com/agbru/seqcalc/internal/errors"
	"github.com/agbru/seqcalc/internal/sequence"
	"github.com/agbru/seqcalc/internal/tui"
	"github.com/agbru/seqcalc/internal/ui"
)

// runGenerate orchestrates one CLI generation: validate, evaluate, display,
// and optionally save the result.
func (a *Application) runGenerate(ctx context.Context, out io.Writer) int {
	// Setup lifecycle (timeout + signals)
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	req := a.Config.Request()
	if err := req.Validate(); err != nil {
		cli.DisplayValidationError(a.ErrWriter, err)
		return apperrors.ExitErrorValidation
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
	}

	if err := ctx.Err(); err != nil {
		return apperrors.ExitErrorCanceled
	}

	start := time.Now()
	res, err := sequence.Evaluate(req)
	duration := time.Since(start)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return apperrors.ExitCodeForError(err)
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
	}
	cli.DisplayResult(out, res, duration, outputCfg)

	if outputCfg.OutputFile != "" {
		if err := cli.WriteResultToFile(res, duration, outputCfg); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if !a.Config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorSuccess(), ui.ColorInfo(), outputCfg.OutputFile, ui.ColorReset())
		}
	}

	return apperrors.ExitSuccess
}

// runTUI launches the interactive terminal form.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	return tui.Run(ctx, a.Config.Request(), Version)
}
