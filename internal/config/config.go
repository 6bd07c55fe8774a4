// Package config handles command-line flag parsing and environment variable
// overrides for the sequence calculator. Priority: CLI flags > environment
// variables (SEQCALC_*) > defaults.
package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	apperrors "github.com/agbru/seqcalc/internal/errors"
	"github.com/agbru/seqcalc/internal/sequence"
)

// EnvPrefix is the prefix for all environment variable overrides.
const EnvPrefix = "SEQCALC_"

// DefaultTimeout bounds one CLI invocation. Generation itself completes in
// microseconds; the timeout exists for the lifecycle plumbing (signals,
// server shutdown) shared with the long-running modes.
const DefaultTimeout = 30 * time.Second

// DefaultAddr is the default listen address for server mode.
const DefaultAddr = ":8080"

// AppConfig holds the complete configuration of one application run.
type AppConfig struct {
	// Kind selects the sequence family to generate.
	Kind sequence.Kind
	// FirstTerm is the first term of the sequence (a_1).
	FirstTerm float64
	// Step is the common difference (arithmetic) or common ratio (geometric).
	Step float64
	// NumTerms is the number of terms to generate.
	NumTerms int
	// Timeout is the maximum duration of one invocation.
	Timeout time.Duration
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet suppresses everything except the generated sequence.
	Quiet bool
	// Verbose adds the labeled term grid to the output.
	Verbose bool
	// REPL starts the interactive read-eval-print loop.
	REPL bool
	// TUI starts the interactive terminal form.
	TUI bool
	// Serve starts the HTTP API server.
	Serve bool
	// Addr is the listen address for server mode.
	Addr string
	// NoColor disables ANSI color output.
	NoColor bool
	// Completion selects a shell to generate a completion script for.
	Completion string
}

// Request builds the engine request described by the configuration.
func (c AppConfig) Request() sequence.Request {
	return sequence.Request{
		Kind:      c.Kind,
		FirstTerm: c.FirstTerm,
		Step:      c.Step,
		NumTerms:  c.NumTerms,
	}
}

// ParseConfig parses command-line arguments into an AppConfig, applying
// environment variable overrides for flags not explicitly set.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments (without the program name).
//   - errWriter: The writer for usage and parse error output.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when -h/--help was requested, or a ConfigError for
//     invalid values.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{
		FirstTerm: sequence.DefaultFirstTerm,
		Step:      sequence.DefaultDifference,
		NumTerms:  sequence.DefaultNumTerms,
		Timeout:   DefaultTimeout,
		Addr:      DefaultAddr,
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() { printUsage(fs, programName) }

	var kindName string
	fs.StringVar(&kindName, "kind", sequence.Arithmetic.String(), "sequence kind: arithmetic or geometric")
	fs.StringVar(&kindName, "k", sequence.Arithmetic.String(), "shorthand for -kind")
	fs.Float64Var(&cfg.FirstTerm, "first", cfg.FirstTerm, "first term of the sequence (a_1)")
	fs.Float64Var(&cfg.FirstTerm, "a", cfg.FirstTerm, "shorthand for -first")
	fs.Float64Var(&cfg.Step, "step", cfg.Step, "common difference or common ratio (geometric default: 2)")
	fs.Float64Var(&cfg.Step, "d", cfg.Step, "shorthand for -step")
	fs.IntVar(&cfg.NumTerms, "n", cfg.NumTerms, fmt.Sprintf("number of terms to generate (%d-%d)", sequence.MinTerms, sequence.MaxTerms))
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "maximum execution time")
	fs.StringVar(&cfg.OutputFile, "output", "", "write the result to this file")
	fs.StringVar(&cfg.OutputFile, "o", "", "shorthand for -output")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "print only the generated sequence")
	fs.BoolVar(&cfg.Quiet, "q", false, "shorthand for -quiet")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "include the labeled term grid")
	fs.BoolVar(&cfg.Verbose, "v", false, "shorthand for -verbose")
	fs.BoolVar(&cfg.REPL, "repl", false, "start the interactive REPL")
	fs.BoolVar(&cfg.REPL, "i", false, "shorthand for -repl")
	fs.BoolVar(&cfg.TUI, "tui", false, "start the interactive terminal form")
	fs.BoolVar(&cfg.Serve, "serve", false, "start the HTTP API server")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address for -serve")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "disable colored output")
	fs.StringVar(&cfg.Completion, "completion", "", "generate a completion script: bash, zsh, fish or powershell")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs, &kindName)

	kind, err := sequence.ParseKind(kindName)
	if err != nil {
		return AppConfig{}, err
	}
	cfg.Kind = kind

	// Geometric sequences default to a ratio of 2. Applied only when
	// neither the flag nor the env variable set a step.
	if cfg.Kind == sequence.Geometric && !isFlagSetAny(fs, "step", "d") && !envSet("STEP") {
		cfg.Step = sequence.DefaultRatio
	}

	return cfg, nil
}

// printUsage writes the flag summary grouped by concern.
func printUsage(fs *flag.FlagSet, programName string) {
	out := fs.Output()
	fmt.Fprintf(out, "Usage: %s [options]\n\n", programName)
	fmt.Fprintf(out, "Generate arithmetic or geometric sequences and their summaries.\n\n")
	fmt.Fprintf(out, "Options:\n")
	fs.PrintDefaults()
	fmt.Fprintf(out, "\nEnvironment variables prefixed with %s override unset flags\n", EnvPrefix)
	fmt.Fprintf(out, "(e.g. %sKIND, %sN, %sADDR).\n", EnvPrefix, EnvPrefix, EnvPrefix)
}
