// This file contains environment variable utilities for configuration override.

package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"
)

// isFlagSet checks if a flag was explicitly set on the command line.
// This is used to determine whether to apply environment variable overrides.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// isFlagSetAny checks if any of the specified flags were explicitly set.
// This is useful for aliased flags where either the short or long form may be used.
func isFlagSetAny(fs *flag.FlagSet, names ...string) bool {
	for _, name := range names {
		if isFlagSet(fs, name) {
			return true
		}
	}
	return false
}

// envSet reports whether the environment variable with the given key
// (prefixed with EnvPrefix) is set to a non-empty value.
func envSet(key string) bool {
	return os.Getenv(EnvPrefix+key) != ""
}

// envTarget bundles the override destinations: the config itself plus the raw
// kind name, which is parsed after overrides are applied.
type envTarget struct {
	cfg      *AppConfig
	kindName *string
}

// envOverride declares a single environment variable override.
// Each entry maps an env key (without the SEQCALC_ prefix) to the CLI flag
// name(s) it corresponds to and a function that applies the env value.
type envOverride struct {
	envKey string
	flags  []string
	apply  func(*envTarget, string)
}

// envOverrides is the declarative table of all environment variable overrides,
// grouped by value type (numeric, duration, string, bool).
var envOverrides = []envOverride{
	// Numeric overrides
	{"FIRST", []string{"first", "a"}, func(t *envTarget, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			t.cfg.FirstTerm = parsed
		}
	}},
	{"STEP", []string{"step", "d"}, func(t *envTarget, v string) {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			t.cfg.Step = parsed
		}
	}},
	{"N", []string{"n"}, func(t *envTarget, v string) {
		if parsed, err := strconv.Atoi(v); err == nil {
			t.cfg.NumTerms = parsed
		}
	}},

	// Duration overrides
	{"TIMEOUT", []string{"timeout"}, func(t *envTarget, v string) {
		if parsed, err := time.ParseDuration(v); err == nil {
			t.cfg.Timeout = parsed
		}
	}},

	// String overrides
	{"KIND", []string{"kind", "k"}, func(t *envTarget, v string) {
		*t.kindName = v
	}},
	{"OUTPUT", []string{"output", "o"}, func(t *envTarget, v string) {
		t.cfg.OutputFile = v
	}},
	{"ADDR", []string{"addr"}, func(t *envTarget, v string) {
		t.cfg.Addr = v
	}},
	{"COMPLETION", []string{"completion"}, func(t *envTarget, v string) {
		t.cfg.Completion = v
	}},

	// Boolean overrides
	{"QUIET", []string{"quiet", "q"}, func(t *envTarget, v string) {
		t.cfg.Quiet = parseBoolEnv(v, t.cfg.Quiet)
	}},
	{"VERBOSE", []string{"verbose", "v"}, func(t *envTarget, v string) {
		t.cfg.Verbose = parseBoolEnv(v, t.cfg.Verbose)
	}},
	{"REPL", []string{"repl", "i"}, func(t *envTarget, v string) {
		t.cfg.REPL = parseBoolEnv(v, t.cfg.REPL)
	}},
	{"TUI", []string{"tui"}, func(t *envTarget, v string) {
		t.cfg.TUI = parseBoolEnv(v, t.cfg.TUI)
	}},
	{"SERVE", []string{"serve"}, func(t *envTarget, v string) {
		t.cfg.Serve = parseBoolEnv(v, t.cfg.Serve)
	}},
	{"NO_COLOR", []string{"no-color"}, func(t *envTarget, v string) {
		t.cfg.NoColor = parseBoolEnv(v, t.cfg.NoColor)
	}},
}

// parseBoolEnv parses a boolean environment variable value.
// Accepts "true", "1", "yes" as true; "false", "0", "no" as false (case-insensitive).
// Returns defaultVal if the value is not recognized.
func parseBoolEnv(val string, defaultVal bool) bool {
	switch strings.ToLower(val) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	}
	return defaultVal
}

// applyEnvOverrides applies environment variable values to the configuration
// for any flags that were not explicitly set on the command line.
// This implements the priority: CLI flags > Environment variables > Defaults.
//
// Supported environment variables (all prefixed with SEQCALC_):
//   - KIND, FIRST, STEP, N, TIMEOUT, OUTPUT, ADDR, COMPLETION,
//     QUIET, VERBOSE, REPL, TUI, SERVE, NO_COLOR
func applyEnvOverrides(cfg *AppConfig, fs *flag.FlagSet, kindName *string) {
	target := &envTarget{cfg: cfg, kindName: kindName}
	for _, o := range envOverrides {
		if isFlagSetAny(fs, o.flags...) {
			continue
		}
		if val := os.Getenv(EnvPrefix + o.envKey); val != "" {
			o.apply(target, val)
		}
	}
}
