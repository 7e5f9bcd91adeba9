// Package config parses command-line flags and environment overrides into
// the application configuration.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"

	apperrors "github.com/agbru/accumcalc/internal/errors"
)

// EnvPrefix is prepended to every environment override key.
const EnvPrefix = "ACCUMCALC_"

// Defaults applied before flags and environment overrides.
const (
	DefaultStrategy = "sequential"
	DefaultRounds   = 1
	DefaultBuffer   = 64
	DefaultTheme    = "dark"
)

// Themes lists the accepted -theme values.
var Themes = []string{"dark", "light"}

// AppConfig is the resolved configuration of one invocation.
type AppConfig struct {
	// Paths are the input files, in argument order.
	Paths []string
	// Strategy selects the runner when Bench is false.
	Strategy string
	// Bench runs every strategy through the benchmark harness.
	Bench bool
	// Rounds is the number of harness repetitions per strategy.
	Rounds int
	// Buffer is the channel runner's operation channel capacity.
	Buffer int
	// Quiet prints only the final value and disables the spinner.
	Quiet bool
	// Verbose enables debug logging.
	Verbose bool
	// NoColor disables colored output.
	NoColor bool
	// Theme selects the color palette when colors are enabled.
	Theme string
	// MetricsOut, when set, receives the Prometheus text exposition.
	MetricsOut string
	// Completion, when set, prints a completion script for that shell.
	Completion string
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Precedence is flag > environment > default.
//
// Parameters:
//   - programName: Used in usage output.
//   - args: The command-line arguments after the program name.
//   - errWriter: Receives usage and flag errors.
//   - strategies: The strategy tags the runner factory accepts.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp for -h, or a ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer, strategies []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.Strategy, "strategy", DefaultStrategy, fmt.Sprintf("Runner strategy %v.", strategies))
	fs.BoolVar(&cfg.Bench, "bench", false, "Time every strategy over the same files and print a comparison.")
	fs.IntVar(&cfg.Rounds, "rounds", DefaultRounds, "Benchmark rounds per strategy.")
	fs.IntVar(&cfg.Buffer, "buffer", DefaultBuffer, "Channel capacity for the channel strategy (0 = unbuffered).")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only the final value.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for -quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Enable debug logging.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for -verbose.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.Theme, "theme", DefaultTheme, fmt.Sprintf("Color theme %v.", Themes))
	fs.StringVar(&cfg.MetricsOut, "metrics-out", "", "Write Prometheus metrics to this file after the run.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish).")

	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags] FILE...\n\n", programName)
		fmt.Fprintf(errWriter, "Applies the operations in each FILE to an 8-bit accumulator and prints the final value.\n")
		fmt.Fprintf(errWriter, "Flags must come before the first FILE; use -- to pass a FILE whose name starts with '-'.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	applyEnvOverrides(&cfg, fs)
	cfg.Paths = fs.Args()

	if err := cfg.Validate(strategies); err != nil {
		fmt.Fprintln(errWriter, err)
		return AppConfig{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and the strategy name.
func (c AppConfig) Validate(strategies []string) error {
	if !c.Bench && !slices.Contains(strategies, c.Strategy) {
		return apperrors.NewConfigError("unknown strategy %q (available: %v)", c.Strategy, strategies)
	}
	if c.Rounds < 1 {
		return apperrors.ValidationError{Field: "rounds", Message: "must be at least 1"}
	}
	if !slices.Contains(Themes, c.Theme) {
		return apperrors.ValidationError{Field: "theme", Message: fmt.Sprintf("must be one of %v", Themes)}
	}
	if c.Buffer < 0 {
		return apperrors.ValidationError{Field: "buffer", Message: "must not be negative"}
	}
	return nil
}
