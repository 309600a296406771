// Package config parses the command line into an AppConfig. Flags set on the
// command line take precedence over FIBCOMPARE_* environment variables, which
// take precedence over defaults.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/harness"
	"github.com/agbru/fibcompare/internal/logging"
)

// EnvPrefix prefixes every environment variable read by this package.
const EnvPrefix = "FIBCOMPARE_"

// Modes that are not engine names.
const (
	ModeTiming = "timing"
	ModeGraph  = "graph"
	ModeVerify = "verify"
	ModeTUI    = "tui"
)

// Defaults.
const (
	DefaultPow      = fibonacci.ExpSquaring
	DefaultLogLevel = "warn"
)

// AppConfig aggregates the parsed command line.
type AppConfig struct {
	// Mode is an engine name or one of the Mode* constants.
	Mode string
	// N is the Fibonacci index for single-index modes.
	N uint64
	// From, To and Step bound the graph and tui sweeps.
	From, To, Step uint64
	// Pow selects the float engine's exponentiation ("squaring" or "slow").
	Pow string
	// Precision overrides the float engine's precision policy when non-zero.
	Precision uint
	// Timeout bounds the whole run; zero means no limit.
	Timeout time.Duration
	// Quiet prints only the essential output.
	Quiet bool
	// Verbose prints full values in verify mode instead of truncating them.
	Verbose bool
	// Details adds memory statistics to timing and verify output.
	Details bool
	// Metrics dumps the Prometheus registry to stderr on exit.
	Metrics bool
	// LogLevel is the zerolog level name.
	LogLevel string
	// NoColor disables ANSI colors.
	NoColor bool
}

// ToCalculationOptions converts the configuration into engine options.
func (c AppConfig) ToCalculationOptions() fibonacci.Options {
	return fibonacci.Options{
		PrecisionBits:  c.Precision,
		Exponentiation: c.Pow,
	}
}

// SweepRange returns the configured graph range.
func (c AppConfig) SweepRange() harness.SweepRange {
	return harness.SweepRange{From: c.From, To: c.To, Step: c.Step}
}

// NeedsIndex reports whether the mode takes an <n> argument.
func (c AppConfig) NeedsIndex() bool {
	return c.Mode != ModeGraph && c.Mode != ModeTUI
}

// Validate checks the configuration against the available engine names.
func (c AppConfig) Validate(engines []string) error {
	if c.Timeout < 0 {
		return apperrors.NewConfigError("timeout cannot be negative: %s", c.Timeout)
	}
	if _, err := fibonacci.ExponentiatorFor(c.Pow); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return apperrors.NewConfigError("%v", err)
	}
	switch c.Mode {
	case ModeTiming, ModeVerify:
	case ModeGraph, ModeTUI:
		if err := c.SweepRange().Validate(); err != nil {
			return err
		}
	default:
		known := false
		for _, e := range engines {
			if e == c.Mode {
				known = true
				break
			}
		}
		if !known {
			return apperrors.NewConfigError("unsupported type %q. Supported types are: %s", c.Mode, strings.Join(engines, ", "))
		}
	}
	return nil
}

// ParseConfig parses args (without the program name).
//
// Positional arguments and flags may be interleaved: `fibcompare timing 5000
// --pow slow` and `fibcompare --pow slow timing 5000` are equivalent.
//
// Parameters:
//   - programName: The name used in usage and error messages.
//   - args: The command-line arguments.
//   - errorWriter: Where usage and parse errors are printed.
//   - engines: The registered engine names accepted as modes.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp when help was requested, a ConfigError otherwise.
func ParseConfig(programName string, args []string, errorWriter io.Writer, engines []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Pow, "pow", DefaultPow, "Exponentiation used by the float engine: squaring or slow.")
	fs.UintVar(&config.Precision, "precision", 0, "Float precision in bits (0 derives it from n).")
	fs.Uint64Var(&config.From, "from", harness.DefaultSweepFrom, "First index of the graph sweep.")
	fs.Uint64Var(&config.To, "to", harness.DefaultSweepTo, "Last index of the graph sweep.")
	fs.Uint64Var(&config.Step, "step", harness.DefaultSweepStep, "Distance between two graph indices.")
	fs.DurationVar(&config.Timeout, "timeout", 0, "Maximum execution time (0 for no limit).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.Verbose, "v", false, "Display full values in verify mode.")
	fs.BoolVar(&config.Details, "d", false, "Display memory statistics.")
	fs.BoolVar(&config.Details, "details", false, "Alias for -d.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Write Prometheus metrics to stderr on exit.")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error.")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")

	setCustomUsage(fs, engines)

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return AppConfig{}, err
	}

	applyEnvOverrides(&config, fs)

	if err := config.assignPositional(positional); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	config.Pow = strings.ToLower(config.Pow)
	if err := config.Validate(engines); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// parseInterleaved parses flags around positional arguments and returns the
// positional ones in order.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, apperrors.NewConfigError("%v", err)
		}
		rest = fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		rest = rest[1:]
	}
}

func (c *AppConfig) assignPositional(positional []string) error {
	if len(positional) == 0 {
		return apperrors.NewConfigError("missing mode")
	}
	c.Mode = strings.ToLower(positional[0])
	args := positional[1:]

	if !c.NeedsIndex() {
		if len(args) > 0 {
			return apperrors.NewConfigError("%s takes no index argument, got %q", c.Mode, args[0])
		}
		return nil
	}
	if len(args) != 1 {
		return apperrors.NewConfigError("%s expects exactly one index argument", c.Mode)
	}
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return apperrors.NewConfigError("input is not a number: %s", args[0])
	}
	c.N = n
	return nil
}
