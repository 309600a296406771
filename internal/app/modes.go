package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/agbru/fibcompare/internal/cli"
	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/harness"
	"github.com/agbru/fibcompare/internal/logging"
	"github.com/agbru/fibcompare/internal/metrics"
	"github.com/agbru/fibcompare/internal/orchestration"
	"github.com/agbru/fibcompare/internal/tui"
)

// runEngine computes F(n) with the engine named by the mode and prints
// "fib(n) = value".
func (a *Application) runEngine(ctx context.Context, out io.Writer) int {
	calc, err := a.Factory.Get(a.Config.Mode)
	if err != nil {
		return a.handleError(apperrors.NewConfigError("%v", err))
	}

	mc := metrics.NewMemoryCollector()
	before := mc.Snapshot()

	results := orchestration.ExecuteCalculations(ctx, []fibonacci.Calculator{calc},
		a.Config.N, a.Config.ToCalculationOptions(), a.progressReporter(), a.ErrWriter)
	res := results[0]
	if res.Err != nil {
		return apperrors.HandleCalculationError(res.Err, res.Duration, a.ErrWriter, nil)
	}
	a.Logger.Debug("calculation finished",
		logging.String("engine", res.Name),
		logging.Uint64("n", a.Config.N),
		logging.Int64("duration_us", res.Duration.Microseconds()))

	if !a.Config.Details {
		cli.DisplayFib(out, a.Config.N, res.Result.String())
		return apperrors.ExitSuccess
	}
	cli.DisplayResult(res.Result, a.Config.N, res.Duration, true, true, out)
	cli.DisplayMemoryStats(mc.Snapshot().Since(before), out)
	return apperrors.ExitSuccess
}

// runTiming compares the integer and float methods once and prints their
// tick counts.
func (a *Application) runTiming(ctx context.Context, out io.Writer) int {
	h, err := a.newHarness()
	if err != nil {
		return a.handleError(err)
	}
	mc := metrics.NewMemoryCollector()
	before := mc.Snapshot()

	cli.DisplayTimingHeader(out, a.Config.N)
	c, err := h.Compare(ctx, a.Config.N)
	if err != nil {
		return a.reportHarnessError(err)
	}
	cli.DisplayTiming(out, c, a.Config.Details)
	if a.Config.Details {
		cli.DisplayMemoryStats(mc.Snapshot().Since(before), out)
	}
	return apperrors.ExitSuccess
}

// runGraph sweeps the configured range and prints one TSV row per index. The
// first mismatch stops the table and is reported on the error stream.
func (a *Application) runGraph(ctx context.Context, out io.Writer) int {
	h, err := a.newHarness()
	if err != nil {
		return a.handleError(err)
	}
	w := harness.NewTSVWriter(out)
	if err := w.WriteHeader(); err != nil {
		return a.handleError(err)
	}
	if err := h.Sweep(ctx, a.Config.SweepRange(), w.WriteRow); err != nil {
		return a.reportHarnessError(err)
	}
	return apperrors.ExitSuccess
}

// reportHarnessError prints the classic mismatch diagnostic for mismatches
// and a status line for everything else.
func (a *Application) reportHarnessError(err error) int {
	var mismatch *apperrors.MismatchError
	if errors.As(err, &mismatch) {
		cli.DisplayMismatch(a.ErrWriter, a.ProgramName, mismatch.N)
		return apperrors.ExitErrorMismatch
	}
	return a.handleError(err)
}

// runVerify runs every registered engine on n concurrently and checks that
// they agree.
func (a *Application) runVerify(ctx context.Context, out io.Writer) int {
	calcs := orchestration.GetCalculatorsToRun(a.Config.N, a.Factory)
	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(calcs, out)
	}

	mc := metrics.NewMemoryCollector()
	before := mc.Snapshot()
	start := time.Now()

	results := orchestration.ExecuteCalculations(ctx, calcs, a.Config.N,
		a.Config.ToCalculationOptions(), a.progressReporter(), a.ErrWriter)

	report := out
	if a.Config.Quiet {
		report = io.Discard
	}
	presenter := cli.CLIResultPresenter{}
	code := orchestration.AnalyzeComparisonResults(results,
		orchestration.PresentationOptions{N: a.Config.N, Verbose: a.Config.Verbose, Details: a.Config.Details},
		presenter, presenter, report)

	a.Logger.Info("verification finished",
		logging.Uint64("n", a.Config.N),
		logging.Int("engines", len(calcs)),
		logging.Int("exit_code", code),
		logging.Int64("duration_ms", time.Since(start).Milliseconds()))

	if a.Config.Quiet && code == apperrors.ExitSuccess {
		for _, r := range results {
			if r.Err == nil {
				cli.DisplayFib(out, a.Config.N, r.Result.String())
				break
			}
		}
	}
	if a.Config.Details && !a.Config.Quiet {
		cli.DisplayMemoryStats(mc.Snapshot().Since(before), out)
	}
	return code
}

// runTUI launches the live sweep dashboard.
func (a *Application) runTUI(ctx context.Context) int {
	h, err := a.newHarness()
	if err != nil {
		return a.handleError(err)
	}
	return tui.Run(ctx, h, a.Config.SweepRange())
}

// progressReporter returns the spinner unless quiet mode is on. The spinner
// draws on the error stream so stdout stays machine-readable, and it stays
// silent when that stream is not a terminal.
func (a *Application) progressReporter() orchestration.ProgressReporter {
	if a.Config.Quiet {
		return orchestration.NullProgressReporter{}
	}
	return cli.CLIProgressReporter{}
}
