package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/fibonacci"
)

// ProgressBufferMultiplier sizes the progress channel per calculator so slow
// displays rarely cause dropped updates.
const ProgressBufferMultiplier = 5

// ExecuteCalculations runs every calculator on n concurrently and returns one
// result per calculator, in input order. Engines share no mutable state, so
// running them side by side is safe; a failing engine does not cancel the
// others.
//
// Parameters:
//   - ctx: The context for managing cancellation and deadlines.
//   - calculators: The engines to execute.
//   - n: The Fibonacci index.
//   - opts: Engine options.
//   - progressReporter: The progress display (NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []CalculationResult: The result of each calculation.
func ExecuteCalculations(ctx context.Context, calculators []fibonacci.Calculator, n uint64, opts fibonacci.Options, progressReporter ProgressReporter, out io.Writer) []CalculationResult {
	var g errgroup.Group
	results := make([]CalculationResult, len(calculators))
	progressChan := make(chan fibonacci.ProgressUpdate, len(calculators)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(calculators), out)

	for i, calc := range calculators {
		g.Go(func() error {
			start := time.Now()
			res, err := calc.Calculate(ctx, progressChan, i, n, opts)
			results[i] = CalculationResult{
				Name: calc.Name(), Result: res, Duration: time.Since(start), Err: err,
			}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// AnalyzeComparisonResults sorts results by duration (successes first),
// checks that every successful engine produced the same value and presents
// the outcome. It returns the process exit code.
//
// A disagreement between engines is reported as an *apperrors.MismatchError
// through handler, naming the first two engines that disagree.
func AnalyzeComparisonResults(results []CalculationResult, opts PresentationOptions, presenter ResultPresenter, handler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var reference *CalculationResult
	var firstError error
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = apperrors.CalculationError{Engine: results[i].Name, Cause: results[i].Err}
			}
			continue
		}
		if reference == nil {
			reference = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if reference == nil {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No engine could complete the calculation.\n")
		return handler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && res.Result.Cmp(reference.Result) != 0 {
			fmt.Fprintf(out, "\nGlobal Status: Failure. %s and %s disagree.\n", reference.Name, res.Name)
			return handler.HandleError(&apperrors.MismatchError{
				N:         opts.N,
				IntText:   reference.Result.String(),
				FloatText: res.Result.String(),
			}, 0, out)
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*reference, opts, out)
	return apperrors.ExitSuccess
}
