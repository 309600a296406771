package orchestration

import (
	"io"
	"math/big"
	"sync"
	"time"

	"github.com/agbru/fibcompare/internal/fibonacci"
)

// CalculationResult encapsulates the outcome of a single engine run.
type CalculationResult struct {
	// Name is the display name of the engine.
	Name string
	// Result is the computed Fibonacci number. It is nil if an error occurred.
	Result *big.Int
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err contains any error that occurred during the calculation.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	N       uint64
	Verbose bool
	Details bool
}

// ProgressReporter displays calculation progress.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed and calls
	// wg.Done before returning.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer) {
	f(wg, progressChan, numCalculators, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter renders verification results.
type ResultPresenter interface {
	// PresentComparisonTable displays one line per engine.
	PresentComparisonTable(results []CalculationResult, out io.Writer)
	// PresentResult displays the agreed value.
	PresentResult(result CalculationResult, opts PresentationOptions, out io.Writer)
}

// ErrorHandler maps an error to an exit code, printing a status line.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
