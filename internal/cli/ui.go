//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/format"
	"github.com/agbru/fibcompare/internal/orchestration"
	"github.com/agbru/fibcompare/internal/ui"
)

const (
	// TruncationLimit is the digit threshold from which a result is truncated
	// in standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of digits to display at the beginning
	// and end of a truncated number.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without a real terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

// UpdateSuffix sets the suffix under the spinner's lock, since the animation
// goroutine reads it concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with an aggregated progress bar and ETA
// until progressChan is closed. It calls wg.Done before returning.
//
// Parameters:
//   - wg: The WaitGroup signalled when the display has finished.
//   - progressChan: The channel receiving engine progress updates.
//   - numCalculators: The number of engines reporting on the channel.
//   - out: The writer the spinner draws on.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan fibonacci.ProgressUpdate, numCalculators int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numCalculators)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(0, 0))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last orchestration.AggregatedProgress
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(progressSuffix(1, 0))
				s.Stop()
				return
			}
			last = agg.Update(update)
		case <-ticker.C:
			s.UpdateSuffix(progressSuffix(last.AverageProgress, last.ETA))
		}
	}
}

func progressSuffix(progress float64, eta time.Duration) string {
	return " " + format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth)
}

// DisplayResult prints a computed value with optional details.
//
// Parameters:
//   - result: The computed Fibonacci number.
//   - n: Its index.
//   - duration: The wall time of the calculation.
//   - verbose: Print every digit instead of a truncated value.
//   - details: Print size and timing details.
//   - out: The destination writer.
func DisplayResult(result *big.Int, n uint64, duration time.Duration, verbose, details bool, out io.Writer) {
	th := ui.GetCurrentTheme()
	text := result.String()

	if details {
		fmt.Fprintf(out, "\n%sDetailed result analysis%s\n", th.Bold, th.Reset)
		fmt.Fprintf(out, "  Calculation time:   %s%s%s\n", th.Warning, format.FormatExecutionDuration(duration), th.Reset)
		fmt.Fprintf(out, "  Result binary size: %s bits\n", format.FormatNumberString(strconv.Itoa(result.BitLen())))
		fmt.Fprintf(out, "  Number of digits:   %s\n", format.FormatNumberString(strconv.Itoa(len(text))))
	}

	if !verbose && len(text) > TruncationLimit {
		fmt.Fprintf(out, "%s (truncated)\n", FormatFibLine(n, format.TruncateDigits(text, DisplayEdges)))
		fmt.Fprintf(out, "%sTip: use --verbose to print all %d digits.%s\n", th.Secondary, len(text), th.Reset)
		return
	}
	fmt.Fprintln(out, FormatFibLine(n, text))
}
