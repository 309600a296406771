package orchestration

import (
	"context"
	"io"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/agbru/fibcompare/internal/fibonacci"
)

// floodingCalculator sends far more updates than the channel buffer holds.
type floodingCalculator struct{}

func (floodingCalculator) Name() string { return "flood" }

func (floodingCalculator) Calculate(_ context.Context, progressChan chan<- fibonacci.ProgressUpdate, calcIndex int, _ uint64, _ fibonacci.Options) (*big.Int, error) {
	for i := 0; i < 1000; i++ {
		progressChan <- fibonacci.ProgressUpdate{CalculatorIndex: calcIndex, Value: float64(i) / 1000}
	}
	return big.NewInt(1), nil
}

// A slow consumer must not deadlock producers that block on the channel.
func TestExecuteCalculationsSlowReporterDoesNotDeadlock(t *testing.T) {
	t.Parallel()
	slow := ProgressReporterFunc(func(wg *sync.WaitGroup, ch <-chan fibonacci.ProgressUpdate, _ int, _ io.Writer) {
		defer wg.Done()
		for range ch {
			time.Sleep(10 * time.Microsecond)
		}
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		calcs := []fibonacci.Calculator{floodingCalculator{}, floodingCalculator{}}
		ExecuteCalculations(context.Background(), calcs, 1, fibonacci.Options{}, slow, io.Discard)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("ExecuteCalculations deadlocked")
	}
}

// Canceling the context unblocks long-running engines.
func TestExecuteCalculationsCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	calcs := []fibonacci.Calculator{&fakeCalculator{name: "hang", delay: time.Hour}}

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	results := ExecuteCalculations(ctx, calcs, 1, fibonacci.Options{}, NullProgressReporter{}, io.Discard)
	if results[0].Err == nil {
		t.Fatal("expected cancellation error")
	}
}
