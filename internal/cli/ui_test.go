package cli

import (
	"bytes"
	"io"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/fibcompare/internal/cli/mocks"
	"github.com/agbru/fibcompare/internal/fibonacci"
	"github.com/agbru/fibcompare/internal/ui"
)

func TestDisplayResult(t *testing.T) {
	ui.InitTheme(true)

	tests := []struct {
		name     string
		result   *big.Int
		n        uint64
		verbose  bool
		details  bool
		contains []string
		absent   []string
	}{
		{
			name:     "plain",
			result:   big.NewInt(55),
			n:        10,
			contains: []string{"fib(10) = 55\n"},
			absent:   []string{"Detailed result analysis"},
		},
		{
			name:     "details",
			result:   big.NewInt(12345),
			n:        10,
			details:  true,
			contains: []string{"Detailed result analysis", "Calculation time", "Result binary size: 14 bits", "Number of digits:   5"},
		},
		{
			name:     "truncated",
			result:   new(big.Int).Exp(big.NewInt(10), big.NewInt(200), nil),
			n:        100,
			contains: []string{"(truncated)", "Tip: use --verbose", "..."},
		},
		{
			name:     "verbose prints every digit",
			result:   new(big.Int).Exp(big.NewInt(10), big.NewInt(200), nil),
			n:        100,
			verbose:  true,
			contains: []string{"1" + strings.Repeat("0", 200)},
			absent:   []string{"(truncated)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			DisplayResult(tt.result, tt.n, time.Millisecond, tt.verbose, tt.details, &buf)
			out := buf.String()
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output %q does not contain %q", out, s)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("output %q unexpectedly contains %q", out, s)
				}
			}
		})
	}
}

// TestDisplayProgress swaps the package-level spinner factory, so it must not
// run in parallel with other tests that do the same.
func TestDisplayProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockSpinner(ctrl)

	original := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return mock }
	t.Cleanup(func() { newSpinner = original })

	var final string
	mock.EXPECT().Start().Times(1)
	mock.EXPECT().Stop().Times(1)
	mock.EXPECT().UpdateSuffix(gomock.Any()).Do(func(s string) { final = s }).AnyTimes()

	ch := make(chan fibonacci.ProgressUpdate, 4)
	ch <- fibonacci.ProgressUpdate{CalculatorIndex: 0, Value: 0.5}
	ch <- fibonacci.ProgressUpdate{CalculatorIndex: 1, Value: 1.0}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	DisplayProgress(&wg, ch, 2, io.Discard)
	wg.Wait()

	if !strings.Contains(final, "100.0%") {
		t.Errorf("final suffix %q should report completion", final)
	}
}

func TestDisplayProgressNoCalculators(t *testing.T) {
	t.Parallel()
	ch := make(chan fibonacci.ProgressUpdate, 1)
	ch <- fibonacci.ProgressUpdate{}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	DisplayProgress(&wg, ch, 0, io.Discard)
	wg.Wait()
}
