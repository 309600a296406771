package harness

import (
	"context"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/logging"
)

// Default graph range.
const (
	DefaultSweepFrom uint64 = 1000
	DefaultSweepTo   uint64 = 1_000_000
	DefaultSweepStep uint64 = 1000
)

// SweepRange is an inclusive, ascending range of indices.
type SweepRange struct {
	From, To, Step uint64
}

// DefaultSweepRange returns 1000..1000000 in steps of 1000.
func DefaultSweepRange() SweepRange {
	return SweepRange{From: DefaultSweepFrom, To: DefaultSweepTo, Step: DefaultSweepStep}
}

// Validate reports an empty or non-advancing range as a configuration error.
func (r SweepRange) Validate() error {
	if r.Step == 0 {
		return apperrors.NewConfigError("sweep step must be positive")
	}
	if r.From > r.To {
		return apperrors.NewConfigError("sweep start %d is after its end %d", r.From, r.To)
	}
	return nil
}

// Len returns the number of indices in the range.
func (r SweepRange) Len() int {
	if r.Validate() != nil {
		return 0
	}
	return int((r.To-r.From)/r.Step) + 1
}

// Row is one sweep record.
type Row struct {
	N          uint64
	IntTicks   Ticks
	FloatTicks Ticks
}

// Sweep compares every index of r in ascending order and hands one Row per
// index to emit. It stops at the first failing comparison, including a
// mismatch, without emitting a row for it, and returns that error. An error
// from emit also stops the sweep.
func (h *Harness) Sweep(ctx context.Context, r SweepRange, emit func(Row) error) error {
	if err := r.Validate(); err != nil {
		return err
	}
	for n := r.From; ; n += r.Step {
		if err := ctx.Err(); err != nil {
			return err
		}
		c, err := h.Compare(ctx, n)
		if err != nil {
			return err
		}
		if err := emit(Row{N: n, IntTicks: c.IntTicks, FloatTicks: c.FloatTicks}); err != nil {
			return err
		}
		h.logger.Debug("sweep row", logging.Uint64("n", n))
		// stop before n+Step overflows or passes To
		if r.To-n < r.Step {
			return nil
		}
	}
}
