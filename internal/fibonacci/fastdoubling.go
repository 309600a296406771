package fibonacci

import (
	"context"
	"math/big"
)

// FastDoubling computes F(n) with the three-accumulator doubling recurrence.
//
// The accumulators hold (a, b, c) = (F(k-1), F(k), F(k+1)), starting at
// k = 0 with (1, 0, 1). The bits of n are consumed from the most significant
// one down; each bit maps k to 2k or 2k+1:
//
//	bit 1:  F(2k)   = (F(k-1) + F(k+1)) · F(k)
//	        F(2k+1) = F(k)² + F(k+1)²
//	bit 0:  F(2k-1) = F(k-1)² + F(k)²
//	        F(2k)   = F(k) · (F(k-1) + F(k+1))
//
// after which c is restored as a + b. The loop performs O(log n)
// multiplications on operands of growing size, so its cost is dominated by
// the last few squarings.
type FastDoubling struct{}

// Name returns the descriptive name of the algorithm.
func (fd *FastDoubling) Name() string {
	return "Fast Doubling (three accumulators)"
}

// CalculateCore computes F(n). A zero index performs no iteration and returns
// the seed value of b.
func (fd *FastDoubling) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, _ Options) (*big.Int, error) {
	s := acquireState(n)
	defer releaseState(s)

	s.A.SetInt64(1)
	s.B.SetInt64(0)
	s.C.SetInt64(1)

	progress := newStepProgress(reporter, n)
	for i := msb(n); i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if bitSet(n, i) {
			doublingOddStep(s)
		} else {
			doublingEvenStep(s)
		}
		s.C.Add(s.A, s.B)
		progress.step(i)
	}
	return s.takeB(), nil
}

// doublingOddStep maps (F(k-1), F(k), F(k+1)) to (F(2k), F(2k+1), -).
func doublingOddStep(s *calculationState) {
	s.A.Add(s.A, s.C)
	s.A.Mul(s.A, s.B)
	s.T1.Mul(s.C, s.C)
	s.B.Mul(s.B, s.B)
	s.B.Add(s.B, s.T1)
}

// doublingEvenStep maps (F(k-1), F(k), F(k+1)) to (F(2k-1), F(2k), -).
func doublingEvenStep(s *calculationState) {
	s.C.Add(s.C, s.A)
	s.T1.Mul(s.B, s.B)
	s.A.Mul(s.A, s.A)
	s.A.Add(s.A, s.T1)
	s.B.Mul(s.B, s.C)
}
