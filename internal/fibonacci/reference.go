package fibonacci

import (
	"context"
	"math/big"

	"github.com/holiman/uint256"
)

// Iterative is the O(n) reference: it adds consecutive terms until it reaches
// F(n). It shares no identity with the doubling engines, which makes it a
// trustworthy oracle for them. Terms stay in 256-bit words while they fit
// (n ≤ MaxFibUint256) and continue in big.Int afterwards.
type Iterative struct{}

// Name returns the descriptive name of the algorithm.
func (it *Iterative) Name() string {
	return "Iterative Addition (reference)"
}

// CalculateCore computes F(n).
func (it *Iterative) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, _ Options) (*big.Int, error) {
	// a = F(k), b = F(k+1)
	var a, b, next uint256.Int
	b.SetOne()
	var k uint64
	for ; k < n; k++ {
		if _, overflow := next.AddOverflow(&a, &b); overflow {
			break
		}
		a, b = b, next
	}
	if k == n {
		return a.ToBig(), nil
	}

	x, y := a.ToBig(), b.ToBig()
	for ; k < n; k++ {
		if k%linearCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			linearProgress(reporter, k, n)
		}
		x.Add(x, y)
		x, y = y, x
	}
	return x, nil
}
