package fibonacci

import (
	"context"
	"math/big"
)

// FibLucas computes F(n) top-down through the joint recursion on
// (F(k), L(k)):
//
//	F(2k)   = F(k) · L(k)
//	L(2k)   = 5F(k)² + 2(-1)^k
//	L(2k+1) = 5F(k)F(k+1) + (-1)^k,  with F(k+1) = (F(k) + L(k)) / 2
//	F(2k+1) = L(2k+1) - 2F(k)L(k)
//
// (-1)^k is +1 exactly when bit 1 of the target index 2k or 2k+1 is clear.
// The outermost level only needs F and uses F(2k+1) = F(k)·L(k+1) + (-1)^k,
// saving one multiplication. Each call allocates its own scratch integer and
// passes it down the recursion, so concurrent calls share nothing.
type FibLucas struct{}

// Name returns the descriptive name of the algorithm.
func (fl *FibLucas) Name() string {
	return "Fibonacci+Lucas Recursion"
}

// CalculateCore computes F(n).
func (fl *FibLucas) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, _ Options) (*big.Int, error) {
	f, l := new(big.Int), new(big.Int)
	scratch := new(big.Int)
	progress := newStepProgress(reporter, n/2)
	if err := fibLuc(ctx, progress, msb(n/2), n/2, f, l, scratch); err != nil {
		return nil, err
	}

	if n%2 == 0 {
		return f.Mul(f, l), nil
	}
	// l = L(k+1) = (L(k) + 5F(k)) / 2
	scratch.Lsh(f, 2)
	scratch.Add(scratch, f)
	l.Add(l, scratch)
	l.Rsh(l, 1)
	f.Mul(f, l)
	return addSign(f, n, 1), nil
}

// Pair returns (F(n), L(n)).
func (fl *FibLucas) Pair(ctx context.Context, n uint64) (*big.Int, *big.Int, error) {
	f, l := new(big.Int), new(big.Int)
	if err := fibLuc(ctx, newStepProgress(nil, n), msb(n), n, f, l, new(big.Int)); err != nil {
		return nil, nil, err
	}
	return f, l, nil
}

// fibLuc stores F(n) in f and L(n) in l. top is msb of the outermost index and
// only drives progress weighting.
func fibLuc(ctx context.Context, progress *stepProgress, top int, n uint64, f, l, tmp *big.Int) error {
	if n == 0 {
		f.SetInt64(0)
		l.SetInt64(2)
		return nil
	}
	if err := fibLuc(ctx, progress, top, n/2, f, l, tmp); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if n%2 == 0 {
		tmp.Mul(f, f)
		f.Mul(f, l)
		l.Lsh(tmp, 2)
		l.Add(l, tmp)
		addSign(l, n, 2)
	} else {
		tmp.Mul(f, l)
		l.Add(l, f)
		l.Rsh(l, 1)
		l.Mul(l, f)
		f.Lsh(l, 2)
		l.Add(l, f)
		addSign(l, n, 1)
		f.Lsh(tmp, 1)
		f.Sub(l, f)
	}
	progress.step(top - msb(n))
	return nil
}

// addSign adds v to z when bit 1 of n is clear and subtracts it otherwise.
func addSign(z *big.Int, n uint64, v uint) *big.Int {
	d := big.NewInt(int64(v))
	if n&2 == 0 {
		return z.Add(z, d)
	}
	return z.Sub(z, d)
}
