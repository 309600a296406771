package fibonacci

import (
	"context"
	"math/big"
)

// LucasDoubling computes F(n) by doubling the pair (L(k), F(k)).
//
// An even index n = 2m is reduced up front with F(2m) = L(m)·F(m), so the
// loop runs over m and one multiplication closes the calculation. Per bit:
//
//	L(k+1)  = (L(k) + 5F(k)) / 2
//	F(2k)   = L(k) · F(k)
//	L(2k)   = (L(k) + F(k)) · L(k+1) - 3·F(2k)
//	F(2k+1) = (L(2k) + F(2k)) / 2          (bit set)
//	L(2k+1) = F(2k+1) + 2·F(2k)            (bit set)
//
// Every division is exact and every intermediate is non-negative, so
// halving is a right shift and no (-1)^k correction is needed.
type LucasDoubling struct{}

// Name returns the descriptive name of the algorithm.
func (ld *LucasDoubling) Name() string {
	return "Lucas Doubling (even/odd shortcut)"
}

// CalculateCore computes F(n).
func (ld *LucasDoubling) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, _ Options) (*big.Int, error) {
	s := acquireState(n)
	defer releaseState(s)

	even := n%2 == 0
	m := n
	if even {
		m = n / 2
	}

	l, f, ab, t := s.A, s.B, s.T1, s.T2
	l.SetInt64(2)
	f.SetInt64(0)

	progress := newStepProgress(reporter, m)
	for i := msb(m); i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ab.Mul(l, f)
		l.Add(l, f)
		f.Lsh(f, 2)
		f.Add(f, l)
		f.Rsh(f, 1)
		l.Mul(l, f)
		t.Lsh(ab, 1)
		t.Add(t, ab)
		l.Sub(l, t)
		f, ab = ab, f

		if bitSet(m, i) {
			ab.Add(l, f)
			ab.Rsh(ab, 1)
			f.Lsh(f, 1)
			l.Add(ab, f)
			f, ab = ab, f
		}
		progress.step(i)
	}

	s.A, s.B, s.T1, s.T2 = l, f, ab, t
	if even {
		s.B.Mul(s.A, s.B)
	}
	return s.takeB(), nil
}
