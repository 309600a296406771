//go:build gmp

// This file provides a GMP-backed engine, compiled only with the "gmp" build
// tag so the default build needs no C toolchain or libgmp:
//
//	go build -tags=gmp ./...
//
// System requirements: libgmp-dev (Debian/Ubuntu) or `brew install gmp`.

package fibonacci

import (
	"context"
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	_ = RegisterCalculator("gmp", func() coreCalculator { return &GMPCalculator{} })
}

// GMPCalculator runs the three-accumulator fast doubling recurrence on GMP
// integers. It is the reference point for how much of the engines' time is
// spent in the big-number runtime rather than in the recurrence itself.
type GMPCalculator struct{}

// Name returns the descriptive name of the algorithm.
func (c *GMPCalculator) Name() string {
	return "GMP (Fast Doubling)"
}

// CalculateCore computes F(n) with the same per-bit steps as FastDoubling.
func (c *GMPCalculator) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, _ Options) (*big.Int, error) {
	a, b, cc, t := gmp.NewInt(1), gmp.NewInt(0), gmp.NewInt(1), gmp.NewInt(0)

	progress := newStepProgress(reporter, n)
	for i := msb(n); i >= 0; i-- {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if bitSet(n, i) {
			a.Add(a, cc)
			a.Mul(a, b)
			t.Mul(cc, cc)
			b.Mul(b, b)
			b.Add(b, t)
		} else {
			cc.Add(cc, a)
			t.Mul(b, b)
			a.Mul(a, a)
			a.Add(a, t)
			b.Mul(b, cc)
		}
		cc.Add(a, b)
		progress.step(i)
	}
	return new(big.Int).SetBytes(b.Bytes()), nil
}
