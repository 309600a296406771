package fibonacci

import (
	"context"
	"math/big"

	apperrors "github.com/agbru/fibcompare/internal/errors"
)

// MaxFloatIndex is the largest index whose default precision still fits in
// big.MaxPrec.
const MaxFloatIndex uint64 = 6_135_667_382

// PrecisionPolicy maps an index to the mantissa precision, in bits, used to
// evaluate Binet's formula. A zero result means the index is out of range.
type PrecisionPolicy func(n uint64) uint

// ScaledPrecision is the default policy. F(n) has about 0.694·n bits, so
// n·7/10 bits cover every integer digit of the result; the budget is rounded
// up to whole 64-bit words and a guard word absorbs the rounding error of
// √5 and of the exponentiation.
func ScaledPrecision(n uint64) uint {
	// ceil(n·7/10) without overflowing for large n
	need := n/precisionDenominator*precisionNumerator +
		(n%precisionDenominator*precisionNumerator+precisionDenominator-1)/precisionDenominator
	words := (need+precisionWordBits-1)/precisionWordBits + 1
	if words > big.MaxPrec/precisionWordBits {
		return 0
	}
	return uint(words * precisionWordBits)
}

// FixedPrecision returns a policy that ignores n. A precision too small for
// the index produces a wrong rounding, which is how mismatch handling is
// exercised.
func FixedPrecision(bits uint) PrecisionPolicy {
	return func(uint64) uint { return bits }
}

// Exponentiator raises a big.Float to an integer power.
type Exponentiator interface {
	// Pow stores x^n in z. z must already carry the working precision.
	Pow(ctx context.Context, reporter ProgressReporter, z, x *big.Float, n uint64) error
	// Name identifies the strategy.
	Name() string
}

// SquaringExponentiator walks the bits of n from the most significant one,
// squaring at every bit and multiplying by x when the bit is set.
type SquaringExponentiator struct{}

// Name implements Exponentiator.
func (SquaringExponentiator) Name() string { return ExpSquaring }

// Pow implements Exponentiator in O(log n) multiplications.
func (SquaringExponentiator) Pow(ctx context.Context, reporter ProgressReporter, z, x *big.Float, n uint64) error {
	z.SetInt64(1)
	progress := newStepProgress(reporter, n)
	for i := msb(n); i >= 0; i-- {
		if err := ctx.Err(); err != nil {
			return err
		}
		z.Mul(z, z)
		if bitSet(n, i) {
			z.Mul(z, x)
		}
		progress.step(i)
	}
	return nil
}

// RepeatedMultiplicationExponentiator multiplies by x n times. It exists to
// benchmark the cost of the naive power against squaring.
type RepeatedMultiplicationExponentiator struct{}

// Name implements Exponentiator.
func (RepeatedMultiplicationExponentiator) Name() string { return ExpSlow }

// Pow implements Exponentiator in O(n) multiplications.
func (RepeatedMultiplicationExponentiator) Pow(ctx context.Context, reporter ProgressReporter, z, x *big.Float, n uint64) error {
	z.SetInt64(1)
	for i := uint64(0); i < n; i++ {
		if i%linearCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			linearProgress(reporter, i, n)
		}
		z.Mul(z, x)
	}
	return nil
}

// Binet evaluates F(n) = φⁿ/√5 with φ = (1 + √5)/2 in binary floating point.
// The precision is fixed from the policy before any arithmetic, so every
// intermediate value is rounded to the same mantissa width.
type Binet struct {
	// Precision sizes the mantissa. Nil means ScaledPrecision.
	Precision PrecisionPolicy
	// Exp computes φⁿ. Nil means SquaringExponentiator.
	Exp Exponentiator
}

// NewBinet returns a Binet engine with the default policy and squaring.
func NewBinet() *Binet {
	return &Binet{Precision: ScaledPrecision, Exp: SquaringExponentiator{}}
}

// Name returns the descriptive name of the algorithm.
func (b *Binet) Name() string {
	return "Binet Formula (big.Float)"
}

// PrecisionFor returns the working precision for n after applying the
// override carried by opts.
func (b *Binet) PrecisionFor(n uint64, opts Options) (uint, error) {
	if opts.PrecisionBits > 0 {
		if opts.PrecisionBits > big.MaxPrec {
			return 0, apperrors.NewValidationError("precision", "%d bits exceeds the maximum of %d", opts.PrecisionBits, uint(big.MaxPrec))
		}
		return opts.PrecisionBits, nil
	}
	policy := b.Precision
	if policy == nil {
		policy = ScaledPrecision
	}
	prec := policy(n)
	if prec == 0 || prec > big.MaxPrec {
		return 0, apperrors.NewValidationError("n", "index %d is beyond the float engine limit of %d", n, MaxFloatIndex)
	}
	return prec, nil
}

func (b *Binet) exponentiator(opts Options) (Exponentiator, error) {
	if opts.Exponentiation != "" {
		return ExponentiatorFor(opts.Exponentiation)
	}
	if b.Exp == nil {
		return SquaringExponentiator{}, nil
	}
	return b.Exp, nil
}

// Float returns φⁿ/√5 at the working precision for n.
func (b *Binet) Float(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (*big.Float, error) {
	prec, err := b.PrecisionFor(n, opts)
	if err != nil {
		return nil, err
	}
	exp, err := b.exponentiator(opts)
	if err != nil {
		return nil, apperrors.NewConfigError("%v", err)
	}

	sqrt5 := new(big.Float).SetPrec(prec).Sqrt(big.NewFloat(5))
	phi := new(big.Float).SetPrec(prec).SetInt64(1)
	phi.Add(phi, sqrt5)
	phi.SetMantExp(phi, -1)

	z := new(big.Float).SetPrec(prec)
	if err := exp.Pow(ctx, reporter, z, phi, n); err != nil {
		return nil, err
	}
	return z.Quo(z, sqrt5), nil
}

// CalculateCore computes F(n) as the nearest integer to φⁿ/√5.
func (b *Binet) CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (*big.Int, error) {
	x, err := b.Float(ctx, reporter, n, opts)
	if err != nil {
		return nil, err
	}
	return Round(x), nil
}

// Round returns the integer nearest to x, with halves rounded away from zero.
func Round(x *big.Float) *big.Int {
	i, acc := x.Int(nil)
	if acc == big.Exact {
		return i
	}
	frac := new(big.Float).SetPrec(x.Prec()).Sub(x, new(big.Float).SetInt(i))
	frac.Abs(frac)
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		if x.Sign() < 0 {
			i.Sub(i, big.NewInt(1))
		} else {
			i.Add(i, big.NewInt(1))
		}
	}
	return i
}

// Text renders x in decimal with no fractional digits.
func Text(x *big.Float) string {
	return x.Text('f', 0)
}
