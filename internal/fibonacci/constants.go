package fibonacci

// ─────────────────────────────────────────────────────────────────────────────
// Domain Limits
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxIndex is the largest index the exact engines accept. F(2^40) has
	// roughly 7.6e11 bits, which no supported machine can hold, so larger
	// requests are rejected up front instead of failing inside an allocation.
	MaxIndex uint64 = 1 << 40

	// MaxFibUint256 is the largest n for which F(n) fits in 256 bits.
	// The iterative reference stays on fixed-width words up to this index.
	MaxFibUint256 = 370

	// FibonacciGrowthFactor is log2(phi), where phi ≈ 1.618 (golden ratio).
	// F(n) has about n * FibonacciGrowthFactor bits.
	FibonacciGrowthFactor = 0.69424
)

// ─────────────────────────────────────────────────────────────────────────────
// Float Engine Precision
// ─────────────────────────────────────────────────────────────────────────────

const (
	// precisionNumerator / precisionDenominator approximates log2(phi) from
	// above (0.7 > 0.69424) when sizing the float mantissa.
	precisionNumerator   = 7
	precisionDenominator = 10

	// precisionWordBits is the granularity of the float precision budget.
	// The budget is rounded up to whole words and one guard word is added.
	precisionWordBits = 64
)

// ─────────────────────────────────────────────────────────────────────────────
// Runtime Tuning
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxPooledBitLen bounds the size of big.Int temporaries kept in the state
	// pool. States holding larger values are left to the garbage collector.
	MaxPooledBitLen = 4_000_000

	// ProgressReportThreshold is the minimum progress delta between two
	// reports from a doubling loop.
	ProgressReportThreshold = 0.01

	// linearCheckInterval is how many iterations the O(n) loops run between
	// context and progress checks.
	linearCheckInterval = 1024
)
