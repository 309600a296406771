package fibonacci

import (
	"math/big"
	"math/bits"
	"sync"
)

// calculationState holds the big.Int temporaries of one doubling loop.
// The fast doubling engine uses A, B, C as (F(k-1), F(k), F(k+1)) and T1 as
// the squaring temporary; the Lucas engine uses A, B as (L(k), F(k)) and
// T1, T2 for the shared product and the odd-step sum.
type calculationState struct {
	A, B, C, T1, T2 *big.Int
}

var statePool = sync.Pool{
	New: func() any {
		return &calculationState{
			A:  new(big.Int),
			B:  new(big.Int),
			C:  new(big.Int),
			T1: new(big.Int),
			T2: new(big.Int),
		}
	},
}

// acquireState returns a state from the pool with its operands pre-sized for
// F(n). The caller must seed every field it reads.
func acquireState(n uint64) *calculationState {
	s := statePool.Get().(*calculationState)
	words := estimateWords(n)
	for _, z := range s.all() {
		preSize(z, words)
	}
	return s
}

// releaseState puts s back into the pool unless one of its operands grew past
// MaxPooledBitLen. It is nil-safe.
func releaseState(s *calculationState) {
	if s == nil {
		return
	}
	for _, z := range s.all() {
		if z == nil || z.BitLen() > MaxPooledBitLen {
			return
		}
	}
	statePool.Put(s)
}

func (s *calculationState) all() [5]*big.Int {
	return [5]*big.Int{s.A, s.B, s.C, s.T1, s.T2}
}

// takeB detaches B from the state so it can be returned to the caller without
// a copy. A fresh integer replaces it before the state goes back to the pool.
func (s *calculationState) takeB() *big.Int {
	r := s.B
	s.B = new(big.Int)
	return r
}

// estimateWords returns the number of machine words F(n) occupies, plus one.
func estimateWords(n uint64) int {
	if n < 1000 {
		return 0
	}
	return int(float64(n)*FibonacciGrowthFactor/_W) + 1
}

// _W is the size of a big.Word in bits.
const _W = bits.UintSize

// preSize gives z a backing array of at least words capacity, discarding its
// value. Products then grow in place instead of reallocating at every step.
func preSize(z *big.Int, words int) {
	if words <= 0 || cap(z.Bits()) >= words {
		return
	}
	z.SetBits(make([]big.Word, 0, words))
}
