package fibonacci

import "math/bits"

// msb returns the position of the most significant set bit of n, or -1 when
// n is zero. Doubling loops iterate `for i := msb(n); i >= 0; i--`, so a zero
// index performs no iteration and the accumulators keep their seed values.
func msb(n uint64) int {
	return bits.Len64(n) - 1
}

// bitSet reports whether bit i of n is 1.
func bitSet(n uint64, i int) bool {
	return (n>>uint(i))&1 == 1
}
