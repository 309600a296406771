package fibonacci

import (
	"fmt"
	"strings"
)

// Exponentiation strategy names accepted by Options.Exponentiation.
const (
	ExpSquaring = "squaring"
	ExpSlow     = "slow"
)

// Options configures a Fibonacci calculation. The exact integer engines ignore
// every field; they only affect the Binet engine.
type Options struct {
	// PrecisionBits overrides the float engine's precision policy when non-zero.
	PrecisionBits uint
	// Exponentiation selects the float engine's power algorithm: "squaring"
	// (the default when empty) or "slow" (repeated multiplication).
	Exponentiation string
}

// ExponentiatorFor returns the Exponentiator registered under name. An empty
// name selects squaring.
func ExponentiatorFor(name string) (Exponentiator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ExpSquaring:
		return SquaringExponentiator{}, nil
	case ExpSlow:
		return RepeatedMultiplicationExponentiator{}, nil
	default:
		return nil, fmt.Errorf("unknown exponentiation strategy %q (want %s or %s)", name, ExpSquaring, ExpSlow)
	}
}
