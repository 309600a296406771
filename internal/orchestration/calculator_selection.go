package orchestration

import (
	"github.com/agbru/fibcompare/internal/fibonacci"
)

// ReferenceLimit is the largest index at which the O(n) iterative reference
// joins a verification run. Beyond it the reference would dominate the run
// time without adding confidence the doubling engines do not already give
// each other.
const ReferenceLimit = 200_000

// GetCalculatorsToRun returns the engines verify mode runs for n, in
// alphabetical order of their registry names.
//
// Parameters:
//   - n: The Fibonacci index.
//   - factory: The calculator factory to retrieve implementations from.
//
// Returns:
//   - []fibonacci.Calculator: The engines to execute.
func GetCalculatorsToRun(n uint64, factory fibonacci.CalculatorFactory) []fibonacci.Calculator {
	names := factory.List()
	calculators := make([]fibonacci.Calculator, 0, len(names))
	for _, name := range names {
		if name == "iterative" && n > ReferenceLimit {
			continue
		}
		if name == "float" && n > fibonacci.MaxFloatIndex {
			continue
		}
		if calc, err := factory.Get(name); err == nil {
			calculators = append(calculators, calc)
		}
	}
	return calculators
}
