package fibonacci

import (
	"fmt"
	"sort"
	"sync"
)

// CalculatorFactory creates Calculator instances by name.
type CalculatorFactory interface {
	// Create returns a fresh, uncached Calculator.
	Create(name string) (Calculator, error)
	// Get returns the cached Calculator registered under name.
	Get(name string) (Calculator, error)
	// List returns the registered names in sorted order.
	List() []string
	// Register adds or replaces a calculator type.
	Register(name string, creator func() coreCalculator) error
	// GetAll returns every registered calculator.
	GetAll() map[string]Calculator
}

// DefaultFactory is a thread-safe registry of calculator creators that caches
// the Calculator built for each name.
type DefaultFactory struct {
	mu          sync.RWMutex
	creators    map[string]func() coreCalculator
	calculators map[string]Calculator
}

// NewDefaultFactory creates a factory with the standard engines registered:
//
//   - "int": FastDoubling
//   - "lucas": LucasDoubling
//   - "fiblucas": FibLucas
//   - "float": Binet with the default precision policy and squaring
//   - "iterative": Iterative (O(n) reference)
func NewDefaultFactory() *DefaultFactory {
	f := &DefaultFactory{
		creators:    make(map[string]func() coreCalculator),
		calculators: make(map[string]Calculator),
	}

	_ = f.Register("int", func() coreCalculator { return &FastDoubling{} })
	_ = f.Register("lucas", func() coreCalculator { return &LucasDoubling{} })
	_ = f.Register("fiblucas", func() coreCalculator { return &FibLucas{} })
	_ = f.Register("float", func() coreCalculator { return NewBinet() })
	_ = f.Register("iterative", func() coreCalculator { return &Iterative{} })

	return f
}

// Register adds a calculator type. An existing registration under the same
// name is replaced and its cached instance dropped.
func (f *DefaultFactory) Register(name string, creator func() coreCalculator) error {
	if name == "" || creator == nil {
		return fmt.Errorf("invalid registration for calculator %q", name)
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	f.creators[name] = creator
	delete(f.calculators, name)
	return nil
}

// Create builds a new Calculator by name without caching it.
func (f *DefaultFactory) Create(name string) (Calculator, error) {
	f.mu.RLock()
	creator, ok := f.creators[name]
	f.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}
	return NewCalculator(creator()), nil
}

// Get returns the Calculator registered under name, building and caching it
// on first use.
//
// Parameters:
//   - name: The name of the calculator to retrieve.
//
// Returns:
//   - Calculator: The Calculator instance.
//   - error: An error if the calculator type is not registered.
func (f *DefaultFactory) Get(name string) (Calculator, error) {
	f.mu.RLock()
	if calc, exists := f.calculators[name]; exists {
		f.mu.RUnlock()
		return calc, nil
	}
	f.mu.RUnlock()

	f.mu.Lock()
	defer f.mu.Unlock()

	if calc, exists := f.calculators[name]; exists {
		return calc, nil
	}
	creator, ok := f.creators[name]
	if !ok {
		return nil, fmt.Errorf("unknown calculator: %s", name)
	}
	calc := NewCalculator(creator())
	f.calculators[name] = calc
	return calc, nil
}

// List returns the registered calculator names, sorted.
func (f *DefaultFactory) List() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := make([]string, 0, len(f.creators))
	for name := range f.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetAll returns a copy of the name-to-calculator map, building any
// calculator not requested yet.
func (f *DefaultFactory) GetAll() map[string]Calculator {
	f.mu.Lock()
	defer f.mu.Unlock()

	for name, creator := range f.creators {
		if _, exists := f.calculators[name]; !exists {
			f.calculators[name] = NewCalculator(creator())
		}
	}
	result := make(map[string]Calculator, len(f.calculators))
	for name, calc := range f.calculators {
		result[name] = calc
	}
	return result
}

// MustGet is like Get but panics if the calculator is not found.
func (f *DefaultFactory) MustGet(name string) Calculator {
	calc, err := f.Get(name)
	if err != nil {
		panic(fmt.Sprintf("fibonacci: required calculator not found: %s", name))
	}
	return calc
}

// Has reports whether name is registered.
func (f *DefaultFactory) Has(name string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	_, exists := f.creators[name]
	return exists
}

// globalFactory is the process-wide factory. Engines behind build tags add
// themselves to it from init.
var globalFactory = NewDefaultFactory()

// GlobalFactory returns the global factory instance.
func GlobalFactory() *DefaultFactory {
	return globalFactory
}

// RegisterCalculator registers a calculator in the global factory.
func RegisterCalculator(name string, creator func() coreCalculator) error {
	return globalFactory.Register(name, creator)
}
