package harness

import (
	"context"
	"fmt"

	"github.com/agbru/fibcompare/internal/fibonacci"
)

// Method computes F(n) and renders it as a decimal string. Timing covers
// both steps, the way a user would observe them.
type Method interface {
	Name() string
	Render(ctx context.Context, n uint64) (string, error)
}

type integerMethod struct {
	calc fibonacci.Calculator
	opts fibonacci.Options
}

// IntegerMethod renders the exact result of calc.
func IntegerMethod(calc fibonacci.Calculator, opts fibonacci.Options) Method {
	return &integerMethod{calc: calc, opts: opts}
}

func (m *integerMethod) Name() string { return m.calc.Name() }

func (m *integerMethod) Render(ctx context.Context, n uint64) (string, error) {
	v, err := m.calc.Calculate(ctx, nil, 0, n, m.opts)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", fmt.Errorf("%s returned no value for n=%d", m.calc.Name(), n)
	}
	return v.String(), nil
}

type floatMethod struct {
	binet *fibonacci.Binet
	opts  fibonacci.Options
}

// FloatMethod renders φⁿ/√5 from b with no fractional digits, without going
// through an integer conversion first.
func FloatMethod(b *fibonacci.Binet, opts fibonacci.Options) Method {
	return &floatMethod{binet: b, opts: opts}
}

func (m *floatMethod) Name() string { return m.binet.Name() }

func (m *floatMethod) Render(ctx context.Context, n uint64) (string, error) {
	x, err := m.binet.Float(ctx, nil, n, m.opts)
	if err != nil {
		return "", err
	}
	return fibonacci.Text(x), nil
}
