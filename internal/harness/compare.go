package harness

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/logging"
	"github.com/agbru/fibcompare/internal/metrics"
)

// Comparison is the outcome of running both methods on one index.
type Comparison struct {
	N              uint64
	IntText        string
	FloatText      string
	Match          bool
	IntTicks       Ticks
	FloatTicks     Ticks
	TicksPerSecond uint64
}

// Harness runs an integer and a float method back to back on the same index.
type Harness struct {
	intMethod   Method
	floatMethod Method
	clock       Clock
	logger      logging.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithClock replaces the default process CPU clock.
func WithClock(c Clock) Option {
	return func(h *Harness) { h.clock = c }
}

// WithLogger sets the logger used to report mismatches.
func WithLogger(l logging.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// New returns a Harness comparing intMethod against floatMethod.
func New(intMethod, floatMethod Method, opts ...Option) *Harness {
	h := &Harness{
		intMethod:   intMethod,
		floatMethod: floatMethod,
		clock:       DefaultClock(),
		logger:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// TicksPerSecond reports the rate of the harness clock.
func (h *Harness) TicksPerSecond() uint64 { return h.clock.TicksPerSecond() }

// Compare runs the integer method, then the float method, on n. Each method
// is timed from the clock sample taken immediately before it starts to the
// one taken immediately after its rendering completes.
//
// When the renderings differ, Compare returns the filled Comparison together
// with a *apperrors.MismatchError. When a method fails, the error is wrapped
// in an apperrors.CalculationError naming it.
func (h *Harness) Compare(ctx context.Context, n uint64) (Comparison, error) {
	ctx, span := otel.Tracer("harness").Start(ctx, "Compare")
	span.SetAttributes(attribute.Int64("n", int64(n)))
	defer span.End()

	c := Comparison{N: n, TicksPerSecond: h.clock.TicksPerSecond()}

	t1 := h.clock.Now()
	intText, err := h.intMethod.Render(ctx, n)
	t2 := h.clock.Now()
	if err != nil {
		metrics.ComparisonsTotal.WithLabelValues("error").Inc()
		return c, apperrors.CalculationError{Engine: h.intMethod.Name(), Cause: err}
	}
	floatText, err := h.floatMethod.Render(ctx, n)
	t3 := h.clock.Now()
	if err != nil {
		metrics.ComparisonsTotal.WithLabelValues("error").Inc()
		return c, apperrors.CalculationError{Engine: h.floatMethod.Name(), Cause: err}
	}

	c.IntText, c.FloatText = intText, floatText
	c.IntTicks, c.FloatTicks = t2-t1, t3-t2
	c.Match = intText == floatText

	metrics.ComparisonSeconds.WithLabelValues("int").Observe(c.IntTicks.Seconds(c.TicksPerSecond))
	metrics.ComparisonSeconds.WithLabelValues("float").Observe(c.FloatTicks.Seconds(c.TicksPerSecond))
	span.SetAttributes(attribute.Bool("match", c.Match))

	if !c.Match {
		metrics.ComparisonsTotal.WithLabelValues("mismatch").Inc()
		err := &apperrors.MismatchError{N: n, IntText: intText, FloatText: floatText}
		h.logger.Error("methods disagree", err, logging.Uint64("n", n))
		return c, err
	}
	metrics.ComparisonsTotal.WithLabelValues("match").Inc()
	return c, nil
}
