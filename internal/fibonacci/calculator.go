package fibonacci

//go:generate mockgen -source=calculator.go -destination=mocks/mock_calculator.go -package=mocks

import (
	"context"
	"math/big"
	"time"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/metrics"
)

// Calculator defines the public interface for a Fibonacci calculator.
// It is the abstraction the harness and the orchestration layer use to drive
// the different engines.
type Calculator interface {
	// Calculate computes the n-th Fibonacci number. It supports cancellation
	// through ctx. Progress updates are sent to progressChan when it is not
	// nil; sends never block.
	//
	// Parameters:
	//   - ctx: The context for managing cancellation and deadlines.
	//   - progressChan: The channel for sending progress updates.
	//   - calcIndex: An index identifying this calculator in progress updates.
	//   - n: The index of the Fibonacci number to calculate.
	//   - opts: Configuration options for the calculation.
	//
	// Returns:
	//   - *big.Int: The calculated Fibonacci number.
	//   - error: An error if one occurred (e.g., context cancellation).
	Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n uint64, opts Options) (*big.Int, error)

	// Name returns the display name of the calculation algorithm.
	Name() string
}

// coreCalculator defines the internal interface for a pure calculation
// algorithm.
type coreCalculator interface {
	CalculateCore(ctx context.Context, reporter ProgressReporter, n uint64, opts Options) (*big.Int, error)
	Name() string
}

// FibCalculator wraps a coreCalculator with the cross-cutting concerns every
// engine shares: the index precondition, progress channel adaptation, a
// tracing span, Prometheus metrics and a debug log event.
type FibCalculator struct {
	core coreCalculator
}

// NewCalculator constructs a FibCalculator around core. It panics if core is
// nil.
//
// Parameters:
//   - core: The core calculator to be wrapped.
//
// Returns:
//   - Calculator: A new FibCalculator instance implementing the Calculator interface.
func NewCalculator(core coreCalculator) Calculator {
	if core == nil {
		panic("fibonacci: the `coreCalculator` implementation cannot be nil")
	}
	return &FibCalculator{core: core}
}

// Name returns the name of the encapsulated coreCalculator.
func (c *FibCalculator) Name() string {
	return c.core.Name()
}

// Binet returns the wrapped float engine, or nil when the calculator wraps
// an exact engine. The harness uses it to render the float result directly.
func (c *FibCalculator) Binet() *Binet {
	b, _ := c.core.(*Binet)
	return b
}

// Calculate validates n, adapts progressChan into a ProgressReporter and
// delegates to the wrapped engine. A successful run always ends with a
// progress report of 1.0.
func (c *FibCalculator) Calculate(ctx context.Context, progressChan chan<- ProgressUpdate, calcIndex int, n uint64, opts Options) (result *big.Int, err error) {
	algoName := c.core.Name()
	ctx, span := otel.Tracer("fibonacci").Start(ctx, "Calculate")
	span.SetAttributes(attribute.String("algorithm", algoName), attribute.Int64("n", int64(n)))
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		metrics.CalculationsTotal.WithLabelValues(algoName, status).Inc()
		metrics.CalculationDuration.WithLabelValues(algoName).Observe(duration)

		log.Debug().
			Str("algo", algoName).
			Uint64("n", n).
			Float64("duration", duration).
			Str("status", status).
			Msg("calculation completed")
	}()

	if n > MaxIndex {
		return nil, apperrors.NewValidationError("n", "index %d exceeds the maximum of %d", n, MaxIndex)
	}

	reporter := channelReporter(progressChan, calcIndex)
	result, err = c.core.CalculateCore(ctx, reporter, n, opts)
	if err == nil && result != nil {
		reporter(1.0)
	}
	return result, err
}

// channelReporter returns a ProgressReporter that forwards to ch without
// blocking. Updates are dropped when the consumer lags behind.
func channelReporter(ch chan<- ProgressUpdate, calcIndex int) ProgressReporter {
	if ch == nil {
		return noopReporter
	}
	return func(v float64) {
		select {
		case ch <- ProgressUpdate{CalculatorIndex: calcIndex, Value: v}:
		default:
		}
	}
}
