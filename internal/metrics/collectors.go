package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "fibcompare"

// Registry holds every collector of this package.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// CalculationsTotal counts engine runs by algorithm and status
	// ("success" or "error").
	CalculationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "The total number of Fibonacci calculations processed",
		},
		[]string{"algorithm", "status"},
	)

	// CalculationDuration observes wall time per engine run.
	CalculationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_duration_seconds",
			Help:      "The duration of Fibonacci calculations in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		},
		[]string{"algorithm"},
	)

	// ComparisonsTotal counts harness comparisons by result ("match",
	// "mismatch" or "error").
	ComparisonsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "The total number of integer/float comparisons",
		},
		[]string{"result"},
	)

	// ComparisonSeconds observes the CPU time of each timed method.
	ComparisonSeconds = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "comparison_method_seconds",
			Help:      "CPU time spent computing and rendering one method",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		},
		[]string{"method"},
	)

	// HeapAllocBytes is the heap size at the last memory sample.
	HeapAllocBytes = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "heap_alloc_bytes",
		Help:      "Bytes of allocated heap objects at the last sample",
	})
)

// WriteText gathers the registry and writes it in the Prometheus text
// exposition format.
func WriteText(w io.Writer) error {
	families, err := Registry.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encoding %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
