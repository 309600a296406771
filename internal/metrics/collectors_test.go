package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestComparisonsTotal_Increments(t *testing.T) {
	before := testutil.ToFloat64(ComparisonsTotal.WithLabelValues("match"))
	ComparisonsTotal.WithLabelValues("match").Inc()
	after := testutil.ToFloat64(ComparisonsTotal.WithLabelValues("match"))
	if after-before != 1 {
		t.Errorf("counter moved by %v, want 1", after-before)
	}
}

func TestWriteText(t *testing.T) {
	CalculationsTotal.WithLabelValues("test-algo", "success").Inc()

	var buf bytes.Buffer
	if err := WriteText(&buf); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"# TYPE fibcompare_calculations_total counter",
		`fibcompare_calculations_total{algorithm="test-algo",status="success"}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
