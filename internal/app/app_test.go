package app

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/agbru/fibcompare/internal/errors"
	"github.com/agbru/fibcompare/internal/harness"
)

// fixedClock advances by one tick per reading so timing output is stable.
type fixedClock struct{ now harness.Ticks }

func (c *fixedClock) Now() harness.Ticks {
	c.now++
	return c.now
}

func (c *fixedClock) TicksPerSecond() uint64 { return 1_000_000 }

func run(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	a, err := New(append([]string{"fibcompare", "--no-color"}, args...), &errOut, WithClock(&fixedClock{}))
	if err != nil {
		return out.String(), errOut.String(), ExitCodeFor(err)
	}
	code = a.Run(context.Background(), &out)
	return out.String(), errOut.String(), code
}

func TestRun_EngineModes(t *testing.T) {
	for _, engine := range []string{"int", "lucas", "fiblucas", "float", "iterative"} {
		t.Run(engine, func(t *testing.T) {
			out, _, code := run(t, engine, "100")
			assert.Equal(t, apperrors.ExitSuccess, code)
			assert.Equal(t, "fib(100) = 354224848179261915075\n", out)
		})
	}
}

func TestRun_EngineDetails(t *testing.T) {
	out, _, code := run(t, "int", "1000", "-d")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "Detailed result analysis")
	assert.Contains(t, out, "Memory Stats")
	assert.Contains(t, out, "fib(1000) = 43466557686937456435688527675040625802564660517371780402481729089536555417949051890403879840079255169295922593080322634775209689623239873322471161642996440906533187938298969649928516003704476137795166849228875")
}

func TestRun_Timing(t *testing.T) {
	out, _, code := run(t, "timing", "1000")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t,
		"Computing fib(1000) in two different ways.\n"+
			"Integer computation took 1 ticks\n"+
			"Float computation took 1 ticks\n"+
			"(at a rate of 1000000 ticks per second)\n\n",
		out)
}

func TestRun_TimingMismatchWithLowPrecision(t *testing.T) {
	out, stderr, code := run(t, "timing", "200", "--precision", "64")
	assert.Equal(t, apperrors.ExitErrorMismatch, code)
	assert.Equal(t, "Computing fib(200) in two different ways.\n", out)
	assert.Contains(t, stderr, "fibcompare: different methods gave different results for fib(200)")
}

func TestRun_Graph(t *testing.T) {
	out, _, code := run(t, "graph", "--from", "1000", "--to", "10000", "--step", "1000")
	require.Equal(t, apperrors.ExitSuccess, code)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, "n\tint\tfloat", lines[0])
	assert.Equal(t, "1000\t1\t1", lines[1])
	assert.Equal(t, "10000\t1\t1", lines[10])
}

func TestRun_GraphStopsAtMismatch(t *testing.T) {
	out, stderr, code := run(t, "graph", "--from", "10", "--to", "300", "--step", "10", "--precision", "64")
	assert.Equal(t, apperrors.ExitErrorMismatch, code)
	assert.True(t, strings.HasPrefix(out, "n\tint\tfloat\n10\t"), out)
	assert.Contains(t, stderr, "different methods gave different results")
}

func TestRun_Verify(t *testing.T) {
	out, _, code := run(t, "verify", "500")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, out, "Comparison Summary")
	assert.Contains(t, out, "Global Status: Success")
	assert.Contains(t, out, "Iterative Addition (reference)")
}

func TestRun_VerifyQuiet(t *testing.T) {
	out, _, code := run(t, "verify", "20", "-q")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Equal(t, "fib(20) = 6765\n", out)
}

func TestRun_Metrics(t *testing.T) {
	_, stderr, code := run(t, "timing", "500", "--metrics")
	require.Equal(t, apperrors.ExitSuccess, code)
	assert.Contains(t, stderr, "fibcompare_comparisons_total")
}

func TestRun_Timeout(t *testing.T) {
	_, stderr, code := run(t, "iterative", "100000000", "--timeout", "1ms")
	assert.Equal(t, apperrors.ExitErrorTimeout, code)
	assert.Contains(t, stderr, "Timeout")
}

func TestNew_Errors(t *testing.T) {
	_, stderr, code := run(t, "matrix", "10")
	assert.Equal(t, apperrors.ExitErrorConfig, code)
	assert.Contains(t, stderr, "Supported types are:")

	_, _, code = run(t, "--help")
	assert.Equal(t, apperrors.ExitSuccess, code)
}

func TestHasVersionFlag(t *testing.T) {
	assert.True(t, HasVersionFlag([]string{"int", "--version"}))
	assert.False(t, HasVersionFlag([]string{"int", "10"}))

	var buf bytes.Buffer
	PrintVersion(&buf)
	assert.True(t, strings.HasPrefix(buf.String(), "fibcompare dev"))
}
