package cli

import (
	"fmt"
	"io"

	"github.com/agbru/fibcompare/internal/format"
	"github.com/agbru/fibcompare/internal/harness"
)

// FormatFibLine renders the canonical single-result line, "fib(n) = value".
func FormatFibLine(n uint64, value string) string {
	return fmt.Sprintf("fib(%d) = %s", n, value)
}

// DisplayFib writes the canonical single-result line.
func DisplayFib(out io.Writer, n uint64, value string) {
	fmt.Fprintln(out, FormatFibLine(n, value))
}

// DisplayTimingHeader announces a timing run before it starts.
func DisplayTimingHeader(out io.Writer, n uint64) {
	fmt.Fprintf(out, "Computing fib(%d) in two different ways.\n", n)
}

// DisplayTiming prints the tick counts of a matching comparison. With
// details, it adds the durations and the float/int ratio.
func DisplayTiming(out io.Writer, c harness.Comparison, details bool) {
	fmt.Fprintf(out, "Integer computation took %d ticks\nFloat computation took %d ticks\n(at a rate of %d ticks per second)\n",
		c.IntTicks, c.FloatTicks, c.TicksPerSecond)
	if details {
		fmt.Fprintf(out, "Integer: %s\nFloat:   %s\nFloat/int ratio: %s\n",
			format.FormatTicks(uint64(c.IntTicks), c.TicksPerSecond),
			format.FormatTicks(uint64(c.FloatTicks), c.TicksPerSecond),
			format.FormatRatio(uint64(c.IntTicks), uint64(c.FloatTicks)))
	}
	fmt.Fprintln(out)
}

// FormatMismatch renders the diagnostic printed when the two methods disagree.
func FormatMismatch(program string, n uint64) string {
	return fmt.Sprintf("%s: different methods gave different results for fib(%d)\n", program, n)
}

// DisplayMismatch writes the mismatch diagnostic followed by a blank line.
func DisplayMismatch(out io.Writer, program string, n uint64) {
	fmt.Fprintln(out, FormatMismatch(program, n))
}
