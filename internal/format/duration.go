package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// TicksToDuration converts a tick count at the given rate to a duration.
func TicksToDuration(ticks, ticksPerSecond uint64) time.Duration {
	if ticksPerSecond == 0 {
		return 0
	}
	secs := ticks / ticksPerSecond
	rem := ticks % ticksPerSecond
	return time.Duration(secs)*time.Second + time.Duration(rem)*time.Second/time.Duration(ticksPerSecond)
}

// FormatTicks renders a tick count with its duration equivalent, for example
// "1234 ticks (1ms)".
func FormatTicks(ticks, ticksPerSecond uint64) string {
	return fmt.Sprintf("%d ticks (%s)", ticks, FormatExecutionDuration(TicksToDuration(ticks, ticksPerSecond)))
}

// FormatRatio describes how many times slower b is than a, for example
// "3.20x". It returns "n/a" when a is zero.
func FormatRatio(a, b uint64) string {
	if a == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.2fx", float64(b)/float64(a))
}

// FormatETA renders a remaining-time estimate at a resolution suited to its
// size. Non-positive values mean no estimate is available yet.
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		s := int(eta.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta.Hours())
		m := int(eta.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}
