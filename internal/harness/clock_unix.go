//go:build linux || darwin || freebsd

package harness

import "golang.org/x/sys/unix"

// ProcessCPUClock reads the CPU time consumed by the whole process, in
// microseconds. Time spent blocked or descheduled does not count, so timings
// stay comparable on a loaded machine.
type ProcessCPUClock struct{}

// Now implements Clock. A failing clock_gettime reads as zero.
func (ProcessCPUClock) Now() Ticks {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return 0
	}
	return Ticks(ts.Nano() / 1_000)
}

// TicksPerSecond implements Clock.
func (ProcessCPUClock) TicksPerSecond() uint64 { return 1_000_000 }

// DefaultClock returns the process CPU clock.
func DefaultClock() Clock { return ProcessCPUClock{} }
