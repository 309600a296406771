//go:build !(linux || darwin || freebsd)

package harness

// DefaultClock returns a wall-time clock; this platform has no process CPU
// clock reachable through golang.org/x/sys.
func DefaultClock() Clock { return NewMonotonicClock() }
