// Package format holds the display helpers shared by the CLI and the
// dashboard: durations, tick counts, digit grouping and progress bars.
package format
