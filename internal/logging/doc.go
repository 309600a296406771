// Package logging provides a unified logging interface for fibcompare.
// Engines, the comparison harness and the CLI log through Logger, which is
// backed by zerolog in production and by the standard library logger in a
// few tests.
package logging
