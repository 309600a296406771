// Package fibonacci implements several independent ways of computing the
// n-th Fibonacci number on arbitrary-precision numbers:
//
//   - FastDoubling: doubling over the triple (F(k-1), F(k), F(k+1)).
//   - LucasDoubling: doubling over (L(k), F(k)) with an even-index shortcut.
//   - FibLucas: top-down recursion on (F(k), L(k)) with an explicit scratch.
//   - Binet: φⁿ/√5 evaluated in big.Float at a precision derived from n.
//   - Iterative: the O(n) reference used as an oracle in tests.
//
// Engines implement the internal coreCalculator interface and are exposed
// through the Calculator decorator, which adds index validation, tracing,
// metrics and logging. DefaultFactory maps the short names used on the
// command line to engines.
package fibonacci
