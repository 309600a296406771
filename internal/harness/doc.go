// Package harness runs the exact integer engine and the Binet float engine on
// the same index, compares their decimal renderings digit for digit and
// records how many clock ticks each one took.
//
// Compare handles a single index. Sweep walks an ascending range and stops at
// the first disagreement, which is how the graph mode produces its table.
package harness
