// Package metrics holds the Prometheus collectors shared by the engines and
// the comparison harness, plus runtime memory sampling.
//
// Collectors are registered on a private registry instead of the global
// default one, so the process never exposes Go runtime metrics it was not
// asked for and tests can gather a predictable set of families.
package metrics
