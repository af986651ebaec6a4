// Package fixture generates synthetic nearest-neighbor-graph-shaped
// digraphs for tests and benchmarks: Regular produces a k-out-regular
// digraph via retried random stub assignment, Sparse produces an
// irregular digraph via per-arc Bernoulli inclusion. Neither constructor
// touches the global math/rand source — both take an explicit seed, so a
// fixture is fully reproducible given the same (n, k, seed) triple.
package fixture
