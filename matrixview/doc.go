// Package matrixview is a dense-matrix adjacency view: NewDense builds a
// zeroed row-major matrix, FromDigraph scatters a digraph.Digraph's CSR
// arcs into it, and ToDigraph is the inverse conversion. It deliberately
// carries no linear algebra (no LU/QR/eigen/inverse, no Floyd-Warshall,
// no statistics, no incidence matrices) — this package exists purely so
// small exclusion graphs can be round-tripped against a dense ground
// truth in tests.
package matrixview
