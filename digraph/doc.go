// Package digraph implements a compact directed-graph substrate in
// compressed sparse row (CSR) layout: construction, transpose, row-wise
// deduplicated union of several graphs, and adjacency product with optional
// diagonal handling.
//
// These four operations are the arithmetic the seed-finding engine (package
// seeds) is built from: the exclusion graph is transpose + product + union
// composed on top of an externally supplied nearest-neighbor graph (NNG).
//
// A Digraph has a fixed vertex set {0, ..., Vertices-1}. Arcs of vertex v
// occupy Head[TailPtr[v] : TailPtr[v+1]]. Self-loops are permitted;
// multi-arcs are permitted by layout but eliminated per-row by Union and
// Product. Ownership of a Digraph's storage is exclusive to its holder —
// there is no locking here, see doc comment on Digraph for why.
//
// Every digraph-returning operation that can fail returns the distinguished
// Null() digraph (TailPtr == nil) instead of an error value; this mirrors
// the C library this package reimplements (scclust's tbg_Digraph), where a
// null result is the sole failure signal and no exceptions exist. Callers
// test IsNull. The one in-place mutator, ChangeArcStorage, returns an error
// instead (ErrNullInput, ErrTruncation).
//
// Complexity: every operation here is linear in the number of arcs involved
// (plus O(Vertices) bookkeeping), matching the size of its CSR inputs.
package digraph
