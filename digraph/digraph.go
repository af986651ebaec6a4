package digraph

import "math"

// Vid is a vertex identifier. Valid vertex ids for a Digraph of Vertices
// vertices lie in [0, Vertices). VidMax is a sentinel strictly greater than
// any legal vertex id: it marks a removed arc in mutable buffers (see
// package seeds' exclusion-graph pre-masking) and must never appear in the
// Head slice of a Digraph observed outside that internal bookkeeping.
type Vid = int

// Arcref indexes into a Digraph's Head slice / counts arcs.
type Arcref = int

// VidMax is the "arc removed" sentinel. It is defined as the maximum int
// value representable by Vid (== int here) so it can never collide with a
// real vertex id on any platform this package is built for.
const VidMax Vid = math.MaxInt

// Digraph is a fixed-vertex-set directed graph in compressed sparse row
// layout.
//
// Arcs of tail v occupy Head[TailPtr[v] : TailPtr[v+1]]. TailPtr has length
// Vertices+1 and is non-decreasing; TailPtr[Vertices] is the number of arcs
// currently in use, which must not exceed MaxArcs (== cap(Head) by
// convention, tracked separately so ChangeArcStorage can validate before
// reallocating).
//
// A null Digraph has TailPtr == nil; every other field is meaningless and
// must not be read. An empty Digraph has TailPtr[v] == 0 for all v — no
// arcs, but a valid vertex set.
//
// Ownership: exclusive to whichever goroutine or data structure holds the
// value. Package digraph has no internal locking (see doc.go): Digraph is
// a value that may be freely copied by the Go
// runtime (it holds no pointers the caller doesn't already see via Head),
// but concurrent mutation of the same Head/TailPtr backing arrays from two
// goroutines is a data race like any other unsynchronized slice access.
type Digraph struct {
	Vertices Vid      // size of the fixed vertex set
	MaxArcs  Arcref   // capacity of Head
	TailPtr  []Arcref // length Vertices+1, offsets into Head
	Head     []Vid    // length MaxArcs, only [0:TailPtr[Vertices]) is live
}

// Null returns the distinguished null Digraph: TailPtr == nil, every other
// field zero. All digraph-returning operations in this package fail by
// returning this value instead of a partially constructed Digraph.
func Null() Digraph {
	return Digraph{}
}

// IsNull reports whether dg is the null Digraph. Per the invariants in
// doc.go, this is the only field that may be read on a digraph of unknown
// provenance.
func (dg *Digraph) IsNull() bool {
	return dg == nil || dg.TailPtr == nil
}

// UsedArcs returns TailPtr[Vertices], the number of arcs currently stored.
// Precondition: dg is non-null.
func (dg *Digraph) UsedArcs() Arcref {
	return dg.TailPtr[dg.Vertices]
}

// Row returns the (read-only) slice of out-neighbors of v. Precondition: dg
// is non-null and 0 <= v < dg.Vertices; callers within this module enforce
// this, Row itself does not re-validate on every call since it sits on the
// hot path of Union/AdjacencyProduct/the seed-finder.
func (dg *Digraph) Row(v Vid) []Vid {
	return dg.Head[dg.TailPtr[v]:dg.TailPtr[v+1]]
}

// Init allocates a Digraph for the given vertex count and arc capacity.
// TailPtr is allocated but left with unspecified contents (mirrors the C
// source's malloc, not calloc) — callers that need a zeroed TailPtr should
// use Empty. Head is allocated only if maxArcs > 0.
//
// Returns Null() if vertices < 0 or maxArcs < 0.
//
// Complexity: O(vertices + maxArcs).
func Init(vertices Vid, maxArcs Arcref) Digraph {
	if vertices < 0 || maxArcs < 0 {
		return Null()
	}

	dg := Digraph{
		Vertices: vertices,
		MaxArcs:  maxArcs,
		TailPtr:  make([]Arcref, vertices+1),
	}
	if maxArcs > 0 {
		dg.Head = make([]Vid, maxArcs)
	}

	return dg
}

// Empty allocates a Digraph like Init, but additionally zeroes TailPtr so
// every vertex starts with an empty out-row. make([]int, n) already zeroes
// in Go, so Empty and Init differ only in documented intent, not in code —
// kept as two names to mirror the source's tbg_init_digraph/tbg_empty_digraph
// split and to let call sites state which guarantee they rely on.
//
// Complexity: O(vertices + maxArcs).
func Empty(vertices Vid, maxArcs Arcref) Digraph {
	return Init(vertices, maxArcs)
}

// Identity returns the self-loop-only digraph on `vertices` vertices:
// Row(v) == {v} for every v.
//
// Complexity: O(vertices).
func Identity(vertices Vid) Digraph {
	if vertices < 0 {
		return Null()
	}

	dg := Init(vertices, vertices)
	if dg.IsNull() {
		return dg
	}
	for v := Vid(0); v < vertices; v++ {
		dg.TailPtr[v] = v
		dg.Head[v] = v
	}
	dg.TailPtr[vertices] = vertices

	return dg
}

// Balanced wraps a caller-supplied, already-populated heads buffer of
// length vertices*arcsPerVertex as a k-regular digraph: TailPtr[v] =
// v*arcsPerVertex for every v. This is how an external NN-search collaborator
// (package dataset, or any caller that already has a flat k-NN array) hands
// a regular NNG to this package without a copy — Balanced takes ownership
// of heads; the caller must not retain or mutate it afterwards.
//
// Returns Null() if vertices < 0, arcsPerVertex < 0, or len(heads) !=
// vertices*arcsPerVertex.
func Balanced(vertices Vid, arcsPerVertex Vid, heads []Vid) Digraph {
	if vertices < 0 || arcsPerVertex < 0 || len(heads) != vertices*arcsPerVertex {
		return Null()
	}

	dg := Digraph{
		Vertices: vertices,
		MaxArcs:  vertices * arcsPerVertex,
		Head:     heads,
		TailPtr:  make([]Arcref, vertices+1),
	}
	for v := Vid(0); v <= vertices; v++ {
		dg.TailPtr[v] = v * arcsPerVertex
	}

	return dg
}

// Copy returns a deep copy of dg whose capacity equals dg's used arc count
// (i.e. the copy is tightly packed, regardless of dg's own MaxArcs).
//
// Returns Null() if dg is null.
func Copy(dg *Digraph) Digraph {
	if dg.IsNull() {
		return Null()
	}
	if dg.Vertices == 0 {
		return Empty(0, 0)
	}

	used := dg.TailPtr[dg.Vertices]
	out := Init(dg.Vertices, used)
	if out.IsNull() {
		return out
	}
	copy(out.TailPtr, dg.TailPtr[:dg.Vertices+1])
	copy(out.Head, dg.Head[:used])

	return out
}
