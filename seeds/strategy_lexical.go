package seeds

import (
	"github.com/RoseZhao/scclust/digraph"
	"github.com/RoseZhao/scclust/sortbucket"
)

// Lexical scans v = 0..n-1 in plain vertex-id order, picking every vertex
// that still qualifies as a candidate and labeling its cluster
// immediately (no post-pass is needed: once a vertex is assigned here it
// never needs relabeling).
func Lexical(nng *digraph.Digraph, seedInitCapacity int) (Clustering, error) {
	if nng.IsNull() {
		return NullClustering(), ErrNullInput
	}
	if seedInitCapacity < 0 {
		return NullClustering(), ErrNegativeCapacity
	}

	cl := newClustering(nng.Vertices, seedInitCapacity)
	for v := digraph.Vid(0); v < nng.Vertices; v++ {
		if checkCandidate(v, nng, cl.Assigned) {
			label := len(cl.Seeds)
			addSeed(&cl, v)
			assignNeighbors(&cl, v, label, nng)
		}
	}
	return cl, nil
}

// InwardsOrder sorts vertices ascending by static residual in-degree (no
// mutable index, since this strategy never re-prioritizes mid-scan) and
// runs the same candidate-check-and-claim body as Lexical over that
// order: vertices few others require are visited first, so they get a
// chance to seed a cluster before some other vertex's pick assigns them
// away.
func InwardsOrder(nng *digraph.Digraph, seedInitCapacity int) (Clustering, error) {
	if nng.IsNull() {
		return NullClustering(), ErrNullInput
	}
	if seedInitCapacity < 0 {
		return NullClustering(), ErrNegativeCapacity
	}

	sorted, err := sortbucket.BuildSort(nng, false)
	if err != nil {
		return NullClustering(), err
	}

	cl := newClustering(nng.Vertices, seedInitCapacity)
	for _, v := range sorted.SortedVertices {
		if checkCandidate(v, nng, cl.Assigned) {
			label := len(cl.Seeds)
			addSeed(&cl, v)
			assignNeighbors(&cl, v, label, nng)
		}
	}
	return cl, nil
}
