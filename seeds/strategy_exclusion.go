package seeds

import (
	"github.com/RoseZhao/scclust/digraph"
	"github.com/RoseZhao/scclust/sortbucket"
)

// premaskEmptyRows marks every vertex with an empty NNG row as
// permanently excluded (it can never anchor a cluster: checkCandidate
// requires a non-empty row) and overwrites that vertex's own row in the
// exclusion graph with the removed-sentinel, so the in-degree sorter and
// every later scan treat it as having no outgoing influence.
func premaskEmptyRows(nng, exclusion *digraph.Digraph, excluded []bool) {
	for v := digraph.Vid(0); v < nng.Vertices; v++ {
		if len(nng.Row(v)) > 0 {
			continue
		}
		excluded[v] = true
		row := exclusion.Row(v)
		for i := range row {
			row[i] = digraph.VidMax
		}
	}
}

// ExclusionOrder builds the exclusion graph (BuildExclusionGraph),
// pre-excludes vertices with an empty NNG row, then sorts the remaining
// vertices by residual exclusion in-degree and greedily claims each
// unexcluded vertex as a seed, excluding every exclusion-neighbor it
// touches. The scan order is static: no mutable index, no decrements.
func ExclusionOrder(nng *digraph.Digraph, seedInitCapacity int) (Clustering, error) {
	if nng.IsNull() {
		return NullClustering(), ErrNullInput
	}
	if seedInitCapacity < 0 {
		return NullClustering(), ErrNegativeCapacity
	}

	exclusion := BuildExclusionGraph(nng)
	if exclusion.IsNull() {
		return NullClustering(), ErrNullInput
	}

	excluded := make([]bool, nng.Vertices)
	premaskEmptyRows(nng, &exclusion, excluded)

	sorted, err := sortbucket.BuildSort(&exclusion, false)
	if err != nil {
		return NullClustering(), err
	}

	cl := newClustering(nng.Vertices, seedInitCapacity)
	for _, v := range sorted.SortedVertices {
		if excluded[v] {
			continue
		}
		excluded[v] = true
		addSeed(&cl, v)
		for _, u := range exclusion.Row(v) {
			if u == digraph.VidMax {
				continue
			}
			excluded[u] = true
		}
	}

	labelSeeds(&cl, nng)
	return cl, nil
}

// ExclusionUpdating is ExclusionOrder with a mutable sort index: after
// excluding an exclusion-neighbor u of the chosen seed, every
// still-unexcluded exclusion-neighbor of u is demoted one bucket, since
// one of its own exclusion predecessors just left contention.
func ExclusionUpdating(nng *digraph.Digraph, seedInitCapacity int) (Clustering, error) {
	if nng.IsNull() {
		return NullClustering(), ErrNullInput
	}
	if seedInitCapacity < 0 {
		return NullClustering(), ErrNegativeCapacity
	}

	exclusion := BuildExclusionGraph(nng)
	if exclusion.IsNull() {
		return NullClustering(), ErrNullInput
	}

	excluded := make([]bool, nng.Vertices)
	premaskEmptyRows(nng, &exclusion, excluded)

	sorted, err := sortbucket.BuildSort(&exclusion, true)
	if err != nil {
		return NullClustering(), err
	}

	cl := newClustering(nng.Vertices, seedInitCapacity)
	for pos, v := range sorted.SortedVertices {
		if excluded[v] {
			continue
		}
		excluded[v] = true
		addSeed(&cl, v)
		for _, u := range exclusion.Row(v) {
			if u == digraph.VidMax || excluded[u] {
				continue
			}
			excluded[u] = true
			for _, w := range exclusion.Row(u) {
				if w == digraph.VidMax || excluded[w] {
					continue
				}
				if sorted.VertexIndex[w] > pos {
					_ = sorted.Decrease(w, pos)
				}
			}
		}
	}

	labelSeeds(&cl, nng)
	return cl, nil
}
