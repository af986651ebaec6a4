package seeds

import (
	"github.com/RoseZhao/scclust/digraph"
	"github.com/RoseZhao/scclust/sortbucket"
)

// InwardsUpdating sorts vertices by residual in-degree with a mutable
// index, and as each seed s is picked, demotes every still-unassigned
// second-step vertex (a vertex reached via one of s's out-neighbors) that
// still sits ahead of the sweep cursor — one of its blocking predecessors
// just got claimed, so its residual count drops by one.
//
// Cluster labels are not assigned during discovery (only the assigned
// bitmap is updated); a single post-pass labels every seed and its NNG
// out-neighbors once the seed set is final.
func InwardsUpdating(nng *digraph.Digraph, seedInitCapacity int) (Clustering, error) {
	if nng.IsNull() {
		return NullClustering(), ErrNullInput
	}
	if seedInitCapacity < 0 {
		return NullClustering(), ErrNegativeCapacity
	}

	sorted, err := sortbucket.BuildSort(nng, true)
	if err != nil {
		return NullClustering(), err
	}

	cl := newClustering(nng.Vertices, seedInitCapacity)

	// seen dedups the second-step set per pick via the row-marker stamp
	// trick (same idiom as digraph.Union/AdjacencyProduct): a vertex
	// reached through two different out-neighbors of s is decreased only
	// once, matching its single entry in N(N(s)) as a set.
	seen := make([]int, nng.Vertices)
	for i := range seen {
		seen[i] = -1
	}
	stamp := 0

	for pos, v := range sorted.SortedVertices {
		if !checkCandidate(v, nng, cl.Assigned) {
			continue
		}
		addSeed(&cl, v)
		assignNeighbors(&cl, v, Unlabeled, nng)

		stamp++
		for _, u := range nng.Row(v) {
			for _, w := range nng.Row(u) {
				if w == digraph.VidMax || seen[w] == stamp {
					continue
				}
				seen[w] = stamp
				if cl.Assigned[w] {
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
