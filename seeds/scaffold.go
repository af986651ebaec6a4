package seeds

import "github.com/RoseZhao/scclust/digraph"

// checkCandidate reports whether v can still become a seed: it must not
// already be assigned, it must have at least one NNG out-neighbor (an
// empty row can never anchor a cluster), and none of its out-neighbors
// may already be assigned (otherwise v's closed neighborhood would
// overlap an already-claimed one).
func checkCandidate(v digraph.Vid, nng *digraph.Digraph, assigned []bool) bool {
	if assigned[v] {
		return false
	}
	row := nng.Row(v)
	if len(row) == 0 {
		return false
	}
	for _, u := range row {
		if assigned[u] {
			return false
		}
	}
	return true
}

// assignNeighbors marks s and each of its NNG out-neighbors as assigned
// and, when label is not Unlabeled, records that label for all of them.
// Strategies that defer labeling to a post-pass (the updating and
// exclusion variants) call this with label == Unlabeled to mark
// assignment only.
func assignNeighbors(cl *Clustering, s digraph.Vid, label int, nng *digraph.Digraph) {
	cl.Assigned[s] = true
	if label != Unlabeled {
		cl.ClusterLabel[s] = label
	}
	for _, u := range nng.Row(s) {
		cl.Assigned[u] = true
		if label != Unlabeled {
			cl.ClusterLabel[u] = label
		}
	}
}

// labelSeeds runs the post-pass labeling step used by strategies that
// defer cluster-label assignment during discovery: for each seed, in
// discovery order, set its label to its index in cl.Seeds and propagate
// that label to its NNG out-neighbors, marking all of them assigned.
// The exclusion strategies track exclusion in their own bitmap and
// never touch cl.Assigned during discovery, so this pass is what makes
// the assigned bitmap reflect the final seed neighborhoods.
func labelSeeds(cl *Clustering, nng *digraph.Digraph) {
	for i, s := range cl.Seeds {
		cl.Assigned[s] = true
		cl.ClusterLabel[s] = i
		for _, u := range nng.Row(s) {
			cl.Assigned[u] = true
			cl.ClusterLabel[u] = i
		}
	}
}
