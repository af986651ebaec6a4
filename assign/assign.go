package assign

import (
	"github.com/RoseZhao/scclust/digraph"
	"github.com/RoseZhao/scclust/seeds"
)

// AssignRemainingLexical labels every unassigned vertex in cl with the
// label of the first labeled neighbor found while scanning
// priorityGraph.Row(v), left to right. A vertex with no labeled neighbor
// is left at seeds.Unlabeled.
//
// This does not set cl.Assigned[v]: the label is authoritative on its
// own, and the assigned bitmap is a seed-discovery bookkeeping detail
// that a completer has no further use for (see DESIGN.md's Open
// Questions section).
func AssignRemainingLexical(cl *seeds.Clustering, priorityGraph *digraph.Digraph) error {
	if cl.IsNull() {
		return ErrNullClustering
	}
	if priorityGraph.IsNull() {
		return ErrNullPriorityGraph
	}

	for v := digraph.Vid(0); v < cl.Vertices; v++ {
		if cl.ClusterLabel[v] != seeds.Unlabeled {
			continue
		}
		for _, u := range priorityGraph.Row(v) {
			if u == digraph.VidMax {
				continue
			}
			if lbl := cl.ClusterLabel[u]; lbl != seeds.Unlabeled {
				cl.ClusterLabel[v] = lbl
				break
			}
		}
	}
	return nil
}

// AssignRemainingKeepEven labels every unassigned vertex in cl with the
// label of whichever labeled neighbor currently has the fewest
// assignments in its size-desiredSize tranche, so that clusters fill up
// in roughly even rounds rather than first-come-first-served.
//
// A per-label cluster_size counter is incremented on every assignment to
// that label; once it reaches a multiple of desiredSize it resets to
// zero, so the comparison naturally cycles among the labels an
// unassigned vertex could adopt instead of draining into whichever
// candidate happens to be scanned first.
func AssignRemainingKeepEven(cl *seeds.Clustering, priorityGraph *digraph.Digraph, desiredSize int) error {
	if cl.IsNull() {
		return ErrNullClustering
	}
	if priorityGraph.IsNull() {
		return ErrNullPriorityGraph
	}
	if desiredSize <= 0 {
		return ErrInvalidDesiredSize
	}

	clusterSize := make([]int, len(cl.Seeds))

	for v := digraph.Vid(0); v < cl.Vertices; v++ {
		if cl.ClusterLabel[v] != seeds.Unlabeled {
			continue
		}

		best := seeds.Unlabeled
		bestSize := -1
		for _, u := range priorityGraph.Row(v) {
			if u == digraph.VidMax {
				continue
			}
			lbl := cl.ClusterLabel[u]
			if lbl == seeds.Unlabeled {
				continue
			}
			if best == seeds.Unlabeled || clusterSize[lbl] < bestSize {
				best = lbl
				bestSize = clusterSize[lbl]
			}
		}
		if best == seeds.Unlabeled {
			continue
		}

		cl.ClusterLabel[v] = best
		clusterSize[best]++
		if clusterSize[best]%desiredSize == 0 {
			clusterSize[best] = 0
		}
	}
	return nil
}
