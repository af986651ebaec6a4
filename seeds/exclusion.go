package seeds

import "github.com/RoseZhao/scclust/digraph"

// BuildExclusionGraph composes the "cannot co-seed" graph for an NNG N:
// E = N ∪ (N · Nᵀ with a forced self-diagonal). An arc v→w in E means v
// and w share at least one NNG out-neighbor, or w is one of v's
// out-neighbors, or (from the forced diagonal) v is one of w's
// out-neighbors, so choosing both as seeds would break the
// disjoint-closed-neighborhood invariant.
//
// Returns the null Digraph if nng is null.
func BuildExclusionGraph(nng *digraph.Digraph) digraph.Digraph {
	if nng.IsNull() {
		return digraph.Null()
	}

	transposed := digraph.Transpose(nng)
	product := digraph.AdjacencyProduct(nng, &transposed, true, false)
	if product.IsNull() {
		return digraph.Null()
	}

	return digraph.Union(nng, &product)
}
