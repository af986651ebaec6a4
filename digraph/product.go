package digraph

// AdjacencyProduct returns, for every vertex v, the row-wise deduplicated
// union of B(u) over all u in A(v): `union_{u in A(v)} B(u)`.
//
// forceDiagonal, if true, additionally emits B(v) first for every row and
// skips any u == v encountered while scanning A(v) (it has already been
// accounted for via the forced diagonal). ignoreDiagonal, if true, skips
// any u == v in A(v) without emitting B(v) at all. Requesting both is a
// contradiction and returns Null() (ErrContradictoryModifiers) — checked
// before the null/size checks, mirroring the source's
// tbg_adjacency_product, which validates the modifier pair first.
//
// Sizing uses the same two-phase (greedy upper bound, then exact recount)
// allocate-or-retry pattern as Union, for the same reason: the greedy sum
// of per-row B sizes is a fast but possibly loose upper bound once
// duplicate contributions across different u are dropped by the
// row-marker dedup.
//
// Returns Null() if a/b are null, disagree on Vertices, or both diagonal
// modifiers are set.
func AdjacencyProduct(a, b *Digraph, forceDiagonal, ignoreDiagonal bool) Digraph {
	if forceDiagonal && ignoreDiagonal {
		return Null()
	}
	if a.IsNull() || b.IsNull() || a.Vertices != b.Vertices {
		return Null()
	}
	if a.Vertices == 0 {
		return Empty(0, 0)
	}

	vertices := a.Vertices
	rowMarkers := make([]Vid, vertices)

	greedy := Arcref(0)
	for v := Vid(0); v < vertices; v++ {
		if forceDiagonal {
			greedy += b.TailPtr[v+1] - b.TailPtr[v]
		}
		for _, u := range a.Row(v) {
			if u == v && (forceDiagonal || ignoreDiagonal) {
				continue
			}
			greedy += b.TailPtr[u+1] - b.TailPtr[u]
		}
	}

	out := Init(vertices, greedy)
	if out.IsNull() {
		exact := doProduct(vertices, a, b, rowMarkers, forceDiagonal, ignoreDiagonal, false, nil, nil)
		out = Init(vertices, exact)
		if out.IsNull() {
			return out
		}
	}

	written := doProduct(vertices, a, b, rowMarkers, forceDiagonal, ignoreDiagonal, true, out.TailPtr, out.Head)
	// Shrinking to the count just written can never truncate.
	_ = ChangeArcStorage(&out, written)

	return out
}

// doProduct performs a single pass of the adjacency-product algorithm,
// mirroring doUnion's write/no-write duality for two-phase sizing.
func doProduct(vertices Vid, a, b *Digraph, rowMarkers []Vid, forceDiagonal, ignoreDiagonal, write bool, outTailPtr []Arcref, outHead []Vid) Arcref {
	counter := Arcref(0)
	if write {
		outTailPtr[0] = 0
	}
	for v := Vid(0); v < vertices; v++ {
		rowMarkers[v] = VidMax
	}

	for v := Vid(0); v < vertices; v++ {
		if forceDiagonal {
			for _, h := range b.Row(v) {
				if rowMarkers[h] != v {
					rowMarkers[h] = v
					if write {
						outHead[counter] = h
					}
					counter++
				}
			}
		}
		for _, u := range a.Row(v) {
			if u == v && (forceDiagonal || ignoreDiagonal) {
				continue
			}
			for _, h := range b.Row(u) {
				if rowMarkers[h] != v {
					rowMarkers[h] = v
					if write {
						outHead[counter] = h
					}
					counter++
				}
			}
		}
		if write {
			outTailPtr[v+1] = counter
		}
	}

	return counter
}
