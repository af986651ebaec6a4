package digraph

// Union returns the row-wise deduplicated union of dgs: for every vertex v,
// Row(v) in the result is the set of heads appearing in any dgs[i]'s row v.
// All operands must share the same Vertices.
//
// Implementation obligation carried over from the source (tbg_digraph_union):
// two-phase allocation. Phase A sums each operand's used-arc count as a
// fast, possibly-loose upper bound on the output size and tries to
// allocate that much; on failure, Phase B recomputes the exact
// post-dedup count (same traversal, no writes) and allocates exactly that.
// The output is then trimmed with ChangeArcStorage down to the exact count
// actually written, since Phase A's bound can overestimate when operands
// share arcs.
//
// doUnion's dedup trick: rowMarkers is a Vertices-sized scratch array,
// stamped with the current row id (not cleared between rows). A head h
// has already been emitted for row v iff rowMarkers[h] == v — this is O(1)
// per arc with no need to clear rowMarkers between rows, since a stale
// stamp from an earlier row never equals the current row id.
//
// Returns Empty(0,0) if dgs is empty (union of zero graphs is vacuously
// the empty graph on 0 vertices, matching the source). Returns Null() if
// any operand is null or operands disagree on Vertices.
func Union(dgs ...*Digraph) Digraph {
	if len(dgs) == 0 {
		return Empty(0, 0)
	}
	if dgs[0].IsNull() {
		return Null()
	}
	vertices := dgs[0].Vertices
	for _, g := range dgs {
		if g.IsNull() || g.Vertices != vertices {
			return Null()
		}
	}

	rowMarkers := make([]Vid, vertices)

	greedy := Arcref(0)
	for _, g := range dgs {
		greedy += g.UsedArcs()
	}

	out := Init(vertices, greedy)
	if out.IsNull() {
		// Phase B: allocation of the loose upper bound failed. Recompute
		// the exact post-dedup arc count without writing, then retry.
		exact := doUnion(vertices, dgs, rowMarkers, false, nil, nil)
		out = Init(vertices, exact)
		if out.IsNull() {
			return out
		}
	}

	written := doUnion(vertices, dgs, rowMarkers, true, out.TailPtr, out.Head)
	// Shrinking to the count just written can never truncate.
	_ = ChangeArcStorage(&out, written)

	return out
}

// doUnion performs a single pass of the union algorithm. When write is
// false it only counts the post-dedup arcs (outTailPtr/outHead must be
// nil); when true it also scatters into outHead and fills outTailPtr.
func doUnion(vertices Vid, dgs []*Digraph, rowMarkers []Vid, write bool, outTailPtr []Arcref, outHead []Vid) Arcref {
	counter := Arcref(0)
	if write {
		outTailPtr[0] = 0
	}
	for v := Vid(0); v < vertices; v++ {
		rowMarkers[v] = VidMax
	}

	for v := Vid(0); v < vertices; v++ {
		for _, g := range dgs {
			for _, h := range g.Row(v) {
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
