package digraph

// Transpose returns the reverse digraph: an arc u→v exists in the result
// iff v→u exists in dg.
//
// Implemented as the classic two-pass counting sort from the source
// library (tbg_digraph_transpose): first accumulate in-degrees into a
// cumulative offset array (reusing it as TailPtr for the output), then
// scatter each arc into its destination row while advancing a per-row
// write cursor carried in that same offset array. This gives O(Vertices +
// arcs) time with a single extra O(Vertices+1) scratch buffer — no sorting
// of arcs is needed because the cumulative sum already produces row
// boundaries in vertex order.
//
// Returns Null() if dg is null.
func Transpose(dg *Digraph) Digraph {
	if dg.IsNull() {
		return Null()
	}
	if dg.Vertices == 0 {
		return Empty(0, 0)
	}

	used := dg.TailPtr[dg.Vertices]

	// rowCount[v+1] will hold the in-degree of v; rowCount[0] stays 0.
	// After the cumulative sum below, rowCount[v] is both out.TailPtr[v]
	// and the next free write slot for row v — the same trick the source
	// uses to avoid a second scratch array.
	rowCount := make([]Arcref, dg.Vertices+1)
	for _, h := range dg.Head[:used] {
		rowCount[h+1]++
	}

	out := Init(dg.Vertices, used)
	if out.IsNull() {
		return out
	}

	out.TailPtr[0] = 0
	for v := Vid(1); v <= dg.Vertices; v++ {
		rowCount[v] += rowCount[v-1]
		out.TailPtr[v] = rowCount[v]
	}

	for v := Vid(0); v < dg.Vertices; v++ {
		for _, arc := range dg.Row(v) {
			out.Head[rowCount[arc]] = v
			rowCount[arc]++
		}
	}

	return out
}
