package digraph

// ChangeArcStorage resizes dg's Head backing storage to exactly newMaxArcs.
//
// Stage 1 (Validate): dg must be non-null; newMaxArcs must not be smaller
// than the number of arcs already in use (TailPtr[Vertices]) — shrinking
// below that would silently drop live arcs, so ErrTruncation is returned
// instead.
// Stage 2 (Execute): newMaxArcs == 0 frees Head entirely; otherwise Head is
// grown or shrunk to length newMaxArcs, preserving the first
// TailPtr[Vertices] entries.
// Stage 3 (Finalize): MaxArcs is updated to newMaxArcs.
//
// On error dg is left unchanged; ChangeArcStorage never partially mutates.
//
// Complexity: O(newMaxArcs) when growing or shrinking with retained data.
func ChangeArcStorage(dg *Digraph, newMaxArcs Arcref) error {
	if dg.IsNull() {
		return ErrNullInput
	}
	if dg.MaxArcs == newMaxArcs {
		return nil
	}
	if newMaxArcs < 0 || dg.TailPtr[dg.Vertices] > newMaxArcs {
		return ErrTruncation
	}

	if newMaxArcs == 0 {
		dg.Head = nil
		dg.MaxArcs = 0
		return nil
	}

	grown := make([]Vid, newMaxArcs)
	copy(grown, dg.Head[:dg.TailPtr[dg.Vertices]])
	dg.Head = grown
	dg.MaxArcs = newMaxArcs

	return nil
}
