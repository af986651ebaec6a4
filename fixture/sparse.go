package fixture

import (
	"math/rand"
	"sort"

	"github.com/RoseZhao/scclust/digraph"
)

const minSparseVertices = 1

// Sparse builds an irregular NNG-shaped digraph on n vertices: for every
// ordered pair (v, u) with v != u, an arc v->u is independently included
// with probability density, in stable trial order (v ascending, then u
// ascending) for reproducibility. Each row is capped at maxOut arcs —
// once a row reaches the cap, further trials for that row are skipped,
// so a capped row holds the first maxOut successful trials in ascending
// u order. Rows can come out shorter than maxOut (including empty),
// which exercises the seed-finder's empty-row exclusion path.
//
// Returns ErrTooFewVertices if n < 1, ErrInvalidDensity if density is
// outside [0, 1].
func Sparse(n, maxOut int, density float64, seed int64) (digraph.Digraph, error) {
	if n < minSparseVertices {
		return digraph.Null(), ErrTooFewVertices
	}
	if density < 0 || density > 1 {
		return digraph.Null(), ErrInvalidDensity
	}
	if maxOut < 0 {
		maxOut = 0
	}

	rng := rand.New(rand.NewSource(seed))
	rows := make([][]digraph.Vid, n)

	for v := 0; v < n; v++ {
		row := make([]digraph.Vid, 0, maxOut)
		for u := 0; u < n && len(row) < maxOut; u++ {
			if u == v {
				continue
			}
			if rng.Float64() < density {
				row = append(row, digraph.Vid(u))
			}
		}
		sort.Slice(row, func(i, j int) bool { return row[i] < row[j] })
		rows[v] = row
	}

	total := 0
	for _, r := range rows {
		total += len(r)
	}

	dg := digraph.Init(digraph.Vid(n), total)
	if dg.IsNull() {
		return digraph.Null(), ErrConstructFailed
	}
	dg.TailPtr[0] = 0
	off := 0
	for v, r := range rows {
		copy(dg.Head[off:], r)
		off += len(r)
		dg.TailPtr[v+1] = off
	}

	return dg, nil
}
