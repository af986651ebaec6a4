package fixture

import (
	"math/rand"

	"github.com/RoseZhao/scclust/digraph"
)

const (
	minRegularVertices      = 1
	maxStubMatchingAttempts = 8
)

// Regular builds a k-out-regular digraph on n vertices: every row has
// exactly k distinct heads, none of them the row's own vertex. It works
// by filling a flat stub pool of n*k entries (each vertex id repeated k
// times), shuffling it with a seeded source, and slicing it into n
// per-row chunks of k; a chunk that contains a self-loop or a repeated
// head is an invalid realization, so the whole pool is reshuffled and
// retried, up to maxStubMatchingAttempts times.
//
// Returns ErrTooFewVertices if n < 1 or k is outside [0, n), and
// ErrConstructFailed if no valid realization is found within the retry
// budget.
func Regular(n, k int, seed int64) (digraph.Digraph, error) {
	if n < minRegularVertices {
		return digraph.Null(), ErrTooFewVertices
	}
	if k < 0 || k >= n {
		return digraph.Null(), ErrTooFewVertices
	}
	if k == 0 {
		return digraph.Balanced(digraph.Vid(n), 0, []digraph.Vid{}), nil
	}

	rng := rand.New(rand.NewSource(seed))
	stubs := make([]digraph.Vid, n*k)
	for v := 0; v < n; v++ {
		for i := 0; i < k; i++ {
			stubs[v*k+i] = digraph.Vid(v)
		}
	}

	for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
		rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })

		if valid := tryAssignRows(n, k, stubs); valid != nil {
			return digraph.Balanced(digraph.Vid(n), digraph.Vid(k), valid), nil
		}
	}

	return digraph.Null(), ErrConstructFailed
}

// tryAssignRows checks whether the current shuffle of stubs yields a
// valid realization (per row v: no self-loop, no repeated head) and, if
// so, returns the heads buffer ready for digraph.Balanced. Returns nil on
// an invalid shuffle so the caller can retry.
func tryAssignRows(n, k int, stubs []digraph.Vid) []digraph.Vid {
	heads := make([]digraph.Vid, n*k)
	seen := make(map[digraph.Vid]bool, k)
	for v := 0; v < n; v++ {
		for key := range seen {
			delete(seen, key)
		}
		row := stubs[v*k : (v+1)*k]
		for _, h := range row {
			if h == digraph.Vid(v) || seen[h] {
				return nil
			}
			seen[h] = true
		}
		copy(heads[v*k:(v+1)*k], row)
	}
	return heads
}
