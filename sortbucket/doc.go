// Package sortbucket implements a bucket sort of a digraph's vertices by
// residual in-degree ("inwards count"), with an optional mutable index
// that lets the seed-finding engine (package seeds) apply O(1) decrements
// as it consumes candidates — a priority structure re-sorted incrementally
// rather than rebuilt.
//
// SortState holds four arrays that together encode a stable partition
// refinement:
//
//   - InwardsCount[v]: residual in-degree of v.
//   - SortedVertices:   permutation of {0, ..., n-1}, stable-sorted ascending
//     by InwardsCount at construction (ties broken by ascending vertex id).
//   - VertexIndex[v]:   v's current slot in SortedVertices (mutable mode only).
//   - BucketIndex[c]:   the first slot of the contiguous run of vertices
//     whose current count is c (mutable mode only).
//
// Decrease is the sole mutator once a SortState is built: it moves a
// vertex from bucket c to bucket c-1 in O(1) by swapping it with whichever
// vertex currently occupies the start of bucket c, then advancing that
// bucket's start pointer — the classic technique for maintaining a bucket
// sort under single-unit-at-a-time key decreases (as opposed to a full
// heap, which this domain does not need: keys only ever move down by
// exactly one per event).
package sortbucket
