package sortbucket

import (
	"fmt"

	"github.com/RoseZhao/scclust/digraph"
)

// SortState is the result of a bucket sort of a digraph's vertices by
// residual in-degree ("inwards count"). See the package doc for the
// invariants each field maintains.
type SortState struct {
	Vertices digraph.Vid

	// SortedVertices is always populated: the stable permutation of
	// {0, ..., Vertices-1} ascending by (original) inwards count.
	SortedVertices []digraph.Vid

	// InwardsCount, VertexIndex, and BucketIndex are populated only when
	// BuildSort was called with mutable = true. They are nil otherwise,
	// since a non-mutable SortState never calls Decrease and has no use
	// for them.
	InwardsCount []int
	VertexIndex  []int
	BucketIndex  []int

	mutable bool
}

// BuildSort computes, for every vertex of g, its residual in-degree (the
// number of live arcs pointing at it — a digraph.VidMax head entry, used
// by package seeds to mask out excluded arcs without resizing storage, is
// not counted) and stable-sorts the vertices ascending by that count, ties
// broken by ascending vertex id.
//
// When mutable is true, the returned SortState also carries the index
// structures Decrease needs to maintain the sort incrementally as
// individual counts drop by one. When mutable is false those arrays are
// released immediately after sorting, since strategies that only ever
// need a single static pass (INWARDS_ORDER, EXCLUSION_ORDER) have no use for
// them.
func BuildSort(g *digraph.Digraph, mutable bool) (*SortState, error) {
	if g.IsNull() {
		return nil, ErrNullInput
	}

	n := g.Vertices
	inwardsCount := make([]int, n)
	for v := digraph.Vid(0); v < n; v++ {
		for _, h := range g.Row(v) {
			if h == digraph.VidMax {
				continue
			}
			inwardsCount[h]++
		}
	}

	maxIn := 0
	for _, c := range inwardsCount {
		if c > maxIn {
			maxIn = c
		}
	}

	counts := make([]int, maxIn+1)
	for _, c := range inwardsCount {
		counts[c]++
	}

	// bucketIndex[c] starts as the end-exclusive boundary of bucket c
	// (cumulative count of vertices with count <= c); the placement loop
	// below decrements it down to the start of bucket c as it consumes
	// that bucket's members back to front.
	bucketIndex := make([]int, maxIn+1)
	running := 0
	for c := 0; c <= maxIn; c++ {
		running += counts[c]
		bucketIndex[c] = running
	}

	sortedVertices := make([]digraph.Vid, n)
	vertexIndex := make([]int, n)
	for v := n - 1; v >= 0; v-- {
		c := inwardsCount[v]
		bucketIndex[c]--
		pos := bucketIndex[c]
		sortedVertices[pos] = v
		vertexIndex[v] = pos
	}

	s := &SortState{
		Vertices:       n,
		SortedVertices: sortedVertices,
		mutable:        mutable,
	}
	if mutable {
		s.InwardsCount = inwardsCount
		s.VertexIndex = vertexIndex
		s.BucketIndex = bucketIndex
	}
	return s, nil
}

// Decrease moves v from its current bucket c down to bucket c-1 in O(1),
// where currentPos is the seed-finding sweep's current read cursor into
// SortedVertices. If the slot v would normally move into (the current
// start of bucket c) lies at or behind currentPos — meaning the sweep has
// already consumed it — Decrease instead places v just ahead of the
// cursor and records that bucket c-1 now starts there, so a later
// Decrease targeting the same bucket lands in the right place.
//
// Decrease is a no-op returning ErrAlreadyZero if v's count is already
// zero, and ErrNotMutable if s was built with mutable = false.
func (s *SortState) Decrease(v digraph.Vid, currentPos int) error {
	if !s.mutable {
		return ErrNotMutable
	}
	if v < 0 || v >= s.Vertices {
		return ErrVertexOutOfRange
	}

	c := s.InwardsCount[v]
	if c == 0 {
		return ErrAlreadyZero
	}

	from := s.VertexIndex[v]
	to := s.BucketIndex[c]
	if to <= currentPos {
		to = currentPos + 1
		s.BucketIndex[c-1] = to
	}

	other := s.SortedVertices[to]
	s.SortedVertices[from], s.SortedVertices[to] = s.SortedVertices[to], s.SortedVertices[from]
	s.VertexIndex[v] = to
	s.VertexIndex[other] = from

	s.BucketIndex[c]++
	s.InwardsCount[v]--
	return nil
}

// String renders a compact summary useful in test failures and debug logs.
func (s *SortState) String() string {
	return fmt.Sprintf("SortState{vertices=%d, mutable=%t}", s.Vertices, s.mutable)
}
