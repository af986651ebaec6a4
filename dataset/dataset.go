package dataset

import (
	"fmt"
	"sort"

	"github.com/RoseZhao/scclust/digraph"
	"github.com/RoseZhao/scclust/topology"
)

type candidate struct {
	to       int
	distance float64
}

// Dataset holds a set of points by integer id and, per point, the
// candidate neighbors (with distance) a caller has already found for
// it. It does not compute distances or search for neighbors itself.
type Dataset struct {
	ids        []int
	index      map[int]int
	candidates map[int][]candidate

	// Warnings is populated by BuildNNG with advisory, non-fatal
	// observations about the graph it built (e.g. a weakly-disconnected
	// result). It is reset on every BuildNNG call.
	Warnings []string
}

// New returns an empty Dataset.
func New() *Dataset {
	return &Dataset{
		index:      make(map[int]int),
		candidates: make(map[int][]candidate),
	}
}

// AddPoint registers a new point by id. Returns ErrDuplicatePoint if id
// was already added.
func (ds *Dataset) AddPoint(id int) error {
	if _, ok := ds.index[id]; ok {
		return ErrDuplicatePoint
	}
	ds.index[id] = len(ds.ids)
	ds.ids = append(ds.ids, id)
	return nil
}

// AddCandidate records that to is a candidate nearest neighbor of from,
// at the given distance. Both from and to must already have been added
// via AddPoint. Returns ErrSelfCandidate if from == to, ErrPointNotFound
// if either id is unknown, ErrDuplicateCandidate if (from, to) was
// already recorded.
func (ds *Dataset) AddCandidate(from, to int, distance float64) error {
	if from == to {
		return ErrSelfCandidate
	}
	if _, ok := ds.index[from]; !ok {
		return ErrPointNotFound
	}
	if _, ok := ds.index[to]; !ok {
		return ErrPointNotFound
	}
	for _, c := range ds.candidates[from] {
		if c.to == to {
			return ErrDuplicateCandidate
		}
	}
	ds.candidates[from] = append(ds.candidates[from], candidate{to: to, distance: distance})
	return nil
}

// BuildNNG compiles the k nearest recorded candidates of every point
// into a digraph.Digraph: candidates are sorted by ascending distance,
// ties broken by ascending neighbor id, and the first k are kept as
// that point's out-arcs. Returns ErrInvalidK if k < 0, ErrEmptyDataset if
// k > 0 but no points were added, ErrInsufficientCandidates if any point
// has fewer than k candidates recorded, and ErrAllocationFailure if the
// backing digraph cannot be constructed.
//
// On success, Warnings is populated with advisory notes about the
// built graph (currently: weak-connectivity status), but BuildNNG
// never fails because of them.
func (ds *Dataset) BuildNNG(k int) (*digraph.Digraph, error) {
	ds.Warnings = nil

	if k < 0 {
		return nil, ErrInvalidK
	}

	n := len(ds.ids)
	if n == 0 && k > 0 {
		return nil, ErrEmptyDataset
	}
	if n == 0 || k == 0 {
		g := digraph.Empty(digraph.Vid(n), 0)
		return &g, nil
	}

	rows := make([][]digraph.Vid, n)
	for i, id := range ds.ids {
		cands := append([]candidate(nil), ds.candidates[id]...)
		if len(cands) < k {
			return nil, ErrInsufficientCandidates
		}
		sort.SliceStable(cands, func(a, b int) bool {
			if cands[a].distance != cands[b].distance {
				return cands[a].distance < cands[b].distance
			}
			return cands[a].to < cands[b].to
		})

		row := make([]digraph.Vid, k)
		for j := 0; j < k; j++ {
			row[j] = digraph.Vid(ds.index[cands[j].to])
		}
		rows[i] = row
	}

	total := 0
	for _, r := range rows {
		total += len(r)
	}

	g := digraph.Init(digraph.Vid(n), total)
	if g.IsNull() {
		return nil, ErrAllocationFailure
	}
	g.TailPtr[0] = 0
	off := 0
	for i, r := range rows {
		copy(g.Head[off:], r)
		off += len(r)
		g.TailPtr[i+1] = off
	}

	if _, count, err := topology.ConnectedComponents(&g); err == nil && count > 1 {
		ds.Warnings = append(ds.Warnings, fmt.Sprintf("NNG has %d weakly connected components", count))
	}

	return &g, nil
}
