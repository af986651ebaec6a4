package topology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoseZhao/scclust/digraph"
)

func mustGraph(t *testing.T, vertices digraph.Vid, rows [][]digraph.Vid) digraph.Digraph {
	t.Helper()
	total := 0
	for _, r := range rows {
		total += len(r)
	}
	dg := digraph.Init(vertices, total)
	require.False(t, dg.IsNull())
	dg.TailPtr[0] = 0
	off := 0
	for v, r := range rows {
		copy(dg.Head[off:], r)
		off += len(r)
		dg.TailPtr[v+1] = off
	}
	return dg
}

func TestReachableFollowsOutArcs(t *testing.T) {
	g := mustGraph(t, 5, [][]digraph.Vid{{1}, {2}, {}, {4}, {}})
	reached, err := Reachable(&g, 0)
	require.NoError(t, err)
	assert.Equal(t, map[digraph.Vid]bool{0: true, 1: true, 2: true}, reached)
}

func TestReachableSkipsSentinel(t *testing.T) {
	g := mustGraph(t, 3, [][]digraph.Vid{{digraph.VidMax}, {}, {}})
	reached, err := Reachable(&g, 0)
	require.NoError(t, err)
	assert.Equal(t, map[digraph.Vid]bool{0: true}, reached)
}

func TestReachableNullInput(t *testing.T) {
	null := digraph.Null()
	_, err := Reachable(&null, 0)
	assert.ErrorIs(t, err, ErrNullInput)
}

func TestReachableVertexOutOfRange(t *testing.T) {
	g := mustGraph(t, 2, [][]digraph.Vid{{1}, {0}})
	_, err := Reachable(&g, 5)
	assert.ErrorIs(t, err, ErrVertexOutOfRange)
}

func TestConnectedComponentsTreatsGraphAsUndirected(t *testing.T) {
	// 0->1 only (directed), but weakly connects 0 and 1; 2 and 3 form a
	// separate component via a mutual pair; 4 is isolated.
	g := mustGraph(t, 5, [][]digraph.Vid{{1}, {}, {3}, {2}, {}})
	labels, count, err := ConnectedComponents(&g)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[2], labels[3])
	assert.NotEqual(t, labels[0], labels[2])
	assert.NotEqual(t, labels[0], labels[4])
}

func TestConnectedComponentsNullInput(t *testing.T) {
	null := digraph.Null()
	_, _, err := ConnectedComponents(&null)
	assert.ErrorIs(t, err, ErrNullInput)
}

func TestConnectedComponentsEmptyGraph(t *testing.T) {
	g := digraph.Empty(0, 0)
	labels, count, err := ConnectedComponents(&g)
	require.NoError(t, err)
	assert.Empty(t, labels)
	assert.Equal(t, 0, count)
}
