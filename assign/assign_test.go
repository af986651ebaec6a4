package assign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoseZhao/scclust/digraph"
	"github.com/RoseZhao/scclust/seeds"
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

func TestAssignRemainingLexicalAdoptsFirstLabeledNeighbor(t *testing.T) {
	nng := mustGraph(t, 5, [][]digraph.Vid{{1}, {2}, {3}, {4}, {0}})
	cl, err := seeds.Lexical(&nng, 2)
	require.NoError(t, err)
	require.Equal(t, seeds.Unlabeled, cl.ClusterLabel[4])

	require.NoError(t, AssignRemainingLexical(&cl, &nng))
	// v4's only priority-graph neighbor is v0, labeled 0.
	assert.Equal(t, 0, cl.ClusterLabel[4])
	// assigned bitmap is left untouched by design.
	assert.False(t, cl.Assigned[4])
}

func TestAssignRemainingLexicalLeavesIsolatedUnlabeled(t *testing.T) {
	nng := mustGraph(t, 3, [][]digraph.Vid{{1}, {0}, {}})
	cl, err := seeds.Lexical(&nng, 2)
	require.NoError(t, err)

	require.NoError(t, AssignRemainingLexical(&cl, &nng))
	assert.Equal(t, seeds.Unlabeled, cl.ClusterLabel[2])
}

func TestAssignRemainingLexicalNullInputs(t *testing.T) {
	nng := mustGraph(t, 2, [][]digraph.Vid{{1}, {0}})
	null := seeds.NullClustering()
	nullGraph := digraph.Null()

	assert.ErrorIs(t, AssignRemainingLexical(&null, &nng), ErrNullClustering)

	cl, err := seeds.Lexical(&nng, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, AssignRemainingLexical(&cl, &nullGraph), ErrNullPriorityGraph)
}

func TestAssignRemainingKeepEvenSpreadsAcrossClusters(t *testing.T) {
	// Two seeds (0 and 3), each with one NNG out-neighbor, plus a pool of
	// isolated vertices that each point at both seeds via the priority
	// graph so keep-even gets to choose between them.
	nng := mustGraph(t, 8, [][]digraph.Vid{
		{1}, {}, {}, {4}, {}, {}, {}, {},
	})
	priority := mustGraph(t, 8, [][]digraph.Vid{
		{1}, {}, {0, 3}, {4}, {}, {0, 3}, {0, 3}, {0, 3},
	})

	cl, err := seeds.Lexical(&nng, 2)
	require.NoError(t, err)
	require.Equal(t, []digraph.Vid{0, 3}, cl.Seeds)

	require.NoError(t, AssignRemainingKeepEven(&cl, &priority, 2))

	counts := map[int]int{}
	for _, v := range []digraph.Vid{2, 5, 6, 7} {
		require.NotEqual(t, seeds.Unlabeled, cl.ClusterLabel[v])
		counts[cl.ClusterLabel[v]]++
	}
	// v2 is a tie (both clusters empty) and resolves to the first
	// candidate in scan order (cluster 0). v5 then sees cluster 0 ahead
	// of cluster 1 and picks the less-full one (cluster 1), demonstrating
	// the spread mechanism actually engages rather than draining every
	// candidate into one cluster.
	assert.Equal(t, 0, cl.ClusterLabel[2])
	assert.Equal(t, 1, cl.ClusterLabel[5])
	assert.Len(t, counts, 2, "both clusters should receive at least one assignment")
}

func TestAssignRemainingKeepEvenInvalidDesiredSize(t *testing.T) {
	nng := mustGraph(t, 2, [][]digraph.Vid{{1}, {0}})
	cl, err := seeds.Lexical(&nng, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, AssignRemainingKeepEven(&cl, &nng, 0), ErrInvalidDesiredSize)
}
