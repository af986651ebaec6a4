package scclust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RoseZhao/scclust/digraph"
	"github.com/RoseZhao/scclust/seeds"
)

func TestGetSeedClusteringDispatchesAndReturnsRealResult(t *testing.T) {
	heads := []digraph.Vid{1, 2, 3, 4, 0}
	nng := digraph.Balanced(5, 1, heads)

	for _, strategy := range []Strategy{Lexical, InwardsOrder, InwardsUpdating, ExclusionOrder, ExclusionUpdating} {
		cl, err := GetSeedClustering(&nng, strategy, 2)
		require.NoError(t, err, strategy.String())
		// Regression check for the fixed dispatch bug: a successful
		// strategy run must surface its actual clustering, not the null
		// sentinel.
		require.False(t, cl.IsNull(), strategy.String())
		assert.NotEmpty(t, cl.Seeds, strategy.String())
	}
}

func TestGetSeedClusteringUnknownStrategy(t *testing.T) {
	heads := []digraph.Vid{1, 0}
	nng := digraph.Balanced(2, 1, heads)

	cl, err := GetSeedClustering(&nng, Strategy(99), 1)
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.True(t, cl.IsNull())
}

func TestGetSeedClusteringPropagatesStrategyFailure(t *testing.T) {
	null := digraph.Null()
	cl, err := GetSeedClustering(&null, Lexical, 1)
	assert.ErrorIs(t, err, seeds.ErrNullInput)
	assert.True(t, cl.IsNull())
}

func TestStrategyString(t *testing.T) {
	assert.Equal(t, "LEXICAL", Lexical.String())
	assert.Equal(t, "EXCLUSION_UPDATING", ExclusionUpdating.String())
	assert.Contains(t, Strategy(42).String(), "42")
}
