package scclust

import (
	"fmt"

	"github.com/RoseZhao/scclust/digraph"
	"github.com/RoseZhao/scclust/seeds"
)

// Strategy enumerates the five seed-finding policies package seeds
// implements.
type Strategy int

const (
	// Lexical scans vertices in plain id order.
	Lexical Strategy = iota
	// InwardsOrder sorts vertices once by static residual in-degree.
	InwardsOrder
	// InwardsUpdating sorts vertices by residual in-degree with live
	// decrements as seeds are chosen.
	InwardsUpdating
	// ExclusionOrder sorts the exclusion graph's vertices once by
	// residual in-degree.
	ExclusionOrder
	// ExclusionUpdating sorts the exclusion graph's vertices with live
	// decrements as seeds are chosen.
	ExclusionUpdating
)

// String renders the strategy's name, matching the enumerator spelling
// used throughout the design documentation.
func (s Strategy) String() string {
	switch s {
	case Lexical:
		return "LEXICAL"
	case InwardsOrder:
		return "INWARDS_ORDER"
	case InwardsUpdating:
		return "INWARDS_UPDATING"
	case ExclusionOrder:
		return "EXCLUSION_ORDER"
	case ExclusionUpdating:
		return "EXCLUSION_UPDATING"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// GetSeedClustering selects seed vertices from nng according to strategy,
// returning the resulting Clustering. Returns the null Clustering and
// ErrUnknownStrategy if strategy is not one of the five enumerated
// values; strategy-specific failures (e.g. a null nng) are surfaced as
// returned by the chosen strategy.
func GetSeedClustering(nng *digraph.Digraph, strategy Strategy, seedInitCapacity int) (seeds.Clustering, error) {
	switch strategy {
	case Lexical:
		return seeds.Lexical(nng, seedInitCapacity)
	case InwardsOrder:
		return seeds.InwardsOrder(nng, seedInitCapacity)
	case InwardsUpdating:
		return seeds.InwardsUpdating(nng, seedInitCapacity)
	case ExclusionOrder:
		return seeds.ExclusionOrder(nng, seedInitCapacity)
	case ExclusionUpdating:
		return seeds.ExclusionUpdating(nng, seedInitCapacity)
	default:
		return seeds.NullClustering(), ErrUnknownStrategy
	}
}
