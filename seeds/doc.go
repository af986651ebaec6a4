// Package seeds implements the seed-finding engine: five strategies that
// each select a set of mutually non-conflicting vertices from a
// nearest-neighbor graph (NNG), where a vertex's closed NNG neighborhood
// becomes a cluster once chosen.
//
// All five strategies record seeds through addSeed. Lexical and the two
// inwards strategies also share checkCandidate and assignNeighbors; the
// two exclusion strategies instead track conflicts in their own excluded
// bitmap over the exclusion graph. They differ in the order candidates
// are visited and, for the updating variants, in how that order is
// re-prioritized as earlier picks remove candidates from contention:
//
//   - Lexical:           scan v = 0..n-1 in vertex-id order.
//   - InwardsOrder:      scan ascending by static residual in-degree.
//   - InwardsUpdating:   as above, but residual in-degree is decremented
//     live as each pick's second-step neighbors lose a blocking predecessor.
//   - ExclusionOrder:    scan ascending by residual in-degree of the
//     exclusion graph (BuildExclusionGraph), a static pass.
//   - ExclusionUpdating: as ExclusionOrder, but with live decrements.
//
// InwardsUpdating and both exclusion strategies defer cluster-label
// assignment to a single post-pass (labelSeeds) once the seed set is
// final; Lexical and InwardsOrder label each cluster as its seed is
// picked.
package seeds
