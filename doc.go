// Package scclust is the dispatch facade over the seed-finding engine: an
// enumerated Strategy tag and a single entry point, GetSeedClustering,
// that routes to the matching implementation in package seeds.
//
// A prior version of the strategy dispatcher discarded the discovered
// clustering and always returned the null value even on success; that
// bug is not reproduced here — GetSeedClustering returns whatever
// Clustering the chosen strategy actually built (see DESIGN.md's Open
// Questions section).
package scclust
