// Package assign implements the post-seed assignment completers: scans
// that label the vertices a seed-finding strategy (package seeds) left
// unlabeled, using a priority graph (typically the original NNG, or a
// richer graph supplied by the caller) to find each unassigned vertex a
// labeled neighbor to inherit from.
//
// AssignRemainingLexical takes the first labeled neighbor found.
// AssignRemainingKeepEven takes the labeled neighbor whose cluster is
// currently the least full, relative to a desired cluster size, so that
// clusters fill up roughly evenly rather than first-come-first-served.
//
// Both completers mutate the supplied Clustering in place and leave any
// vertex with no labeled neighbor at seeds.Unlabeled.
package assign
