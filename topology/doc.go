// Package topology provides read-only traversal diagnostics over a
// digraph.Digraph: reachability from a single vertex, and weak
// (undirected-sense) connected-component labeling. Neither operation
// mutates its input or supports cancellation — per the core's
// single-owner, no-concurrency resource model, every traversal here runs
// to completion or fails closed on a null input.
package topology
