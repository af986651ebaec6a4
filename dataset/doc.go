// Package dataset is a minimal in-memory point/candidate-neighbor
// collaborator: callers register points and the candidate neighbors
// they have already found for each (with a distance), and BuildNNG
// compiles the k closest candidates per point into a digraph.Digraph
// nearest-neighbor graph. It does no nearest-neighbor search itself —
// that is the caller's job; this package only keeps the bookkeeping
// and does the final compile step.
package dataset
