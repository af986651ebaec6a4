package dataset

import "errors"

var (
	// ErrEmptyDataset indicates a Dataset with no points.
	ErrEmptyDataset = errors.New("dataset: no points")

	// ErrPointNotFound indicates an operation referenced a point id that
	// was never added via AddPoint.
	ErrPointNotFound = errors.New("dataset: point not found")

	// ErrDuplicatePoint indicates AddPoint was called twice for the same
	// id.
	ErrDuplicatePoint = errors.New("dataset: point already added")

	// ErrSelfCandidate indicates AddCandidate was called with from == to.
	ErrSelfCandidate = errors.New("dataset: candidate cannot reference its own point")

	// ErrDuplicateCandidate indicates AddCandidate was called twice for
	// the same (from, to) pair.
	ErrDuplicateCandidate = errors.New("dataset: candidate already added for this pair")

	// ErrInvalidK indicates BuildNNG was called with k < 0.
	ErrInvalidK = errors.New("dataset: k must be non-negative")

	// ErrInsufficientCandidates indicates some point has fewer than k
	// candidates recorded, so a k-out neighbor graph cannot be built.
	ErrInsufficientCandidates = errors.New("dataset: a point has fewer than k candidates")

	// ErrAllocationFailure indicates the digraph backing the NNG could
	// not be constructed (digraph.Init returned the null digraph).
	ErrAllocationFailure = errors.New("dataset: allocation failure")
)
