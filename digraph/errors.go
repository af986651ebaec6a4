// Package digraph: sentinel error set.
//
// Every value-returning operation in this package fails by returning a
// null Digraph (TailPtr == nil); the sentinels below name the failure
// classes behind those null returns, and are returned directly by the one
// entry point whose contract is a plain error rather than a null result
// (ChangeArcStorage: ErrNullInput, ErrTruncation). Algorithms MUST NOT
// wrap these with extra context inside this package; callers may wrap
// with fmt.Errorf("...: %w", err).
//
// ERROR PRIORITY (documented):
// contradictory modifiers (AdjacencyProduct checks these before anything
// else) -> nil/null input -> size mismatch -> truncation -> allocation
// failure.
package digraph

import "errors"

var (
	// ErrNullInput indicates a digraph argument is null (TailPtr == nil) or
	// a required pointer argument was nil.
	ErrNullInput = errors.New("digraph: null or nil input")

	// ErrSizeMismatch indicates two digraph operands disagree on Vertices.
	ErrSizeMismatch = errors.New("digraph: vertex count mismatch")

	// ErrContradictoryModifiers indicates ForceDiagonal and IgnoreDiagonal
	// were both requested for AdjacencyProduct.
	ErrContradictoryModifiers = errors.New("digraph: force_diagonal and ignore_diagonal both set")

	// ErrTruncation indicates ChangeArcStorage was asked to shrink capacity
	// below the number of arcs already in use.
	ErrTruncation = errors.New("digraph: resize would truncate used arcs")

	// ErrAllocationFailure names the failure class behind a null return
	// from a constructor given unusable sizes (Init and Empty reject a
	// negative vertex or arc count). Go does not expose recoverable OOM
	// the way the C source does, so a genuinely exhausted heap still
	// panics in make(); this sentinel covers the checkable cases only.
	ErrAllocationFailure = errors.New("digraph: allocation failure")
)
