package sortbucket

import "errors"

// Sentinels are returned in the following priority order when more than
// one condition applies: nil input first, then range violations.
var (
	// ErrNullInput is returned when BuildSort is given a null digraph.
	ErrNullInput = errors.New("sortbucket: null digraph")

	// ErrVertexOutOfRange is returned by Decrease when v does not index
	// a vertex tracked by the SortState.
	ErrVertexOutOfRange = errors.New("sortbucket: vertex out of range")

	// ErrNotMutable is returned by Decrease when called on a SortState
	// built without a mutable index.
	ErrNotMutable = errors.New("sortbucket: decrease requires a mutable index")

	// ErrAlreadyZero is returned by Decrease when v's residual count is
	// already zero and cannot be decreased further.
	ErrAlreadyZero = errors.New("sortbucket: vertex count already zero")
)
