package topology

import "errors"

var (
	// ErrNullInput is returned when the supplied digraph is null.
	ErrNullInput = errors.New("topology: null digraph")

	// ErrVertexOutOfRange is returned when a requested start vertex does
	// not lie in the digraph's vertex set.
	ErrVertexOutOfRange = errors.New("topology: vertex out of range")
)
