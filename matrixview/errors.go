package matrixview

import "errors"

var (
	// ErrInvalidDimensions indicates NewDense was called with rows or
	// cols <= 0.
	ErrInvalidDimensions = errors.New("matrixview: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates At or Set was called with a row or
	// column outside the matrix's bounds.
	ErrIndexOutOfBounds = errors.New("matrixview: index out of bounds")

	// ErrNullDigraph indicates FromDigraph was given a null digraph.
	ErrNullDigraph = errors.New("matrixview: null digraph")

	// ErrNilDense indicates ToDigraph was given a nil Dense.
	ErrNilDense = errors.New("matrixview: nil matrix")

	// ErrNotSquare indicates ToDigraph was given a non-square matrix.
	ErrNotSquare = errors.New("matrixview: matrix must be square to convert to a digraph")
)
