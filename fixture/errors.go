package fixture

import "errors"

var (
	// ErrTooFewVertices is returned when n < 1 or k is out of [0, n).
	ErrTooFewVertices = errors.New("fixture: too few vertices for requested degree")

	// ErrConstructFailed is returned when the bounded number of retries
	// is exhausted without producing a valid realization.
	ErrConstructFailed = errors.New("fixture: construction failed after bounded retries")

	// ErrInvalidDensity is returned when Sparse's density is outside
	// [0, 1].
	ErrInvalidDensity = errors.New("fixture: density must be in [0, 1]")
)
