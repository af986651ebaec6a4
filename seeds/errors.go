package seeds

import "errors"

// Sentinels are returned in priority order: null input is checked before
// any shape validation.
var (
	// ErrNullInput is returned when a strategy or the exclusion builder
	// is given a null NNG.
	ErrNullInput = errors.New("seeds: null NNG")

	// ErrNegativeCapacity is returned when a negative seed init capacity
	// is supplied to a strategy. A zero capacity is permitted and treated
	// as a request for the smallest usable seed buffer.
	ErrNegativeCapacity = errors.New("seeds: negative seed init capacity")
)
