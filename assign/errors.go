package assign

import "errors"

var (
	// ErrNullClustering is returned when the supplied Clustering is null.
	ErrNullClustering = errors.New("assign: null clustering")

	// ErrNullPriorityGraph is returned when the supplied priority graph
	// is null.
	ErrNullPriorityGraph = errors.New("assign: null priority graph")

	// ErrInvalidDesiredSize is returned by AssignRemainingKeepEven when
	// desiredSize is not positive.
	ErrInvalidDesiredSize = errors.New("assign: desired size must be positive")
)
