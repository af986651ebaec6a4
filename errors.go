package scclust

import "errors"

// ErrUnknownStrategy is returned by GetSeedClustering when strategy does
// not match any of the five enumerated values.
var ErrUnknownStrategy = errors.New("scclust: unknown strategy")
