package routing

import "errors"

var (
	// ErrComposition indicates the routing table cannot be assembled in a
	// consistent state (missing business service, or a handler whose
	// required middleware cannot be attached). Fatal at composition time.
	ErrComposition = errors.New("invalid routing composition")
)
